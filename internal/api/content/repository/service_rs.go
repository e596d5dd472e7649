package contentRepository

import (
	"database/sql"
	"time"

	"EportsTech/internal/api/content"
	"EportsTech/internal/entity"
	contextPkg "EportsTech/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type ServiceDB struct {
	ID                  sql.NullString `db:"id"`
	Icon                sql.NullString `db:"icon"`
	Category            sql.NullString `db:"category"`
	Title               []byte         `db:"title"`
	Description         []byte         `db:"description"`
	ExtendedDescription []byte         `db:"extended_description"`
	Features            []byte         `db:"features"`
	Visible             sql.NullBool   `db:"visible"`
	SortOrder           sql.NullInt64  `db:"sort_order"`
	UpdatedAt           time.Time      `db:"updated_at"`
}

func (r *servicesRepository) GetAllServices(ctx context.Context) ([]entity.Service, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []ServiceDB

	query, args, err := sqlx.Named(queryGetAllServices, map[string]interface{}{})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllServices named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllServices execution err")
		return nil, err
	}

	services := make([]entity.Service, 0, len(rows))
	for _, row := range rows {
		service, err := r.makeService(row)
		if err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         row.ID.String,
				"error":      err.Error(),
			}).Error("GetAllServices decode err")
			return nil, err
		}
		services = append(services, service)
	}

	return services, nil
}

func (r *servicesRepository) UpsertService(ctx context.Context, service entity.Service) error {
	requestID := contextPkg.GetRequestID(ctx)
	service = service.Normalize()

	title, err := encodeJSON(service.Title)
	if err != nil {
		return err
	}
	description, err := encodeJSON(service.Description)
	if err != nil {
		return err
	}
	extended, err := encodeOptionalText(service.ExtendedDescription)
	if err != nil {
		return err
	}
	features, err := encodeOptionalList(service.Features)
	if err != nil {
		return err
	}

	argsKV := map[string]interface{}{
		"id":                   service.ID,
		"icon":                 service.Icon,
		"category":             string(service.Category),
		"title":                title,
		"description":          description,
		"extended_description": extended,
		"features":             features,
		"visible":              service.Visible,
		"sort_order":           service.Order,
		"updated_at":           time.Now(),
	}

	query, args, err := sqlx.Named(queryUpsertService, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpsertService named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         service.ID,
			"error":      err.Error(),
		}).Error("UpsertService execution err")
		return err
	}

	return nil
}

func (r *servicesRepository) SetServiceVisibility(ctx context.Context, id string, visible bool) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":         id,
		"visible":    visible,
		"updated_at": time.Now(),
	}

	query, args, err := sqlx.Named(querySetServiceVisibility, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("SetServiceVisibility named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("SetServiceVisibility execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
		}).Warn("SetServiceVisibility no rows affected")
		return content.ErrServiceNotFound
	}

	return nil
}

func (r *servicesRepository) makeService(row ServiceDB) (entity.Service, error) {
	title, err := decodeText(row.Title)
	if err != nil {
		return entity.Service{}, err
	}
	description, err := decodeText(row.Description)
	if err != nil {
		return entity.Service{}, err
	}
	extended, err := decodeOptionalText(row.ExtendedDescription)
	if err != nil {
		return entity.Service{}, err
	}
	features, err := decodeOptionalList(row.Features)
	if err != nil {
		return entity.Service{}, err
	}

	return entity.Service{
		ID:                  row.ID.String,
		Icon:                row.Icon.String,
		Category:            entity.ServiceCategory(row.Category.String),
		Title:               title,
		Description:         description,
		ExtendedDescription: extended,
		Features:            features,
		Visible:             row.Visible.Bool,
		Order:               int(row.SortOrder.Int64),
	}, nil
}
