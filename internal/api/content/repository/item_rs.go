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

type ConfiguratorItemDB struct {
	ID        sql.NullString `db:"id"`
	Icon      sql.NullString `db:"icon"`
	Category  sql.NullString `db:"category"`
	Title     []byte         `db:"title"`
	Benefit   []byte         `db:"benefit"`
	Visible   sql.NullBool   `db:"visible"`
	SortOrder sql.NullInt64  `db:"sort_order"`
	UpdatedAt time.Time      `db:"updated_at"`
}

func (r *itemsRepository) GetAllItems(ctx context.Context) ([]entity.ConfiguratorItem, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []ConfiguratorItemDB

	query, args, err := sqlx.Named(queryGetAllItems, map[string]interface{}{})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllItems named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllItems execution err")
		return nil, err
	}

	items := make([]entity.ConfiguratorItem, 0, len(rows))
	for _, row := range rows {
		item, err := r.makeItem(row)
		if err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         row.ID.String,
				"error":      err.Error(),
			}).Error("GetAllItems decode err")
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

func (r *itemsRepository) UpsertItem(ctx context.Context, item entity.ConfiguratorItem) error {
	requestID := contextPkg.GetRequestID(ctx)
	item = item.Normalize()

	title, err := encodeJSON(item.Title)
	if err != nil {
		return err
	}
	benefit, err := encodeJSON(item.Benefit)
	if err != nil {
		return err
	}

	argsKV := map[string]interface{}{
		"id":         item.ID,
		"icon":       item.Icon,
		"category":   string(item.Category),
		"title":      title,
		"benefit":    benefit,
		"visible":    item.Visible,
		"sort_order": item.Order,
		"updated_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryUpsertItem, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpsertItem named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         item.ID,
			"error":      err.Error(),
		}).Error("UpsertItem execution err")
		return err
	}

	return nil
}

func (r *itemsRepository) SetItemVisibility(ctx context.Context, id string, visible bool) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":         id,
		"visible":    visible,
		"updated_at": time.Now(),
	}

	query, args, err := sqlx.Named(querySetItemVisibility, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("SetItemVisibility named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("SetItemVisibility execution err")
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
		}).Warn("SetItemVisibility no rows affected")
		return content.ErrConfiguratorItemNotFound
	}

	return nil
}

func (r *itemsRepository) DeleteItem(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteItem, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteItem named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteItem execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteItem rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
		}).Warn("DeleteItem no rows affected")
		return content.ErrConfiguratorItemNotFound
	}

	return nil
}

func (r *itemsRepository) makeItem(row ConfiguratorItemDB) (entity.ConfiguratorItem, error) {
	title, err := decodeText(row.Title)
	if err != nil {
		return entity.ConfiguratorItem{}, err
	}
	benefit, err := decodeText(row.Benefit)
	if err != nil {
		return entity.ConfiguratorItem{}, err
	}

	return entity.ConfiguratorItem{
		ID:       row.ID.String,
		Icon:     row.Icon.String,
		Category: entity.ServiceCategory(row.Category.String),
		Title:    title,
		Benefit:  benefit,
		Visible:  row.Visible.Bool,
		Order:    int(row.SortOrder.Int64),
	}, nil
}
