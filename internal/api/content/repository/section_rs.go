package contentRepository

import (
	"database/sql"
	"time"

	"EportsTech/internal/entity"
	contextPkg "EportsTech/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type SectionDB struct {
	ID        sql.NullString `db:"id"`
	Title     []byte         `db:"title"`
	Content   []byte         `db:"content"`
	SortOrder sql.NullInt64  `db:"sort_order"`
	UpdatedAt time.Time      `db:"updated_at"`
}

func (r *sectionsRepository) GetAllSections(ctx context.Context) ([]entity.CustomSection, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []SectionDB

	query, args, err := sqlx.Named(queryGetAllSections, map[string]interface{}{})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllSections named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllSections execution err")
		return nil, err
	}

	sections := make([]entity.CustomSection, 0, len(rows))
	for _, row := range rows {
		title, err := decodeText(row.Title)
		if err != nil {
			return nil, err
		}
		body, err := decodeText(row.Content)
		if err != nil {
			return nil, err
		}
		sections = append(sections, entity.CustomSection{
			ID:      row.ID.String,
			Title:   title,
			Content: body,
			Order:   int(row.SortOrder.Int64),
		})
	}

	return sections, nil
}

func (r *sectionsRepository) UpsertSection(ctx context.Context, section entity.CustomSection) error {
	requestID := contextPkg.GetRequestID(ctx)
	section = section.Normalize()

	title, err := encodeJSON(section.Title)
	if err != nil {
		return err
	}
	body, err := encodeJSON(section.Content)
	if err != nil {
		return err
	}

	argsKV := map[string]interface{}{
		"id":         section.ID,
		"title":      title,
		"content":    body,
		"sort_order": section.Order,
		"updated_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryUpsertSection, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpsertSection named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         section.ID,
			"error":      err.Error(),
		}).Error("UpsertSection execution err")
		return err
	}

	return nil
}

// DeleteSectionsExcept removes every section whose id is not in ids, so a
// full-list save also drops the sections the admin removed.
func (r *sectionsRepository) DeleteSectionsExcept(ctx context.Context, ids []string) error {
	requestID := contextPkg.GetRequestID(ctx)

	query := queryDeleteAllSections
	var args []interface{}
	if len(ids) > 0 {
		var err error
		query, args, err = sqlx.In(queryDeleteSectionsExcept, ids)
		if err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("DeleteSectionsExcept query expansion err")
			return err
		}
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteSectionsExcept execution err")
		return err
	}

	return nil
}
