package leadRepository

import (
	"database/sql"
	"time"

	"EportsTech/internal/entity"
	contextPkg "EportsTech/pkg/context"

	"github.com/jmoiron/sqlx"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type ConfiguratorLeadDB struct {
	ID            sql.NullString `db:"id"`
	RequestID     sql.NullString `db:"request_id"`
	FullName      sql.NullString `db:"full_name"`
	Company       sql.NullString `db:"company"`
	Email         sql.NullString `db:"email"`
	Phone         sql.NullString `db:"phone"`
	Address       sql.NullString `db:"address"`
	City          sql.NullString `db:"city"`
	SelectedItems []byte         `db:"selected_items"`
	CreatedAt     time.Time      `db:"created_at"`
}

func (r *configuratorLeadsRepository) CreateConfiguratorLead(ctx context.Context, lead entity.ConfiguratorLead) (bool, error) {
	requestID := contextPkg.GetRequestID(ctx)

	items := lead.SelectedItems
	if items == nil {
		items = []entity.ConfiguratorItem{}
	}
	selected, err := json.MarshalToString(items)
	if err != nil {
		return false, err
	}

	query, args, err := sqlx.Named(queryCreateConfiguratorLead, map[string]interface{}{
		"id":             lead.ID,
		"request_id":     lead.RequestID,
		"full_name":      lead.FullName,
		"company":        lead.Company,
		"email":          lead.Email,
		"phone":          lead.Phone,
		"address":        lead.Address,
		"city":           lead.City,
		"selected_items": selected,
		"created_at":     lead.CreatedAt,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateConfiguratorLead named query preparation err")
		return false, err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateConfiguratorLead execution err")
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

func (r *configuratorLeadsRepository) GetConfiguratorLeadIDByRequestID(ctx context.Context, leadRequestID string) (string, error) {
	return lookupID(ctx, r.q, r.log, queryGetConfiguratorLeadIDByRequestID, leadRequestID)
}

func (r *configuratorLeadsRepository) ListConfiguratorLeads(ctx context.Context, limit, offset int) ([]entity.ConfiguratorLead, int, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []ConfiguratorLeadDB

	query, args, err := sqlx.Named(queryListConfiguratorLeads, map[string]interface{}{
		"limit":  limit,
		"offset": offset,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListConfiguratorLeads named query preparation err")
		return nil, 0, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListConfiguratorLeads execution err")
		return nil, 0, err
	}

	var total int
	if err := r.q.QueryRowxContext(ctx, queryCountConfiguratorLeads).Scan(&total); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListConfiguratorLeads count err")
		return nil, 0, err
	}

	leads := make([]entity.ConfiguratorLead, 0, len(rows))
	for _, row := range rows {
		items := []entity.ConfiguratorItem{}
		if len(row.SelectedItems) > 0 {
			if err := json.Unmarshal(row.SelectedItems, &items); err != nil {
				r.log.WithFields(logrus.Fields{
					"request_id": requestID,
					"id":         row.ID.String,
					"error":      err.Error(),
				}).Error("ListConfiguratorLeads decode err")
				return nil, 0, err
			}
		}

		leads = append(leads, entity.ConfiguratorLead{
			ID:            row.ID.String,
			RequestID:     row.RequestID.String,
			FullName:      row.FullName.String,
			Company:       row.Company.String,
			Email:         row.Email.String,
			Phone:         row.Phone.String,
			Address:       row.Address.String,
			City:          row.City.String,
			SelectedItems: items,
			CreatedAt:     row.CreatedAt,
		})
	}

	return leads, total, nil
}
