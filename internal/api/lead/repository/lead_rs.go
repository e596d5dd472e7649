package leadRepository

import (
	"database/sql"
	"errors"
	"time"

	"EportsTech/internal/entity"
	contextPkg "EportsTech/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

var ErrLeadNotFound = errors.New("lead not found")

type LeadDB struct {
	ID              sql.NullString `db:"id"`
	RequestID       sql.NullString `db:"request_id"`
	FullName        sql.NullString `db:"full_name"`
	Email           sql.NullString `db:"email"`
	Phone           sql.NullString `db:"phone"`
	Company         sql.NullString `db:"company"`
	ServiceInterest sql.NullString `db:"service_interest"`
	Message         sql.NullString `db:"message"`
	Address         sql.NullString `db:"address"`
	City            sql.NullString `db:"city"`
	CreatedAt       time.Time      `db:"created_at"`
}

func (r *leadsRepository) CreateLead(ctx context.Context, lead entity.Lead) (bool, error) {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryCreateLead, map[string]interface{}{
		"id":               lead.ID,
		"request_id":       lead.RequestID,
		"full_name":        lead.FullName,
		"email":            lead.Email,
		"phone":            lead.Phone,
		"company":          lead.Company,
		"service_interest": lead.ServiceInterest,
		"message":          lead.Message,
		"address":          lead.Address,
		"city":             lead.City,
		"created_at":       lead.CreatedAt,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateLead named query preparation err")
		return false, err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateLead execution err")
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

func (r *leadsRepository) GetLeadIDByRequestID(ctx context.Context, leadRequestID string) (string, error) {
	return lookupID(ctx, r.q, r.log, queryGetLeadIDByRequestID, leadRequestID)
}

func (r *leadsRepository) ListLeads(ctx context.Context, limit, offset int) ([]entity.Lead, int, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []LeadDB

	query, args, err := sqlx.Named(queryListLeads, map[string]interface{}{
		"limit":  limit,
		"offset": offset,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListLeads named query preparation err")
		return nil, 0, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListLeads execution err")
		return nil, 0, err
	}

	var total int
	if err := r.q.QueryRowxContext(ctx, queryCountLeads).Scan(&total); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListLeads count err")
		return nil, 0, err
	}

	leads := make([]entity.Lead, 0, len(rows))
	for _, row := range rows {
		leads = append(leads, entity.Lead{
			ID:              row.ID.String,
			RequestID:       row.RequestID.String,
			FullName:        row.FullName.String,
			Email:           row.Email.String,
			Phone:           row.Phone.String,
			Company:         row.Company.String,
			ServiceInterest: row.ServiceInterest.String,
			Message:         row.Message.String,
			Address:         row.Address.String,
			City:            row.City.String,
			CreatedAt:       row.CreatedAt,
		})
	}

	return leads, total, nil
}

func lookupID(ctx context.Context, q SQLExecutor, log *logrus.Logger, queryText, leadRequestID string) (string, error) {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryText, map[string]interface{}{
		"request_id": leadRequestID,
	})
	if err != nil {
		return "", err
	}

	query = q.Rebind(query)

	var id string
	if err := q.QueryRowxContext(ctx, query, args...).Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrLeadNotFound
		}
		log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("lead id lookup err")
		return "", err
	}

	return id, nil
}
