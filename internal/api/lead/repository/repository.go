package leadRepository

import (
	"EportsTech/internal/entity"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Leads:             &leadsRepository{q: sqlExecutor, log: r.log},
		ConfiguratorLeads: &configuratorLeadsRepository{q: sqlExecutor, log: r.log},
		Commit:            commitFunc,
		Rollback:          rollbackFunc,
	}, nil
}

type Client struct {
	Leads interface {
		// CreateLead reports false when a lead with the same request id exists.
		CreateLead(ctx context.Context, lead entity.Lead) (bool, error)
		GetLeadIDByRequestID(ctx context.Context, requestID string) (string, error)
		ListLeads(ctx context.Context, limit, offset int) ([]entity.Lead, int, error)
	}

	ConfiguratorLeads interface {
		CreateConfiguratorLead(ctx context.Context, lead entity.ConfiguratorLead) (bool, error)
		GetConfiguratorLeadIDByRequestID(ctx context.Context, requestID string) (string, error)
		ListConfiguratorLeads(ctx context.Context, limit, offset int) ([]entity.ConfiguratorLead, int, error)
	}

	Commit   func() error
	Rollback func() error
}

type leadsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type configuratorLeadsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
