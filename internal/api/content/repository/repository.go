package contentRepository

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
		Services:          &servicesRepository{q: sqlExecutor, log: r.log},
		ConfiguratorItems: &itemsRepository{q: sqlExecutor, log: r.log},
		Sections:          &sectionsRepository{q: sqlExecutor, log: r.log},
		Singletons:        &singletonsRepository{q: sqlExecutor, log: r.log},
		Commit:            commitFunc,
		Rollback:          rollbackFunc,
	}, nil
}

type Client struct {
	Services interface {
		GetAllServices(ctx context.Context) ([]entity.Service, error)
		UpsertService(ctx context.Context, service entity.Service) error
		SetServiceVisibility(ctx context.Context, id string, visible bool) error
	}

	ConfiguratorItems interface {
		GetAllItems(ctx context.Context) ([]entity.ConfiguratorItem, error)
		UpsertItem(ctx context.Context, item entity.ConfiguratorItem) error
		SetItemVisibility(ctx context.Context, id string, visible bool) error
		DeleteItem(ctx context.Context, id string) error
	}

	Sections interface {
		GetAllSections(ctx context.Context) ([]entity.CustomSection, error)
		UpsertSection(ctx context.Context, section entity.CustomSection) error
		DeleteSectionsExcept(ctx context.Context, ids []string) error
	}

	Singletons interface {
		GetBrandConfig(ctx context.Context) (entity.BrandConfig, error)
		SaveBrandConfig(ctx context.Context, cfg entity.BrandConfig) (int64, error)
		GetBotConfig(ctx context.Context) (entity.BotConfig, error)
		SaveBotConfig(ctx context.Context, cfg entity.BotConfig) error
		GetNotificationSettings(ctx context.Context) (entity.NotificationSettings, error)
		SaveNotificationSettings(ctx context.Context, settings entity.NotificationSettings) error
	}

	Commit   func() error
	Rollback func() error
}

type servicesRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type itemsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type sectionsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type singletonsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
