package contentRepository

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

// ErrSingletonMissing means the singleton row has never been written.
var ErrSingletonMissing = errors.New("singleton row not found")

type SingletonDB struct {
	Data      []byte        `db:"data"`
	Version   sql.NullInt64 `db:"version"`
	UpdatedAt time.Time     `db:"updated_at"`
}

func (r *singletonsRepository) get(ctx context.Context, q string, name string) (SingletonDB, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var row SingletonDB

	query, args, err := sqlx.Named(q, map[string]interface{}{"id": entity.SingletonID})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"singleton":  name,
			"error":      err.Error(),
		}).Error("Singleton named query preparation err")
		return SingletonDB{}, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"singleton":  name,
			}).Warn("Singleton row not found")
			return SingletonDB{}, ErrSingletonMissing
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"singleton":  name,
			"error":      err.Error(),
		}).Error("Singleton execution err")
		return SingletonDB{}, err
	}

	return row, nil
}

// save upserts value at the singleton id. Versioned tables return the new
// version through RETURNING.
func (r *singletonsRepository) save(ctx context.Context, q string, name string, value interface{}, versioned bool) (int64, error) {
	requestID := contextPkg.GetRequestID(ctx)

	data, err := encodeJSON(value)
	if err != nil {
		return 0, err
	}

	argsKV := map[string]interface{}{
		"id":         entity.SingletonID,
		"data":       data,
		"updated_at": time.Now(),
	}

	query, args, err := sqlx.Named(q, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"singleton":  name,
			"error":      err.Error(),
		}).Error("Singleton save named query preparation err")
		return 0, err
	}
	query = r.q.Rebind(query)

	if versioned {
		var version int64
		if err := r.q.QueryRowxContext(ctx, query, args...).Scan(&version); err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"singleton":  name,
				"error":      err.Error(),
			}).Error("Singleton save execution err")
			return 0, err
		}
		return version, nil
	}

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"singleton":  name,
			"error":      err.Error(),
		}).Error("Singleton save execution err")
		return 0, err
	}

	return 0, nil
}

func (r *singletonsRepository) GetBrandConfig(ctx context.Context) (entity.BrandConfig, error) {
	row, err := r.get(ctx, queryGetBrandConfig, "brand_config")
	if err != nil {
		return entity.BrandConfig{}, err
	}

	var cfg entity.BrandConfig
	if err := json.Unmarshal(row.Data, &cfg); err != nil {
		return entity.BrandConfig{}, err
	}
	cfg.Version = row.Version.Int64
	cfg.UpdatedAt = row.UpdatedAt

	return cfg.Normalize(), nil
}

// SaveBrandConfig upserts the row and returns the version the store assigned.
func (r *singletonsRepository) SaveBrandConfig(ctx context.Context, cfg entity.BrandConfig) (int64, error) {
	cfg.Version = 0
	cfg.UpdatedAt = time.Time{}
	return r.save(ctx, querySaveBrandConfig, "brand_config", cfg.Normalize(), true)
}

func (r *singletonsRepository) GetBotConfig(ctx context.Context) (entity.BotConfig, error) {
	row, err := r.get(ctx, queryGetBotConfig, "bot_config")
	if err != nil {
		return entity.BotConfig{}, err
	}

	var cfg entity.BotConfig
	if err := json.Unmarshal(row.Data, &cfg); err != nil {
		return entity.BotConfig{}, err
	}
	cfg.UpdatedAt = row.UpdatedAt

	return cfg.Normalize(), nil
}

func (r *singletonsRepository) SaveBotConfig(ctx context.Context, cfg entity.BotConfig) error {
	cfg.UpdatedAt = time.Time{}
	_, err := r.save(ctx, querySaveBotConfig, "bot_config", cfg.Normalize(), false)
	return err
}

func (r *singletonsRepository) GetNotificationSettings(ctx context.Context) (entity.NotificationSettings, error) {
	row, err := r.get(ctx, queryGetNotificationSettings, "notification_settings")
	if err != nil {
		return entity.NotificationSettings{}, err
	}

	var settings entity.NotificationSettings
	if err := json.Unmarshal(row.Data, &settings); err != nil {
		return entity.NotificationSettings{}, err
	}
	settings.UpdatedAt = row.UpdatedAt

	return settings.Normalize(), nil
}

func (r *singletonsRepository) SaveNotificationSettings(ctx context.Context, settings entity.NotificationSettings) error {
	settings.UpdatedAt = time.Time{}
	_, err := r.save(ctx, querySaveNotificationSettings, "notification_settings", settings.Normalize(), false)
	return err
}
