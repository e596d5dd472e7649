package authRepository

import (
	"database/sql"
	"errors"
	"strings"

	"EportsTech/internal/api/auth"
	"EportsTech/internal/entity"
	contextPkg "EportsTech/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type AdminDB struct {
	ID           sql.NullString `db:"id"`
	Email        sql.NullString `db:"email"`
	PasswordHash sql.NullString `db:"password_hash"`
	CreatedAt    sql.NullTime   `db:"created_at"`
	UpdatedAt    sql.NullTime   `db:"updated_at"`
}

func (r *adminRepository) CreateAdmin(c context.Context, admin entity.AdminUser) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":            admin.ID,
		"email":         strings.ToLower(admin.Email),
		"password_hash": admin.PasswordHash,
		"created_at":    admin.CreatedAt,
		"updated_at":    admin.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryCreateAdmin, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateAdmin named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Admin email already exists")
			return auth.ErrEmailAlreadyExists
		}

		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateAdmin execution err")
		return err
	}

	return nil
}

func (r *adminRepository) GetByEmail(c context.Context, email string) (entity.AdminUser, error) {
	return r.getOne(c, queryGetAdminByEmail, map[string]interface{}{
		"email": strings.ToLower(strings.TrimSpace(email)),
	})
}

func (r *adminRepository) GetByID(c context.Context, id string) (entity.AdminUser, error) {
	return r.getOne(c, queryGetAdminByID, map[string]interface{}{
		"id": id,
	})
}

func (r *adminRepository) getOne(c context.Context, namedQuery string, argsKV map[string]interface{}) (entity.AdminUser, error) {
	requestID := contextPkg.GetRequestID(c)

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("admin named query preparation err")
		return entity.AdminUser{}, err
	}
	query = r.q.Rebind(query)

	var row AdminDB
	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.AdminUser{}, auth.ErrAdminNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("admin lookup execution err")
		return entity.AdminUser{}, err
	}

	return makeAdmin(row), nil
}

func makeAdmin(row AdminDB) entity.AdminUser {
	admin := entity.AdminUser{
		ID:           row.ID.String,
		Email:        row.Email.String,
		PasswordHash: row.PasswordHash.String,
	}
	if row.CreatedAt.Valid {
		admin.CreatedAt = row.CreatedAt.Time
	}
	if row.UpdatedAt.Valid {
		admin.UpdatedAt = row.UpdatedAt.Time
	}
	return admin
}
