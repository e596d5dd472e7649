package authService

import (
	"errors"
	"strings"
	"time"

	"EportsTech/internal/api/auth"
	"EportsTech/internal/entity"
	contextPkg "EportsTech/pkg/context"
	jwtPkg "EportsTech/pkg/jwt"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// dummyHash is compared against when the e-mail is unknown so both failure
// paths pay for one bcrypt comparison.
const dummyHash = "$2a$10$7EqJtq98hPqEX7fNZaFWoOhi5BWX4Z3Q5tq8ZS1uDd/0mtqvSSH4W"

func (s *authService) Login(c context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.authRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.LoginResponse{}, err
	}

	admin, err := repo.Admins.GetByEmail(c, req.Email)
	if err != nil {
		if errors.Is(err, auth.ErrAdminNotFound) {
			_ = s.bcrypt.ComparePassword(dummyHash, req.Password)
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
			}).Warn("Login attempt for unknown admin")
			return auth.LoginResponse{}, auth.ErrInvalidEmailOrPassword
		}
		return auth.LoginResponse{}, err
	}

	if err := s.bcrypt.ComparePassword(admin.PasswordHash, req.Password); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"admin_id":   admin.ID,
		}).Warn("Login attempt with wrong password")
		return auth.LoginResponse{}, auth.ErrInvalidEmailOrPassword
	}

	token, expiresAt, err := jwtPkg.Sign(map[string]interface{}{
		"id":    admin.ID,
		"email": admin.Email,
	}, s.tokenTTL)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to sign access token")
		return auth.LoginResponse{}, auth.ErrIssueToken
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"admin_id":   admin.ID,
	}).Info("Admin logged in")

	return auth.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		Admin:       auth.AdminResponse{ID: admin.ID, Email: admin.Email},
	}, nil
}

func (s *authService) CreateAdmin(c context.Context, req auth.CreateAdminRequest) (entity.AdminUser, error) {
	requestID := contextPkg.GetRequestID(c)

	hash, err := s.bcrypt.HashPassword(req.Password)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to hash password")
		return entity.AdminUser{}, auth.ErrCreateAdmin
	}

	now := time.Now().UTC()
	id, err := s.utils.NewULIDFromTimestamp(now)
	if err != nil {
		return entity.AdminUser{}, auth.ErrCreateAdmin
	}

	admin := entity.AdminUser{
		ID:           id,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	repo, err := s.authRepository.NewClient(false)
	if err != nil {
		return entity.AdminUser{}, auth.ErrCreateAdmin
	}

	if err := repo.Admins.CreateAdmin(c, admin); err != nil {
		if errors.Is(err, auth.ErrEmailAlreadyExists) {
			return entity.AdminUser{}, err
		}
		return entity.AdminUser{}, auth.ErrCreateAdmin
	}

	return admin, nil
}

func (s *authService) Me(c context.Context, adminID string) (auth.AdminResponse, error) {
	repo, err := s.authRepository.NewClient(false)
	if err != nil {
		return auth.AdminResponse{}, err
	}

	admin, err := repo.Admins.GetByID(c, adminID)
	if err != nil {
		return auth.AdminResponse{}, err
	}

	return auth.AdminResponse{ID: admin.ID, Email: admin.Email}, nil
}
