package authService

import (
	"time"

	"EportsTech/internal/api/auth"
	authRepository "EportsTech/internal/api/auth/repository"
	"EportsTech/internal/entity"
	"EportsTech/pkg/bcrypt"
	"EportsTech/pkg/utils"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const DefaultTokenTTL = 12 * time.Hour

type IAuthService interface {
	Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error)
	CreateAdmin(ctx context.Context, req auth.CreateAdminRequest) (entity.AdminUser, error)
	Me(ctx context.Context, adminID string) (auth.AdminResponse, error)
}

type authService struct {
	log            *logrus.Logger
	authRepository authRepository.Repository
	bcrypt         bcrypt.IBcrypt
	utils          utils.IUtils
	tokenTTL       time.Duration
}

func NewAuthService(
	log *logrus.Logger,
	authRepo authRepository.Repository,
	bcrypt bcrypt.IBcrypt,
	utils utils.IUtils,
) IAuthService {
	return &authService{
		log:            log,
		authRepository: authRepo,
		bcrypt:         bcrypt,
		utils:          utils,
		tokenTTL:       DefaultTokenTTL,
	}
}
