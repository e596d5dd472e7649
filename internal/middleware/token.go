package middleware

import (
	"EportsTech/internal/entity"
	contextPkg "EportsTech/pkg/context"
	"EportsTech/pkg/handlerUtil"
	jwtPkg "EportsTech/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// Authenticator resolves the admin behind a request or fails.
type Authenticator interface {
	Authenticate(ctx *fiber.Ctx) (entity.AdminLoginData, error)
}

type jwtAuthenticator struct {
	secretEnvKey string
}

func NewJWTAuthenticator() Authenticator {
	return &jwtAuthenticator{secretEnvKey: jwtPkg.AccessTokenSecret}
}

func (a *jwtAuthenticator) Authenticate(ctx *fiber.Ctx) (entity.AdminLoginData, error) {
	token, err := jwtPkg.VerifyTokenHeader(ctx, a.secretEnvKey)
	if err != nil {
		return entity.AdminLoginData{}, err
	}

	return jwtPkg.AdminFromClaims(token)
}

func (m *middleware) NewTokenMiddleware(ctx *fiber.Ctx) error {
	requestID := m.GetRequestID(ctx)

	admin, err := m.auth.Authenticate(ctx)
	if err != nil {
		m.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"path":       ctx.Path(),
			"method":     ctx.Method(),
			"client_ip":  ctx.IP(),
			"error":      err.Error(),
		}).Warn("Token verification failed")
		return handlerUtil.New(m.log).HandleUnauthorized(ctx, requestID, "Unauthorized, access token invalid or expired")
	}

	ctx.Locals(jwtPkg.AdminLocalsKey, admin)
	ctx.SetUserContext(contextPkg.WithAdminID(ctx.UserContext(), admin.ID))

	m.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"admin_id":   admin.ID,
	}).Debug("Authentication successful")

	return ctx.Next()
}
