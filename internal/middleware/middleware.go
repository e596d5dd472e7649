package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type Middleware interface {
	NewRateLimiter(ctx *fiber.Ctx) error
	NewStrictRateLimiter(ctx *fiber.Ctx) error
	NewTokenMiddleware(ctx *fiber.Ctx) error
	NewSyncKeyMiddleware(ctx *fiber.Ctx) error
	NewRequestIDMiddleware() fiber.Handler
	NewLoggingMiddleware() fiber.Handler
	GetRequestID(ctx *fiber.Ctx) string
}

type middleware struct {
	auth                Authenticator
	rateLimitter        *rateLimiter
	strictRateLimitter  *rateLimiter
	syncKey             *syncKeyMiddleware
	requestIDMiddleware fiber.Handler
	log                 *logrus.Logger
}

// New wires the shared middleware. auth is mandatory: admin routes have no
// unauthenticated mode.
func New(logger *logrus.Logger, auth Authenticator) Middleware {
	if auth == nil {
		panic("middleware: authenticator is required")
	}

	return &middleware{
		auth:                auth,
		rateLimitter:        newRateLimiter(50, 100),
		strictRateLimitter:  newRateLimiter(1, 10),
		syncKey:             newSyncKeyMiddleware(),
		requestIDMiddleware: NewRequestIDMiddleware(),
		log:                 logger,
	}
}

func (m *middleware) GetRequestID(ctx *fiber.Ctx) string {
	requestID, ok := ctx.Locals(RequestIDKey).(string)
	if !ok || requestID == "" {
		return "unknown"
	}
	return requestID
}

func (m *middleware) NewRequestIDMiddleware() fiber.Handler {
	return m.requestIDMiddleware
}

func (m *middleware) NewLoggingMiddleware() fiber.Handler {
	return LoggerConfig()
}
