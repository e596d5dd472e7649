package context

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

type contextKey string

// RequestIDKey matches the logrus field name used by every log line.
const RequestIDKey = "request_id"

const adminKey contextKey = "admin_id"

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

func GetRequestID(ctx context.Context) string {
	requestID, ok := ctx.Value(RequestIDKey).(string)
	if !ok || requestID == "" {
		return "unknown"
	}
	return requestID
}

func WithAdminID(ctx context.Context, adminID string) context.Context {
	return context.WithValue(ctx, adminKey, adminID)
}

func GetAdminID(ctx context.Context) string {
	id, _ := ctx.Value(adminKey).(string)
	return id
}

func FromFiberCtx(c *fiber.Ctx) context.Context {
	ctx := c.UserContext()

	requestID, ok := c.Locals("X-Request-ID").(string)
	if !ok || requestID == "" {
		requestID = c.Get("X-Request-ID")

		if requestID == "" {
			requestID = "unknown"
		}
	}

	return WithRequestID(ctx, requestID)
}
