package middleware

import (
	"crypto/subtle"
	"os"

	"EportsTech/pkg/handlerUtil"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const (
	SyncKeyHeader = "X-Sync-Key"
	SyncKeyEnv    = "SYNC_API_KEY"
)

type syncKeyMiddleware struct {
	key []byte
}

func newSyncKeyMiddleware() *syncKeyMiddleware {
	return &syncKeyMiddleware{key: []byte(os.Getenv(SyncKeyEnv))}
}

// NewSyncKeyMiddleware admits callers holding the elevated sync credential.
// An unset key rejects every call.
func (m *middleware) NewSyncKeyMiddleware(ctx *fiber.Ctx) error {
	requestID := m.GetRequestID(ctx)
	provided := []byte(ctx.Get(SyncKeyHeader))

	if len(m.syncKey.key) == 0 || subtle.ConstantTimeCompare(provided, m.syncKey.key) != 1 {
		m.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"client_ip":  ctx.IP(),
			"configured": len(m.syncKey.key) > 0,
		}).Warn("Sync key rejected")
		return handlerUtil.New(m.log).HandleUnauthorized(ctx, requestID, "invalid sync key")
	}

	return ctx.Next()
}
