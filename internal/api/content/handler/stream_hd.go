package contentHandler

import (
	"context"
	"time"

	"EportsTech/internal/api/content"
	"EportsTech/internal/entity"
	"EportsTech/internal/middleware"
	contextPkg "EportsTech/pkg/context"
	"EportsTech/pkg/log"

	"github.com/gofiber/websocket/v2"
)

const streamPingInterval = 30 * time.Second

// StreamBrand sends the current brand config on connect and again after
// every published version change.
func (h *ContentHandler) StreamBrand(conn *websocket.Conn) {
	requestID, _ := conn.Locals(middleware.RequestIDKey).(string)

	ctx, cancel := context.WithCancel(contextPkg.WithRequestID(context.Background(), requestID))
	defer cancel()

	versions, closeSub := h.contentService.SubscribeBrand(ctx)
	defer closeSub()

	// reader: only used to notice the client going away
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	send := func() bool {
		cfg, status := h.contentService.FetchBrandConfig(ctx)
		if err := conn.WriteJSON(content.SingletonResponse[entity.BrandConfig]{Status: status, Data: cfg}); err != nil {
			h.log.WithFields(log.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Debug("Brand stream write failed")
			return false
		}
		return true
	}

	if !send() {
		return
	}

	ticker := time.NewTicker(streamPingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-versions:
			if !ok {
				versions = nil
				continue
			}
			if !send() {
				return
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(5*time.Second)); err != nil {
				return
			}
		}
	}
}
