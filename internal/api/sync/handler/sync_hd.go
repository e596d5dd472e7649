package syncHandler

import (
	"errors"
	"time"

	contentsync "EportsTech/internal/api/sync"
	"EportsTech/internal/entity"
	contextPkg "EportsTech/pkg/context"
	"EportsTech/pkg/handlerUtil"
	"EportsTech/pkg/log"
	"EportsTech/pkg/response"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

const syncCompletedMessage = "Sync completed successfully"

// Sync answers in the {success, message, data} | {success:false, error}
// envelope the sync tooling expects rather than the generic error body.
func (h *SyncHandler) Sync(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 30*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var req contentsync.SyncRequest
	if err := ctx.BodyParser(&req); err != nil {
		return h.fail(ctx, requestID, fiber.StatusBadRequest, err)
	}
	if req.Services == nil || req.ConfiguratorItems == nil {
		return h.fail(ctx, requestID, fiber.StatusBadRequest, contentsync.ErrMissingCollections)
	}
	if err := h.validator.Struct(req); err != nil {
		return h.fail(ctx, requestID, fiber.StatusBadRequest, err)
	}

	services := make([]entity.Service, 0, len(req.Services))
	for _, svc := range req.Services {
		services = append(services, svc.ToEntity())
	}
	items := make([]entity.ConfiguratorItem, 0, len(req.ConfiguratorItems))
	for _, item := range req.ConfiguratorItems {
		items = append(items, item.ToEntity())
	}

	counts, err := h.syncService.Sync(c, services, items)
	if err != nil {
		status := fiber.StatusInternalServerError
		var respErr *response.Error
		if errors.As(err, &respErr) {
			status = respErr.Code
		}
		return h.fail(ctx, requestID, status, err)
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, contentsync.SyncResponse{
			Success: true,
			Message: syncCompletedMessage,
			Data:    &counts,
		})
	}
}

func (h *SyncHandler) fail(ctx *fiber.Ctx, requestID string, status int, err error) error {
	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"status":     status,
		"error":      err.Error(),
	}).Warn("Sync request rejected")

	return ctx.Status(status).JSON(contentsync.SyncResponse{
		Success: false,
		Error:   err.Error(),
	})
}
