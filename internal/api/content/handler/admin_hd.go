package contentHandler

import (
	"errors"
	"time"

	"EportsTech/internal/api/content"
	"EportsTech/internal/entity"
	contextPkg "EportsTech/pkg/context"
	"EportsTech/pkg/handlerUtil"
	"EportsTech/pkg/log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *ContentHandler) UpsertServices(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing upsert services request")

	var req content.UpsertServicesRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}
	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	services := make([]entity.Service, 0, len(req.Services))
	for _, svc := range req.Services {
		services = append(services, svc.ToEntity())
	}

	count, err := h.contentService.UpsertServices(c, services)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "upsert_services")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"success": true,
			"count":   count,
		})
	}
}

func (h *ContentHandler) parseVisibility(ctx *fiber.Ctx) (bool, error) {
	var req content.VisibilityRequest
	if err := ctx.BodyParser(&req); err != nil {
		return false, err
	}
	if err := h.validator.Struct(req); err != nil {
		return false, err
	}
	return *req.Visible, nil
}

func (h *ContentHandler) SetServiceVisibility(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	visible, err := h.parseVisibility(ctx)
	if err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.contentService.SetServiceVisibility(c, ctx.Params("id"), visible); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "set_service_visibility")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{"success": true})
	}
}

func (h *ContentHandler) MoveService(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var req content.MoveRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}
	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	services, err := h.contentService.MoveService(c, ctx.Params("id"), req.Direction)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "move_service")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"success":  true,
			"services": services,
		})
	}
}

func (h *ContentHandler) UpsertConfiguratorItem(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var req content.ConfiguratorItemRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}
	req.ID = ctx.Params("id")
	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	item := req.ToEntity()
	if _, err := h.contentService.UpsertConfiguratorItems(c, []entity.ConfiguratorItem{item}); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "upsert_configurator_item")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"success": true,
			"item":    item,
		})
	}
}

func (h *ContentHandler) DeleteConfiguratorItem(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	id := ctx.Params("id")
	if id == "" {
		return errHandler.HandleValidationError(ctx, requestID, errors.New("item ID is required"), ctx.Path())
	}

	if err := h.contentService.DeleteConfiguratorItem(c, id); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "delete_configurator_item")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{"success": true})
	}
}

func (h *ContentHandler) SetConfiguratorItemVisibility(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	visible, err := h.parseVisibility(ctx)
	if err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.contentService.SetConfiguratorItemVisibility(c, ctx.Params("id"), visible); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "set_item_visibility")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{"success": true})
	}
}

func (h *ContentHandler) ReorderConfiguratorItems(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var req content.ReorderRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}
	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	items, err := h.contentService.ReorderConfiguratorItems(c, req.IDs)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "reorder_configurator_items")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"success": true,
			"items":   items,
		})
	}
}

func (h *ContentHandler) UpsertSections(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var req content.UpsertSectionsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}
	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	sections := make([]entity.CustomSection, 0, len(req.Sections))
	for _, section := range req.Sections {
		sections = append(sections, section.ToEntity())
	}

	count, err := h.contentService.UpsertSections(c, sections)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "upsert_sections")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"success": true,
			"count":   count,
		})
	}
}

func (h *ContentHandler) UpdateBrandConfig(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	cfg, err := h.contentService.UpdateBrandConfig(c, ctx.Body())
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "update_brand_config")
	}

	ctx.Set(fiber.HeaderETag, brandETag(cfg.Version))

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"success": true,
			"data":    cfg,
		})
	}
}

func (h *ContentHandler) UpdateBotConfig(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	cfg, err := h.contentService.UpdateBotConfig(c, ctx.Body())
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "update_bot_config")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"success": true,
			"data":    cfg,
		})
	}
}

func (h *ContentHandler) GetNotificationSettings(ctx *fiber.Ctx) error {
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	settings, status := h.contentService.FetchNotificationSettings(c)

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, content.SingletonResponse[entity.NotificationSettings]{
			Status: status,
			Data:   settings,
		})
	}
}

func (h *ContentHandler) UpdateNotificationSettings(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	settings, err := h.contentService.UpdateNotificationSettings(c, ctx.Body())
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "update_notification_settings")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"success": true,
			"data":    settings,
		})
	}
}
