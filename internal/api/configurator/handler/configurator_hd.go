package configuratorHandler

import (
	"time"

	"EportsTech/internal/entity"
	contextPkg "EportsTech/pkg/context"
	"EportsTech/pkg/handlerUtil"
	"EportsTech/pkg/log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *ConfiguratorHandler) CreateSession(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing create configurator session request")

	session, err := h.configuratorService.CreateSession(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "create_configurator_session")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, session)
	}
}

func (h *ConfiguratorHandler) GetSession(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	session, err := h.configuratorService.GetSession(c, ctx.Params("id"))
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_configurator_session")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, session)
	}
}

func (h *ConfiguratorHandler) ToggleItem(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	session, err := h.configuratorService.ToggleItem(c, ctx.Params("id"), ctx.Params("itemId"))
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "toggle_configurator_item")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, session)
	}
}

func (h *ConfiguratorHandler) RequestQuote(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	lang := entity.ParseLanguage(ctx.Query("lang"), h.defaultLang)

	quote, err := h.configuratorService.RequestQuote(c, ctx.Params("id"), lang)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "request_quote")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, quote)
	}
}

func (h *ConfiguratorHandler) DeleteSession(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	if err := h.configuratorService.DeleteSession(c, ctx.Params("id")); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "delete_configurator_session")
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusNoContent, nil)
}
