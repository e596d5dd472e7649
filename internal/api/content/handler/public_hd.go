package contentHandler

import (
	"fmt"
	"time"

	"EportsTech/internal/api/content"
	"EportsTech/internal/entity"
	contextPkg "EportsTech/pkg/context"
	"EportsTech/pkg/handlerUtil"
	"EportsTech/pkg/log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *ContentHandler) GetServices(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing get services request")

	result := h.contentService.FetchServices(c)

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, result)
	}
}

func (h *ContentHandler) GetRenderedServices(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing get rendered services request")

	result := h.contentService.RenderServices(c, h.language(ctx))

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, result)
	}
}

func (h *ContentHandler) GetServiceRequest(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	prefill, err := h.contentService.ServiceRequest(c, ctx.Params("id"), h.language(ctx))
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "service_request")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, prefill)
	}
}

func (h *ContentHandler) GetConsultation(ctx *fiber.Ctx) error {
	errHandler := handlerUtil.New(h.log)
	return errHandler.HandleSuccess(ctx, fiber.StatusOK, h.contentService.Consultation(h.language(ctx)))
}

func (h *ContentHandler) GetConfiguratorItems(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing get configurator items request")

	result := h.contentService.FetchConfiguratorItems(c)

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, result)
	}
}

func brandETag(version int64) string {
	return fmt.Sprintf(`W/"brand-%d"`, version)
}

// GetBrandConfig answers 304 while the client already holds the current
// version, so polling clients cost one header round trip.
func (h *ContentHandler) GetBrandConfig(ctx *fiber.Ctx) error {
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	cfg, status := h.contentService.FetchBrandConfig(c)

	etag := brandETag(cfg.Version)
	ctx.Set(fiber.HeaderETag, etag)
	ctx.Set(fiber.HeaderCacheControl, "no-cache")

	if status == entity.CollectionOK && ctx.Get(fiber.HeaderIfNoneMatch) == etag {
		return ctx.SendStatus(fiber.StatusNotModified)
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, content.SingletonResponse[entity.BrandConfig]{
			Status: status,
			Data:   cfg,
		})
	}
}

func (h *ContentHandler) GetRenderedBrand(ctx *fiber.Ctx) error {
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	rendered := h.contentService.RenderBrand(c, h.language(ctx), time.Now())
	ctx.Set(fiber.HeaderETag, brandETag(rendered.Version))

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, rendered)
	}
}

func (h *ContentHandler) GetBotConfig(ctx *fiber.Ctx) error {
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	cfg, status := h.contentService.FetchBotConfig(c)

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, content.SingletonResponse[entity.BotConfig]{
			Status: status,
			Data:   cfg,
		})
	}
}

func (h *ContentHandler) GetSections(ctx *fiber.Ctx) error {
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	result := h.contentService.FetchSections(c)

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, result)
	}
}

func (h *ContentHandler) GetInsights(ctx *fiber.Ctx) error {
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	insight := h.contentService.Insights(c, ctx.Query("service"), h.language(ctx))

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, insight)
	}
}
