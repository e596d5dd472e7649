package contentHandler

import (
	contentService "EportsTech/internal/api/content/service"
	"EportsTech/internal/entity"
	"EportsTech/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/sirupsen/logrus"
)

type ContentHandler struct {
	log            *logrus.Logger
	validator      *validator.Validate
	middleware     middleware.Middleware
	contentService contentService.IContentService
	defaultLang    entity.Language
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	cs contentService.IContentService,
	defaultLang entity.Language,
) *ContentHandler {
	return &ContentHandler{
		log:            log,
		validator:      validate,
		middleware:     middleware,
		contentService: cs,
		defaultLang:    defaultLang,
	}
}

func (h *ContentHandler) Start(srv fiber.Router) {
	content := srv.Group("/content")

	content.Get("/services", h.GetServices)
	content.Get("/services/rendered", h.GetRenderedServices)
	content.Get("/services/:id/request", h.GetServiceRequest)
	content.Get("/consultation", h.GetConsultation)
	content.Get("/configurator-items", h.GetConfiguratorItems)
	content.Get("/brand", h.GetBrandConfig)
	content.Get("/brand/rendered", h.GetRenderedBrand)
	content.Get("/brand/stream", h.upgradeOnly, websocket.New(h.StreamBrand))
	content.Get("/bot", h.GetBotConfig)
	content.Get("/sections", h.GetSections)
	content.Get("/insights", h.GetInsights)

	admin := srv.Group("/admin")

	admin.Put("/services", h.middleware.NewTokenMiddleware, h.UpsertServices)
	admin.Patch("/services/:id/visibility", h.middleware.NewTokenMiddleware, h.SetServiceVisibility)
	admin.Post("/services/:id/move", h.middleware.NewTokenMiddleware, h.MoveService)
	admin.Put("/configurator-items/order", h.middleware.NewTokenMiddleware, h.ReorderConfiguratorItems)
	admin.Put("/configurator-items/:id", h.middleware.NewTokenMiddleware, h.UpsertConfiguratorItem)
	admin.Delete("/configurator-items/:id", h.middleware.NewTokenMiddleware, h.DeleteConfiguratorItem)
	admin.Patch("/configurator-items/:id/visibility", h.middleware.NewTokenMiddleware, h.SetConfiguratorItemVisibility)
	admin.Patch("/brand", h.middleware.NewTokenMiddleware, h.UpdateBrandConfig)
	admin.Patch("/bot", h.middleware.NewTokenMiddleware, h.UpdateBotConfig)
	admin.Get("/notifications", h.middleware.NewTokenMiddleware, h.GetNotificationSettings)
	admin.Patch("/notifications", h.middleware.NewTokenMiddleware, h.UpdateNotificationSettings)
	admin.Put("/sections", h.middleware.NewTokenMiddleware, h.UpsertSections)
}

func (h *ContentHandler) language(ctx *fiber.Ctx) entity.Language {
	return entity.ParseLanguage(ctx.Query("lang"), h.defaultLang)
}

func (h *ContentHandler) upgradeOnly(ctx *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(ctx) {
		ctx.Locals("allowed", true)
		return ctx.Next()
	}
	return fiber.ErrUpgradeRequired
}
