package configuratorHandler

import (
	configuratorService "EportsTech/internal/api/configurator/service"
	"EportsTech/internal/entity"
	"EportsTech/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ConfiguratorHandler struct {
	log                 *logrus.Logger
	validator           *validator.Validate
	middleware          middleware.Middleware
	configuratorService configuratorService.IConfiguratorService
	defaultLang         entity.Language
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	cs configuratorService.IConfiguratorService,
	defaultLang entity.Language,
) *ConfiguratorHandler {
	return &ConfiguratorHandler{
		log:                 log,
		validator:           validate,
		middleware:          middleware,
		configuratorService: cs,
		defaultLang:         defaultLang,
	}
}

func (h *ConfiguratorHandler) Start(srv fiber.Router) {
	sessions := srv.Group("/configurator/sessions")

	sessions.Post("", h.middleware.NewRateLimiter, h.CreateSession)
	sessions.Get("/:id", h.GetSession)
	sessions.Post("/:id/items/:itemId/toggle", h.middleware.NewRateLimiter, h.ToggleItem)
	sessions.Post("/:id/quote", h.middleware.NewRateLimiter, h.RequestQuote)
	sessions.Delete("/:id", h.DeleteSession)
}
