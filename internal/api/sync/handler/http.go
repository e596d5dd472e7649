package syncHandler

import (
	syncService "EportsTech/internal/api/sync/service"
	"EportsTech/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type SyncHandler struct {
	log         *logrus.Logger
	validator   *validator.Validate
	middleware  middleware.Middleware
	syncService syncService.ISyncService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	ss syncService.ISyncService,
) *SyncHandler {
	return &SyncHandler{
		log:         log,
		validator:   validate,
		middleware:  middleware,
		syncService: ss,
	}
}

func (h *SyncHandler) Start(srv fiber.Router) {
	srv.Post("/sync", h.middleware.NewSyncKeyMiddleware, h.Sync)
}
