package mediaHandler

import (
	mediaService "EportsTech/internal/api/media/service"
	"EportsTech/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type MediaHandler struct {
	log          *logrus.Logger
	validator    *validator.Validate
	middleware   middleware.Middleware
	mediaService mediaService.IMediaService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	ms mediaService.IMediaService,
) *MediaHandler {
	return &MediaHandler{
		log:          log,
		validator:    validate,
		middleware:   middleware,
		mediaService: ms,
	}
}

func (h *MediaHandler) Start(srv fiber.Router) {
	admin := srv.Group("/admin")
	admin.Post("/media", h.middleware.NewTokenMiddleware, h.Upload)
	admin.Delete("/media", h.middleware.NewTokenMiddleware, h.Delete)
}
