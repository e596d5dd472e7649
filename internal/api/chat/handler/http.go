package chatHandler

import (
	chatService "EportsTech/internal/api/chat/service"
	"EportsTech/internal/entity"
	"EportsTech/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ChatHandler struct {
	log         *logrus.Logger
	validator   *validator.Validate
	middleware  middleware.Middleware
	chatService chatService.IChatService
	defaultLang entity.Language
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	cs chatService.IChatService,
	defaultLang entity.Language,
) *ChatHandler {
	return &ChatHandler{
		log:         log,
		validator:   validate,
		middleware:  middleware,
		chatService: cs,
		defaultLang: defaultLang,
	}
}

func (h *ChatHandler) Start(srv fiber.Router) {
	chat := srv.Group("/chat")
	chat.Post("", h.middleware.NewStrictRateLimiter, h.Reply)
	chat.Get("/greeting", h.Greeting)
}
