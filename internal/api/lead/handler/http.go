package leadHandler

import (
	leadService "EportsTech/internal/api/lead/service"
	"EportsTech/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type LeadHandler struct {
	log         *logrus.Logger
	validator   *validator.Validate
	middleware  middleware.Middleware
	leadService leadService.ILeadService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	ls leadService.ILeadService,
) *LeadHandler {
	return &LeadHandler{
		log:         log,
		validator:   validate,
		middleware:  middleware,
		leadService: ls,
	}
}

func (h *LeadHandler) Start(srv fiber.Router) {
	public := srv.Group("/leads")
	public.Post("", h.middleware.NewStrictRateLimiter, h.SubmitLead)
	public.Post("/configurator", h.middleware.NewStrictRateLimiter, h.SubmitConfiguratorLead)

	admin := srv.Group("/admin")
	admin.Get("/leads", h.middleware.NewTokenMiddleware, h.ListLeads)
	admin.Get("/configurator-leads", h.middleware.NewTokenMiddleware, h.ListConfiguratorLeads)
}
