package leadHandler

import (
	"time"

	leads "EportsTech/internal/api/lead"
	contextPkg "EportsTech/pkg/context"
	"EportsTech/pkg/handlerUtil"
	"EportsTech/pkg/log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *LeadHandler) SubmitLead(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing lead submission")

	var req leads.LeadRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}
	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	res, err := h.leadService.Submit(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "submit_lead")
	}

	status := fiber.StatusCreated
	if res.Duplicate {
		status = fiber.StatusOK
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, status, res)
	}
}

func (h *LeadHandler) SubmitConfiguratorLead(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var req leads.ConfiguratorLeadRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}
	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	res, err := h.leadService.SubmitConfiguratorLead(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "submit_configurator_lead")
	}

	status := fiber.StatusCreated
	if res.Duplicate {
		status = fiber.StatusOK
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, status, res)
	}
}

func (h *LeadHandler) ListLeads(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	res, err := h.leadService.ListLeads(c, ctx.QueryInt("page", 1), ctx.QueryInt("limit", 20))
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "list_leads")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}

func (h *LeadHandler) ListConfiguratorLeads(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	res, err := h.leadService.ListConfiguratorLeads(c, ctx.QueryInt("page", 1), ctx.QueryInt("limit", 20))
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "list_configurator_leads")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}
