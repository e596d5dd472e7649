package chatHandler

import (
	"time"

	"EportsTech/internal/api/chat"
	"EportsTech/internal/entity"
	contextPkg "EportsTech/pkg/context"
	"EportsTech/pkg/handlerUtil"
	"EportsTech/pkg/log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *ChatHandler) Reply(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	// model latency dominates, so the budget is wider than other handlers
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 30*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing chat request")

	var req chat.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}
	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	lang := entity.ParseLanguage(string(req.Language), h.defaultLang)
	if q := ctx.Query("lang"); q != "" {
		lang = entity.ParseLanguage(q, lang)
	}

	res := h.chatService.Reply(c, req, lang)

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}

func (h *ChatHandler) Greeting(ctx *fiber.Ctx) error {
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	res := h.chatService.Greeting(c, entity.ParseLanguage(ctx.Query("lang"), h.defaultLang))

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}
