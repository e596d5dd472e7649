package chatService

import (
	"strings"

	"EportsTech/internal/api/chat"
	"EportsTech/internal/entity"
	"EportsTech/internal/localization"
	contextPkg "EportsTech/pkg/context"
	"EportsTech/pkg/gemini"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *chatService) Reply(ctx context.Context, req chat.ChatRequest, lang entity.Language) chat.ChatResponse {
	requestID := contextPkg.GetRequestID(ctx)

	apology := chat.ChatResponse{Reply: localization.ChatApology(lang), Fallback: true}
	if s.gemini == nil {
		return apology
	}

	bot, _ := s.content.FetchBotConfig(ctx)
	services := s.content.FetchServices(ctx)
	instruction := buildInstruction(bot, services.Items, lang, s.now())

	history := make([]gemini.Turn, 0, len(req.History))
	for _, turn := range req.History {
		history = append(history, gemini.Turn{Role: turn.Role, Text: turn.Text})
	}

	reply, err := s.gemini.Chat(ctx, instruction, history, strings.TrimSpace(req.Message))
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Chat completion failed")
		return apology
	}

	return chat.ChatResponse{Reply: reply}
}

func (s *chatService) Greeting(ctx context.Context, lang entity.Language) chat.GreetingResponse {
	bot, _ := s.content.FetchBotConfig(ctx)
	return chat.GreetingResponse{
		Greeting: localization.ChatGreeting(lang, bot.Name),
		Open:     bot.IsOpenAt(s.now()),
	}
}
