package chatService

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"EportsTech/internal/api/chat"
	"EportsTech/internal/entity"
	"EportsTech/internal/localization"
	"EportsTech/pkg/gemini"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGemini struct {
	reply       string
	err         error
	instruction string
	history     []gemini.Turn
	message     string
}

func (f *fakeGemini) Chat(_ context.Context, instruction string, history []gemini.Turn, message string) (string, error) {
	f.instruction = instruction
	f.history = history
	f.message = message
	return f.reply, f.err
}

func (f *fakeGemini) Close() error { return nil }

type staticContent struct {
	bot      entity.BotConfig
	services []entity.Service
}

func (s staticContent) FetchBotConfig(context.Context) (entity.BotConfig, entity.CollectionStatus) {
	return s.bot, entity.CollectionOK
}

func (s staticContent) FetchServices(context.Context) entity.CollectionResult[entity.Service] {
	return entity.CollectionResult[entity.Service]{Status: entity.CollectionOK, Items: s.services}
}

func madridBot() entity.BotConfig {
	return entity.BotConfig{
		Name:                "Nuria",
		Tone:                entity.ToneFriendly,
		ResponseLength:      entity.LengthConcise,
		HighlightedProduct:  "Managed Wi-Fi",
		BusinessHoursStart:  "09:00",
		BusinessHoursEnd:    "18:00",
		Timezone:            "Europe/Madrid",
		Limitations:         []string{"Quote prices"},
		QualifyingQuestions: []string{"How many employees?"},
		KnowledgeBase:       []string{"Offices in Barcelona"},
		CustomInstructions:  "Sign off with the company name.",
	}
}

func newService(g gemini.IGemini, content ContentSource, now time.Time) IChatService {
	log := logrus.New()
	log.SetOutput(io.Discard)

	return &chatService{
		log:     log,
		gemini:  g,
		content: content,
		now:     func() time.Time { return now },
	}
}

func TestReplyPassesConversation(t *testing.T) {
	g := &fakeGemini{reply: "We install fiber."}
	content := staticContent{bot: madridBot()}
	svc := newService(g, content, time.Now())

	resp := svc.Reply(context.Background(), chat.ChatRequest{
		Message: "  Do you do fiber?  ",
		History: []chat.ChatTurn{
			{Role: "user", Text: "Hi"},
			{Role: "model", Text: "Hello!"},
		},
	}, entity.LanguageEN)

	assert.Equal(t, "We install fiber.", resp.Reply)
	assert.False(t, resp.Fallback)
	assert.Equal(t, "Do you do fiber?", g.message)
	require.Len(t, g.history, 2)
	assert.Equal(t, "model", g.history[1].Role)
}

func TestReplyFallsBackToApology(t *testing.T) {
	content := staticContent{bot: madridBot()}

	t.Run("model error", func(t *testing.T) {
		svc := newService(&fakeGemini{err: errors.New("quota exceeded")}, content, time.Now())
		resp := svc.Reply(context.Background(), chat.ChatRequest{Message: "hola"}, entity.LanguageES)
		assert.True(t, resp.Fallback)
		assert.Equal(t, localization.ChatApology(entity.LanguageES), resp.Reply)
	})

	t.Run("no client", func(t *testing.T) {
		svc := newService(nil, content, time.Now())
		resp := svc.Reply(context.Background(), chat.ChatRequest{Message: "hello"}, entity.LanguageDE)
		assert.True(t, resp.Fallback)
		assert.Equal(t, localization.ChatApology(entity.LanguageDE), resp.Reply)
	})
}

func TestGreetingReportsOpenHours(t *testing.T) {
	madrid, err := time.LoadLocation("Europe/Madrid")
	require.NoError(t, err)
	content := staticContent{bot: madridBot()}

	open := newService(nil, content, time.Date(2026, 5, 4, 10, 30, 0, 0, madrid))
	greeting := open.Greeting(context.Background(), entity.LanguageEN)
	assert.True(t, greeting.Open)
	assert.Contains(t, greeting.Greeting, "Nuria")

	closed := newService(nil, content, time.Date(2026, 5, 4, 21, 0, 0, 0, madrid))
	assert.False(t, closed.Greeting(context.Background(), entity.LanguageEN).Open)
}

func TestBuildInstruction(t *testing.T) {
	madrid, err := time.LoadLocation("Europe/Madrid")
	require.NoError(t, err)

	services := []entity.Service{
		{
			Title:       entity.LocalizedText{entity.LanguageEN: "Fiber", entity.LanguageFR: "Fibre"},
			Description: entity.LocalizedText{entity.LanguageEN: "Symmetric links"},
			Visible:     true,
		},
		{
			Title:   entity.LocalizedText{entity.LanguageEN: "Legacy PBX"},
			Visible: false,
		},
	}

	instruction := buildInstruction(madridBot(), services, entity.LanguageFR, time.Date(2026, 5, 4, 22, 0, 0, 0, madrid))

	assert.True(t, strings.HasPrefix(instruction, "You are Nuria,"))
	assert.Contains(t, instruction, toneGuides[entity.ToneFriendly])
	assert.Contains(t, instruction, lengthGuides[entity.LengthConcise])
	assert.Contains(t, instruction, "Reply in French")
	assert.Contains(t, instruction, "The office is closed. Business hours are 09:00 to 18:00 (Europe/Madrid)")
	assert.Contains(t, instruction, "highlight: Managed Wi-Fi")
	assert.Contains(t, instruction, "- Fibre: Symmetric links\n")
	assert.NotContains(t, instruction, "Legacy PBX")
	assert.Contains(t, instruction, "- Quote prices\n")
	assert.Contains(t, instruction, "- How many employees?\n")
	assert.Contains(t, instruction, "- Offices in Barcelona\n")
	assert.True(t, strings.HasSuffix(instruction, "Sign off with the company name.\n"))
}

func TestBuildInstructionDefaultName(t *testing.T) {
	instruction := buildInstruction(entity.BotConfig{}, nil, entity.LanguageEN, time.Now())
	assert.True(t, strings.HasPrefix(instruction, "You are EportsTech assistant,"))
	assert.NotContains(t, instruction, "Services offered:")
}

func TestBuildInstructionFallsBackToBundledService(t *testing.T) {
	services := []entity.Service{
		{ID: "1", Visible: true},
		{
			ID:          "1",
			Title:       entity.LocalizedText{entity.LanguageEN: "Advisory"},
			Description: entity.LocalizedText{entity.LanguageFR: "Feuilles de route"},
			Visible:     true,
		},
	}

	instruction := buildInstruction(madridBot(), services, entity.LanguageFR, time.Now())

	assert.Contains(t, instruction, "- Consultant: Transformation Numérique, Processus\n")
	assert.Contains(t, instruction, "- Advisory: Feuilles de route\n")
}
