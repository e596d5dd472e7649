package chatService

import (
	"time"

	"EportsTech/internal/api/chat"
	"EportsTech/internal/entity"
	"EportsTech/pkg/gemini"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// ContentSource supplies the persona and the live catalogue the assistant
// is grounded on.
type ContentSource interface {
	FetchBotConfig(ctx context.Context) (entity.BotConfig, entity.CollectionStatus)
	FetchServices(ctx context.Context) entity.CollectionResult[entity.Service]
}

type IChatService interface {
	Reply(ctx context.Context, req chat.ChatRequest, lang entity.Language) chat.ChatResponse
	Greeting(ctx context.Context, lang entity.Language) chat.GreetingResponse
}

type chatService struct {
	log     *logrus.Logger
	gemini  gemini.IGemini
	content ContentSource
	now     func() time.Time
}

// NewChatService accepts a nil gemini client; every reply is then the
// localized apology.
func NewChatService(
	log *logrus.Logger,
	gemini gemini.IGemini,
	content ContentSource,
) IChatService {
	return &chatService{
		log:     log,
		gemini:  gemini,
		content: content,
		now:     time.Now,
	}
}
