package configuratorService

import (
	"time"

	configurators "EportsTech/internal/api/configurator"
	"EportsTech/internal/entity"
	"EportsTech/pkg/redis"
	"EportsTech/pkg/utils"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const DefaultSessionTTL = 30 * time.Minute

// ItemSource supplies the configurator catalogue.
type ItemSource interface {
	FetchConfiguratorItems(ctx context.Context) entity.CollectionResult[entity.ConfiguratorItem]
}

type IConfiguratorService interface {
	CreateSession(ctx context.Context) (configurators.SessionResponse, error)
	GetSession(ctx context.Context, id string) (configurators.SessionResponse, error)
	ToggleItem(ctx context.Context, id string, itemID string) (configurators.SessionResponse, error)
	RequestQuote(ctx context.Context, id string, lang entity.Language) (configurators.QuoteResponse, error)
	DeleteSession(ctx context.Context, id string) error
}

type configuratorService struct {
	log   *logrus.Logger
	redis redis.IRedis
	items ItemSource
	utils utils.IUtils
	ttl   time.Duration
}

func NewConfiguratorService(
	log *logrus.Logger,
	redis redis.IRedis,
	items ItemSource,
	utils utils.IUtils,
	ttl time.Duration,
) IConfiguratorService {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &configuratorService{
		log:   log,
		redis: redis,
		items: items,
		utils: utils,
		ttl:   ttl,
	}
}
