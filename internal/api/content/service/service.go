package contentService

import (
	"time"

	"EportsTech/internal/api/content"
	contentRepository "EportsTech/internal/api/content/repository"
	"EportsTech/internal/entity"
	"EportsTech/pkg/redis"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IContentService interface {
	FetchServices(ctx context.Context) entity.CollectionResult[entity.Service]
	FetchConfiguratorItems(ctx context.Context) entity.CollectionResult[entity.ConfiguratorItem]
	FetchSections(ctx context.Context) entity.CollectionResult[entity.CustomSection]

	FetchBrandConfig(ctx context.Context) (entity.BrandConfig, entity.CollectionStatus)
	FetchBotConfig(ctx context.Context) (entity.BotConfig, entity.CollectionStatus)
	FetchNotificationSettings(ctx context.Context) (entity.NotificationSettings, entity.CollectionStatus)

	RenderServices(ctx context.Context, lang entity.Language) content.RenderedServicesResponse
	RenderBrand(ctx context.Context, lang entity.Language, now time.Time) content.RenderedBrand
	ServiceRequest(ctx context.Context, id string, lang entity.Language) (content.PrefillResponse, error)
	Consultation(lang entity.Language) content.PrefillResponse
	Insights(ctx context.Context, serviceInterest string, lang entity.Language) content.InsightResponse

	UpsertServices(ctx context.Context, services []entity.Service) (int, error)
	UpsertConfiguratorItems(ctx context.Context, items []entity.ConfiguratorItem) (int, error)
	UpsertSections(ctx context.Context, sections []entity.CustomSection) (int, error)
	SetServiceVisibility(ctx context.Context, id string, visible bool) error
	MoveService(ctx context.Context, id string, direction string) ([]entity.Service, error)
	SetConfiguratorItemVisibility(ctx context.Context, id string, visible bool) error
	ReorderConfiguratorItems(ctx context.Context, ids []string) ([]entity.ConfiguratorItem, error)
	DeleteConfiguratorItem(ctx context.Context, id string) error

	UpdateBrandConfig(ctx context.Context, patch []byte) (entity.BrandConfig, error)
	UpdateBotConfig(ctx context.Context, patch []byte) (entity.BotConfig, error)
	UpdateNotificationSettings(ctx context.Context, patch []byte) (entity.NotificationSettings, error)

	SubscribeBrand(ctx context.Context) (<-chan int64, func() error)
}

type contentService struct {
	log         *logrus.Logger
	contentRepo contentRepository.Repository
	redis       redis.IRedis
}

func NewContentService(
	log *logrus.Logger,
	contentRepo contentRepository.Repository,
	redis redis.IRedis,
) IContentService {
	return &contentService{
		log:         log,
		contentRepo: contentRepo,
		redis:       redis,
	}
}
