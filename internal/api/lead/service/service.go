package leadService

import (
	"time"

	leads "EportsTech/internal/api/lead"
	leadRepository "EportsTech/internal/api/lead/repository"
	"EportsTech/internal/entity"
	"EportsTech/pkg/redis"
	"EportsTech/pkg/utils"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// DefaultIdempotencyTTL bounds how long a request id is remembered in Redis.
// The unique column keeps deduplicating after the key expires.
const DefaultIdempotencyTTL = 24 * time.Hour

// ItemSource supplies the configurator catalogue the selected ids are
// resolved against.
type ItemSource interface {
	FetchConfiguratorItems(ctx context.Context) entity.CollectionResult[entity.ConfiguratorItem]
}

type ILeadService interface {
	Submit(ctx context.Context, req leads.LeadRequest) (leads.SubmitResponse, error)
	SubmitConfiguratorLead(ctx context.Context, req leads.ConfiguratorLeadRequest) (leads.SubmitResponse, error)
	ListLeads(ctx context.Context, page, limit int) (leads.LeadListResponse, error)
	ListConfiguratorLeads(ctx context.Context, page, limit int) (leads.ConfiguratorLeadListResponse, error)
}

type leadService struct {
	log      *logrus.Logger
	leadRepo leadRepository.Repository
	redis    redis.IRedis
	items    ItemSource
	notifier Notifier
	utils    utils.IUtils
	ttl      time.Duration
}

func NewLeadService(
	log *logrus.Logger,
	leadRepo leadRepository.Repository,
	redis redis.IRedis,
	items ItemSource,
	notifier Notifier,
	utils utils.IUtils,
) ILeadService {
	return &leadService{
		log:      log,
		leadRepo: leadRepo,
		redis:    redis,
		items:    items,
		notifier: notifier,
		utils:    utils,
		ttl:      DefaultIdempotencyTTL,
	}
}
