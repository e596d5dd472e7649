package syncService

import (
	contentsync "EportsTech/internal/api/sync"
	"EportsTech/internal/entity"
	contextPkg "EportsTech/pkg/context"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// ContentWriter is the part of the content service the sync path drives.
type ContentWriter interface {
	UpsertServices(ctx context.Context, services []entity.Service) (int, error)
	UpsertConfiguratorItems(ctx context.Context, items []entity.ConfiguratorItem) (int, error)
}

type ISyncService interface {
	Sync(ctx context.Context, services []entity.Service, items []entity.ConfiguratorItem) (contentsync.SyncCounts, error)
}

type syncService struct {
	log     *logrus.Logger
	content ContentWriter
}

func NewSyncService(log *logrus.Logger, content ContentWriter) ISyncService {
	return &syncService{
		log:     log,
		content: content,
	}
}

// Sync upserts services then configurator items. Each collection commits on
// its own, so a failed item upsert leaves the services in place.
func (s *syncService) Sync(ctx context.Context, services []entity.Service, items []entity.ConfiguratorItem) (contentsync.SyncCounts, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if services == nil || items == nil {
		return contentsync.SyncCounts{}, contentsync.ErrMissingCollections
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"services":   len(services),
		"items":      len(items),
	}).Info("Starting content sync")

	servicesCount, err := s.content.UpsertServices(ctx, services)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Services sync failed")
		return contentsync.SyncCounts{}, wrap(contentsync.ErrServicesSync, err)
	}

	itemsCount, err := s.content.UpsertConfiguratorItems(ctx, items)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Items sync failed")
		return contentsync.SyncCounts{ServicesCount: servicesCount}, wrap(contentsync.ErrItemsSync, err)
	}

	s.log.WithFields(logrus.Fields{
		"request_id":     requestID,
		"services_count": servicesCount,
		"items_count":    itemsCount,
	}).Info("Content sync completed")

	return contentsync.SyncCounts{ServicesCount: servicesCount, ItemsCount: itemsCount}, nil
}
