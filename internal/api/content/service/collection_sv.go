package contentService

import (
	contentRepository "EportsTech/internal/api/content/repository"
	"EportsTech/internal/defaults"
	"EportsTech/internal/entity"
	contextPkg "EportsTech/pkg/context"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// fetchCollection never fails: a store error or an empty table yields the
// bundled items, and the status records which of the two happened.
func fetchCollection[T any](
	ctx context.Context,
	s *contentService,
	name string,
	read func(c contentRepository.Client) ([]T, error),
	bundled func() []T,
) entity.CollectionResult[T] {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.contentRepo.NewClient(false)
	if err == nil {
		var items []T
		items, err = read(repo)
		if err == nil {
			if len(items) > 0 {
				return entity.CollectionResult[T]{Status: entity.CollectionOK, Items: items}
			}

			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"collection": name,
			}).Warn("Collection is empty, serving bundled defaults")
			return entity.CollectionResult[T]{Status: entity.CollectionEmpty, Items: bundled()}
		}
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"collection": name,
		"error":      err.Error(),
	}).Warn("Content store unavailable, serving bundled defaults")
	return entity.CollectionResult[T]{Status: entity.CollectionUnavailable, Items: bundled()}
}

func (s *contentService) FetchServices(ctx context.Context) entity.CollectionResult[entity.Service] {
	return fetchCollection(ctx, s, "services",
		func(c contentRepository.Client) ([]entity.Service, error) {
			return c.Services.GetAllServices(ctx)
		},
		defaults.Services,
	)
}

func (s *contentService) FetchConfiguratorItems(ctx context.Context) entity.CollectionResult[entity.ConfiguratorItem] {
	return fetchCollection(ctx, s, "configurator_items",
		func(c contentRepository.Client) ([]entity.ConfiguratorItem, error) {
			return c.ConfiguratorItems.GetAllItems(ctx)
		},
		defaults.ConfiguratorItems,
	)
}

// FetchSections has no bundled content; the fallback is an empty list.
func (s *contentService) FetchSections(ctx context.Context) entity.CollectionResult[entity.CustomSection] {
	return fetchCollection(ctx, s, "custom_sections",
		func(c contentRepository.Client) ([]entity.CustomSection, error) {
			return c.Sections.GetAllSections(ctx)
		},
		func() []entity.CustomSection { return []entity.CustomSection{} },
	)
}
