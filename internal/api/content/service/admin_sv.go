package contentService

import (
	"errors"
	"sort"

	"EportsTech/internal/api/content"
	"EportsTech/internal/entity"
	contextPkg "EportsTech/pkg/context"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func hasDuplicateIDs(ids []string) bool {
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return true
		}
		seen[id] = struct{}{}
	}
	return false
}

// UpsertServices writes every service in one transaction. Services and
// configurator items are independent writes: a failure here never rolls
// back a previous item upsert.
func (s *contentService) UpsertServices(ctx context.Context, services []entity.Service) (int, error) {
	requestID := contextPkg.GetRequestID(ctx)

	ids := make([]string, 0, len(services))
	for _, svc := range services {
		ids = append(ids, svc.ID)
	}
	if hasDuplicateIDs(ids) {
		return 0, content.ErrDuplicateID
	}

	repo, err := s.contentRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return 0, content.ErrStoreUnavailable
	}
	defer repo.Rollback()

	for _, svc := range services {
		if err := repo.Services.UpsertService(ctx, svc.Normalize()); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         svc.ID,
				"error":      err.Error(),
			}).Error("Failed to upsert service")
			return 0, content.ErrSaveContent
		}
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return 0, content.ErrSaveContent
	}

	return len(services), nil
}

func (s *contentService) UpsertConfiguratorItems(ctx context.Context, items []entity.ConfiguratorItem) (int, error) {
	requestID := contextPkg.GetRequestID(ctx)

	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	if hasDuplicateIDs(ids) {
		return 0, content.ErrDuplicateID
	}

	repo, err := s.contentRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return 0, content.ErrStoreUnavailable
	}
	defer repo.Rollback()

	for _, item := range items {
		if err := repo.ConfiguratorItems.UpsertItem(ctx, item.Normalize()); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         item.ID,
				"error":      err.Error(),
			}).Error("Failed to upsert configurator item")
			return 0, content.ErrSaveContent
		}
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return 0, content.ErrSaveContent
	}

	return len(items), nil
}

// UpsertSections replaces the whole section list.
func (s *contentService) UpsertSections(ctx context.Context, sections []entity.CustomSection) (int, error) {
	requestID := contextPkg.GetRequestID(ctx)

	ids := make([]string, 0, len(sections))
	for _, section := range sections {
		ids = append(ids, section.ID)
	}
	if hasDuplicateIDs(ids) {
		return 0, content.ErrDuplicateID
	}

	repo, err := s.contentRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return 0, content.ErrStoreUnavailable
	}
	defer repo.Rollback()

	if err := repo.Sections.DeleteSectionsExcept(ctx, ids); err != nil {
		return 0, content.ErrSaveContent
	}

	for _, section := range sections {
		if err := repo.Sections.UpsertSection(ctx, section.Normalize()); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         section.ID,
				"error":      err.Error(),
			}).Error("Failed to upsert section")
			return 0, content.ErrSaveContent
		}
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return 0, content.ErrSaveContent
	}

	return len(sections), nil
}

func (s *contentService) SetServiceVisibility(ctx context.Context, id string, visible bool) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.contentRepo.NewClient(false)
	if err != nil {
		return content.ErrStoreUnavailable
	}

	if err := repo.Services.SetServiceVisibility(ctx, id, visible); err != nil {
		if errors.Is(err, content.ErrServiceNotFound) {
			return err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to set service visibility")
		return content.ErrSaveContent
	}

	return nil
}

func (s *contentService) SetConfiguratorItemVisibility(ctx context.Context, id string, visible bool) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.contentRepo.NewClient(false)
	if err != nil {
		return content.ErrStoreUnavailable
	}

	if err := repo.ConfiguratorItems.SetItemVisibility(ctx, id, visible); err != nil {
		if errors.Is(err, content.ErrConfiguratorItemNotFound) {
			return err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to set configurator item visibility")
		return content.ErrSaveContent
	}

	return nil
}

// MoveService swaps the service with its neighbour and renumbers the whole
// collection 0..n-1 so gaps left by earlier edits disappear.
func (s *contentService) MoveService(ctx context.Context, id string, direction string) ([]entity.Service, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.contentRepo.NewClient(true)
	if err != nil {
		return nil, content.ErrStoreUnavailable
	}
	defer repo.Rollback()

	services, err := repo.Services.GetAllServices(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to read services")
		return nil, content.ErrStoreUnavailable
	}

	sort.SliceStable(services, func(i, j int) bool { return services[i].Order < services[j].Order })

	idx := -1
	for i, svc := range services {
		if svc.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, content.ErrServiceNotFound
	}

	target := idx - 1
	if direction == content.MoveDown {
		target = idx + 1
	}
	if target < 0 || target >= len(services) {
		return nil, content.ErrInvalidMove
	}

	services[idx], services[target] = services[target], services[idx]

	for i := range services {
		services[i].Order = i
		if err := repo.Services.UpsertService(ctx, services[i]); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         services[i].ID,
				"error":      err.Error(),
			}).Error("Failed to renumber service")
			return nil, content.ErrSaveContent
		}
	}

	if err := repo.Commit(); err != nil {
		return nil, content.ErrSaveContent
	}

	return services, nil
}

// ReorderConfiguratorItems puts the listed ids first, in the given order,
// followed by the remaining items in their current order.
func (s *contentService) ReorderConfiguratorItems(ctx context.Context, ids []string) ([]entity.ConfiguratorItem, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if hasDuplicateIDs(ids) {
		return nil, content.ErrDuplicateID
	}

	repo, err := s.contentRepo.NewClient(true)
	if err != nil {
		return nil, content.ErrStoreUnavailable
	}
	defer repo.Rollback()

	items, err := repo.ConfiguratorItems.GetAllItems(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to read configurator items")
		return nil, content.ErrStoreUnavailable
	}

	sort.SliceStable(items, func(i, j int) bool { return items[i].Order < items[j].Order })

	byID := make(map[string]entity.ConfiguratorItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	ordered := make([]entity.ConfiguratorItem, 0, len(items))
	placed := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		item, ok := byID[id]
		if !ok {
			return nil, content.ErrConfiguratorItemNotFound
		}
		ordered = append(ordered, item)
		placed[id] = struct{}{}
	}
	for _, item := range items {
		if _, ok := placed[item.ID]; !ok {
			ordered = append(ordered, item)
		}
	}

	for i := range ordered {
		ordered[i].Order = i
		if err := repo.ConfiguratorItems.UpsertItem(ctx, ordered[i]); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         ordered[i].ID,
				"error":      err.Error(),
			}).Error("Failed to renumber configurator item")
			return nil, content.ErrSaveContent
		}
	}

	if err := repo.Commit(); err != nil {
		return nil, content.ErrSaveContent
	}

	return ordered, nil
}

func (s *contentService) DeleteConfiguratorItem(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.contentRepo.NewClient(false)
	if err != nil {
		return content.ErrStoreUnavailable
	}

	if err := repo.ConfiguratorItems.DeleteItem(ctx, id); err != nil {
		if errors.Is(err, content.ErrConfiguratorItemNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("Configurator item not found")
			return err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to delete configurator item")
		return content.ErrSaveContent
	}

	return nil
}
