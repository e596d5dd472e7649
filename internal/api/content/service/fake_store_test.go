package contentService

import (
	"errors"
	"io"
	"sort"

	"EportsTech/internal/api/content"
	contentRepository "EportsTech/internal/api/content/repository"
	"EportsTech/internal/entity"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

var errStoreDown = errors.New("connection refused")

// fakeStore keeps every table in memory and counts commits. Writes apply
// immediately; tests check commits to see whether a transaction finished.
type fakeStore struct {
	services []entity.Service
	items    []entity.ConfiguratorItem
	sections []entity.CustomSection

	brand    *entity.BrandConfig
	bot      *entity.BotConfig
	settings *entity.NotificationSettings
	version  int64

	clientErr error
	readErr   error
	writeErr  error
	commits   int
}

type fakeRepository struct {
	store *fakeStore
}

func (r *fakeRepository) NewClient(tx bool) (contentRepository.Client, error) {
	if r.store.clientErr != nil {
		return contentRepository.Client{}, r.store.clientErr
	}
	return contentRepository.Client{
		Services:          r.store,
		ConfiguratorItems: r.store,
		Sections:          r.store,
		Singletons:        r.store,
		Commit: func() error {
			r.store.commits++
			return nil
		},
		Rollback: func() error { return nil },
	}, nil
}

func newTestService(store *fakeStore) *contentService {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewContentService(log, &fakeRepository{store: store}, nil).(*contentService)
}

func (f *fakeStore) GetAllServices(ctx context.Context) ([]entity.Service, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	out := append([]entity.Service(nil), f.services...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (f *fakeStore) UpsertService(ctx context.Context, service entity.Service) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	for i := range f.services {
		if f.services[i].ID == service.ID {
			f.services[i] = service
			return nil
		}
	}
	f.services = append(f.services, service)
	return nil
}

func (f *fakeStore) SetServiceVisibility(ctx context.Context, id string, visible bool) error {
	for i := range f.services {
		if f.services[i].ID == id {
			f.services[i].Visible = visible
			return nil
		}
	}
	return content.ErrServiceNotFound
}

func (f *fakeStore) GetAllItems(ctx context.Context) ([]entity.ConfiguratorItem, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	out := append([]entity.ConfiguratorItem(nil), f.items...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (f *fakeStore) UpsertItem(ctx context.Context, item entity.ConfiguratorItem) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	for i := range f.items {
		if f.items[i].ID == item.ID {
			f.items[i] = item
			return nil
		}
	}
	f.items = append(f.items, item)
	return nil
}

func (f *fakeStore) SetItemVisibility(ctx context.Context, id string, visible bool) error {
	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i].Visible = visible
			return nil
		}
	}
	return content.ErrConfiguratorItemNotFound
}

func (f *fakeStore) DeleteItem(ctx context.Context, id string) error {
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return content.ErrConfiguratorItemNotFound
}

func (f *fakeStore) GetAllSections(ctx context.Context) ([]entity.CustomSection, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	return append([]entity.CustomSection(nil), f.sections...), nil
}

func (f *fakeStore) UpsertSection(ctx context.Context, section entity.CustomSection) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	for i := range f.sections {
		if f.sections[i].ID == section.ID {
			f.sections[i] = section
			return nil
		}
	}
	f.sections = append(f.sections, section)
	return nil
}

func (f *fakeStore) DeleteSectionsExcept(ctx context.Context, ids []string) error {
	keep := make(map[string]bool, len(ids))
	for _, id := range ids {
		keep[id] = true
	}
	out := f.sections[:0]
	for _, section := range f.sections {
		if keep[section.ID] {
			out = append(out, section)
		}
	}
	f.sections = out
	return nil
}

func (f *fakeStore) GetBrandConfig(ctx context.Context) (entity.BrandConfig, error) {
	if f.readErr != nil {
		return entity.BrandConfig{}, f.readErr
	}
	if f.brand == nil {
		return entity.BrandConfig{}, contentRepository.ErrSingletonMissing
	}
	cfg := *f.brand
	cfg.Version = f.version
	return cfg, nil
}

func (f *fakeStore) SaveBrandConfig(ctx context.Context, cfg entity.BrandConfig) (int64, error) {
	if f.writeErr != nil {
		return 0, f.writeErr
	}
	f.version++
	f.brand = &cfg
	return f.version, nil
}

func (f *fakeStore) GetBotConfig(ctx context.Context) (entity.BotConfig, error) {
	if f.readErr != nil {
		return entity.BotConfig{}, f.readErr
	}
	if f.bot == nil {
		return entity.BotConfig{}, contentRepository.ErrSingletonMissing
	}
	return *f.bot, nil
}

func (f *fakeStore) SaveBotConfig(ctx context.Context, cfg entity.BotConfig) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.bot = &cfg
	return nil
}

func (f *fakeStore) GetNotificationSettings(ctx context.Context) (entity.NotificationSettings, error) {
	if f.readErr != nil {
		return entity.NotificationSettings{}, f.readErr
	}
	if f.settings == nil {
		return entity.NotificationSettings{}, contentRepository.ErrSingletonMissing
	}
	return *f.settings, nil
}

func (f *fakeStore) SaveNotificationSettings(ctx context.Context, settings entity.NotificationSettings) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.settings = &settings
	return nil
}
