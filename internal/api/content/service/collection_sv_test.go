package contentService

import (
	"testing"

	"EportsTech/internal/defaults"
	"EportsTech/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"
)

func service(id string, order int, visible bool, titleEN string) entity.Service {
	return entity.Service{
		ID:          id,
		Category:    entity.CategoryNetworking,
		Title:       entity.LocalizedText{entity.LanguageEN: titleEN}.Normalize(),
		Description: entity.LocalizedText{entity.LanguageEN: titleEN + " description"}.Normalize(),
		Visible:     visible,
		Order:       order,
	}
}

func TestFetchServicesFromStore(t *testing.T) {
	store := &fakeStore{services: []entity.Service{service("a", 0, true, "A")}}
	s := newTestService(store)

	result := s.FetchServices(context.Background())

	assert.Equal(t, entity.CollectionOK, result.Status)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "a", result.Items[0].ID)
}

func TestFetchServicesEmptyStoreServesDefaults(t *testing.T) {
	s := newTestService(&fakeStore{})

	result := s.FetchServices(context.Background())

	assert.Equal(t, entity.CollectionEmpty, result.Status)
	assert.Equal(t, defaults.Services(), result.Items)
}

func TestFetchServicesUnavailableServesDefaults(t *testing.T) {
	tests := []struct {
		name  string
		store *fakeStore
	}{
		{name: "client error", store: &fakeStore{clientErr: errStoreDown}},
		{name: "read error", store: &fakeStore{readErr: errStoreDown}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := newTestService(tt.store).FetchServices(context.Background())

			assert.Equal(t, entity.CollectionUnavailable, result.Status)
			assert.Equal(t, defaults.Services(), result.Items)
		})
	}
}

func TestFetchConfiguratorItemsFallback(t *testing.T) {
	result := newTestService(&fakeStore{readErr: errStoreDown}).FetchConfiguratorItems(context.Background())

	assert.Equal(t, entity.CollectionUnavailable, result.Status)
	assert.Equal(t, defaults.ConfiguratorItems(), result.Items)
}

func TestFetchSectionsFallbackIsEmptyList(t *testing.T) {
	result := newTestService(&fakeStore{}).FetchSections(context.Background())

	assert.Equal(t, entity.CollectionEmpty, result.Status)
	assert.NotNil(t, result.Items)
	assert.Empty(t, result.Items)
}

func TestFetchSingletons(t *testing.T) {
	t.Run("missing row is empty", func(t *testing.T) {
		cfg, status := newTestService(&fakeStore{}).FetchBrandConfig(context.Background())

		assert.Equal(t, entity.CollectionEmpty, status)
		assert.Equal(t, defaults.BrandConfig(), cfg)
	})

	t.Run("store error is unavailable", func(t *testing.T) {
		cfg, status := newTestService(&fakeStore{readErr: errStoreDown}).FetchBotConfig(context.Background())

		assert.Equal(t, entity.CollectionUnavailable, status)
		assert.Equal(t, defaults.BotConfig(), cfg)
	})

	t.Run("stored row is ok", func(t *testing.T) {
		settings := entity.NotificationSettings{EmailRecipients: []string{"sales@eportstech.com"}}.Normalize()
		got, status := newTestService(&fakeStore{settings: &settings}).FetchNotificationSettings(context.Background())

		assert.Equal(t, entity.CollectionOK, status)
		assert.Equal(t, []string{"sales@eportstech.com"}, got.EmailRecipients)
	})
}

func TestUpsertThenFetchRoundTrip(t *testing.T) {
	store := &fakeStore{}
	s := newTestService(store)

	written := []entity.Service{
		{
			ID:                  "iot",
			Icon:                "Cpu",
			Category:            entity.CategoryIOT,
			Title:               entity.LocalizedText{entity.LanguageEN: "IoT", entity.LanguageCA: "IoT"},
			Description:         entity.LocalizedText{entity.LanguageEN: "Sensors"},
			ExtendedDescription: entity.LocalizedText{entity.LanguageEN: "Connected sensors"},
			Features:            entity.LocalizedList{entity.LanguageEN: {"LoRa", "NB-IoT"}},
			Visible:             true,
			Order:               0,
		},
		{
			ID:          "voip",
			Category:    entity.CategoryTelephony,
			Title:       entity.LocalizedText{entity.LanguageES: "Telefonía"},
			Description: entity.LocalizedText{},
			Order:       1,
		},
	}

	_, err := s.UpsertServices(context.Background(), written)
	require.NoError(t, err)

	result := s.FetchServices(context.Background())
	require.Equal(t, entity.CollectionOK, result.Status)
	require.Len(t, result.Items, len(written))
	for i := range written {
		assert.Equal(t, written[i].Normalize(), result.Items[i])
	}
}
