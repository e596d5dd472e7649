package contentService

import (
	"errors"
	"io"
	"testing"
	"time"

	"EportsTech/internal/api/content"
	"EportsTech/internal/defaults"
	"EportsTech/internal/entity"
	"EportsTech/pkg/redis/redistest"
	"EportsTech/pkg/response"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"
)

func newServiceWithRedis(store *fakeStore, redis *redistest.Fake) *contentService {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewContentService(log, &fakeRepository{store: store}, redis).(*contentService)
}

func errorKey(t *testing.T, err error) string {
	t.Helper()
	var respErr *response.Error
	require.True(t, errors.As(err, &respErr), "expected response.Error, got %v", err)
	return respErr.Key
}

func storedBrand() *entity.BrandConfig {
	cfg := defaults.BrandConfig()
	cfg.SiteName = "EportsTech"
	cfg.Hero.Title = entity.LocalizedText{entity.LanguageES: "Hola", entity.LanguageEN: "Hello"}.Normalize()
	return &cfg
}

func TestUpdateBrandConfigMergesNestedObjects(t *testing.T) {
	store := &fakeStore{brand: storedBrand(), version: 3}
	redis := redistest.New()
	s := newServiceWithRedis(store, redis)

	got, err := s.UpdateBrandConfig(context.Background(), []byte(`{"hero":{"title":{"en":"Welcome"}}}`))
	require.NoError(t, err)

	assert.Equal(t, "Hola", got.Hero.Title.Get(entity.LanguageES))
	assert.Equal(t, "Welcome", got.Hero.Title.Get(entity.LanguageEN))
	assert.Equal(t, "EportsTech", got.SiteName)
	assert.Equal(t, int64(4), got.Version)
	assert.Equal(t, 1, store.commits)
	assert.Equal(t, []string{"4"}, redis.Published[BrandChannel])
}

func TestUpdateBrandConfigOverMissingRowUsesDefaults(t *testing.T) {
	store := &fakeStore{}
	s := newTestService(store)

	got, err := s.UpdateBrandConfig(context.Background(), []byte(`{"siteName":"Eports"}`))
	require.NoError(t, err)

	assert.Equal(t, "Eports", got.SiteName)
	assert.Equal(t, defaults.HeroImage, got.Hero.Image)
	assert.Equal(t, int64(1), got.Version)
}

func TestUpdateBrandConfigArraysReplace(t *testing.T) {
	store := &fakeStore{brand: storedBrand()}
	s := newTestService(store)

	patch := `{"benefits":{"items":[{"title":{"en":"Fast"}},{"title":{"en":"Secure"}}]}}`
	got, err := s.UpdateBrandConfig(context.Background(), []byte(patch))
	require.NoError(t, err)

	require.Len(t, got.Benefits.Items, entity.BenefitItemCount)
	assert.Equal(t, "Fast", got.Benefits.Items[0].Title.Get(entity.LanguageEN))
	assert.Equal(t, "Secure", got.Benefits.Items[1].Title.Get(entity.LanguageEN))
	for _, lang := range entity.SupportedLanguages {
		assert.Empty(t, got.Benefits.Items[2].Title.Get(lang))
	}
}

func TestUpdateBrandConfigRejectsInvalidResult(t *testing.T) {
	store := &fakeStore{brand: storedBrand(), version: 2}
	s := newTestService(store)

	_, err := s.UpdateBrandConfig(context.Background(), []byte(`{"hero":{"imagePosition":"diagonal"}}`))
	require.Error(t, err)

	assert.Equal(t, "INVALID_BRAND_CONFIG", errorKey(t, err))
	assert.Equal(t, 0, store.commits)
	assert.Equal(t, int64(2), store.version)
	assert.Equal(t, entity.ImagePositionCenter, store.brand.Hero.ImagePosition)
}

func TestUpdateBrandConfigRejectsMalformedPatch(t *testing.T) {
	for _, patch := range []string{`[1,2]`, `not json`, `"text"`} {
		_, err := newTestService(&fakeStore{brand: storedBrand()}).UpdateBrandConfig(context.Background(), []byte(patch))
		assert.ErrorIs(t, err, content.ErrInvalidPatch, patch)
	}
}

func TestUpdateBrandConfigStoreDown(t *testing.T) {
	_, err := newTestService(&fakeStore{readErr: errStoreDown}).UpdateBrandConfig(context.Background(), []byte(`{}`))
	assert.ErrorIs(t, err, content.ErrStoreUnavailable)
}

func TestUpdateBotConfig(t *testing.T) {
	t.Run("valid patch", func(t *testing.T) {
		store := &fakeStore{}
		got, err := newTestService(store).UpdateBotConfig(context.Background(), []byte(`{"tone":"friendly","knowledgeBase":["Founded in 2010"]}`))
		require.NoError(t, err)

		assert.Equal(t, entity.ToneFriendly, got.Tone)
		assert.Equal(t, []string{"Founded in 2010"}, got.KnowledgeBase)
		assert.Equal(t, defaults.BotName, got.Name)
		require.NotNil(t, store.bot)
	})

	t.Run("invalid timezone", func(t *testing.T) {
		store := &fakeStore{}
		_, err := newTestService(store).UpdateBotConfig(context.Background(), []byte(`{"timezone":"Mars/Olympus"}`))
		require.Error(t, err)

		assert.Equal(t, "INVALID_BOT_CONFIG", errorKey(t, err))
		assert.Nil(t, store.bot)
	})
}

func TestUpdateNotificationSettingsNullClearsList(t *testing.T) {
	settings := entity.NotificationSettings{
		EmailRecipients: []string{"a@eportstech.com"},
		NotifyOnLead:    true,
	}.Normalize()
	store := &fakeStore{settings: &settings}

	got, err := newTestService(store).UpdateNotificationSettings(context.Background(), []byte(`{"emailRecipients":null}`))
	require.NoError(t, err)

	assert.Equal(t, []string{}, got.EmailRecipients)
	assert.True(t, got.NotifyOnLead)
}

func TestSubscribeBrandReceivesPublishedVersions(t *testing.T) {
	store := &fakeStore{brand: storedBrand(), version: 7}
	redis := redistest.New()
	s := newServiceWithRedis(store, redis)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	versions, closeFn := s.SubscribeBrand(ctx)
	defer closeFn()

	_, err := s.UpdateBrandConfig(context.Background(), []byte(`{"siteName":"Eports"}`))
	require.NoError(t, err)

	select {
	case v := <-versions:
		assert.Equal(t, int64(8), v)
	case <-time.After(time.Second):
		t.Fatal("no version received")
	}
}

func TestSubscribeBrandWithoutRedisIsClosed(t *testing.T) {
	versions, closeFn := newTestService(&fakeStore{}).SubscribeBrand(context.Background())
	defer closeFn()

	_, ok := <-versions
	assert.False(t, ok)
}
