package contentService

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"EportsTech/internal/api/content"
	contentRepository "EportsTech/internal/api/content/repository"
	"EportsTech/internal/defaults"
	"EportsTech/internal/entity"
	contextPkg "EportsTech/pkg/context"
	"EportsTech/pkg/response"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// BrandChannel carries the new brand version after every write.
const BrandChannel = "eportstech:brand:version"

func (s *contentService) singletonStatus(ctx context.Context, name string, err error) entity.CollectionStatus {
	if errors.Is(err, contentRepository.ErrSingletonMissing) {
		return entity.CollectionEmpty
	}
	s.log.WithFields(logrus.Fields{
		"request_id": contextPkg.GetRequestID(ctx),
		"singleton":  name,
		"error":      err.Error(),
	}).Warn("Content store unavailable, serving bundled singleton")
	return entity.CollectionUnavailable
}

func (s *contentService) FetchBrandConfig(ctx context.Context) (entity.BrandConfig, entity.CollectionStatus) {
	repo, err := s.contentRepo.NewClient(false)
	if err == nil {
		var cfg entity.BrandConfig
		if cfg, err = repo.Singletons.GetBrandConfig(ctx); err == nil {
			return cfg, entity.CollectionOK
		}
	}
	return defaults.BrandConfig(), s.singletonStatus(ctx, "brand_config", err)
}

func (s *contentService) FetchBotConfig(ctx context.Context) (entity.BotConfig, entity.CollectionStatus) {
	repo, err := s.contentRepo.NewClient(false)
	if err == nil {
		var cfg entity.BotConfig
		if cfg, err = repo.Singletons.GetBotConfig(ctx); err == nil {
			return cfg, entity.CollectionOK
		}
	}
	return defaults.BotConfig(), s.singletonStatus(ctx, "bot_config", err)
}

func (s *contentService) FetchNotificationSettings(ctx context.Context) (entity.NotificationSettings, entity.CollectionStatus) {
	repo, err := s.contentRepo.NewClient(false)
	if err == nil {
		var settings entity.NotificationSettings
		if settings, err = repo.Singletons.GetNotificationSettings(ctx); err == nil {
			return settings, entity.CollectionOK
		}
	}
	return defaults.NotificationSettings(), s.singletonStatus(ctx, "notification_settings", err)
}

func invalidConfig(key string, what string, err error) error {
	return response.NewErrorWithKey(400, key, fmt.Sprintf("invalid %s: %v", what, err))
}

// UpdateBrandConfig merges patch over the stored config, or over the
// bundled default when none was saved yet, and bumps the version.
func (s *contentService) UpdateBrandConfig(ctx context.Context, patch []byte) (entity.BrandConfig, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.contentRepo.NewClient(true)
	if err != nil {
		return entity.BrandConfig{}, content.ErrStoreUnavailable
	}
	defer repo.Rollback()

	current, err := repo.Singletons.GetBrandConfig(ctx)
	if errors.Is(err, contentRepository.ErrSingletonMissing) {
		current = defaults.BrandConfig()
	} else if err != nil {
		return entity.BrandConfig{}, content.ErrStoreUnavailable
	}

	var merged entity.BrandConfig
	if err := mergePatch(current, patch, &merged); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid brand config patch")
		return entity.BrandConfig{}, content.ErrInvalidPatch
	}

	merged = merged.Normalize()
	if err := merged.Validate(); err != nil {
		return entity.BrandConfig{}, invalidConfig("INVALID_BRAND_CONFIG", "brand config", err)
	}

	version, err := repo.Singletons.SaveBrandConfig(ctx, merged)
	if err != nil {
		return entity.BrandConfig{}, content.ErrSaveContent
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return entity.BrandConfig{}, content.ErrSaveContent
	}

	merged.Version = version
	merged.UpdatedAt = time.Now()

	s.publishBrandVersion(ctx, version)

	return merged, nil
}

func (s *contentService) UpdateBotConfig(ctx context.Context, patch []byte) (entity.BotConfig, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.contentRepo.NewClient(true)
	if err != nil {
		return entity.BotConfig{}, content.ErrStoreUnavailable
	}
	defer repo.Rollback()

	current, err := repo.Singletons.GetBotConfig(ctx)
	if errors.Is(err, contentRepository.ErrSingletonMissing) {
		current = defaults.BotConfig()
	} else if err != nil {
		return entity.BotConfig{}, content.ErrStoreUnavailable
	}

	var merged entity.BotConfig
	if err := mergePatch(current, patch, &merged); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid bot config patch")
		return entity.BotConfig{}, content.ErrInvalidPatch
	}

	merged = merged.Normalize()
	if err := merged.Validate(); err != nil {
		return entity.BotConfig{}, invalidConfig("INVALID_BOT_CONFIG", "bot config", err)
	}

	if err := repo.Singletons.SaveBotConfig(ctx, merged); err != nil {
		return entity.BotConfig{}, content.ErrSaveContent
	}

	if err := repo.Commit(); err != nil {
		return entity.BotConfig{}, content.ErrSaveContent
	}

	merged.UpdatedAt = time.Now()
	return merged, nil
}

func (s *contentService) UpdateNotificationSettings(ctx context.Context, patch []byte) (entity.NotificationSettings, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.contentRepo.NewClient(true)
	if err != nil {
		return entity.NotificationSettings{}, content.ErrStoreUnavailable
	}
	defer repo.Rollback()

	current, err := repo.Singletons.GetNotificationSettings(ctx)
	if errors.Is(err, contentRepository.ErrSingletonMissing) {
		current = defaults.NotificationSettings()
	} else if err != nil {
		return entity.NotificationSettings{}, content.ErrStoreUnavailable
	}

	var merged entity.NotificationSettings
	if err := mergePatch(current, patch, &merged); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid notification settings patch")
		return entity.NotificationSettings{}, content.ErrInvalidPatch
	}

	merged = merged.Normalize()

	if err := repo.Singletons.SaveNotificationSettings(ctx, merged); err != nil {
		return entity.NotificationSettings{}, content.ErrSaveContent
	}

	if err := repo.Commit(); err != nil {
		return entity.NotificationSettings{}, content.ErrSaveContent
	}

	merged.UpdatedAt = time.Now()
	return merged, nil
}

func (s *contentService) publishBrandVersion(ctx context.Context, version int64) {
	if s.redis == nil {
		return
	}
	if err := s.redis.Publish(ctx, BrandChannel, strconv.FormatInt(version, 10)); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"version":    version,
			"error":      err.Error(),
		}).Warn("Failed to publish brand version")
	}
}

// SubscribeBrand streams brand versions published by any instance.
func (s *contentService) SubscribeBrand(ctx context.Context) (<-chan int64, func() error) {
	out := make(chan int64)
	if s.redis == nil {
		close(out)
		return out, func() error { return nil }
	}

	payloads, closeFn := s.redis.Subscribe(ctx, BrandChannel)

	go func() {
		defer close(out)
		for payload := range payloads {
			version, err := strconv.ParseInt(payload, 10, 64)
			if err != nil {
				continue
			}
			select {
			case out <- version:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, closeFn
}
