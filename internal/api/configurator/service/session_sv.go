package configuratorService

import (
	"errors"
	"time"

	configurators "EportsTech/internal/api/configurator"
	"EportsTech/internal/configurator"
	"EportsTech/internal/defaults"
	"EportsTech/internal/entity"
	contextPkg "EportsTech/pkg/context"
	"EportsTech/pkg/redis"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const sessionKeyPrefix = "configurator:session:"

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}

func (s *configuratorService) response(id string, e *configurator.Engine) configurators.SessionResponse {
	return configurators.SessionResponse{
		ID:            id,
		State:         e.State(),
		Items:         e.Items(),
		SelectedCount: e.SelectedCount(),
		ExpiresAt:     time.Now().Add(s.ttl),
	}
}

func (s *configuratorService) save(ctx context.Context, id string, e *configurator.Engine) error {
	payload, err := jsoniter.MarshalToString(e.Snapshot())
	if err != nil {
		return err
	}
	if err := s.redis.Set(ctx, sessionKey(id), payload, s.ttl); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"session_id": id,
			"error":      err.Error(),
		}).Error("Failed to save configurator session")
		return configurators.ErrSessionUnavailable
	}
	return nil
}

func (s *configuratorService) load(ctx context.Context, id string) (*configurator.Engine, error) {
	payload, err := s.redis.Get(ctx, sessionKey(id))
	if errors.Is(err, redis.ErrNotFound) {
		return nil, configurators.ErrSessionNotFound
	} else if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"session_id": id,
			"error":      err.Error(),
		}).Error("Failed to load configurator session")
		return nil, configurators.ErrSessionUnavailable
	}

	var snapshot configurator.Snapshot
	if err := jsoniter.UnmarshalFromString(payload, &snapshot); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"session_id": id,
			"error":      err.Error(),
		}).Warn("Corrupt configurator session")
		return nil, configurators.ErrSessionNotFound
	}

	return configurator.Restore(snapshot, defaults.ConfiguratorItems()), nil
}

// CreateSession loads the visible catalogue into a fresh engine.
func (s *configuratorService) CreateSession(ctx context.Context) (configurators.SessionResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return configurators.SessionResponse{}, err
	}

	result := s.items.FetchConfiguratorItems(ctx)

	engine := configurator.New(defaults.ConfiguratorItems())
	if err := engine.Load(result.Items, configurator.UniformOptional); err != nil {
		return configurators.SessionResponse{}, err
	}

	if err := s.save(ctx, id, engine); err != nil {
		return configurators.SessionResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id":   requestID,
		"session_id":   id,
		"items":        len(engine.Items()),
		"items_source": result.Status,
	}).Debug("Configurator session created")

	return s.response(id, engine), nil
}

func (s *configuratorService) GetSession(ctx context.Context, id string) (configurators.SessionResponse, error) {
	engine, err := s.load(ctx, id)
	if err != nil {
		return configurators.SessionResponse{}, err
	}
	return s.response(id, engine), nil
}

func (s *configuratorService) ToggleItem(ctx context.Context, id string, itemID string) (configurators.SessionResponse, error) {
	engine, err := s.load(ctx, id)
	if err != nil {
		return configurators.SessionResponse{}, err
	}

	if err := engine.Toggle(itemID); err != nil {
		return configurators.SessionResponse{}, err
	}

	if err := s.save(ctx, id, engine); err != nil {
		return configurators.SessionResponse{}, err
	}

	return s.response(id, engine), nil
}

// RequestQuote refuses an empty selection; the engine itself would accept it.
func (s *configuratorService) RequestQuote(ctx context.Context, id string, lang entity.Language) (configurators.QuoteResponse, error) {
	engine, err := s.load(ctx, id)
	if err != nil {
		return configurators.QuoteResponse{}, err
	}

	if engine.SelectedCount() == 0 {
		return configurators.QuoteResponse{}, configurators.ErrEmptySelection
	}

	quote, err := engine.RequestQuote(lang)
	if err != nil {
		return configurators.QuoteResponse{}, err
	}

	if err := s.save(ctx, id, engine); err != nil {
		return configurators.QuoteResponse{}, err
	}

	return configurators.QuoteResponse{
		Session: s.response(id, engine),
		Quote:   quote,
	}, nil
}

func (s *configuratorService) DeleteSession(ctx context.Context, id string) error {
	if err := s.redis.Delete(ctx, sessionKey(id)); err != nil {
		return configurators.ErrSessionUnavailable
	}
	return nil
}
