package leadService

import (
	"errors"
	"strings"
	"time"

	leads "EportsTech/internal/api/lead"
	leadRepository "EportsTech/internal/api/lead/repository"
	"EportsTech/internal/entity"
	contextPkg "EportsTech/pkg/context"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const (
	leadKeyPrefix             = "lead:request:"
	configuratorLeadKeyPrefix = "configurator-lead:request:"

	// pendingMarker holds the guard until the row is stored.
	pendingMarker = "pending"
)

func (s *leadService) Submit(ctx context.Context, req leads.LeadRequest) (leads.SubmitResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	now := time.Now().UTC()
	id, err := s.utils.NewULIDFromTimestamp(now)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate lead id")
		return leads.SubmitResponse{}, leads.ErrSubmitLead
	}

	key := leadKeyPrefix + req.RequestID
	existing, claimed := s.claim(ctx, key)
	if existing == pendingMarker {
		return s.resolvePending(ctx, key, func(repo leadRepository.Client) (string, error) {
			return repo.Leads.GetLeadIDByRequestID(ctx, req.RequestID)
		})
	}
	if existing != "" {
		return leads.SubmitResponse{Success: true, ID: existing, Duplicate: true}, nil
	}

	lead := entity.Lead{
		ID:              id,
		RequestID:       req.RequestID,
		FullName:        strings.TrimSpace(req.FullName),
		Email:           strings.TrimSpace(req.Email),
		Phone:           strings.TrimSpace(req.Phone),
		Company:         strings.TrimSpace(req.Company),
		ServiceInterest: strings.TrimSpace(req.ServiceInterest),
		Message:         strings.TrimSpace(req.Message),
		Address:         strings.TrimSpace(req.Address),
		City:            strings.TrimSpace(req.City),
		CreatedAt:       now,
	}

	repo, err := s.leadRepo.NewClient(false)
	if err != nil {
		s.release(ctx, key, claimed)
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return leads.SubmitResponse{}, leads.ErrSubmitLead
	}

	inserted, err := repo.Leads.CreateLead(ctx, lead)
	if err != nil {
		s.release(ctx, key, claimed)
		return leads.SubmitResponse{}, leads.ErrSubmitLead
	}

	if !inserted {
		originalID, err := repo.Leads.GetLeadIDByRequestID(ctx, req.RequestID)
		if err != nil {
			s.release(ctx, key, claimed)
			return leads.SubmitResponse{}, leads.ErrSubmitLead
		}
		s.remember(ctx, key, originalID)
		return leads.SubmitResponse{Success: true, ID: originalID, Duplicate: true}, nil
	}

	s.remember(ctx, key, id)

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"lead_id":    id,
	}).Info("Lead stored")

	if s.notifier != nil {
		go s.notifier.LeadCreated(contextPkg.WithRequestID(context.Background(), requestID), lead)
	}

	return leads.SubmitResponse{Success: true, ID: id}, nil
}

func (s *leadService) SubmitConfiguratorLead(ctx context.Context, req leads.ConfiguratorLeadRequest) (leads.SubmitResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	selected, err := s.resolveItems(ctx, req.ItemIDs)
	if err != nil {
		return leads.SubmitResponse{}, err
	}

	now := time.Now().UTC()
	id, err := s.utils.NewULIDFromTimestamp(now)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate configurator lead id")
		return leads.SubmitResponse{}, leads.ErrSubmitLead
	}

	key := configuratorLeadKeyPrefix + req.RequestID
	existing, claimed := s.claim(ctx, key)
	if existing == pendingMarker {
		return s.resolvePending(ctx, key, func(repo leadRepository.Client) (string, error) {
			return repo.ConfiguratorLeads.GetConfiguratorLeadIDByRequestID(ctx, req.RequestID)
		})
	}
	if existing != "" {
		return leads.SubmitResponse{Success: true, ID: existing, Duplicate: true}, nil
	}

	lead := entity.ConfiguratorLead{
		ID:            id,
		RequestID:     req.RequestID,
		FullName:      strings.TrimSpace(req.FullName),
		Company:       strings.TrimSpace(req.Company),
		Email:         strings.TrimSpace(req.Email),
		Phone:         strings.TrimSpace(req.Phone),
		Address:       strings.TrimSpace(req.Address),
		City:          strings.TrimSpace(req.City),
		SelectedItems: selected,
		CreatedAt:     now,
	}

	repo, err := s.leadRepo.NewClient(false)
	if err != nil {
		s.release(ctx, key, claimed)
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return leads.SubmitResponse{}, leads.ErrSubmitLead
	}

	inserted, err := repo.ConfiguratorLeads.CreateConfiguratorLead(ctx, lead)
	if err != nil {
		s.release(ctx, key, claimed)
		return leads.SubmitResponse{}, leads.ErrSubmitLead
	}

	if !inserted {
		originalID, err := repo.ConfiguratorLeads.GetConfiguratorLeadIDByRequestID(ctx, req.RequestID)
		if err != nil {
			s.release(ctx, key, claimed)
			return leads.SubmitResponse{}, leads.ErrSubmitLead
		}
		s.remember(ctx, key, originalID)
		return leads.SubmitResponse{Success: true, ID: originalID, Duplicate: true}, nil
	}

	s.remember(ctx, key, id)

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"lead_id":    id,
		"items":      len(selected),
	}).Info("Configurator lead stored")

	if s.notifier != nil {
		go s.notifier.ConfiguratorLeadCreated(contextPkg.WithRequestID(context.Background(), requestID), lead)
	}

	return leads.SubmitResponse{Success: true, ID: id}, nil
}

// resolveItems snapshots the selected items in the order they were given.
func (s *leadService) resolveItems(ctx context.Context, ids []string) ([]entity.ConfiguratorItem, error) {
	catalogue := s.items.FetchConfiguratorItems(ctx)

	byID := make(map[string]entity.ConfiguratorItem, len(catalogue.Items))
	for _, item := range catalogue.Items {
		byID[item.ID] = item
	}

	selected := make([]entity.ConfiguratorItem, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		item, ok := byID[id]
		if !ok {
			s.log.WithFields(logrus.Fields{
				"request_id": contextPkg.GetRequestID(ctx),
				"item_id":    id,
			}).Warn("Configurator lead references unknown item")
			return nil, leads.ErrUnknownItem
		}
		seen[id] = true
		selected = append(selected, item)
	}

	return selected, nil
}

// claim takes the Redis guard for key with the pending marker. It returns the
// value already stored under the key when another submission owns it, and
// whether this call set it. A Redis failure is logged and the unique column
// is left to deduplicate.
func (s *leadService) claim(ctx context.Context, key string) (string, bool) {
	if s.redis == nil {
		return "", false
	}

	created, err := s.redis.SetNX(ctx, key, pendingMarker, s.ttl)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Warn("Idempotency guard unavailable")
		return "", false
	}
	if created {
		return "", true
	}

	existing, err := s.redis.Get(ctx, key)
	if err != nil {
		return "", false
	}
	return existing, false
}

// resolvePending answers a submission whose guard is still pending. A stored
// row means the first submission finished and only the guard update was lost;
// otherwise the first one is still running and the caller has to retry.
func (s *leadService) resolvePending(ctx context.Context, key string, lookup func(repo leadRepository.Client) (string, error)) (leads.SubmitResponse, error) {
	repo, err := s.leadRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return leads.SubmitResponse{}, leads.ErrSubmitLead
	}

	originalID, err := lookup(repo)
	if errors.Is(err, leadRepository.ErrLeadNotFound) {
		return leads.SubmitResponse{}, leads.ErrSubmitInProgress
	}
	if err != nil {
		return leads.SubmitResponse{}, leads.ErrSubmitLead
	}

	s.remember(ctx, key, originalID)
	return leads.SubmitResponse{Success: true, ID: originalID, Duplicate: true}, nil
}

func (s *leadService) release(ctx context.Context, key string, claimed bool) {
	if !claimed {
		return
	}
	if err := s.redis.Delete(ctx, key); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Warn("Failed to release idempotency key")
	}
}

// remember points the guard at the stored id, replacing the pending marker or
// restoring a guard that expired.
func (s *leadService) remember(ctx context.Context, key, id string) {
	if s.redis == nil {
		return
	}
	_ = s.redis.Set(ctx, key, id, s.ttl)
}

func (s *leadService) ListLeads(ctx context.Context, page, limit int) (leads.LeadListResponse, error) {
	limit, offset := paginate(page, limit)

	repo, err := s.leadRepo.NewClient(false)
	if err != nil {
		return leads.LeadListResponse{}, leads.ErrListLeads
	}

	list, total, err := repo.Leads.ListLeads(ctx, limit, offset)
	if err != nil {
		return leads.LeadListResponse{}, leads.ErrListLeads
	}

	return leads.LeadListResponse{Leads: list, Total: total}, nil
}

func (s *leadService) ListConfiguratorLeads(ctx context.Context, page, limit int) (leads.ConfiguratorLeadListResponse, error) {
	limit, offset := paginate(page, limit)

	repo, err := s.leadRepo.NewClient(false)
	if err != nil {
		return leads.ConfiguratorLeadListResponse{}, leads.ErrListLeads
	}

	list, total, err := repo.ConfiguratorLeads.ListConfiguratorLeads(ctx, limit, offset)
	if err != nil {
		return leads.ConfiguratorLeadListResponse{}, leads.ErrListLeads
	}

	return leads.ConfiguratorLeadListResponse{Leads: list, Total: total}, nil
}

func paginate(page, limit int) (int, int) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if page <= 0 {
		page = 1
	}
	return limit, (page - 1) * limit
}
