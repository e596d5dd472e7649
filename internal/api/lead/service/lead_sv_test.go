package leadService

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	leads "EportsTech/internal/api/lead"
	leadRepository "EportsTech/internal/api/lead/repository"
	"EportsTech/internal/entity"
	"EportsTech/pkg/redis/redistest"
	"EportsTech/pkg/utils"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryLeads enforces the unique request id the way the leads table does.
type memoryLeads struct {
	mu        sync.Mutex
	leads     []entity.Lead
	cfgLeads  []entity.ConfiguratorLead
	createErr error
	creates   int

	// gate, when set, holds CreateLead after signalling entered.
	gate    chan struct{}
	entered chan struct{}
}

func (m *memoryLeads) NewClient(bool) (leadRepository.Client, error) {
	return leadRepository.Client{
		Leads:             m,
		ConfiguratorLeads: (*memoryConfiguratorLeads)(m),
		Commit:            func() error { return nil },
		Rollback:          func() error { return nil },
	}, nil
}

func (m *memoryLeads) CreateLead(_ context.Context, lead entity.Lead) (bool, error) {
	if m.gate != nil {
		m.entered <- struct{}{}
		<-m.gate
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.creates++
	if m.createErr != nil {
		return false, m.createErr
	}
	for _, l := range m.leads {
		if l.RequestID == lead.RequestID {
			return false, nil
		}
	}
	m.leads = append(m.leads, lead)
	return true, nil
}

func (m *memoryLeads) GetLeadIDByRequestID(_ context.Context, requestID string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, l := range m.leads {
		if l.RequestID == requestID {
			return l.ID, nil
		}
	}
	return "", leadRepository.ErrLeadNotFound
}

func (m *memoryLeads) ListLeads(_ context.Context, limit, offset int) ([]entity.Lead, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	end := offset + limit
	if end > len(m.leads) {
		end = len(m.leads)
	}
	if offset > end {
		offset = end
	}
	return append([]entity.Lead{}, m.leads[offset:end]...), len(m.leads), nil
}

type memoryConfiguratorLeads memoryLeads

func (m *memoryConfiguratorLeads) CreateConfiguratorLead(_ context.Context, lead entity.ConfiguratorLead) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.creates++
	if m.createErr != nil {
		return false, m.createErr
	}
	for _, l := range m.cfgLeads {
		if l.RequestID == lead.RequestID {
			return false, nil
		}
	}
	m.cfgLeads = append(m.cfgLeads, lead)
	return true, nil
}

func (m *memoryConfiguratorLeads) GetConfiguratorLeadIDByRequestID(_ context.Context, requestID string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, l := range m.cfgLeads {
		if l.RequestID == requestID {
			return l.ID, nil
		}
	}
	return "", leadRepository.ErrLeadNotFound
}

func (m *memoryConfiguratorLeads) ListConfiguratorLeads(_ context.Context, limit, offset int) ([]entity.ConfiguratorLead, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]entity.ConfiguratorLead{}, m.cfgLeads...), len(m.cfgLeads), nil
}

type recordingNotifier struct {
	leads    chan entity.Lead
	cfgLeads chan entity.ConfiguratorLead
}

func newRecordingNotifier() *recordingNotifier {
	return &recordingNotifier{
		leads:    make(chan entity.Lead, 4),
		cfgLeads: make(chan entity.ConfiguratorLead, 4),
	}
}

func (n *recordingNotifier) LeadCreated(_ context.Context, lead entity.Lead) {
	n.leads <- lead
}

func (n *recordingNotifier) ConfiguratorLeadCreated(_ context.Context, lead entity.ConfiguratorLead) {
	n.cfgLeads <- lead
}

type staticItems []entity.ConfiguratorItem

func (s staticItems) FetchConfiguratorItems(context.Context) entity.CollectionResult[entity.ConfiguratorItem] {
	return entity.CollectionResult[entity.ConfiguratorItem]{Status: entity.CollectionOK, Items: s}
}

type fixture struct {
	svc      ILeadService
	store    *memoryLeads
	redis    *redistest.Fake
	notifier *recordingNotifier
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	f := fixture{
		store:    &memoryLeads{},
		redis:    redistest.New(),
		notifier: newRecordingNotifier(),
	}
	items := staticItems{
		{ID: "fiber", Title: entity.LocalizedText{entity.LanguageEN: "Fiber"}, Visible: true},
		{ID: "wifi", Title: entity.LocalizedText{entity.LanguageEN: "Wi-Fi"}, Visible: true},
	}
	f.svc = NewLeadService(log, f.store, f.redis, items, f.notifier, utils.New())
	return f
}

func leadRequest(requestID string) leads.LeadRequest {
	return leads.LeadRequest{
		RequestID:       requestID,
		FullName:        "  Marta Puig ",
		Email:           "marta@example.com",
		Phone:           "+34 600 000 000",
		Company:         "Puig SL",
		ServiceInterest: "Networking",
		Message:         "We need a new office network",
	}
}

func TestSubmitStoresLeadAndNotifies(t *testing.T) {
	f := newFixture(t)

	resp, err := f.svc.Submit(context.Background(), leadRequest("req-1"))
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.False(t, resp.Duplicate)
	assert.NotEmpty(t, resp.ID)

	require.Len(t, f.store.leads, 1)
	assert.Equal(t, "Marta Puig", f.store.leads[0].FullName)

	stored, ttl, ok := f.redis.Value(leadKeyPrefix + "req-1")
	require.True(t, ok)
	assert.Equal(t, resp.ID, stored)
	assert.Equal(t, DefaultIdempotencyTTL, ttl)

	select {
	case lead := <-f.notifier.leads:
		assert.Equal(t, resp.ID, lead.ID)
	case <-time.After(time.Second):
		t.Fatal("notifier was not called")
	}
}

func TestSubmitDuplicateReturnsOriginalID(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.svc.Submit(ctx, leadRequest("req-dup"))
	require.NoError(t, err)

	second, err := f.svc.Submit(ctx, leadRequest("req-dup"))
	require.NoError(t, err)

	assert.True(t, second.Duplicate)
	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, f.store.leads, 1)
	assert.Equal(t, 1, f.store.creates)
}

func TestSubmitDuplicateAfterGuardExpired(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.svc.Submit(ctx, leadRequest("req-expired"))
	require.NoError(t, err)
	<-f.notifier.leads

	require.NoError(t, f.redis.Delete(ctx, leadKeyPrefix+"req-expired"))

	second, err := f.svc.Submit(ctx, leadRequest("req-expired"))
	require.NoError(t, err)
	assert.True(t, second.Duplicate)
	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, f.store.leads, 1)

	stored, _, ok := f.redis.Value(leadKeyPrefix + "req-expired")
	require.True(t, ok)
	assert.Equal(t, first.ID, stored)

	select {
	case <-f.notifier.leads:
		t.Fatal("duplicate must not notify")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestSubmitWhileFirstStillStoring(t *testing.T) {
	f := newFixture(t)
	f.store.gate = make(chan struct{})
	f.store.entered = make(chan struct{}, 1)
	f.store.createErr = errors.New("insert failed")
	ctx := context.Background()

	firstErr := make(chan error, 1)
	go func() {
		_, err := f.svc.Submit(ctx, leadRequest("req-inflight"))
		firstErr <- err
	}()
	<-f.store.entered

	stored, _, ok := f.redis.Value(leadKeyPrefix + "req-inflight")
	require.True(t, ok)
	assert.Equal(t, pendingMarker, stored)

	resp, err := f.svc.Submit(ctx, leadRequest("req-inflight"))
	assert.Equal(t, leads.ErrSubmitInProgress, err)
	assert.False(t, resp.Success)
	assert.Empty(t, resp.ID)

	close(f.store.gate)
	assert.Equal(t, leads.ErrSubmitLead, <-firstErr)
	assert.Empty(t, f.store.leads)

	f.store.gate = nil
	f.store.createErr = nil
	retry, err := f.svc.Submit(ctx, leadRequest("req-inflight"))
	require.NoError(t, err)
	assert.False(t, retry.Duplicate)
	require.Len(t, f.store.leads, 1)
	assert.Equal(t, retry.ID, f.store.leads[0].ID)
}

func TestSubmitPendingGuardWithStoredRow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.svc.Submit(ctx, leadRequest("req-stale"))
	require.NoError(t, err)
	<-f.notifier.leads

	// The row is stored but the guard never moved past pending.
	require.NoError(t, f.redis.Set(ctx, leadKeyPrefix+"req-stale", pendingMarker, time.Hour))

	second, err := f.svc.Submit(ctx, leadRequest("req-stale"))
	require.NoError(t, err)
	assert.True(t, second.Duplicate)
	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, f.store.leads, 1)

	stored, _, ok := f.redis.Value(leadKeyPrefix + "req-stale")
	require.True(t, ok)
	assert.Equal(t, first.ID, stored)
}

func TestSubmitConfiguratorLeadWhileFirstStillStoring(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.redis.Set(ctx, configuratorLeadKeyPrefix+"cfg-inflight", pendingMarker, time.Hour))

	_, err := f.svc.SubmitConfiguratorLead(ctx, leads.ConfiguratorLeadRequest{
		RequestID: "cfg-inflight",
		FullName:  "Jordi",
		Phone:     "600000000",
		ItemIDs:   []string{"fiber"},
	})
	assert.Equal(t, leads.ErrSubmitInProgress, err)
	assert.Empty(t, f.store.cfgLeads)
}

func TestSubmitWithoutRedisFallsBackToUniqueColumn(t *testing.T) {
	f := newFixture(t)
	f.redis.Err = errors.New("redis down")
	ctx := context.Background()

	first, err := f.svc.Submit(ctx, leadRequest("req-nored"))
	require.NoError(t, err)
	assert.False(t, first.Duplicate)

	second, err := f.svc.Submit(ctx, leadRequest("req-nored"))
	require.NoError(t, err)
	assert.True(t, second.Duplicate)
	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, f.store.leads, 1)
}

func TestSubmitStoreFailureReleasesGuard(t *testing.T) {
	f := newFixture(t)
	f.store.createErr = errors.New("insert failed")

	_, err := f.svc.Submit(context.Background(), leadRequest("req-fail"))
	assert.Equal(t, leads.ErrSubmitLead, err)

	_, _, ok := f.redis.Value(leadKeyPrefix + "req-fail")
	assert.False(t, ok)

	f.store.createErr = nil
	resp, err := f.svc.Submit(context.Background(), leadRequest("req-fail"))
	require.NoError(t, err)
	assert.False(t, resp.Duplicate)
}

func TestSubmitConfiguratorLeadSnapshotsItems(t *testing.T) {
	f := newFixture(t)

	resp, err := f.svc.SubmitConfiguratorLead(context.Background(), leads.ConfiguratorLeadRequest{
		RequestID: "cfg-1",
		FullName:  "Jordi",
		Company:   "Acme",
		Email:     "jordi@example.com",
		Phone:     "600000000",
		ItemIDs:   []string{"wifi", "fiber", "wifi"},
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)

	require.Len(t, f.store.cfgLeads, 1)
	selected := f.store.cfgLeads[0].SelectedItems
	require.Len(t, selected, 2)
	assert.Equal(t, "wifi", selected[0].ID)
	assert.Equal(t, "fiber", selected[1].ID)

	select {
	case lead := <-f.notifier.cfgLeads:
		assert.Equal(t, resp.ID, lead.ID)
	case <-time.After(time.Second):
		t.Fatal("notifier was not called")
	}
}

func TestSubmitConfiguratorLeadUnknownItem(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.SubmitConfiguratorLead(context.Background(), leads.ConfiguratorLeadRequest{
		RequestID: "cfg-2",
		FullName:  "Jordi",
		Phone:     "600000000",
		ItemIDs:   []string{"fiber", "satellite"},
	})
	assert.Equal(t, leads.ErrUnknownItem, err)
	assert.Empty(t, f.store.cfgLeads)

	_, _, ok := f.redis.Value(configuratorLeadKeyPrefix + "cfg-2")
	assert.False(t, ok)
}

func TestListLeadsPaginates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, id := range []string{"p-1", "p-2", "p-3"} {
		_, err := f.svc.Submit(ctx, leadRequest(id))
		require.NoError(t, err)
	}

	page, err := f.svc.ListLeads(ctx, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, page.Total)
	require.Len(t, page.Leads, 1)
	assert.Equal(t, "p-3", page.Leads[0].RequestID)
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		wantLimit  int
		wantOffset int
	}{
		{name: "defaults", page: 0, limit: 0, wantLimit: 20, wantOffset: 0},
		{name: "second page", page: 2, limit: 10, wantLimit: 10, wantOffset: 10},
		{name: "limit above max", page: 1, limit: 500, wantLimit: 20, wantOffset: 0},
		{name: "negative page", page: -3, limit: 5, wantLimit: 5, wantOffset: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limit, offset := paginate(tt.page, tt.limit)
			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}
