package syncService

import (
	"context"
	"errors"
	"io"
	"testing"

	"EportsTech/internal/api/content"
	contentsync "EportsTech/internal/api/sync"
	"EportsTech/internal/entity"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

type fakeWriter struct {
	servicesErr error
	itemsErr    error
	calls       []string
}

func (f *fakeWriter) UpsertServices(_ context.Context, services []entity.Service) (int, error) {
	f.calls = append(f.calls, "services")
	return len(services), f.servicesErr
}

func (f *fakeWriter) UpsertConfiguratorItems(_ context.Context, items []entity.ConfiguratorItem) (int, error) {
	f.calls = append(f.calls, "items")
	return len(items), f.itemsErr
}

func newService(w ContentWriter) ISyncService {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewSyncService(log, w)
}

func TestSyncCounts(t *testing.T) {
	w := &fakeWriter{}
	counts, err := newService(w).Sync(context.Background(),
		[]entity.Service{{ID: "a"}, {ID: "b"}},
		[]entity.ConfiguratorItem{{ID: "x"}},
	)

	assert.NoError(t, err)
	assert.Equal(t, contentsync.SyncCounts{ServicesCount: 2, ItemsCount: 1}, counts)
	assert.Equal(t, []string{"services", "items"}, w.calls)
}

func TestSyncAcceptsEmptyCollections(t *testing.T) {
	counts, err := newService(&fakeWriter{}).Sync(context.Background(), []entity.Service{}, []entity.ConfiguratorItem{})
	assert.NoError(t, err)
	assert.Zero(t, counts.ServicesCount)
	assert.Zero(t, counts.ItemsCount)
}

func TestSyncMissingCollection(t *testing.T) {
	w := &fakeWriter{}
	_, err := newService(w).Sync(context.Background(), []entity.Service{}, nil)
	assert.Equal(t, contentsync.ErrMissingCollections, err)
	assert.Empty(t, w.calls)
}

func TestSyncStageErrors(t *testing.T) {
	tests := []struct {
		name      string
		writer    *fakeWriter
		wantErr   error
		wantCalls []string
	}{
		{
			name:      "services store failure",
			writer:    &fakeWriter{servicesErr: errors.New("db down")},
			wantErr:   contentsync.ErrServicesSync,
			wantCalls: []string{"services"},
		},
		{
			name:      "items store failure",
			writer:    &fakeWriter{itemsErr: errors.New("db down")},
			wantErr:   contentsync.ErrItemsSync,
			wantCalls: []string{"services", "items"},
		},
		{
			name:      "client error passes through",
			writer:    &fakeWriter{servicesErr: content.ErrDuplicateID},
			wantErr:   content.ErrDuplicateID,
			wantCalls: []string{"services"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newService(tt.writer).Sync(context.Background(),
				[]entity.Service{{ID: "a"}},
				[]entity.ConfiguratorItem{{ID: "x"}},
			)
			assert.Equal(t, tt.wantErr, err)
			assert.Equal(t, tt.wantCalls, tt.writer.calls)
		})
	}
}
