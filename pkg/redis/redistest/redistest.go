// Package redistest provides an in-memory redis.IRedis for service tests.
package redistest

import (
	"context"
	"sync"
	"time"

	"EportsTech/pkg/redis"
)

type Fake struct {
	mu     sync.Mutex
	values map[string]string
	ttls   map[string]time.Duration
	subs   map[string][]chan string

	// Err, when set, is returned by every call.
	Err error
	// Published records every payload in publish order, per channel.
	Published map[string][]string
}

var _ redis.IRedis = (*Fake)(nil)

func New() *Fake {
	return &Fake{
		values:    make(map[string]string),
		ttls:      make(map[string]time.Duration),
		subs:      make(map[string][]chan string),
		Published: make(map[string][]string),
	}
}

func (f *Fake) Set(_ context.Context, key, value string, expiration time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	f.values[key] = value
	f.ttls[key] = expiration
	return nil
}

func (f *Fake) SetNX(_ context.Context, key, value string, expiration time.Duration) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return false, f.Err
	}
	if _, ok := f.values[key]; ok {
		return false, nil
	}
	f.values[key] = value
	f.ttls[key] = expiration
	return true, nil
}

func (f *Fake) Get(_ context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return "", f.Err
	}
	v, ok := f.values[key]
	if !ok {
		return "", redis.ErrNotFound
	}
	return v, nil
}

func (f *Fake) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	delete(f.values, key)
	delete(f.ttls, key)
	return nil
}

func (f *Fake) Publish(_ context.Context, channel, message string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	f.Published[channel] = append(f.Published[channel], message)
	for _, ch := range f.subs[channel] {
		select {
		case ch <- message:
		default:
		}
	}
	return nil
}

// Subscribe returns a buffered channel; Publish drops messages for a
// subscriber more than 16 messages behind.
func (f *Fake) Subscribe(ctx context.Context, channel string) (<-chan string, func() error) {
	ch := make(chan string, 16)

	f.mu.Lock()
	f.subs[channel] = append(f.subs[channel], ch)
	f.mu.Unlock()

	var once sync.Once
	closeFn := func() error {
		once.Do(func() {
			f.mu.Lock()
			defer f.mu.Unlock()
			subs := f.subs[channel]
			for i, c := range subs {
				if c == ch {
					f.subs[channel] = append(subs[:i], subs[i+1:]...)
					break
				}
			}
			close(ch)
		})
		return nil
	}

	go func() {
		<-ctx.Done()
		_ = closeFn()
	}()

	return ch, closeFn
}

// Value reports the stored value and TTL for key.
func (f *Fake) Value(key string) (string, time.Duration, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.values[key]
	return v, f.ttls[key], ok
}
