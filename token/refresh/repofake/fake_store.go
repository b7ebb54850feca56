package refreshrepofake

import (
	"context"
	"sync"
	"time"

	"github.com/jrsteele09/go-session-server/token/refresh"
)

var _ refresh.Store = (*FakeRefreshStore)(nil)

type entry struct {
	value     []byte
	expiresAt time.Time
}

// FakeRefreshStore is an in-memory refresh.Store honouring TTLs against a
// configurable clock.
type FakeRefreshStore struct {
	entries map[string]entry
	nowFunc func() time.Time
	lock    sync.RWMutex
}

func NewFakeRefreshStore() *FakeRefreshStore {
	return &FakeRefreshStore{
		entries: make(map[string]entry),
		nowFunc: time.Now,
	}
}

// SetNowFunc replaces the clock used for expiry checks.
func (s *FakeRefreshStore) SetNowFunc(now func() time.Time) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.nowFunc = now
}

func (s *FakeRefreshStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.entries[key] = entry{
		value:     append([]byte(nil), value...),
		expiresAt: s.nowFunc().Add(ttl),
	}
	return nil
}

func (s *FakeRefreshStore) Get(_ context.Context, key string) ([]byte, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	e, ok := s.entries[key]
	if !ok || !s.nowFunc().Before(e.expiresAt) {
		return nil, refresh.ErrKeyNotFound
	}
	return append([]byte(nil), e.value...), nil
}

func (s *FakeRefreshStore) Delete(_ context.Context, key string) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	delete(s.entries, key)
	return nil
}

// Len returns the number of stored keys, expired or not.
func (s *FakeRefreshStore) Len() int {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return len(s.entries)
}
