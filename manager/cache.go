package manager

import (
	"context"
	"sync"
	"time"

	"github.com/dags-/jenkbadge/badge"
)

// Store caches badge data by request uri.
type Store interface {
	Get(ctx context.Context, key string) (*badge.Data, bool, error)
	Set(ctx context.Context, key string, data *badge.Data, ttl time.Duration) error
}

type cached struct {
	data    badge.Data
	expires time.Time
}

type MemoryStore struct {
	lock  *sync.RWMutex
	cache map[string]*cached
	now   func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		lock:  &sync.RWMutex{},
		cache: map[string]*cached{},
		now:   time.Now,
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) (*badge.Data, bool, error) {
	s.lock.RLock()
	entry, ok := s.cache[key]
	s.lock.RUnlock()

	if !ok {
		return nil, false, nil
	}

	// cached data exists but has expired
	if entry.expires.Before(s.now()) {
		s.lock.Lock()
		if current, ok := s.cache[key]; ok && current == entry {
			delete(s.cache, key)
		}
		s.lock.Unlock()
		return nil, false, nil
	}

	data := entry.data
	return &data, true, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, data *badge.Data, ttl time.Duration) error {
	s.lock.Lock()
	s.cache[key] = &cached{
		data:    *data,
		expires: s.now().Add(ttl),
	}
	s.lock.Unlock()
	return nil
}

// Purge drops every expired entry and returns how many were removed.
func (s *MemoryStore) Purge() int {
	now := s.now()
	s.lock.Lock()
	defer s.lock.Unlock()

	n := 0
	for key, entry := range s.cache {
		if entry.expires.Before(now) {
			delete(s.cache, key)
			n++
		}
	}
	return n
}

func (s *MemoryStore) Len() int {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return len(s.cache)
}

// PurgeEvery runs Purge on interval until ctx is done.
func (s *MemoryStore) PurgeEvery(ctx context.Context, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.Purge()
		}
	}
}
