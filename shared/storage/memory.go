package storage

import (
	"context"
	"saapadu/shared/timezone"
	"sync"
	"time"
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

type memoryStore struct {
	mu       sync.RWMutex
	entries  map[string]memoryEntry
	watchers map[chan Event]struct{}
}

// NewMemoryStore keeps values in process. It backs tests and the CLI dry runs.
func NewMemoryStore() Store {
	return &memoryStore{
		entries:  make(map[string]memoryEntry),
		watchers: make(map[chan Event]struct{}),
	}
}

// Get implements Store.
func (store *memoryStore) Get(_ context.Context, key string, value any) error {
	store.mu.RLock()
	entry, ok := store.entries[key]
	store.mu.RUnlock()

	if !ok || (!entry.expiresAt.IsZero() && !timezone.Now().Before(entry.expiresAt)) {
		return ErrNotFound
	}

	return decode(entry.value, value)
}

// Save implements Store.
func (store *memoryStore) Save(_ context.Context, key string, value any, ttlSeconds int) error {
	data, err := encode(value)
	if err != nil {
		return err
	}

	entry := memoryEntry{value: append([]byte(nil), data...)}
	if ttlSeconds > 0 {
		entry.expiresAt = timezone.Now().Add(time.Duration(ttlSeconds) * time.Second)
	}

	store.mu.Lock()
	store.entries[key] = entry
	store.mu.Unlock()

	store.publish(key)

	return nil
}

// Delete implements Store.
func (store *memoryStore) Delete(_ context.Context, key string) error {
	store.mu.Lock()
	delete(store.entries, key)
	store.mu.Unlock()

	store.publish(key)

	return nil
}

// Watch implements Store.
func (store *memoryStore) Watch(ctx context.Context) (<-chan Event, error) {
	events := make(chan Event, 16)

	store.mu.Lock()
	store.watchers[events] = struct{}{}
	store.mu.Unlock()

	go func() {
		<-ctx.Done()

		store.mu.Lock()
		delete(store.watchers, events)
		close(events)
		store.mu.Unlock()
	}()

	return events, nil
}

// publish drops events for watchers that are not keeping up.
func (store *memoryStore) publish(key string) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	for watcher := range store.watchers {
		select {
		case watcher <- Event{Key: key}:
		default:
		}
	}
}
