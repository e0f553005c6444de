// Package repository keeps typed collections in memory, each backed by one storage key
// holding a JSON array.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"saapadu/infras/otel"
	"saapadu/shared/constant"
	"saapadu/shared/failure"
	"saapadu/shared/logger"
	"saapadu/shared/storage"
	"slices"
	"sync"

	"github.com/rs/zerolog/log"
)

// MutateFunc receives a private copy of the collection and returns the next state and
// whether it differs. Elements must be replaced, not modified through shared references.
type MutateFunc[T any] func(items []T) (next []T, changed bool, err error)

// ChangeHook runs after a successful mutation or reload, outside the collection lock.
type ChangeHook func(ctx context.Context)

type Collection[T any] struct {
	key   string
	store storage.Store
	otel  otel.Otel

	writeMu sync.Mutex
	mu      sync.RWMutex
	state   snapshot[T]

	hooksMu sync.RWMutex
	hooks   []ChangeHook
}

// snapshot is one read of the key. Elements that did not decode are kept by position so
// a write puts them back untouched.
type snapshot[T any] struct {
	raw     string
	items   []T
	skipped []kept
}

type kept struct {
	index   int
	element json.RawMessage
}

func NewCollection[T any](key string, store storage.Store, otl otel.Otel) *Collection[T] {
	return &Collection[T]{
		key:   key,
		store: store,
		otel:  otl,
		state: snapshot[T]{items: []T{}},
	}
}

func (c *Collection[T]) Key() string {
	return c.key
}

// OnChange registers hook to run after every change to the collection.
func (c *Collection[T]) OnChange(hook ChangeHook) {
	c.hooksMu.Lock()
	defer c.hooksMu.Unlock()

	c.hooks = append(c.hooks, hook)
}

// Load replaces the in-memory state with what the store holds. Missing, unparsable or
// non-array values load as empty and malformed elements are skipped; none of these is
// reported to the caller.
func (c *Collection[T]) Load(ctx context.Context) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Load")
	defer scope.End()

	scope.SetAttribute(constant.OtelKeyAttribute, c.key)

	state, err := c.read(ctx)
	if err != nil {
		logger.StorageReadError(c.key, err)

		state = snapshot[T]{items: []T{}}
	}

	c.swap(state)

	scope.SetAttributes(map[string]any{
		"collection.size":    len(state.items),
		"collection.skipped": len(state.skipped),
	})
}

// Reload is Load followed by the change hooks.
func (c *Collection[T]) Reload(ctx context.Context) {
	c.writeMu.Lock()
	c.Load(ctx)
	c.writeMu.Unlock()

	c.notify(ctx)
}

// All returns a snapshot of the collection.
func (c *Collection[T]) All() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return slices.Clone(c.state.items)
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.state.items)
}

// Find returns the first element matching match.
func (c *Collection[T]) Find(match func(T) bool) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, item := range c.state.items {
		if match(item) {
			return item, true
		}
	}

	var zero T

	return zero, false
}

// Mutate re-reads the key, applies fn to a copy of what it holds, persists the result and
// only then makes it the current state. Other writers share the key, so fn always sees
// their latest records, and elements that failed to decode are written back unchanged.
// A failed read or write leaves the collection untouched and returns a storage write
// failure. Hooks run before Mutate returns.
func (c *Collection[T]) Mutate(ctx context.Context, fn MutateFunc[T]) (applied bool, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Mutate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelKeyAttribute, c.key)

	c.writeMu.Lock()

	current, err := c.read(ctx)
	if err != nil {
		c.writeMu.Unlock()

		log.Error().Err(err).Str("key", c.key).Msg("failed to refresh collection before writing")

		return false, failure.StorageWrite(err)
	}

	refreshed := c.refresh(current)

	next, changed, err := fn(slices.Clone(current.items))
	if err != nil || !changed {
		c.writeMu.Unlock()

		if refreshed {
			c.notify(ctx)
		}

		return false, err
	}

	if next == nil {
		next = []T{}
	}

	payload, skipped, err := merge(next, current.skipped)
	if err != nil {
		c.writeMu.Unlock()

		return false, fmt.Errorf("failed to encode %s: %w", c.key, err)
	}

	if err = c.store.Save(ctx, c.key, payload, 0); err != nil {
		c.writeMu.Unlock()

		log.Error().Err(err).Str("key", c.key).Msg("failed to persist collection")

		return false, failure.StorageWrite(err)
	}

	c.swap(snapshot[T]{raw: string(payload), items: next, skipped: skipped})

	c.writeMu.Unlock()

	c.notify(ctx)

	return true, nil
}

func (c *Collection[T]) swap(state snapshot[T]) {
	c.mu.Lock()
	c.state = state
	c.mu.Unlock()
}

// refresh adopts state when the stored value changed since the last read or write.
func (c *Collection[T]) refresh(state snapshot[T]) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.raw == state.raw {
		c.state.skipped = state.skipped

		return false
	}

	c.state = state

	return true
}

// read returns what the key holds. Only a failing store is an error: a missing key is
// empty, and so is a value that is not an array, which is logged.
func (c *Collection[T]) read(ctx context.Context) (snapshot[T], error) {
	var raw string

	err := c.store.Get(ctx, c.key, &raw)
	if errors.Is(err, storage.ErrNotFound) {
		log.Debug().Str("key", c.key).Msg("collection not stored yet, starting empty")

		return snapshot[T]{items: []T{}}, nil
	}

	if err != nil {
		return snapshot[T]{}, fmt.Errorf("failed to read %s: %w", c.key, err)
	}

	state := snapshot[T]{raw: raw, items: []T{}}

	var elements []json.RawMessage
	if err = json.Unmarshal([]byte(raw), &elements); err != nil {
		logger.StorageReadError(c.key, fmt.Errorf("value is not an array: %w", err))

		return state, nil
	}

	for index, element := range elements {
		var item T
		if err = json.Unmarshal(element, &item); err != nil {
			logger.StorageReadError(c.key, fmt.Errorf("keeping undecodable element %d as is: %w", index, err))

			state.skipped = append(state.skipped, kept{index: index, element: element})

			continue
		}

		state.items = append(state.items, item)
	}

	return state, nil
}

// merge encodes items and puts every skipped element back at its old position, or at the
// end once the array is shorter than that.
func merge[T any](items []T, skipped []kept) ([]byte, []kept, error) {
	elements := make([]json.RawMessage, 0, len(items)+len(skipped))
	placed := make([]kept, 0, len(skipped))
	pending := skipped

	place := func() {
		for len(pending) > 0 && pending[0].index <= len(elements) {
			placed = append(placed, kept{index: len(elements), element: pending[0].element})
			elements = append(elements, pending[0].element)
			pending = pending[1:]
		}
	}

	for _, item := range items {
		place()

		data, err := json.Marshal(item)
		if err != nil {
			return nil, nil, err //nolint:wrapcheck
		}

		elements = append(elements, data)
	}

	for _, element := range pending {
		placed = append(placed, kept{index: len(elements), element: element.element})
		elements = append(elements, element.element)
	}

	payload, err := json.Marshal(elements)
	if err != nil {
		return nil, nil, err //nolint:wrapcheck
	}

	return payload, placed, nil
}

func (c *Collection[T]) notify(ctx context.Context) {
	c.hooksMu.RLock()
	hooks := slices.Clone(c.hooks)
	c.hooksMu.RUnlock()

	for _, hook := range hooks {
		hook(ctx)
	}
}
