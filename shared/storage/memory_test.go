package storage_test

import (
	"context"
	"saapadu/shared/storage"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

func TestMemoryStore_SaveGet(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()

	tests := []struct {
		name     string
		key      string
		value    any
		target   func() any
		expected any
	}{
		{
			name:     "json value",
			key:      "adminHotels",
			value:    []sample{{Name: "Idli", Price: 30}},
			target:   func() any { return &[]sample{} },
			expected: &[]sample{{Name: "Idli", Price: 30}},
		},
		{
			name:     "raw string",
			key:      "commissionPercentage",
			value:    "12.5",
			target:   func() any { s := ""; return &s },
			expected: func() any { s := "12.5"; return &s }(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, store.Save(ctx, tt.key, tt.value, 0))

			target := tt.target()
			assert.NoError(t, store.Get(ctx, tt.key, target))
			assert.Equal(t, tt.expected, target)
		})
	}
}

func TestMemoryStore_Missing(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()

	var value string
	assert.ErrorIs(t, store.Get(ctx, "orders", &value), storage.ErrNotFound)

	assert.NoError(t, store.Save(ctx, "orders", "[]", 0))
	assert.NoError(t, store.Delete(ctx, "orders"))
	assert.ErrorIs(t, store.Get(ctx, "orders", &value), storage.ErrNotFound)
}

func TestMemoryStore_Unparsable(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()

	assert.NoError(t, store.Save(ctx, "adminHotels", "not json", 0))

	var hotels []sample
	err := store.Get(ctx, "adminHotels", &hotels)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, storage.ErrNotFound)
}

func TestMemoryStore_Watch(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	store := storage.NewMemoryStore()

	events, err := store.Watch(ctx)
	assert.NoError(t, err)

	assert.NoError(t, store.Save(ctx, "adminUsers", "[]", 0))

	select {
	case event := <-events:
		assert.Equal(t, "adminUsers", event.Key)
	case <-time.After(time.Second):
		t.Fatal("expected a change event")
	}

	cancel()

	assert.Eventually(t, func() bool {
		_, open := <-events
		return !open
	}, time.Second, 10*time.Millisecond)
}
