package repository_test

import (
	"context"
	"errors"
	"net/http"
	"saapadu/infras/otel/mocks"
	"saapadu/shared/failure"
	"saapadu/shared/repository"
	"saapadu/shared/storage"
	storageMocks "saapadu/shared/storage/mocks"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type item struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func TestCollection_Load(t *testing.T) {
	tests := []struct {
		name     string
		stored   *string
		expected []item
	}{
		{
			name:     "missing key",
			stored:   nil,
			expected: []item{},
		},
		{
			name:     "unparsable value",
			stored:   strPtr("{not json"),
			expected: []item{},
		},
		{
			name:     "not an array",
			stored:   strPtr(`{"id":1}`),
			expected: []item{},
		},
		{
			name:     "null",
			stored:   strPtr(`null`),
			expected: []item{},
		},
		{
			name:     "malformed elements skipped",
			stored:   strPtr(`[{"id":1,"name":"A"},{"id":"two"},{"id":3,"name":"C"}]`),
			expected: []item{{ID: 1, Name: "A"}, {ID: 3, Name: "C"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			store := storage.NewMemoryStore()

			if tt.stored != nil {
				assert.NoError(t, store.Save(ctx, "items", *tt.stored, 0))
			}

			collection := repository.NewCollection[item]("items", store, mocks.NewOtel())
			collection.Load(ctx)

			assert.Equal(t, tt.expected, collection.All())
		})
	}
}

func TestCollection_Mutate(t *testing.T) {
	ctx := context.Background()
	errWrite := errors.New("disk full")

	tests := []struct {
		name            string
		setupMock       func(store *storageMocks.MockStore)
		fn              repository.MutateFunc[item]
		expectedApplied bool
		expectedItems   []item
		expectedCode    int
		expectedHooks   int
	}{
		{
			name: "successful append",
			setupMock: func(store *storageMocks.MockStore) {
				store.EXPECT().Save(gomock.Any(), "items", []byte(`[{"id":1,"name":"A"},{"id":2,"name":"B"}]`), 0).Return(nil)
			},
			fn: func(items []item) ([]item, bool, error) {
				return append(items, item{ID: 2, Name: "B"}), true, nil
			},
			expectedApplied: true,
			expectedItems:   []item{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}},
			expectedHooks:   1,
		},
		{
			name: "failed write leaves memory unchanged",
			setupMock: func(store *storageMocks.MockStore) {
				store.EXPECT().Save(gomock.Any(), "items", gomock.Any(), 0).Return(errWrite)
			},
			fn: func(items []item) ([]item, bool, error) {
				items[0].Name = "changed"
				return append(items, item{ID: 2}), true, nil
			},
			expectedItems: []item{{ID: 1, Name: "A"}},
			expectedCode:  http.StatusInsufficientStorage,
		},
		{
			name:      "no change skips the write",
			setupMock: func(store *storageMocks.MockStore) {},
			fn: func(items []item) ([]item, bool, error) {
				return items, false, nil
			},
			expectedItems: []item{{ID: 1, Name: "A"}},
		},
		{
			name:      "validation error skips the write",
			setupMock: func(store *storageMocks.MockStore) {},
			fn: func(items []item) ([]item, bool, error) {
				return nil, false, failure.BadRequestFromString("invalid")
			},
			expectedItems: []item{{ID: 1, Name: "A"}},
			expectedCode:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := storageMocks.NewMockStore(ctrl)
			store.EXPECT().Get(gomock.Any(), "items", gomock.Any()).DoAndReturn(func(_ context.Context, _ string, value any) error {
				*(value.(*string)) = `[{"id":1,"name":"A"}]`
				return nil
			}).Times(2)
			tt.setupMock(store)

			collection := repository.NewCollection[item]("items", store, mocks.NewOtel())
			collection.Load(ctx)

			hooks := 0
			collection.OnChange(func(context.Context) { hooks++ })

			applied, err := collection.Mutate(ctx, tt.fn)

			assert.Equal(t, tt.expectedApplied, applied)
			if tt.expectedCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectedItems, collection.All())
			assert.Equal(t, tt.expectedHooks, hooks)
		})
	}
}

func TestCollection_AllIsSnapshot(t *testing.T) {
	ctx := context.Background()
	collection := repository.NewCollection[item]("items", storage.NewMemoryStore(), mocks.NewOtel())

	_, err := collection.Mutate(ctx, func(items []item) ([]item, bool, error) {
		return append(items, item{ID: 1, Name: "A"}), true, nil
	})
	assert.NoError(t, err)

	snapshot := collection.All()
	snapshot[0].Name = "mutated"

	assert.Equal(t, "A", collection.All()[0].Name)
	assert.Equal(t, 1, collection.Len())

	found, ok := collection.Find(func(i item) bool { return i.ID == 1 })
	assert.True(t, ok)
	assert.Equal(t, "A", found.Name)

	_, ok = collection.Find(func(i item) bool { return i.ID == 9 })
	assert.False(t, ok)
}

func TestCollection_Reload(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	collection := repository.NewCollection[item]("items", store, mocks.NewOtel())
	collection.Load(ctx)

	reloaded := 0
	collection.OnChange(func(context.Context) { reloaded++ })

	assert.NoError(t, store.Save(ctx, "items", `[{"id":5,"name":"E"}]`, 0))
	collection.Reload(ctx)

	assert.Equal(t, []item{{ID: 5, Name: "E"}}, collection.All())
	assert.Equal(t, 1, reloaded)
	assert.Equal(t, "items", collection.Key())
}

func rename(id int, name string) repository.MutateFunc[item] {
	return func(items []item) ([]item, bool, error) {
		for i := range items {
			if items[i].ID == id {
				items[i].Name = name

				return items, true, nil
			}
		}

		return items, false, nil
	}
}

func stored(t *testing.T, store storage.Store) string {
	t.Helper()

	var raw string
	assert.NoError(t, store.Get(context.Background(), "items", &raw))

	return raw
}

func TestCollection_MutateKeepsUndecodableElements(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	assert.NoError(t, store.Save(ctx, "items", `[{"id":1,"name":"A"},{"id":"two","name":42},{"id":3,"name":"C"}]`, 0))

	collection := repository.NewCollection[item]("items", store, mocks.NewOtel())
	collection.Load(ctx)
	assert.Equal(t, []item{{ID: 1, Name: "A"}, {ID: 3, Name: "C"}}, collection.All())

	applied, err := collection.Mutate(ctx, rename(3, "Z"))
	assert.NoError(t, err)
	assert.True(t, applied)
	assert.JSONEq(t, `[{"id":1,"name":"A"},{"id":"two","name":42},{"id":3,"name":"Z"}]`, stored(t, store))

	_, err = collection.Mutate(ctx, func(items []item) ([]item, bool, error) {
		return append(items, item{ID: 4, Name: "D"}), true, nil
	})
	assert.NoError(t, err)
	assert.JSONEq(t, `[{"id":1,"name":"A"},{"id":"two","name":42},{"id":3,"name":"Z"},{"id":4,"name":"D"}]`, stored(t, store))

	_, err = collection.Mutate(ctx, func(items []item) ([]item, bool, error) {
		return items[1:], true, nil
	})
	assert.NoError(t, err)
	assert.Contains(t, stored(t, store), `{"id":"two","name":42}`)
	assert.NotContains(t, stored(t, store), `"name":"A"`)
	assert.Equal(t, []item{{ID: 3, Name: "Z"}, {ID: 4, Name: "D"}}, collection.All())
}

func TestCollection_MutateSeesExternalWrites(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	assert.NoError(t, store.Save(ctx, "items", `[{"id":1,"name":"A"}]`, 0))

	collection := repository.NewCollection[item]("items", store, mocks.NewOtel())
	collection.Load(ctx)

	hooks := 0
	collection.OnChange(func(context.Context) { hooks++ })

	// another writer appends after the collection was loaded
	assert.NoError(t, store.Save(ctx, "items", `[{"id":1,"name":"A"},{"id":2,"name":"B"}]`, 0))

	applied, err := collection.Mutate(ctx, rename(1, "Z"))
	assert.NoError(t, err)
	assert.True(t, applied)
	assert.JSONEq(t, `[{"id":1,"name":"Z"},{"id":2,"name":"B"}]`, stored(t, store))
	assert.Equal(t, []item{{ID: 1, Name: "Z"}, {ID: 2, Name: "B"}}, collection.All())
	assert.Equal(t, 1, hooks)

	// nothing to change, but the fresher state is still adopted
	assert.NoError(t, store.Save(ctx, "items", `[{"id":1,"name":"Z"},{"id":2,"name":"B"},{"id":3,"name":"C"}]`, 0))

	applied, err = collection.Mutate(ctx, rename(9, "X"))
	assert.NoError(t, err)
	assert.False(t, applied)
	assert.Equal(t, 3, collection.Len())
	assert.Equal(t, 2, hooks)

	applied, err = collection.Mutate(ctx, rename(9, "X"))
	assert.NoError(t, err)
	assert.False(t, applied)
	assert.Equal(t, 2, hooks)
}

func TestCollection_MutateRefusesToWriteWithoutFreshRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	store := storageMocks.NewMockStore(ctrl)

	gomock.InOrder(
		store.EXPECT().Get(gomock.Any(), "items", gomock.Any()).DoAndReturn(func(_ context.Context, _ string, value any) error {
			*(value.(*string)) = `[{"id":1,"name":"A"}]`
			return nil
		}),
		store.EXPECT().Get(gomock.Any(), "items", gomock.Any()).Return(errors.New("connection reset")),
	)

	collection := repository.NewCollection[item]("items", store, mocks.NewOtel())
	collection.Load(ctx)

	applied, err := collection.Mutate(ctx, rename(1, "Z"))

	assert.False(t, applied)
	assert.Equal(t, http.StatusInsufficientStorage, failure.GetCode(err))
	assert.Equal(t, []item{{ID: 1, Name: "A"}}, collection.All())
}

func strPtr(s string) *string {
	return &s
}
