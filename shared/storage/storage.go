// Package storage is the key-value persistence boundary. Every collection and setting the
// admin service owns lives under its own key as a JSON document.
package storage

//go:generate go run go.uber.org/mock/mockgen -source=./storage.go -destination=./mocks/storage_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("storage key not found")

// Event announces that the value under Key was written or deleted.
type Event struct {
	Key string `json:"key"`
}

type Store interface {
	// Get loads the value under key into value. A *string receives the raw text, anything
	// else is decoded as JSON. Missing keys return ErrNotFound.
	Get(ctx context.Context, key string, value any) (err error)
	// Save stores value under key. ttlSeconds of zero keeps the value forever.
	Save(ctx context.Context, key string, value any, ttlSeconds int) (err error)
	Delete(ctx context.Context, key string) (err error)
	// Watch streams change events until ctx is done.
	Watch(ctx context.Context) (<-chan Event, error)
}

func encode(value any) ([]byte, error) {
	switch v := value.(type) {
	case string:
		return []byte(v), nil
	case []byte:
		return v, nil
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal storage value: %w", err)
		}

		return data, nil
	}
}

func decode(raw []byte, value any) error {
	switch v := value.(type) {
	case *string:
		*v = string(raw)
	case *[]byte:
		*v = append((*v)[:0], raw...)
	default:
		if err := json.Unmarshal(raw, value); err != nil {
			return fmt.Errorf("failed to unmarshal storage value: %w", err)
		}
	}

	return nil
}
