package storage

import (
	"context"
	"errors"
	"fmt"
	"saapadu/infras/otel"
	"saapadu/shared/constant"
	"time"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

type redisStore struct {
	client  *goRedis.Client
	otel    otel.Otel
	channel string
}

// NewRedisStore keeps values as plain redis strings and announces writes on channel.
func NewRedisStore(client *goRedis.Client, ot otel.Otel, channel string) Store {
	return &redisStore{
		client:  client,
		otel:    ot,
		channel: channel,
	}
}

// Get implements Store.
func (store *redisStore) Get(ctx context.Context, key string, value any) (err error) {
	ctx, scope := store.otel.NewScope(ctx, constant.OtelStorageScopeName, constant.OtelStorageScopeName+".redis.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelKeyAttribute, key)

	raw, err := store.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, goRedis.Nil) {
			return ErrNotFound
		}

		log.Error().Err(err).Str("key", key).Str("RedisStore", "Get").Msg("failed to get value")

		return fmt.Errorf("failed to get storage value: %w", err)
	}

	return decode(raw, value)
}

// Save implements Store.
func (store *redisStore) Save(ctx context.Context, key string, value any, ttlSeconds int) (err error) {
	ctx, scope := store.otel.NewScope(ctx, constant.OtelStorageScopeName, constant.OtelStorageScopeName+".redis.Save")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelKeyAttribute, key)

	data, err := encode(value)
	if err != nil {
		log.Error().Err(err).Str("key", key).Str("RedisStore", "Save").Msg("failed to encode value")

		return err
	}

	err = store.client.Set(ctx, key, data, time.Second*time.Duration(ttlSeconds)).Err()
	if err != nil {
		log.Error().Err(err).Str("key", key).Str("RedisStore", "Save").Msg("failed to set value")

		return fmt.Errorf("failed to set storage value: %w", err)
	}

	store.publish(ctx, key)

	log.Debug().Str("RedisStore", "Save").Str("key", key).Msg("success to set value")

	return nil
}

// Delete implements Store.
func (store *redisStore) Delete(ctx context.Context, key string) (err error) {
	ctx, scope := store.otel.NewScope(ctx, constant.OtelStorageScopeName, constant.OtelStorageScopeName+".redis.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelKeyAttribute, key)

	if err = store.client.Del(ctx, key).Err(); err != nil {
		log.Error().Str("key", key).Err(err).Str("RedisStore", "Delete").Msg("failed to delete value")

		return fmt.Errorf("failed to delete storage value: %w", err)
	}

	store.publish(ctx, key)

	return nil
}

// Watch implements Store.
func (store *redisStore) Watch(ctx context.Context) (<-chan Event, error) {
	pubsub := store.client.Subscribe(ctx, store.channel)

	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()

		return nil, fmt.Errorf("failed to subscribe to %s: %w", store.channel, err)
	}

	events := make(chan Event)

	go func() {
		defer close(events)
		defer pubsub.Close()

		messages := pubsub.Channel()

		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}

				select {
				case events <- Event{Key: msg.Payload}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return events, nil
}

// publish is best effort, a lost notification only delays another instance's refresh.
func (store *redisStore) publish(ctx context.Context, key string) {
	if store.channel == "" {
		return
	}

	if err := store.client.Publish(ctx, store.channel, key).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Str("channel", store.channel).Msg("failed to publish storage change")
	}
}
