package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"saapadu/infras/otel"
	"saapadu/shared/constant"
	"saapadu/shared/timezone"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	queryGetValue = `SELECT value FROM kv_store WHERE key = $1 AND (expires_at IS NULL OR expires_at > now())`
	queryUpsert   = `INSERT INTO kv_store (key, value, expires_at, updated_at) VALUES (:key, :value, :expires_at, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, expires_at = EXCLUDED.expires_at, updated_at = now()`
	queryDelete = `DELETE FROM kv_store WHERE key = $1`
	queryNotify = `SELECT pg_notify($1, $2)`

	listenerMinReconnect = 10 * time.Second
	listenerMaxReconnect = time.Minute
)

type kvRow struct {
	Key       string     `db:"key"`
	Value     string     `db:"value"`
	ExpiresAt *time.Time `db:"expires_at"`
}

type postgresStore struct {
	db      *sqlx.DB
	dsn     string
	otel    otel.Otel
	channel string
}

// NewPostgresStore keeps values in the kv_store table and announces writes with pg_notify.
// dsn is only used to open the LISTEN connection for Watch.
func NewPostgresStore(db *sqlx.DB, dsn string, ot otel.Otel, channel string) Store {
	return &postgresStore{
		db:      db,
		dsn:     dsn,
		otel:    ot,
		channel: channel,
	}
}

// Get implements Store.
func (store *postgresStore) Get(ctx context.Context, key string, value any) (err error) {
	ctx, scope := store.otel.NewScope(ctx, constant.OtelStorageScopeName, constant.OtelStorageScopeName+".postgres.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelKeyAttribute, key)

	var raw string

	err = store.db.GetContext(ctx, &raw, queryGetValue, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}

		log.Error().Err(err).Str("key", key).Str("PostgresStore", "Get").Msg("failed to get value")

		return fmt.Errorf("failed to get storage value: %w", err)
	}

	return decode([]byte(raw), value)
}

// Save implements Store.
func (store *postgresStore) Save(ctx context.Context, key string, value any, ttlSeconds int) (err error) {
	ctx, scope := store.otel.NewScope(ctx, constant.OtelStorageScopeName, constant.OtelStorageScopeName+".postgres.Save")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelKeyAttribute, key)

	data, err := encode(value)
	if err != nil {
		log.Error().Err(err).Str("key", key).Str("PostgresStore", "Save").Msg("failed to encode value")

		return err
	}

	row := kvRow{Key: key, Value: string(data)}
	if ttlSeconds > 0 {
		expiresAt := timezone.Now().Add(time.Duration(ttlSeconds) * time.Second)
		row.ExpiresAt = &expiresAt
	}

	err = store.inTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.NamedExecContext(ctx, queryUpsert, row); err != nil {
			return fmt.Errorf("failed to upsert storage value: %w", err)
		}

		return store.notify(ctx, tx, key)
	})
	if err != nil {
		log.Error().Err(err).Str("key", key).Str("PostgresStore", "Save").Msg("failed to save value")

		return err
	}

	return nil
}

// Delete implements Store.
func (store *postgresStore) Delete(ctx context.Context, key string) (err error) {
	ctx, scope := store.otel.NewScope(ctx, constant.OtelStorageScopeName, constant.OtelStorageScopeName+".postgres.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelKeyAttribute, key)

	err = store.inTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, queryDelete, key); err != nil {
			return fmt.Errorf("failed to delete storage value: %w", err)
		}

		return store.notify(ctx, tx, key)
	})
	if err != nil {
		log.Error().Err(err).Str("key", key).Str("PostgresStore", "Delete").Msg("failed to delete value")

		return err
	}

	return nil
}

// Watch implements Store.
func (store *postgresStore) Watch(ctx context.Context) (<-chan Event, error) {
	listener := pq.NewListener(store.dsn, listenerMinReconnect, listenerMaxReconnect, func(ev pq.ListenerEventType, err error) {
		if err != nil {
			log.Warn().Err(err).Int("event", int(ev)).Msg("storage listener event")
		}
	})

	if err := listener.Listen(store.channel); err != nil {
		_ = listener.Close()

		return nil, fmt.Errorf("failed to listen on %s: %w", store.channel, err)
	}

	events := make(chan Event)

	go func() {
		defer close(events)
		defer listener.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case notification, ok := <-listener.Notify:
				if !ok {
					return
				}

				// nil marks a reconnect, notifications sent meanwhile are lost.
				if notification == nil {
					continue
				}

				select {
				case events <- Event{Key: notification.Extra}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return events, nil
}

func (store *postgresStore) notify(ctx context.Context, tx *sqlx.Tx, key string) error {
	if store.channel == "" {
		return nil
	}

	if _, err := tx.ExecContext(ctx, queryNotify, store.channel, key); err != nil {
		return fmt.Errorf("failed to notify storage change: %w", err)
	}

	return nil
}

func (store *postgresStore) inTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := store.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error().Err(rbErr).Msg("failed to rollback transaction")
		}

		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
