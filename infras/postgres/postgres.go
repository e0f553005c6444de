package postgres

//nolint:revive
import (
	"context"
	"net"
	"net/url"
	"saapadu/config"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	driverName      = "postgres"
	maxConnections  = 10
	connMaxIdleTime = 5 * time.Minute
	pingTimeout     = 5 * time.Second
)

// New opens the storage database and waits for it to answer, retrying as configured.
// The process exits when every attempt fails.
func New(config *config.Config) *sqlx.DB {
	pg := config.Storage.Postgres

	db, err := sqlx.Open(driverName, DSN(config))
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid storage database settings")
	}

	db.SetMaxOpenConns(maxConnections)
	db.SetMaxIdleConns(maxConnections)
	db.SetConnMaxIdleTime(connMaxIdleTime)

	logger := log.With().
		Str("host", pg.Host).
		Str("port", pg.Port).
		Str("dbName", pg.Name).
		Logger()

	for attempt := 1; attempt <= max(pg.MaxRetry, 1); attempt++ {
		if err = ping(db); err == nil {
			logger.Info().Msg("Connected to storage database")

			return db
		}

		logger.Error().Err(err).Int("attempt", attempt).Msg("Storage database not reachable")

		time.Sleep(time.Duration(pg.RetryWaitTime) * time.Second)
	}

	logger.Fatal().Err(err).Msg("Giving up connecting to storage database")

	return nil
}

func ping(db *sqlx.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	return db.PingContext(ctx) //nolint:wrapcheck
}

// DSN builds the connection url used by both the store and the migrator.
func DSN(config *config.Config) string {
	pg := config.Storage.Postgres

	dsn := url.URL{
		Scheme:   driverName,
		User:     url.UserPassword(pg.Username, pg.Password),
		Host:     net.JoinHostPort(pg.Host, pg.Port),
		Path:     "/" + pg.Name,
		RawQuery: url.Values{"sslmode": {pg.SSLMode}}.Encode(),
	}

	return dsn.String()
}
