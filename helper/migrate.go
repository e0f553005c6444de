package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"saapadu/config"
	"saapadu/infras/postgres"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const migrationSource = "file://migrations/postgres"

// Action is a direction the kv_store schema can be moved in.
type Action string

const (
	ActionUp     Action = "up"
	ActionStepUp Action = "step-up"
	ActionDown   Action = "down"
	ActionDrop   Action = "drop"
)

var Actions = []Action{ActionUp, ActionStepUp, ActionDown, ActionDrop}

var actions = map[Action]func(*migrate.Migrate) error{
	ActionUp:     func(m *migrate.Migrate) error { return m.Up() },
	ActionStepUp: func(m *migrate.Migrate) error { return m.Steps(1) },
	ActionDown:   func(m *migrate.Migrate) error { return m.Steps(-1) },
	ActionDrop:   func(m *migrate.Migrate) error { return m.Down() },
}

func open(cfg *config.Config) (*migrate.Migrate, error) {
	dsn := fmt.Sprintf("%s&x-migrations-table=%s", postgres.DSN(cfg), cfg.Storage.Postgres.MigrationTable)

	mig, err := migrate.New(migrationSource, dsn)
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

// Migrate applies action to the storage database. Already being at the
// target version is not an error.
func Migrate(cfg *config.Config, action Action) error {
	run, ok := actions[action]
	if !ok {
		return fmt.Errorf("unknown migration action %q", action)
	}

	mig, err := open(cfg)
	if err != nil {
		return err
	}

	defer mig.Close()

	if err := run(mig); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running %s migration: %w", action, err)
	}

	version, dirty, err := mig.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("error reading schema version: %w", err)
	}

	log.Info().
		Str("action", string(action)).
		Uint("version", version).
		Bool("dirty", dirty).
		Msg("Storage schema migrated")

	return nil
}

// Up brings the kv_store schema to the latest version.
func Up(cfg *config.Config) error {
	return Migrate(cfg, ActionUp)
}
