package storage

import (
	"saapadu/config"
	"saapadu/helper"
	"saapadu/infras/otel"
	"saapadu/infras/postgres"
	"saapadu/infras/redis"
	"saapadu/shared/constant"

	"github.com/rs/zerolog/log"
)

// New builds the Store selected by STORAGE_DRIVER.
func New(cfg *config.Config, ot otel.Otel) Store {
	channel := cfg.Storage.ChangeChannel

	switch cfg.Storage.Driver {
	case constant.StorageDriverPostgres:
		if cfg.Storage.Postgres.AutoMigrate {
			if err := helper.Up(cfg); err != nil {
				log.Fatal().Err(err).Msg("Failed to migrate storage database")
			}
		}

		log.Info().Str("driver", constant.StorageDriverPostgres).Msg("Storage initialized")

		return NewPostgresStore(postgres.New(cfg), postgres.DSN(cfg), ot, channel)
	case constant.StorageDriverMemory:
		log.Warn().Str("driver", constant.StorageDriverMemory).Msg("Storage initialized, data is lost on exit")

		return NewMemoryStore()
	case constant.StorageDriverRedis, constant.Empty:
		log.Info().Str("driver", constant.StorageDriverRedis).Msg("Storage initialized")

		return NewRedisStore(redis.New(cfg), ot, channel)
	default:
		log.Fatal().Str("driver", cfg.Storage.Driver).Msg("Unknown storage driver")

		return nil
	}
}
