package redis

import (
	"context"
	"net"
	"saapadu/config"
	"time"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const pingTimeout = 5 * time.Second

// New connects to the redis instance backing the store. The process exits when
// redis does not answer a ping.
func New(config *config.Config) *goRedis.Client {
	rc := config.Storage.Redis
	addr := net.JoinHostPort(rc.Host, rc.Port)

	client := goRedis.NewClient(&goRedis.Options{
		Addr:       addr,
		Password:   rc.Password,
		DB:         rc.DB,
		ClientName: config.App.Name,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal().Err(err).Str("addr", addr).Msg("Failed to connect to Redis")
	}

	log.Info().Str("addr", addr).Int("db", rc.DB).Msg("Connected to Redis")

	return client
}
