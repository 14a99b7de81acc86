package redis

import (
	"context"
	"net"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"escapade/config"
)

func New(cfg *config.Config) *redis.Client {
	primary := cfg.Cache.Redis.Primary

	client := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(primary.Host, primary.Port),
		Password: primary.Password,
		DB:       primary.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Warn().Err(err).Msg("Redis is unreachable, cache reads will miss until it recovers")
	} else {
		log.Info().Str("host", primary.Host).Msg("Redis connection established")
	}

	return client
}
