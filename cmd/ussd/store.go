package main

import (
	"log/slog"

	backend "github.com/redis/go-redis/v9"

	"github.com/afrisecure/ussd/internal/config"
	memoryAdapter "github.com/afrisecure/ussd/pkg/adapters/memory"
	redisAdapter "github.com/afrisecure/ussd/pkg/adapters/redis"
	"github.com/afrisecure/ussd/pkg/session"
)

// buildManager selects the session backend from config. The returned func
// releases backend resources.
func buildManager(cfg *config.Config, logger *slog.Logger) (*session.Manager, func(), error) {
	if cfg.Store == config.StoreRedis {
		client := backend.NewClient(&backend.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		store := redisAdapter.NewFromClient(client, redisAdapter.WithTTL(cfg.SessionTTL))
		locker := redisAdapter.NewLocker(client, "ussd:session:")
		manager := session.NewManager(store,
			session.WithLocker(locker),
			session.WithLogger(logger),
		)
		return manager, func() { _ = store.Close() }, nil
	}

	manager := session.NewManager(memoryAdapter.NewStore(), session.WithLogger(logger))
	return manager, func() {}, nil
}
