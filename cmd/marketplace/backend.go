package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/edge-marketplace/marketplace/internal/core/ports"
	"github.com/edge-marketplace/marketplace/internal/infrastructure/db/mongo"
	"github.com/edge-marketplace/marketplace/internal/infrastructure/db/redis"
	"github.com/edge-marketplace/marketplace/internal/infrastructure/snapshot"
	"github.com/edge-marketplace/marketplace/internal/pkg/config"
)

// openSnapshot connects the snapshot medium selected by STORE_BACKEND. The
// returned close func releases its connections.
func openSnapshot(ctx context.Context, cfg *config.Config, log zerolog.Logger) (ports.SnapshotStore, func(), error) {
	noop := func() {}

	switch cfg.Store.Backend {
	case config.BackendFile:
		fs, err := snapshot.NewFileStore(cfg.Store.DataDir)
		if err != nil {
			return nil, noop, err
		}
		log.Info().Str("dir", cfg.Store.DataDir).Msg("using file snapshot")
		return fs, noop, nil

	case config.BackendMemory:
		log.Warn().Msg("using in-memory snapshot, state is lost on exit")
		return snapshot.NewMemoryStore(), noop, nil

	case config.BackendRedis:
		client, err := redis.Connect(ctx, redis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, noop, err
		}
		log.Info().Str("addr", cfg.Redis.Addr).Msg("using redis snapshot")
		return redis.NewSnapshotStore(client), func() {
			if err := client.Close(); err != nil {
				log.Warn().Err(err).Msg("redis close failed")
			}
		}, nil

	case config.BackendMongo:
		client, db, err := mongo.Connect(ctx, mongo.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			return nil, noop, err
		}
		log.Info().Str("database", cfg.Mongo.Database).Msg("using mongo snapshot")
		return mongo.NewSnapshotRepository(db), func() {
			if err := client.Disconnect(context.Background()); err != nil {
				log.Warn().Err(err).Msg("mongo disconnect failed")
			}
		}, nil
	}

	return nil, noop, fmt.Errorf("open snapshot: unknown backend %q", cfg.Store.Backend)
}
