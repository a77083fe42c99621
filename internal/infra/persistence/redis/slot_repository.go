// Package redis stores durable slots as plain string keys in Redis.
package redis

import (
	"context"
	"log/slog"

	"biaresh/config"
	"biaresh/internal/domain/lifecycle"
	"biaresh/internal/domain/repository"
	"biaresh/internal/errors"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewClient creates the Redis client and pings it on start
func NewClient(params Params) (*goredis.Client, error) {
	cfg := params.Config.Storage.Redis
	if cfg == nil || cfg.Addr == "" {
		return nil, errors.New("storage.redis.addr is required for the redis driver")
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrapf(err, "failed to ping redis at %s", cfg.Addr)
			}
			params.Logger.Info("Redis slot store connected", slog.String("addr", cfg.Addr))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	return client, nil
}

type slotRepository struct {
	client    goredis.UniversalClient
	keyPrefix string
}

// NewSlotRepository creates a slot repository over client.
// Slots never expire.
func NewSlotRepository(client goredis.UniversalClient, keyPrefix string) repository.SlotRepository {
	return &slotRepository{client: client, keyPrefix: keyPrefix}
}

func (repo *slotRepository) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := repo.client.Get(ctx, repo.keyPrefix+key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, repository.ErrSlotNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read slot %s", key)
	}

	return data, nil
}

func (repo *slotRepository) Set(ctx context.Context, key string, value []byte) error {
	if err := repo.client.Set(ctx, repo.keyPrefix+key, value, 0).Err(); err != nil {
		return errors.Wrapf(err, "failed to write slot %s", key)
	}

	return nil
}

func (repo *slotRepository) Delete(ctx context.Context, key string) error {
	if err := repo.client.Del(ctx, repo.keyPrefix+key).Err(); err != nil {
		return errors.Wrapf(err, "failed to delete slot %s", key)
	}

	return nil
}
