// Package persistence selects the durable slot backend from configuration.
package persistence

import (
	"context"
	"log/slog"

	"biaresh/config"
	"biaresh/internal/domain/constants"
	"biaresh/internal/domain/repository"
	"biaresh/internal/errors"
	"biaresh/internal/infra/persistence/blob"
	"biaresh/internal/infra/persistence/database"
	"biaresh/internal/infra/persistence/redis"

	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewSlotRepository opens the backend named by storage.driver
func NewSlotRepository(params Params) (repository.SlotRepository, error) {
	storage := params.Config.Storage
	logger := params.Logger.With(slog.String("driver", storage.Driver))

	switch storage.Driver {
	case constants.StorageDriverBlob:
		bucket, err := blob.OpenBucket(params.Ctx, blob.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    logger,
		})
		if err != nil {
			return nil, err
		}

		return blob.NewSlotRepository(bucket, storage.KeyPrefix), nil

	case constants.StorageDriverSQLite, constants.StorageDriverPostgres:
		db, err := database.New(database.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    logger,
		})
		if err != nil {
			return nil, err
		}

		return database.NewSlotRepository(db, storage.KeyPrefix), nil

	case constants.StorageDriverRedis:
		client, err := redis.NewClient(redis.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    logger,
		})
		if err != nil {
			return nil, err
		}

		return redis.NewSlotRepository(client, storage.KeyPrefix), nil

	default:
		return nil, errors.Errorf("unknown storage driver: %s", storage.Driver)
	}
}

// Module provides the slot repository FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewSlotRepository),
)
