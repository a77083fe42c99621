// Package blob stores each durable slot as one JSON object in a gocloud
// bucket: a local directory (file://), process memory (mem://) or any
// cloud bucket URL registered with gocloud.
package blob

import (
	"context"
	"log/slog"

	"biaresh/config"
	"biaresh/internal/domain/repository"
	"biaresh/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

const objectSuffix = ".json"

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// OpenBucket opens the configured bucket and closes it on stop
func OpenBucket(ctx context.Context, params Params) (*blob.Bucket, error) {
	bucket, err := blob.OpenBucket(ctx, params.Config.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", params.Config.Storage.BucketURL)
	}

	params.Logger.Info("Slot bucket opened", slog.String("url", params.Config.Storage.BucketURL))

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return bucket, nil
}

type slotRepository struct {
	bucket    *blob.Bucket
	keyPrefix string
}

// NewSlotRepository creates a slot repository storing <prefix><key>.json objects
func NewSlotRepository(bucket *blob.Bucket, keyPrefix string) repository.SlotRepository {
	return &slotRepository{bucket: bucket, keyPrefix: keyPrefix}
}

func (repo *slotRepository) objectKey(key string) string {
	return repo.keyPrefix + key + objectSuffix
}

func (repo *slotRepository) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := repo.bucket.ReadAll(ctx, repo.objectKey(key))
	if gcerrors.Code(err) == gcerrors.NotFound {
		return nil, repository.ErrSlotNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read slot %s", key)
	}

	return data, nil
}

func (repo *slotRepository) Set(ctx context.Context, key string, value []byte) error {
	err := repo.bucket.WriteAll(ctx, repo.objectKey(key), value, &blob.WriterOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return errors.Wrapf(err, "failed to write slot %s", key)
	}

	return nil
}

func (repo *slotRepository) Delete(ctx context.Context, key string) error {
	err := repo.bucket.Delete(ctx, repo.objectKey(key))
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "failed to delete slot %s", key)
	}

	return nil
}
