// Package database stores durable slots in a SQL table through GORM,
// on SQLite for single-node installs or PostgreSQL when configured.
package database

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"biaresh/config"
	"biaresh/internal/domain/constants"
	"biaresh/internal/domain/lifecycle"
	"biaresh/internal/errors"
	"biaresh/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
	defaultSQLitePath           = "biaresh.db"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured SQL database and registers its lifecycle hooks.
// The slot table is migrated on start.
func New(params Params) (*gorm.DB, error) {
	db, err := Open(params.Config, params.Logger)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping database")
			}

			if err := Migrate(ctx, db); err != nil {
				return err
			}

			go monitorDBPool(monitorCtx, params.Logger, sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// Open connects to the database selected by storage.driver without
// touching the schema.
func Open(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	gormLogger := newGormSlogLogger(logger, cfg)

	switch cfg.Storage.Driver {
	case constants.StorageDriverSQLite:
		path := cfg.Storage.SQLitePath
		if path == "" {
			path = defaultSQLitePath
		}

		db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
			SkipDefaultTransaction: true,
			Logger:                 gormLogger,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to open SQLite database")
		}

		sqlDB, err := db.DB()
		if err != nil {
			return nil, errors.Wrap(err, "failed to get SQLite sql.DB")
		}
		// SQLite allows one writer; an in-memory database also exists per connection.
		sqlDB.SetMaxOpenConns(1)

		return db, nil

	case constants.StorageDriverPostgres:
		if cfg.Storage.Postgres == nil {
			return nil, errors.New("storage.postgres is required for the postgres driver")
		}

		db, err := pgLib.New(cfg.Storage.Postgres)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create PostgreSQL client")
		}

		return db.Session(&gorm.Session{
			SkipDefaultTransaction: true,
			Logger:                 gormLogger,
		}), nil

	default:
		return nil, errors.Errorf("storage driver %q is not a SQL driver", cfg.Storage.Driver)
	}
}

// Migrate creates or updates the slot table
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(&model.SlotModel{}); err != nil {
		return errors.Wrap(err, "failed to migrate storage_slots")
	}

	return nil
}

func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			waitDelta := cur.WaitCount - prev.WaitCount
			waitDurationDelta := cur.WaitDuration - prev.WaitDuration

			if waitDelta > 0 {
				attrs := []slog.Attr{
					slog.Int64("waitCountDelta", waitDelta),
					slog.Duration("waitDurationDelta", waitDurationDelta),
					slog.Duration("avgWait", waitDurationDelta/time.Duration(waitDelta)),
					slog.Int("openConns", cur.OpenConnections),
					slog.Int("inUseConns", cur.InUse),
				}
				level := slog.LevelDebug
				if waitDurationDelta >= dbPoolWarnDurationThreshold {
					level = slog.LevelWarn
				}
				logger.LogAttrs(ctx, level, "Slot database pool wait", attrs...)
			}

			prev = cur
		}
	}
}
