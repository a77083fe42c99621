package main

import (
	"context"
	"log/slog"
	"os"

	"biaresh/config"
	"biaresh/internal/delivery"
	"biaresh/internal/delivery/worker"
	"biaresh/internal/delivery/worker/handler"
	logs "biaresh/internal/infra/log"
	"biaresh/internal/infra/mail"
	"biaresh/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

// The notifier receives store events from Pub/Sub push and emails the owner.
func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
		),
		fx.Provide(
			mail.NewOwnerNotifier,
			impl.NewNotificationService,
			handler.NewPushHandler,
		),
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start notifier", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
