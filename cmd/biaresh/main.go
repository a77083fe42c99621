package main

import (
	"context"
	"log/slog"
	"os"

	"biaresh/config"
	"biaresh/internal/delivery"
	"biaresh/internal/delivery/api"
	"biaresh/internal/delivery/api/middleware"
	"biaresh/internal/delivery/api/router/handler"
	"biaresh/internal/infra/auth"
	"biaresh/internal/infra/catalog"
	"biaresh/internal/infra/clock"
	logs "biaresh/internal/infra/log"
	"biaresh/internal/infra/persistence"
	"biaresh/internal/infra/pubsub"
	"biaresh/internal/infra/qrcode"
	"biaresh/internal/infra/validation"
	"biaresh/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		persistence.Module,
		fx.Provide(
			catalog.DefaultProducts,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		pubsub.Module,
		fx.Provide(
			clock.New,
			auth.NewConfiguredHasher,
			validation.New,
			validation.NewInputValidator,
			qrcode.NewConfiguredQRCodeService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCatalogService,
			impl.NewCartService,
			impl.NewOrderService,
			impl.NewMessageService,
			impl.NewSessionService,
			impl.NewCheckoutService,
			impl.NewDashboardService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAdminGuard,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCatalogHandler,
			handler.NewCartHandler,
			handler.NewCheckoutHandler,
			handler.NewAdminHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
