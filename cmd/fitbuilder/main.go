package main

import (
	"context"
	"log/slog"
	"os"

	"go.uber.org/fx"

	"fitbuilder/config"
	"fitbuilder/internal/delivery"
	"fitbuilder/internal/delivery/http"
	"fitbuilder/internal/delivery/http/middleware"
	"fitbuilder/internal/delivery/http/router/handler"
	"fitbuilder/internal/domain/repository"
	"fitbuilder/internal/infra/auth"
	"fitbuilder/internal/infra/coach"
	logs "fitbuilder/internal/infra/log"
	"fitbuilder/internal/infra/persistence/bolt"
	"fitbuilder/internal/infra/persistence/localdb"
	"fitbuilder/internal/infra/persistence/memory"
	"fitbuilder/internal/usecase/impl"
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
		newLocalStore,
	)
}

// newLocalStore picks the durable bolt store, or the in-memory store when no
// storage path is configured.
func newLocalStore(params bolt.Params) (repository.KVStore, error) {
	if params.Config.Storage == nil || params.Config.Storage.Path == "" {
		params.Logger.Warn("storage.path not configured, state will not survive restarts")

		return memory.New(), nil
	}

	return bolt.New(params)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			localdb.NewAccountRepository,
			localdb.NewSessionRepository,
			localdb.NewProfileRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			coach.New,
			coach.NewPlanGenerator,
			coach.NewFoodAnalyzer,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewProfileService,
			impl.NewPlanService,
			impl.NewScannerService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewProfileHandler,
			handler.NewPlanHandler,
			handler.NewScannerHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
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
