package main

import (
	"context"
	"log/slog"
	"strings"
	_ "time/tzdata"

	"storelocator/config"
	"storelocator/internal/delivery"
	"storelocator/internal/delivery/api"
	"storelocator/internal/delivery/api/router/handler"
	"storelocator/internal/delivery/scheduler"
	"storelocator/internal/domain/query"
	"storelocator/internal/domain/schedule"
	"storelocator/internal/domain/service"
	"storelocator/internal/infra/clock"
	"storelocator/internal/infra/directory"
	logs "storelocator/internal/infra/log"
	"storelocator/internal/infra/metrics"
	"storelocator/internal/infra/source"
	"storelocator/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/text/language"
)

type startServerParams struct {
	fx.In

	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectSource(),
		injectDomain(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
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
		metrics.New,
		clock.New,
	)
}

func injectSource() fx.Option {
	return source.Module
}

func injectDomain() fx.Option {
	return fx.Options(
		fx.Provide(
			schedule.NewResolver,
			newQueryEngine,
			fx.Annotate(
				directory.New,
				fx.As(new(service.DirectoryCache)),
			),
		),
	)
}

// newQueryEngine builds the engine with the configured collation locale.
func newQueryEngine(cfg *config.Config, resolver *schedule.Resolver, logger *slog.Logger) (*query.Engine, error) {
	locale := language.Und
	if cfg.Directory != nil && strings.TrimSpace(cfg.Directory.Locale) != "" {
		tag, err := language.Parse(cfg.Directory.Locale)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid directory locale %q", cfg.Directory.Locale)
		}
		locale = tag
	}

	return query.NewEngine(resolver, locale, logger), nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewDirectoryService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewHealthHandler,
			handler.NewStoreHandler,
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
			fx.Annotate(
				scheduler.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				params.Logger.Error("Failed to start server", slog.Any("error", err))
				if shutdownErr := params.Shutdowner.Shutdown(fx.ExitCode(1)); shutdownErr != nil {
					params.Logger.Error("Failed to shut down", slog.Any("error", shutdownErr))
				}
			}
		}()
	}
}
