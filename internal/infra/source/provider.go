// Package source builds the configured LocationSource.
package source

import (
	"log/slog"

	"storelocator/config"
	"storelocator/internal/domain/constants"
	"storelocator/internal/domain/repository"
	"storelocator/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Params holds dependencies for the LocationSource, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	DB     *gorm.DB `optional:"true"`
}

// NewLocationSource creates a LocationSource based on configuration
func NewLocationSource(params Params) (repository.LocationSource, error) {
	cfg := params.Config.Source
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		return nil, errors.New("source provider is not configured")
	}

	switch cfg.Provider {
	case constants.SourceProviderHTTP:
		if cfg.HTTP == nil || cfg.HTTP.BaseURL == "" {
			return nil, errors.New("base URL is required for http source")
		}
		logger.Info("Using HTTP location source",
			slog.String("base_url", cfg.HTTP.BaseURL),
			slog.Duration("timeout", cfg.HTTP.Timeout),
		)

		return NewHTTPSource(cfg.HTTP.BaseURL, cfg.HTTP.Timeout, logger)

	case constants.SourceProviderPostgres:
		if params.DB == nil {
			return nil, errors.New("postgres section is required for postgres source")
		}
		logger.Info("Using Postgres location source")

		return postgres.NewLocationSource(params.DB), nil

	case constants.SourceProviderFile:
		if cfg.File == nil || cfg.File.Path == "" {
			return nil, errors.New("path is required for file source")
		}
		logger.Info("Using file location source", slog.String("path", cfg.File.Path))

		return NewFileSource(cfg.File.Path, logger)

	default:
		return nil, errors.Errorf("unknown source provider: %s", cfg.Provider)
	}
}

// Module provides the location source FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		postgres.New,
		NewLocationSource,
	),
)
