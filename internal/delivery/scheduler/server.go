// Package scheduler keeps the directory fresh in the background.
package scheduler

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"storelocator/config"
	"storelocator/internal/delivery"
	domainerrors "storelocator/internal/domain/errors"
	"storelocator/internal/domain/lifecycle"
	"storelocator/internal/domain/service"
	"storelocator/internal/usecase"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

type refreshScheduler struct {
	directoryUC usecase.DirectoryUsecase
	logger      *slog.Logger
	cron        *cron.Cron
	warmup      bool
	hasJob      bool
}

// ServerParams holds dependencies for the refresh scheduler
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	Clock       service.Clock
	DirectoryUC usecase.DirectoryUsecase
}

// NewServer creates the scheduler. Cron specs are read in the clock's zone
// and a refresh that is still running makes the next tick skip.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	logger := params.Logger.With(slog.String("component", "refresh_scheduler"))
	cronLogger := &slogCronLogger{logger: logger}

	srv := &refreshScheduler{
		directoryUC: params.DirectoryUC,
		logger:      logger,
		cron: cron.New(
			cron.WithLocation(params.Clock.Location()),
			cron.WithLogger(cronLogger),
			cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
		),
	}

	if cfg := params.Cfg.Directory; cfg != nil {
		srv.warmup = cfg.WarmupOnStart

		if spec := strings.TrimSpace(cfg.RefreshSchedule); spec != "" {
			if _, err := srv.cron.AddFunc(spec, srv.refresh); err != nil {
				return nil, errors.Wrapf(err, "invalid directory refresh schedule %q", spec)
			}
			srv.hasJob = true
		}
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// Serve warms the cache if configured and starts the cron loop. It returns
// once the loop is running.
func (s *refreshScheduler) Serve(ctx context.Context) error {
	if s.warmup {
		s.load(ctx, "warmup")
	}

	if !s.hasJob {
		s.logger.Info("Directory refresh schedule disabled")

		return nil
	}

	s.logger.Info("Starting directory refresh scheduler")
	s.cron.Start()

	return nil
}

func (s *refreshScheduler) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	s.load(ctx, "scheduled")
}

// load forces a refresh. Failures are logged only; readers keep the last good directory.
func (s *refreshScheduler) load(ctx context.Context, trigger string) {
	start := time.Now()

	locations, err := s.directoryUC.List(ctx, true)
	switch {
	case err == nil:
		s.logger.Info("Directory refreshed",
			slog.String("trigger", trigger),
			slog.Int("locations", len(locations)),
			slog.Duration("elapsed", time.Since(start)),
		)
	case domainerrors.IsStale(err):
		s.logger.Warn("Directory refresh failed, keeping last good directory",
			slog.String("trigger", trigger),
			slog.Any("error", err),
		)
	default:
		s.logger.Error("Directory refresh failed",
			slog.String("trigger", trigger),
			slog.Any("error", err),
		)
	}
}

func (s *refreshScheduler) stop(ctx context.Context) error {
	stopCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down directory refresh scheduler")

	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-stopCtx.Done():
		return errors.Wrap(stopCtx.Err(), "running refresh did not finish")
	}
}

// slogCronLogger adapts slog to cron.Logger.
type slogCronLogger struct {
	logger *slog.Logger
}

func (l *slogCronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l *slogCronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error(msg, append([]any{slog.Any("error", err)}, keysAndValues...)...)
}
