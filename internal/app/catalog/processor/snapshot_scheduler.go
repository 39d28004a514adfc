package processor

import (
	"context"
	"log"

	"devicehub/internal/app/catalog/repository"
	"devicehub/pkg/logger"
	"devicehub/pkg/metrics"

	"github.com/robfig/cron/v3"
)

// SnapshotScheduler периодически записывает полный снимок коллекций
// каталога в хранилище. Выравнивает хранилище после сбоев записи,
// когда память опередила персистентное состояние.
type SnapshotScheduler struct {
	cron *cron.Cron
	repo repository.CatalogRepository
}

func NewSnapshotScheduler(repo repository.CatalogRepository) *SnapshotScheduler {
	c := cron.New(cron.WithLogger(cron.VerbosePrintfLogger(log.Default())))

	return &SnapshotScheduler{
		cron: c,
		repo: repo,
	}
}

// Start регистрирует задачу снапшота и сразу выполняет первый сброс
func (s *SnapshotScheduler) Start(ctx context.Context, schedule string) error {
	logger.Info().Str("schedule", schedule).Msg("starting snapshot scheduler")

	_, err := s.cron.AddFunc(schedule, func() {
		s.flush(ctx)
	})
	if err != nil {
		return err
	}

	s.cron.Start()

	s.flush(ctx)

	return nil
}

// Stop останавливает планировщик, дожидаясь завершения текущей задачи
func (s *SnapshotScheduler) Stop() {
	logger.Info().Msg("stopping snapshot scheduler")
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info().Msg("snapshot scheduler stopped")
}

func (s *SnapshotScheduler) GetEntries() []cron.Entry {
	return s.cron.Entries()
}

func (s *SnapshotScheduler) flush(ctx context.Context) {
	if err := s.repo.Flush(ctx); err != nil {
		metrics.SnapshotFlushes.WithLabelValues("error").Inc()
		logger.Warn().Err(err).Msg("snapshot flush failed")
		return
	}

	metrics.SnapshotFlushes.WithLabelValues("success").Inc()
	logger.Debug().Msg("snapshot flush completed")
}
