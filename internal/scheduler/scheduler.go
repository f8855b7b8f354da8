package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type eventCounter interface {
	Count(ctx context.Context) (int, error)
}

type sizeRecorder interface {
	SetRepositorySize(n int)
}

// Scheduler periodically reports how many events the repository holds.
type Scheduler struct {
	repo     eventCounter
	recorder sizeRecorder
	interval time.Duration
	logger   logger.Logger
}

func New(
	repo eventCounter,
	recorder sizeRecorder,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		repo:     repo,
		recorder: recorder,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		s.logger.Error("failed to count events",
			logger.String("error", err.Error()),
		)
		return
	}

	s.recorder.SetRepositorySize(n)
	s.logger.Debug("repository size",
		logger.Int("events", n),
	)
}
