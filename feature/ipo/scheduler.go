package ipo

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// Scheduler runs SyncAll on a fixed interval.
type Scheduler struct {
	service  *Service
	interval time.Duration
	logger   *zap.Logger

	started  atomic.Bool
	stopChan chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

// NewScheduler creates a scheduler. It does nothing until Start is called.
func NewScheduler(service *Service, interval time.Duration, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		service:  service,
		interval: interval,
		logger:   logger,
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the loop in its own goroutine. The first sync runs immediately.
func (s *Scheduler) Start(ctx context.Context) {
	if !s.started.CompareAndSwap(false, true) {
		return
	}
	go s.loop(ctx)
}

func (s *Scheduler) loop(ctx context.Context) {
	defer close(s.done)

	s.logger.Info("IPO sync scheduler started", zap.Duration("interval", s.interval))
	s.syncOnce(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.syncOnce(ctx)
		case <-s.stopChan:
			s.logger.Info("IPO sync scheduler stopped")
			return
		case <-ctx.Done():
			s.logger.Info("IPO sync scheduler context cancelled")
			return
		}
	}
}

func (s *Scheduler) syncOnce(ctx context.Context) {
	if _, err := s.service.SyncAll(ctx); err != nil {
		s.logger.Error("Scheduled IPO sync failed", zap.Error(err))
	}
}

// Stop ends the loop and waits for an in-progress sync to return.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.stopChan) })
	if s.started.Load() {
		<-s.done
	}
}
