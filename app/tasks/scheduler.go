package tasks

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Sweeper removes expired entries and reports how many were dropped.
type Sweeper interface {
	Sweep() int
	Len() int
}

// Scheduler periodically sweeps stale entries out of the result cache so
// memory is reclaimed even when no requests arrive.
type Scheduler struct {
	cache    Sweeper
	interval time.Duration
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

func NewScheduler(cache Sweeper, interval time.Duration) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())

	return &Scheduler{
		cache:    cache,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
	}
}

func (s *Scheduler) Start() {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-s.ctx.Done():
				return
			case <-ticker.C:
				s.sweep()
			}
		}
	}()
}

func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
}

func (s *Scheduler) sweep() {
	removed := s.cache.Sweep()
	if removed > 0 {
		slog.Debug("Swept expired cache entries", "removed", removed, "remaining", s.cache.Len())
	}
}
