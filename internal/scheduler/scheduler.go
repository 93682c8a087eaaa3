package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

type job struct {
	name       string
	fn         func(ctx context.Context) error
	interval   time.Duration
	runOnStart bool
}

type Scheduler struct {
	jobs   []job
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func New() *Scheduler {
	return &Scheduler{}
}

func (s *Scheduler) NewIntervalJob(name string, fn func(ctx context.Context) error, interval time.Duration, runOnStart bool) {
	s.jobs = append(s.jobs, job{name: name, fn: fn, interval: interval, runOnStart: runOnStart})
}

func (s *Scheduler) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	for _, j := range s.jobs {
		s.wg.Add(1)
		go s.runJob(ctx, j)
	}

	slog.Info("scheduler started", slog.Int("jobs", len(s.jobs)))
}

func (s *Scheduler) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	slog.Info("scheduler stopped")
}

func (s *Scheduler) runJob(ctx context.Context, j job) {
	defer s.wg.Done()

	if j.runOnStart {
		s.execute(ctx, j)
	}

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.execute(ctx, j)
		}
	}
}

func (s *Scheduler) execute(ctx context.Context, j job) {
	slog.Info("job started", slog.String("job", j.name))
	if err := j.fn(ctx); err != nil {
		slog.Error("job failed", slog.String("job", j.name), slog.String("err", err.Error()))
		return
	}
	slog.Info("job finished", slog.String("job", j.name))
}
