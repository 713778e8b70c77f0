// Package scheduler runs periodic jobs on robfig/cron. Overlapping runs of the
// same job are skipped and panics are recovered.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"gestorpro/internal/logging"
)

type Job func(ctx context.Context) error

type Scheduler struct {
	cron   *cron.Cron
	ctx    context.Context
	cancel context.CancelFunc
	logger *zap.Logger
}

func New(loc *time.Location, logger *zap.Logger) *Scheduler {
	logger = logging.OrNop(logger).Named("scheduler")
	cl := cronLogger{logger.Sugar()}
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		ctx:    ctx,
		cancel: cancel,
		logger: logger,
	}
}

// Add registers job under a standard 5-field cron expression or a descriptor such as "@every 1m".
func (s *Scheduler) Add(expr, name string, job Job) error {
	_, err := s.cron.AddFunc(expr, func() {
		start := time.Now()
		if err := job(s.ctx); err != nil {
			s.logger.Error("job failed", zap.String("job", name), zap.Error(err))
			return
		}
		s.logger.Debug("job done", zap.String("job", name), zap.Duration("elapsed", time.Since(start)))
	})
	if err != nil {
		return fmt.Errorf("schedule %s (%q): %w", name, expr, err)
	}
	s.logger.Info("job scheduled", zap.String("job", name), zap.String("expr", expr))
	return nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop cancels the jobs' context and waits for running jobs, at most until ctx ends.
func (s *Scheduler) Stop(ctx context.Context) {
	s.cancel()
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
		s.logger.Warn("jobs still running at shutdown")
	}
}

// Every builds the "@every" expression for a fixed interval.
func Every(d time.Duration) string {
	return "@every " + d.String()
}

type cronLogger struct {
	s *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.s.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.s.Errorw(msg, append(keysAndValues, "err", err)...)
}
