// Package worker periodically drives the batch lifecycle: it executes ready
// transfers and fires due scheduled batches.
package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/chainsafe/gas-batcher/pkg/batch"
)

// Lifecycle is the part of the batch service the worker drives.
type Lifecycle interface {
	AutoProcess(ctx context.Context, cfg batch.AutoProcessConfig) (*batch.AutoProcessResult, error)
	RunDueSchedules(ctx context.Context, now time.Time) (*batch.ScheduleRunResult, error)
}

// Worker runs one pass per interval until stopped.
type Worker struct {
	lifecycle  Lifecycle
	cfg        batch.AutoProcessConfig
	interval   time.Duration
	runTimeout time.Duration
	logger     *zap.Logger
	now        func() time.Time

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// New creates a worker. cfg is passed to every AutoProcess call.
func New(lifecycle Lifecycle, cfg batch.AutoProcessConfig, interval, runTimeout time.Duration, logger *zap.Logger) *Worker {
	if runTimeout <= 0 {
		runTimeout = 2 * time.Minute
	}
	return &Worker{
		lifecycle:  lifecycle,
		cfg:        cfg,
		interval:   interval,
		runTimeout: runTimeout,
		logger:     logger,
		now:        time.Now,
		stopCh:     make(chan struct{}),
	}
}

// RunOnce fires due schedules, then auto-processes the ready queue. Both
// steps run even if the first fails.
func (w *Worker) RunOnce(ctx context.Context) error {
	var errs []error

	sched, err := w.lifecycle.RunDueSchedules(ctx, w.now().UTC())
	if err != nil {
		errs = append(errs, fmt.Errorf("run due schedules: %w", err))
	} else if sched.Due > 0 {
		w.logger.Info("Scheduled batches processed",
			zap.Int("due", sched.Due),
			zap.Int("completed", sched.Completed),
			zap.Int("failed", sched.Failed),
			zap.Int("skipped", sched.Skipped))
	}

	res, err := w.lifecycle.AutoProcess(ctx, w.cfg)
	if err != nil {
		errs = append(errs, fmt.Errorf("auto-process: %w", err))
	} else if res.Processed {
		w.logger.Info("Ready transactions processed",
			zap.Int("pending", res.PendingCount),
			zap.Int("groups_executed", res.GroupsExecuted),
			zap.Int("groups_skipped", res.GroupsSkipped))
	}

	return errors.Join(errs...)
}

// Start launches the background loop.
func (w *Worker) Start() {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()

		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		w.logger.Info("Started batch worker", zap.Duration("interval", w.interval))

		for {
			select {
			case <-ticker.C:
				ctx, cancel := context.WithTimeout(context.Background(), w.runTimeout)
				if err := w.RunOnce(ctx); err != nil {
					w.logger.Error("Batch worker pass failed", zap.Error(err))
				}
				cancel()
			case <-w.stopCh:
				w.logger.Info("Stopping batch worker")
				return
			}
		}
	}()
}

// Stop signals the loop and waits for an in-flight pass to finish.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}
