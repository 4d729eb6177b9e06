// Package scheduler runs a job on a fixed interval within one process.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

type Job func(ctx context.Context) error

type Options struct {
	Interval   time.Duration
	RunOnStart bool
	// Timeout bounds a single run. Defaults to Interval.
	Timeout time.Duration
}

// Runner triggers Job every Interval. A tick that fires while the previous
// run is still in progress is skipped; a panicking run is logged and the
// runner keeps going.
type Runner struct {
	name    string
	job     Job
	opts    Options
	running atomic.Bool

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewRunner(name string, job Job, opts Options) *Runner {
	if opts.Timeout <= 0 {
		opts.Timeout = opts.Interval
	}
	return &Runner{name: name, job: job, opts: opts}
}

// Start launches the loop in the background. It is a no-op when already started.
func (r *Runner) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		return
	}

	// the loop outlives the start hook's context
	loopCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	r.cancel = cancel
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		r.loop(loopCtx)
	}()
	slog.Info("scheduler started", "job", r.name, "interval", r.opts.Interval, "run_on_start", r.opts.RunOnStart)
}

// Stop cancels the loop and any in-flight run, then waits for them to return
// or for ctx to expire.
func (r *Runner) Stop(ctx context.Context) error {
	r.mu.Lock()
	cancel := r.cancel
	r.cancel = nil
	r.mu.Unlock()
	if cancel == nil {
		return nil
	}
	cancel()

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		slog.Info("scheduler stopped", "job", r.name)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *Runner) loop(ctx context.Context) {
	ticker := time.NewTicker(r.opts.Interval)
	defer ticker.Stop()

	if r.opts.RunOnStart {
		r.trigger(ctx)
	}
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.trigger(ctx)
		}
	}
}

func (r *Runner) trigger(ctx context.Context) {
	if r.running.Load() {
		slog.Warn("previous run still in progress, skipping tick", "job", r.name)
		return
	}
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		r.RunOnce(ctx)
	}()
}

// RunOnce executes the job unless a run is already in progress and reports
// whether it ran.
func (r *Runner) RunOnce(ctx context.Context) bool {
	if !r.running.CompareAndSwap(false, true) {
		return false
	}
	defer r.running.Store(false)

	ctx, cancel := context.WithTimeout(ctx, r.opts.Timeout)
	defer cancel()

	start := time.Now()
	if err := r.safeRun(ctx); err != nil {
		slog.Error("scheduled job failed", "job", r.name, "duration", time.Since(start), "error", err)
		return true
	}
	slog.Debug("scheduled job finished", "job", r.name, "duration", time.Since(start))
	return true
}

func (r *Runner) safeRun(ctx context.Context) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic: %v", rec)
		}
	}()
	return r.job(ctx)
}
