//go:build unit

package scheduler_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"stokship/internal/infra/scheduler"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunner_RunOnce(t *testing.T) {
	t.Run("skips while a run is in progress", func(t *testing.T) {
		release := make(chan struct{})
		started := make(chan struct{})
		var calls atomic.Int32
		r := scheduler.NewRunner("test", func(ctx context.Context) error {
			calls.Add(1)
			close(started)
			<-release
			return nil
		}, scheduler.Options{Interval: time.Hour})

		done := make(chan bool)
		go func() { done <- r.RunOnce(context.Background()) }()
		<-started

		assert.False(t, r.RunOnce(context.Background()))
		close(release)
		assert.True(t, <-done)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("recovers from panic", func(t *testing.T) {
		var calls atomic.Int32
		r := scheduler.NewRunner("test", func(ctx context.Context) error {
			if calls.Add(1) == 1 {
				panic("boom")
			}
			return nil
		}, scheduler.Options{Interval: time.Hour})

		assert.True(t, r.RunOnce(context.Background()))
		assert.True(t, r.RunOnce(context.Background()))
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("run is bounded by timeout", func(t *testing.T) {
		r := scheduler.NewRunner("test", func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		}, scheduler.Options{Interval: time.Hour, Timeout: 10 * time.Millisecond})

		assert.True(t, r.RunOnce(context.Background()))
	})
}

func TestRunner_StartStop(t *testing.T) {
	ran := make(chan struct{}, 16)
	r := scheduler.NewRunner("test", func(ctx context.Context) error {
		ran <- struct{}{}
		return nil
	}, scheduler.Options{Interval: 20 * time.Millisecond, RunOnStart: true})

	r.Start(context.Background())

	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("job did not run on start")
	}
	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("job did not run on tick")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, r.Stop(ctx))
	require.NoError(t, r.Stop(ctx))
}
