package async_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/hubsync-io/hubsync/pkg/utils/async"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

func TestDispatch(t *testing.T) {
	t.Run("Execute handler asynchronously", func(t *testing.T) {
		ctx := context.Background()
		var wg sync.WaitGroup
		executed := false

		wg.Add(1)
		async.Dispatch(ctx, func(ctx context.Context) error {
			defer wg.Done()
			executed = true
			return nil
		})

		// Wait for async execution with timeout
		done := make(chan struct{})
		go func() {
			wg.Wait()
			close(done)
		}()

		select {
		case <-done:
			gt.True(t, executed)
		case <-time.After(1 * time.Second):
			t.Fatal("Async handler did not execute within timeout")
		}
	})

	t.Run("Handle errors in async handler", func(t *testing.T) {
		ctx := context.Background()
		var wg sync.WaitGroup

		wg.Add(1)
		async.Dispatch(ctx, func(ctx context.Context) error {
			defer wg.Done()
			return goerr.New("test error")
		})

		// Wait for async execution
		done := make(chan struct{})
		go func() {
			wg.Wait()
			close(done)
		}()

		select {
		case <-done:
			// Test passes if no panic occurs
		case <-time.After(1 * time.Second):
			t.Fatal("Async handler did not complete within timeout")
		}
	})

	t.Run("Recover from panic in async handler", func(t *testing.T) {
		ctx := context.Background()
		var wg sync.WaitGroup

		wg.Add(1)
		async.Dispatch(ctx, func(ctx context.Context) error {
			defer wg.Done()
			panic("test panic")
		})

		// Wait for async execution
		done := make(chan struct{})
		go func() {
			wg.Wait()
			close(done)
		}()

		select {
		case <-done:
			// Test passes if panic is recovered
		case <-time.After(1 * time.Second):
			t.Fatal("Async handler did not recover from panic within timeout")
		}
	})

	t.Run("Concurrent dispatches all run", func(t *testing.T) {
		ctx := context.Background()
		var wg sync.WaitGroup
		var mu sync.Mutex
		counter := 0

		for i := 0; i < 10; i++ {
			wg.Add(1)
			async.Dispatch(ctx, func(ctx context.Context) error {
				defer wg.Done()
				mu.Lock()
				counter++
				mu.Unlock()
				return nil
			})
		}

		// Wait for all async executions
		done := make(chan struct{})
		go func() {
			wg.Wait()
			close(done)
		}()

		select {
		case <-done:
			gt.Equal(t, 10, counter)
		case <-time.After(2 * time.Second):
			t.Fatal("Async handlers did not complete within timeout")
		}
	})
}

func TestContextPreservation(t *testing.T) {
	t.Run("Logger is preserved in background context", func(t *testing.T) {
		ctx := context.Background()
		logger := ctxlog.From(context.Background()) // Get default logger
		ctx = ctxlog.With(ctx, logger)

		var wg sync.WaitGroup
		var hasLogger bool

		wg.Add(1)
		async.Dispatch(ctx, func(ctx context.Context) error {
			defer wg.Done()
			hasLogger = ctxlog.From(ctx) != nil
			return nil
		})

		done := make(chan struct{})
		go func() {
			wg.Wait()
			close(done)
		}()

		select {
		case <-done:
			gt.True(t, hasLogger)
		case <-time.After(1 * time.Second):
			t.Fatal("Async handler did not complete within timeout")
		}
	})
}
