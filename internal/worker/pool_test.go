package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

type countJob struct {
	counter *atomic.Int64
}

type countResult struct{}

func (r *countResult) GetError() error { return nil }

func (j *countJob) Execute(ctx context.Context) Result {
	j.counter.Add(1)
	return &countResult{}
}

func TestPool_RunsAllJobs(t *testing.T) {
	var counter atomic.Int64

	pool := NewPool(3)
	pool.Start()
	for i := 0; i < 10; i++ {
		pool.Submit(&countJob{counter: &counter})
	}
	results := pool.Wait()

	if counter.Load() != 10 {
		t.Errorf("Expected 10 executions, got %d", counter.Load())
	}
	if len(results) != 10 {
		t.Errorf("Expected 10 results, got %d", len(results))
	}
}

func TestPool_ZeroWorkersDefaultsToOne(t *testing.T) {
	var counter atomic.Int64

	pool := NewPool(0)
	pool.Start()
	pool.Submit(&countJob{counter: &counter})
	results := pool.Wait()

	if len(results) != 1 {
		t.Errorf("Expected 1 result, got %d", len(results))
	}
}

func TestLimiter_AllowsWithinBurst(t *testing.T) {
	limiter := NewLimiter(1, 2)

	if !limiter.Allow("https://example.org/a") {
		t.Error("Expected first request allowed")
	}
	if !limiter.Allow("https://example.org/b") {
		t.Error("Expected second request within burst allowed")
	}
	if limiter.Allow("https://example.org/c") {
		t.Error("Expected third request beyond burst denied")
	}

	// A different host has its own limiter.
	if !limiter.Allow("https://other.org/a") {
		t.Error("Expected fresh host allowed")
	}
}

func TestLimiter_WaitRespectsContext(t *testing.T) {
	limiter := NewLimiter(0.001, 1)

	// Exhaust the burst.
	if err := limiter.Wait(context.Background(), "https://example.org/"); err != nil {
		t.Fatalf("Expected first wait to pass, got %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := limiter.Wait(ctx, "https://example.org/"); err == nil {
		t.Error("Expected context deadline to interrupt wait")
	}
}
