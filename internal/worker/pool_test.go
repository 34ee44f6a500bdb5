package worker

import (
	"context"
	"sync/atomic"
	"testing"
)

type countJob struct {
	counter *int64
}

type countResult struct{}

func (countResult) GetError() error { return nil }

func (j *countJob) Execute(ctx context.Context) Result {
	atomic.AddInt64(j.counter, 1)
	return countResult{}
}

func TestPool_RunsAllJobs(t *testing.T) {
	pool := NewPool(3)
	pool.Start()

	var counter int64
	for i := 0; i < 20; i++ {
		pool.Submit(&countJob{counter: &counter})
	}

	results := pool.Wait()
	if len(results) != 20 {
		t.Errorf("got %d results, want 20", len(results))
	}
	if counter != 20 {
		t.Errorf("executed %d jobs, want 20", counter)
	}
}

func TestNewPool_ClampsWorkers(t *testing.T) {
	pool := NewPool(0)
	if pool.workers != 1 {
		t.Errorf("workers = %d, want 1", pool.workers)
	}
}
