package tasks

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestQueueRunsJobs(t *testing.T) {
	q := NewQueue(zap.NewNop().Sugar(), 2, 8)

	var ran int32
	for i := 0; i < 5; i++ {
		ok := q.Enqueue("count", func(ctx context.Context) error {
			atomic.AddInt32(&ran, 1)
			return nil
		})
		assert.True(t, ok)
	}

	q.Close()
	assert.Equal(t, int32(5), atomic.LoadInt32(&ran))
}

func TestQueueDropsWhenFull(t *testing.T) {
	q := NewQueue(zap.NewNop().Sugar(), 1, 1)

	block := make(chan struct{})
	q.Enqueue("block", func(ctx context.Context) error {
		<-block
		return nil
	})
	// one slot in the buffer, everything past it is dropped
	q.Enqueue("buffered", func(ctx context.Context) error { return nil })

	dropped := false
	for i := 0; i < 3; i++ {
		if !q.Enqueue("extra", func(ctx context.Context) error { return nil }) {
			dropped = true
		}
	}
	assert.True(t, dropped)

	close(block)
	q.Close()
}
