package worker

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPool(t *testing.T) {
	p := NewPool(3)
	var mu sync.Mutex
	count := 0
	for i := 0; i < 5; i++ {
		require.True(t, p.Submit(func() {
			mu.Lock()
			count++
			mu.Unlock()
		}))
	}
	p.Stop()
	require.Equal(t, 5, count)
}

func TestPoolSubmitFullQueue(t *testing.T) {
	p := NewPool(1)
	started := make(chan struct{})
	block := make(chan struct{})
	p.Submit(func() { close(started); <-block })
	<-started

	// fill the queue behind the blocked worker
	for i := 0; i < queuePerWorker; i++ {
		require.True(t, p.Submit(func() {}))
	}
	require.False(t, p.Submit(func() {}))

	close(block)
	p.Stop()
}

func TestPoolZeroWorkers(t *testing.T) {
	p := NewPool(0)
	done := false
	require.True(t, p.Submit(func() { done = true }))
	p.Stop()
	require.True(t, done)
}
