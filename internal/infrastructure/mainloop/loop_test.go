package mainloop_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/bnema/bridgehost/internal/infrastructure/mainloop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startLoop(t *testing.T) *mainloop.Loop {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	loop := mainloop.NewLoop()
	loop.Start(ctx)
	t.Cleanup(func() {
		cancel()
		<-loop.Done()
	})
	return loop
}

func TestLoop_RunsTasksOnLoopThread(t *testing.T) {
	loop := startLoop(t)
	assert.False(t, loop.IsUIThread(), "test goroutine is not the UI thread")

	onUI := make(chan bool, 1)
	loop.RunOnUIThread(func() { onUI <- loop.IsUIThread() })

	select {
	case got := <-onUI:
		assert.True(t, got)
	case <-time.After(2 * time.Second):
		t.Fatal("task never ran")
	}
}

func TestLoop_InlineWhenAlreadyOnUIThread(t *testing.T) {
	loop := startLoop(t)

	var order []string
	done := make(chan struct{})
	loop.RunOnUIThread(func() {
		loop.RunOnUIThread(func() { order = append(order, "inner") })
		order = append(order, "outer")
		close(done)
	})

	<-done
	assert.Equal(t, []string{"inner", "outer"}, order)
}

func TestLoop_RunsEveryTaskFromManyGoroutines(t *testing.T) {
	loop := startLoop(t)

	const n = 200
	var (
		mu   sync.Mutex
		seen int
		wg   sync.WaitGroup
	)
	wg.Add(n)
	for range n {
		go loop.RunOnUIThread(func() {
			mu.Lock()
			seen++
			mu.Unlock()
			wg.Done()
		})
	}
	wg.Wait()
	assert.Equal(t, n, seen)
}

func TestLoop_DropsTasksAfterQuit(t *testing.T) {
	loop := mainloop.NewLoop()
	loop.Start(context.Background())
	loop.Quit()
	<-loop.Done()

	ran := false
	for range 100 {
		loop.RunOnUIThread(func() { ran = true })
	}
	require.False(t, loop.IsUIThread())
	assert.False(t, ran)
}
