// Package mainloop provides the UI thread the host dispatches grant calls to.
package mainloop

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sys/unix"

	"github.com/bnema/bridgehost/internal/application/port"
)

const defaultQueueSize = 64

var _ port.UIThread = (*Loop)(nil)

// Loop is a UI thread without a toolkit: one goroutine locked to one OS thread
// draining a task queue. It backs headless builds and tests.
type Loop struct {
	tasks     chan func()
	tid       atomic.Int64
	started   chan struct{}
	done      chan struct{}
	startOnce sync.Once
	quitOnce  sync.Once
}

// NewLoop creates a stopped loop.
func NewLoop() *Loop {
	return &Loop{
		tasks:   make(chan func(), defaultQueueSize),
		started: make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Start runs the loop in its own goroutine and returns once it is ready.
func (l *Loop) Start(ctx context.Context) {
	l.startOnce.Do(func() {
		go l.run(ctx)
	})
	<-l.started
}

// Run blocks the calling goroutine as the UI thread until ctx is done or Quit is called.
func (l *Loop) Run(ctx context.Context) {
	ran := false
	l.startOnce.Do(func() {
		ran = true
		l.run(ctx)
	})
	if !ran {
		<-l.done
	}
}

func (l *Loop) run(ctx context.Context) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	l.tid.Store(int64(unix.Gettid()))
	close(l.started)

	for {
		select {
		case fn := <-l.tasks:
			fn()
		case <-l.done:
			l.tid.Store(0)
			return
		case <-ctx.Done():
			l.Quit()
			l.tid.Store(0)
			return
		}
	}
}

// RunOnUIThread runs fn on the loop thread. If called on that thread it runs inline.
// Tasks posted after Quit are dropped.
func (l *Loop) RunOnUIThread(fn func()) {
	if l.IsUIThread() {
		fn()
		return
	}
	select {
	case l.tasks <- fn:
	case <-l.done:
	}
}

// IsUIThread reports whether the caller runs on the loop thread.
func (l *Loop) IsUIThread() bool {
	tid := l.tid.Load()
	return tid != 0 && int64(unix.Gettid()) == tid
}

// Quit stops the loop. Safe to call more than once.
func (l *Loop) Quit() {
	l.quitOnce.Do(func() { close(l.done) })
}

// Done is closed when the loop stops.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}
