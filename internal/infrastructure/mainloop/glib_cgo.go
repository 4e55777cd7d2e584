//go:build webkit_cgo

package mainloop

import (
	"runtime"
	"sync/atomic"

	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"golang.org/x/sys/unix"

	"github.com/bnema/bridgehost/internal/application/port"
)

var _ port.UIThread = (*GLibThread)(nil)

// GLibThread dispatches to the GLib default main context.
type GLibThread struct {
	tid atomic.Int64
}

// NewGLibThread locks the calling goroutine to its OS thread and records it as the UI thread.
// It must be called from the goroutine that will run the GTK main loop.
func NewGLibThread() *GLibThread {
	runtime.LockOSThread()
	t := &GLibThread{}
	t.tid.Store(int64(unix.Gettid()))
	return t
}

// RunOnUIThread runs fn inline on the main thread, otherwise schedules it with glib.IdleAdd.
func (t *GLibThread) RunOnUIThread(fn func()) {
	if t.IsUIThread() {
		fn()
		return
	}
	glib.IdleAdd(func() bool {
		fn()
		return false
	})
}

// IsUIThread reports whether the caller is on the GTK main thread.
func (t *GLibThread) IsUIThread() bool {
	return int64(unix.Gettid()) == t.tid.Load()
}
