package bootstrap

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/bridgehost/internal/logging"
)

// StartupTimer records how long each startup phase took.
// Safe for use from the parallel warm-up goroutines.
type StartupTimer struct {
	start  time.Time
	last   time.Time
	phases map[string]time.Duration
	order  []string
	mu     sync.Mutex
	now    func() time.Time
}

// NewStartupTimer creates a new timer starting from now.
func NewStartupTimer() *StartupTimer {
	return newStartupTimer(time.Now)
}

func newStartupTimer(now func() time.Time) *StartupTimer {
	t0 := now()
	return &StartupTimer{
		start:  t0,
		last:   t0,
		phases: make(map[string]time.Duration),
		now:    now,
	}
}

// Mark records the time since the previous mark for phase.
func (t *StartupTimer) Mark(phase string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	t.record(phase, now.Sub(t.last))
	t.last = now
}

// MarkDuration records a duration measured elsewhere, e.g. in a goroutine.
func (t *StartupTimer) MarkDuration(phase string, d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.record(phase, d)
}

func (t *StartupTimer) record(phase string, d time.Duration) {
	if _, seen := t.phases[phase]; !seen {
		t.order = append(t.order, phase)
	}
	t.phases[phase] = d
}

// Phases returns phase names in the order they were first recorded.
func (t *StartupTimer) Phases() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.order...)
}

// Duration returns the recorded duration of phase.
func (t *StartupTimer) Duration(phase string) (time.Duration, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	d, ok := t.phases[phase]
	return d, ok
}

// LogDebug writes all phases to the context logger at debug level.
func (t *StartupTimer) LogDebug(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()

	event := logging.FromContext(ctx).Debug().Dur("total", t.now().Sub(t.start))
	for _, phase := range t.order {
		event = event.Dur(phase, t.phases[phase])
	}
	event.Msg("startup timing")
}
