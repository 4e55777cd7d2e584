package port

import "context"

// IdleInhibitor keeps the session from idling or suspending while a page
// captures camera or microphone. Implementations are refcounted: every Inhibit
// needs a matching Uninhibit before inhibition is released.
type IdleInhibitor interface {
	// Inhibit increments the refcount. The first call activates inhibition.
	Inhibit(ctx context.Context, reason string) error

	// Uninhibit decrements the refcount. When it reaches zero inhibition is released.
	// No-op when not inhibited.
	Uninhibit(ctx context.Context) error

	// IsInhibited returns true if currently inhibiting idle.
	IsInhibited() bool

	// Close releases any held resources. Should be called on shutdown.
	Close() error
}
