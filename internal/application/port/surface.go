package port

import "context"

// SavedState is the opaque state handed to a bridge on creation.
type SavedState map[string]any

// WebSurface is the embedded web-rendering surface supplied by the bridge.
type WebSurface interface {
	// SetPermissionRequestHandler replaces the surface's permission request handler.
	// Passing nil restores the surface default (deny).
	SetPermissionRequestHandler(handler PermissionRequestHandler)

	// LoadURI navigates the surface.
	LoadURI(ctx context.Context, uri string) error
}

// CaptureStateSource is implemented by surfaces that report live media capture.
type CaptureStateSource interface {
	// OnCaptureStateChanged registers fn, called with true when the page starts
	// capturing camera or microphone and false when it stops. Called on the UI thread.
	OnCaptureStateChanged(fn func(active bool))
}

// Bridge is the hybrid-app container that owns the web surface and its lifecycle.
type Bridge interface {
	// OnCreate runs the base lifecycle for a new host instance.
	OnCreate(ctx context.Context, state SavedState) error

	// WebSurface returns the embedded surface. Valid after OnCreate.
	WebSurface() WebSurface
}

// UIThread dispatches work to the UI/main thread.
type UIThread interface {
	// RunOnUIThread runs fn on the UI thread. If already there, fn runs immediately.
	RunOnUIThread(fn func())

	// IsUIThread reports whether the caller is on the UI thread.
	IsUIThread() bool
}
