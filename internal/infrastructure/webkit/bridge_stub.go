//go:build !webkit_cgo

package webkit

import (
	"context"
	"sync"

	"github.com/bnema/bridgehost/internal/application/port"
	"github.com/bnema/bridgehost/internal/domain/entity"
	"github.com/bnema/bridgehost/internal/infrastructure/mainloop"
	"github.com/bnema/bridgehost/internal/logging"
)

// IsNativeAvailable reports whether the WebKitGTK backend is compiled in.
func IsNativeAvailable() bool { return false }

// Bridge is the headless bridge: no window, a surface that only records loads.
type Bridge struct {
	cfg     Config
	loop    *mainloop.Loop
	surface *Surface
}

// NewBridge creates a bridge. Nothing is created until OnCreate.
func NewBridge(cfg Config) *Bridge {
	return &Bridge{cfg: cfg, loop: mainloop.NewLoop()}
}

// OnCreate creates the surface.
func (b *Bridge) OnCreate(ctx context.Context, _ port.SavedState) error {
	logging.FromContext(ctx).Debug().Msg("headless bridge created")
	b.surface = &Surface{}
	return nil
}

// WebSurface returns the surface created by OnCreate.
func (b *Bridge) WebSurface() port.WebSurface {
	if b.surface == nil {
		return nil
	}
	return b.surface
}

// Surface returns the concrete headless surface.
func (b *Bridge) Surface() *Surface {
	return b.surface
}

// UIThread returns the loop the bridge dispatches to.
func (b *Bridge) UIThread() port.UIThread {
	return b.loop
}

// Run starts the UI loop, calls activate on it and blocks until ctx is done.
func (b *Bridge) Run(ctx context.Context, activate ActivateFunc) error {
	b.loop.Start(ctx)

	errCh := make(chan error, 1)
	b.loop.RunOnUIThread(func() {
		errCh <- activate(ctx, b.loop)
	})

	select {
	case err := <-errCh:
		if err != nil {
			b.loop.Quit()
			return err
		}
	case <-b.loop.Done():
		return ctx.Err()
	}

	if b.surface != nil && b.cfg.StartURL != "" {
		if err := b.surface.LoadURI(ctx, b.cfg.StartURL); err != nil {
			return err
		}
	}

	<-b.loop.Done()
	return nil
}

// Surface is a headless web surface. Page requests are injected with Emit.
type Surface struct {
	handlers handlerSlot

	mu        sync.Mutex
	uri       string
	onCapture func(active bool)
	capturing bool
}

// SetPermissionRequestHandler installs handler. Nil restores deny.
func (s *Surface) SetPermissionRequestHandler(handler port.PermissionRequestHandler) {
	s.handlers.set(handler)
}

// LoadURI records uri as the current page.
func (s *Surface) LoadURI(ctx context.Context, uri string) error {
	s.mu.Lock()
	s.uri = uri
	s.mu.Unlock()
	logging.FromContext(ctx).Debug().Str("uri", uri).Msg("headless load")
	return nil
}

// URI returns the current page.
func (s *Surface) URI() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.uri
}

// OnCaptureStateChanged registers fn for SetCaptureState.
func (s *Surface) OnCaptureStateChanged(fn func(active bool)) {
	s.mu.Lock()
	s.onCapture = fn
	s.mu.Unlock()
}

// SetCaptureState simulates the page starting or stopping capture.
func (s *Surface) SetCaptureState(active bool) {
	s.mu.Lock()
	fn := s.onCapture
	changed := s.capturing != active
	s.capturing = active
	s.mu.Unlock()

	if fn != nil && changed {
		fn(active)
	}
}

// Emit raises an in-page media request as the current page and calls allow or
// deny with the answer. Without a handler the request is denied.
func (s *Surface) Emit(ctx context.Context, resources []entity.MediaResource, allow, deny func()) {
	req := newMediaRequest(s.URI(), resources, allow, deny)
	handler := s.handlers.get()
	if handler == nil {
		req.Deny()
		return
	}
	handler(ctx, req)
}
