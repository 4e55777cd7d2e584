//go:build webkit_cgo

package webkit

import (
	"context"
	"errors"
	"os"

	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/bridgehost/internal/application/port"
	"github.com/bnema/bridgehost/internal/infrastructure/mainloop"
	"github.com/bnema/bridgehost/internal/logging"
)

// IsNativeAvailable reports whether the WebKitGTK backend is compiled in.
func IsNativeAvailable() bool { return true }

// Bridge owns the GTK application, its window and the WebKit view.
type Bridge struct {
	cfg     Config
	app     *gtk.Application
	window  *gtk.ApplicationWindow
	ui      *mainloop.GLibThread
	surface *Surface
}

// NewBridge creates a bridge. Must be called from the main goroutine.
func NewBridge(cfg Config) *Bridge {
	return &Bridge{
		cfg: cfg,
		app: gtk.NewApplication(cfg.AppID, gio.ApplicationFlagsNone),
		ui:  mainloop.NewGLibThread(),
	}
}

// OnCreate builds the window and the web view. Must run on the GTK thread.
func (b *Bridge) OnCreate(ctx context.Context, _ port.SavedState) error {
	if !b.ui.IsUIThread() {
		return errors.New("webkit: OnCreate called off the GTK thread")
	}

	view := webkit.NewWebView()
	if view == nil {
		return errors.New("webkit: failed to create web view")
	}

	b.window = gtk.NewApplicationWindow(b.app)
	b.window.SetTitle(b.cfg.Title)
	b.window.SetDefaultSize(b.cfg.Width, b.cfg.Height)
	b.window.SetChild(view)

	b.surface = newSurface(ctx, view)
	b.window.Present()

	logging.FromContext(ctx).Debug().
		Int("width", b.cfg.Width).
		Int("height", b.cfg.Height).
		Msg("webkit bridge created")
	return nil
}

// WebSurface returns the surface created by OnCreate.
func (b *Bridge) WebSurface() port.WebSurface {
	if b.surface == nil {
		return nil
	}
	return b.surface
}

// UIThread returns the GLib main thread dispatcher.
func (b *Bridge) UIThread() port.UIThread {
	return b.ui
}

// Run starts GTK, calls activate on activation and blocks until the last window closes
// or ctx is done.
func (b *Bridge) Run(ctx context.Context, activate ActivateFunc) error {
	log := logging.FromContext(ctx)
	var activateErr error

	b.app.ConnectActivate(func() {
		if err := activate(ctx, b.ui); err != nil {
			activateErr = err
			b.app.Quit()
			return
		}
		if b.surface != nil && b.cfg.StartURL != "" {
			_ = b.surface.LoadURI(ctx, b.cfg.StartURL)
		}
	})

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			glib.IdleAdd(func() bool {
				b.app.Quit()
				return false
			})
		case <-stop:
		}
	}()

	status := b.app.Run(os.Args[:1])
	log.Debug().Int("status", status).Msg("gtk application exited")

	if activateErr != nil {
		return activateErr
	}
	if status != 0 {
		return errors.New("webkit: gtk application exited with non-zero status")
	}
	return nil
}

// Surface wraps the WebKit view.
type Surface struct {
	view     *webkit.WebView
	handlers handlerSlot

	// GTK thread only.
	onCapture func(active bool)
	capturing bool
}

func newSurface(ctx context.Context, view *webkit.WebView) *Surface {
	s := &Surface{view: view}
	view.ConnectPermissionRequest(func(request webkit.PermissionRequester) bool {
		return s.onPermissionRequest(ctx, request)
	})
	view.NotifyProperty("camera-capture-state", s.captureStateChanged)
	view.NotifyProperty("microphone-capture-state", s.captureStateChanged)
	return s
}

// OnCaptureStateChanged registers fn. Must run on the GTK thread.
func (s *Surface) OnCaptureStateChanged(fn func(active bool)) {
	s.onCapture = fn
}

// Muted counts as capturing: the device stays open.
func (s *Surface) captureStateChanged() {
	active := s.view.CameraCaptureState() != webkit.MediaCaptureStateNone ||
		s.view.MicrophoneCaptureState() != webkit.MediaCaptureStateNone
	if active == s.capturing {
		return
	}
	s.capturing = active
	if s.onCapture != nil {
		s.onCapture(active)
	}
}

// SetPermissionRequestHandler installs handler. Nil restores the engine default.
func (s *Surface) SetPermissionRequestHandler(handler port.PermissionRequestHandler) {
	s.handlers.set(handler)
}

// LoadURI navigates the view. Must run on the GTK thread.
func (s *Surface) LoadURI(ctx context.Context, uri string) error {
	if uri == "" {
		return errors.New("webkit: empty uri")
	}
	logging.FromContext(ctx).Debug().Str("uri", uri).Msg("loading uri")
	s.view.LoadURI(uri)
	return nil
}

// Returning true claims the request; WebKit then waits for Allow or Deny.
func (s *Surface) onPermissionRequest(ctx context.Context, request webkit.PermissionRequester) bool {
	handler := s.handlers.get()
	if handler == nil {
		return false
	}

	kind := permissionRequestKindUnknown
	var isAudio, isVideo, isDisplay bool
	switch r := request.(type) {
	case *webkit.UserMediaPermissionRequest:
		kind = permissionRequestKindUserMedia
		isAudio = webkit.UserMediaPermissionIsForAudioDevice(r)
		isVideo = webkit.UserMediaPermissionIsForVideoDevice(r)
		isDisplay = webkit.UserMediaPermissionIsForDisplayDevice(r)
	case *webkit.DeviceInfoPermissionRequest:
		kind = permissionRequestKindDeviceInfo
	}

	resources := classifyPermissionRequestTypes(kind, isAudio, isVideo, isDisplay)
	if resources == nil {
		// Geolocation, notifications and the rest keep the engine default.
		return false
	}

	handler(ctx, newMediaRequest(s.view.URI(), resources, request.Allow, request.Deny))
	return true
}
