// Package host implements the host activity: it creates the bridge, makes sure the
// OS has granted camera and microphone, and answers in-page media requests.
package host

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/bridgehost/internal/application/port"
	"github.com/bnema/bridgehost/internal/application/usecase"
	"github.com/bnema/bridgehost/internal/domain/entity"
	"github.com/bnema/bridgehost/internal/logging"
)

// Options tunes OnCreate.
type Options struct {
	// PrecheckOSPermissions runs the OS camera/microphone check on creation.
	PrecheckOSPermissions bool
}

const inhibitReason = "Camera or microphone in use"

// DefaultOptions returns the options used when none are configured.
func DefaultOptions() Options {
	return Options{PrecheckOSPermissions: true}
}

// Activity is the single entry point of the host.
type Activity struct {
	bridge    port.Bridge
	gateway   port.OSPermissionGateway
	inhibitor port.IdleInhibitor
	opts      Options

	ensureOS *usecase.EnsureOSPermissionsUseCase
	grant    *usecase.GrantMediaRequestUseCase
	record   *usecase.RecordOSPermissionResultUseCase

	mu          sync.Mutex
	unsubscribe func()
	created     bool
	capturing   bool
}

// Deps groups the collaborators of an Activity.
type Deps struct {
	Bridge   port.Bridge
	Gateway  port.OSPermissionGateway
	Grant    *usecase.GrantMediaRequestUseCase
	Recorder *usecase.RecordOSPermissionResultUseCase
	// Inhibitor keeps the session awake while the page captures.
	Inhibitor port.IdleInhibitor
}

// New creates an Activity. Gateway, Recorder and Inhibitor may be nil.
func New(deps Deps, opts Options) (*Activity, error) {
	if deps.Bridge == nil {
		return nil, errors.New("host: bridge is required")
	}
	if deps.Grant == nil {
		return nil, errors.New("host: grant use case is required")
	}

	a := &Activity{
		bridge:    deps.Bridge,
		gateway:   deps.Gateway,
		inhibitor: deps.Inhibitor,
		opts:      opts,
		grant:     deps.Grant,
		record:    deps.Recorder,
	}
	if deps.Gateway != nil {
		a.ensureOS = usecase.NewEnsureOSPermissionsUseCase(deps.Gateway)
	}
	return a, nil
}

// OnCreate runs the bridge lifecycle, then the OS permission check, then installs
// the in-page permission handler. OS failures are logged and never abort creation.
func (a *Activity) OnCreate(ctx context.Context, state port.SavedState) error {
	log := logging.FromContext(ctx).With().Str("component", "host").Logger()
	ctx = logging.WithContext(ctx, log)

	if err := a.bridge.OnCreate(ctx, state); err != nil {
		return fmt.Errorf("bridge create: %w", err)
	}

	a.subscribeResults(ctx)

	if a.opts.PrecheckOSPermissions {
		a.ensureOSPermissions(ctx)
	}

	surface := a.bridge.WebSurface()
	if surface == nil {
		return errors.New("bridge returned no web surface")
	}
	surface.SetPermissionRequestHandler(a.grant.Handle)
	if src, ok := surface.(port.CaptureStateSource); ok && a.inhibitor != nil {
		captureCtx := context.WithoutCancel(ctx)
		src.OnCaptureStateChanged(func(active bool) {
			a.onCaptureState(captureCtx, active)
		})
	}

	a.mu.Lock()
	a.created = true
	a.mu.Unlock()

	log.Debug().Bool("precheck", a.opts.PrecheckOSPermissions).Msg("host created")
	return nil
}

func (a *Activity) ensureOSPermissions(ctx context.Context) {
	log := logging.FromContext(ctx)
	if a.ensureOS == nil {
		log.Warn().Msg("no os permission gateway; skipping camera/microphone check")
		return
	}

	out, err := a.ensureOS.Execute(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("os permission request failed")
		return
	}
	if out.Requested {
		log.Debug().Int("missing", len(out.Missing)).Msg("os permission request pending")
	}
}

// The result subscription outlives OnCreate; it is released by Close.
func (a *Activity) subscribeResults(ctx context.Context) {
	if a.gateway == nil || a.record == nil {
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.unsubscribe != nil {
		return
	}
	// Detached from ctx cancellation: results can arrive after OnCreate returns.
	resultCtx := context.WithoutCancel(ctx)
	a.unsubscribe = a.gateway.OnResult(func(result entity.OSPermissionResult) {
		a.record.Execute(resultCtx, result)
	})
}

// Only edges reach the inhibitor so its refcount stays at zero or one.
func (a *Activity) onCaptureState(ctx context.Context, active bool) {
	a.mu.Lock()
	if a.capturing == active {
		a.mu.Unlock()
		return
	}
	a.capturing = active
	a.mu.Unlock()

	log := logging.FromContext(ctx)
	if active {
		if err := a.inhibitor.Inhibit(ctx, inhibitReason); err != nil {
			log.Warn().Err(err).Msg("failed to inhibit idle during capture")
		}
		return
	}
	if err := a.inhibitor.Uninhibit(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to release idle inhibition")
	}
}

// Capturing reports whether the page is capturing camera or microphone.
func (a *Activity) Capturing() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.capturing
}

// Created reports whether OnCreate completed.
func (a *Activity) Created() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.created
}

// SetPolicy swaps the in-page grant policy.
func (a *Activity) SetPolicy(policy entity.GrantPolicy) {
	a.grant.SetPolicy(policy)
}

// Close releases the result subscription and any idle inhibition.
func (a *Activity) Close() {
	a.mu.Lock()
	unsubscribe := a.unsubscribe
	a.unsubscribe = nil
	capturing := a.capturing
	a.capturing = false
	a.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
	if capturing && a.inhibitor != nil {
		_ = a.inhibitor.Uninhibit(context.Background())
	}
}
