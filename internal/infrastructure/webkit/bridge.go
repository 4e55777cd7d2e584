// Package webkit implements the bridge container over WebKitGTK.
// Builds without the webkit_cgo tag get a headless bridge with the same API.
package webkit

import (
	"context"

	"github.com/bnema/bridgehost/internal/application/port"
)

// Config sizes and names the host window.
type Config struct {
	AppID    string
	Title    string
	Width    int
	Height   int
	StartURL string
}

// ActivateFunc is called on the UI thread once the toolkit is ready.
// The host runs its OnCreate from here.
type ActivateFunc func(ctx context.Context, ui port.UIThread) error

var (
	_ port.Bridge             = (*Bridge)(nil)
	_ port.WebSurface         = (*Surface)(nil)
	_ port.CaptureStateSource = (*Surface)(nil)
)
