package port

import "context"

// DesktopIntegrationStatus represents the current state of desktop integration.
type DesktopIntegrationStatus struct {
	DesktopFileInstalled bool
	DesktopFilePath      string
	ExecutablePath       string
}

// DesktopIntegration manages the desktop entry the permission portal uses to
// identify the host. The entry file name must match the application id.
type DesktopIntegration interface {
	// GetStatus checks the current desktop integration state.
	GetStatus(ctx context.Context) (*DesktopIntegrationStatus, error)

	// InstallDesktopFile writes the desktop file to the XDG applications directory
	// and returns its path. Idempotent.
	InstallDesktopFile(ctx context.Context) (string, error)

	// RemoveDesktopFile removes the desktop file. Returns nil if it does not exist.
	RemoveDesktopFile(ctx context.Context) error
}
