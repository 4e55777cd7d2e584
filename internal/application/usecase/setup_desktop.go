package usecase

import (
	"context"

	"github.com/bnema/bridgehost/internal/application/port"
	"github.com/bnema/bridgehost/internal/logging"
)

// InstallDesktopUseCase installs the desktop entry the permission portal
// resolves the application id against.
type InstallDesktopUseCase struct {
	desktop port.DesktopIntegration
}

// NewInstallDesktopUseCase creates a new InstallDesktopUseCase.
func NewInstallDesktopUseCase(desktop port.DesktopIntegration) *InstallDesktopUseCase {
	return &InstallDesktopUseCase{desktop: desktop}
}

// InstallDesktopOutput contains the result of the install operation.
type InstallDesktopOutput struct {
	DesktopPath        string
	WasDesktopExisting bool
}

// Execute installs the desktop file.
func (uc *InstallDesktopUseCase) Execute(ctx context.Context) (*InstallDesktopOutput, error) {
	status, err := uc.desktop.GetStatus(ctx)
	if err != nil {
		return nil, err
	}

	desktopPath, err := uc.desktop.InstallDesktopFile(ctx)
	if err != nil {
		return nil, err
	}

	logging.FromContext(ctx).Info().
		Str("desktop_path", desktopPath).
		Bool("was_desktop_existing", status.DesktopFileInstalled).
		Msg("desktop install complete")

	return &InstallDesktopOutput{
		DesktopPath:        desktopPath,
		WasDesktopExisting: status.DesktopFileInstalled,
	}, nil
}

// RemoveDesktopUseCase removes the desktop entry.
type RemoveDesktopUseCase struct {
	desktop port.DesktopIntegration
}

// NewRemoveDesktopUseCase creates a new RemoveDesktopUseCase.
func NewRemoveDesktopUseCase(desktop port.DesktopIntegration) *RemoveDesktopUseCase {
	return &RemoveDesktopUseCase{desktop: desktop}
}

// RemoveDesktopOutput contains the result of the remove operation.
type RemoveDesktopOutput struct {
	WasDesktopInstalled bool
	RemovedDesktopPath  string
}

// Execute removes the desktop file.
func (uc *RemoveDesktopUseCase) Execute(ctx context.Context) (*RemoveDesktopOutput, error) {
	status, err := uc.desktop.GetStatus(ctx)
	if err != nil {
		return nil, err
	}

	if err := uc.desktop.RemoveDesktopFile(ctx); err != nil {
		return nil, err
	}

	logging.FromContext(ctx).Info().
		Bool("was_desktop_installed", status.DesktopFileInstalled).
		Msg("desktop integration removed")

	return &RemoveDesktopOutput{
		WasDesktopInstalled: status.DesktopFileInstalled,
		RemovedDesktopPath:  status.DesktopFilePath,
	}, nil
}
