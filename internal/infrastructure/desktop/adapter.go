// Package desktop provides desktop environment integration for Linux (XDG).
package desktop

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/bnema/bridgehost/internal/application/port"
	"github.com/bnema/bridgehost/internal/logging"
)

const (
	appName  = "bridgehost"
	filePerm = 0o644
	dirPerm  = 0o755
)

// desktopFileTemplate is the freedesktop.org desktop entry format.
// Placeholders: executable path, application id.
const desktopFileTemplate = `[Desktop Entry]
Version=1.1
Type=Application
Name=Bridgehost
Comment=Web page host with camera and microphone access
Exec=%s run %%u
Terminal=false
Categories=Network;AudioVideo;
StartupNotify=true
StartupWMClass=%s
X-GNOME-UsesNotifications=false
`

// Adapter implements port.DesktopIntegration by writing
// $XDG_DATA_HOME/applications/<app id>.desktop.
type Adapter struct {
	appID           string
	updateDesktopDB string
	executable      func() (string, error)
}

var _ port.DesktopIntegration = (*Adapter)(nil)

// New creates a desktop integration adapter for the given application id.
func New(appID string) *Adapter {
	a := &Adapter{appID: appID, executable: executablePath}

	// Optional, helps some desktops pick up the entry.
	if path, err := exec.LookPath("update-desktop-database"); err == nil {
		a.updateDesktopDB = path
	}
	return a
}

func applicationsDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("get home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "applications"), nil
}

func (a *Adapter) desktopFilePath() (string, error) {
	if a.appID == "" {
		return "", errors.New("application id is empty")
	}
	dir, err := applicationsDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, a.appID+".desktop"), nil
}

func executablePath() (string, error) {
	execPath, err := os.Executable()
	if err == nil {
		if resolved, symlinkErr := filepath.EvalSymlinks(execPath); symlinkErr == nil {
			execPath = resolved
		}
		return execPath, nil
	}

	path, err := exec.LookPath(appName)
	if err != nil {
		return "", fmt.Errorf("cannot find %s executable: %w", appName, err)
	}
	return path, nil
}

// GetStatus checks the current desktop integration state.
func (a *Adapter) GetStatus(ctx context.Context) (*port.DesktopIntegrationStatus, error) {
	desktopPath, err := a.desktopFilePath()
	if err != nil {
		return nil, err
	}
	status := &port.DesktopIntegrationStatus{DesktopFilePath: desktopPath}

	if _, statErr := os.Stat(desktopPath); statErr == nil {
		status.DesktopFileInstalled = true
	}
	if execPath, err := a.executable(); err == nil {
		status.ExecutablePath = execPath
	}

	logging.FromContext(ctx).Debug().
		Bool("desktop_installed", status.DesktopFileInstalled).
		Str("desktop_path", status.DesktopFilePath).
		Str("exec_path", status.ExecutablePath).
		Msg("desktop integration status")

	return status, nil
}

// InstallDesktopFile writes the desktop file.
func (a *Adapter) InstallDesktopFile(ctx context.Context) (string, error) {
	log := logging.FromContext(ctx)

	execPath, err := a.executable()
	if err != nil {
		return "", err
	}
	desktopPath, err := a.desktopFilePath()
	if err != nil {
		return "", err
	}

	appDir := filepath.Dir(desktopPath)
	if err := os.MkdirAll(appDir, dirPerm); err != nil {
		return "", fmt.Errorf("create applications dir: %w", err)
	}

	content := fmt.Sprintf(desktopFileTemplate, execPath, a.appID)
	if err := os.WriteFile(desktopPath, []byte(content), filePerm); err != nil {
		return "", fmt.Errorf("write desktop file: %w", err)
	}
	log.Info().Str("path", desktopPath).Msg("desktop file installed")

	a.refreshDatabase(ctx, appDir)
	return desktopPath, nil
}

// RemoveDesktopFile removes the desktop file.
func (a *Adapter) RemoveDesktopFile(ctx context.Context) error {
	log := logging.FromContext(ctx)

	desktopPath, err := a.desktopFilePath()
	if err != nil {
		return err
	}

	if err := os.Remove(desktopPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug().Str("path", desktopPath).Msg("desktop file not found (already removed)")
			return nil
		}
		return fmt.Errorf("remove desktop file: %w", err)
	}
	log.Info().Str("path", desktopPath).Msg("desktop file removed")

	a.refreshDatabase(ctx, filepath.Dir(desktopPath))
	return nil
}

func (a *Adapter) refreshDatabase(ctx context.Context, appDir string) {
	if a.updateDesktopDB == "" {
		return
	}
	if err := exec.CommandContext(ctx, a.updateDesktopDB, appDir).Run(); err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("update-desktop-database failed (non-fatal)")
	}
}
