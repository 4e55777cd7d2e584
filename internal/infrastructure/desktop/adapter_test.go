package desktop

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T) (*Adapter, string) {
	t.Helper()
	dataHome := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataHome)

	a := New("io.example.Host")
	a.updateDesktopDB = ""
	a.executable = func() (string, error) { return "/usr/bin/bridgehost", nil }
	return a, filepath.Join(dataHome, "applications", "io.example.Host.desktop")
}

func TestInstallDesktopFile_UsesAppID(t *testing.T) {
	a, want := newTestAdapter(t)
	ctx := context.Background()

	path, err := a.InstallDesktopFile(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Exec=/usr/bin/bridgehost run %u\n")
	assert.Contains(t, string(content), "StartupWMClass=io.example.Host\n")

	status, err := a.GetStatus(ctx)
	require.NoError(t, err)
	assert.True(t, status.DesktopFileInstalled)
	assert.Equal(t, "/usr/bin/bridgehost", status.ExecutablePath)
}

func TestInstallDesktopFile_Idempotent(t *testing.T) {
	a, _ := newTestAdapter(t)
	ctx := context.Background()

	first, err := a.InstallDesktopFile(ctx)
	require.NoError(t, err)
	second, err := a.InstallDesktopFile(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRemoveDesktopFile(t *testing.T) {
	a, path := newTestAdapter(t)
	ctx := context.Background()

	// Missing file is not an error.
	require.NoError(t, a.RemoveDesktopFile(ctx))

	_, err := a.InstallDesktopFile(ctx)
	require.NoError(t, err)
	require.NoError(t, a.RemoveDesktopFile(ctx))
	assert.NoFileExists(t, path)

	status, err := a.GetStatus(ctx)
	require.NoError(t, err)
	assert.False(t, status.DesktopFileInstalled)
}

func TestDesktopFilePath_EmptyAppID(t *testing.T) {
	a, _ := newTestAdapter(t)
	a.appID = ""

	_, err := a.GetStatus(context.Background())
	assert.Error(t, err)
}
