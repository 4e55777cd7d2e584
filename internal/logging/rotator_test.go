package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogRotator_RotatesWhenFull(t *testing.T) {
	dir := t.TempDir()
	r, err := NewLogRotator(RotatorConfig{Dir: dir, FileName: "test.log", MaxSizeMB: 1, MaxBackups: 5})
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })

	tick := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	r.now = func() time.Time {
		tick = tick.Add(time.Second)
		return tick
	}

	chunk := []byte(strings.Repeat("x", 600*1024))
	_, err = r.Write(chunk)
	require.NoError(t, err)
	_, err = r.Write(chunk)
	require.NoError(t, err)

	backups := listBackups(t, dir, "test.log.")
	assert.Len(t, backups, 1)

	info, err := os.Stat(filepath.Join(dir, "test.log"))
	require.NoError(t, err)
	assert.Equal(t, int64(len(chunk)), info.Size())
}

func TestLogRotator_KeepsMaxBackups(t *testing.T) {
	dir := t.TempDir()
	r, err := NewLogRotator(RotatorConfig{Dir: dir, FileName: "test.log", MaxSizeMB: 1, MaxBackups: 2, Compress: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })

	tick := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	r.now = func() time.Time {
		tick = tick.Add(time.Second)
		return tick
	}

	chunk := []byte(strings.Repeat("y", 700*1024))
	for range 5 {
		_, err = r.Write(chunk)
		require.NoError(t, err)
	}

	backups := listBackups(t, dir, "test.log.")
	require.Len(t, backups, 2)
	for _, name := range backups {
		assert.True(t, strings.HasSuffix(name, ".gz"), name)
	}
}

func TestNewLogRotator_RequiresDir(t *testing.T) {
	_, err := NewLogRotator(RotatorConfig{})
	assert.Error(t, err)
}

func listBackups(t *testing.T, dir, prefix string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), prefix) {
			names = append(names, e.Name())
		}
	}
	return names
}
