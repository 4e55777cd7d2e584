package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/bridgehost/internal/domain/build"
	"github.com/bnema/bridgehost/internal/domain/entity"
)

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"run", "permissions", "grants", "config", "setup", "doctor", "version", "gen-docs"} {
		assert.True(t, names[want], want)
	}
}

func TestVersionCmd_PrintsBuildInfo(t *testing.T) {
	SetBuildInfo(build.NewInfo("v1.2.3", "deadbee", "2026-10-01"))
	t.Cleanup(func() { SetBuildInfo(build.NewInfo("", "", "")) })

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "bridgehost v1.2.3")
	assert.Contains(t, buf.String(), "deadbee")
}

func TestRunCmd_AcceptsAtMostOneURL(t *testing.T) {
	assert.NoError(t, runCmd.Args(runCmd, []string{"https://example.com"}))
	assert.Error(t, runCmd.Args(runCmd, []string{"a", "b"}))
}

func TestGetApp_NotInitialized(t *testing.T) {
	saved := app
	app = nil
	t.Cleanup(func() { app = saved })

	_, err := GetApp()
	assert.Error(t, err)
}

func TestToGrantJSON(t *testing.T) {
	r := &entity.GrantRecord{
		ID:         7,
		Origin:     "https://meet.example.com",
		Requested:  []entity.MediaResource{entity.MediaResourceVideoCapture, entity.MediaResourceAudioCapture},
		Granted:    []entity.MediaResource{entity.MediaResourceVideoCapture},
		Decision:   entity.GrantPartial,
		PolicyMode: entity.PolicyAllowList,
	}

	got := toGrantJSON(r)
	assert.Equal(t, int64(7), got.ID)
	assert.Equal(t, []string{"video-capture", "audio-capture"}, got.Requested)
	assert.Equal(t, []string{"video-capture"}, got.Granted)
	assert.Equal(t, "partial", got.Decision)
	assert.Equal(t, "allow_list", got.PolicyMode)
}

func TestGenDocs_Markdown(t *testing.T) {
	dir := t.TempDir()
	genDocsOutputDir, genDocsFormat = dir, "markdown"
	t.Cleanup(func() { genDocsOutputDir, genDocsFormat = "", "man" })

	var buf bytes.Buffer
	genDocsCmd.SetOut(&buf)
	t.Cleanup(func() { genDocsCmd.SetOut(nil) })

	require.NoError(t, runGenDocs(genDocsCmd, nil))
	assert.FileExists(t, filepath.Join(dir, "bridgehost.md"))
	assert.FileExists(t, filepath.Join(dir, "bridgehost_permissions_request.md"))
	assert.Contains(t, buf.String(), "bridgehost_grants.md")
}

func TestGenDocs_UnknownFormat(t *testing.T) {
	genDocsOutputDir, genDocsFormat = t.TempDir(), "pdf"
	t.Cleanup(func() { genDocsOutputDir, genDocsFormat = "", "man" })

	assert.Error(t, runGenDocs(genDocsCmd, nil))
}
