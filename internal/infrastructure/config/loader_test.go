package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/bridgehost/internal/domain/entity"
)

func TestSetPermissionsDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, "grant_all", mgr.viper.GetString("permissions.policy.mode"))
	assert.True(t, mgr.viper.GetBool("permissions.precheck_os_permissions"))
	assert.Equal(t, 60, mgr.viper.GetInt("permissions.request_timeout_seconds"))
}

func TestLoad_CreatesDefaultConfigFile(t *testing.T) {
	root := isolateXDG(t)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	configFile := filepath.Join(root, "config", appName, "config.toml")
	assert.FileExists(t, configFile)
	assert.Equal(t, configFile, mgr.GetConfigFile())

	cfg := mgr.Get()
	assert.Equal(t, "about:blank", cfg.StartURL)
	assert.Equal(t, "grant_all", cfg.Permissions.Policy.Mode)
	assert.True(t, cfg.Permissions.PrecheckOSPermissions)
	assert.True(t, cfg.Window.InhibitIdle)
	assert.Equal(t, filepath.Join(root, "data", appName, databaseName), cfg.Database.Path)
	assert.Equal(t, filepath.Join(root, "state", appName, "logs"), cfg.Logging.LogDir)

	policy, err := cfg.GrantPolicy()
	require.NoError(t, err)
	assert.Equal(t, entity.PolicyGrantAll, policy.Mode)
}

func TestLoad_ReadsAllowList(t *testing.T) {
	root := isolateXDG(t)
	configDir := filepath.Join(root, "config", appName)
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(`
start_url = "https://meet.example.com/"

[permissions.policy]
mode = "Allow_List"

[[permissions.policy.allow_list]]
origin = "https://meet.example.com"
capabilities = ["camera", "microphone"]

[[permissions.policy.allow_list]]
origin = "https://scan.example.com"
capabilities = ["camera"]
`), 0o644))

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, "allow_list", cfg.Permissions.Policy.Mode)
	require.Len(t, cfg.Permissions.Policy.AllowList, 2)

	policy, err := cfg.GrantPolicy()
	require.NoError(t, err)
	assert.Equal(t, []entity.Capability{entity.CapabilityCamera}, policy.AllowList["https://scan.example.com"])
	assert.Empty(t, policy.Evaluate("https://other.example.com", []entity.MediaResource{entity.MediaResourceVideoCapture}))
}

func TestGrantPolicy_EmptyEntryListsOrigin(t *testing.T) {
	cfg := &Config{}
	cfg.Permissions.Policy.Mode = "allow_list"
	cfg.Permissions.Policy.AllowList = []AllowListEntry{
		{Origin: "https://x.example.com"},
		{Origin: "https://share.example.com", Capabilities: []string{"display"}},
	}

	policy, err := cfg.GrantPolicy()
	require.NoError(t, err)

	caps, listed := policy.AllowList["https://x.example.com"]
	assert.True(t, listed)
	assert.Empty(t, caps)
	assert.Equal(t, []entity.Capability{entity.CapabilityDisplay}, policy.AllowList["https://share.example.com"])
	assert.Empty(t, policy.Evaluate("https://x.example.com", []entity.MediaResource{entity.MediaResourceDeviceInfo}))
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolateXDG(t)
	t.Setenv("BRIDGEHOST_START_URL", "https://env.example.com")
	t.Setenv("BRIDGEHOST_LOG_LEVEL", "debug")

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, "https://env.example.com", cfg.StartURL)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_InvalidFileReportsEveryProblem(t *testing.T) {
	root := isolateXDG(t)
	configDir := filepath.Join(root, "config", appName)
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(`
[permissions.policy]
mode = "sometimes"

[window]
width = 10
`), 0o644))

	mgr, err := NewManager()
	require.NoError(t, err)
	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "permissions.policy.mode")
	assert.Contains(t, err.Error(), "window.width")
}

func TestSave_RoundTrips(t *testing.T) {
	isolateXDG(t)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.Permissions.Policy.Mode = "allow_list"
	cfg.Permissions.Policy.AllowList = []AllowListEntry{
		{Origin: "https://meet.example.com", Capabilities: []string{"Camera"}},
	}
	require.NoError(t, mgr.Save(cfg))

	reloaded, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, reloaded.Load())

	got := reloaded.Get()
	assert.Equal(t, "allow_list", got.Permissions.Policy.Mode)
	require.Len(t, got.Permissions.Policy.AllowList, 1)
	assert.Equal(t, []string{"camera"}, got.Permissions.Policy.AllowList[0].Capabilities)
}

func TestSave_RejectsInvalid(t *testing.T) {
	isolateXDG(t)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.Permissions.Policy.AllowList = []AllowListEntry{{Origin: "example.com", Capabilities: []string{"camera"}}}
	err = mgr.Save(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "allow_list[0].origin")

	assert.Empty(t, mgr.Get().Permissions.Policy.AllowList)
}

func TestGet_ReturnsCopy(t *testing.T) {
	isolateXDG(t)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.StartURL = "https://changed.example.com"
	assert.Equal(t, "about:blank", mgr.Get().StartURL)
}
