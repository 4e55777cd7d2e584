package config

import (
	"os"
	"path/filepath"
)

const (
	appName      = "bridgehost"
	databaseName = "bridgehost.sqlite"

	dirPerm  = 0o755
	filePerm = 0o644
)

// appDirs are the per-app config, data and state directories.
// With ENV=dev all three collapse into ./.dev/bridgehost.
type appDirs struct {
	config string
	data   string
	state  string
}

func resolveAppDirs() (appDirs, error) {
	if os.Getenv("ENV") == "dev" {
		cwd, err := os.Getwd()
		if err != nil {
			return appDirs{}, err
		}
		dev := filepath.Join(cwd, ".dev", appName)
		return appDirs{config: dev, data: dev, state: dev}, nil
	}

	var dirs appDirs
	for _, d := range []struct {
		dst      *string
		env      string
		fallback []string
	}{
		{&dirs.config, "XDG_CONFIG_HOME", []string{".config"}},
		{&dirs.data, "XDG_DATA_HOME", []string{".local", "share"}},
		{&dirs.state, "XDG_STATE_HOME", []string{".local", "state"}},
	} {
		home, err := xdgHome(d.env, d.fallback...)
		if err != nil {
			return appDirs{}, err
		}
		*d.dst = filepath.Join(home, appName)
	}
	return dirs, nil
}

// xdgHome returns $env, or ~/<fallback...> when it is unset.
func xdgHome(env string, fallback ...string) (string, error) {
	if v := os.Getenv(env); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(append([]string{home}, fallback...)...), nil
}

// GetConfigDir returns the directory holding config.toml and the JSON schema.
func GetConfigDir() (string, error) {
	dirs, err := resolveAppDirs()
	return dirs.config, err
}

// GetLogDir returns the log directory under the XDG state home.
func GetLogDir() (string, error) {
	dirs, err := resolveAppDirs()
	if err != nil {
		return "", err
	}
	return filepath.Join(dirs.state, "logs"), nil
}

// GetConfigFile returns the default config file path.
func GetConfigFile() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// GetDatabaseFile returns the default grant log path.
func GetDatabaseFile() (string, error) {
	dirs, err := resolveAppDirs()
	if err != nil {
		return "", err
	}
	return filepath.Join(dirs.data, databaseName), nil
}

// EnsureDirectories creates the app directories.
func EnsureDirectories() error {
	dirs, err := resolveAppDirs()
	if err != nil {
		return err
	}
	for _, dir := range []string{dirs.config, dirs.data, dirs.state} {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return err
		}
	}
	return nil
}

// GetManDir returns $XDG_DATA_HOME/man/man1, which man(1) searches without extra setup.
func GetManDir() (string, error) {
	data, err := xdgHome("XDG_DATA_HOME", ".local", "share")
	if err != nil {
		return "", err
	}
	return filepath.Join(data, "man", "man1"), nil
}
