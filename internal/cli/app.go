// Package cli provides CLI commands using Bubble Tea TUI.
package cli

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/bnema/bridgehost/internal/application/port"
	"github.com/bnema/bridgehost/internal/application/usecase"
	"github.com/bnema/bridgehost/internal/cli/styles"
	"github.com/bnema/bridgehost/internal/domain/repository"
	"github.com/bnema/bridgehost/internal/infrastructure/config"
	"github.com/bnema/bridgehost/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/bridgehost/internal/infrastructure/portal"
	"github.com/bnema/bridgehost/internal/logging"
)

// App holds CLI dependencies. The database and the portal connection are
// opened on first use so commands like `config path` stay cheap.
type App struct {
	Config  *config.Config
	Manager *config.Manager
	Theme   *styles.Theme

	db        *sqlite.LazyDB
	Grants    repository.GrantRepository
	OSResults repository.OSPermissionResultRepository

	// Use cases
	ListGrantsUC   *usecase.ListGrantsUseCase
	ConfigSchemaUC *usecase.GetConfigSchemaUseCase
	RecordResultUC *usecase.RecordOSPermissionResultUseCase

	gatewayOnce sync.Once
	gateway     *portal.Gateway

	ctx        context.Context
	logCleanup func()
}

// NewApp creates a new CLI application with all dependencies.
func NewApp() (*App, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, err
	}
	if err := mgr.Load(); err != nil {
		return nil, err
	}
	cfg := mgr.Get()

	// CLI output goes to stdout; logs only reach stderr at warn and above
	// unless the user asks for more.
	level := logging.ParseLevel(cfg.Logging.Level)
	if level < zerolog.WarnLevel {
		level = zerolog.WarnLevel
	}
	if envLevel := logging.LevelFromEnv(); envLevel != "" {
		level = logging.ParseLevel(envLevel)
	}
	logger, logCleanup, err := logging.NewWithFile(
		logging.Config{Level: level, Format: cfg.Logging.Format, TimeFormat: "15:04:05"},
		logging.FileConfig{
			Enabled:       cfg.Logging.EnableFileLog,
			WriteToStderr: true,
			Rotator:       rotatorConfig(cfg, "cli.log"),
		},
	)
	if err != nil {
		logger.Warn().Err(err).Msg("file logging disabled")
	}
	ctx := logging.WithContext(context.Background(), logger)

	db := sqlite.NewLazyDB(cfg.Database.Path)
	repos := sqlite.NewLazyRepositories(db)

	return &App{
		Config:         cfg,
		Manager:        mgr,
		Theme:          styles.NewTheme(),
		db:             db,
		Grants:         repos.Grants,
		OSResults:      repos.OSResults,
		ListGrantsUC:   usecase.NewListGrantsUseCase(repos.Grants),
		ConfigSchemaUC: usecase.NewGetConfigSchemaUseCase(config.NewSchemaProvider()),
		RecordResultUC: usecase.NewRecordOSPermissionResultUseCase(repos.OSResults),
		ctx:            ctx,
		logCleanup:     logCleanup,
	}, nil
}

// Gateway returns the portal gateway, connecting on first call.
func (a *App) Gateway() port.OSPermissionGateway {
	a.gatewayOnce.Do(func() {
		a.gateway = portal.New(a.ctx, a.Config.AppID)
	})
	return a.gateway
}

// PortalAvailable reports whether the permission portal is reachable.
func (a *App) PortalAvailable() bool {
	a.Gateway()
	return a.gateway.Available()
}

// RequestTimeout is the bound for blocking OS permission requests.
func (a *App) RequestTimeout() time.Duration {
	return time.Duration(a.Config.Permissions.RequestTimeoutSeconds) * time.Second
}

// Close releases all resources.
func (a *App) Close() error {
	var firstErr error
	if a.gateway != nil {
		if err := a.gateway.Close(); err != nil {
			firstErr = fmt.Errorf("close portal: %w", err)
		}
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("close database: %w", err)
		}
	}
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return firstErr
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

func rotatorConfig(cfg *config.Config, fileName string) logging.RotatorConfig {
	return logging.RotatorConfig{
		Dir:        cfg.Logging.LogDir,
		FileName:   fileName,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
		Compress:   cfg.Logging.Compress,
	}
}
