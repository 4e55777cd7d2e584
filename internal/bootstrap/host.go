// Package bootstrap wires configuration, persistence, the portal gateway and the
// WebKit bridge into a running host.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/bridgehost/internal/application/port"
	"github.com/bnema/bridgehost/internal/application/usecase"
	"github.com/bnema/bridgehost/internal/domain/entity"
	"github.com/bnema/bridgehost/internal/host"
	"github.com/bnema/bridgehost/internal/infrastructure/config"
	"github.com/bnema/bridgehost/internal/infrastructure/idle"
	"github.com/bnema/bridgehost/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/bridgehost/internal/infrastructure/portal"
	"github.com/bnema/bridgehost/internal/infrastructure/webkit"
	"github.com/bnema/bridgehost/internal/logging"
)

// ConfigSource is the part of config.Manager the host needs.
type ConfigSource interface {
	Get() *config.Config
	OnConfigChange(callback func(*config.Config))
	Watch() error
}

// RunOptions configures RunHost.
type RunOptions struct {
	Config ConfigSource
	// StartURL overrides the configured start page when set.
	StartURL string
	// WatchConfig enables hot reload of the grant policy.
	WatchConfig bool
}

// RunHost opens the host window and blocks until it closes or ctx is done.
func RunHost(ctx context.Context, opts RunOptions) error {
	if opts.Config == nil {
		return errors.New("bootstrap: config source is required")
	}
	timer := NewStartupTimer()
	cfg := opts.Config.Get()

	logger, logCleanup, err := logging.NewWithFile(
		logging.Config{Level: logging.ParseLevel(cfg.Logging.Level), Format: cfg.Logging.Format, TimeFormat: time.RFC3339},
		logging.FileConfig{
			Enabled:       cfg.Logging.EnableFileLog,
			WriteToStderr: true,
			Rotator: logging.RotatorConfig{
				Dir:        cfg.Logging.LogDir,
				FileName:   "host.log",
				MaxSizeMB:  cfg.Logging.MaxSizeMB,
				MaxBackups: cfg.Logging.MaxBackups,
				MaxAgeDays: cfg.Logging.MaxAgeDays,
				Compress:   cfg.Logging.Compress,
			},
		},
	)
	defer logCleanup()
	if err != nil {
		logger.Warn().Err(err).Msg("file logging disabled")
	}
	ctx = logging.WithContext(ctx, logger)
	log := logging.FromContext(ctx)

	policy, err := cfg.GrantPolicy()
	if err != nil {
		return fmt.Errorf("grant policy: %w", err)
	}

	startURL := cfg.StartURL
	if opts.StartURL != "" {
		startURL = opts.StartURL
	}
	if !webkit.IsNativeAvailable() {
		log.Warn().Msg("built without webkit_cgo, running headless")
	}
	timer.Mark("config")

	db := sqlite.NewLazyDB(cfg.Database.Path)
	defer func() {
		if err := db.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close database")
		}
	}()

	services, err := warmUp(ctx, timer, cfg.AppID, cfg.Window.InhibitIdle, db)
	if err != nil {
		return err
	}
	defer services.close()

	repos := sqlite.NewLazyRepositories(db)
	bridge := webkit.NewBridge(webkit.Config{
		AppID:    cfg.AppID,
		Title:    cfg.Window.Title,
		Width:    cfg.Window.Width,
		Height:   cfg.Window.Height,
		StartURL: startURL,
	})

	activity, err := host.New(host.Deps{
		Bridge:    bridge,
		Gateway:   services.gateway,
		Grant:     usecase.NewGrantMediaRequestUseCase(bridge.UIThread(), repos.Grants, policy),
		Recorder:  usecase.NewRecordOSPermissionResultUseCase(repos.OSResults),
		Inhibitor: services.inhibitor(),
	}, host.Options{PrecheckOSPermissions: cfg.Permissions.PrecheckOSPermissions})
	if err != nil {
		return err
	}
	defer activity.Close()

	if opts.WatchConfig {
		opts.Config.OnConfigChange(policyReloader(ctx, activity))
		if err := opts.Config.Watch(); err != nil {
			log.Warn().Err(err).Msg("config hot reload disabled")
		}
	}

	return bridge.Run(ctx, func(ctx context.Context, _ port.UIThread) error {
		timer.Mark("toolkit")
		if err := activity.OnCreate(ctx, nil); err != nil {
			return err
		}
		timer.Mark("create")
		timer.LogDebug(ctx)
		log.Info().Str("url", startURL).Str("policy", string(policy.Mode)).Msg("host ready")
		return nil
	})
}

// portalServices are the session bus clients opened during warm up.
type portalServices struct {
	gateway *portal.Gateway
	idle    *idle.PortalInhibitor
}

// inhibitor returns nil when idle inhibition is disabled, so no typed nil
// reaches the host.
func (s *portalServices) inhibitor() port.IdleInhibitor {
	if s.idle == nil {
		return nil
	}
	return s.idle
}

func (s *portalServices) close() {
	if s.gateway != nil {
		_ = s.gateway.Close()
	}
	if s.idle != nil {
		_ = s.idle.Close()
	}
}

// warmUp connects the portals and opens the database concurrently.
// A database failure is logged: the grant log is best effort.
func warmUp(ctx context.Context, timer *StartupTimer, appID string, inhibitIdle bool, db *sqlite.LazyDB) (*portalServices, error) {
	services := &portalServices{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		start := time.Now()
		services.gateway = portal.New(gctx, appID)
		timer.MarkDuration("portal", time.Since(start))
		return gctx.Err()
	})
	if inhibitIdle {
		g.Go(func() error {
			start := time.Now()
			services.idle = idle.NewPortalInhibitor(gctx)
			timer.MarkDuration("idle", time.Since(start))
			return gctx.Err()
		})
	}
	g.Go(func() error {
		start := time.Now()
		if _, err := db.DB(gctx); err != nil {
			logging.FromContext(ctx).Warn().Err(err).Str("path", db.Path()).Msg("grant log unavailable")
		}
		timer.MarkDuration("database", time.Since(start))
		return nil
	})

	if err := g.Wait(); err != nil {
		services.close()
		return nil, fmt.Errorf("warm up: %w", err)
	}
	return services, nil
}

// PolicySetter receives a new grant policy.
type PolicySetter interface {
	SetPolicy(policy entity.GrantPolicy)
}

func policyReloader(ctx context.Context, target PolicySetter) func(*config.Config) {
	return func(c *config.Config) {
		log := logging.FromContext(ctx)
		policy, err := c.GrantPolicy()
		if err != nil {
			log.Warn().Err(err).Msg("ignoring invalid grant policy from reloaded config")
			return
		}
		target.SetPolicy(policy)
		log.Info().Str("policy", string(policy.Mode)).Int("origins", len(policy.AllowList)).Msg("grant policy reloaded")
	}
}
