// Package bootstrap wires configuration, storage, metrics, the Recurly
// client and the webhook receiver into a runnable application.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/alvinosh/nestjs-recurly-sub000/adapters/clock"
	apihttp "github.com/alvinosh/nestjs-recurly-sub000/adapters/http"
	"github.com/alvinosh/nestjs-recurly-sub000/adapters/idgen"
	"github.com/alvinosh/nestjs-recurly-sub000/adapters/memory"
	"github.com/alvinosh/nestjs-recurly-sub000/adapters/metrics"
	"github.com/alvinosh/nestjs-recurly-sub000/adapters/sqlite"
	"github.com/alvinosh/nestjs-recurly-sub000/config"
	"github.com/alvinosh/nestjs-recurly-sub000/ports"
	"github.com/alvinosh/nestjs-recurly-sub000/recurly"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// MemoryDSN selects the in-memory notification store instead of SQLite.
const MemoryDSN = "memory"

// App represents the running application.
type App struct {
	Logger     zerolog.Logger
	Config     *config.Holder
	DB         *sqlite.DB // nil with MemoryDSN
	Store      ports.NotificationStore
	Metrics    *metrics.Collector // nil when metrics are disabled
	Registry   *prometheus.Registry
	HTTPServer *http.Server

	webhooks *apihttp.WebhookHandler

	mu     sync.RWMutex
	client *recurly.Client
}

// Options adjust New for tests and embedding.
type Options struct {
	// LogOutput defaults to os.Stdout.
	LogOutput io.Writer
	// Clock defaults to the wall clock.
	Clock ports.Clock
}

// New creates and initializes the application from the holder's config.
func New(holder *config.Holder, opts Options) (*App, error) {
	cfg := holder.Get()
	if opts.LogOutput == nil {
		opts.LogOutput = os.Stdout
	}
	if opts.Clock == nil {
		opts.Clock = clock.Real{}
	}

	logger := NewLogger(cfg.Logging, opts.LogOutput)
	logger.Info().Str("region", cfg.Recurly.Region).Msg("initializing recurly receiver")

	a := &App{
		Logger: logger,
		Config: holder,
	}

	if err := a.initStore(cfg.Database); err != nil {
		return nil, fmt.Errorf("init store: %w", err)
	}

	if cfg.Metrics.Enabled {
		a.Registry = prometheus.NewRegistry()
		a.Registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		a.Metrics = metrics.NewWithRegistry(a.Registry)
		holder.OnReload(a.Metrics.ObserveReload)
		logger.Info().Str("path", cfg.Metrics.Path).Msg("prometheus metrics enabled")
	}

	client, err := a.newClient(cfg)
	if err != nil {
		a.closeStore()
		return nil, err
	}
	a.client = client

	a.webhooks = apihttp.NewWebhookHandler(apihttp.WebhookConfig{
		Store:     a.Store,
		Observer:  a.notificationObserver(),
		Clock:     opts.Clock,
		Logger:    logger,
		Secret:    cfg.Webhooks.Secret,
		Tolerance: cfg.Webhooks.Tolerance,
	})
	if cfg.Webhooks.Secret == "" {
		logger.Warn().Msg("webhooks.secret is empty, deliveries will be rejected")
	}

	a.initHTTPServer(cfg)
	holder.OnChange(a.apply)

	return a, nil
}

func (a *App) initStore(cfg config.DatabaseConfig) error {
	if cfg.DSN == MemoryDSN {
		a.Store = memory.NewNotificationStore()
		a.Logger.Info().Msg("using in-memory notification store")
		return nil
	}

	db, err := sqlite.Open(cfg.DSN)
	if err != nil {
		return err
	}
	if err := db.Migrate(); err != nil {
		db.Close()
		return fmt.Errorf("migrate: %w", err)
	}
	a.DB = db
	a.Store = sqlite.NewNotificationStore(db)
	a.Logger.Info().Str("dsn", cfg.DSN).Msg("database ready")
	return nil
}

func (a *App) closeStore() {
	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			a.Logger.Error().Err(err).Msg("database close error")
		}
	}
}

func (a *App) newClient(cfg *config.Config) (*recurly.Client, error) {
	opts := []recurly.Option{
		recurly.WithLogger(a.Logger),
		recurly.WithIdempotencyKeys(idgen.UUID{}),
	}
	if a.Metrics != nil {
		opts = append(opts, recurly.WithObserver(a.Metrics))
	}
	client, err := recurly.New(cfg.ClientConfig(), opts...)
	if err != nil {
		return nil, fmt.Errorf("create recurly client: %w", err)
	}
	return client, nil
}

func (a *App) notificationObserver() ports.NotificationObserver {
	if a.Metrics == nil {
		return nil
	}
	return a.Metrics
}

func (a *App) initHTTPServer(cfg *config.Config) {
	var health apihttp.HealthChecker
	if a.DB != nil {
		health = a.DB
	}

	rc := apihttp.RouterConfig{
		Webhooks:      a.webhooks,
		WebhookPath:   cfg.Webhooks.Path,
		Notifications: apihttp.NewNotificationsHandler(a.Store),
		Health:        apihttp.NewHealthHandler(health, apihttp.ReadinessCheck{Name: "recurly", Check: a.checkAPI}),
		MetricsPath:   cfg.Metrics.Path,
	}
	if a.Registry != nil {
		rc.MetricsHandler = promhttp.HandlerFor(a.Registry, promhttp.HandlerOpts{})
	}

	a.HTTPServer = &http.Server{
		Addr:         cfg.Addr(),
		Handler:      apihttp.NewRouter(rc, a.Logger),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
}

// Client returns the current Recurly client. Config reloads may replace it.
func (a *App) Client() *recurly.Client {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.client
}

// checkAPI lists one site with the current client when
// recurly.check_readiness is set. The flag is read per call so a reload
// can turn it on or off.
func (a *App) checkAPI(ctx context.Context) error {
	if !a.Config.Get().Recurly.CheckReadiness {
		return nil
	}
	_, err := a.Client().Sites.List(ctx, &recurly.SiteListParams{ListParams: recurly.ListParams{Limit: 1}})
	return err
}

// apply pushes a reloaded config into the running components.
func (a *App) apply(cfg *config.Config) {
	if level, err := zerolog.ParseLevel(cfg.Logging.Level); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	a.webhooks.SetSecret(cfg.Webhooks.Secret, cfg.Webhooks.Tolerance)

	client, err := a.newClient(cfg)
	if err != nil {
		a.Logger.Error().Err(err).Msg("keeping previous recurly client")
		return
	}
	a.mu.Lock()
	a.client = client
	a.mu.Unlock()
	a.Logger.Info().Str("region", cfg.Recurly.Region).Msg("recurly client replaced")
}

// Run starts the HTTP server and blocks until SIGINT or SIGTERM.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return a.RunContext(ctx)
}

// RunContext starts the HTTP server and blocks until ctx is done.
func (a *App) RunContext(ctx context.Context) error {
	if a.Config.Path() != "" {
		if err := a.Config.WatchFile(); err != nil {
			a.Logger.Warn().Err(err).Msg("config file watch disabled")
		}
		a.Config.WatchSignals()
	}

	errCh := make(chan error, 1)
	go func() {
		a.Logger.Info().
			Str("addr", a.HTTPServer.Addr).
			Msg("starting http server")
		if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		a.Shutdown()
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		a.Logger.Info().Msg("shutting down")
	}

	return a.Shutdown()
}

// Shutdown gracefully stops the application.
func (a *App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if a.HTTPServer != nil {
		if err := a.HTTPServer.Shutdown(ctx); err != nil {
			a.Logger.Error().Err(err).Msg("http server shutdown error")
		}
	}

	a.Config.Stop()
	a.closeStore()

	a.Logger.Info().Msg("shutdown complete")
	return nil
}

// NewLogger builds the process logger from the logging section.
func NewLogger(cfg config.LoggingConfig, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Format == "console" {
		output := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
		return zerolog.New(output).With().Timestamp().Logger()
	}

	return zerolog.New(w).With().Timestamp().Logger()
}
