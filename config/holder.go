// Package config provides configuration loading and hot reload.
package config

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

var errStatic = errors.New("config was not loaded from a file")

// Holder owns the live configuration. Reloads swap the whole *Config and
// then notify OnChange listeners, so readers never see a partial update.
type Holder struct {
	mu       sync.RWMutex
	config   *Config
	path     string
	logger   zerolog.Logger
	watcher  *fsnotify.Watcher
	onChange []func(*Config)
	onReload []func(error)
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewHolder creates a new config holder and loads the initial configuration.
func NewHolder(path string, logger zerolog.Logger) (*Holder, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("absolute path: %w", err)
	}

	h := &Holder{
		config: cfg,
		path:   absPath,
		logger: logger,
		stopCh: make(chan struct{}),
	}

	return h, nil
}

// NewStaticHolder wraps configuration that did not come from a file, such
// as LoadFromEnv output. Reload and WatchFile return an error.
func NewStaticHolder(cfg *Config, logger zerolog.Logger) *Holder {
	return &Holder{
		config: cfg,
		logger: logger,
		stopCh: make(chan struct{}),
	}
}

// Path returns the watched file, or "" for a static holder.
func (h *Holder) Path() string {
	return h.path
}

// Get returns the current configuration (thread-safe).
func (h *Holder) Get() *Config {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.config
}

// Reload re-reads the file. An invalid file leaves the current
// configuration in place and is reported to OnReload listeners.
func (h *Holder) Reload() error {
	if h.path == "" {
		return errStatic
	}
	h.logger.Info().Str("path", h.path).Msg("reloading configuration")

	newCfg, err := Load(h.path)
	if err != nil {
		h.logger.Error().Err(err).Msg("config reload failed, keeping old config")
		h.reported(err)
		return fmt.Errorf("reload config: %w", err)
	}

	h.mu.Lock()
	oldCfg := h.config
	h.config = newCfg
	h.mu.Unlock()

	h.logChanges(oldCfg, newCfg)

	h.mu.RLock()
	listeners := append([]func(*Config){}, h.onChange...)
	h.mu.RUnlock()
	for _, fn := range listeners {
		fn(newCfg)
	}
	h.reported(nil)

	h.logger.Info().Msg("configuration reloaded successfully")
	return nil
}

// OnReload registers a callback that receives the outcome of every reload
// attempt; err is nil on success.
func (h *Holder) OnReload(fn func(error)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onReload = append(h.onReload, fn)
}

func (h *Holder) reported(err error) {
	h.mu.RLock()
	fns := append([]func(error){}, h.onReload...)
	h.mu.RUnlock()
	for _, fn := range fns {
		fn(err)
	}
}

// OnChange registers a callback to be called when config changes.
func (h *Holder) OnChange(fn func(*Config)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onChange = append(h.onChange, fn)
}

// WatchFile starts watching the config file for changes.
// Changes trigger automatic reload.
func (h *Holder) WatchFile() error {
	if h.path == "" {
		return errStatic
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	h.watcher = watcher

	// Watch the directory (more reliable for editors that do atomic saves)
	dir := filepath.Dir(h.path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return fmt.Errorf("watch directory: %w", err)
	}

	go h.watchLoop()

	h.logger.Info().Str("path", h.path).Msg("watching config file for changes")
	return nil
}

// WatchSignals starts listening for SIGHUP to trigger reload.
func (h *Holder) WatchSignals() {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGHUP)

	go func() {
		for {
			select {
			case <-sigCh:
				h.logger.Info().Msg("received SIGHUP, reloading config")
				if err := h.Reload(); err != nil {
					h.logger.Error().Err(err).Msg("SIGHUP reload failed")
				}
			case <-h.stopCh:
				signal.Stop(sigCh)
				return
			}
		}
	}()

	h.logger.Info().Msg("listening for SIGHUP to reload config")
}

// Stop stops watching for file changes and signals.
// Safe to call more than once.
func (h *Holder) Stop() {
	h.stopOnce.Do(func() {
		close(h.stopCh)
		if h.watcher != nil {
			h.watcher.Close()
		}
	})
}

func (h *Holder) watchLoop() {
	filename := filepath.Base(h.path)

	for {
		select {
		case event, ok := <-h.watcher.Events:
			if !ok {
				return
			}

			// Only react to our config file
			if filepath.Base(event.Name) != filename {
				continue
			}

			// React to write or create (atomic save = create)
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				h.logger.Debug().
					Str("event", event.Op.String()).
					Str("file", event.Name).
					Msg("config file changed")

				if err := h.Reload(); err != nil {
					h.logger.Error().Err(err).Msg("file watch reload failed")
				}
			}

		case err, ok := <-h.watcher.Errors:
			if !ok {
				return
			}
			h.logger.Error().Err(err).Msg("file watcher error")

		case <-h.stopCh:
			return
		}
	}
}

func (h *Holder) logChanges(old, new *Config) {
	if old.Logging.Level != new.Logging.Level {
		h.logger.Info().
			Str("old", old.Logging.Level).
			Str("new", new.Logging.Level).
			Msg("log level changed")
	}

	if old.Recurly.Region != new.Recurly.Region || old.Recurly.BaseURL != new.Recurly.BaseURL {
		h.logger.Info().
			Str("old_region", old.Recurly.Region).
			Str("new_region", new.Recurly.Region).
			Str("base_url", new.Recurly.BaseURL).
			Msg("recurly endpoint changed")
	}

	if old.Recurly.APIKey != new.Recurly.APIKey {
		h.logger.Info().Msg("recurly api key rotated")
	}

	if old.Webhooks.Secret != new.Webhooks.Secret {
		h.logger.Info().Msg("webhook secret rotated")
	}

	if fields := RestartRequired(old, new); len(fields) > 0 {
		h.logger.Warn().
			Strs("fields", fields).
			Msg("changed settings take effect after restart")
	}
}

// RestartRequired lists the non-reloadable fields that differ between
// old and new, in NonReloadableFields order.
func RestartRequired(old, new *Config) []string {
	changed := map[string]bool{
		"server.host":     old.Server.Host != new.Server.Host,
		"server.port":     old.Server.Port != new.Server.Port,
		"webhooks.path":   old.Webhooks.Path != new.Webhooks.Path,
		"database.dsn":    old.Database.DSN != new.Database.DSN,
		"metrics.enabled": old.Metrics.Enabled != new.Metrics.Enabled,
		"metrics.path":    old.Metrics.Path != new.Metrics.Path,
		"logging.format":  old.Logging.Format != new.Logging.Format,
	}
	var out []string
	for _, f := range NonReloadableFields() {
		if changed[f] {
			out = append(out, f)
		}
	}
	return out
}

// ReloadableFields returns which fields can be changed without restart.
func ReloadableFields() []string {
	return []string{
		"recurly.api_key",
		"recurly.accept_language",
		"recurly.region",
		"recurly.base_url",
		"recurly.timeout",
		"recurly.check_readiness",
		"webhooks.secret",
		"webhooks.tolerance",
		"logging.level",
	}
}

// NonReloadableFields returns which fields require a restart.
func NonReloadableFields() []string {
	return []string{
		"server.host",
		"server.port",
		"webhooks.path",
		"database.dsn",
		"metrics.enabled",
		"metrics.path",
		"logging.format",
	}
}
