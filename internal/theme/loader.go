package theme

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jmylchreest/dashbrand/internal/branding"
)

// Loader holds the current theme for a project and reloads it when the
// branding file changes. A Loader is a Decorator that always applies the
// latest theme.
type Loader struct {
	mu           sync.RWMutex
	logger       *slog.Logger
	kittifyDir   string
	theme        *Theme
	watcher      *Watcher
	pollInterval time.Duration
	onReload     func(*Theme)
}

// NewLoader creates a loader for kittifyDir. An empty kittifyDir is
// discovered from the working directory.
func NewLoader(kittifyDir string, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}

	if kittifyDir == "" {
		kittifyDir = branding.FindKittifyDir("")
		if kittifyDir == "" {
			logger.Debug("no .kittify directory found, using default branding")
		}
	}

	return &Loader{
		logger:       logger,
		kittifyDir:   kittifyDir,
		pollInterval: 1 * time.Second,
	}
}

// KittifyDir returns the project directory the loader reads from.
func (l *Loader) KittifyDir() string {
	return l.kittifyDir
}

// OverrideDir returns the static override directory, or "" if there is no
// .kittify directory.
func (l *Loader) OverrideDir() string {
	return OverrideDir(l.kittifyDir)
}

// SetPollInterval sets the interval used if hot reload falls back to polling.
func (l *Loader) SetPollInterval(interval time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.pollInterval = interval
}

// SetReloadCallback sets a callback invoked after every hot reload.
func (l *Loader) SetReloadCallback(callback func(*Theme)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onReload = callback
}

// Load resolves the branding from disk and makes it the current theme.
func (l *Loader) Load() *Theme {
	t := LoadTheme(l.kittifyDir)

	l.mu.Lock()
	l.theme = t
	l.mu.Unlock()

	if t.IsDefault {
		l.logger.Info("loaded default branding")
	} else {
		l.logger.Info("loaded branding", "project", t.Branding.ProjectName, "path", t.Path)
	}
	return t
}

// GetTheme returns the current theme, loading it on first use.
func (l *Loader) GetTheme() *Theme {
	l.mu.RLock()
	t := l.theme
	l.mu.RUnlock()

	if t == nil {
		return l.Load()
	}
	return t
}

// Decorate applies the current theme to a rendered page.
func (l *Loader) Decorate(page string) string {
	return l.GetTheme().Decorate(page)
}

// Reload re-reads the branding from disk.
func (l *Loader) Reload() *Theme {
	t := l.Load()

	l.mu.RLock()
	callback := l.onReload
	l.mu.RUnlock()

	if callback != nil {
		callback(t)
	}
	return t
}

// StartHotReload starts watching the .kittify directory and reloads the
// theme whenever a branding file changes.
func (l *Loader) StartHotReload(ctx context.Context) error {
	l.mu.RLock()
	dir := l.kittifyDir
	interval := l.pollInterval
	l.mu.RUnlock()

	if dir == "" {
		l.logger.Debug("not starting hot-reload without a .kittify directory")
		return nil
	}

	w := NewWatcher(dir, l.logger)
	w.SetPollInterval(interval)
	w.SetChangeCallback(func() {
		t := l.Reload()
		l.logger.Info("hot-reloaded branding", "project", t.Branding.ProjectName)
	})
	if err := w.Start(ctx); err != nil {
		return err
	}

	l.mu.Lock()
	previous := l.watcher
	l.watcher = w
	l.mu.Unlock()

	// Stopped outside l.mu: its callback may be waiting on l.mu.
	if previous != nil {
		previous.Stop()
	}
	return nil
}

// StopHotReload stops watching for branding changes.
func (l *Loader) StopHotReload() {
	l.mu.Lock()
	w := l.watcher
	l.watcher = nil
	l.mu.Unlock()

	if w != nil {
		w.Stop()
	}
}
