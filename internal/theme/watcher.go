package theme

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/jmylchreest/dashbrand/internal/branding"
)

// Watcher watches a .kittify directory for branding file changes.
// It uses fsnotify and falls back to polling modification times when
// fsnotify cannot watch the directory.
type Watcher struct {
	mu     sync.RWMutex
	logger *slog.Logger

	// Directory being watched
	dir string

	// Polling interval, used only in fallback mode
	pollInterval time.Duration

	// Quiet period before firing the callback for a burst of events
	debounce time.Duration
	timer    *time.Timer

	// Callback for changes
	onChangeCallback func()

	// Control channels
	stopCh chan struct{}
	doneCh chan struct{}

	fsw     *fsnotify.Watcher
	running bool
	polling bool
}

// NewWatcher creates a new watcher for a .kittify directory.
func NewWatcher(dir string, logger *slog.Logger) *Watcher {
	if logger == nil {
		logger = slog.Default()
	}

	return &Watcher{
		logger:       logger,
		dir:          dir,
		pollInterval: 1 * time.Second,
		debounce:     100 * time.Millisecond,
		stopCh:       make(chan struct{}),
		doneCh:       make(chan struct{}),
	}
}

// SetPollInterval sets the polling interval used in fallback mode.
func (w *Watcher) SetPollInterval(interval time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.pollInterval = interval
}

// SetDebounce sets the quiet period used to coalesce bursts of events.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.debounce = d
}

// SetChangeCallback sets the callback to invoke when a branding file changes.
func (w *Watcher) SetChangeCallback(callback func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChangeCallback = callback
}

// Start begins watching. It is a no-op if the watcher is already running.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	if w.dir == "" {
		w.mu.Unlock()
		return fmt.Errorf("no directory to watch")
	}

	w.fsw = nil
	w.polling = false
	fsw, err := fsnotify.NewWatcher()
	if err == nil {
		if err = fsw.Add(w.dir); err != nil {
			_ = fsw.Close()
		} else {
			w.fsw = fsw
		}
	}
	if w.fsw == nil {
		w.logger.Warn("fsnotify unavailable, polling for branding changes", "dir", w.dir, "error", err)
		w.polling = true
	}

	w.running = true
	w.stopCh = make(chan struct{})
	w.doneCh = make(chan struct{})
	polling := w.polling
	interval := w.pollInterval

	// Baseline must be taken before Start returns.
	var baseline string
	if polling {
		baseline = snapshot(w.dir)
	}
	w.mu.Unlock()

	if polling {
		go w.pollLoop(ctx, interval, baseline)
	} else {
		go w.eventLoop(ctx)
	}

	w.logger.Debug("branding watcher started", "dir", w.dir, "polling", polling)
	return nil
}

// Stop stops watching the directory.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	close(w.stopCh)
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	// Wait for goroutine to finish
	<-w.doneCh

	w.mu.Lock()
	if w.fsw != nil {
		_ = w.fsw.Close()
		w.fsw = nil
	}
	w.mu.Unlock()
	w.logger.Debug("branding watcher stopped")
}

// IsRunning returns whether the watcher is currently running.
func (w *Watcher) IsRunning() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.running
}

// IsPolling returns whether the watcher fell back to polling.
func (w *Watcher) IsPolling() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.polling
}

func (w *Watcher) eventLoop(ctx context.Context) {
	defer close(w.doneCh)

	w.mu.RLock()
	fsw := w.fsw
	w.mu.RUnlock()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			if !isBrandingFile(event.Name) {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
				event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				w.logger.Debug("branding file event", "file", event.Name, "op", event.Op.String())
				w.schedule()
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("branding watcher error", "error", err)
		}
	}
}

func (w *Watcher) pollLoop(ctx context.Context, interval time.Duration, last string) {
	defer close(w.doneCh)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case <-ticker.C:
			current := snapshot(w.dir)
			if current != last {
				last = current
				w.logger.Debug("branding files changed", "dir", w.dir)
				w.fire()
			}
		}
	}
}

// schedule fires the callback once events have been quiet for the debounce period.
func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.fire)
}

func (w *Watcher) fire() {
	w.mu.RLock()
	callback := w.onChangeCallback
	running := w.running
	w.mu.RUnlock()

	if running && callback != nil {
		callback()
	}
}

func isBrandingFile(name string) bool {
	return slices.Contains(branding.Candidates, filepath.Base(name))
}

// snapshot summarises the presence, size and mtime of every candidate file.
func snapshot(dir string) string {
	var sb strings.Builder
	for _, name := range branding.Candidates {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		fmt.Fprintf(&sb, "%s:%d:%d;", name, info.Size(), info.ModTime().UnixNano())
	}
	return sb.String()
}
