package progression

import (
	"context"
	"os"
	"time"

	"github.com/osse101/Reforge_Go/internal/logger"
)

// DefaultWatchInterval is how often the config file is polled
const DefaultWatchInterval = 2 * time.Second

// Reloader is satisfied by *Manager
type Reloader interface {
	Path() string
	Reload(ctx context.Context) error
}

// Watcher polls the config file modification time and reloads on change
type Watcher struct {
	target   Reloader
	interval time.Duration
	lastMod  time.Time
}

// NewWatcher creates a watcher reloading target whenever its file changes
func NewWatcher(target Reloader, interval time.Duration) *Watcher {
	if interval <= 0 {
		interval = DefaultWatchInterval
	}
	return &Watcher{target: target, interval: interval}
}

// Run polls until ctx is cancelled
func (w *Watcher) Run(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgWatcherStarted, "path", w.target.Path(), "interval", w.interval)

	w.lastMod = w.modTime()
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info(LogMsgWatcherStopped, "path", w.target.Path())
			return nil
		case <-ticker.C:
			w.poll(ctx)
		}
	}
}

// poll reloads once if the file changed since the last check
func (w *Watcher) poll(ctx context.Context) bool {
	mod := w.modTime()
	if mod.IsZero() || !mod.After(w.lastMod) {
		return false
	}
	w.lastMod = mod

	logger.FromContext(ctx).Info(LogMsgWatcherChangeSeen, "path", w.target.Path())
	// Reload logs its own failure and keeps the previous snapshot.
	_ = w.target.Reload(ctx)
	return true
}

func (w *Watcher) modTime() time.Time {
	fi, err := os.Stat(w.target.Path())
	if err != nil {
		return time.Time{}
	}
	return fi.ModTime()
}
