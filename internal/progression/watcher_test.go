package progression

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Reforge_Go/internal/testing/leaktest"
)

type countingReloader struct {
	path  string
	calls int
}

func (r *countingReloader) Path() string { return r.path }

func (r *countingReloader) Reload(ctx context.Context) error {
	r.calls++
	return nil
}

func TestWatcher_PollDetectsChange(t *testing.T) {
	// ARRANGE
	path := filepath.Join(t.TempDir(), "reforging.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))
	target := &countingReloader{path: path}
	w := NewWatcher(target, time.Hour)
	w.lastMod = w.modTime()
	ctx := context.Background()

	// ACT + ASSERT
	assert.False(t, w.poll(ctx), "unchanged file")

	later := time.Now().Add(time.Minute)
	require.NoError(t, os.Chtimes(path, later, later))
	assert.True(t, w.poll(ctx))
	assert.Equal(t, 1, target.calls)

	assert.False(t, w.poll(ctx), "same mtime is not reloaded twice")
	assert.Equal(t, 1, target.calls)
}

func TestWatcher_MissingFile(t *testing.T) {
	target := &countingReloader{path: filepath.Join(t.TempDir(), "missing.json")}
	w := NewWatcher(target, 0)

	assert.Equal(t, DefaultWatchInterval, w.interval)
	assert.False(t, w.poll(context.Background()))
	assert.Zero(t, target.calls)
}

func TestWatcher_RunStopsOnCancel(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)
	target := &countingReloader{path: filepath.Join(t.TempDir(), "missing.json")}
	w := NewWatcher(target, 10*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop")
	}
	checker.Check(0)
}
