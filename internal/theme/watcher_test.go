package theme

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_FiresOnBrandingChange(t *testing.T) {
	dir := newKittify(t)

	var calls atomic.Int32
	w := NewWatcher(dir, nil)
	w.SetDebounce(10 * time.Millisecond)
	w.SetChangeCallback(func() { calls.Add(1) })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))
	defer w.Stop()
	assert.True(t, w.IsRunning())

	writeBranding(t, dir, `{"projectName": "Changed"}`)

	assert.Eventually(t, func() bool { return calls.Load() > 0 }, 5*time.Second, 10*time.Millisecond)
}

func TestWatcher_IgnoresUnrelatedFiles(t *testing.T) {
	dir := newKittify(t)

	var calls atomic.Int32
	w := NewWatcher(dir, nil)
	w.SetDebounce(10 * time.Millisecond)
	w.SetPollInterval(10 * time.Millisecond)
	w.SetChangeCallback(func() { calls.Add(1) })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))
	defer w.Stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0644))

	time.Sleep(200 * time.Millisecond)
	assert.Zero(t, calls.Load())
}

func TestWatcher_FallsBackToPolling(t *testing.T) {
	// fsnotify cannot watch a directory that does not exist yet
	dir := filepath.Join(t.TempDir(), ".kittify")

	var calls atomic.Int32
	w := NewWatcher(dir, nil)
	w.SetPollInterval(10 * time.Millisecond)
	w.SetChangeCallback(func() { calls.Add(1) })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))
	defer w.Stop()
	assert.True(t, w.IsPolling())

	require.NoError(t, os.MkdirAll(dir, 0755))
	writeBranding(t, dir, `{"projectName": "Polled"}`)

	assert.Eventually(t, func() bool { return calls.Load() > 0 }, 5*time.Second, 10*time.Millisecond)
}

func TestWatcher_PollingDetectsWritesImmediatelyAfterStart(t *testing.T) {
	dir := filepath.Join(t.TempDir(), ".kittify")

	var calls atomic.Int32
	w := NewWatcher(dir, nil)
	w.SetPollInterval(20 * time.Millisecond)
	w.SetChangeCallback(func() { calls.Add(1) })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))
	defer w.Stop()
	require.True(t, w.IsPolling())

	// No pause between Start and the write
	require.NoError(t, os.MkdirAll(dir, 0755))
	writeBranding(t, dir, `{"projectName": "First"}`)
	require.Eventually(t, func() bool { return calls.Load() >= 1 }, 5*time.Second, 10*time.Millisecond)

	time.Sleep(50 * time.Millisecond)
	before := calls.Load()
	writeBranding(t, dir, `{"projectName": "Second edit"}`)
	assert.Eventually(t, func() bool { return calls.Load() > before }, 5*time.Second, 10*time.Millisecond)
}

func TestWatcher_StartStop(t *testing.T) {
	w := NewWatcher(newKittify(t), nil)

	require.NoError(t, w.Start(context.Background()))
	require.NoError(t, w.Start(context.Background()), "second start is a no-op")
	w.Stop()
	assert.False(t, w.IsRunning())
	w.Stop()
}

func TestWatcher_RequiresDirectory(t *testing.T) {
	w := NewWatcher("", nil)
	assert.Error(t, w.Start(context.Background()))
}

func TestIsBrandingFile(t *testing.T) {
	assert.True(t, isBrandingFile("/x/.kittify/branding.json"))
	assert.True(t, isBrandingFile("branding.toml"))
	assert.False(t, isBrandingFile("/x/.kittify/branding.json.swp"))
	assert.False(t, isBrandingFile("/x/.kittify/static/logo.png"))
}
