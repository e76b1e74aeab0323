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

	"github.com/jmylchreest/dashbrand/internal/branding"
)

func newKittify(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), branding.DirName)
	require.NoError(t, os.MkdirAll(dir, 0755))
	return dir
}

func writeBranding(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, branding.FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadTheme_Default(t *testing.T) {
	th := LoadTheme(newKittify(t))

	assert.True(t, th.IsDefault)
	assert.Empty(t, th.Path)
	assert.Equal(t, branding.Default(), th.Branding)
	assert.Equal(t, CSSVariables(branding.Default()), th.CSS)
}

func TestLoadTheme_FromFile(t *testing.T) {
	dir := newKittify(t)
	path := writeBranding(t, dir, `{"projectName": "Acme", "colors": {"primary": "#123456"}}`)

	th := LoadTheme(dir)
	assert.False(t, th.IsDefault)
	assert.Equal(t, path, th.Path)
	assert.False(t, th.ModTime.IsZero())
	assert.Equal(t, "Acme", th.Branding.ProjectName)
	assert.Contains(t, th.CSS, "--hive-gold-dark: #123456;")
}

func TestTheme_Decorate(t *testing.T) {
	th := NewTheme(acmeBranding(), "")
	assert.Equal(t, Apply(DashboardHTML(), acmeBranding()), th.Decorate(DashboardHTML()))
}

func TestLoader_GetThemeLoadsLazily(t *testing.T) {
	dir := newKittify(t)
	writeBranding(t, dir, `{"projectName": "Lazy"}`)

	l := NewLoader(dir, nil)
	assert.Equal(t, dir, l.KittifyDir())
	assert.Equal(t, filepath.Join(dir, "static"), l.OverrideDir())
	assert.Equal(t, "Lazy", l.GetTheme().Branding.ProjectName)
}

func TestLoader_ReloadPicksUpChanges(t *testing.T) {
	dir := newKittify(t)
	writeBranding(t, dir, `{"projectName": "First"}`)

	l := NewLoader(dir, nil)
	assert.Equal(t, "First", l.GetTheme().Branding.ProjectName)

	writeBranding(t, dir, `{"projectName": "Second"}`)
	assert.Equal(t, "First", l.GetTheme().Branding.ProjectName, "cached until reload")

	var reloaded *Theme
	l.SetReloadCallback(func(th *Theme) { reloaded = th })
	l.Reload()

	assert.Equal(t, "Second", l.GetTheme().Branding.ProjectName)
	require.NotNil(t, reloaded)
	assert.Equal(t, "Second", reloaded.Branding.ProjectName)
	assert.Contains(t, l.Decorate(DashboardHTML()), "<title>Second Dashboard</title>")
}

func TestLoader_HotReload(t *testing.T) {
	dir := newKittify(t)
	writeBranding(t, dir, `{"projectName": "Before"}`)

	l := NewLoader(dir, nil)
	l.SetPollInterval(20 * time.Millisecond)
	l.Load()

	var reloads atomic.Int32
	l.SetReloadCallback(func(*Theme) { reloads.Add(1) })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, l.StartHotReload(ctx))
	defer l.StopHotReload()

	writeBranding(t, dir, `{"projectName": "After"}`)

	assert.Eventually(t, func() bool {
		return l.GetTheme().Branding.ProjectName == "After"
	}, 5*time.Second, 20*time.Millisecond)
	assert.GreaterOrEqual(t, reloads.Load(), int32(1))
}

func TestLoader_RestartHotReloadDuringReload(t *testing.T) {
	// A missing directory forces the polling watcher
	dir := filepath.Join(t.TempDir(), branding.DirName)

	l := NewLoader(dir, nil)
	l.SetPollInterval(10 * time.Millisecond)

	entered := make(chan struct{})
	release := make(chan struct{})
	var first atomic.Bool
	l.SetReloadCallback(func(*Theme) {
		if first.CompareAndSwap(false, true) {
			close(entered)
			<-release
			// Needs l.mu while the restart is stopping this watcher
			l.SetPollInterval(10 * time.Millisecond)
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, l.StartHotReload(ctx))
	defer l.StopHotReload()

	require.NoError(t, os.MkdirAll(dir, 0755))
	writeBranding(t, dir, `{"projectName": "Reloaded"}`)

	select {
	case <-entered:
	case <-time.After(5 * time.Second):
		t.Fatal("reload never started")
	}

	restarted := make(chan error, 1)
	go func() { restarted <- l.StartHotReload(ctx) }()

	time.Sleep(50 * time.Millisecond)
	close(release)

	select {
	case err := <-restarted:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("restarting hot-reload deadlocked")
	}
	assert.Equal(t, "Reloaded", l.Reload().Branding.ProjectName)
}

func TestLoader_HotReloadWithoutKittifyIsNoop(t *testing.T) {
	l := NewLoader("", nil)
	l.kittifyDir = ""

	require.NoError(t, l.StartHotReload(context.Background()))
	l.StopHotReload()
}

func TestListOverrides(t *testing.T) {
	dir := newKittify(t)
	static := filepath.Join(dir, "static")
	require.NoError(t, os.MkdirAll(filepath.Join(static, "img"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(static, "spec-kitty.png"), []byte("logo"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(static, "img", "hero.jpg"), []byte("hero!"), 0644))

	assets, err := ListOverrides(dir)
	require.NoError(t, err)
	require.Len(t, assets, 2)

	assert.Equal(t, "img/hero.jpg", assets[0].Name)
	assert.Equal(t, int64(5), assets[0].Size)
	assert.False(t, assets[0].Overrides)

	assert.Equal(t, "spec-kitty.png", assets[1].Name)
	assert.True(t, assets[1].Overrides)
}

func TestListOverrides_MissingDirectory(t *testing.T) {
	assets, err := ListOverrides(newKittify(t))
	require.NoError(t, err)
	assert.Empty(t, assets)

	assets, err = ListOverrides("")
	require.NoError(t, err)
	assert.Empty(t, assets)
}

func TestCreateOverrideDir(t *testing.T) {
	dir := newKittify(t)
	require.NoError(t, CreateOverrideDir(dir))

	info, err := os.Stat(filepath.Join(dir, "static"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	assert.Error(t, CreateOverrideDir(""))
}
