package theme

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/jmylchreest/dashbrand/internal/branding"
)

// Theme is a resolved branding together with its generated CSS.
type Theme struct {
	Branding  *branding.Branding
	CSS       string    // Generated :root custom property block
	Path      string    // Branding file the theme was read from (empty for default)
	ModTime   time.Time // Modification time of Path at load
	IsDefault bool      // True when no branding file was found or it failed to load
}

// NewTheme builds a theme for b. path names the file b was read from and
// may be empty.
func NewTheme(b *branding.Branding, path string) *Theme {
	t := &Theme{
		Branding:  b,
		CSS:       CSSVariables(b),
		Path:      path,
		IsDefault: path == "",
	}
	if path != "" {
		if info, err := os.Stat(path); err == nil {
			t.ModTime = info.ModTime()
		}
	}
	return t
}

// NewDefaultTheme creates the stock Spec Kitty theme.
func NewDefaultTheme() *Theme {
	return NewTheme(branding.Default(), "")
}

// LoadTheme resolves the branding for kittifyDir and builds its theme.
// Failures yield the default theme.
func LoadTheme(kittifyDir string) *Theme {
	b, path := branding.Resolve(kittifyDir)
	return NewTheme(b, path)
}

// Decorate applies the theme's branding to a rendered page.
func (t *Theme) Decorate(page string) string {
	return Apply(page, t.Branding)
}

// OverrideDir returns the static override directory for a .kittify directory.
func OverrideDir(kittifyDir string) string {
	if kittifyDir == "" {
		return ""
	}
	return filepath.Join(kittifyDir, branding.StaticDirName)
}

// AssetInfo describes a static file in the override directory.
type AssetInfo struct {
	Name      string // Path relative to the override directory, slash separated
	Path      string
	Size      int64
	ModTime   time.Time
	Overrides bool // True if it shadows a bundled asset
}

// ListOverrides lists the files in the static override directory of kittifyDir.
// A missing directory yields an empty list.
func ListOverrides(kittifyDir string) ([]AssetInfo, error) {
	dir := OverrideDir(kittifyDir)
	if dir == "" {
		return nil, nil
	}

	var assets []AssetInfo
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		if !info.Mode().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		name := filepath.ToSlash(rel)
		assets = append(assets, AssetInfo{
			Name:      name,
			Path:      path,
			Size:      info.Size(),
			ModTime:   info.ModTime(),
			Overrides: IsEmbeddedAsset(name),
		})
		return nil
	})
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	sort.Slice(assets, func(i, j int) bool { return assets[i].Name < assets[j].Name })
	return assets, nil
}

// CreateOverrideDir creates the static override directory if it doesn't exist.
func CreateOverrideDir(kittifyDir string) error {
	dir := OverrideDir(kittifyDir)
	if dir == "" {
		return errors.New("no .kittify directory")
	}
	return os.MkdirAll(dir, 0755)
}
