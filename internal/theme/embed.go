package theme

import (
	"embed"
	"io/fs"
	"sort"
)

// EmbeddedAssets contains the stock dashboard page and its static files.
//
//go:embed assets/dashboard.html assets/static/*
var EmbeddedAssets embed.FS

// DashboardPage is the file name of the stock dashboard page.
const DashboardPage = "dashboard.html"

// DashboardHTML returns the stock, unbranded dashboard page.
func DashboardHTML() string {
	data, err := EmbeddedAssets.ReadFile("assets/" + DashboardPage)
	if err != nil {
		return ""
	}
	return string(data)
}

// StaticFS returns the bundled static files rooted at the static directory.
func StaticFS() fs.FS {
	sub, err := fs.Sub(EmbeddedAssets, "assets/static")
	if err != nil {
		// Only possible if the embed pattern changes.
		panic(err)
	}
	return sub
}

// GetEmbeddedAsset retrieves a bundled static file by its path relative to
// the static directory. Returns the content and whether it was found.
func GetEmbeddedAsset(name string) ([]byte, bool) {
	data, err := fs.ReadFile(StaticFS(), name)
	if err != nil {
		return nil, false
	}
	return data, true
}

// ListEmbeddedAssets returns the names of all bundled static files.
func ListEmbeddedAssets() []string {
	var names []string
	_ = fs.WalkDir(StaticFS(), ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			names = append(names, p)
		}
		return nil
	})
	sort.Strings(names)
	return names
}

// IsEmbeddedAsset checks if a static file is bundled.
func IsEmbeddedAsset(name string) bool {
	_, found := GetEmbeddedAsset(name)
	return found
}
