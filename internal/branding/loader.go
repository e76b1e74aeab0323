package branding

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Candidates lists the branding file names checked inside a .kittify
// directory, in priority order.
var Candidates = []string{
	FileName,
	"branding.yaml",
	"branding.yml",
	"branding.toml",
}

// FindKittifyDir walks from start up through its parents looking for a
// .kittify directory. Returns "" if none is found.
func FindKittifyDir(start string) string {
	if start == "" {
		wd, err := os.Getwd()
		if err != nil {
			return ""
		}
		start = wd
	}

	current, err := filepath.Abs(start)
	if err != nil {
		return ""
	}

	for {
		candidate := filepath.Join(current, DirName)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate
		}
		parent := filepath.Dir(current)
		if parent == current {
			return ""
		}
		current = parent
	}
}

// FindFile returns the first existing branding file in kittifyDir.
func FindFile(kittifyDir string) (string, bool) {
	if kittifyDir == "" {
		return "", false
	}
	for _, name := range Candidates {
		path := filepath.Join(kittifyDir, name)
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return path, true
		}
	}
	return "", false
}

// RemoveAlternates deletes every branding file in kittifyDir except keep,
// so that keep is the file FindFile returns.
func RemoveAlternates(kittifyDir, keep string) error {
	for _, name := range Candidates {
		path := filepath.Join(kittifyDir, name)
		if path == keep {
			continue
		}
		err := os.Remove(path)
		switch {
		case err == nil:
			slog.Info("removed alternate branding file", "path", path)
		case !errors.Is(err, os.ErrNotExist):
			return fmt.Errorf("remove %s: %w", path, err)
		}
	}
	return nil
}

// Load returns the branding for kittifyDir, discovering the directory from
// the working directory when kittifyDir is empty.
// Any failure is logged and yields the default branding.
func Load(kittifyDir string) *Branding {
	b, _ := Resolve(kittifyDir)
	return b
}

// Resolve is like Load but also reports the file the branding was read
// from. The path is empty when defaults are returned.
func Resolve(kittifyDir string) (*Branding, string) {
	if kittifyDir == "" {
		kittifyDir = FindKittifyDir("")
		if kittifyDir == "" {
			return Default(), ""
		}
	}

	path, ok := FindFile(kittifyDir)
	if !ok {
		return Default(), ""
	}

	b, err := LoadFile(path)
	if err != nil {
		slog.Warn("failed to load branding config, using defaults", "path", path, "error", err)
		return Default(), ""
	}
	return b, path
}

// LoadFile reads a branding file and merges it onto the defaults.
// Nested colors and footer objects are merged key by key.
func LoadFile(path string) (*Branding, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	b := Default()
	if err := decode(path, data, b); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return b, nil
}

// Save writes b to path in the format implied by its extension.
// Parent directories are created as needed.
func (b *Branding) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := encode(path, b)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Format identifies a branding document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatOf returns the document format for a file path, defaulting to JSON.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatJSON
	}
}

// ParseFormat converts a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json", "":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported format %q", s)
	}
}

func decode(path string, data []byte, v any) error {
	switch FormatOf(path) {
	case FormatYAML:
		return yaml.Unmarshal(data, v)
	case FormatTOML:
		return toml.Unmarshal(data, v)
	default:
		if len(strings.TrimSpace(string(data))) == 0 {
			return errors.New("empty document")
		}
		return json.Unmarshal(data, v)
	}
}

func encode(path string, v any) ([]byte, error) {
	switch FormatOf(path) {
	case FormatYAML:
		return yaml.Marshal(v)
	case FormatTOML:
		return toml.Marshal(v)
	default:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	}
}
