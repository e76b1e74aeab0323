// Package dashboard renders the branded dashboard page and serves it over
// HTTP together with the static assets and branding API.
package dashboard

import (
	"fmt"
	"os"

	"github.com/jmylchreest/dashbrand/internal/theme"
)

// Source produces the undecorated dashboard page.
type Source interface {
	HTML() (string, error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func() (string, error)

// HTML calls f().
func (f SourceFunc) HTML() (string, error) {
	return f()
}

// EmbeddedSource returns the stock dashboard page bundled with the binary.
func EmbeddedSource() Source {
	return SourceFunc(func() (string, error) {
		return theme.DashboardHTML(), nil
	})
}

// FileSource reads the page from path on every call, so edits to the file
// show up without a restart.
func FileSource(path string) Source {
	return SourceFunc(func() (string, error) {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read dashboard page: %w", err)
		}
		return string(data), nil
	})
}

// Renderer produces the branded dashboard page.
type Renderer struct {
	source    Source
	decorator theme.Decorator
}

// NewRenderer creates a renderer. A nil source uses the embedded page and a
// nil decorator leaves the page unchanged.
func NewRenderer(source Source, decorator theme.Decorator) *Renderer {
	if source == nil {
		source = EmbeddedSource()
	}
	if decorator == nil {
		decorator = theme.DecoratorFunc(func(page string) string { return page })
	}
	return &Renderer{source: source, decorator: decorator}
}

// Render returns the decorated page.
func (r *Renderer) Render() (string, error) {
	page, err := r.source.HTML()
	if err != nil {
		return "", err
	}
	return r.decorator.Decorate(page), nil
}
