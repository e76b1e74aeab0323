// Package output provides output formatters for branding configurations.
package output

import (
	"fmt"
	"io"

	"github.com/jmylchreest/dashbrand/internal/branding"
)

// Formatter formats a branding configuration for output.
type Formatter interface {
	// Format writes the formatted branding to the writer.
	Format(w io.Writer, b *branding.Branding) error
}

// FormatType represents an output format type.
type FormatType string

const (
	FormatPlain FormatType = "plain"
	FormatJSON  FormatType = "json"
	FormatYAML  FormatType = "yaml"
	FormatCSS   FormatType = "css"
)

// FormatterOptions configures formatter behavior.
type FormatterOptions struct {
	Source  string // File the branding was read from; empty for defaults
	NoColor bool   // Disable color swatches in plain output
}

// NewFormatter creates a formatter for the specified format type.
func NewFormatter(format FormatType, opts FormatterOptions) (Formatter, error) {
	switch format {
	case FormatJSON:
		return NewJSONFormatter(opts), nil
	case FormatYAML:
		return NewYAMLFormatter(opts), nil
	case FormatCSS:
		return NewCSSFormatter(opts), nil
	case FormatPlain, "":
		return NewPlainFormatter(opts), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (plain, json, yaml, css)", format)
	}
}
