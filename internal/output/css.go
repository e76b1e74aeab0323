package output

import (
	"io"

	"github.com/jmylchreest/dashbrand/internal/branding"
	"github.com/jmylchreest/dashbrand/internal/theme"
)

// CSSFormatter writes the generated CSS custom property block.
type CSSFormatter struct {
	opts FormatterOptions
}

// NewCSSFormatter creates a new CSS formatter.
func NewCSSFormatter(opts FormatterOptions) *CSSFormatter {
	return &CSSFormatter{opts: opts}
}

// Format writes the CSS variables for the branding.
func (f *CSSFormatter) Format(w io.Writer, b *branding.Branding) error {
	_, err := io.WriteString(w, theme.CSSVariables(b))
	return err
}
