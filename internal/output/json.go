package output

import (
	"encoding/json"
	"io"

	"github.com/jmylchreest/dashbrand/internal/branding"
)

// JSONFormatter formats branding as indented JSON.
type JSONFormatter struct {
	opts FormatterOptions
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(opts FormatterOptions) *JSONFormatter {
	return &JSONFormatter{opts: opts}
}

// Format writes the branding as a JSON object.
func (f *JSONFormatter) Format(w io.Writer, b *branding.Branding) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(b)
}
