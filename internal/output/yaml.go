package output

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/dashbrand/internal/branding"
)

// YAMLFormatter formats branding as YAML.
type YAMLFormatter struct {
	opts FormatterOptions
}

// NewYAMLFormatter creates a new YAML formatter.
func NewYAMLFormatter(opts FormatterOptions) *YAMLFormatter {
	return &YAMLFormatter{opts: opts}
}

// Format writes the branding as a YAML document.
func (f *YAMLFormatter) Format(w io.Writer, b *branding.Branding) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(b); err != nil {
		return err
	}
	return encoder.Close()
}
