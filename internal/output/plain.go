package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/jmylchreest/dashbrand/internal/branding"
)

// PlainFormatter formats branding as aligned, human-readable text.
type PlainFormatter struct {
	opts FormatterOptions
}

// NewPlainFormatter creates a new plain text formatter.
func NewPlainFormatter(opts FormatterOptions) *PlainFormatter {
	return &PlainFormatter{opts: opts}
}

// Format writes the branding as plain text.
func (f *PlainFormatter) Format(w io.Writer, b *branding.Branding) error {
	labelStyle := lipgloss.NewStyle().Bold(true)

	source := f.opts.Source
	if source == "" {
		source = "(defaults)"
	}

	var sb strings.Builder
	field := func(label, value string) {
		sb.WriteString(labelStyle.Render(fmt.Sprintf("%-10s", label)))
		sb.WriteString(" ")
		sb.WriteString(value)
		sb.WriteString("\n")
	}

	field("Source:", source)
	field("Project:", b.ProjectName)
	field("Short:", b.ShortName)
	field("Welcome:", b.WelcomeMessage)
	field("Logo:", b.LogoPath)
	field("Favicon:", b.FaviconPath)

	footer := b.Footer.Text
	switch {
	case footer == "":
		footer = "(none)"
	case b.Footer.Link != "":
		footer = fmt.Sprintf("%s (%s)", footer, b.Footer.Link)
	}
	field("Footer:", footer)

	sb.WriteString(labelStyle.Render("Colors:"))
	sb.WriteString("\n")
	for _, key := range branding.ColorKeys {
		value, _ := b.Colors.Get(key)
		sb.WriteString(fmt.Sprintf("  %-14s %-8s", key, value))
		if !f.opts.NoColor {
			sb.WriteString(" ")
			sb.WriteString(swatch(value))
		}
		sb.WriteString("\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// swatch renders a colored block for a hex color, or a marker for values
// that are not valid hex colors.
func swatch(hex string) string {
	if !branding.IsHexColor(hex) {
		return "(invalid)"
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return "(invalid)"
	}

	fg := "#FFFFFF"
	if l, _, _ := c.Lab(); l > 0.5 {
		fg = "#000000"
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(lipgloss.Color(fg)).
		Padding(0, 1).
		Render("Aa")
}
