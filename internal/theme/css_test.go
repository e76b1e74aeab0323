package theme

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jmylchreest/dashbrand/internal/branding"
)

func TestCSSVariables_Defaults(t *testing.T) {
	css := CSSVariables(branding.Default())

	assert.Contains(t, css, ":root {")
	assert.Contains(t, css, "--hive-gold-dark: #B8860B;")
	assert.Contains(t, css, "--hive-gold: #DAA520;")
	assert.Contains(t, css, "--honey-bright: #FFBF00;")
	assert.Contains(t, css, "--sidebar-bg: #FFF9F0;")
	assert.Contains(t, css, "--text-primary: #111827;")
	assert.Contains(t, css, "--text-secondary: #4B5563;")
	assert.Contains(t, css, "--border-light: #E5E7EB;")
}

func TestCSSVariables_BrandColorsFeedLegacyNames(t *testing.T) {
	b := branding.Default()
	b.Colors = branding.Colors{
		Primary:       "#100000",
		Secondary:     "#020000",
		Accent:        "#003000",
		Background:    "#000400",
		Sidebar:       "#000050",
		Text:          "#000006",
		TextSecondary: "#700000",
		Border:        "#080000",
	}

	css := CSSVariables(b)

	expected := map[string]string{
		"--baby-blue":     "#100000",
		"--grassy-green":  "#020000",
		"--border-gold":   "#020000",
		"--focus-ring":    "#020000",
		"--sunny-yellow":  "#003000",
		"--bg-white":      "#000400",
		"--creamy-white":  "#000400",
		"--background":    "#000400",
		"--sidebar-bg":    "#000050",
		"--dark-text":     "#000006",
		"--medium-text":   "#700000",
		"--border-light":  "#080000",
		"--text-gray-900": "#111827",
	}
	for name, value := range expected {
		assert.Contains(t, css, name+": "+value+";", "variable %s", name)
	}
}

func TestCSSVariables_FallsBackForInvalidColors(t *testing.T) {
	b := branding.Default()
	b.Colors.Primary = "red; } body { display: none"
	b.Colors.Accent = ""

	css := CSSVariables(b)
	assert.NotContains(t, css, "display: none")
	assert.Contains(t, css, "--hive-gold-dark: #B8860B;")
	assert.Contains(t, css, "--honey-bright: #FFBF00;")
}

func TestCSSVariables_NilBranding(t *testing.T) {
	assert.Equal(t, CSSVariables(branding.Default()), CSSVariables(nil))
}

func TestCSSVariables_BalancedBraces(t *testing.T) {
	css := CSSVariables(branding.Default())
	assert.Equal(t, strings.Count(css, "{"), strings.Count(css, "}"))
	assert.NotContains(t, css, "{{")
	assert.NotContains(t, css, "<no value>")
}
