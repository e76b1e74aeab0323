// Package branding handles loading, validating and creating the dashboard
// branding configuration stored in a project's .kittify directory.
package branding

import (
	"fmt"
)

// Well-known names inside a project.
const (
	DirName       = ".kittify"
	FileName      = "branding.json"
	StaticDirName = "static"
)

// Default branding values.
const (
	DefaultProjectName    = "Spec Kitty"
	DefaultShortName      = "Spec Kitty"
	DefaultWelcomeMessage = "Welcome to Spec Kitty!"
	DefaultLogoPath       = "/static/spec-kitty.png"
	DefaultFaviconPath    = "/static/spec-kitty.png"
	DefaultFooterText     = "Powered by Spec Kitty"
)

// ColorKeys lists the named brand colors in display order.
var ColorKeys = []string{
	"primary",
	"secondary",
	"accent",
	"background",
	"sidebar",
	"text",
	"textSecondary",
	"border",
}

// Branding is the set of visual and textual overrides for the dashboard.
type Branding struct {
	ProjectName    string `json:"projectName" yaml:"projectName" toml:"projectName"`
	ShortName      string `json:"shortName" yaml:"shortName" toml:"shortName"`
	WelcomeMessage string `json:"welcomeMessage" yaml:"welcomeMessage" toml:"welcomeMessage"`
	LogoPath       string `json:"logoPath" yaml:"logoPath" toml:"logoPath"`
	FaviconPath    string `json:"faviconPath" yaml:"faviconPath" toml:"faviconPath"`
	Colors         Colors `json:"colors" yaml:"colors" toml:"colors"`
	Footer         Footer `json:"footer" yaml:"footer" toml:"footer"`
}

// Colors holds the named brand colors as hex strings.
type Colors struct {
	Primary       string `json:"primary" yaml:"primary" toml:"primary"`                   // text on light
	Secondary     string `json:"secondary" yaml:"secondary" toml:"secondary"`             // accents
	Accent        string `json:"accent" yaml:"accent" toml:"accent"`                      // highlights
	Background    string `json:"background" yaml:"background" toml:"background"`          // main content
	Sidebar       string `json:"sidebar" yaml:"sidebar" toml:"sidebar"`                   // sidebar panel
	Text          string `json:"text" yaml:"text" toml:"text"`                            // body text
	TextSecondary string `json:"textSecondary" yaml:"textSecondary" toml:"textSecondary"` // labels
	Border        string `json:"border" yaml:"border" toml:"border"`                      // borders
}

// Footer is the optional footer shown at the bottom of the dashboard.
// An empty Text disables the footer.
type Footer struct {
	Text string `json:"text" yaml:"text" toml:"text"`
	Link string `json:"link" yaml:"link" toml:"link"`
}

// DefaultColors returns the stock Spec Kitty palette.
func DefaultColors() Colors {
	return Colors{
		Primary:       "#B8860B",
		Secondary:     "#DAA520",
		Accent:        "#FFBF00",
		Background:    "#FFFFFF",
		Sidebar:       "#FFF9F0",
		Text:          "#111827",
		TextSecondary: "#4B5563",
		Border:        "#E5E7EB",
	}
}

// Default returns a fresh copy of the default branding.
func Default() *Branding {
	return &Branding{
		ProjectName:    DefaultProjectName,
		ShortName:      DefaultShortName,
		WelcomeMessage: DefaultWelcomeMessage,
		LogoPath:       DefaultLogoPath,
		FaviconPath:    DefaultFaviconPath,
		Colors:         DefaultColors(),
		Footer: Footer{
			Text: DefaultFooterText,
			Link: "",
		},
	}
}

// Clone returns a copy of b.
func (b *Branding) Clone() *Branding {
	c := *b
	return &c
}

// Get returns the color for the given key.
func (c *Colors) Get(key string) (string, bool) {
	p := c.field(key)
	if p == nil {
		return "", false
	}
	return *p, true
}

// Set assigns the color for the given key.
func (c *Colors) Set(key, value string) error {
	p := c.field(key)
	if p == nil {
		return fmt.Errorf("unknown color %q", key)
	}
	*p = value
	return nil
}

// WithDefaults returns a copy where every empty color is replaced by its default.
func (c Colors) WithDefaults() Colors {
	def := DefaultColors()
	for _, key := range ColorKeys {
		if v, _ := c.Get(key); v == "" {
			dv, _ := def.Get(key)
			_ = c.Set(key, dv)
		}
	}
	return c
}

func (c *Colors) field(key string) *string {
	switch key {
	case "primary":
		return &c.Primary
	case "secondary":
		return &c.Secondary
	case "accent":
		return &c.Accent
	case "background":
		return &c.Background
	case "sidebar":
		return &c.Sidebar
	case "text":
		return &c.Text
	case "textSecondary":
		return &c.TextSecondary
	case "border":
		return &c.Border
	default:
		return nil
	}
}
