package theme

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/jmylchreest/dashbrand/internal/branding"
)

// Markup in the stock dashboard page that branding replaces.
const (
	stockTitle   = `<title>Spec Kitty Dashboard</title>`
	stockFavicon = `href="/static/spec-kitty.png">`
	stockLogo    = `src="/static/spec-kitty.png" alt="Spec Kitty logo"`
	stockHeader  = `<h1>Spec Kitty</h1>`
	stockWelcome = `<h2>Welcome to Spec Kitty!</h2>`
	closingBody  = `</body>`
)

// stockCSS is the palette block of the stock dashboard page, whitespace included.
const stockCSS = `        :root {
            --baby-blue: #A7C7E7;
            --grassy-green: #7BB661;
            --lavender: #C9A0DC;
            --sunny-yellow: #FFF275;
            --soft-peach: #FFD8B1;
            --light-gray: #E8E8E8;
            --creamy-white: #FFFDF7;
            --dark-text: #2c3e50;
            --medium-text: #546e7a;
        }`

var textPolicy = bluemonday.StrictPolicy()

// Decorator transforms a rendered dashboard page.
type Decorator interface {
	Decorate(html string) string
}

// DecoratorFunc adapts a function to the Decorator interface.
type DecoratorFunc func(html string) string

// Decorate calls f(html).
func (f DecoratorFunc) Decorate(html string) string {
	return f(html)
}

// Substitution is a single literal find/replace.
type Substitution struct {
	Old string
	New string
}

// Substitutions returns the ordered literal replacements for b.
// Text values are stripped of markup and attribute values are escaped.
func Substitutions(b *branding.Branding) []Substitution {
	projectName := sanitizeText(b.ProjectName)

	return []Substitution{
		{stockTitle, "<title>" + projectName + " Dashboard</title>"},
		{stockFavicon, `href="` + html.EscapeString(b.FaviconPath) + `">`},
		{stockLogo, `src="` + html.EscapeString(b.LogoPath) + `" alt="` + projectName + ` logo"`},
		{stockHeader, "<h1>" + sanitizeText(b.ShortName) + "</h1>"},
		{stockWelcome, "<h2>" + sanitizeText(b.WelcomeMessage) + "</h2>"},
		{stockCSS, CSSVariables(b)},
	}
}

// Apply brands a rendered dashboard page. Substitutions whose target is
// absent are skipped, and the footer is added only once, so applying the
// same branding twice yields the same page as applying it once.
func Apply(page string, b *branding.Branding) string {
	if b == nil {
		b = branding.Default()
	}

	for _, s := range Substitutions(b) {
		page = strings.ReplaceAll(page, s.Old, s.New)
	}

	if b.Footer.Text != "" && !HasFooter(page) {
		page = insertBeforeClosingBody(page, FooterHTML(b.Footer))
	}
	return page
}

func insertBeforeClosingBody(page, fragment string) string {
	idx := strings.LastIndex(page, closingBody)
	if idx < 0 {
		return page
	}
	return page[:idx] + fragment + page[idx:]
}

func sanitizeText(s string) string {
	return textPolicy.Sanitize(s)
}
