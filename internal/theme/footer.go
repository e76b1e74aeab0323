package theme

import (
	"html"
	"log/slog"
	"net/url"
	"strings"

	"github.com/jmylchreest/dashbrand/internal/branding"
)

const footerClass = "custom-footer"

const footerStyle = `
    <style>
        .custom-footer {
            background: var(--creamy-white);
            padding: 20px;
            text-align: center;
            color: var(--medium-text);
            font-size: 0.9em;
            border-top: 2px solid var(--light-gray);
            margin-top: auto;
        }
        .custom-footer a {
            color: var(--grassy-green);
            text-decoration: none;
        }
        .custom-footer a:hover {
            text-decoration: underline;
        }
    </style>
    `

// FooterHTML renders the footer style and element. The text is wrapped in a
// link when footer.Link is a safe URL.
func FooterHTML(footer branding.Footer) string {
	text := sanitizeText(footer.Text)

	var content string
	if link, ok := safeLink(footer.Link); ok {
		content = `<div class="` + footerClass + `"><a href="` + html.EscapeString(link) + `" target="_blank">` + text + `</a></div>`
	} else {
		content = `<div class="` + footerClass + `">` + text + `</div>`
	}
	return footerStyle + content
}

// HasFooter reports whether page already carries a branded footer.
func HasFooter(page string) bool {
	return strings.Contains(page, `class="`+footerClass+`"`)
}

// safeLink accepts relative URLs and http, https and mailto links.
func safeLink(link string) (string, bool) {
	link = strings.TrimSpace(link)
	if link == "" {
		return "", false
	}

	u, err := url.Parse(link)
	if err != nil {
		slog.Warn("ignoring unparseable footer link", "link", link, "error", err)
		return "", false
	}
	switch strings.ToLower(u.Scheme) {
	case "", "http", "https", "mailto":
		return link, true
	default:
		slog.Warn("ignoring footer link with unsupported scheme", "link", link, "scheme", u.Scheme)
		return "", false
	}
}
