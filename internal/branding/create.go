package branding

import (
	"errors"
	"log/slog"
)

// CreateOptions holds the optional overrides for a new branding file.
// Empty fields keep their defaults.
type CreateOptions struct {
	ShortName      string
	WelcomeMessage string
	LogoPath       string
	FaviconPath    string
	Colors         map[string]string
	FooterText     *string
	FooterLink     *string
}

// New builds a branding from the defaults, the project name and opts.
func New(projectName string, opts CreateOptions) (*Branding, error) {
	if projectName == "" {
		return nil, errors.New("project name is required")
	}

	b := Default()
	b.ProjectName = projectName
	if opts.ShortName != "" {
		b.ShortName = opts.ShortName
	}
	if opts.WelcomeMessage != "" {
		b.WelcomeMessage = opts.WelcomeMessage
	}
	if opts.LogoPath != "" {
		b.LogoPath = opts.LogoPath
	}
	if opts.FaviconPath != "" {
		b.FaviconPath = opts.FaviconPath
	}
	for key, value := range opts.Colors {
		if err := b.Colors.Set(key, value); err != nil {
			return nil, err
		}
	}
	if opts.FooterText != nil {
		b.Footer.Text = *opts.FooterText
	}
	if opts.FooterLink != nil {
		b.Footer.Link = *opts.FooterLink
	}

	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// Create writes a new branding file to path and returns what was written.
func Create(path, projectName string, opts CreateOptions) (*Branding, error) {
	b, err := New(projectName, opts)
	if err != nil {
		return nil, err
	}
	if err := b.Save(path); err != nil {
		return nil, err
	}
	slog.Info("created branding configuration", "path", path)
	return b, nil
}
