package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/dashbrand/internal/branding"
	"github.com/jmylchreest/dashbrand/internal/theme"
)

var initOpts struct {
	projectName string
	shortName   string
	welcome     string
	logo        string
	favicon     string
	colors      []string
	footerText  string
	footerLink  string
	format      string
	force       bool
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a branding file for the current project",
	Long: `Create .kittify/branding.json with the given project name. Fields that
are not set keep the Spec Kitty defaults. The static override directory
.kittify/static/ is created alongside it.

Examples:
  dashbrand init --project-name "Acme Platform"

  dashbrand init --project-name Acme --short-name AC \
    --color primary=#1E3A8A --color accent=#F59E0B \
    --footer-text "Acme Inc." --footer-link https://acme.example`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringVar(&initOpts.projectName, "project-name", "",
		"Project name (required)")
	initCmd.Flags().StringVar(&initOpts.shortName, "short-name", "",
		"Short name shown in the header")
	initCmd.Flags().StringVar(&initOpts.welcome, "welcome", "",
		"Welcome message")
	initCmd.Flags().StringVar(&initOpts.logo, "logo", "",
		"Logo URL path (e.g. /static/logo.png)")
	initCmd.Flags().StringVar(&initOpts.favicon, "favicon", "",
		"Favicon URL path")
	initCmd.Flags().StringArrayVar(&initOpts.colors, "color", nil,
		"Color override as key=#hex (repeatable; keys: "+strings.Join(branding.ColorKeys, ", ")+")")
	initCmd.Flags().StringVar(&initOpts.footerText, "footer-text", "",
		"Footer text (empty disables the footer)")
	initCmd.Flags().StringVar(&initOpts.footerLink, "footer-link", "",
		"Footer link URL")
	initCmd.Flags().StringVarP(&initOpts.format, "format", "f", "json",
		"File format (json, yaml, toml)")
	initCmd.Flags().BoolVar(&initOpts.force, "force", false,
		"Overwrite an existing branding file")

	_ = initCmd.MarkFlagRequired("project-name")
}

func runInit(cmd *cobra.Command, args []string) error {
	format, err := branding.ParseFormat(initOpts.format)
	if err != nil {
		return err
	}

	colors, err := parseColors(initOpts.colors)
	if err != nil {
		return err
	}

	dir := kittifyDir()
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		dir = filepath.Join(wd, branding.DirName)
	}

	if existing, ok := branding.FindFile(dir); ok && !initOpts.force {
		return fmt.Errorf("branding file already exists: %s (use --force to overwrite)", existing)
	}

	opts := branding.CreateOptions{
		ShortName:      initOpts.shortName,
		WelcomeMessage: initOpts.welcome,
		LogoPath:       initOpts.logo,
		FaviconPath:    initOpts.favicon,
		Colors:         colors,
	}
	if cmd.Flags().Changed("footer-text") {
		opts.FooterText = &initOpts.footerText
	}
	if cmd.Flags().Changed("footer-link") {
		opts.FooterLink = &initOpts.footerLink
	}

	path := filepath.Join(dir, "branding."+string(format))
	if _, err := branding.Create(path, initOpts.projectName, opts); err != nil {
		return err
	}
	if initOpts.force {
		if err := branding.RemoveAlternates(dir, path); err != nil {
			return err
		}
	}
	if err := theme.CreateOverrideDir(dir); err != nil {
		return fmt.Errorf("failed to create static directory: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
	fmt.Fprintf(cmd.OutOrStdout(), "Place custom assets in %s\n", theme.OverrideDir(dir))
	return nil
}

// parseColors converts key=value pairs into a color map.
func parseColors(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	colors := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid color %q: expected key=#hex", pair)
		}
		colors[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return colors, nil
}
