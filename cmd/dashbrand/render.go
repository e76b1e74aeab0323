package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/dashbrand/internal/dashboard"
	"github.com/jmylchreest/dashbrand/internal/theme"
)

var renderOpts struct {
	html   string
	output string
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Write the branded dashboard page",
	Long: `Apply the project branding to a dashboard page and write the result.

Examples:
  # Brand the bundled page
  dashbrand render > dashboard.html

  # Brand an existing page in place
  dashbrand render --html dashboard.html --output dashboard.html`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVar(&renderOpts.html, "html", "",
		"Dashboard page to brand (default: bundled page)")
	renderCmd.Flags().StringVarP(&renderOpts.output, "output", "o", "",
		"Write to file instead of stdout")
}

func runRender(cmd *cobra.Command, args []string) error {
	source := dashboard.EmbeddedSource()
	if renderOpts.html != "" {
		source = dashboard.FileSource(renderOpts.html)
	}

	page, err := dashboard.NewRenderer(source, theme.LoadTheme(kittifyDir())).Render()
	if err != nil {
		return err
	}

	if renderOpts.output == "" {
		_, err = fmt.Fprint(cmd.OutOrStdout(), page)
		return err
	}
	if err := os.WriteFile(renderOpts.output, []byte(page), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", renderOpts.output, err)
	}
	logger.Info("wrote branded dashboard", "path", renderOpts.output)
	return nil
}
