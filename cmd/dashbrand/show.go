package main

import (
	"github.com/spf13/cobra"

	"github.com/jmylchreest/dashbrand/internal/branding"
	"github.com/jmylchreest/dashbrand/internal/output"
)

var showOpts struct {
	format  string
	noColor bool
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective branding",
	Long: `Print the branding the dashboard would use, with defaults filled in for
any field the branding file leaves out.

Examples:
  dashbrand show
  dashbrand show --format json`,
	Args: cobra.NoArgs,
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().StringVarP(&showOpts.format, "format", "f", "plain",
		"Output format (plain, json, yaml, css)")
	showCmd.Flags().BoolVar(&showOpts.noColor, "no-color", false,
		"Disable color swatches in plain output")
}

func runShow(cmd *cobra.Command, args []string) error {
	b, path := branding.Resolve(kittifyDir())

	formatter, err := output.NewFormatter(output.FormatType(showOpts.format), output.FormatterOptions{
		Source:  path,
		NoColor: showOpts.noColor,
	})
	if err != nil {
		return err
	}
	return formatter.Format(cmd.OutOrStdout(), b)
}
