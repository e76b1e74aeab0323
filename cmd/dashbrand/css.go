package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/dashbrand/internal/theme"
)

var cssCmd = &cobra.Command{
	Use:   "css",
	Short: "Print the CSS variables for the project branding",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprint(cmd.OutOrStdout(), theme.LoadTheme(kittifyDir()).CSS)
		return err
	},
}

func init() {
	rootCmd.AddCommand(cssCmd)
}
