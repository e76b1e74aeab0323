package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/dashbrand/internal/branding"
)

var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Check a branding file",
	Long: `Check that a branding file can be read, names a project and uses hex
colors. Without a path, the branding file of the current project is checked.

Exits non-zero if the file is invalid.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	var path string
	if len(args) > 0 {
		path = args[0]
	} else {
		dir := kittifyDir()
		if dir == "" {
			return fmt.Errorf("%w: no %s directory found", branding.ErrNotFound, branding.DirName)
		}
		found, ok := branding.FindFile(dir)
		if !ok {
			return fmt.Errorf("%w: no branding file in %s", branding.ErrNotFound, dir)
		}
		path = found
	}

	if err := branding.Validate(path); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s is valid\n", path)
	return nil
}
