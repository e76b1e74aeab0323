package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/dashbrand/internal/theme"
)

var staticOpts struct {
	bundled bool
}

var staticCmd = &cobra.Command{
	Use:   "static",
	Short: "List static asset overrides",
	Long: `List the files in .kittify/static/. These are served in place of the
bundled assets with the same name.`,
	Args: cobra.NoArgs,
	RunE: runStatic,
}

func init() {
	rootCmd.AddCommand(staticCmd)

	staticCmd.Flags().BoolVar(&staticOpts.bundled, "bundled", false,
		"Also list the bundled assets")
}

func runStatic(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	dir := kittifyDir()

	assets, err := theme.ListOverrides(dir)
	if err != nil {
		return fmt.Errorf("failed to list overrides: %w", err)
	}

	if len(assets) == 0 {
		if dir == "" {
			fmt.Fprintln(out, "No .kittify directory found")
		} else {
			fmt.Fprintf(out, "No overrides in %s\n", theme.OverrideDir(dir))
		}
	} else {
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tSIZE\tMODIFIED\t")
		for _, a := range assets {
			note := ""
			if a.Overrides {
				note = "overrides bundled"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", a.Name, humanize.Bytes(uint64(a.Size)), humanize.Time(a.ModTime), note)
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}

	if staticOpts.bundled {
		fmt.Fprintln(out, "\nBundled:")
		for _, name := range theme.ListEmbeddedAssets() {
			data, _ := theme.GetEmbeddedAsset(name)
			fmt.Fprintf(out, "  %s (%s)\n", name, humanize.Bytes(uint64(len(data))))
		}
	}
	return nil
}
