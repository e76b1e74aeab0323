package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/dashbrand/internal/dashboard"
	"github.com/jmylchreest/dashbrand/internal/theme"
)

var serveOpts struct {
	addr  string
	html  string
	watch bool
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the branded dashboard",
	Long: `Serve the dashboard with the project branding applied.

Static files are looked up in .kittify/static/ before the bundled assets.
With --watch (the default), edits to the branding file are picked up
without a restart.

Examples:
  # Serve on the default address
  dashbrand serve

  # Brand a page rendered elsewhere
  dashbrand serve --html ./dashboard.html --addr :8080`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveOpts.addr, "addr", "",
		"Listen address (default from config: 127.0.0.1:9237)")
	serveCmd.Flags().StringVar(&serveOpts.html, "html", "",
		"Pre-rendered dashboard page to brand (default: bundled page)")
	serveCmd.Flags().BoolVar(&serveOpts.watch, "watch", true,
		"Reload branding when the file changes")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loader := theme.NewLoader(kittifyDir(), logger)
	loader.SetPollInterval(cfg.Branding.PollInterval.Duration())
	t := loader.Load()

	watch := cfg.Branding.Watch
	if cmd.Flags().Changed("watch") {
		watch = serveOpts.watch
	}
	if watch {
		if err := loader.StartHotReload(ctx); err != nil {
			logger.Warn("hot-reload unavailable", "error", err)
		}
		defer loader.StopHotReload()
	}

	source := dashboard.EmbeddedSource()
	htmlPath := cfg.Server.HTMLPath
	if serveOpts.html != "" {
		htmlPath = serveOpts.html
	}
	if htmlPath != "" {
		source = dashboard.FileSource(htmlPath)
	}

	addr := cfg.Server.Addr
	if serveOpts.addr != "" {
		addr = serveOpts.addr
	}

	srv := dashboard.NewServer(dashboard.Options{
		Renderer:        dashboard.NewRenderer(source, loader),
		Themes:          loader,
		OverrideDir:     loader.OverrideDir,
		Logger:          logger,
		ShutdownTimeout: cfg.Server.ShutdownTimeout.Duration(),
	})

	fmt.Fprintf(cmd.ErrOrStderr(), "Serving %s dashboard on http://%s\n", t.Branding.ProjectName, addr)
	return srv.Start(ctx, addr)
}
