package dashboard

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/oklog/ulid/v2"

	"github.com/jmylchreest/dashbrand/internal/theme"
)

// DefaultShutdownTimeout bounds how long Start waits for in-flight requests.
const DefaultShutdownTimeout = 5 * time.Second

// ThemeProvider supplies the current theme. *theme.Loader implements it.
type ThemeProvider interface {
	GetTheme() *theme.Theme
}

// ThemeProviderFunc adapts a function to the ThemeProvider interface.
type ThemeProviderFunc func() *theme.Theme

// GetTheme calls f().
func (f ThemeProviderFunc) GetTheme() *theme.Theme {
	return f()
}

// Options configures a Server.
type Options struct {
	Renderer        *Renderer
	Themes          ThemeProvider
	OverrideDir     func() string // Static override directory; nil or "" disables overrides
	Logger          *slog.Logger
	ShutdownTimeout time.Duration
}

// Server serves the branded dashboard.
type Server struct {
	echo            *echo.Echo
	renderer        *Renderer
	themes          ThemeProvider
	logger          *slog.Logger
	shutdownTimeout time.Duration
}

// NewServer creates a server and registers its routes.
func NewServer(opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Themes == nil {
		def := theme.NewDefaultTheme()
		opts.Themes = ThemeProviderFunc(func() *theme.Theme { return def })
	}
	if opts.Renderer == nil {
		themes := opts.Themes
		opts.Renderer = NewRenderer(nil, theme.DecoratorFunc(func(page string) string {
			return themes.GetTheme().Decorate(page)
		}))
	}
	if opts.OverrideDir == nil {
		opts.OverrideDir = func() string { return "" }
	}
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = DefaultShutdownTimeout
	}

	s := &Server{
		echo:            echo.New(),
		renderer:        opts.Renderer,
		themes:          opts.Themes,
		logger:          opts.Logger,
		shutdownTimeout: opts.ShutdownTimeout,
	}

	e := s.echo
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return ulid.Make().String() },
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"id", v.RequestID,
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
			}
			if v.Error != nil {
				s.logger.Warn("request failed", append(attrs, "error", v.Error)...)
				return nil
			}
			s.logger.Debug("request", attrs...)
			return nil
		},
	}))

	e.GET("/", s.handleDashboard)
	e.GET("/static/*", staticHandler(opts.OverrideDir, opts.Logger))
	e.GET("/api/branding", s.handleBranding)
	e.GET("/api/branding/css", s.handleBrandingCSS)
	e.GET("/healthz", s.handleHealth)

	return s
}

// Handler returns the HTTP handler for the server.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start listens on addr and serves until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.echo.Listener = ln
	s.logger.Info("dashboard listening", "addr", ln.Addr().String())

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.echo.Start("")
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	s.logger.Info("shutting down dashboard")
	if err := s.echo.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) handleDashboard(c echo.Context) error {
	page, err := s.renderer.Render()
	if err != nil {
		s.logger.Error("failed to render dashboard", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to render dashboard")
	}
	return c.HTML(http.StatusOK, page)
}

func (s *Server) handleBranding(c echo.Context) error {
	return c.JSON(http.StatusOK, s.themes.GetTheme().Branding)
}

func (s *Server) handleBrandingCSS(c echo.Context) error {
	return c.Blob(http.StatusOK, "text/css; charset=utf-8", []byte(s.themes.GetTheme().CSS))
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
