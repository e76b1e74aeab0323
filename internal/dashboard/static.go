package dashboard

import (
	"fmt"
	"log/slog"
	"mime"
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/labstack/echo/v4"

	"github.com/jmylchreest/dashbrand/internal/theme"
)

// cleanAssetName normalizes a request path below /static/. The result never
// contains "..", so joining it to a directory cannot leave that directory.
func cleanAssetName(name string) string {
	return path.Clean("/" + name)[1:]
}

// contentType guesses the MIME type of name from its extension.
func contentType(name string) string {
	if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
		return ct
	}
	return echo.MIMEOctetStream
}

// ResolveOverride returns the file in overrideDir that serves the asset
// name, or "" if there is no such regular file.
func ResolveOverride(overrideDir, name string) string {
	if overrideDir == "" {
		return ""
	}
	name = cleanAssetName(name)
	if name == "" {
		return ""
	}

	candidate := filepath.Join(overrideDir, filepath.FromSlash(name))
	info, err := os.Stat(candidate)
	if err != nil || !info.Mode().IsRegular() {
		return ""
	}
	return candidate
}

// openFile opens override files; replaced in tests.
var openFile = os.Open

// staticHandler serves /static/* from overrideDir, falling back to the
// embedded assets. An override that cannot be read is skipped.
func staticHandler(overrideDir func() string, logger *slog.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		name := cleanAssetName(c.Param("*"))
		if name == "" {
			return echo.ErrNotFound
		}

		if file := ResolveOverride(overrideDir(), name); file != "" {
			f, info, err := openOverride(file)
			if err == nil {
				defer f.Close()
				res := c.Response()
				res.Header().Set(echo.HeaderContentType, contentType(name))
				res.Header().Set("Cache-Control", "no-cache")
				http.ServeContent(res, c.Request(), info.Name(), info.ModTime(), f)
				return nil
			}
			logger.Warn("failed to read static override, using bundled asset", "file", file, "error", err)
		}

		data, ok := theme.GetEmbeddedAsset(name)
		if !ok {
			return echo.ErrNotFound
		}
		return c.Blob(http.StatusOK, contentType(name), data)
	}
}

func openOverride(file string) (*os.File, os.FileInfo, error) {
	f, err := openFile(file)
	if err != nil {
		return nil, nil, err
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}
	if !info.Mode().IsRegular() {
		_ = f.Close()
		return nil, nil, fmt.Errorf("%s is not a regular file", file)
	}
	return f, info, nil
}
