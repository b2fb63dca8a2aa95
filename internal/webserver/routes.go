package webserver

import (
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"strings"

	"github.com/promptsweep/sweepctl/internal/webapi"
	"github.com/promptsweep/sweepctl/web"
)

// registerRoutes sets up API and static page routes on the given mux.
func registerRoutes(mux *http.ServeMux, cfg Config) error {
	webapi.RegisterRoutes(mux, cfg.Project, cfg.Source)

	// Legacy health path kept for probes configured against the old
	// service.
	h := webapi.NewHandlers(cfg.Project, cfg.Source)
	mux.HandleFunc("GET /health", h.HandleHealth)

	// Static page with index fallback for client-side state.
	handler, err := pageHandler(cfg.StaticDir)
	if err != nil {
		return fmt.Errorf("failed to initialize page handler: %w", err)
	}
	mux.Handle("/", handler)
	return nil
}

// pageHandler serves the sweep page assets. A nonempty staticDir overrides
// the embedded build. Non-existent paths are served index.html so a reload
// mid-flow lands back on the page.
func pageHandler(staticDir string) (http.Handler, error) {
	var assets fs.FS
	if staticDir != "" {
		if _, err := os.Stat(staticDir); err != nil {
			return nil, fmt.Errorf("static dir %s: %w", staticDir, err)
		}
		assets = os.DirFS(staticDir)
	} else {
		sub, err := fs.Sub(web.Assets, "dist")
		if err != nil {
			return nil, fmt.Errorf("failed to create sub filesystem for web/dist: %w", err)
		}
		assets = sub
	}

	fileServer := http.FileServer(http.FS(assets))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		// Try to serve the file directly.
		if path != "/" {
			cleanPath := strings.TrimPrefix(path, "/")
			if f, err := assets.Open(cleanPath); err == nil {
				f.Close() //nolint:errcheck
				fileServer.ServeHTTP(w, r)
				return
			}
		}

		// Fallback: serve index.html.
		r.URL.Path = "/"
		fileServer.ServeHTTP(w, r)
	}), nil
}
