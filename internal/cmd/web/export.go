package web

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/aichenitrkl/chapterweb/internal/content"
	"github.com/aichenitrkl/chapterweb/internal/platform/timeouts"
	"github.com/aichenitrkl/chapterweb/internal/services/web"
	"github.com/aichenitrkl/chapterweb/internal/services/web/modules"
	"github.com/aichenitrkl/chapterweb/internal/services/web/routepath"
	"github.com/aichenitrkl/chapterweb/internal/services/web/static"
)

// notFoundProbe is requested to capture the rendered 404 page.
const notFoundProbe = "/__export-not-found__"

// ExportResult lists what an export wrote.
type ExportResult struct {
	Pages  []string
	Assets int
}

// ExportPaths returns every route a static export renders: the fixed pages
// followed by each canonical article route.
func ExportPaths(catalog *content.Catalog) []string {
	paths := modules.PagePaths()
	if catalog == nil {
		return paths
	}
	for _, post := range catalog.Posts {
		if slug := post.Slug(); slug != "" {
			paths = append(paths, routepath.BlogPost(slug))
		}
	}
	return paths
}

// Export renders the site into cfg.ExportDir as a tree of index.html files a
// static host can serve, plus 404.html and the static assets.
func Export(ctx context.Context, cfg Config, logger *log.Logger) (ExportResult, error) {
	if logger == nil {
		logger = log.Default()
	}
	if err := cfg.Validate(); err != nil {
		return ExportResult{}, err
	}
	outDir := strings.TrimSpace(cfg.ExportDir)
	if outDir == "" {
		return ExportResult{}, fmt.Errorf("export dir is required")
	}
	store, err := NewStore(cfg)
	if err != nil {
		return ExportResult{}, err
	}
	handler, err := web.NewHandler(ServerConfig(cfg, store, logger))
	if err != nil {
		return ExportResult{}, fmt.Errorf("compose web handler: %w", err)
	}

	var result ExportResult
	for _, route := range ExportPaths(store.Catalog()) {
		page, err := renderRoute(ctx, handler, route, http.StatusOK)
		if err != nil {
			return result, err
		}
		target, err := pageFile(outDir, route)
		if err != nil {
			return result, err
		}
		if err := writeFile(target, page); err != nil {
			return result, err
		}
		result.Pages = append(result.Pages, route)
		logger.Printf("export page path=%s file=%s bytes=%d", route, target, len(page))
	}

	notFound, err := renderRoute(ctx, handler, notFoundProbe, http.StatusNotFound)
	if err != nil {
		return result, err
	}
	if err := writeFile(filepath.Join(outDir, "404.html"), notFound); err != nil {
		return result, err
	}

	assets, err := copyStatic(static.FS, filepath.Join(outDir, strings.Trim(routepath.StaticPrefix, "/")))
	if err != nil {
		return result, err
	}
	result.Assets = assets
	logger.Printf("export done dir=%s pages=%d assets=%d", outDir, len(result.Pages), assets)
	return result, nil
}

func renderRoute(ctx context.Context, handler http.Handler, route string, wantStatus int) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, timeouts.Export)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, route, nil)
	if err != nil {
		return nil, fmt.Errorf("build request %s: %w", route, err)
	}
	rec := newResponseBuffer()
	handler.ServeHTTP(rec, req)
	if rec.status != wantStatus {
		return nil, fmt.Errorf("render %s: status %d, want %d", route, rec.status, wantStatus)
	}
	return rec.body.Bytes(), nil
}

// pageFile maps a route onto <out>/<route>/index.html.
func pageFile(outDir, route string) (string, error) {
	decoded, err := url.PathUnescape(route)
	if err != nil {
		return "", fmt.Errorf("route %q: %w", route, err)
	}
	parts := []string{outDir}
	if trimmed := strings.Trim(decoded, "/"); trimmed != "" {
		for _, segment := range strings.Split(trimmed, "/") {
			if segment == "" || segment == "." || segment == ".." || strings.ContainsRune(segment, '\\') {
				return "", fmt.Errorf("route %q does not map to a safe file path", route)
			}
			parts = append(parts, segment)
		}
	}
	return filepath.Join(append(parts, "index.html")...), nil
}

func writeFile(target string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("create dir for %s: %w", target, err)
	}
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", target, err)
	}
	return nil
}

func copyStatic(files fs.FS, dest string) (int, error) {
	count := 0
	err := fs.WalkDir(files, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		data, err := fs.ReadFile(files, name)
		if err != nil {
			return fmt.Errorf("read asset %s: %w", name, err)
		}
		if err := writeFile(filepath.Join(dest, filepath.FromSlash(name)), data); err != nil {
			return err
		}
		count++
		return nil
	})
	if err != nil {
		return count, fmt.Errorf("copy static assets: %w", err)
	}
	return count, nil
}

// responseBuffer collects a handler response in memory.
type responseBuffer struct {
	header http.Header
	body   bytes.Buffer
	status int
}

func newResponseBuffer() *responseBuffer {
	return &responseBuffer{header: http.Header{}}
}

func (b *responseBuffer) Header() http.Header { return b.header }

func (b *responseBuffer) WriteHeader(status int) {
	if b.status == 0 {
		b.status = status
	}
}

func (b *responseBuffer) Write(p []byte) (int, error) {
	if b.status == 0 {
		b.status = http.StatusOK
	}
	return b.body.Write(p)
}
