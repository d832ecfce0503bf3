// Package export writes the whole site to a directory for static hosting.
package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"vado.sa/internal/animation"
	"vado.sa/internal/render"
	"vado.sa/internal/services"
)

// maxWorkers bounds concurrent page writes
const maxWorkers = 4

// Exporter renders every page and asset into an output directory.
// It holds no per-run state, so concurrent Exports are safe.
type Exporter struct {
	projects *services.ProjectService
	pages    *services.PageService
	renderer *render.Renderer
	assetDir string
	logger   *zap.Logger
}

// New creates an Exporter. Files under assetDir/images are copied to
// images/ in the output; an empty assetDir skips them.
func New(projects *services.ProjectService, pages *services.PageService, renderer *render.Renderer, assetDir string, logger *zap.Logger) *Exporter {
	return &Exporter{projects: projects, pages: pages, renderer: renderer, assetDir: assetDir, logger: logger}
}

// job writes one file relative to the output directory
type job struct {
	path  string
	write func(*bytes.Buffer) error
}

// Export writes the site under dir and returns the relative paths written,
// sorted. The first failure cancels the remaining jobs.
func (e *Exporter) Export(ctx context.Context, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	jobs, err := e.jobs()
	if err != nil {
		return nil, err
	}

	var (
		mu      sync.Mutex
		written = make([]string, 0, len(jobs))
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxWorkers)
	for _, j := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := e.run(dir, j); err != nil {
				return err
			}
			mu.Lock()
			written = append(written, filepath.ToSlash(j.path))
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Strings(written)
	return written, nil
}

func (e *Exporter) jobs() ([]job, error) {
	jobs := []job{
		{path: "index.html", write: func(b *bytes.Buffer) error {
			return e.renderer.Home(b, e.pages.Home(services.ContactState{}))
		}},
		{path: "404.html", write: func(b *bytes.Buffer) error {
			return e.renderer.NotFound(b, e.pages.NotFound())
		}},
		{path: filepath.Join("api", "projects.json"), write: jsonJob(e.projects.GetAll())},
		{path: filepath.Join("api", "animations.json"), write: jsonJob(animation.Export())},
	}

	for _, p := range e.projects.GetAll() {
		page, ok := e.pages.Project(p.Slug)
		if !ok {
			return nil, fmt.Errorf("project %q vanished from the catalog", p.Slug)
		}
		jobs = append(jobs,
			job{path: filepath.Join("projects", p.Slug, "index.html"), write: func(b *bytes.Buffer) error {
				return e.renderer.Project(b, page)
			}},
			job{path: filepath.Join("api", "projects", p.Slug+".json"), write: jsonJob(p)},
		)
	}

	static, err := copyJobs(render.Static(), "static")
	if err != nil {
		return nil, fmt.Errorf("walk static assets: %w", err)
	}
	jobs = append(jobs, static...)

	if e.assetDir != "" {
		images := filepath.Join(e.assetDir, "images")
		if _, err := os.Stat(images); err != nil {
			e.logger.Warn("no images exported", zap.String("dir", images), zap.Error(err))
			return jobs, nil
		}
		imageJobs, err := copyJobs(os.DirFS(images), "images")
		if err != nil {
			return nil, fmt.Errorf("walk images: %w", err)
		}
		jobs = append(jobs, imageJobs...)
	}
	return jobs, nil
}

// copyJobs copies every file of fsys under prefix
func copyJobs(fsys fs.FS, prefix string) ([]job, error) {
	var jobs []job
	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		jobs = append(jobs, job{path: filepath.Join(prefix, filepath.FromSlash(path)), write: func(b *bytes.Buffer) error {
			data, err := fs.ReadFile(fsys, path)
			if err != nil {
				return err
			}
			_, err = b.Write(data)
			return err
		}})
		return nil
	})
	return jobs, err
}

func (e *Exporter) run(dir string, j job) error {
	var buf bytes.Buffer
	if err := j.write(&buf); err != nil {
		return fmt.Errorf("render %s: %w", j.path, err)
	}

	path := filepath.Join(dir, j.path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", j.path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", j.path, err)
	}

	e.logger.Debug("wrote file", zap.String("path", j.path), zap.Int("bytes", buf.Len()))
	return nil
}

func jsonJob(v any) func(*bytes.Buffer) error {
	return func(b *bytes.Buffer) error {
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		_, err = b.Write(data)
		return err
	}
}
