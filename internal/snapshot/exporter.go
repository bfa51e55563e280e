// Package snapshot exports the site's collections to static JSON files and
// serves them back through an http.RoundTripper so the site can run without
// a live API.
package snapshot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/boisserenc/atelier/internal/catalog"
)

// Task exports one collection.
type Task struct {
	Name string
	load func(ctx context.Context, c catalog.Catalog) (any, int, error)
}

// NewTask builds a task that writes the slice returned by list.
func NewTask[T any](name string, list func(catalog.Catalog, context.Context) ([]T, error)) Task {
	return Task{
		Name: name,
		load: func(ctx context.Context, c catalog.Catalog) (any, int, error) {
			items, err := list(c, ctx)
			if err != nil {
				return nil, 0, err
			}
			if items == nil {
				items = []T{}
			}
			return items, len(items), nil
		},
	}
}

// DefaultTasks returns the collections served by the REST API.
func DefaultTasks() []Task {
	return []Task{
		NewTask("blog", catalog.Catalog.ListBlogPosts),
		NewTask("stoves", catalog.Catalog.ListStoveProjects),
		NewTask("stoves-featured", catalog.Catalog.ListFeaturedStoveProjects),
		NewTask("testimonials", catalog.Catalog.ListTestimonials),
	}
}

// Result reports the outcome of one task. Err is nil on success.
type Result struct {
	Name  string
	Path  string
	Count int
	Err   error
}

// Exporter writes every task's collection under <dir>/api/.
type Exporter struct {
	source catalog.Catalog
	dir    string
	tasks  []Task
	logger *slog.Logger
}

// ExporterOption configures an Exporter.
type ExporterOption func(*Exporter)

// WithTasks replaces DefaultTasks.
func WithTasks(tasks ...Task) ExporterOption {
	return func(e *Exporter) { e.tasks = tasks }
}

// WithLogger sets the logger used for progress and failures.
func WithLogger(logger *slog.Logger) ExporterOption {
	return func(e *Exporter) { e.logger = logger }
}

// NewExporter creates an Exporter reading from source and writing to dir.
func NewExporter(source catalog.Catalog, dir string, opts ...ExporterOption) *Exporter {
	e := &Exporter{
		source: source,
		dir:    dir,
		tasks:  DefaultTasks(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run executes every task in order. A failing task does not stop the others;
// its file is replaced by an empty array when possible and its Result carries
// the error.
func (e *Exporter) Run(ctx context.Context) []Result {
	results := make([]Result, 0, len(e.tasks))
	for _, task := range e.tasks {
		res := e.runTask(ctx, task)
		if res.Err != nil {
			e.logger.Warn("export failed", "collection", res.Name, "path", res.Path, "error", res.Err)
			if err := writeFile(res.Path, []byte("[]\n")); err != nil {
				e.logger.Warn("write placeholder", "collection", res.Name, "error", err)
			}
		} else {
			e.logger.Info("exported", "collection", res.Name, "count", res.Count, "path", res.Path)
		}
		results = append(results, res)
	}
	return results
}

func (e *Exporter) runTask(ctx context.Context, task Task) Result {
	res := Result{
		Name: task.Name,
		Path: filepath.Join(e.dir, filepath.FromSlash(FilePath(task.Name))),
	}
	if err := ctx.Err(); err != nil {
		res.Err = err
		return res
	}

	data, count, err := task.load(ctx, e.source)
	if err != nil {
		res.Err = fmt.Errorf("load %s: %w", task.Name, err)
		return res
	}

	body, err := encode(data)
	if err != nil {
		res.Err = fmt.Errorf("encode %s: %w", task.Name, err)
		return res
	}
	if err := writeFile(res.Path, body); err != nil {
		res.Err = err
		return res
	}
	res.Count = count
	return res
}

// encode renders data as two-space indented JSON without HTML escaping.
func encode(data any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeFile(path string, body []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create export directory: %w", err)
	}
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Failed returns the names of the tasks that failed, in run order.
func Failed(results []Result) []string {
	var names []string
	for _, r := range results {
		if r.Err != nil {
			names = append(names, r.Name)
		}
	}
	return names
}
