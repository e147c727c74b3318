package template

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path"
	"sort"
	"strings"
	"sync"
)

// Extension is the file suffix LoadFS registers.
const Extension = ".tmpl"

// Option configures a Registry.
type Option func(*Registry)

// WithLogger routes "template not found" reports to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// Registry maps template names to template strings. Registering a name again
// replaces the previous string. A Registry is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	templates map[string]string
	logger    *slog.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry(options ...Option) *Registry {
	r := &Registry{
		templates: make(map[string]string),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// Defaults creates a registry preloaded with the embedded site templates.
func Defaults(options ...Option) *Registry {
	r := NewRegistry(options...)
	if err := r.LoadFS(TemplatesFS()); err != nil {
		// The embed directive guarantees the directory exists.
		panic(err)
	}
	return r
}

// Register stores tpl under name. Template syntax is not checked here;
// malformed markers surface as literal text when rendering.
func (r *Registry) Register(name, tpl string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.templates[name] = tpl
}

// Lookup returns the raw template registered under name.
func (r *Registry) Lookup(name string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tpl, ok := r.templates[name]
	return tpl, ok
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.Lookup(name)
	return ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.templates))
	for name := range r.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render compiles the named template against data. Unknown names render as
// "" and are reported to the logger.
func (r *Registry) Render(name string, data any) string {
	tpl, ok := r.Lookup(name)
	if !ok {
		r.logger.Warn("template not found", slog.String("template", name))
		return ""
	}
	return Compile(tpl, data)
}

// RenderEach renders the named template once per item and concatenates the
// output.
func (r *Registry) RenderEach(name string, items []any) string {
	tpl, ok := r.Lookup(name)
	if !ok {
		r.logger.Warn("template not found", slog.String("template", name))
		return ""
	}
	var out strings.Builder
	for _, item := range items {
		out.WriteString(Compile(tpl, item))
	}
	return out.String()
}

// LoadFS registers every *.tmpl file in fsys under its base name without the
// extension. Later files overwrite earlier ones with the same name.
func (r *Registry) LoadFS(fsys fs.FS) error {
	if fsys == nil {
		return nil
	}
	return fs.WalkDir(fsys, ".", func(p string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || path.Ext(p) != Extension {
			return nil
		}
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("template: read %s: %w", p, err)
		}
		r.Register(strings.TrimSuffix(path.Base(p), Extension), string(data))
		return nil
	})
}
