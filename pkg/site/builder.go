package site

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-ongkit/pkg/template"
)

// Option configures a Builder.
type Option func(*config)

type config struct {
	registry *template.Registry
	layouts  fs.FS
	layout   string
	lang     string
	now      func() time.Time
	logger   *slog.Logger
}

// WithRegistry sets the fragment registry used for cards.
func WithRegistry(registry *template.Registry) Option {
	return func(cfg *config) {
		if registry != nil {
			cfg.registry = registry
		}
	}
}

// WithLayoutFS loads the page layout named layout from fsys instead of the
// embedded one.
func WithLayoutFS(fsys fs.FS, layout string) Option {
	return func(cfg *config) {
		if fsys != nil {
			cfg.layouts = fsys
		}
		if trimmed := strings.TrimSpace(layout); trimmed != "" {
			cfg.layout = trimmed
		}
	}
}

// WithLang sets the document language attribute.
func WithLang(lang string) Option {
	return func(cfg *config) {
		if lang != "" {
			cfg.lang = lang
		}
	}
}

// WithClock overrides the time source used for the footer year.
func WithClock(now func() time.Time) Option {
	return func(cfg *config) {
		if now != nil {
			cfg.now = now
		}
	}
}

// WithLogger attaches a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// Builder renders Content into a single HTML page.
type Builder struct {
	registry *template.Registry
	layout   *pongo2.Template
	name     string
	lang     string
	now      func() time.Time
	logger   *slog.Logger
}

// NewBuilder parses the layout up front so Build only executes it.
func NewBuilder(options ...Option) (*Builder, error) {
	cfg := &config{
		layouts: LayoutsFS(),
		layout:  DefaultLayout,
		lang:    "pt-BR",
		now:     time.Now,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}
	if cfg.registry == nil {
		cfg.registry = template.Defaults(template.WithLogger(cfg.logger))
	}

	if _, err := fs.Stat(cfg.layouts, cfg.layout); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrLayoutMissing, cfg.layout)
		}
		return nil, fmt.Errorf("site: stat layout %s: %w", cfg.layout, err)
	}

	set := pongo2.NewSet("ongkit-site", pongo2.NewFSLoader(cfg.layouts))
	layout, err := set.FromFile(cfg.layout)
	if err != nil {
		return nil, fmt.Errorf("site: load layout %q: %w", cfg.layout, err)
	}

	return &Builder{
		registry: cfg.registry,
		layout:   layout,
		name:     cfg.layout,
		lang:     cfg.lang,
		now:      cfg.now,
		logger:   cfg.logger,
	}, nil
}

// Build renders every card and executes the layout.
func (b *Builder) Build(ctx context.Context, content Content) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	content = content.normalise()

	projects, err := b.fragments(template.ProjectCard, len(content.Projects), func(i int) any {
		return content.Projects[i]
	})
	if err != nil {
		return nil, err
	}
	about, err := b.fragments(template.AboutCard, len(content.About), func(i int) any {
		return content.About[i]
	})
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out, err := b.layout.ExecuteBytes(pongo2.Context{
		"lang": b.lang,
		"year": b.now().Year(),
		"site": map[string]any{
			"name":    content.Site.Name,
			"tagline": content.Site.Tagline,
		},
		"projects": projects,
		"about":    about,
	})
	if err != nil {
		return nil, fmt.Errorf("site: execute layout %q: %w", b.name, err)
	}

	b.logger.Info("site built",
		slog.Int("projects", len(projects)),
		slog.Int("about", len(about)),
		slog.Int("bytes", len(out)),
	)
	return out, nil
}

// WriteFile builds the page and writes it as index.html inside dir, creating
// dir when needed. It returns the written path.
func (b *Builder) WriteFile(ctx context.Context, content Content, dir string) (string, error) {
	page, err := b.Build(ctx, content)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("site: create %s: %w", dir, err)
	}
	path := filepath.Join(dir, "index.html")
	if err := os.WriteFile(path, page, 0o644); err != nil {
		return "", fmt.Errorf("site: write %s: %w", path, err)
	}
	b.logger.Info("site written", slog.String("path", path))
	return path, nil
}

func (b *Builder) fragments(name string, n int, item func(int) any) ([]string, error) {
	if n == 0 {
		return nil, nil
	}
	if !b.registry.Has(name) {
		return nil, fmt.Errorf("%w: %s", ErrFragmentMissing, name)
	}
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = b.registry.Render(name, item(i))
	}
	return out, nil
}
