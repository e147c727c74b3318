package ongkit

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/url"

	"github.com/goliatone/go-ongkit/pkg/forms"
	"github.com/goliatone/go-ongkit/pkg/site"
	"github.com/goliatone/go-ongkit/pkg/template"
	"github.com/goliatone/go-ongkit/pkg/tui"
	"github.com/goliatone/go-ongkit/pkg/validation"
)

// Field aliases validation.Field for callers that only import the root package.
type Field = validation.Field

// Result aliases validation.Result.
type Result = validation.Result

// FormVerdict aliases validation.FormVerdict.
type FormVerdict = validation.FormVerdict

// Submission aliases forms.Submission.
type Submission = forms.Submission

// Option configures a Kit.
type Option func(*Kit)

// WithLogger attaches a structured logger shared by every component.
func WithLogger(logger *slog.Logger) Option {
	return func(k *Kit) {
		if logger != nil {
			k.logger = logger
		}
	}
}

// WithLocale selects the language used for validation messages.
func WithLocale(locale string) Option {
	return func(k *Kit) {
		if locale != "" {
			k.locale = locale
		}
	}
}

// WithEngine overrides the validation engine.
func WithEngine(engine *validation.Engine) Option {
	return func(k *Kit) {
		if engine != nil {
			k.engine = engine
		}
	}
}

// WithMessages overrides the message catalog.
func WithMessages(catalog *validation.Catalog) Option {
	return func(k *Kit) {
		if catalog != nil {
			k.messages = catalog
		}
	}
}

// WithForms overrides the form catalog.
func WithForms(catalog *forms.Catalog) Option {
	return func(k *Kit) {
		if catalog != nil {
			k.forms = catalog
		}
	}
}

// WithTemplates overrides the fragment registry.
func WithTemplates(registry *template.Registry) Option {
	return func(k *Kit) {
		if registry != nil {
			k.templates = registry
		}
	}
}

// Kit is the assembled toolkit.
type Kit struct {
	logger    *slog.Logger
	locale    string
	engine    *validation.Engine
	messages  *validation.Catalog
	forms     *forms.Catalog
	templates *template.Registry
}

// New builds a Kit with the embedded forms and templates unless overridden.
func New(options ...Option) *Kit {
	k := &Kit{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		locale: validation.DefaultLocale,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(k)
	}
	if k.engine == nil {
		k.engine = validation.NewEngine()
	}
	if k.messages == nil {
		k.messages = validation.NewCatalog()
	}
	if k.forms == nil {
		k.forms = forms.Defaults()
	}
	if k.templates == nil {
		k.templates = template.Defaults(template.WithLogger(k.logger))
	}
	return k
}

// Logger returns the logger shared by the kit's components.
func (k *Kit) Logger() *slog.Logger { return k.logger }

// Locale returns the locale used to translate validation messages.
func (k *Kit) Locale() string { return k.locale }

// Engine returns the validation engine used by Submit and the collector.
func (k *Kit) Engine() *validation.Engine { return k.engine }

// Messages returns the catalog that turns message keys into text.
func (k *Kit) Messages() *validation.Catalog { return k.messages }

// Forms returns the catalog of form definitions.
func (k *Kit) Forms() *forms.Catalog { return k.forms }

// Templates returns the fragment registry used by Render and SiteBuilder.
func (k *Kit) Templates() *template.Registry { return k.templates }

// LoadTemplates adds every .tmpl file in fsys to the registry, replacing
// built-ins with the same name.
func (k *Kit) LoadTemplates(fsys fs.FS) error {
	if err := k.templates.LoadFS(fsys); err != nil {
		return fmt.Errorf("ongkit: load templates: %w", err)
	}
	return nil
}

// Render compiles the named fragment against data.
func (k *Kit) Render(name string, data any) string {
	return k.templates.Render(name, data)
}

// Describe translates a result into the configured locale.
func (k *Kit) Describe(res Result) string {
	return k.messages.Describe(k.locale, res)
}

// Submit collects values for the form id and validates them.
func (k *Kit) Submit(formID string, values url.Values, options ...forms.CollectOption) (Submission, FormVerdict, error) {
	form, err := k.forms.Form(formID)
	if err != nil {
		return Submission{}, FormVerdict{}, err
	}
	sub := forms.Collect(form, values, options...)
	verdict := form.Validate(k.engine, sub)

	level := slog.LevelInfo
	if !verdict.Valid {
		level = slog.LevelWarn
	}
	k.logger.Log(context.Background(), level, "submission validated",
		slog.String("form", form.ID),
		slog.String("submission", sub.ID),
		slog.Bool("valid", verdict.Valid),
	)
	return sub, verdict, nil
}

// Collector returns an interactive collector sharing the kit's engine,
// messages, locale and logger.
func (k *Kit) Collector(options ...tui.Option) *tui.Collector {
	base := []tui.Option{
		tui.WithEngine(k.engine),
		tui.WithMessages(k.messages),
		tui.WithLocale(k.locale),
		tui.WithLogger(k.logger),
	}
	return tui.NewCollector(append(base, options...)...)
}

// SiteBuilder returns a page builder using the kit's fragment registry.
func (k *Kit) SiteBuilder(options ...site.Option) (*site.Builder, error) {
	base := []site.Option{
		site.WithRegistry(k.templates),
		site.WithLogger(k.logger),
		site.WithLang(k.locale),
	}
	return site.NewBuilder(append(base, options...)...)
}
