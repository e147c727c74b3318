package tui

import (
	"log/slog"

	"github.com/goliatone/go-ongkit/pkg/forms"
	"github.com/goliatone/go-ongkit/pkg/validation"
)

// Theme captures optional prefixes the collector adds to driver messages.
type Theme struct {
	InfoPrefix  string
	ErrorPrefix string
}

// Option configures a Collector.
type Option func(*Collector)

// WithPromptDriver overrides the prompt driver.
func WithPromptDriver(driver PromptDriver) Option {
	return func(c *Collector) {
		if driver != nil {
			c.driver = driver
		}
	}
}

// WithEngine sets the validation engine used between prompts.
func WithEngine(engine *validation.Engine) Option {
	return func(c *Collector) {
		if engine != nil {
			c.engine = engine
		}
	}
}

// WithMessages sets the catalog used to describe failures.
func WithMessages(catalog *validation.Catalog) Option {
	return func(c *Collector) {
		if catalog != nil {
			c.messages = catalog
		}
	}
}

// WithLocale selects the message locale.
func WithLocale(locale string) Option {
	return func(c *Collector) {
		if locale != "" {
			c.locale = locale
		}
	}
}

// WithLogger attaches a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Collector) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(c *Collector) {
		c.theme = theme
	}
}

// WithMaxAttempts bounds how often a single field is prompted. Zero means no
// limit.
func WithMaxAttempts(n int) Option {
	return func(c *Collector) {
		if n >= 0 {
			c.maxAttempts = n
		}
	}
}

// WithCollectOptions forwards options to forms.Collect when the submission is
// assembled.
func WithCollectOptions(options ...forms.CollectOption) Option {
	return func(c *Collector) {
		c.collectOptions = append(c.collectOptions, options...)
	}
}
