package tui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"

	"github.com/goliatone/go-ongkit/pkg/forms"
	"github.com/goliatone/go-ongkit/pkg/validation"
)

// Collector walks a form field by field, prompting until each answer passes
// validation, and assembles the final submission.
type Collector struct {
	driver         PromptDriver
	engine         *validation.Engine
	messages       *validation.Catalog
	locale         string
	logger         *slog.Logger
	theme          Theme
	maxAttempts    int
	collectOptions []forms.CollectOption
}

// NewCollector builds a collector that prompts on the terminal unless a
// driver is supplied.
func NewCollector(options ...Option) *Collector {
	c := &Collector{
		engine:   validation.NewEngine(),
		messages: validation.NewCatalog(),
		locale:   validation.DefaultLocale,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		theme:    Theme{ErrorPrefix: "✗ "},
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	if c.driver == nil {
		c.driver = NewSurveyDriver(nil)
	}
	return c
}

// Collect prompts for every field of form and returns the sanitised
// submission.
func (c *Collector) Collect(ctx context.Context, form forms.Form) (forms.Submission, error) {
	if form.Title != "" {
		if err := c.driver.Info(ctx, c.theme.InfoPrefix+form.Title); err != nil {
			return forms.Submission{}, err
		}
	}

	values := make(url.Values, len(form.Fields))
	for _, spec := range form.Fields {
		answer, err := c.collectField(ctx, form, spec)
		if err != nil {
			return forms.Submission{}, fmt.Errorf("tui: field %s: %w", spec.Name, err)
		}
		if len(answer) > 0 {
			values[spec.Name] = answer
		}
	}

	sub := forms.Collect(form, values, c.collectOptions...)
	c.logger.Info("submission collected",
		slog.String("form", form.ID),
		slog.String("submission", sub.ID),
		slog.Int("fields", len(sub.Values)),
	)
	return sub, nil
}

func (c *Collector) collectField(ctx context.Context, form forms.Form, spec forms.FieldSpec) ([]string, error) {
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		answer, err := c.prompt(ctx, spec)
		if err != nil {
			return nil, err
		}

		res := c.check(form, spec, answer)
		if res.Valid {
			return answer, nil
		}

		c.logger.Debug("field rejected",
			slog.String("field", spec.Name),
			slog.String("rule", res.Rule),
			slog.Int("attempt", attempt),
		)
		if err := c.driver.Info(ctx, c.theme.ErrorPrefix+c.messages.Describe(c.locale, res)); err != nil {
			return nil, err
		}
		if c.maxAttempts > 0 && attempt >= c.maxAttempts {
			return nil, ErrTooManyAttempts
		}
	}
}

func (c *Collector) prompt(ctx context.Context, spec forms.FieldSpec) ([]string, error) {
	message := spec.Label
	if spec.Required {
		message += " *"
	}
	help := spec.Help
	if help == "" {
		help = spec.Placeholder
	}

	if spec.Type != validation.FieldTypeCheckbox {
		value, err := c.driver.Input(ctx, InputConfig{Message: message, Help: help})
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(value) == "" {
			return nil, nil
		}
		return []string{value}, nil
	}

	if len(spec.Options) == 0 {
		ok, err := c.driver.Confirm(ctx, ConfirmConfig{Message: message, Help: help})
		if err != nil || !ok {
			return nil, err
		}
		return []string{"on"}, nil
	}

	labels := make([]string, len(spec.Options))
	for i, opt := range spec.Options {
		labels[i] = opt.Label
		if labels[i] == "" {
			labels[i] = opt.Value
		}
	}
	picked, err := c.driver.MultiSelect(ctx, SelectConfig{Message: message, Options: labels, Help: help})
	if err != nil {
		return nil, err
	}
	var out []string
	for _, idx := range picked {
		if idx >= 0 && idx < len(spec.Options) {
			out = append(out, spec.Options[idx].Value)
		}
	}
	return out, nil
}

// check validates one answer in isolation, including the group constraint
// declared for the field, if any.
func (c *Collector) check(form forms.Form, spec forms.FieldSpec, answer []string) validation.Result {
	single := forms.Form{ID: form.ID, Fields: []forms.FieldSpec{spec}}
	if group, ok := form.Group(spec.Name); ok {
		single.Groups = []validation.GroupConstraint{group}
	}

	sub := forms.Collect(single, url.Values{spec.Name: answer}, c.collectOptions...)
	verdict := single.Validate(c.engine, sub)
	if res, ok := verdict.Fields[spec.Name]; ok && !res.Valid {
		return res
	}
	if res, ok := verdict.Groups[spec.Name]; ok && !res.Valid {
		return res
	}
	return validation.Pass()
}
