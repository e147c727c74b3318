package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	ongkit "github.com/goliatone/go-ongkit"
	"github.com/goliatone/go-ongkit/internal/config"
	"github.com/goliatone/go-ongkit/internal/logger"
	"github.com/goliatone/go-ongkit/pkg/forms"
	"github.com/goliatone/go-ongkit/pkg/site"
	"github.com/goliatone/go-ongkit/pkg/tui"
)

const (
	exitOK      = 0
	exitInvalid = 1
	exitError   = 2
)

const usage = `usage: ongkit <command> [flags]

commands:
  validate   -form <id> -data <file>     validate a submission file
  render     -template <name> -data <file>  render a fragment
  register   -form <id>                  fill a form interactively
  build      [-content <file>] [-out <dir>]  write the static page
  templates                              list registered templates
  forms                                  list declared forms
`

// app carries the settings shared by every subcommand.
type app struct {
	stdout io.Writer
	stderr io.Writer
	cfg    config.Config
	logger *slog.Logger
	kit    *ongkit.Kit
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 || args[0] == "-h" || args[0] == "--help" || args[0] == "help" {
		fmt.Fprint(stderr, usage)
		if len(args) == 0 {
			return exitError
		}
		return exitOK
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "ongkit: %v\n", err)
		return exitError
	}
	a := &app{stdout: stdout, stderr: stderr, cfg: cfg}

	var cmd func(context.Context, []string) (int, error)
	switch args[0] {
	case "validate":
		cmd = a.validate
	case "render":
		cmd = a.render
	case "register":
		cmd = a.register
	case "build":
		cmd = a.build
	case "templates":
		cmd = a.templates
	case "forms":
		cmd = a.forms
	default:
		fmt.Fprintf(stderr, "ongkit: unknown command %q\n\n%s", args[0], usage)
		return exitError
	}

	code, err := cmd(ctx, args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintf(stderr, "ongkit %s: %v\n", args[0], err)
		if code == exitOK {
			code = exitError
		}
	}
	return code
}

// flags returns a flag set pre-populated with the shared settings.
func (a *app) flags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	fs.StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&a.cfg.LogFormat, "log-format", a.cfg.LogFormat, "log format (text, json)")
	fs.StringVar(&a.cfg.Locale, "locale", a.cfg.Locale, "message locale")
	fs.StringVar(&a.cfg.TemplatesDir, "templates-dir", a.cfg.TemplatesDir, "directory with extra .tmpl fragments")
	fs.StringVar(&a.cfg.FormsDir, "forms-dir", a.cfg.FormsDir, "directory with extra form definitions")
	return fs
}

// setup builds the logger and kit once flags are parsed.
func (a *app) setup() error {
	level, err := logger.ParseLevel(a.cfg.LogLevel)
	if err != nil {
		return err
	}
	format, err := logger.ParseFormat(a.cfg.LogFormat)
	if err != nil {
		return err
	}
	a.logger = logger.New(
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(a.stderr),
	)

	catalog := forms.Defaults()
	if a.cfg.FormsDir != "" {
		extra, err := forms.LoadFS(os.DirFS(a.cfg.FormsDir))
		if err != nil {
			return err
		}
		catalog.Merge(extra)
	}

	a.kit = ongkit.New(
		ongkit.WithLogger(a.logger),
		ongkit.WithLocale(a.cfg.Locale),
		ongkit.WithForms(catalog),
	)
	if a.cfg.TemplatesDir != "" {
		if err := a.kit.LoadTemplates(os.DirFS(a.cfg.TemplatesDir)); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) validate(_ context.Context, args []string) (int, error) {
	fs := a.flags("validate")
	formID := fs.String("form", forms.VolunteerForm, "form id")
	dataPath := fs.String("data", "", "submission file (YAML or JSON)")
	asJSON := fs.Bool("json", false, "print the verdict as JSON")
	if err := fs.Parse(args); err != nil {
		return exitError, err
	}
	if *dataPath == "" {
		return exitError, errors.New("-data is required")
	}
	if err := a.setup(); err != nil {
		return exitError, err
	}

	raw, err := os.ReadFile(filepath.Clean(*dataPath))
	if err != nil {
		return exitError, fmt.Errorf("read %s: %w", *dataPath, err)
	}
	values, err := forms.ValuesFromYAML(raw)
	if err != nil {
		return exitError, fmt.Errorf("%s: %w", *dataPath, err)
	}

	sub, verdict, err := a.kit.Submit(*formID, values)
	if err != nil {
		return exitError, err
	}

	if *asJSON {
		if err := writeJSON(a.stdout, verdict); err != nil {
			return exitError, err
		}
	} else {
		a.printVerdict(*formID, verdict, sub)
	}
	if !verdict.Valid {
		return exitInvalid, nil
	}
	return exitOK, nil
}

func (a *app) printVerdict(formID string, verdict ongkit.FormVerdict, sub ongkit.Submission) {
	form, _ := a.kit.Forms().Form(formID)
	for _, spec := range form.Fields {
		res, ok := verdict.Fields[spec.Name]
		if !ok {
			continue
		}
		mark := "✓"
		if !res.Valid {
			mark = "✗"
		}
		fmt.Fprintf(a.stdout, "%s %s: %s\n", mark, spec.Name, a.kit.Describe(res))
	}
	for _, group := range form.Groups {
		res, ok := verdict.Groups[group.Group]
		if !ok || res.Valid {
			continue
		}
		fmt.Fprintf(a.stdout, "✗ %s: %s\n", group.Group, a.kit.Describe(res))
	}

	stats := forms.ComputeStats(form, sub)
	status := "valid"
	if !verdict.Valid {
		status = "invalid"
	}
	fmt.Fprintf(a.stdout, "%s (%d/%d fields, %d%%)\n", status, stats.FilledFields, stats.TotalFields, stats.CompletionRate)
}

func (a *app) render(_ context.Context, args []string) (int, error) {
	fs := a.flags("render")
	name := fs.String("template", "", "template name")
	dataPath := fs.String("data", "", "context file (YAML or JSON)")
	if err := fs.Parse(args); err != nil {
		return exitError, err
	}
	if *name == "" {
		return exitError, errors.New("-template is required")
	}
	if err := a.setup(); err != nil {
		return exitError, err
	}
	if !a.kit.Templates().Has(*name) {
		return exitError, fmt.Errorf("template %q not registered", *name)
	}

	var data any
	if *dataPath != "" {
		var err error
		if data, err = readDataFile(*dataPath); err != nil {
			return exitError, err
		}
	}
	fmt.Fprintln(a.stdout, a.kit.Render(*name, data))
	return exitOK, nil
}

func (a *app) register(ctx context.Context, args []string) (int, error) {
	fs := a.flags("register")
	formID := fs.String("form", forms.VolunteerForm, "form id")
	if err := fs.Parse(args); err != nil {
		return exitError, err
	}
	if err := a.setup(); err != nil {
		return exitError, err
	}

	form, err := a.kit.Forms().Form(*formID)
	if err != nil {
		return exitError, err
	}
	sub, err := a.kit.Collector(tui.WithPromptDriver(tui.NewSurveyDriver(a.stderr))).Collect(ctx, form)
	if err != nil {
		if errors.Is(err, tui.ErrAborted) {
			fmt.Fprintln(a.stderr, "aborted")
			return exitInvalid, nil
		}
		return exitError, err
	}
	if err := writeJSON(a.stdout, sub.Record()); err != nil {
		return exitError, err
	}
	return exitOK, nil
}

func (a *app) build(ctx context.Context, args []string) (int, error) {
	fs := a.flags("build")
	contentPath := fs.String("content", "", "content file (embedded sample when empty)")
	out := fs.String("out", a.cfg.OutputDir, "output directory")
	if err := fs.Parse(args); err != nil {
		return exitError, err
	}
	if err := a.setup(); err != nil {
		return exitError, err
	}

	content := site.DefaultContent()
	if *contentPath != "" {
		var err error
		if content, err = site.LoadContentFile(*contentPath); err != nil {
			return exitError, err
		}
	}

	builder, err := a.kit.SiteBuilder()
	if err != nil {
		return exitError, err
	}
	path, err := builder.WriteFile(ctx, content, *out)
	if err != nil {
		return exitError, err
	}
	fmt.Fprintln(a.stdout, path)
	return exitOK, nil
}

func (a *app) templates(_ context.Context, args []string) (int, error) {
	fs := a.flags("templates")
	if err := fs.Parse(args); err != nil {
		return exitError, err
	}
	if err := a.setup(); err != nil {
		return exitError, err
	}
	for _, name := range a.kit.Templates().Names() {
		fmt.Fprintln(a.stdout, name)
	}
	return exitOK, nil
}

func (a *app) forms(_ context.Context, args []string) (int, error) {
	fs := a.flags("forms")
	if err := fs.Parse(args); err != nil {
		return exitError, err
	}
	if err := a.setup(); err != nil {
		return exitError, err
	}
	for _, id := range a.kit.Forms().IDs() {
		form, _ := a.kit.Forms().Form(id)
		fmt.Fprintf(a.stdout, "%s\t%s\t%d fields\n", id, form.Title, len(form.Fields))
	}
	return exitOK, nil
}

func readDataFile(path string) (any, error) {
	raw, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var data any
	if strings.TrimSpace(string(raw)) == "" {
		return map[string]any{}, nil
	}
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return data, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
