package template

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
)

func TestRegistry_RenderMissingTemplate(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	reg := NewRegistry(WithLogger(logger))

	if got := reg.Render("missing-template", map[string]any{}); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
	if !strings.Contains(buf.String(), "template not found") || !strings.Contains(buf.String(), "template=missing-template") {
		t.Fatalf("expected not found report, got %q", buf.String())
	}
}

func TestRegistry_RegisterOverwrites(t *testing.T) {
	reg := NewRegistry()
	reg.Register("greeting", "Olá {{name}}")
	reg.Register("greeting", "Hello {{name}}")

	if got := reg.Render("greeting", map[string]any{"name": "Ana"}); got != "Hello Ana" {
		t.Fatalf("expected overwritten template, got %q", got)
	}
	if got := reg.Render("greeting", map[string]any{}); got != "Hello {{name}}" {
		t.Fatalf("expected unresolved marker, got %q", got)
	}
	if diff := cmp.Diff([]string{"greeting"}, reg.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistry_RenderEach(t *testing.T) {
	reg := NewRegistry()
	reg.Register("item", "<li>{{name}}</li>")

	got := reg.RenderEach("item", []any{
		map[string]any{"name": "a"},
		map[string]any{"name": "b"},
	})
	if got != "<li>a</li><li>b</li>" {
		t.Fatalf("unexpected output %q", got)
	}
	if got := reg.RenderEach("nope", []any{1}); got != "" {
		t.Fatalf("expected empty output for missing template, got %q", got)
	}
}

func TestRegistry_LoadFS(t *testing.T) {
	fsys := fstest.MapFS{
		"cards/banner.tmpl": {Data: []byte("<h1>{{title}}</h1>")},
		"footer.tmpl":       {Data: []byte("<footer>{{year}}</footer>")},
		"README.md":         {Data: []byte("ignored")},
	}
	reg := NewRegistry()
	if err := reg.LoadFS(fsys); err != nil {
		t.Fatalf("load fs: %v", err)
	}

	if diff := cmp.Diff([]string{"banner", "footer"}, reg.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	if got := reg.Render("footer", map[string]any{"year": 2024}); got != "<footer>2024</footer>" {
		t.Fatalf("unexpected footer %q", got)
	}
}

func TestDefaults(t *testing.T) {
	reg := Defaults()
	want := []string{AboutCard, ProjectCard, ValidationFeedback, VolunteerItem}
	if diff := cmp.Diff(want, reg.Names()); diff != "" {
		t.Fatalf("default names mismatch (-want +got):\n%s", diff)
	}

	out := reg.Render(ProjectCard, map[string]any{
		"id":           "educacao-todos",
		"title":        "Educação para Todos",
		"category":     "Educação",
		"badgeClass":   "badge-primary",
		"image":        "img/projetos-sociais.jpg",
		"altText":      "Crianças estudando",
		"description":  "Reforço escolar.",
		"achievements": []string{"15 polos educacionais", "85% de aprovação escolar"},
		"supporters":   150,
	})

	for _, fragment := range []string{
		`data-project-id="educacao-todos"`,
		`<h2>Educação para Todos</h2>`,
		`<li>15 polos educacionais</li>`,
		`<li>85% de aprovação escolar</li>`,
		`150 apoiadores`,
	} {
		if !strings.Contains(out, fragment) {
			t.Fatalf("expected %q in output:\n%s", fragment, out)
		}
	}
	if strings.Contains(out, "{{") {
		t.Fatalf("expected every marker to resolve:\n%s", out)
	}
}

func TestRegistry_ConcurrentUse(t *testing.T) {
	reg := NewRegistry()
	reg.Register("base", "{{n}}")

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := fmt.Sprintf("t%d", i)
			reg.Register(name, "{{n}}-"+name)
			if got := reg.Render("base", map[string]any{"n": i}); got != fmt.Sprint(i) {
				t.Errorf("unexpected render %q", got)
			}
		}(i)
	}
	wg.Wait()

	if len(reg.Names()) != 17 {
		t.Fatalf("expected 17 templates, got %d", len(reg.Names()))
	}
}
