package template

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCompile(t *testing.T) {
	cases := []struct {
		name string
		tpl  string
		data any
		want string
	}{
		{
			name: "scalar",
			tpl:  "Hello {{name}}",
			data: map[string]any{"name": "Ana"},
			want: "Hello Ana",
		},
		{
			name: "missing scalar stays verbatim",
			tpl:  "Hello {{name}}",
			data: map[string]any{},
			want: "Hello {{name}}",
		},
		{
			name: "nil data keeps markers",
			tpl:  "Hello {{ name }}",
			data: nil,
			want: "Hello {{ name }}",
		},
		{
			name: "marker whitespace is trimmed",
			tpl:  "Hello {{ name }}",
			data: map[string]any{"name": "Ana"},
			want: "Hello Ana",
		},
		{
			name: "each block",
			tpl:  "{{#each items}}[{{this}}]{{/each}}",
			data: map[string]any{"items": []int{1, 2, 3}},
			want: "[1][2][3]",
		},
		{
			name: "each empty list",
			tpl:  "{{#each items}}[{{this}}]{{/each}}",
			data: map[string]any{"items": []int{}},
			want: "",
		},
		{
			name: "each over non list",
			tpl:  "{{#each items}}[{{this}}]{{/each}}",
			data: map[string]any{"items": "notAnArray"},
			want: "",
		},
		{
			name: "each over missing path",
			tpl:  "a{{#each items}}[{{this}}]{{/each}}b",
			data: map[string]any{},
			want: "ab",
		},
		{
			name: "each with nested path and scalars around",
			tpl:  "<h2>{{title}}</h2><ul>{{#each stats.list}}<li>{{this}}</li>{{/each}}</ul>",
			data: map[string]any{"title": "Metas", "stats": map[string]any{"list": []string{"a", "b"}}},
			want: "<h2>Metas</h2><ul><li>a</li><li>b</li></ul>",
		},
		{
			name: "two blocks",
			tpl:  "{{#each a}}{{this}}{{/each}}-{{#each b}}{{this}}{{/each}}",
			data: map[string]any{"a": []string{"x", "y"}, "b": []bool{true, false}},
			want: "xy-truefalse",
		},
		{
			name: "falsy values substitute",
			tpl:  "{{zero}}|{{empty}}|{{no}}",
			data: map[string]any{"zero": 0, "empty": "", "no": false},
			want: "0||false",
		},
		{
			name: "null intermediate is unresolved",
			tpl:  "{{user.name}}",
			data: map[string]any{"user": nil},
			want: "{{user.name}}",
		},
		{
			name: "scalar intermediate is unresolved",
			tpl:  "{{user.name}}",
			data: map[string]any{"user": "ana"},
			want: "{{user.name}}",
		},
		{
			name: "null leaf renders empty",
			tpl:  "[{{user}}]",
			data: map[string]any{"user": nil},
			want: "[]",
		},
		{
			name: "nested path and list index",
			tpl:  "{{endereco.cidade}} {{tags.1}}",
			data: map[string]any{"endereco": map[string]any{"cidade": "Recife"}, "tags": []string{"a", "b"}},
			want: "Recife b",
		},
		{
			name: "numbers use shortest form",
			tpl:  "{{supporters}} {{ratio}}",
			data: map[string]any{"supporters": 150, "ratio": 1.5},
			want: "150 1.5",
		},
		{
			name: "list and object scalars",
			tpl:  "{{list}} {{obj}}",
			data: map[string]any{"list": []any{1, "a", nil}, "obj": map[string]any{"k": "v"}},
			want: `1,a, {"k":"v"}`,
		},
		{
			name: "unterminated block is left as text",
			tpl:  "{{#each items}}[{{this}}]",
			data: map[string]any{"items": []int{1}},
			want: "{{#each items}}[{{this}}]",
		},
		{
			name: "nested each closes at first end tag",
			tpl:  "{{#each outer}}<{{#each inner}}{{this}}{{/each}}>{{/each}}",
			data: map[string]any{"outer": []string{"o"}},
			want: "<{{#each inner}}o>{{/each}}",
		},
		{
			name: "element text is not read as a marker",
			tpl:  "{{#each items}}[{{this}}]{{/each}}",
			data: map[string]any{"items": []string{"{{secret}}", "{{this}}"}, "secret": "LEAK"},
			want: "[{{secret}}][{{this}}]",
		},
		{
			name: "scalars inside a block body resolve",
			tpl:  "{{#each items}}{{prefix}}{{this}};{{/each}}",
			data: map[string]any{"items": []string{"a", "b"}, "prefix": "#", "this": "wrong"},
			want: "#a;#b;",
		},
		{
			name: "scalar value is not read as a marker",
			tpl:  "{{name}}",
			data: map[string]any{"name": "{{secret}}", "secret": "LEAK"},
			want: "{{secret}}",
		},
		{
			name: "html is not escaped",
			tpl:  "<p>{{content}}</p>",
			data: map[string]any{"content": "<b>A & B</b>"},
			want: "<p><b>A & B</b></p>",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Compile(tc.tpl, tc.data); got != tc.want {
				t.Fatalf("Compile() mismatch\nwant: %q\n got: %q", tc.want, got)
			}
		})
	}
}

type project struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Achievements []string `json:"achievements"`
	Supporters   int      `json:"supporters"`
}

func TestCompile_StructContext(t *testing.T) {
	data := project{ID: "saude-acao", Title: "Saúde em Ação", Achievements: []string{"vacinas"}, Supporters: 67}
	got := Compile("{{id}}:{{title}}:{{#each achievements}}{{this}};{{/each}}{{supporters}}", data)
	want := "saude-acao:Saúde em Ação:vacinas;67"
	if got != want {
		t.Fatalf("Compile() mismatch\nwant: %q\n got: %q", want, got)
	}
}

func TestBlocksExpandBeforeInterpolation(t *testing.T) {
	ctx := Normalize(map[string]any{"items": []string{"x"}, "this": "wrong"})

	expanded := ExpandBlocks("{{#each items}}{{this}}{{/each}}", ctx)
	if expanded != "x" {
		t.Fatalf("expected block expansion to consume {{this}}, got %q", expanded)
	}
	if got := Interpolate(expanded, ctx); got != "x" {
		t.Fatalf("expected interpolation to leave expanded text alone, got %q", got)
	}

	// Running the passes the other way round lets the scalar pass see {{this}}.
	reversed := ExpandBlocks(Interpolate("{{#each items}}{{this}}{{/each}}", ctx), ctx)
	if reversed == "x" {
		t.Fatalf("expected reversed pass order to differ")
	}
}

func TestLookup(t *testing.T) {
	ctx := Normalize(map[string]any{
		"a": map[string]any{"b": []any{map[string]any{"c": "deep"}}},
	})
	if v, ok := Lookup(ctx, "a.b.0.c"); !ok || v != "deep" {
		t.Fatalf("expected deep lookup, got %v (ok=%v)", v, ok)
	}
	for _, path := range []string{"", "a..b", "a.b.1.c", "a.b.-1", "a.b.x", "missing"} {
		if _, ok := Lookup(ctx, path); ok {
			t.Fatalf("expected %q to be unresolved", path)
		}
	}
}

func TestNormalize_Unencodable(t *testing.T) {
	got := Normalize(map[string]any{
		"name": "Ana",
		"fn":   func() {},
		"nan":  math.NaN(),
		"list": []any{"a", make(chan int), 1},
		"nested": map[string]any{
			"ok": true,
			"ch": make(chan int),
		},
	})
	want := map[string]any{
		"name":   "Ana",
		"list":   []any{"a", nil, json.Number("1")},
		"nested": map[string]any{"ok": true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Normalize() mismatch (-want +got):\n%s", diff)
	}

	rendered := Compile("{{name}} {{fn}} {{nan}} {{nested.ok}}", map[string]any{
		"name":   "Ana",
		"fn":     func() {},
		"nan":    math.Inf(1),
		"nested": map[string]any{"ok": true},
	})
	if want := "Ana {{fn}} {{nan}} true"; rendered != want {
		t.Fatalf("Compile() mismatch\nwant: %q\n got: %q", want, rendered)
	}

	if got := Normalize(func() {}); got != nil {
		t.Fatalf("expected nil for an unencodable root, got %v", got)
	}
}
