package template

import (
	"regexp"
	"strings"
)

var (
	blockPattern  = regexp.MustCompile(`\{\{#each ([^}]+)\}\}([\s\S]*?)\{\{/each\}\}`)
	markerPattern = regexp.MustCompile(`\{\{([^}]+)\}\}`)
)

const thisMarker = "{{this}}"

// Compile renders tpl against data. Data is normalised with Normalize first,
// so structs, typed maps and slices behave like their JSON forms.
//
// Template text is interpolated before list elements are spliced in, so
// element text that looks like a marker is emitted as is.
func Compile(tpl string, data any) string {
	ctx := Normalize(data)
	return render(tpl, ctx, func(s string) string { return Interpolate(s, ctx) })
}

// ExpandBlocks replaces every {{#each path}}body{{/each}} span. The body is
// repeated once per list element with each literal {{this}} replaced by the
// element's string form. Paths that do not resolve to a list expand to "".
// ctx must already be normalised.
func ExpandBlocks(tpl string, ctx any) string {
	return render(tpl, ctx, func(s string) string { return s })
}

// render expands blocks and passes every piece of template text through
// text. Element strings never go through text.
func render(tpl string, ctx any, text func(string) string) string {
	matches := blockPattern.FindAllStringSubmatchIndex(tpl, -1)
	if len(matches) == 0 {
		return text(tpl)
	}

	var out strings.Builder
	out.Grow(len(tpl))
	last := 0
	for _, m := range matches {
		out.WriteString(text(tpl[last:m[0]]))
		path := strings.TrimSpace(tpl[m[2]:m[3]])
		body := tpl[m[4]:m[5]]
		expandBlock(&out, body, path, ctx, text)
		last = m[1]
	}
	out.WriteString(text(tpl[last:]))
	return out.String()
}

func expandBlock(out *strings.Builder, body, path string, ctx any, text func(string) string) {
	value, ok := Lookup(ctx, path)
	if !ok {
		return
	}
	items, ok := value.([]any)
	if !ok || len(items) == 0 {
		return
	}

	parts := strings.Split(body, thisMarker)
	for i, part := range parts {
		parts[i] = text(part)
	}
	for _, item := range items {
		out.WriteString(strings.Join(parts, Stringify(item)))
	}
}

// Interpolate replaces {{path}} markers whose path resolves against ctx.
// Unresolved markers are kept verbatim. Defined but falsy values (0, "",
// false) are substituted like any other value. ctx must already be
// normalised.
func Interpolate(tpl string, ctx any) string {
	return markerPattern.ReplaceAllStringFunc(tpl, func(marker string) string {
		key := strings.TrimSpace(marker[2 : len(marker)-2])
		value, ok := Lookup(ctx, key)
		if !ok {
			return marker
		}
		return Stringify(value)
	})
}
