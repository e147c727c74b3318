package template

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Normalize converts data into the generic tree Lookup walks: map[string]any,
// []any, string, json.Number, bool and nil. When part of a map[string]any or
// []any cannot be encoded as JSON (funcs, channels, NaN), only that entry is
// lost: map keys are dropped so their markers stay unresolved, list items
// become nil. Any other unencodable value normalises to nil.
func Normalize(data any) any {
	switch data.(type) {
	case nil:
		return nil
	case string, bool, json.Number:
		return data
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return normalizeEach(data)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var out any
	if err := dec.Decode(&out); err != nil {
		return nil
	}
	return out
}

func normalizeEach(data any) any {
	switch v := data.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			n := Normalize(item)
			if n == nil && !encodable(item) {
				continue
			}
			out[key] = n
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = Normalize(item)
		}
		return out
	}
	return nil
}

func encodable(v any) bool {
	_, err := json.Marshal(v)
	return err == nil
}

// Lookup resolves a dotted path against a normalised tree. Map segments are
// keys, list segments are decimal indexes. The walk stops with ok=false on a
// missing key, an out of range index, a null intermediate or a scalar that
// cannot be indexed. A present null leaf resolves to (nil, true).
func Lookup(ctx any, path string) (any, bool) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, false
	}

	current := ctx
	for _, segment := range strings.Split(path, ".") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			return nil, false
		}
		switch typed := current.(type) {
		case map[string]any:
			next, ok := typed[segment]
			if !ok {
				return nil, false
			}
			current = next
		case []any:
			idx, err := strconv.Atoi(segment)
			if err != nil || idx < 0 || idx >= len(typed) {
				return nil, false
			}
			current = typed[idx]
		default:
			return nil, false
		}
	}
	return current, true
}

// Stringify renders a normalised value the way markers display it: numbers in
// their shortest decimal form, null as "", lists joined with commas and
// objects as compact JSON.
func Stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case []any:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = Stringify(item)
		}
		return strings.Join(parts, ",")
	case map[string]any:
		raw, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(raw)
	default:
		return Stringify(Normalize(v))
	}
}
