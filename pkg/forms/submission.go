package forms

import (
	"fmt"
	"math"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-ongkit/pkg/validation"
)

// Submission is a collected, sanitised set of values for one form.
type Submission struct {
	ID          string              `json:"id"`
	FormID      string              `json:"formId"`
	SubmittedAt time.Time           `json:"timestamp"`
	Values      map[string][]string `json:"values"`
}

// CollectOption configures Collect.
type CollectOption func(*collectConfig)

type collectConfig struct {
	now      func() time.Time
	newID    func() string
	sanitize func(string) string
	masks    bool
}

// WithClock overrides the submission timestamp source.
func WithClock(now func() time.Time) CollectOption {
	return func(cfg *collectConfig) {
		if now != nil {
			cfg.now = now
		}
	}
}

// WithIDGenerator overrides the submission id generator.
func WithIDGenerator(fn func() string) CollectOption {
	return func(cfg *collectConfig) {
		if fn != nil {
			cfg.newID = fn
		}
	}
}

// WithSanitizer replaces the value sanitiser. Pass nil to keep raw values.
func WithSanitizer(fn func(string) string) CollectOption {
	return func(cfg *collectConfig) {
		cfg.sanitize = fn
	}
}

// WithoutMasks keeps cpf, telefone and cep values as typed.
func WithoutMasks() CollectOption {
	return func(cfg *collectConfig) {
		cfg.masks = false
	}
}

// Collect gathers the values of every declared field. Repeated keys are kept
// in order, values are sanitised, and fields whose rule has an input mask are
// masked so the pattern rules see the expected shape. Undeclared keys are
// dropped.
func Collect(form Form, values url.Values, options ...CollectOption) Submission {
	cfg := collectConfig{
		now:      time.Now,
		newID:    uuid.NewString,
		sanitize: SanitizeText,
		masks:    true,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	sub := Submission{
		ID:          cfg.newID(),
		FormID:      form.ID,
		SubmittedAt: cfg.now(),
		Values:      make(map[string][]string, len(form.Fields)),
	}

	for _, spec := range form.Fields {
		raw, ok := values[spec.Name]
		if !ok {
			continue
		}
		mask, hasMask := validation.MaskFor(spec.RuleName())
		collected := make([]string, 0, len(raw))
		for _, value := range raw {
			if cfg.sanitize != nil {
				value = cfg.sanitize(value)
			}
			if cfg.masks && hasMask && strings.TrimSpace(value) != "" {
				value = mask(value)
			}
			collected = append(collected, value)
		}
		sub.Values[spec.Name] = collected
	}
	return sub
}

// Value returns the first value submitted for name.
func (s Submission) Value(name string) string {
	return first(s.Values[name])
}

// Record flattens the submission into a JSON friendly map: single values as
// strings, repeated values as lists, plus a "_metadata" entry.
func (s Submission) Record() map[string]any {
	out := make(map[string]any, len(s.Values)+1)
	for name, values := range s.Values {
		switch len(values) {
		case 0:
			continue
		case 1:
			out[name] = values[0]
		default:
			out[name] = append([]string(nil), values...)
		}
	}
	out["_metadata"] = map[string]any{
		"id":        s.ID,
		"formId":    s.FormID,
		"timestamp": s.SubmittedAt.UTC().Format(time.RFC3339),
	}
	return out
}

// ValuesFromMap converts decoded JSON/YAML data into url.Values. Lists become
// repeated keys, booleans become "on" when true and are omitted when false,
// and nil values are skipped. Keys starting with "_" are metadata and ignored.
//
// Other values are formatted with fmt.Sprint, so identifiers a decoder already
// read as numbers lose their leading zeros (CEP 01310100 becomes 1310100).
// Quote such values in the source or decode it with ValuesFromYAML.
func ValuesFromMap(data map[string]any) url.Values {
	out := make(url.Values, len(data))
	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if strings.HasPrefix(key, "_") {
			continue
		}
		switch v := data[key].(type) {
		case nil:
		case bool:
			if v {
				out.Add(key, "on")
			}
		case []any:
			for _, item := range v {
				if item != nil {
					out.Add(key, fmt.Sprint(item))
				}
			}
		case []string:
			for _, item := range v {
				out.Add(key, item)
			}
		default:
			out.Add(key, fmt.Sprint(v))
		}
	}
	return out
}

// ValuesFromYAML decodes a YAML (or JSON) mapping of field values with the
// same rules as ValuesFromMap, except that scalars are kept exactly as
// written: an unquoted 01310100 stays "01310100". Nested mappings are ignored.
func ValuesFromYAML(data []byte) (url.Values, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("forms: decode values: %w", err)
	}
	out := url.Values{}
	if len(doc.Content) == 0 {
		return out, nil
	}
	root := resolveAlias(doc.Content[0])
	if root.Kind != yaml.MappingNode {
		return nil, ErrInvalidValues
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key := root.Content[i].Value
		if strings.HasPrefix(key, "_") {
			continue
		}
		value := resolveAlias(root.Content[i+1])
		if value.Kind == yaml.SequenceNode {
			for _, item := range value.Content {
				if item = resolveAlias(item); item.Kind == yaml.ScalarNode && item.ShortTag() != "!!null" {
					out.Add(key, item.Value)
				}
			}
			continue
		}
		if value.Kind != yaml.ScalarNode {
			continue
		}
		switch value.ShortTag() {
		case "!!null":
		case "!!bool":
			var checked bool
			if err := value.Decode(&checked); err == nil && checked {
				out.Add(key, "on")
			}
		default:
			out.Add(key, value.Value)
		}
	}
	return out, nil
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}

// Stats summarises how much of a form was filled in.
type Stats struct {
	TotalFields    int `json:"totalFields"`
	FilledFields   int `json:"filledFields"`
	CompletionRate int `json:"completionRate"`
}

// ComputeStats counts declared fields with at least one non-blank value.
func ComputeStats(form Form, sub Submission) Stats {
	stats := Stats{TotalFields: len(form.Fields)}
	for _, spec := range form.Fields {
		for _, value := range sub.Values[spec.Name] {
			if strings.TrimSpace(value) != "" {
				stats.FilledFields++
				break
			}
		}
	}
	if stats.TotalFields > 0 {
		stats.CompletionRate = int(math.Round(float64(stats.FilledFields) * 100 / float64(stats.TotalFields)))
	}
	return stats
}
