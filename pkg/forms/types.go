package forms

import (
	"strings"

	"github.com/goliatone/go-ongkit/pkg/validation"
)

// Choice is one selectable option of a checkbox group.
type Choice struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// FieldSpec declares a single input.
type FieldSpec struct {
	Name        string               `json:"name" yaml:"name"`
	Label       string               `json:"label" yaml:"label"`
	Type        validation.FieldType `json:"type" yaml:"type"`
	Required    bool                 `json:"required,omitempty" yaml:"required,omitempty"`
	Rule        string               `json:"rule,omitempty" yaml:"rule,omitempty"`
	Placeholder string               `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Help        string               `json:"help,omitempty" yaml:"help,omitempty"`
	Options     []Choice             `json:"options,omitempty" yaml:"options,omitempty"`
}

// RuleName is the custom rule key the engine will use for this field.
func (f FieldSpec) RuleName() string {
	if rule := strings.TrimSpace(f.Rule); rule != "" {
		return rule
	}
	return f.Name
}

// Form is a declared form: its inputs plus "pick at least N" groups.
type Form struct {
	ID          string                       `json:"id" yaml:"id"`
	Title       string                       `json:"title" yaml:"title"`
	Description string                       `json:"description,omitempty" yaml:"description,omitempty"`
	Fields      []FieldSpec                  `json:"fields" yaml:"fields"`
	Groups      []validation.GroupConstraint `json:"groups,omitempty" yaml:"groups,omitempty"`
}

// Field returns the declaration named name.
func (f Form) Field(name string) (FieldSpec, bool) {
	for _, field := range f.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return FieldSpec{}, false
}

// Group returns the constraint declared for name.
func (f Form) Group(name string) (validation.GroupConstraint, bool) {
	for _, group := range f.Groups {
		if group.Group == name {
			return group, true
		}
	}
	return validation.GroupConstraint{}, false
}

// Inputs converts submitted values into engine input. Checkbox groups expand
// into one checkbox field per declared option; a lone checkbox is checked
// when its value is truthy.
func (f Form) Inputs(values map[string][]string) []validation.Field {
	out := make([]validation.Field, 0, len(f.Fields))
	for _, spec := range f.Fields {
		submitted := values[spec.Name]
		fieldType := validation.ParseFieldType(string(spec.Type))

		if fieldType == validation.FieldTypeCheckbox {
			out = append(out, checkboxFields(spec, submitted)...)
			continue
		}

		out = append(out, validation.Field{
			Name:     spec.Name,
			Type:     fieldType,
			Value:    first(submitted),
			Required: spec.Required,
			Rule:     spec.Rule,
		})
	}
	return out
}

// Validate runs engine over the submission.
func (f Form) Validate(engine *validation.Engine, sub Submission) validation.FormVerdict {
	return engine.ValidateForm(f.Inputs(sub.Values), f.Groups)
}

func checkboxFields(spec FieldSpec, submitted []string) []validation.Field {
	if len(spec.Options) == 0 {
		value := first(submitted)
		return []validation.Field{{
			Name:     spec.Name,
			Type:     validation.FieldTypeCheckbox,
			Value:    value,
			Required: spec.Required,
			Rule:     spec.Rule,
			Checked:  truthy(value),
		}}
	}

	selected := make(map[string]struct{}, len(submitted))
	for _, v := range submitted {
		selected[v] = struct{}{}
	}
	out := make([]validation.Field, 0, len(spec.Options))
	for _, opt := range spec.Options {
		_, checked := selected[opt.Value]
		out = append(out, validation.Field{
			Name:    spec.Name,
			Type:    validation.FieldTypeCheckbox,
			Value:   opt.Value,
			Rule:    spec.Rule,
			Checked: checked,
		})
	}
	return out
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func truthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "0", "false", "off", "no":
		return false
	default:
		return true
	}
}
