package validation

// FieldType enumerates the input types the engine knows about.
type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeEmail    FieldType = "email"
	FieldTypeTel      FieldType = "tel"
	FieldTypeDate     FieldType = "date"
	FieldTypeGeneric  FieldType = "generic"
	FieldTypeCheckbox FieldType = "checkbox"
)

// ParseFieldType maps an input type attribute onto a FieldType. Unknown or
// empty values map to FieldTypeGeneric.
func ParseFieldType(raw string) FieldType {
	switch FieldType(raw) {
	case FieldTypeText, FieldTypeEmail, FieldTypeTel, FieldTypeDate, FieldTypeCheckbox:
		return FieldType(raw)
	default:
		return FieldTypeGeneric
	}
}

// Field is a single input value plus its declared constraints. Rule overrides
// the custom rule lookup key, which otherwise defaults to Name. Checked is only
// meaningful for checkbox fields.
type Field struct {
	Name     string    `json:"name" yaml:"name"`
	Type     FieldType `json:"type" yaml:"type"`
	Value    string    `json:"value" yaml:"value"`
	Required bool      `json:"required,omitempty" yaml:"required,omitempty"`
	Rule     string    `json:"rule,omitempty" yaml:"rule,omitempty"`
	Checked  bool      `json:"checked,omitempty" yaml:"checked,omitempty"`
}

// Message keys carried by failing results. Use a Catalog to turn them into
// user facing text.
const (
	MessageRequired         = "required"
	MessageInvalidEmail     = "invalid_email"
	MessageInvalidPhone     = "invalid_phone"
	MessageInvalidCPF       = "invalid_cpf"
	MessageInvalidCEP       = "invalid_cep"
	MessageInvalidBirthDate = "invalid_birth_date"
	MessageNameTooShort     = "name_too_short"
	MessageSelectAtLeastOne = "select_at_least_one"
	MessageValid            = "valid"
)

const (
	ruleNameRequired = "required"
	ruleNameGroup    = "group"
)

// Result is the verdict for one field. Message and Rule are empty when Valid
// is true.
type Result struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
	Rule    string `json:"rule,omitempty"`
}

// Pass is the result of a field that satisfied every applicable rule.
func Pass() Result {
	return Result{Valid: true}
}

// Fail builds a failing result for the named rule.
func Fail(rule, message string) Result {
	return Result{Valid: false, Message: message, Rule: rule}
}

// GroupConstraint requires at least Min fields named Group to be selected.
type GroupConstraint struct {
	Group string `json:"group" yaml:"group"`
	Min   int    `json:"min" yaml:"min"`
}

// FormVerdict aggregates per-field and per-group results. Valid is the
// conjunction of every entry in both maps.
type FormVerdict struct {
	Valid  bool              `json:"valid"`
	Fields map[string]Result `json:"fields"`
	Groups map[string]Result `json:"groups,omitempty"`
}

// Invalid returns the names of failing fields in input order.
func (v FormVerdict) Invalid(fields []Field) []string {
	var out []string
	seen := make(map[string]struct{}, len(fields))
	for _, field := range fields {
		if _, ok := seen[field.Name]; ok {
			continue
		}
		seen[field.Name] = struct{}{}
		if res, ok := v.Fields[field.Name]; ok && !res.Valid {
			out = append(out, field.Name)
		}
	}
	return out
}
