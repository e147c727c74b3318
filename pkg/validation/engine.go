package validation

import (
	"strings"
	"time"
)

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the clock used by date rules.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// WithRule registers or replaces the custom rule stored under name.
func WithRule(name string, rule Rule) Option {
	return func(e *Engine) {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			return
		}
		e.custom[trimmed] = rule
	}
}

// WithTypeRule registers or replaces the rule applied to every field of the
// given type.
func WithTypeRule(fieldType FieldType, rule Rule) Option {
	return func(e *Engine) {
		if fieldType == "" {
			return
		}
		e.types[fieldType] = rule
	}
}

// Engine applies type rules and named custom rules to fields. The rule tables
// are fixed at construction, so an Engine can be shared across goroutines.
type Engine struct {
	now    func() time.Time
	types  map[FieldType]Rule
	custom map[string]Rule
}

// NewEngine builds an engine with the built-in type and custom rules.
func NewEngine(options ...Option) *Engine {
	e := &Engine{
		now:    time.Now,
		types:  defaultTypeRules(),
		custom: defaultCustomRules(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}
	return e
}

// HasRule reports whether a custom rule is registered under name.
func (e *Engine) HasRule(name string) bool {
	_, ok := e.custom[name]
	return ok
}

// ValidateField checks a single field. Required-ness is evaluated first and
// short-circuits: empty optional fields pass and empty required fields fail
// without running any other rule. Otherwise the type rule runs before the
// custom rule and the first failure wins.
func (e *Engine) ValidateField(field Field) Result {
	return e.validateField(field, e.now())
}

func (e *Engine) validateField(field Field, now time.Time) Result {
	value := strings.TrimSpace(field.Value)
	if isEmpty(field, value) {
		if field.Required {
			return Fail(ruleNameRequired, MessageRequired)
		}
		return Pass()
	}

	if rule, ok := e.types[field.Type]; ok && !rule.Matches(value, now) {
		return Fail(string(field.Type), rule.Message)
	}

	name := customRuleName(field)
	if rule, ok := e.custom[name]; ok && !rule.Matches(value, now) {
		return Fail(name, rule.Message)
	}
	return Pass()
}

// ValidateForm checks every field and every group constraint. Fields sharing a
// name collapse into one entry that fails if any instance fails. An empty
// groups slice skips the group checks.
func (e *Engine) ValidateForm(fields []Field, groups []GroupConstraint) FormVerdict {
	now := e.now()
	verdict := FormVerdict{
		Valid:  true,
		Fields: make(map[string]Result, len(fields)),
	}

	for _, field := range fields {
		res := e.validateField(field, now)
		if existing, ok := verdict.Fields[field.Name]; ok && !existing.Valid {
			continue
		}
		verdict.Fields[field.Name] = res
		if !res.Valid {
			verdict.Valid = false
		}
	}

	for _, group := range groups {
		name := strings.TrimSpace(group.Group)
		if name == "" {
			continue
		}
		if verdict.Groups == nil {
			verdict.Groups = make(map[string]Result, len(groups))
		}
		res := checkGroup(fields, name, group.Min)
		verdict.Groups[name] = res
		if !res.Valid {
			verdict.Valid = false
		}
	}

	return verdict
}

// CountSelected returns how many fields named group are selected.
func CountSelected(fields []Field, group string) int {
	count := 0
	for _, field := range fields {
		if field.Name != group {
			continue
		}
		if !isEmpty(field, strings.TrimSpace(field.Value)) {
			count++
		}
	}
	return count
}

func checkGroup(fields []Field, group string, minSelected int) Result {
	if minSelected <= 0 {
		return Pass()
	}
	if CountSelected(fields, group) < minSelected {
		return Fail(ruleNameGroup, MessageSelectAtLeastOne)
	}
	return Pass()
}

func isEmpty(field Field, trimmed string) bool {
	if field.Type == FieldTypeCheckbox {
		return !field.Checked
	}
	return trimmed == ""
}

func customRuleName(field Field) string {
	if rule := strings.TrimSpace(field.Rule); rule != "" {
		return rule
	}
	return field.Name
}

var defaultEngine = NewEngine()

// ValidateField checks field with the default engine.
func ValidateField(field Field) Result {
	return defaultEngine.ValidateField(field)
}

// ValidateForm checks fields and groups with the default engine.
func ValidateForm(fields []Field, groups []GroupConstraint) FormVerdict {
	return defaultEngine.ValidateForm(fields, groups)
}
