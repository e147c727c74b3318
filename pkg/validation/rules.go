package validation

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// Rule checks a trimmed, non-empty value. Now is the engine clock reading at
// the start of the call; most rules ignore it.
type Rule struct {
	Message string
	Check   func(value string, now time.Time) bool
}

// Matches reports whether the rule accepts value.
func (r Rule) Matches(value string, now time.Time) bool {
	if r.Check == nil {
		return true
	}
	return r.Check(value, now)
}

// PatternRule builds a rule accepting values that match re.
func PatternRule(message string, re *regexp.Regexp) Rule {
	return Rule{
		Message: message,
		Check: func(value string, _ time.Time) bool {
			return re.MatchString(value)
		},
	}
}

// FuncRule adapts a clock independent predicate into a Rule.
func FuncRule(message string, fn func(string) bool) Rule {
	return Rule{
		Message: message,
		Check: func(value string, _ time.Time) bool {
			return fn(value)
		},
	}
}

// Custom rule names registered by default.
const (
	RuleCPF       = "cpf"
	RuleCEP       = "cep"
	RuleBirthDate = "dataNascimento"
	RulePhone     = "telefone"
	RuleFullName  = "nomeCompleto"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\(\d{2}\)\s\d{4,5}-\d{4}$`)
	cepPattern   = regexp.MustCompile(`^\d{5}-\d{3}$`)
)

// IsValidEmail reports whether email has the local@domain.tld shape.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// IsValidPhone accepts "(NN) NNNNN-NNNN" and "(NN) NNNN-NNNN".
func IsValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// IsValidCEP accepts the masked "NNNNN-NNN" form only.
func IsValidCEP(cep string) bool {
	return cepPattern.MatchString(cep)
}

// IsValidFullName requires at least two characters.
func IsValidFullName(name string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(name)) >= 2
}

func defaultTypeRules() map[FieldType]Rule {
	return map[FieldType]Rule{
		FieldTypeEmail: PatternRule(MessageInvalidEmail, emailPattern),
		FieldTypeTel:   PatternRule(MessageInvalidPhone, phonePattern),
	}
}

func defaultCustomRules() map[string]Rule {
	return map[string]Rule{
		RuleCPF:   FuncRule(MessageInvalidCPF, IsValidCPF),
		RuleCEP:   PatternRule(MessageInvalidCEP, cepPattern),
		RulePhone: PatternRule(MessageInvalidPhone, phonePattern),
		RuleBirthDate: {
			Message: MessageInvalidBirthDate,
			Check:   IsValidBirthDate,
		},
		RuleFullName: FuncRule(MessageNameTooShort, IsValidFullName),
	}
}
