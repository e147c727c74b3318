package validation

import "strings"

// FieldState is the visual state a presentation layer attaches to an input.
type FieldState string

const (
	StateNone    FieldState = ""
	StateValid   FieldState = "valid"
	StateInvalid FieldState = "invalid"
)

// State maps a result onto the visual state of its field. Empty fields carry
// no state at all, regardless of the verdict.
func State(field Field, res Result) FieldState {
	if isEmpty(field, strings.TrimSpace(field.Value)) {
		return StateNone
	}
	if res.Valid {
		return StateValid
	}
	return StateInvalid
}
