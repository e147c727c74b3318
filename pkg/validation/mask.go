package validation

import "strings"

// Masks mirror the formatting applied while the user types, so values reach
// the engine in the shape the pattern rules expect. Non-digits are dropped and
// partial input is formatted progressively. Input with no digits or with more
// digits than the layout holds is returned unchanged, so the rule still sees
// and rejects it.

// MaskCPF formats up to 11 digits as NNN.NNN.NNN-NN.
func MaskCPF(raw string) string {
	d, ok := maskDigits(raw, 11)
	if !ok {
		return raw
	}
	switch {
	case len(d) <= 3:
		return d
	case len(d) <= 6:
		return d[:3] + "." + d[3:]
	case len(d) <= 9:
		return d[:3] + "." + d[3:6] + "." + d[6:]
	default:
		return d[:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:]
	}
}

// MaskPhone formats up to 11 digits as (NN) NNNNN-NNNN. Ten digit numbers use
// the landline (NN) NNNN-NNNN layout.
func MaskPhone(raw string) string {
	d, ok := maskDigits(raw, 11)
	if !ok {
		return raw
	}
	switch {
	case len(d) <= 2:
		return d
	case len(d) <= 7:
		return "(" + d[:2] + ") " + d[2:]
	case len(d) == 10:
		return "(" + d[:2] + ") " + d[2:6] + "-" + d[6:]
	default:
		return "(" + d[:2] + ") " + d[2:7] + "-" + d[7:]
	}
}

// MaskCEP formats up to 8 digits as NNNNN-NNN.
func MaskCEP(raw string) string {
	d, ok := maskDigits(raw, 8)
	if !ok {
		return raw
	}
	if len(d) <= 5 {
		return d
	}
	return d[:5] + "-" + d[5:]
}

// MaskFor returns the mask registered for a custom rule name, if any.
func MaskFor(rule string) (func(string) string, bool) {
	switch rule {
	case RuleCPF:
		return MaskCPF, true
	case RulePhone:
		return MaskPhone, true
	case RuleCEP:
		return MaskCEP, true
	default:
		return nil, false
	}
}

// maskDigits extracts the digits of raw. ok is false when there are none or
// more than limit.
func maskDigits(raw string, limit int) (string, bool) {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 || b.Len() > limit {
		return "", false
	}
	return b.String(), true
}
