package validation

// IsValidCPF strips formatting and verifies both CPF check digits. Sequences
// of a single repeated digit are rejected even though their check digits add
// up.
func IsValidCPF(cpf string) bool {
	digits := make([]int, 0, 11)
	for _, r := range cpf {
		if r >= '0' && r <= '9' {
			digits = append(digits, int(r-'0'))
		}
	}
	if len(digits) != 11 {
		return false
	}

	repeated := true
	for _, d := range digits[1:] {
		if d != digits[0] {
			repeated = false
			break
		}
	}
	if repeated {
		return false
	}

	if cpfCheckDigit(digits[:9]) != digits[9] {
		return false
	}
	return cpfCheckDigit(digits[:10]) == digits[10]
}

// cpfCheckDigit weights the prefix from len+1 down to 2 and reduces the sum
// modulo 11, folding 10 onto 0.
func cpfCheckDigit(prefix []int) int {
	sum := 0
	weight := len(prefix) + 1
	for _, d := range prefix {
		sum += d * weight
		weight--
	}
	remainder := (sum * 10) % 11
	if remainder == 10 || remainder == 11 {
		remainder = 0
	}
	return remainder
}
