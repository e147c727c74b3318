package validation

import (
	"strconv"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestIsValidCPF(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "masked valid", input: "529.982.247-25", want: true},
		{name: "digits only valid", input: "52998224725", want: true},
		{name: "wrong last digit", input: "529.982.247-26", want: false},
		{name: "wrong first check digit", input: "529.982.247-35", want: false},
		{name: "too short", input: "529.982.247-2", want: false},
		{name: "too long", input: "529.982.247-251", want: false},
		{name: "repeated digits", input: "111.111.111-11", want: false},
		{name: "zeros", input: "000.000.000-00", want: false},
		{name: "letters only", input: "abc.def.ghi-jk", want: false},
		{name: "empty", input: "", want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsValidCPF(tc.input); got != tc.want {
				t.Fatalf("IsValidCPF(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestIsValidCPF_LastDigitVariants(t *testing.T) {
	for d := 0; d <= 9; d++ {
		input := "5299822472" + strconv.Itoa(d)
		want := d == 5
		if got := IsValidCPF(input); got != want {
			t.Fatalf("IsValidCPF(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestIsValidCPF_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("repeated digit sequences are never valid", prop.ForAll(
		func(d int) bool {
			return !IsValidCPF(strings.Repeat(strconv.Itoa(d), 11))
		},
		gen.IntRange(0, 9),
	))

	properties.Property("computed check digits validate", prop.ForAll(
		func(prefix []int) bool {
			digits := withCheckDigits(prefix)
			if allSame(digits) {
				return !IsValidCPF(joinDigits(digits))
			}
			return IsValidCPF(joinDigits(digits)) && IsValidCPF(MaskCPF(joinDigits(digits)))
		},
		gen.SliceOfN(9, gen.IntRange(0, 9)),
	))

	properties.Property("changing either check digit invalidates", prop.ForAll(
		func(prefix []int, offset int, second bool) bool {
			digits := withCheckDigits(prefix)
			pos := 9
			if second {
				pos = 10
			}
			digits[pos] = (digits[pos] + offset) % 10
			return !IsValidCPF(joinDigits(digits))
		},
		gen.SliceOfN(9, gen.IntRange(0, 9)),
		gen.IntRange(1, 9),
		gen.Bool(),
	))

	properties.TestingRun(t)
}

// withCheckDigits appends both check digits using the textbook formulation
// (sum of digit*(11-i) then *10 mod 11) so the test does not reuse the
// implementation's helper.
func withCheckDigits(prefix []int) []int {
	digits := append([]int(nil), prefix...)
	for _, n := range []int{9, 10} {
		sum := 0
		for i := 1; i <= n; i++ {
			sum += digits[i-1] * (n + 2 - i)
		}
		r := (sum * 10) % 11
		if r >= 10 {
			r = 0
		}
		digits = append(digits, r)
	}
	return digits
}

func allSame(digits []int) bool {
	for _, d := range digits {
		if d != digits[0] {
			return false
		}
	}
	return true
}

func joinDigits(digits []int) string {
	var b strings.Builder
	for _, d := range digits {
		b.WriteString(strconv.Itoa(d))
	}
	return b.String()
}
