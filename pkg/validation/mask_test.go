package validation

import "testing"

func TestMasks(t *testing.T) {
	cases := []struct {
		name string
		mask func(string) string
		in   string
		want string
	}{
		{name: "cpf partial", mask: MaskCPF, in: "5299", want: "529.9"},
		{name: "cpf middle", mask: MaskCPF, in: "5299822", want: "529.982.2"},
		{name: "cpf full", mask: MaskCPF, in: "52998224725", want: "529.982.247-25"},
		{name: "cpf remask", mask: MaskCPF, in: "529.982.247-25", want: "529.982.247-25"},
		{name: "cpf extra digits left as typed", mask: MaskCPF, in: "529.982.247-250", want: "529.982.247-250"},
		{name: "cpf without digits left as typed", mask: MaskCPF, in: "abc", want: "abc"},
		{name: "phone area only", mask: MaskPhone, in: "11", want: "11"},
		{name: "phone partial", mask: MaskPhone, in: "11987", want: "(11) 987"},
		{name: "phone mobile", mask: MaskPhone, in: "11987654321", want: "(11) 98765-4321"},
		{name: "phone landline", mask: MaskPhone, in: "1134567890", want: "(11) 3456-7890"},
		{name: "phone typing", mask: MaskPhone, in: "119876543", want: "(11) 98765-43"},
		{name: "cep partial", mask: MaskCEP, in: "0131", want: "0131"},
		{name: "cep full", mask: MaskCEP, in: "01310100", want: "01310-100"},
		{name: "cep strips punctuation", mask: MaskCEP, in: "01.310-100", want: "01310-100"},
		{name: "cep extra digits left as typed", mask: MaskCEP, in: "01310-1000", want: "01310-1000"},
		{name: "phone extra digits left as typed", mask: MaskPhone, in: "(11) 98765-43210", want: "(11) 98765-43210"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.mask(tc.in); got != tc.want {
				t.Fatalf("mask(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestMaskedValuesPassRules(t *testing.T) {
	if !IsValidPhone(MaskPhone("11987654321")) || !IsValidPhone(MaskPhone("1134567890")) {
		t.Fatalf("expected masked phones to satisfy the phone rule")
	}
	if !IsValidCEP(MaskCEP("01310100")) {
		t.Fatalf("expected masked cep to satisfy the cep rule")
	}
	if IsValidCPF(MaskCPF("529982247250")) || IsValidCEP(MaskCEP("013101000")) || IsValidPhone(MaskPhone("119876543210")) {
		t.Fatalf("expected overlong input to keep failing its rule after masking")
	}
	if _, ok := MaskFor("email"); ok {
		t.Fatalf("expected no mask for email")
	}
	if mask, ok := MaskFor(RuleCPF); !ok || mask("52998224725") != "529.982.247-25" {
		t.Fatalf("expected cpf mask lookup")
	}
}
