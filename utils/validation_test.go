package utils

import "testing"

func TestValidatePhone(t *testing.T) {
	cases := []struct {
		phone string
		want  bool
	}{
		{"11999990000", true},
		{"+5511999990000", true},
		{"(11) 99999-0000", true},
		{"123", false},
		{"telefone", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := ValidatePhone(tc.phone); got != tc.want {
			t.Errorf("ValidatePhone(%q) = %v, want %v", tc.phone, got, tc.want)
		}
	}
}
