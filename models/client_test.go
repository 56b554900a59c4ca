package models

import "testing"

func TestClientNameKey(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"João Silva", "joão silva"},
		{"  JOÃO SILVA  ", "joão silva"},
		{"joão silva", "joão silva"},
	}
	for _, tc := range cases {
		if got := ClientNameKey(tc.in); got != tc.want {
			t.Errorf("ClientNameKey(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}

	if ClientNameKey("Maria") == ClientNameKey("Mariana") {
		t.Error("distinct names must not collide")
	}
}

func TestStringListContains(t *testing.T) {
	list := StringList{"Equipe Alpha", "Técnico João"}
	if !list.Contains("Equipe Alpha") {
		t.Error("expected list to contain Equipe Alpha")
	}
	if list.Contains("equipe alpha") {
		t.Error("Contains is exact match, should not match different case")
	}
	if list.Contains("Equipe Beta") {
		t.Error("unexpected membership")
	}
}
