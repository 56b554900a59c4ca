package utils

import "testing"

func TestNextOrderNumber(t *testing.T) {
	cases := []struct {
		name     string
		existing []string
		want     string
	}{
		{"empty", nil, "01"},
		{"sequential", []string{"01", "02", "03"}, "04"},
		{"gaps use max", []string{"01", "07", "03"}, "08"},
		{"garbage counts as zero", []string{"abc", ""}, "01"},
		{"mixed garbage", []string{"abc", "05"}, "06"},
		{"three digits once past 99", []string{"99"}, "100"},
	}
	for _, tc := range cases {
		if got := NextOrderNumber(tc.existing); got != tc.want {
			t.Errorf("%s: NextOrderNumber(%v) = %q, want %q", tc.name, tc.existing, got, tc.want)
		}
	}
}
