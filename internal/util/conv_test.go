package util

import "testing"

func TestValidDateKey(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"2026-03-10", true},
		{"2026-12-31", true},
		{"2026-13-01", false},
		{"2026-02-30", false},
		{"26-03-10", false},
		{"2026/03/10", false},
		{"", false},
		{"not-a-date", false},
	}
	for _, c := range cases {
		if got := ValidDateKey(c.in); got != c.want {
			t.Errorf("ValidDateKey(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}
