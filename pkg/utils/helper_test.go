package utils

import "testing"

func TestParseInt(t *testing.T) {
	tests := []struct {
		value string
		def   int
		want  int
	}{
		{"5", 1, 5},
		{"", 1, 1},
		{"abc", 1, 1},
		{"0", 1, 1},
		{"-3", 20, 20},
		{"100", 20, 100},
	}

	for _, tt := range tests {
		if got := ParseInt(tt.value, tt.def); got != tt.want {
			t.Errorf("ParseInt(%q, %d) = %d, want %d", tt.value, tt.def, got, tt.want)
		}
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-01-15")
	if err != nil {
		t.Fatalf("ParseDate() error = %v", err)
	}
	if FormatDate(d) != "2026-01-15" {
		t.Errorf("FormatDate(ParseDate()) = %q", FormatDate(d))
	}

	for _, bad := range []string{"", "15-01-2026", "2026/01/15", "yesterday"} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("ParseDate(%q) accepted, want error", bad)
		}
	}

	if !IsValidDate("2026-01-15") {
		t.Error("IsValidDate rejected a valid date")
	}
	if IsValidDate("2026-13-40") {
		t.Error("IsValidDate accepted an impossible date")
	}
}
