package dates

import (
	"testing"
	"time"
)

func TestMatchesDateShape(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"2025-02-15", true},
		{"1999-12-31", true},
		{"2025-2-15", false},
		{"02-15-2025", false},
		{"2025-02-15T10:00", false},
		{"not-a-date", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := MatchesDateShape(tt.input); got != tt.want {
				t.Errorf("MatchesDateShape(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsValidDate(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"2025-02-15", true},
		{"2025-02-30", false}, // shape matches, calendar does not
		{"2025-13-01", false},
		{"2025-02-15 ", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsValidDate(tt.input); got != tt.want {
				t.Errorf("IsValidDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2025-02-15")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Year() != 2025 || got.Month() != time.February || got.Day() != 15 {
		t.Errorf("got %v, want 2025-02-15", got)
	}

	if _, err := ParseDate("garbage"); err == nil {
		t.Error("expected error for invalid date")
	}
}

func TestFormatDate(t *testing.T) {
	date := time.Date(2025, 2, 15, 10, 30, 0, 0, time.UTC)
	if got := FormatDate(date); got != "2025-02-15" {
		t.Errorf("FormatDate = %q, want %q", got, "2025-02-15")
	}
}
