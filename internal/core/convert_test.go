package core

import (
	"testing"
	"time"
)

// ----------------------------------------------------------------------------
// parseDecimal Tests
// ----------------------------------------------------------------------------

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{name: "integer", input: "42", want: "42", wantOK: true},
		{name: "decimal", input: "3.14", want: "3.14", wantOK: true},
		{name: "trailing zeros dropped", input: "12.00", want: "12", wantOK: true},
		{name: "negative", input: "-7.5", want: "-7.5", wantOK: true},
		{name: "surrounding whitespace", input: "  99.9  ", want: "99.9", wantOK: true},
		{name: "dollar sign", input: "$1200.50", want: "1200.5", wantOK: true},
		{name: "thousands separators", input: "1,234,567.89", want: "1234567.89", wantOK: true},
		{name: "euro", input: "€15", want: "15", wantOK: true},
		{name: "pound", input: "£0.99", want: "0.99", wantOK: true},
		{name: "accounting negative", input: "(123.45)", want: "-123.45", wantOK: true},
		{name: "accounting negative with currency", input: "($1,000.00)", want: "-1000", wantOK: true},
		{name: "large value keeps precision", input: "12345678901234567890.123", want: "12345678901234567890.123", wantOK: true},

		{name: "empty", input: "", wantOK: false},
		{name: "whitespace only", input: "   ", wantOK: false},
		{name: "letters", input: "abc", wantOK: false},
		{name: "mixed", input: "12abc", wantOK: false},
		{name: "two points", input: "1.2.3", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseDecimal(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("parseDecimal(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && got.String() != tt.want {
				t.Errorf("parseDecimal(%q) = %s, want %s", tt.input, got.String(), tt.want)
			}
		})
	}
}

// ----------------------------------------------------------------------------
// parseDate Tests
// ----------------------------------------------------------------------------

func TestParseDate(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantValid bool
		want      string
	}{
		{name: "ISO", input: "2024-01-15", wantValid: true, want: "2024-01-15"},
		{name: "ISO leap day", input: "2024-02-29", wantValid: true, want: "2024-02-29"},
		{name: "slashes year first", input: "2024/03/07", wantValid: true, want: "2024-03-07"},
		{name: "dots year first", input: "2024.03.07", wantValid: true, want: "2024-03-07"},
		{name: "US short", input: "1/5/2024", wantValid: true, want: "2024-01-05"},
		{name: "US padded", input: "01/05/2024", wantValid: true, want: "2024-01-05"},
		{name: "US dashes", input: "12-31-2023", wantValid: true, want: "2023-12-31"},
		{name: "dotted", input: "1.5.2024", wantValid: true, want: "2024-01-05"},
		{name: "month name", input: "Jan 2, 2024", wantValid: true, want: "2024-01-02"},
		{name: "day month name", input: "2 Jan 2024", wantValid: true, want: "2024-01-02"},
		{name: "compact", input: "20240115", wantValid: true, want: "2024-01-15"},
		{name: "whitespace trimmed", input: "  2024-01-15 ", wantValid: true, want: "2024-01-15"},

		{name: "empty", input: "", wantValid: false},
		{name: "not a date", input: "someday", wantValid: false},
		{name: "invalid month", input: "2024-13-01", wantValid: false},
		{name: "not a leap year", input: "2023-02-29", wantValid: false},
		{name: "timestamp", input: "2024-01-15T10:00:00Z", wantValid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseDate(tt.input)
			if got.Valid != tt.wantValid {
				t.Fatalf("parseDate(%q).Valid = %v, want %v", tt.input, got.Valid, tt.wantValid)
			}
			if got.Valid {
				if s := got.Time.Format("2006-01-02"); s != tt.want {
					t.Errorf("parseDate(%q) = %s, want %s", tt.input, s, tt.want)
				}
			}
		})
	}
}

func TestParseDate_TwoDigitYear(t *testing.T) {
	originalPivot := TwoDigitYearPivot
	defer func() { TwoDigitYearPivot = originalPivot }()
	TwoDigitYearPivot = 20

	pivotYear := time.Now().Year() + TwoDigitYearPivot
	// Mirror parseDate: a 2-digit year past the pivot belongs to the 1900s.
	century := func(yy int) int {
		if 2000+yy > pivotYear {
			return 1900 + yy
		}
		return 2000 + yy
	}

	tests := []struct {
		input string
		yy    int
	}{
		{"01/15/25", 25},
		{"1/15/30", 30},
		{"01/15/85", 85},
		{"1-15-99", 99},
		{"01.15.99", 99},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := parseDate(tt.input)
			if !got.Valid {
				t.Fatalf("parseDate(%q) invalid", tt.input)
			}
			if want := century(tt.yy); got.Time.Year() != want {
				t.Errorf("parseDate(%q).Year = %d, want %d (pivot year: %d)",
					tt.input, got.Time.Year(), want, pivotYear)
			}
		})
	}
}

// ----------------------------------------------------------------------------
// parseBool Tests
// ----------------------------------------------------------------------------

func TestParseBool(t *testing.T) {
	tests := []struct {
		input     string
		wantValid bool
		want      bool
	}{
		{"true", true, true},
		{"TRUE", true, true},
		{"t", true, true},
		{"Yes", true, true},
		{"y", true, true},
		{"1", true, true},
		{" yes ", true, true},
		{"false", true, false},
		{"F", true, false},
		{"no", true, false},
		{"N", true, false},
		{"0", true, false},

		{"", false, false},
		{"maybe", false, false},
		{"2", false, false},
		{"on", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := parseBool(tt.input)
			if got.Valid != tt.wantValid {
				t.Fatalf("parseBool(%q).Valid = %v, want %v", tt.input, got.Valid, tt.wantValid)
			}
			if got.Bool != tt.want {
				t.Errorf("parseBool(%q).Bool = %v, want %v", tt.input, got.Bool, tt.want)
			}
		})
	}
}
