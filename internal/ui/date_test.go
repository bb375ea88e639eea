package ui

import (
	"encoding/json"
	"math"
	"os"
	"regexp"
	"testing"
	"time"
)

func TestMain(m *testing.M) {
	// Calendar fields of wrapped timestamps are rendered in the local zone;
	// pin it so the expected dates are stable.
	time.Local = time.UTC
	os.Exit(m.Run())
}

var dayPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

func TestNormalizeDateWrappedTimestamp(t *testing.T) {
	got := NormalizeDate(map[string]any{"$date": int64(1700000000000)})
	if got != "2023-11-14" {
		t.Errorf("Expected 2023-11-14, got %q", got)
	}
}

func TestNormalizeDateNumericStringAgreesWithNumeric(t *testing.T) {
	asNumber := NormalizeDate(map[string]any{"$date": int64(1700000000000)})
	asString := NormalizeDate(map[string]any{"$date": "1700000000000"})
	asJSONNumber := NormalizeDate(map[string]any{"$date": json.Number("1700000000000")})
	asFloat := NormalizeDate(map[string]any{"$date": float64(1700000000000)})

	if asString != asNumber {
		t.Errorf("numeric-string gave %q, numeric gave %q", asString, asNumber)
	}
	if asJSONNumber != asNumber {
		t.Errorf("json.Number gave %q, numeric gave %q", asJSONNumber, asNumber)
	}
	if asFloat != asNumber {
		t.Errorf("float gave %q, numeric gave %q", asFloat, asNumber)
	}
}

func TestNormalizeDateNativeTime(t *testing.T) {
	d := time.Date(2024, 3, 7, 15, 4, 5, 0, time.UTC)
	if got := NormalizeDate(d); got != "2024-03-07" {
		t.Errorf("Expected 2024-03-07, got %q", got)
	}
	if got := NormalizeDate(&d); got != "2024-03-07" {
		t.Errorf("Expected 2024-03-07 from pointer, got %q", got)
	}

	var nilTime *time.Time
	if got := NormalizeDate(nilTime); got != "" {
		t.Errorf("Expected empty for nil *time.Time, got %q", got)
	}
	if got := NormalizeDate(time.Time{}); got != "" {
		t.Errorf("Expected empty for zero time, got %q", got)
	}
}

func TestNormalizeDateStrings(t *testing.T) {
	cases := map[string]string{
		"2024-01-05":           "2024-01-05",
		"2024-01-05T10:30:00Z": "2024-01-05",
		"2024-01-05T10:30:00":  "2024-01-05",
		"2024-01-05 10:30:00":  "2024-01-05",
		"not-a-date":           "",
		"":                     "",
	}
	for in, want := range cases {
		if got := NormalizeDate(in); got != want {
			t.Errorf("NormalizeDate(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalizeDateNeverPanics(t *testing.T) {
	inputs := []any{
		nil,
		"",
		"garbage",
		42,
		3.14,
		true,
		[]string{"x"},
		map[string]any{},
		map[string]any{"$date": nil},
		map[string]any{"$date": "not-a-number"},
		map[string]any{"$date": math.NaN()},
		map[string]any{"$date": math.Inf(1)},
		map[string]any{"$date": []any{1, 2}},
		map[string]any{"other": int64(5)},
		struct{}{},
	}
	for _, in := range inputs {
		got := NormalizeDate(in)
		if got != "" && !dayPattern.MatchString(got) {
			t.Errorf("NormalizeDate(%#v) = %q, want empty or YYYY-MM-DD", in, got)
		}
	}
}
