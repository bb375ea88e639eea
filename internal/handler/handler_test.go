package handler

import (
	"testing"
	"time"
)

func TestDurationFormat(t *testing.T) {
	cases := []struct {
		minutes int
		want    string
	}{
		{-5, "N/A"},
		{0, "0m"},
		{45, "45m"},
		{60, "1h"},
		{95, "1h 35m"},
		{600, "10h"},
	}
	for _, tc := range cases {
		if got := DurationFormat(tc.minutes); got != tc.want {
			t.Errorf("DurationFormat(%d) = %q, want %q", tc.minutes, got, tc.want)
		}
	}
}

func TestDateFormat(t *testing.T) {
	if got := DateFormat(nil); got != "N/A" {
		t.Errorf("DateFormat(nil) = %q", got)
	}
	d := time.Date(2024, 7, 3, 12, 0, 0, 0, time.UTC)
	if got := DateFormat(&d); got != "2024-07-03" {
		t.Errorf("DateFormat = %q", got)
	}
	zero := time.Time{}
	if got := DateFormat(&zero); got != "N/A" {
		t.Errorf("DateFormat(zero) = %q", got)
	}
}
