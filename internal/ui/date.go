package ui

import (
	"encoding/json"
	"math"
	"strconv"
	"time"
)

// dateTag is the key of the wrapped-timestamp date encoding used by the
// entity serializer ({"$date": <ms since epoch>}).
const dateTag = "$date"

// dateLayouts are tried in order for string-encoded dates.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// NormalizeDate converts any of the serializer's date encodings into a
// calendar-date string suitable for a date input: a wrapped timestamp
// ({"$date": ms} with the milliseconds as a number or a numeric string),
// a native time.Time, an ISO-ish string, or nil. It returns a zero-padded
// YYYY-MM-DD string, or "" when the value is absent or unparseable. It
// never panics; every failure path degrades to "".
func NormalizeDate(v any) string {
	switch d := v.(type) {
	case nil:
		return ""
	case time.Time:
		return formatDay(d)
	case *time.Time:
		if d == nil {
			return ""
		}
		return formatDay(*d)
	case map[string]any:
		raw, ok := d[dateTag]
		if !ok {
			return ""
		}
		ms, ok := epochMillis(raw)
		if !ok {
			return ""
		}
		// Epoch milliseconds are UTC-relative; the calendar fields are
		// rendered in the local zone, matching date-from-timestamp
		// semantics on the client side.
		return formatDay(time.UnixMilli(ms).In(time.Local))
	case string:
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, d); err == nil {
				return formatDay(t)
			}
		}
		return ""
	default:
		return ""
	}
}

func formatDay(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

// epochMillis extracts a millisecond timestamp from the wrapped-timestamp
// payload value, which may arrive as a JSON number or a numeric string.
func epochMillis(raw any) (int64, bool) {
	switch n := raw.(type) {
	case json.Number:
		if ms, err := n.Int64(); err == nil {
			return ms, true
		}
		f, err := n.Float64()
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return int64(f), true
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return int64(n), true
	case int64:
		return n, true
	case int:
		return int64(n), true
	case string:
		ms, err := strconv.ParseInt(n, 10, 64)
		if err != nil {
			return 0, false
		}
		return ms, true
	default:
		return 0, false
	}
}
