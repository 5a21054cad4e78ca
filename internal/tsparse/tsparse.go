// Package tsparse implements the pluggable Timestamp parser and formatter
// hooks described in §6.4, kept separate from package value so the value
// substrate never depends on a specific grammar.
package tsparse

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/leengari/tabframe/internal/value"
)

// TZPolicy selects the location Format converts the instant into before
// applying the layout; the zone appears in the output only when the layout
// contains a zone element.
type TZPolicy int

const (
	// TZNone converts to local time, or to UTC when useUTCIfUnset is set.
	TZNone TZPolicy = iota
	// TZOffset converts to the fixed offset given by tzOffsetMinutes.
	TZOffset
	// TZUTC converts to UTC.
	TZUTC
)

// Parse implements the grammar from the GLOSSARY:
//
//	date-only:    YYYY-MM-DD | YYYY/MM/DD | YYYYMMDD
//	time-only:    HH:MM:SS[.sub][±HH[:]MM]
//	combined:     <date>(T| )<time>
//
// Per §9's open question, ambiguous "a-b-c" triples are resolved by
// digit-count: a 4-digit leading field is treated as Y-M-D. Any other
// arrangement (e.g. M-D-Y) is rejected rather than guessed at — the teacher's
// own date parsing (internal/engine/validation.go) only ever accepts Y-M-D,
// so tabframe preserves that behavior instead of inventing a new heuristic.
func Parse(s string) (value.Timestamp, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return value.Timestamp{}, false
	}

	if idx := splitCombined(s); idx >= 0 {
		datePart, timePart := s[:idx], s[idx+1:]
		d, ok := parseDate(datePart)
		if !ok {
			return value.Timestamp{}, false
		}
		tm, offMin, hasTZ, ok := parseTime(timePart)
		if !ok {
			return value.Timestamp{}, false
		}
		combined := time.Date(d.Year(), d.Month(), d.Day(),
			tm.Hour(), tm.Minute(), tm.Second(), tm.Nanosecond(), time.UTC)
		if hasTZ {
			combined = combined.Add(-time.Duration(offMin) * time.Minute)
		}
		return value.Timestamp{
			UnixNano:        combined.UnixNano(),
			TZOffsetMinutes: offMin,
			HasTZ:           hasTZ,
		}, true
	}

	if d, ok := parseDate(s); ok {
		return value.Timestamp{
			UnixNano: d.UnixNano(),
			DateOnly: true,
		}, true
	}

	if tm, offMin, hasTZ, ok := parseTime(s); ok {
		adjusted := tm
		if hasTZ {
			adjusted = tm.Add(-time.Duration(offMin) * time.Minute)
		}
		return value.Timestamp{
			UnixNano:        adjusted.UnixNano(),
			TZOffsetMinutes: offMin,
			HasTZ:           hasTZ,
			TimeOnly:        true,
		}, true
	}

	return value.Timestamp{}, false
}

// splitCombined finds the separator between a date part and a time part in
// a combined timestamp string ('T' or a single space), returning -1 if s
// looks like a bare date or bare time.
func splitCombined(s string) int {
	if idx := strings.IndexByte(s, 'T'); idx > 0 {
		return idx
	}
	if idx := strings.IndexByte(s, ' '); idx > 0 {
		return idx
	}
	return -1
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range []string{"2006-01-02", "2006/01/02", "20060102"} {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseTime parses HH:MM:SS[.sub][±HH[:]MM], returning the wall-clock time
// (year zero, UTC), the tz offset in minutes (if present), and whether a tz
// was present. The final bool reports overall success.
func parseTime(s string) (t time.Time, offMin int32, hasTZ bool, ok bool) {
	sign := 0
	tzIdx := -1
	for i := len(s) - 1; i >= 0; i-- {
		switch s[i] {
		case '+':
			sign, tzIdx = 1, i
		case '-':
			sign, tzIdx = -1, i
		}
		if tzIdx >= 0 {
			break
		}
	}

	timePart := s
	if tzIdx > 0 {
		timePart = s[:tzIdx]
		tzPart := strings.ReplaceAll(s[tzIdx+1:], ":", "")
		if len(tzPart) == 4 {
			hh, err1 := strconv.Atoi(tzPart[:2])
			mm, err2 := strconv.Atoi(tzPart[2:])
			if err1 == nil && err2 == nil {
				offMin = int32(sign) * int32(hh*60+mm)
				hasTZ = true
			}
		}
	}

	var err error
	if strings.Contains(timePart, ".") {
		t, err = time.ParseInLocation("15:04:05.999999999", timePart, time.UTC)
	} else {
		t, err = time.ParseInLocation("15:04:05", timePart, time.UTC)
	}
	if err != nil {
		return time.Time{}, 0, false, false
	}
	return t, offMin, hasTZ, true
}

// Format implements the (buf, epoch_ns, layout, subsecondDigits, tzPolicy,
// tzOffsetMinutes, useUTCIfUnset) hook signature from §6.4. layout uses Go's
// reference-time syntax rather than strftime verbs, which is the idiomatic
// equivalent in this ecosystem (time.Time.Format).
func Format(buf []byte, epochNano int64, layout string, subsecondDigits int, policy TZPolicy, tzOffsetMinutes int32, useUTCIfUnset bool) []byte {
	loc := time.UTC
	t := time.Unix(0, epochNano).In(loc)

	switch policy {
	case TZOffset:
		fixed := time.FixedZone(offsetName(tzOffsetMinutes), int(tzOffsetMinutes)*60)
		t = t.In(fixed)
	case TZUTC:
		t = t.In(time.UTC)
	default:
		if !useUTCIfUnset {
			t = t.In(time.Local)
		}
	}

	out := t.Format(layout)
	if subsecondDigits > 0 {
		frac := fmt.Sprintf(".%0*d", subsecondDigits, int64(t.Nanosecond())/pow10(9-subsecondDigits))
		out += frac
	}
	buf = append(buf, out...)
	return buf
}

func offsetName(minutes int32) string {
	sign := "+"
	m := minutes
	if m < 0 {
		sign = "-"
		m = -m
	}
	return fmt.Sprintf("UTC%s%02d:%02d", sign, m/60, m%60)
}

func pow10(n int) int64 {
	r := int64(1)
	for i := 0; i < n; i++ {
		r *= 10
	}
	return r
}
