package tsparse

import "testing"

func TestParseDateOnly(t *testing.T) {
	ts, ok := Parse("2000-10-22")
	if !ok {
		t.Fatalf("expected date-only parse to succeed")
	}
	if !ts.DateOnly {
		t.Errorf("expected DateOnly flag set")
	}
}

func TestParseDateSlash(t *testing.T) {
	ts, ok := Parse("2000/10/22")
	if !ok {
		t.Fatalf("expected slash-separated date to parse")
	}
	if !ts.DateOnly {
		t.Errorf("expected DateOnly flag set")
	}
}

func TestParseDateCompact(t *testing.T) {
	ts1, ok1 := Parse("20001022")
	ts2, ok2 := Parse("2000-10-22")
	if !ok1 || !ok2 {
		t.Fatalf("expected both forms to parse")
	}
	if ts1.UnixNano != ts2.UnixNano {
		t.Errorf("expected compact and hyphenated dates to agree")
	}
}

func TestParseTimeOnlyWithOffset(t *testing.T) {
	ts, ok := Parse("14:30:00+02:00")
	if !ok {
		t.Fatalf("expected time-only with offset to parse")
	}
	if !ts.HasTZ || ts.TZOffsetMinutes != 120 {
		t.Errorf("expected +02:00 offset, got %+v", ts)
	}
}

func TestParseCombined(t *testing.T) {
	ts, ok := Parse("2000-10-22T14:30:00")
	if !ok {
		t.Fatalf("expected combined form to parse")
	}
	if ts.DateOnly || ts.TimeOnly {
		t.Errorf("combined timestamp should not set DateOnly/TimeOnly")
	}
}

func TestParseAmbiguousNonYMDRejected(t *testing.T) {
	// 10-22-2000 is M-D-Y; only Y-M-D (4-digit leading field) is supported.
	if _, ok := Parse("10-22-2000"); ok {
		t.Errorf("expected non-Y-M-D triple to be rejected")
	}
}

func TestFormatRoundTrip(t *testing.T) {
	ts, ok := Parse("2000-10-22")
	if !ok {
		t.Fatalf("setup: parse failed")
	}
	out := Format(nil, ts.UnixNano, "2006-01-02", 0, TZUTC, 0, true)
	if string(out) != "2000-10-22" {
		t.Errorf("expected round-trip format, got %q", out)
	}
}
