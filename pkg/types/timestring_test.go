package types

import (
	"testing"
	"time"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if ts.String() != "09:30" {
		t.Fatalf("expected 09:30, got %s", ts)
	}
}

func TestNewTimeStringFromString_RejectsInvalid(t *testing.T) {
	cases := []string{"", "9:30", "24:00", "12:60", "12-30", "12:30:00", "abc"}
	for _, c := range cases {
		if _, err := NewTimeStringFromString(c); err == nil {
			t.Fatalf("expected error for %q", c)
		}
	}
}

func TestTimeString_IsBefore(t *testing.T) {
	a := TimeString("08:00")
	b := TimeString("09:00")

	if !a.IsBefore(b) {
		t.Fatalf("08:00 should be before 09:00")
	}
	if b.IsBefore(a) {
		t.Fatalf("09:00 should not be before 08:00")
	}
	if a.IsBefore(a) {
		t.Fatalf("time should not be before itself")
	}
}

func TestTimeString_MinutesUntil(t *testing.T) {
	a := TimeString("18:00")
	b := TimeString("19:30")

	minutes, err := a.MinutesUntil(b)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if minutes != 90 {
		t.Fatalf("expected 90 minutes, got %d", minutes)
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	a := TimeString("22:30")

	res, err := a.AddMinutes(60)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if res.String() != "23:30" {
		t.Fatalf("expected 23:30, got %s", res)
	}

	if _, err := a.AddMinutes(120); err == nil {
		t.Fatalf("expected error when crossing midnight")
	}
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	if err := ts.Scan("18:00:00"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if ts.String() != "18:00" {
		t.Fatalf("expected seconds trimmed, got %s", ts)
	}

	if err := ts.Scan([]byte("07:15")); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if ts.String() != "07:15" {
		t.Fatalf("expected 07:15, got %s", ts)
	}

	moment := time.Date(2025, 8, 11, 14, 45, 0, 0, time.UTC)
	if err := ts.Scan(moment); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if ts.String() != "14:45" {
		t.Fatalf("expected 14:45, got %s", ts)
	}
}
