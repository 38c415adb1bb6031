package timeutil

import (
	"testing"
	"time"
)

func TestParseAndFormatDateRoundTrip(t *testing.T) {
	parsed, err := ParseDate("2025-11-09")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := FormatDate(parsed); got != "2025-11-09" {
		t.Fatalf("expected round trip, got %s", got)
	}
}

func TestParseKickoffAcceptsFeedVariants(t *testing.T) {
	cases := []string{
		"2025-11-09T18:00:00Z",
		"2025-11-09T18:00Z",
		"2025-11-09T18:00:00",
		"2025-11-09 18:00:00",
		"2025-11-09",
	}
	for _, raw := range cases {
		if _, ok := ParseKickoff(raw); !ok {
			t.Fatalf("expected %q to parse", raw)
		}
	}
}

func TestParseKickoffRejectsGarbage(t *testing.T) {
	for _, raw := range []string{"", "  ", "not-a-date", "13:00 Sunday"} {
		if _, ok := ParseKickoff(raw); ok {
			t.Fatalf("expected %q to be rejected", raw)
		}
	}
}

func TestSameDayUsesUTCCalendar(t *testing.T) {
	morning := time.Date(2025, 11, 9, 1, 0, 0, 0, time.UTC)
	night := time.Date(2025, 11, 9, 23, 59, 0, 0, time.UTC)
	nextDay := time.Date(2025, 11, 10, 0, 1, 0, 0, time.UTC)

	if !SameDay(morning, night) {
		t.Fatal("expected same UTC day")
	}
	if SameDay(night, nextDay) {
		t.Fatal("expected different UTC days")
	}
}
