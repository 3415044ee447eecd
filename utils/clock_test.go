package utils

import "testing"

func TestMinutesToClock(t *testing.T) {
	cases := map[int]string{
		0:    "00:00",
		480:  "08:00",
		510:  "08:30",
		1439: "23:59",
	}
	for m, want := range cases {
		if got := MinutesToClock(m); got != want {
			t.Fatalf("MinutesToClock(%d) = %q, want %q", m, got, want)
		}
	}
}

func TestClockToMinutes(t *testing.T) {
	for _, s := range []string{"08:00", "23:59", "00:00"} {
		m, err := ClockToMinutes(s)
		if err != nil {
			t.Fatalf("ClockToMinutes(%q) error: %v", s, err)
		}
		if MinutesToClock(m) != s {
			t.Fatalf("round-trip failed for %q: got %d", s, m)
		}
	}

	for _, s := range []string{"9am", "24:00", "08:60", "08", "-1:00", "a:b"} {
		if _, err := ClockToMinutes(s); err == nil {
			t.Fatalf("expected error for %q", s)
		}
	}
}
