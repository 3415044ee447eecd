// File: utils/clock.go
package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// MinutesToClock renders minutes-from-midnight as "HH:MM" (e.g., 480 -> "08:00").
func MinutesToClock(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// ClockToMinutes parses "HH:MM" into minutes from midnight.
func ClockToMinutes(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock time %q, expected HH:MM", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid hour in clock time %q", s)
	}
	min, err := strconv.Atoi(parts[1])
	if err != nil || min < 0 || min > 59 {
		return 0, fmt.Errorf("invalid minute in clock time %q", s)
	}
	return h*60 + min, nil
}
