// File: services/availability/week.go
package availability

import "time"

// WeekWindow is a Monday-aligned 7-day window. Start is Monday 00:00 in
// the window's location; End is the following Sunday's date.
type WeekWindow struct {
	Start time.Time
	End   time.Time
}

// WeekOf returns the window of the week containing ref. Monday is always
// the first day of the week regardless of the host locale.
func WeekOf(ref time.Time) WeekWindow {
	day := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	monday := day.AddDate(0, 0, -int((day.Weekday()+6)%7))
	return WeekWindow{
		Start: monday,
		End:   monday.AddDate(0, 0, 6),
	}
}

// Shift moves the window by whole weeks; negative values move backward.
func (w WeekWindow) Shift(weeks int) WeekWindow {
	return WeekWindow{
		Start: w.Start.AddDate(0, 0, 7*weeks),
		End:   w.End.AddDate(0, 0, 7*weeks),
	}
}

// Day returns the date of the i-th day of the window (0 = Monday).
func (w WeekWindow) Day(i int) time.Time {
	return w.Start.AddDate(0, 0, i)
}

// Contains reports whether the given date falls inside the window.
func (w WeekWindow) Contains(date time.Time) bool {
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, w.Start.Location())
	return !d.Before(w.Start) && !d.After(w.End)
}
