package models

import "time"

// Unavailability reasons carried on a resolved Slot. Exception-blocked
// slots carry the exception type as their reason.
const ReasonBooked = "booked"

// Slot is one bookable appointment window, computed fresh per request
// and never persisted.
type Slot struct {
	Date      string    `json:"date"`      // e.g., "2026-09-07"
	Start     int       `json:"start"`     // minutes from midnight
	Time      string    `json:"time"`      // "HH:MM" display form of Start
	StartAt   time.Time `json:"startAt"`   // combined date+time timestamp
	Weekday   int       `json:"weekday"`   // 1 = Monday .. 7 = Sunday, for display grouping
	Duration  int       `json:"duration"`  // minutes, inherited from the producing WorkBlock
	Available bool      `json:"available"`
	Reason    string    `json:"reason,omitempty"` // why unavailable, when Available is false
}

// WeekAvailability is the annotated slot list for one doctor, branch and week.
type WeekAvailability struct {
	DoctorID  string `json:"doctorId"`
	BranchID  string `json:"branchId"`
	WeekStart string `json:"weekStart"` // Monday, "2006-01-02"
	WeekEnd   string `json:"weekEnd"`   // Sunday, "2006-01-02"
	Slots     []Slot `json:"slots"`
}
