package models

import "time"

// ExceptionType classifies a date-scoped schedule override.
type ExceptionType string

const (
	ExceptionNonWorkingDay ExceptionType = "non_working_day"
	ExceptionVacation      ExceptionType = "vacation"
	ExceptionHoliday       ExceptionType = "holiday"
	ExceptionPartialBlock  ExceptionType = "partial_block"
)

// Exception blocks a doctor's availability for a whole date or, for
// partial_block, only the [Start, End) time range of that date.
type Exception struct {
	ID        string        `bson:"id" json:"id"`
	DoctorID  string        `bson:"doctorId" json:"doctorId"`
	Date      string        `bson:"date" json:"date"` // e.g., "2026-09-07"
	Type      ExceptionType `bson:"type" json:"type"`
	Start     *int          `bson:"start,omitempty" json:"start,omitempty"` // minutes from midnight; partial_block only
	End       *int          `bson:"end,omitempty" json:"end,omitempty"`     // minutes from midnight; partial_block only
	Reason    string        `bson:"reason,omitempty" json:"reason,omitempty"`
	CreatedAt time.Time     `bson:"createdAt" json:"createdAt"`
}

// WholeDay reports whether the exception blocks every slot on its date.
// A partial_block without a usable time range degrades to whole-day
// rather than silently blocking nothing.
func (e Exception) WholeDay() bool {
	if e.Type != ExceptionPartialBlock {
		return true
	}
	return e.Start == nil || e.End == nil || *e.Start >= *e.End
}

// Covers reports whether a partial exception's time range contains the
// given slot start.
func (e Exception) Covers(start int) bool {
	if e.WholeDay() {
		return true
	}
	return start >= *e.Start && start < *e.End
}
