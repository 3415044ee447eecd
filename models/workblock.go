package models

import "time"

// WorkBlock is a doctor's recurring weekly availability rule for one branch.
type WorkBlock struct {
	ID           string    `bson:"id" json:"id"`
	DoctorID     string    `bson:"doctorId" json:"doctorId"`
	BranchID     string    `bson:"branchId" json:"branchId"`
	Weekday      int       `bson:"weekday" json:"weekday"`           // 1 = Monday .. 7 = Sunday
	Start        int       `bson:"start" json:"start"`               // minutes from midnight (e.g., 480 for 8:00 AM)
	End          int       `bson:"end" json:"end"`                   // minutes from midnight (e.g., 600 for 10:00 AM)
	SlotDuration int       `bson:"slotDuration" json:"slotDuration"` // appointment length in minutes
	Active       bool      `bson:"active" json:"active"`
	CreatedAt    time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt    time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// Valid reports whether the block can produce slots. Malformed blocks
// are skipped by the generator, never fatal.
func (b WorkBlock) Valid() bool {
	return b.Start < b.End && b.SlotDuration > 0 && b.Weekday >= 1 && b.Weekday <= 7
}

// ISOWeekday maps a calendar date to the 1=Monday..7=Sunday numbering
// used by WorkBlock, regardless of the host locale's first weekday.
func ISOWeekday(t time.Time) int {
	return int(t.Weekday()+6)%7 + 1
}
