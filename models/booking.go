package models

import (
	"strings"
	"time"
)

// Booking is an appointment occupying (or having once occupied) one slot.
type Booking struct {
	ID        string    `bson:"id" json:"id"`
	DoctorID  string    `bson:"doctorId" json:"doctorId"`
	BranchID  string    `bson:"branchId" json:"branchId"`
	PatientID string    `bson:"patientId" json:"patientId"`
	Date      string    `bson:"date" json:"date"`   // e.g., "2026-09-07"
	Start     int       `bson:"start" json:"start"` // minutes from midnight
	Status    string    `bson:"status" json:"status"`
	Occupying bool      `bson:"occupying" json:"occupying"` // derived from Status; indexed for slot uniqueness
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// BookingRequest is the payload for creating a booking against a chosen slot.
type BookingRequest struct {
	DoctorID  string `json:"doctorId" binding:"required"`
	BranchID  string `json:"branchId" binding:"required"`
	PatientID string `json:"patientId" binding:"required"`
	Date      string `json:"date" binding:"required"` // "2006-01-02"
	Time      string `json:"time" binding:"required"` // "HH:MM"
}

// StatusSet is the configurable set of booking statuses that occupy a slot.
type StatusSet map[string]struct{}

// ParseStatusSet builds a StatusSet from a comma-separated config value.
// Matching is case-insensitive; blank entries are dropped.
func ParseStatusSet(csv string) StatusSet {
	set := StatusSet{}
	for _, s := range strings.Split(csv, ",") {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			set[s] = struct{}{}
		}
	}
	return set
}

// Contains reports whether status is in the set.
func (s StatusSet) Contains(status string) bool {
	_, ok := s[strings.ToLower(strings.TrimSpace(status))]
	return ok
}
