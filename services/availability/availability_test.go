package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"medisys/models"
)

type fakeScheduleRepo struct {
	blocks []models.WorkBlock
	err    error
}

func (f *fakeScheduleRepo) GetActiveWorkBlocks(ctx context.Context, doctorID, branchID string) ([]models.WorkBlock, error) {
	return f.blocks, f.err
}
func (f *fakeScheduleRepo) Create(ctx context.Context, block *models.WorkBlock) error { return nil }
func (f *fakeScheduleRepo) GetByDoctor(ctx context.Context, doctorID string) ([]models.WorkBlock, error) {
	return f.blocks, nil
}
func (f *fakeScheduleRepo) SetActive(ctx context.Context, blockID string, active bool) error {
	return nil
}
func (f *fakeScheduleRepo) DeleteByID(ctx context.Context, blockID string) error { return nil }

type fakeBookingRepo struct {
	bookings []models.Booking
	err      error
}

func (f *fakeBookingRepo) GetOccupyingBookings(ctx context.Context, doctorID, branchID, weekStart, weekEnd string) ([]models.Booking, error) {
	return f.bookings, f.err
}
func (f *fakeBookingRepo) Create(ctx context.Context, booking *models.Booking) error { return nil }
func (f *fakeBookingRepo) GetByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	return nil, errors.New("not found")
}
func (f *fakeBookingRepo) Cancel(ctx context.Context, bookingID string) error { return nil }

type fakeExceptionRepo struct {
	exceptions []models.Exception
	err        error
}

func (f *fakeExceptionRepo) GetExceptions(ctx context.Context, doctorID, weekStart, weekEnd string) ([]models.Exception, error) {
	return f.exceptions, f.err
}
func (f *fakeExceptionRepo) Create(ctx context.Context, exception *models.Exception) error {
	return nil
}
func (f *fakeExceptionRepo) GetByDoctor(ctx context.Context, doctorID string) ([]models.Exception, error) {
	return f.exceptions, nil
}
func (f *fakeExceptionRepo) DeleteByID(ctx context.Context, exceptionID string) error { return nil }

func newTestService(schedules *fakeScheduleRepo, bookings *fakeBookingRepo, exceptions *fakeExceptionRepo) *DefaultAvailabilityService {
	return &DefaultAvailabilityService{
		ScheduleRepo:  schedules,
		BookingRepo:   bookings,
		ExceptionRepo: exceptions,
		Occupying:     models.ParseStatusSet("pending,confirmed"),
		Clock:         func() time.Time { return beforeWeek },
	}
}

func TestGetWeekAvailability_ValidatesParameters(t *testing.T) {
	svc := newTestService(&fakeScheduleRepo{}, &fakeBookingRepo{}, &fakeExceptionRepo{})

	if _, err := svc.GetWeekAvailability(context.Background(), "", "br-1", monday, 0); err == nil {
		t.Fatal("expected error for missing doctor id")
	}
	if _, err := svc.GetWeekAvailability(context.Background(), "dr-1", "", monday, 0); err == nil {
		t.Fatal("expected error for missing branch id")
	}
}

func TestGetWeekAvailability_HappyPath(t *testing.T) {
	schedules := &fakeScheduleRepo{blocks: []models.WorkBlock{mondayBlock(480, 600, 30)}}
	bookings := &fakeBookingRepo{bookings: []models.Booking{
		{Date: "2026-02-02", Start: 540, Status: "pending"},
	}}
	svc := newTestService(schedules, bookings, &fakeExceptionRepo{})

	week, err := svc.GetWeekAvailability(context.Background(), "dr-1", "br-1", monday.AddDate(0, 0, 4), 0)
	if err != nil {
		t.Fatalf("GetWeekAvailability error: %v", err)
	}
	if week.WeekStart != "2026-02-02" || week.WeekEnd != "2026-02-08" {
		t.Fatalf("expected Monday-aligned window, got [%s, %s]", week.WeekStart, week.WeekEnd)
	}
	if len(week.Slots) != 4 {
		t.Fatalf("expected 4 slots, got %d", len(week.Slots))
	}
	available := 0
	for _, s := range week.Slots {
		if s.Available {
			available++
		}
	}
	if available != 3 {
		t.Fatalf("expected 3 available slots around the booking, got %d", available)
	}
}

func TestGetWeekAvailability_OffsetShiftsWindow(t *testing.T) {
	svc := newTestService(&fakeScheduleRepo{}, &fakeBookingRepo{}, &fakeExceptionRepo{})

	week, err := svc.GetWeekAvailability(context.Background(), "dr-1", "br-1", monday, 2)
	if err != nil {
		t.Fatalf("GetWeekAvailability error: %v", err)
	}
	if week.WeekStart != "2026-02-16" {
		t.Fatalf("expected window shifted two weeks, got %s", week.WeekStart)
	}
}

func TestGetWeekAvailability_NoScheduleIsEmptyWeek(t *testing.T) {
	svc := newTestService(&fakeScheduleRepo{}, &fakeBookingRepo{}, &fakeExceptionRepo{})

	week, err := svc.GetWeekAvailability(context.Background(), "dr-1", "br-1", monday, 0)
	if err != nil {
		t.Fatalf("a doctor with no schedule is not an error: %v", err)
	}
	if len(week.Slots) != 0 {
		t.Fatalf("expected empty week, got %d slots", len(week.Slots))
	}
}

func TestGetWeekAvailability_CollaboratorOutageDegrades(t *testing.T) {
	schedules := &fakeScheduleRepo{blocks: []models.WorkBlock{mondayBlock(480, 600, 30)}}
	bookings := &fakeBookingRepo{err: errors.New("booking store down")}
	exceptions := &fakeExceptionRepo{err: errors.New("exception store down")}
	svc := newTestService(schedules, bookings, exceptions)

	week, err := svc.GetWeekAvailability(context.Background(), "dr-1", "br-1", monday, 0)
	if err != nil {
		t.Fatalf("snapshot outage must not fail listing: %v", err)
	}
	if len(week.Slots) != 4 {
		t.Fatalf("expected 4 slots, got %d", len(week.Slots))
	}
	for _, s := range week.Slots {
		if !s.Available {
			t.Fatalf("with empty snapshots slot %d must be available", s.Start)
		}
	}
}

func TestGetWeekAvailability_ScheduleStoreFailureIsFatal(t *testing.T) {
	schedules := &fakeScheduleRepo{err: errors.New("schedule store down")}
	svc := newTestService(schedules, &fakeBookingRepo{}, &fakeExceptionRepo{})

	if _, err := svc.GetWeekAvailability(context.Background(), "dr-1", "br-1", monday, 0); err == nil {
		t.Fatal("expected error when the schedule snapshot cannot be read")
	}
}
