package store

import (
	"errors"
	"testing"
	"time"
)

func date(t *testing.T, v string) time.Time {
	t.Helper()
	d, err := time.Parse(DateLayout, v)
	if err != nil {
		t.Fatalf("parse date %q: %v", v, err)
	}
	return d
}

func TestBookingsEmptyOnAbsentFile(t *testing.T) {
	s := newTestFileStore(t)

	bookings, err := s.Bookings()
	if err != nil {
		t.Fatalf("Bookings error: %v", err)
	}
	if len(bookings) != 0 {
		t.Fatalf("expected no bookings, got %d", len(bookings))
	}
}

func TestCreateBookingSuccess(t *testing.T) {
	s := newTestFileStore(t)

	b, err := s.CreateBooking(BookingRequest{
		HoardingID: "h-1",
		UserName:   "Asha Verma",
		Phone:      "9876543210",
		Email:      "asha@example.com",
		StartDate:  date(t, "2026-10-01"),
		EndDate:    date(t, "2026-12-31"),
	})
	if err != nil {
		t.Fatalf("CreateBooking error: %v", err)
	}
	if b.ID == "" {
		t.Fatal("expected a generated booking id")
	}
	if b.Status != StatusPending {
		t.Fatalf("expected Pending status, got %q", b.Status)
	}

	bookings, err := s.Bookings()
	if err != nil {
		t.Fatalf("Bookings error: %v", err)
	}
	if len(bookings) != 1 {
		t.Fatalf("expected 1 booking, got %d", len(bookings))
	}
	got := bookings[0]
	if got.ID != b.ID || got.HoardingID != "h-1" || got.UserName != "Asha Verma" {
		t.Fatalf("unexpected booking: %#v", got)
	}
	if !got.StartDate.Equal(b.StartDate) || !got.EndDate.Equal(b.EndDate) {
		t.Fatalf("date drift: %#v", got)
	}
}

func TestCreateBookingAgainstUnknownHoarding(t *testing.T) {
	// The engine deliberately does not enforce that the hoarding
	// exists; the booking is accepted as-is.
	s := newTestFileStore(t)

	if _, err := s.CreateBooking(BookingRequest{
		HoardingID: "never-created",
		UserName:   "Asha Verma",
		Phone:      "9876543210",
		Email:      "asha@example.com",
		StartDate:  date(t, "2026-10-01"),
		EndDate:    date(t, "2026-10-01"),
	}); err != nil {
		t.Fatalf("CreateBooking error: %v", err)
	}
}

func TestCreateBookingValidation(t *testing.T) {
	start := "2026-10-01"
	tests := []struct {
		name string
		req  BookingRequest
	}{
		{name: "missing user name", req: BookingRequest{Phone: "1", Email: "a@b.c"}},
		{name: "missing phone", req: BookingRequest{UserName: "Asha", Email: "a@b.c"}},
		{name: "missing email", req: BookingRequest{UserName: "Asha", Phone: "1"}},
		{
			name: "end before start",
			req: BookingRequest{
				UserName: "Asha", Phone: "1", Email: "a@b.c",
				StartDate: mustDate(start), EndDate: mustDate("2026-09-30"),
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			s := newTestFileStore(t)
			if _, err := s.CreateBooking(tc.req); !errors.Is(err, ErrInvalidBooking) {
				t.Fatalf("expected ErrInvalidBooking, got %v", err)
			}
			bookings, _ := s.Bookings()
			if len(bookings) != 0 {
				t.Fatalf("validation failure must not persist, got %d bookings", len(bookings))
			}
		})
	}
}

func TestCreateBookingSameDayAllowed(t *testing.T) {
	s := newTestFileStore(t)

	if _, err := s.CreateBooking(BookingRequest{
		HoardingID: "h-1",
		UserName:   "Asha",
		Phone:      "1",
		Email:      "a@b.c",
		StartDate:  date(t, "2026-10-01"),
		EndDate:    date(t, "2026-10-01"),
	}); err != nil {
		t.Fatalf("same-day booking should be valid, got %v", err)
	}
}

func mustDate(v string) time.Time {
	d, err := time.Parse(DateLayout, v)
	if err != nil {
		panic(err)
	}
	return d
}
