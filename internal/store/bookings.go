package store

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Bookings reads every booking from the backing file, empty-on-absent
// like Listings.
func (s *FileStore) Bookings() ([]Booking, error) {
	return s.loadBookings(), nil
}

func (s *FileStore) loadBookings() []Booking {
	records, err := readRecords(s.bookingsPath)
	if err != nil {
		return nil
	}
	bookings := make([]Booking, 0, len(records))
	for _, rec := range records {
		bookings = append(bookings, decodeBooking(rec))
	}
	return bookings
}

func (s *FileStore) saveBookings(bookings []Booking) error {
	records := make([]record, 0, len(bookings))
	for _, b := range bookings {
		records = append(records, encodeBooking(b))
	}
	if err := writeRecords(s.bookingsPath, bookingColumns, records); err != nil {
		return fmt.Errorf("save bookings: %w", err)
	}
	return nil
}

// CreateBooking validates the request, assigns a fresh id and persists
// the booking with status Pending.
//
// The target hoarding is not checked for existence or availability, and
// creating a booking does not flip the hoarding's availability: bookings
// start Pending and an operator marks the hoarding booked when the deal
// closes. Rejecting unknown hoarding ids here would break that flow for
// records entered out of band.
func (s *FileStore) CreateBooking(req BookingRequest) (Booking, error) {
	if err := validateBooking(req); err != nil {
		return Booking{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	b := Booking{
		ID:         uuid.NewString(),
		HoardingID: req.HoardingID,
		UserName:   req.UserName,
		Phone:      req.Phone,
		Email:      req.Email,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Status:     StatusPending,
	}

	bookings := append(s.loadBookings(), b)
	if err := s.saveBookings(bookings); err != nil {
		return Booking{}, err
	}
	return b, nil
}

func validateBooking(req BookingRequest) error {
	switch {
	case strings.TrimSpace(req.UserName) == "":
		return fmt.Errorf("%w: user name is required", ErrInvalidBooking)
	case strings.TrimSpace(req.Phone) == "":
		return fmt.Errorf("%w: phone is required", ErrInvalidBooking)
	case strings.TrimSpace(req.Email) == "":
		return fmt.Errorf("%w: email is required", ErrInvalidBooking)
	case req.EndDate.Before(req.StartDate):
		return fmt.Errorf("%w: end date before start date", ErrInvalidBooking)
	}
	return nil
}
