package store

import (
	"errors"
	"strconv"
	"time"
)

var (
	// ErrInvalidListing indicates validation failure for hoarding data.
	ErrInvalidListing = errors.New("invalid hoarding")
	// ErrInvalidBooking indicates validation failure for booking data.
	ErrInvalidBooking = errors.New("invalid booking")
	// ErrListingNotFound signals a missing hoarding record.
	ErrListingNotFound = errors.New("hoarding not found")
)

// BookingStatus tracks the lifecycle of a booking request.
type BookingStatus string

const (
	StatusPending   BookingStatus = "Pending"
	StatusConfirmed BookingStatus = "Confirmed"
	StatusCancelled BookingStatus = "Cancelled"
)

// DateLayout is the on-disk and wire format for booking dates.
const DateLayout = "2006-01-02"

// Listing models one advertising space (hoarding).
type Listing struct {
	ID          string   `json:"id"`
	Location    string   `json:"location"`
	District    string   `json:"district"`
	Size        string   `json:"size"`
	Price       *float64 `json:"price"`
	IsAvailable bool     `json:"isAvailable"`
	Landmark    string   `json:"landmark"`
	Coordinates string   `json:"coordinates"`
	Address     string   `json:"address"`
	Images      []string `json:"images"`
}

// PriceLabel renders the price for display, "N/A" when not set.
func (l Listing) PriceLabel() string {
	if l.Price == nil {
		return "N/A"
	}
	return strconv.FormatFloat(*l.Price, 'f', -1, 64)
}

// ListingPatch carries replacement values for an existing hoarding.
// Images are append-only: NewImages are concatenated onto the stored
// sequence, existing references are never dropped.
type ListingPatch struct {
	Location    string
	District    string
	Size        string
	Price       *float64
	IsAvailable bool
	Landmark    string
	Coordinates string
	Address     string
	NewImages   []string
}

// Booking models a request to reserve a hoarding for a date range.
type Booking struct {
	ID         string        `json:"bookingId"`
	HoardingID string        `json:"hoardingId"`
	UserName   string        `json:"userName"`
	Phone      string        `json:"phone"`
	Email      string        `json:"email"`
	StartDate  time.Time     `json:"startDate"`
	EndDate    time.Time     `json:"endDate"`
	Status     BookingStatus `json:"status"`
}

// BookingRequest carries the caller-supplied fields for a new booking.
// The target hoarding id is an explicit parameter; the engine never
// reads it from ambient state.
type BookingRequest struct {
	HoardingID string
	UserName   string
	Phone      string
	Email      string
	StartDate  time.Time
	EndDate    time.Time
}
