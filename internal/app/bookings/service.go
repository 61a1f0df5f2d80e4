package bookings

import (
	"context"

	"hoardhub/internal/store"
)

// Store describes the persistence operations required by the booking
// service.
type Store interface {
	Bookings() ([]store.Booking, error)
	CreateBooking(req store.BookingRequest) (store.Booking, error)
}

// Service exposes booking workflows.
type Service interface {
	List(ctx context.Context) ([]store.Booking, error)
	Create(ctx context.Context, req store.BookingRequest) (store.Booking, error)
}

type service struct {
	store Store
}

// New wires a Service backed by the provided Store.
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) List(ctx context.Context) ([]store.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.Bookings()
}

func (s *service) Create(ctx context.Context, req store.BookingRequest) (store.Booking, error) {
	if err := ctx.Err(); err != nil {
		return store.Booking{}, err
	}
	return s.store.CreateBooking(req)
}
