package listings

import (
	"context"

	"hoardhub/internal/store"
)

// Store captures the persistence needs for hoarding workflows.
type Store interface {
	Listings() ([]store.Listing, error)
	ListingByID(id string) (store.Listing, error)
	AddListing(l store.Listing) (store.Listing, error)
	UpdateListing(id string, patch store.ListingPatch) (store.Listing, error)
}

// Service coordinates hoarding-related operations.
type Service interface {
	List(ctx context.Context, filter store.ListingFilter) ([]store.Listing, error)
	Get(ctx context.Context, id string) (store.Listing, error)
	Create(ctx context.Context, l store.Listing) (store.Listing, error)
	Update(ctx context.Context, id string, patch store.ListingPatch) (store.Listing, error)
	AppendImages(ctx context.Context, id string, refs []string) (store.Listing, error)
}

type service struct {
	store Store
}

// New constructs a Service backed by the provided Store.
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) List(ctx context.Context, filter store.ListingFilter) ([]store.Listing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	listings, err := s.store.Listings()
	if err != nil {
		return nil, err
	}
	return store.FilterListings(listings, filter), nil
}

func (s *service) Get(ctx context.Context, id string) (store.Listing, error) {
	if err := ctx.Err(); err != nil {
		return store.Listing{}, err
	}
	return s.store.ListingByID(id)
}

func (s *service) Create(ctx context.Context, l store.Listing) (store.Listing, error) {
	if err := ctx.Err(); err != nil {
		return store.Listing{}, err
	}
	return s.store.AddListing(l)
}

func (s *service) Update(ctx context.Context, id string, patch store.ListingPatch) (store.Listing, error) {
	if err := ctx.Err(); err != nil {
		return store.Listing{}, err
	}
	return s.store.UpdateListing(id, patch)
}

// AppendImages attaches freshly stored blob references to a hoarding
// without touching its other fields.
func (s *service) AppendImages(ctx context.Context, id string, refs []string) (store.Listing, error) {
	if err := ctx.Err(); err != nil {
		return store.Listing{}, err
	}
	existing, err := s.store.ListingByID(id)
	if err != nil {
		return store.Listing{}, err
	}
	return s.store.UpdateListing(id, store.ListingPatch{
		Location:    existing.Location,
		District:    existing.District,
		Size:        existing.Size,
		Price:       existing.Price,
		IsAvailable: existing.IsAvailable,
		Landmark:    existing.Landmark,
		Coordinates: existing.Coordinates,
		Address:     existing.Address,
		NewImages:   refs,
	})
}
