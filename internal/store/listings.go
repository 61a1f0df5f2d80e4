package store

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// FileStore persists hoardings and bookings in two flat CSV files. It
// is the behavior-faithful default backend: reads degrade to an empty
// collection, writes rewrite the whole file. A single mutex serializes
// mutations because every write is a full-collection replace.
type FileStore struct {
	mu           sync.Mutex
	listingsPath string
	bookingsPath string
	districts    []string
}

// NewFileStore sets up a FileStore over the given file paths. districts
// is the fixed set of valid district values for new and edited records.
func NewFileStore(listingsPath, bookingsPath string, districts []string) *FileStore {
	return &FileStore{
		listingsPath: listingsPath,
		bookingsPath: bookingsPath,
		districts:    districts,
	}
}

// Listings reads every hoarding from the backing file. A missing,
// empty, or unreadable file is the fresh-store state, not an error.
func (s *FileStore) Listings() ([]Listing, error) {
	return s.loadListings(), nil
}

func (s *FileStore) loadListings() []Listing {
	records, err := readRecords(s.listingsPath)
	if err != nil {
		return nil
	}
	listings := make([]Listing, 0, len(records))
	for _, rec := range records {
		listings = append(listings, decodeListing(rec))
	}
	return listings
}

// SaveListings overwrites the entire backing file with the given
// collection.
func (s *FileStore) SaveListings(listings []Listing) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveListings(listings)
}

func (s *FileStore) saveListings(listings []Listing) error {
	records := make([]record, 0, len(listings))
	for _, l := range listings {
		records = append(records, encodeListing(l))
	}
	if err := writeRecords(s.listingsPath, listingColumns, records); err != nil {
		return fmt.Errorf("save hoardings: %w", err)
	}
	return nil
}

// ListingByID returns a single hoarding by its identifier.
func (s *FileStore) ListingByID(id string) (Listing, error) {
	for _, l := range s.loadListings() {
		if l.ID == id {
			return l, nil
		}
	}
	return Listing{}, ErrListingNotFound
}

// AddListing validates the hoarding, assigns a fresh id, appends it and
// persists the collection.
func (s *FileStore) AddListing(l Listing) (Listing, error) {
	if err := validateListing(l.Location, l.District, l.Size, l.Price, s.districts); err != nil {
		return Listing{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	l.ID = uuid.NewString()
	listings := append(s.loadListings(), l)
	if err := s.saveListings(listings); err != nil {
		return Listing{}, err
	}
	return l, nil
}

// UpdateListing replaces the mutable fields of an existing hoarding.
// Images append: the stored sequence is kept and patch.NewImages are
// concatenated onto it.
func (s *FileStore) UpdateListing(id string, patch ListingPatch) (Listing, error) {
	if err := validateListing(patch.Location, patch.District, patch.Size, patch.Price, s.districts); err != nil {
		return Listing{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	listings := s.loadListings()
	for i := range listings {
		if listings[i].ID != id {
			continue
		}
		listings[i] = applyPatch(listings[i], patch)
		if err := s.saveListings(listings); err != nil {
			return Listing{}, err
		}
		return listings[i], nil
	}
	return Listing{}, ErrListingNotFound
}

func applyPatch(l Listing, patch ListingPatch) Listing {
	l.Location = patch.Location
	l.District = patch.District
	l.Size = patch.Size
	l.Price = patch.Price
	l.IsAvailable = patch.IsAvailable
	l.Landmark = patch.Landmark
	l.Coordinates = patch.Coordinates
	l.Address = patch.Address
	l.Images = append(l.Images, patch.NewImages...)
	return l
}

func validateListing(location, district, size string, price *float64, districts []string) error {
	switch {
	case strings.TrimSpace(location) == "":
		return fmt.Errorf("%w: location is required", ErrInvalidListing)
	case strings.TrimSpace(district) == "":
		return fmt.Errorf("%w: district is required", ErrInvalidListing)
	case strings.TrimSpace(size) == "":
		return fmt.Errorf("%w: size is required", ErrInvalidListing)
	case price != nil && *price < 0:
		return fmt.Errorf("%w: price must not be negative", ErrInvalidListing)
	}
	if len(districts) > 0 && !containsDistrict(districts, district) {
		return fmt.Errorf("%w: unknown district %q", ErrInvalidListing, district)
	}
	return nil
}

func containsDistrict(districts []string, district string) bool {
	for _, d := range districts {
		if d == district {
			return true
		}
	}
	return false
}
