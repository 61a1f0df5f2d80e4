package store

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func newTestFileStore(t *testing.T) *FileStore {
	t.Helper()
	dir := t.TempDir()
	return NewFileStore(
		filepath.Join(dir, "hoardings.csv"),
		filepath.Join(dir, "bookings.csv"),
		[]string{"Raipur", "Durg"},
	)
}

func floatPtr(v float64) *float64 { return &v }

func TestListingsEmptyOnAbsentFile(t *testing.T) {
	s := newTestFileStore(t)

	listings, err := s.Listings()
	if err != nil {
		t.Fatalf("Listings error: %v", err)
	}
	if len(listings) != 0 {
		t.Fatalf("expected fresh store, got %d listings", len(listings))
	}
}

func TestAddListingRoundTrip(t *testing.T) {
	s := newTestFileStore(t)

	added, err := s.AddListing(Listing{
		Location:    "GE Road Flyover",
		District:    "Raipur",
		Size:        "10x20",
		Price:       floatPtr(4500),
		IsAvailable: true,
		Landmark:    "Near Magneto Mall",
		Coordinates: "21.2514,81.6296",
		Address:     "GE Road, Raipur",
		Images:      []string{"a.jpg", "b.png"},
	})
	if err != nil {
		t.Fatalf("AddListing error: %v", err)
	}
	if added.ID == "" {
		t.Fatal("expected a generated id")
	}

	listings, err := s.Listings()
	if err != nil {
		t.Fatalf("Listings error: %v", err)
	}
	if len(listings) != 1 {
		t.Fatalf("expected 1 listing, got %d", len(listings))
	}
	if !reflect.DeepEqual(listings[0], added) {
		t.Fatalf("round trip drift:\n got %#v\nwant %#v", listings[0], added)
	}
}

func TestSaveLoadIdempotent(t *testing.T) {
	s := newTestFileStore(t)

	if _, err := s.AddListing(Listing{
		Location:    "Station Road",
		District:    "Durg",
		Size:        "12x24",
		Price:       floatPtr(3200.50),
		IsAvailable: true,
		Landmark:    "Opposite bus stand",
		Coordinates: "21.19,81.28",
		Address:     "Station Road, Durg",
		Images:      []string{"x.jpg"},
	}); err != nil {
		t.Fatalf("AddListing error: %v", err)
	}

	first, err := s.Listings()
	if err != nil {
		t.Fatalf("Listings error: %v", err)
	}
	if err := s.SaveListings(first); err != nil {
		t.Fatalf("SaveListings error: %v", err)
	}
	second, err := s.Listings()
	if err != nil {
		t.Fatalf("Listings error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("save(load()) drifted:\n got %#v\nwant %#v", second, first)
	}
}

func TestAddListingValidation(t *testing.T) {
	tests := []struct {
		name    string
		listing Listing
	}{
		{name: "missing location", listing: Listing{District: "Raipur", Size: "10x20"}},
		{name: "missing district", listing: Listing{Location: "GE Road", Size: "10x20"}},
		{name: "missing size", listing: Listing{Location: "GE Road", District: "Raipur"}},
		{name: "unknown district", listing: Listing{Location: "GE Road", District: "Bilaspur", Size: "10x20"}},
		{name: "negative price", listing: Listing{Location: "GE Road", District: "Raipur", Size: "10x20", Price: floatPtr(-1)}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			s := newTestFileStore(t)
			if _, err := s.AddListing(tc.listing); !errors.Is(err, ErrInvalidListing) {
				t.Fatalf("expected ErrInvalidListing, got %v", err)
			}
			listings, _ := s.Listings()
			if len(listings) != 0 {
				t.Fatalf("validation failure must not persist, got %d listings", len(listings))
			}
		})
	}
}

func TestUpdateListingAppendsImages(t *testing.T) {
	s := newTestFileStore(t)

	added, err := s.AddListing(Listing{
		Location:    "GE Road",
		District:    "Raipur",
		Size:        "10x20",
		IsAvailable: true,
		Images:      []string{"x.jpg"},
	})
	if err != nil {
		t.Fatalf("AddListing error: %v", err)
	}

	updated, err := s.UpdateListing(added.ID, ListingPatch{
		Location:    "GE Road East",
		District:    "Durg",
		Size:        "10x30",
		Price:       floatPtr(5000),
		IsAvailable: false,
		NewImages:   []string{"a.jpg", "b.jpg"},
	})
	if err != nil {
		t.Fatalf("UpdateListing error: %v", err)
	}

	wantImages := []string{"x.jpg", "a.jpg", "b.jpg"}
	if !reflect.DeepEqual(updated.Images, wantImages) {
		t.Fatalf("expected images %v, got %v", wantImages, updated.Images)
	}
	if updated.Location != "GE Road East" || updated.District != "Durg" || updated.IsAvailable {
		t.Fatalf("patch not applied: %#v", updated)
	}

	listings, _ := s.Listings()
	if len(listings) != 1 || !reflect.DeepEqual(listings[0].Images, wantImages) {
		t.Fatalf("persisted images wrong: %#v", listings)
	}
}

func TestUpdateListingNotFound(t *testing.T) {
	s := newTestFileStore(t)

	_, err := s.UpdateListing("no-such-id", ListingPatch{
		Location: "GE Road",
		District: "Raipur",
		Size:     "10x20",
	})
	if !errors.Is(err, ErrListingNotFound) {
		t.Fatalf("expected ErrListingNotFound, got %v", err)
	}
}

func TestParseAvailablePolicy(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"true", true},
		{"True", true},
		{"TRUE", true},
		{"1", true},
		{"false", false},
		{"0", false},
		{"", false},
		{"yes", false},
		{"TRUE ", false},
		{" 1", false},
		{"available", false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.in, func(t *testing.T) {
			if got := parseAvailable(tc.in); got != tc.want {
				t.Fatalf("parseAvailable(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestParsePriceCoercion(t *testing.T) {
	if got := parsePrice("abc"); got != nil {
		t.Fatalf("expected absent price for %q, got %v", "abc", *got)
	}
	if got := parsePrice(""); got != nil {
		t.Fatalf("expected absent price for empty value, got %v", *got)
	}
	if got := parsePrice("NaN"); got != nil {
		t.Fatalf("expected absent price for NaN, got %v", *got)
	}
	if got := parsePrice(" 4500.5 "); got == nil || *got != 4500.5 {
		t.Fatalf("expected 4500.5, got %v", got)
	}

	l := Listing{}
	if l.PriceLabel() != "N/A" {
		t.Fatalf("expected N/A label, got %q", l.PriceLabel())
	}
	l.Price = floatPtr(4500)
	if l.PriceLabel() != "4500" {
		t.Fatalf("expected 4500 label, got %q", l.PriceLabel())
	}
}

func TestLoadDefaultsMissingColumns(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hoardings.csv")

	// Legacy file without the optional columns.
	data := "id,location,district,size,price,is_available\n" +
		"abc,GE Road,Raipur,10x20,xyz,maybe\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	s := NewFileStore(path, filepath.Join(dir, "bookings.csv"), nil)
	listings, err := s.Listings()
	if err != nil {
		t.Fatalf("Listings error: %v", err)
	}
	if len(listings) != 1 {
		t.Fatalf("expected 1 listing, got %d", len(listings))
	}

	l := listings[0]
	if l.Price != nil {
		t.Fatalf("expected absent price, got %v", *l.Price)
	}
	if l.IsAvailable {
		t.Fatal("unparseable availability must default to false")
	}
	if l.Landmark != "" || l.Coordinates != "" || l.Address != "" {
		t.Fatalf("expected empty optional fields, got %#v", l)
	}
	if len(l.Images) != 0 {
		t.Fatalf("expected empty images, got %v", l.Images)
	}
}
