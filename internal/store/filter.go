package store

import "strings"

// Availability choices understood by ListingFilter.Status.
const (
	FilterAll       = "All"
	FilterAvailable = "Available"
	FilterBooked    = "Booked"
)

// ListingFilter constrains the results of FilterListings. Every
// predicate is optional: a zero value (or "All") matches everything.
type ListingFilter struct {
	// District matches exactly against the configured district value.
	District string
	// Status is the three-state availability choice: All, Available
	// or Booked.
	Status string
	// Size matches as a case-insensitive substring of the size field.
	Size string
}

// Matches reports whether the listing satisfies every set predicate.
func (f ListingFilter) Matches(l Listing) bool {
	if f.District != "" && f.District != FilterAll && l.District != f.District {
		return false
	}
	switch f.Status {
	case FilterAvailable:
		if !l.IsAvailable {
			return false
		}
	case FilterBooked:
		if l.IsAvailable {
			return false
		}
	}
	if f.Size != "" && !strings.Contains(strings.ToLower(l.Size), strings.ToLower(f.Size)) {
		return false
	}
	return true
}

// FilterListings returns the listings satisfying the filter, preserving
// the relative order of the input. It is a pure function with no
// persistence side effects.
func FilterListings(listings []Listing, f ListingFilter) []Listing {
	filtered := make([]Listing, 0, len(listings))
	for _, l := range listings {
		if f.Matches(l) {
			filtered = append(filtered, l)
		}
	}
	return filtered
}
