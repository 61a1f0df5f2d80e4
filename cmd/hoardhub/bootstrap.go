package main

import (
	"fmt"

	"hoardhub/internal/store"
)

// seedDemoHoardings fills an empty store with a few sample records so a
// fresh checkout has something to browse.
func seedDemoHoardings(st dataStore) error {
	existing, err := st.Listings()
	if err != nil {
		return fmt.Errorf("check existing hoardings: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	price := func(v float64) *float64 { return &v }

	seeds := []store.Listing{
		{
			Location:    "GE Road Flyover",
			District:    "Raipur",
			Size:        "10x20",
			Price:       price(4500),
			IsAvailable: true,
			Landmark:    "Near Magneto Mall",
			Address:     "GE Road, Raipur",
		},
		{
			Location:    "Telibandha Square",
			District:    "Raipur",
			Size:        "20x40",
			Price:       price(12000),
			IsAvailable: true,
			Landmark:    "Telibandha lake front",
			Coordinates: "21.2350,81.6570",
			Address:     "Telibandha, Raipur",
		},
		{
			Location:    "Station Road",
			District:    "Durg",
			Size:        "12x24",
			IsAvailable: false,
			Landmark:    "Opposite bus stand",
			Address:     "Station Road, Durg",
		},
	}

	for _, seed := range seeds {
		if _, err := st.AddListing(seed); err != nil {
			return fmt.Errorf("seed hoarding %q: %w", seed.Location, err)
		}
	}
	return nil
}
