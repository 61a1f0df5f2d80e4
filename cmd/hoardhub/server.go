package main

import (
	"net/http"
	"strings"

	"hoardhub/internal/app/bookings"
	"hoardhub/internal/app/listings"
	"hoardhub/internal/blob"
	"hoardhub/internal/httpapi"
	"hoardhub/internal/logging"
	"hoardhub/internal/store"
)

// dataStore is the union of persistence operations the services need;
// both the flat-file and the Postgres backends satisfy it.
type dataStore interface {
	Listings() ([]store.Listing, error)
	ListingByID(id string) (store.Listing, error)
	AddListing(l store.Listing) (store.Listing, error)
	UpdateListing(id string, patch store.ListingPatch) (store.Listing, error)
	Bookings() ([]store.Booking, error)
	CreateBooking(req store.BookingRequest) (store.Booking, error)
}

func newHTTPHandler(cfg Config, st dataStore, images *blob.Store) http.Handler {
	listingSvc := listings.New(st)
	bookingSvc := bookings.New(st)

	handler := httpapi.New(listingSvc, bookingSvc, images).Routes()
	handler = logging.RequestLogging(handler)
	handler = logging.Recovery(handler)
	return withCORS(cfg.AllowedOrigins, handler)
}

func withCORS(allowedOrigins []string, next http.Handler) http.Handler {
	originAllowed := func(origin string) bool {
		if origin == "" {
			return false
		}
		for _, o := range allowedOrigins {
			if strings.EqualFold(o, origin) {
				return true
			}
		}
		return false
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if originAllowed(origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type")
			w.Header().Set("Access-Control-Max-Age", "3600")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
