package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"hoardhub/internal/store"
)

// MaxImagesPerUpload caps the number of photos accepted in a single
// upload request. The ceiling lives here, at the collaborator boundary;
// the store itself never truncates an image list.
const MaxImagesPerUpload = 5

// ListingService captures the hoarding operations needed by the HTTP
// handlers.
type ListingService interface {
	List(ctx context.Context, filter store.ListingFilter) ([]store.Listing, error)
	Get(ctx context.Context, id string) (store.Listing, error)
	Create(ctx context.Context, l store.Listing) (store.Listing, error)
	Update(ctx context.Context, id string, patch store.ListingPatch) (store.Listing, error)
	AppendImages(ctx context.Context, id string, refs []string) (store.Listing, error)
}

// BookingService describes booking workflows.
type BookingService interface {
	List(ctx context.Context) ([]store.Booking, error)
	Create(ctx context.Context, req store.BookingRequest) (store.Booking, error)
}

// ImageStore is the blob-store collaborator for hoarding photos.
type ImageStore interface {
	Save(data []byte, ext string) (string, error)
	Exists(ref string) bool
	Open(ref string) ([]byte, error)
}

// Server wires HTTP handlers to the underlying services.
type Server struct {
	listings ListingService
	bookings BookingService
	images   ImageStore
}

// New configures a Server with the given services.
func New(listings ListingService, bookings BookingService, images ImageStore) *Server {
	return &Server{listings: listings, bookings: bookings, images: images}
}

// Routes exposes the HTTP handlers for hoarding and booking management.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	mux.HandleFunc("GET /api/v1/hoardings", s.handleListHoardings)
	mux.HandleFunc("POST /api/v1/hoardings", s.handleCreateHoarding)
	mux.HandleFunc("GET /api/v1/hoardings/{id}", s.handleGetHoarding)
	mux.HandleFunc("PUT /api/v1/hoardings/{id}", s.handleUpdateHoarding)
	mux.HandleFunc("POST /api/v1/hoardings/{id}/images", s.handleUploadImages)
	mux.HandleFunc("GET /api/v1/images/{ref}", s.handleImage)

	mux.HandleFunc("GET /api/v1/bookings", s.handleListBookings)
	mux.HandleFunc("POST /api/v1/bookings", s.handleCreateBooking)

	return mux
}

type errorResponse struct {
	Error string `json:"error"`
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, store.ErrInvalidListing), errors.Is(err, store.ErrInvalidBooking):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrListingNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusForError(err), errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}
