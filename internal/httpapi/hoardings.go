package httpapi

import (
	"encoding/json"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"hoardhub/internal/store"
)

type hoardingRequest struct {
	Location    string   `json:"location"`
	District    string   `json:"district"`
	Size        string   `json:"size"`
	Price       *float64 `json:"price"`
	IsAvailable *bool    `json:"isAvailable"`
	Landmark    string   `json:"landmark"`
	Coordinates string   `json:"coordinates"`
	Address     string   `json:"address"`
	Images      []string `json:"images"`
}

type hoardingResponse struct {
	store.Listing
	PriceLabel string `json:"priceLabel"`
	StatusText string `json:"statusText"`
}

func newHoardingResponse(l store.Listing) hoardingResponse {
	statusText := store.FilterBooked
	if l.IsAvailable {
		statusText = store.FilterAvailable
	}
	return hoardingResponse{Listing: l, PriceLabel: l.PriceLabel(), StatusText: statusText}
}

func newHoardingResponses(listings []store.Listing) []hoardingResponse {
	out := make([]hoardingResponse, 0, len(listings))
	for _, l := range listings {
		out = append(out, newHoardingResponse(l))
	}
	return out
}

func (s *Server) handleListHoardings(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := store.ListingFilter{
		District: query.Get("district"),
		Status:   query.Get("status"),
		Size:     query.Get("size"),
	}

	listings, err := s.listings.List(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Hoardings []hoardingResponse `json:"hoardings"`
	}{Hoardings: newHoardingResponses(listings)})
}

func (s *Server) handleCreateHoarding(w http.ResponseWriter, r *http.Request) {
	var req hoardingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON payload"})
		return
	}

	// New hoardings default to available unless the caller says otherwise.
	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}

	created, err := s.listings.Create(r.Context(), store.Listing{
		Location:    req.Location,
		District:    req.District,
		Size:        req.Size,
		Price:       req.Price,
		IsAvailable: available,
		Landmark:    req.Landmark,
		Coordinates: req.Coordinates,
		Address:     req.Address,
		Images:      req.Images,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, newHoardingResponse(created))
}

func (s *Server) handleGetHoarding(w http.ResponseWriter, r *http.Request) {
	l, err := s.listings.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newHoardingResponse(l))
}

func (s *Server) handleUpdateHoarding(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req hoardingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON payload"})
		return
	}

	// An omitted availability flag keeps the stored value.
	available := req.IsAvailable
	if available == nil {
		existing, err := s.listings.Get(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		available = &existing.IsAvailable
	}

	updated, err := s.listings.Update(r.Context(), id, store.ListingPatch{
		Location:    req.Location,
		District:    req.District,
		Size:        req.Size,
		Price:       req.Price,
		IsAvailable: *available,
		Landmark:    req.Landmark,
		Coordinates: req.Coordinates,
		Address:     req.Address,
		NewImages:   req.Images,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, newHoardingResponse(updated))
}

func (s *Server) handleUploadImages(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid multipart payload"})
		return
	}

	files := r.MultipartForm.File["images"]
	if len(files) == 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "no images uploaded"})
		return
	}
	if len(files) > MaxImagesPerUpload {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "too many images (max 5)"})
		return
	}

	refs := make([]string, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "unreadable upload"})
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "unreadable upload"})
			return
		}

		ref, err := s.images.Save(data, strings.TrimPrefix(filepath.Ext(fh.Filename), "."))
		if err != nil {
			writeError(w, err)
			return
		}
		refs = append(refs, ref)
	}

	updated, err := s.listings.AppendImages(r.Context(), id, refs)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, newHoardingResponse(updated))
}

func (s *Server) handleImage(w http.ResponseWriter, r *http.Request) {
	ref := r.PathValue("ref")
	if !s.images.Exists(ref) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "image not found"})
		return
	}

	data, err := s.images.Open(ref)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "image not found"})
		return
	}

	w.Header().Set("Content-Type", http.DetectContentType(data))
	w.Write(data)
}
