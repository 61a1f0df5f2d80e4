package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"hoardhub/internal/store"
)

type bookingRequest struct {
	HoardingID string `json:"hoardingId"`
	UserName   string `json:"userName"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
}

type bookingResponse struct {
	ID         string `json:"bookingId"`
	HoardingID string `json:"hoardingId"`
	UserName   string `json:"userName"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	Status     string `json:"status"`
}

func newBookingResponse(b store.Booking) bookingResponse {
	return bookingResponse{
		ID:         b.ID,
		HoardingID: b.HoardingID,
		UserName:   b.UserName,
		Phone:      b.Phone,
		Email:      b.Email,
		StartDate:  b.StartDate.Format(store.DateLayout),
		EndDate:    b.EndDate.Format(store.DateLayout),
		Status:     string(b.Status),
	}
}

func (s *Server) handleListBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := s.bookings.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]bookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, newBookingResponse(b))
	}
	writeJSON(w, http.StatusOK, struct {
		Bookings []bookingResponse `json:"bookings"`
	}{Bookings: out})
}

func (s *Server) handleCreateBooking(w http.ResponseWriter, r *http.Request) {
	var req bookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON payload"})
		return
	}

	start, err := time.Parse(store.DateLayout, req.StartDate)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid start date"})
		return
	}
	end, err := time.Parse(store.DateLayout, req.EndDate)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid end date"})
		return
	}

	created, err := s.bookings.Create(r.Context(), store.BookingRequest{
		HoardingID: req.HoardingID,
		UserName:   req.UserName,
		Phone:      req.Phone,
		Email:      req.Email,
		StartDate:  start,
		EndDate:    end,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, newBookingResponse(created))
}
