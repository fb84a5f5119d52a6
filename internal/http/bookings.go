package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"hallbook/internal/hallbook"
)

type bookingServiceRequest struct {
	ServiceID  string  `json:"service_id" validate:"required"`
	ProviderID string  `json:"provider_id" validate:"required"`
	Name       string  `json:"name" validate:"required"`
	Price      float64 `json:"price" validate:"gte=0"`
}

type createBookingRequest struct {
	UserID          string                  `json:"user_id" validate:"required"`
	VenueID         string                  `json:"venue_id" validate:"required"`
	EventDate       time.Time               `json:"event_date" validate:"required"`
	GuestCount      *int                    `json:"guest_count" validate:"omitempty,gt=0"`
	Services        []bookingServiceRequest `json:"services" validate:"dive"`
	SpecialRequests *string                 `json:"special_requests"`
}

func (r *Router) handleCreateBooking(w http.ResponseWriter, req *http.Request) {
	var in createBookingRequest
	if err := json.NewDecoder(req.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if err := r.validate.Struct(in); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	services := make([]hallbook.BookingService, 0, len(in.Services))
	for _, s := range in.Services {
		services = append(services, hallbook.BookingService{
			ServiceID:  s.ServiceID,
			ProviderID: s.ProviderID,
			Name:       s.Name,
			Price:      s.Price,
		})
	}

	b, err := r.repo.CreateBooking(req.Context(), hallbook.BookingInput{
		UserID:          in.UserID,
		VenueID:         in.VenueID,
		EventDate:       in.EventDate,
		GuestCount:      in.GuestCount,
		Services:        services,
		SpecialRequests: in.SpecialRequests,
	})
	if err != nil {
		if errors.Is(err, hallbook.ErrVenueNotFound) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(w, http.StatusCreated, "Booking created successfully", b)
}

func (r *Router) handleListUserBookings(w http.ResponseWriter, req *http.Request) {
	bookings, err := r.repo.ListUserBookings(req.Context(), chi.URLParam(req, "userID"))
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(w, http.StatusOK, "Bookings retrieved successfully", bookings)
}

func (r *Router) handleGetBooking(w http.ResponseWriter, req *http.Request) {
	b, err := r.repo.GetBooking(req.Context(), chi.URLParam(req, "id"))
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if b == nil {
		respondError(w, http.StatusNotFound, "Booking not found")
		return
	}
	respondData(w, http.StatusOK, "Booking retrieved successfully", b)
}

type updateBookingStatusRequest struct {
	Status hallbook.BookingStatus `json:"status" validate:"required,oneof=pending confirmed cancelled completed"`
}

func (r *Router) handleUpdateBookingStatus(w http.ResponseWriter, req *http.Request) {
	var in updateBookingStatusRequest
	if err := json.NewDecoder(req.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if err := r.validate.Struct(in); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	b, err := r.repo.UpdateBookingStatus(req.Context(), chi.URLParam(req, "id"), in.Status)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if b == nil {
		respondError(w, http.StatusNotFound, "Booking not found")
		return
	}
	respondData(w, http.StatusOK, "Booking status updated successfully", b)
}
