package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"hallbook/internal/hallbook"
)

const (
	defaultPerPage = 10
	maxPerPage     = 50
)

// parsePagination reads page (>=1) and per_page (1-50, default 10) from the
// query string.
func parsePagination(req *http.Request) (page, perPage int, ok bool) {
	page, perPage = 1, defaultPerPage

	q := req.URL.Query()
	if q.Has("page") {
		n, err := strconv.Atoi(q.Get("page"))
		if err != nil || n < 1 {
			return 0, 0, false
		}
		page = n
	}
	if q.Has("per_page") {
		n, err := strconv.Atoi(q.Get("per_page"))
		if err != nil || n < 1 || n > maxPerPage {
			return 0, 0, false
		}
		perPage = n
	}
	return page, perPage, true
}

// parseVenueFilter builds the search filter from the query string. Presence
// is decided by whether the parameter was supplied at all, so budget=0 or
// capacity=0 are applied as real constraints.
func parseVenueFilter(req *http.Request) (hallbook.VenueFilter, bool) {
	var filter hallbook.VenueFilter

	q := req.URL.Query()
	if q.Has("budget") {
		v, err := strconv.ParseFloat(q.Get("budget"), 64)
		if err != nil {
			return filter, false
		}
		filter.MaxBudget = &v
	}
	if q.Has("capacity") {
		v, err := strconv.Atoi(q.Get("capacity"))
		if err != nil {
			return filter, false
		}
		filter.MinCapacity = &v
	}
	if q.Has("availability") {
		v := hallbook.Availability(q.Get("availability"))
		switch v {
		case hallbook.VenueAvailable, hallbook.VenueBooked, hallbook.VenueMaintenance:
			filter.Availability = &v
		default:
			return filter, false
		}
	}
	if q.Has("pincode") {
		v := q.Get("pincode")
		filter.Pincode = &v
	}
	if q.Has("search_query") {
		v := q.Get("search_query")
		filter.Search = &v
	}
	return filter, true
}

func (r *Router) handleListVenues(w http.ResponseWriter, req *http.Request) {
	page, perPage, ok := parsePagination(req)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid pagination parameters")
		return
	}
	filter, ok := parseVenueFilter(req)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid filter parameters")
		return
	}

	skip := int64((page - 1) * perPage)
	venues, err := r.repo.ListVenues(req.Context(), filter, skip, int64(perPage))
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	total, err := r.repo.CountVenues(req.Context(), filter)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	totalPages := int((total + int64(perPage) - 1) / int64(perPage))
	writeJSON(w, http.StatusOK, paginatedResponse{
		Success:    true,
		Message:    "Venues retrieved successfully",
		Data:       venues,
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
	})
}

func (r *Router) handleGetVenue(w http.ResponseWriter, req *http.Request) {
	v, err := r.repo.GetVenue(req.Context(), chi.URLParam(req, "id"))
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if v == nil {
		respondError(w, http.StatusNotFound, "Venue not found")
		return
	}
	respondData(w, http.StatusOK, "Venue retrieved successfully", v)
}

type createVenueRequest struct {
	Name        string               `json:"name" validate:"required"`
	Location    string               `json:"location" validate:"required"`
	Pincode     string               `json:"pincode" validate:"required"`
	Coordinates hallbook.Coordinates `json:"coordinates"`
	Price       *float64             `json:"price" validate:"required,gte=0"`
	Capacity    *int                 `json:"capacity" validate:"required,gt=0"`
	Images      []string             `json:"images"`
	Amenities   []string             `json:"amenities"`
	Description string               `json:"description" validate:"required"`
	Contact     hallbook.ContactInfo `json:"contact" validate:"required"`
}

func (r *Router) handleCreateVenue(w http.ResponseWriter, req *http.Request) {
	var in createVenueRequest
	if err := json.NewDecoder(req.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if err := r.validate.Struct(in); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	v, err := r.repo.CreateVenue(req.Context(), hallbook.VenueInput{
		Name:        in.Name,
		Location:    in.Location,
		Pincode:     in.Pincode,
		Coordinates: in.Coordinates,
		Price:       *in.Price,
		Capacity:    *in.Capacity,
		Images:      in.Images,
		Amenities:   in.Amenities,
		Description: in.Description,
		Contact:     in.Contact,
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(w, http.StatusCreated, "Venue created successfully", v)
}
