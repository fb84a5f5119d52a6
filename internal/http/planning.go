package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hallbook/internal/hallbook"
)

// The wedding-tools GET endpoints provision a default record on first access;
// the owner id in the URL always wins over whatever the body carries.

func (r *Router) handleGetWeddingBudget(w http.ResponseWriter, req *http.Request) {
	b, err := r.repo.GetOrCreateWeddingBudget(req.Context(), chi.URLParam(req, "userID"))
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(w, http.StatusOK, "Wedding budget retrieved successfully", b)
}

type updateBudgetRequest struct {
	ID          string                    `json:"id"`
	TotalBudget float64                   `json:"total_budget" validate:"gte=0"`
	Categories  []hallbook.BudgetCategory `json:"categories" validate:"dive"`
}

func (r *Router) handleUpdateWeddingBudget(w http.ResponseWriter, req *http.Request) {
	var in updateBudgetRequest
	if err := json.NewDecoder(req.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if err := r.validate.Struct(in); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	b, err := r.repo.UpsertWeddingBudget(req.Context(), &hallbook.WeddingBudget{
		ID:          in.ID,
		UserID:      chi.URLParam(req, "userID"),
		TotalBudget: in.TotalBudget,
		Categories:  in.Categories,
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(w, http.StatusOK, "Wedding budget updated successfully", b)
}

func (r *Router) handleGetGuestList(w http.ResponseWriter, req *http.Request) {
	g, err := r.repo.GetOrCreateGuestList(req.Context(), chi.URLParam(req, "userID"))
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(w, http.StatusOK, "Guest list retrieved successfully", g)
}

type updateGuestListRequest struct {
	ID     string           `json:"id"`
	Guests []hallbook.Guest `json:"guests" validate:"dive"`
}

func (r *Router) handleUpdateGuestList(w http.ResponseWriter, req *http.Request) {
	var in updateGuestListRequest
	if err := json.NewDecoder(req.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if err := r.validate.Struct(in); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	g, err := r.repo.UpsertGuestList(req.Context(), &hallbook.GuestList{
		ID:     in.ID,
		UserID: chi.URLParam(req, "userID"),
		Guests: in.Guests,
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(w, http.StatusOK, "Guest list updated successfully", g)
}

func (r *Router) handleGetWeddingTimeline(w http.ResponseWriter, req *http.Request) {
	t, err := r.repo.GetOrCreateWeddingTimeline(req.Context(), chi.URLParam(req, "userID"))
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(w, http.StatusOK, "Wedding timeline retrieved successfully", t)
}

type updateTimelineRequest struct {
	ID    string                  `json:"id"`
	Items []hallbook.TimelineItem `json:"items" validate:"dive"`
}

func (r *Router) handleUpdateWeddingTimeline(w http.ResponseWriter, req *http.Request) {
	var in updateTimelineRequest
	if err := json.NewDecoder(req.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if err := r.validate.Struct(in); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	t, err := r.repo.UpsertWeddingTimeline(req.Context(), &hallbook.WeddingTimeline{
		ID:     in.ID,
		UserID: chi.URLParam(req, "userID"),
		Items:  in.Items,
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(w, http.StatusOK, "Wedding timeline updated successfully", t)
}
