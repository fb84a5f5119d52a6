package http

import (
	"encoding/json"
	"net/http"

	"hallbook/internal/hallbook"
)

func (r *Router) handleListServices(w http.ResponseWriter, req *http.Request) {
	services, err := r.repo.ListServices(req.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(w, http.StatusOK, "Services retrieved successfully", services)
}

type createServiceRequest struct {
	Name      string                     `json:"name" validate:"required"`
	Icon      string                     `json:"icon" validate:"required"`
	Providers []hallbook.ServiceProvider `json:"providers"`
}

func (r *Router) handleCreateService(w http.ResponseWriter, req *http.Request) {
	var in createServiceRequest
	if err := json.NewDecoder(req.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if err := r.validate.Struct(in); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	s, err := r.repo.CreateService(req.Context(), hallbook.ServiceInput{
		Name:      in.Name,
		Icon:      in.Icon,
		Providers: in.Providers,
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(w, http.StatusCreated, "Service created successfully", s)
}
