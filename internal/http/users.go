package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hallbook/internal/hallbook"
)

type createUserRequest struct {
	Name         string  `json:"name" validate:"required"`
	Phone        string  `json:"phone" validate:"required"`
	Email        string  `json:"email" validate:"required,email"`
	ProfileImage *string `json:"profile_image"`
}

func (r *Router) handleCreateUser(w http.ResponseWriter, req *http.Request) {
	var in createUserRequest
	if err := json.NewDecoder(req.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if err := r.validate.Struct(in); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	u, err := r.repo.CreateUser(req.Context(), hallbook.UserInput{
		Name:         in.Name,
		Phone:        in.Phone,
		Email:        in.Email,
		ProfileImage: in.ProfileImage,
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(w, http.StatusCreated, "User created successfully", u)
}

func (r *Router) handleGetUser(w http.ResponseWriter, req *http.Request) {
	u, err := r.repo.GetUser(req.Context(), chi.URLParam(req, "id"))
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if u == nil {
		respondError(w, http.StatusNotFound, "User not found")
		return
	}
	respondData(w, http.StatusOK, "User retrieved successfully", u)
}

type updateUserRequest struct {
	Name         *string `json:"name"`
	Phone        *string `json:"phone"`
	Email        *string `json:"email" validate:"omitempty,email"`
	ProfileImage *string `json:"profile_image"`
}

func (r *Router) handleUpdateUser(w http.ResponseWriter, req *http.Request) {
	var in updateUserRequest
	if err := json.NewDecoder(req.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if err := r.validate.Struct(in); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	u, err := r.repo.UpdateUser(req.Context(), chi.URLParam(req, "id"), hallbook.UserPatch{
		Name:         in.Name,
		Phone:        in.Phone,
		Email:        in.Email,
		ProfileImage: in.ProfileImage,
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if u == nil {
		respondError(w, http.StatusNotFound, "User not found")
		return
	}
	respondData(w, http.StatusOK, "User updated successfully", u)
}
