package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hallbook/internal/hallbook"
)

type createTicketRequest struct {
	UserID  *string `json:"user_id"`
	Subject string  `json:"subject" validate:"required"`
	Message string  `json:"message" validate:"required"`
}

func (r *Router) handleCreateTicket(w http.ResponseWriter, req *http.Request) {
	var in createTicketRequest
	if err := json.NewDecoder(req.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if err := r.validate.Struct(in); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	t, err := r.repo.CreateTicket(req.Context(), hallbook.TicketInput{
		UserID:  in.UserID,
		Subject: in.Subject,
		Message: in.Message,
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(w, http.StatusCreated, "Support ticket created successfully", t)
}

type addMessageRequest struct {
	UserID     *string             `json:"user_id"`
	Message    string              `json:"message" validate:"required"`
	SenderType hallbook.SenderType `json:"sender_type" validate:"omitempty,oneof=user bot agent"`
}

func (r *Router) handleAddTicketMessage(w http.ResponseWriter, req *http.Request) {
	var in addMessageRequest
	if err := json.NewDecoder(req.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if err := r.validate.Struct(in); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if in.SenderType == "" {
		in.SenderType = hallbook.SenderUser
	}

	t, err := r.repo.AddTicketMessage(req.Context(), chi.URLParam(req, "id"), hallbook.MessageInput{
		UserID:     in.UserID,
		Message:    in.Message,
		SenderType: in.SenderType,
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if t == nil {
		respondError(w, http.StatusNotFound, "Support ticket not found")
		return
	}
	respondData(w, http.StatusOK, "Message added successfully", t)
}

func (r *Router) handleListFAQs(w http.ResponseWriter, req *http.Request) {
	faqs, err := r.repo.ListFAQs(req.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(w, http.StatusOK, "FAQs retrieved successfully", faqs)
}

type createFAQRequest struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
	Category string `json:"category"`
	Order    int    `json:"order" validate:"gte=0"`
}

func (r *Router) handleCreateFAQ(w http.ResponseWriter, req *http.Request) {
	var in createFAQRequest
	if err := json.NewDecoder(req.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if err := r.validate.Struct(in); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	f, err := r.repo.CreateFAQ(req.Context(), hallbook.FAQInput{
		Question: in.Question,
		Answer:   in.Answer,
		Category: in.Category,
		Order:    in.Order,
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(w, http.StatusCreated, "FAQ created successfully", f)
}
