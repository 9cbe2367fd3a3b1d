package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/dentalhub/leads-api/internal/infra/http/middleware"
	"github.com/dentalhub/leads-api/internal/usecase"
)

type NewsletterHandler struct {
	UC *usecase.NewsletterUseCase
}

func NewNewsletterHandler(uc *usecase.NewsletterUseCase) *NewsletterHandler {
	return &NewsletterHandler{UC: uc}
}

// HandleSubscribe is the public signup: POST /api/newsletter. Re-subscribing
// an address that already has a row reactivates it, same response shape.
func (h *NewsletterHandler) HandleSubscribe(w http.ResponseWriter, r *http.Request) {
	var input usecase.SubscribeNewsletterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid JSON"})
		return
	}

	sub, err := h.UC.Subscribe(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordNewsletterEvent("subscribe")
	writeSuccess(w, http.StatusOK, sub)
}

// HandleUnsubscribe backs the unsubscribe link: POST /api/newsletter/unsubscribe.
// Always succeeds for any non-empty email, known or not.
func (h *NewsletterHandler) HandleUnsubscribe(w http.ResponseWriter, r *http.Request) {
	var input usecase.UnsubscribeNewsletterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid JSON"})
		return
	}

	if err := h.UC.Unsubscribe(r.Context(), input); err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordNewsletterEvent("unsubscribe")
	writeJSON(w, http.StatusOK, successResponse{Success: true, Message: "Successfully unsubscribed"})
}

// HandleListSubscribers serves the dashboard: GET /api/newsletter/subscribers.
func (h *NewsletterHandler) HandleListSubscribers(w http.ResponseWriter, r *http.Request) {
	subs, err := h.UC.ListActiveSubscribers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, subs)
}
