package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dentalhub/leads-api/internal/infra/http/middleware"
	"github.com/dentalhub/leads-api/internal/usecase"
)

type DemoRequestHandler struct {
	SubmitUC *usecase.SubmitDemoRequestUseCase
	AdminUC  *usecase.DemoRequestAdminUseCase
}

func NewDemoRequestHandler(submitUC *usecase.SubmitDemoRequestUseCase, adminUC *usecase.DemoRequestAdminUseCase) *DemoRequestHandler {
	return &DemoRequestHandler{SubmitUC: submitUC, AdminUC: adminUC}
}

// HandleSubmit is the public demo-request intake: POST /api/demo-request.
func (h *DemoRequestHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	var input usecase.SubmitDemoRequestInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid JSON"})
		return
	}

	req, err := h.SubmitUC.Execute(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordDemoRequest()
	writeSuccess(w, http.StatusCreated, req)
}

// HandleList serves the dashboard listing: GET /api/demo-requests.
func (h *DemoRequestHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	reqs, err := h.AdminUC.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, reqs)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// HandleUpdateStatus moves a request through the contact pipeline:
// PATCH /api/demo-requests/{id}/status.
func (h *DemoRequestHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var body updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid JSON"})
		return
	}

	req, err := h.AdminUC.UpdateStatus(r.Context(), id, body.Status)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, req)
}
