package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/dentalhub/leads-api/internal/usecase"
)

type DentistHandler struct {
	UC *usecase.DentistProfileUseCase
}

func NewDentistHandler(uc *usecase.DentistProfileUseCase) *DentistHandler {
	return &DentistHandler{UC: uc}
}

// HandleGet returns the caller's practice profile: GET /api/dentist.
func (h *DentistHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "Unauthorized"})
		return
	}

	dentist, err := h.UC.GetByUserID(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, dentist)
}

// HandleCreate attaches a practice profile to the caller: POST /api/dentist.
func (h *DentistHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "Unauthorized"})
		return
	}

	var input usecase.CreateDentistInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid JSON"})
		return
	}

	dentist, err := h.UC.Create(r.Context(), userID, input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, dentist)
}
