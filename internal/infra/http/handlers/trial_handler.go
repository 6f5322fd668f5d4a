package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/flyfox-ai/funnel/internal/infra/http/middleware"
	"github.com/flyfox-ai/funnel/internal/usecase"
)

type TrialHandler struct {
	CreateUC *usecase.CreateTrialUseCase
}

func NewTrialHandler(createUC *usecase.CreateTrialUseCase) *TrialHandler {
	return &TrialHandler{CreateUC: createUC}
}

func (h *TrialHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateTrialInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "invalid JSON body")
		return
	}

	output, err := h.CreateUC.Execute(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	middleware.RecordTrialCreated(output.Plan)
	writeSuccess(w, http.StatusCreated, output)
}
