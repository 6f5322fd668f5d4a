package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/flyfox-ai/funnel/internal/infra/http/middleware"
	"github.com/flyfox-ai/funnel/internal/usecase"
)

type ConversionHandler struct {
	TrackUC     *usecase.TrackConversionUseCase
	AnalyticsUC *usecase.AnalyticsUseCase
}

func NewConversionHandler(trackUC *usecase.TrackConversionUseCase, analyticsUC *usecase.AnalyticsUseCase) *ConversionHandler {
	return &ConversionHandler{TrackUC: trackUC, AnalyticsUC: analyticsUC}
}

func (h *ConversionHandler) Track(w http.ResponseWriter, r *http.Request) {
	var input usecase.TrackConversionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "invalid JSON body")
		return
	}

	output, err := h.TrackUC.Execute(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	middleware.RecordConversion(input.AmountCents)
	writeSuccess(w, http.StatusCreated, output)
}

func (h *ConversionHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	output, err := h.AnalyticsUC.Execute(r.Context())
	if err != nil {
		writeUseCaseError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, output)
}
