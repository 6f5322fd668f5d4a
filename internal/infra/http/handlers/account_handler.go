package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/flyfox-ai/funnel/internal/usecase"
)

type AccountHandler struct {
	RegisterUC *usecase.RegisterCustomerUseCase
	AuthUC     *usecase.AuthenticateUseCase
}

func NewAccountHandler(registerUC *usecase.RegisterCustomerUseCase, authUC *usecase.AuthenticateUseCase) *AccountHandler {
	return &AccountHandler{RegisterUC: registerUC, AuthUC: authUC}
}

func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input usecase.RegisterCustomerInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "invalid JSON body")
		return
	}

	output, err := h.RegisterUC.Execute(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}
	writeSuccess(w, http.StatusCreated, output)
}

func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input usecase.AuthenticateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "invalid JSON body")
		return
	}

	output, err := h.AuthUC.Execute(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, output)
}

func (h *AccountHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.AuthUC.Logout(r.Context(), bearerToken(r)); err != nil {
		writeUseCaseError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]string{"status": "logged_out"})
}

func (h *AccountHandler) Me(w http.ResponseWriter, r *http.Request) {
	output, err := h.AuthUC.ValidateToken(r.Context(), bearerToken(r))
	if err != nil {
		writeUseCaseError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, output)
}

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}
