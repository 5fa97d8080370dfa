package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/leadcentral/internal/infra/http/middleware"
	"github.com/xavierca1/leadcentral/internal/usecase"
)

type AuthHandler struct {
	RegisterUC *usecase.RegisterUserUseCase
	ValidateUC *usecase.ValidateUserUseCase
	LoginUC    *usecase.LoginUseCase
}

func NewAuthHandler(
	registerUC *usecase.RegisterUserUseCase,
	validateUC *usecase.ValidateUserUseCase,
	loginUC *usecase.LoginUseCase,
) *AuthHandler {
	return &AuthHandler{
		RegisterUC: registerUC,
		ValidateUC: validateUC,
		LoginUC:    loginUC,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input usecase.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON invalide")
		return
	}

	message, err := h.RegisterUC.Execute(r.Context(), input)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": message})
}

func (h *AuthHandler) Validate(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	output, err := h.ValidateUC.Execute(r.Context(), token)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input usecase.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON invalide")
		return
	}

	output, err := h.LoginUC.Execute(r.Context(), input)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}

// Me echoes the authenticated caller's profile.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeErrorResponse(w, http.StatusUnauthorized, "UNAUTHORIZED", "Token invalide")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"id":        user.ID,
		"nom":       user.Nom,
		"prenom":    user.Prenom,
		"email":     user.Email,
		"telephone": user.Telephone,
		"role":      user.Role,
		"status":    user.Status,
	})
}
