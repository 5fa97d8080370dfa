package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/xavierca1/leadcentral/internal/infra/http/middleware"
	"github.com/xavierca1/leadcentral/internal/usecase"
)

// ProspectHandler serves the prospecteur-facing routes: working lists,
// call-result recording and personal stats.
type ProspectHandler struct {
	ManageUC     *usecase.ManageProspectsUseCase
	RecordCallUC *usecase.RecordCallUseCase
	StatsUC      *usecase.StatsUseCase
}

func NewProspectHandler(
	manageUC *usecase.ManageProspectsUseCase,
	recordCallUC *usecase.RecordCallUseCase,
	statsUC *usecase.StatsUseCase,
) *ProspectHandler {
	return &ProspectHandler{
		ManageUC:     manageUC,
		RecordCallUC: recordCallUC,
		StatsUC:      statsUC,
	}
}

func (h *ProspectHandler) List(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFromContext(r.Context())

	liste := r.URL.Query().Get("liste")
	if liste == "" {
		liste = "principale"
	}

	prospects, err := h.ManageUC.ListForProspecteur(r.Context(), user.ID, liste)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, prospects)
}

func (h *ProspectHandler) CallResult(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFromContext(r.Context())

	var input usecase.RecordCallInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON invalide")
		return
	}

	output, err := h.RecordCallUC.Execute(r.Context(), user, input)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	middleware.RecordCall(string(input.Result))
	writeJSON(w, http.StatusOK, output)
}

func (h *ProspectHandler) Stats(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFromContext(r.Context())

	stats, err := h.StatsUC.ForProspecteur(r.Context(), user.ID)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
