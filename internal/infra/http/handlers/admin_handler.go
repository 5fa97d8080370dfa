package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/leadcentral/internal/entity"
	"github.com/xavierca1/leadcentral/internal/infra/http/middleware"
	"github.com/xavierca1/leadcentral/internal/usecase"
)

const maxImportSize = 10 << 20 // 10 MiB upload cap

// AdminHandler serves the organizer board: prospecteur management, imports,
// assignment and global statistics. The whole subtree sits behind
// RequireRole(admin).
type AdminHandler struct {
	ManageUC *usecase.ManageProspectsUseCase
	AssignUC *usecase.AssignProspectsUseCase
	ImportUC *usecase.ImportProspectsUseCase
	StatsUC  *usecase.StatsUseCase
}

func NewAdminHandler(
	manageUC *usecase.ManageProspectsUseCase,
	assignUC *usecase.AssignProspectsUseCase,
	importUC *usecase.ImportProspectsUseCase,
	statsUC *usecase.StatsUseCase,
) *AdminHandler {
	return &AdminHandler{
		ManageUC: manageUC,
		AssignUC: assignUC,
		ImportUC: importUC,
		StatsUC:  statsUC,
	}
}

func (h *AdminHandler) Prospecteurs(w http.ResponseWriter, r *http.Request) {
	overviews, err := h.StatsUC.ProspecteurOverviews(r.Context())
	if err != nil {
		writeUsecaseError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, overviews)
}

func (h *AdminHandler) UpdateProspecteurStatus(w http.ResponseWriter, r *http.Request) {
	prospecteurID := chi.URLParam(r, "id")

	status := r.URL.Query().Get("status")
	if status == "" {
		var body struct {
			Status string `json:"status"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err == nil {
			status = body.Status
		}
	}

	if err := h.ManageUC.UpdateProspecteurStatus(r.Context(), prospecteurID, status); err != nil {
		writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Statut mis à jour"})
}

func (h *AdminHandler) Import(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImportSize); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_UPLOAD", "Fichier manquant ou trop volumineux")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_UPLOAD", "Champ 'file' manquant")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_UPLOAD", "Lecture du fichier impossible")
		return
	}

	output, err := h.ImportUC.Execute(r.Context(), header.Filename, data)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	middleware.RecordImport(output.Count)
	writeJSON(w, http.StatusOK, output)
}

func (h *AdminHandler) Unassigned(w http.ResponseWriter, r *http.Request) {
	prospects, err := h.ManageUC.ListUnassigned(r.Context())
	if err != nil {
		writeUsecaseError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, prospects)
}

func (h *AdminHandler) Assign(w http.ResponseWriter, r *http.Request) {
	var input usecase.AssignInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON invalide")
		return
	}

	message, err := h.AssignUC.Execute(r.Context(), input)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": message})
}

func (h *AdminHandler) All(w http.ResponseWriter, r *http.Request) {
	prospects, err := h.ManageUC.ListAll(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		writeUsecaseError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, prospects)
}

func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.StatsUC.ForAdmin(r.Context())
	if err != nil {
		writeUsecaseError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *AdminHandler) UpdateProspect(w http.ResponseWriter, r *http.Request) {
	prospectID := chi.URLParam(r, "id")

	var body struct {
		Nom       *string `json:"nom"`
		Secteur   *string `json:"secteur"`
		Telephone *string `json:"telephone"`
		Email     *string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON invalide")
		return
	}

	patch := entity.ProspectPatch{
		Nom:       body.Nom,
		Secteur:   body.Secteur,
		Telephone: body.Telephone,
		Email:     body.Email,
	}

	if err := h.ManageUC.Update(r.Context(), prospectID, patch); err != nil {
		writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Prospect mis à jour"})
}

func (h *AdminHandler) DeleteProspect(w http.ResponseWriter, r *http.Request) {
	prospectID := chi.URLParam(r, "id")

	if err := h.ManageUC.Delete(r.Context(), prospectID); err != nil {
		writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Prospect supprimé"})
}

func (h *AdminHandler) Reassign(w http.ResponseWriter, r *http.Request) {
	prospectID := chi.URLParam(r, "id")
	newOwner := r.URL.Query().Get("new_prospecteur_id")

	if err := h.AssignUC.Reassign(r.Context(), prospectID, newOwner); err != nil {
		writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Prospect réattribué"})
}
