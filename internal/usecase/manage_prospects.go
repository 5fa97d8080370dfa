package usecase

import (
	"context"
	"errors"

	"github.com/xavierca1/leadcentral/internal/entity"
)

// Named prospect views exposed to prospecteurs. "principale" is the default
// working list of freshly assigned leads.
var listeViews = map[string]entity.ProspectStatus{
	"principale":     entity.ProspectActive,
	"a_rappeler":     entity.ProspectARappeler,
	"pas_de_reponse": entity.ProspectPasDeRep,
	"rdv_pris":       entity.ProspectRdvPris,
}

// ManageProspectsUseCase covers the plain CRUD around prospects: listings,
// admin edits and deletion.
type ManageProspectsUseCase struct {
	Prospects ProspectRepositoryInterface
	Users     UserRepositoryInterface
}

func NewManageProspectsUseCase(prospects ProspectRepositoryInterface, users UserRepositoryInterface) *ManageProspectsUseCase {
	return &ManageProspectsUseCase{Prospects: prospects, Users: users}
}

// ListForProspecteur returns the caller's prospects for a named view.
// Unknown view names fall back to the whole owned set, matching the
// permissive behavior the frontend relies on.
func (uc *ManageProspectsUseCase) ListForProspecteur(ctx context.Context, prospecteurID, liste string) ([]entity.Prospect, error) {
	filter := ProspectFilter{ProspecteurID: prospecteurID}
	if status, ok := listeViews[liste]; ok {
		filter.Status = status
	}

	prospects, err := uc.Prospects.List(ctx, filter)
	if err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}
	return prospects, nil
}

func (uc *ManageProspectsUseCase) ListUnassigned(ctx context.Context) ([]entity.Prospect, error) {
	prospects, err := uc.Prospects.List(ctx, ProspectFilter{Status: entity.ProspectUnassigned})
	if err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}
	return prospects, nil
}

// ListAll returns every prospect (optionally filtered by status) with the
// owning prospecteur expanded for the admin board.
func (uc *ManageProspectsUseCase) ListAll(ctx context.Context, status string) ([]ProspectWithOwner, error) {
	filter := ProspectFilter{}
	if status != "" {
		s := entity.ProspectStatus(status)
		if !s.Valid() {
			return nil, Invalid("statut invalide: " + status)
		}
		filter.Status = s
	}

	prospects, err := uc.Prospects.List(ctx, filter)
	if err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}

	// Owner lookups are cached per response; admin boards repeat owners a lot.
	owners := map[string]*UserSummary{}
	out := make([]ProspectWithOwner, 0, len(prospects))

	for _, p := range prospects {
		row := ProspectWithOwner{Prospect: p}
		if p.ProspecteurID != nil {
			summary, ok := owners[*p.ProspecteurID]
			if !ok {
				if user, err := uc.Users.FindByID(ctx, *p.ProspecteurID); err == nil {
					summary = &UserSummary{
						ID:     user.ID,
						Nom:    user.Nom,
						Prenom: user.Prenom,
						Email:  user.Email,
						Role:   user.Role,
					}
				}
				owners[*p.ProspecteurID] = summary
			}
			row.Prospecteur = summary
		}
		out = append(out, row)
	}

	return out, nil
}

func (uc *ManageProspectsUseCase) Update(ctx context.Context, prospectID string, patch entity.ProspectPatch) error {
	if patch.Empty() {
		return Invalid("Aucune donnée à mettre à jour")
	}

	if err := uc.Prospects.UpdateDetails(ctx, prospectID, patch); err != nil {
		if errors.Is(err, entity.ErrProspectNotFound) {
			return NotFound("Prospect non trouvé")
		}
		return &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}
	return nil
}

func (uc *ManageProspectsUseCase) Delete(ctx context.Context, prospectID string) error {
	if err := uc.Prospects.Delete(ctx, prospectID); err != nil {
		if errors.Is(err, entity.ErrProspectNotFound) {
			return NotFound("Prospect non trouvé")
		}
		return &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}
	return nil
}

// UpdateProspecteurStatus is the admin toggle on prospecteur accounts.
func (uc *ManageProspectsUseCase) UpdateProspecteurStatus(ctx context.Context, prospecteurID string, status string) error {
	s := entity.UserStatus(status)
	if !s.Valid() {
		return Invalid("Statut invalide")
	}

	if _, err := uc.Users.FindByID(ctx, prospecteurID); err != nil {
		return NotFound("Prospecteur non trouvé")
	}

	if err := uc.Users.UpdateStatus(ctx, prospecteurID, s); err != nil {
		return &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}
	return nil
}
