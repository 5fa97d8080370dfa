package usecase

import (
	"context"
	"fmt"
)

// AssignProspectsUseCase distributes unassigned prospects across
// prospecteurs round-robin by position index. Deterministic: given the same
// input order, the same prospecteur always receives the same prospect.
type AssignProspectsUseCase struct {
	Prospects ProspectRepositoryInterface
}

func NewAssignProspectsUseCase(prospects ProspectRepositoryInterface) *AssignProspectsUseCase {
	return &AssignProspectsUseCase{Prospects: prospects}
}

func (uc *AssignProspectsUseCase) Execute(ctx context.Context, input AssignInput) (string, error) {
	if len(input.ProspecteurIDs) == 0 {
		return "", Invalid("Aucun prospecteur sélectionné")
	}

	n := len(input.ProspecteurIDs)
	for i, prospectID := range input.ProspectIDs {
		prospecteurID := input.ProspecteurIDs[i%n]
		if err := uc.Prospects.Assign(ctx, prospectID, prospecteurID); err != nil {
			return "", &TechnicalError{
				Code:    "DATABASE_ERROR",
				Message: fmt.Sprintf("failed to assign prospect %s: %v", prospectID, err),
			}
		}
	}

	return fmt.Sprintf("%d prospects attribués", len(input.ProspectIDs)), nil
}

// Reassign hands a single prospect to an explicit new owner. The prospect is
// put back on the new owner's active list whatever its previous status.
func (uc *AssignProspectsUseCase) Reassign(ctx context.Context, prospectID, newProspecteurID string) error {
	if newProspecteurID == "" {
		return Invalid("new_prospecteur_id is required")
	}

	if _, err := uc.Prospects.FindByID(ctx, prospectID); err != nil {
		return NotFound("Prospect non trouvé")
	}

	if err := uc.Prospects.Assign(ctx, prospectID, newProspecteurID); err != nil {
		return &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to reassign prospect: " + err.Error(),
		}
	}

	return nil
}
