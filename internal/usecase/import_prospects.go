package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/xavierca1/leadcentral/internal/entity"
	"github.com/xavierca1/leadcentral/internal/infra/importer"
)

var requiredImportColumns = []string{"nom", "secteur", "telephone"}

// ImportProspectsUseCase loads a tabular file of leads. All-or-nothing: a
// missing required column rejects the whole file before any row is written.
type ImportProspectsUseCase struct {
	Prospects ProspectRepositoryInterface
	Parser    TabularParserInterface
}

func NewImportProspectsUseCase(prospects ProspectRepositoryInterface, parser TabularParserInterface) *ImportProspectsUseCase {
	return &ImportProspectsUseCase{Prospects: prospects, Parser: parser}
}

func (uc *ImportProspectsUseCase) Execute(ctx context.Context, filename string, data []byte) (*ImportOutput, error) {
	table, err := uc.Parser.Parse(filename, data)
	if err != nil {
		if errors.Is(err, importer.ErrUnsupportedFormat) {
			return nil, Invalid("Format de fichier non supporté. Utilisez CSV ou Excel.")
		}
		return nil, Invalid("Erreur lors de la lecture du fichier: " + err.Error())
	}

	for _, col := range requiredImportColumns {
		if !table.HasColumn(col) {
			return nil, Invalid("Colonne requise manquante: " + col)
		}
	}

	prospects := make([]*entity.Prospect, 0, len(table.Rows))
	for _, row := range table.Rows {
		var email *string
		if v := row["email"]; v != "" {
			e := v
			email = &e
		}

		prospect, err := entity.NewProspect(row["nom"], row["secteur"], row["telephone"], email)
		if err != nil {
			return nil, Invalid("ligne invalide: " + err.Error())
		}
		prospects = append(prospects, prospect)
	}

	if len(prospects) > 0 {
		if err := uc.Prospects.InsertMany(ctx, prospects); err != nil {
			return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
		}
	}

	return &ImportOutput{
		Message: fmt.Sprintf("%d prospects importés avec succès", len(prospects)),
		Count:   len(prospects),
	}, nil
}
