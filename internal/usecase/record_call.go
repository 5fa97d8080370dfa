package usecase

import (
	"context"
	"log"
	"time"

	"github.com/xavierca1/leadcentral/internal/entity"
	"github.com/xavierca1/leadcentral/internal/infra/queue"
)

// RecordCallUseCase applies a call outcome to a prospect: one immutable
// ledger entry, one status transition, and for rdv_pris a notification to
// the operations mailbox.
type RecordCallUseCase struct {
	Prospects ProspectRepositoryInterface
	Calls     CallRepositoryInterface
	Producer  NotificationProducerInterface
	OpsEmail  string

	// Now is swappable in tests; defaults to time.Now.
	Now func() time.Time
}

func NewRecordCallUseCase(
	prospects ProspectRepositoryInterface,
	calls CallRepositoryInterface,
	producer NotificationProducerInterface,
	opsEmail string,
) *RecordCallUseCase {
	return &RecordCallUseCase{
		Prospects: prospects,
		Calls:     calls,
		Producer:  producer,
		OpsEmail:  opsEmail,
		Now:       time.Now,
	}
}

func (uc *RecordCallUseCase) Execute(ctx context.Context, caller *entity.User, input RecordCallInput) (*RecordCallOutput, error) {
	if errs := ValidateCallResultInput(input); len(errs) > 0 {
		return nil, Invalid(fieldErrorMessage(errs))
	}

	// Ownership gate: a prospect owned by another prospecteur looks exactly
	// like a missing one.
	prospect, err := uc.Prospects.FindOwned(ctx, input.ProspectID, caller.ID)
	if err != nil {
		return nil, NotFound("Prospect non trouvé")
	}

	now := uc.Now().UTC()
	call := entity.NewCallRecord(prospect.ID, caller.ID, input.Result, now)

	var status entity.ProspectStatus
	var applyOutcome func(context.Context) error

	switch input.Result {
	case entity.CallRefus:
		status = entity.ProspectRefus
		applyOutcome = func(ctx context.Context) error {
			return uc.Prospects.MarkRefus(ctx, prospect.ID, now)
		}

	case entity.CallARappeler:
		status = entity.ProspectARappeler
		applyOutcome = func(ctx context.Context) error {
			return uc.Prospects.MarkARappeler(ctx, prospect.ID, now, input.RappelDate, input.RappelNote)
		}

	case entity.CallPasDeRep:
		status = entity.ProspectPasDeRep
		attempts := prospect.NoResponseAttempts + 1
		applyOutcome = func(ctx context.Context) error {
			return uc.Prospects.MarkPasDeReponse(ctx, prospect.ID, now, attempts)
		}

	case entity.CallRdvPris:
		status = entity.ProspectRdvPris
		rdv := entity.Appointment{
			Date:      input.RdvDate,
			Heure:     input.RdvHeure,
			Telephone: input.RdvTelephone,
		}
		// Contact details default to what we already know about the prospect.
		if rdv.Telephone == "" {
			rdv.Telephone = prospect.Telephone
		}
		if input.RdvEmail != "" {
			rdv.Email = &input.RdvEmail
		} else {
			rdv.Email = prospect.Email
		}
		if input.RdvNote != "" {
			rdv.Note = &input.RdvNote
		}
		applyOutcome = func(ctx context.Context) error {
			return uc.Prospects.MarkRdvPris(ctx, prospect.ID, now, rdv)
		}
	}

	txn := NewTransaction()

	txn.AddOperation("append_call_record", func(ctx context.Context) error {
		return uc.Calls.Insert(ctx, call)
	})

	txn.AddCompensation("remove_call_record", func(ctx context.Context) error {
		return uc.Calls.Delete(ctx, call.ID)
	})

	txn.AddOperation("apply_outcome", applyOutcome)

	if err := txn.Execute(ctx); err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to record call result: " + err.Error(),
		}
	}

	if input.Result == entity.CallRdvPris {
		uc.notifyAppointment(ctx, caller, prospect, input)
	}

	return &RecordCallOutput{
		Message: "Résultat enregistré",
		Status:  status,
	}, nil
}

// notifyAppointment is fire-and-forget: a publish failure is logged and
// swallowed, never surfaced to the caller.
func (uc *RecordCallUseCase) notifyAppointment(ctx context.Context, caller *entity.User, prospect *entity.Prospect, input RecordCallInput) {
	telephone := input.RdvTelephone
	if telephone == "" {
		telephone = prospect.Telephone
	}
	if telephone == "" {
		telephone = "N/A"
	}

	payload := queue.NotificationPayload{
		To:       uc.OpsEmail,
		Subject:  "Nouveau RDV - " + prospect.Nom,
		Template: "rdv_booked",
		Data: map[string]string{
			"Prospecteur": caller.FullName(),
			"Client":      prospect.Nom,
			"Secteur":     prospect.Secteur,
			"Date":        input.RdvDate,
			"Heure":       input.RdvHeure,
			"Telephone":   telephone,
		},
	}

	if err := uc.Producer.PublishNotification(ctx, payload); err != nil {
		log.Printf("rdv notification dropped for prospect %s: %v", prospect.ID, err)
	}
}
