package usecase

import (
	"context"
	"errors"
	"log"

	"github.com/xavierca1/leadcentral/internal/entity"
	"github.com/xavierca1/leadcentral/internal/infra/queue"
)

// RegisterUserUseCase creates a pending prospecteur account and asks the
// operations mailbox to validate it. Registration never self-activates.
type RegisterUserUseCase struct {
	Users    UserRepositoryInterface
	Producer NotificationProducerInterface
	OpsEmail string
	AppURL   string
}

func NewRegisterUserUseCase(
	users UserRepositoryInterface,
	producer NotificationProducerInterface,
	opsEmail, appURL string,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		Users:    users,
		Producer: producer,
		OpsEmail: opsEmail,
		AppURL:   appURL,
	}
}

func (uc *RegisterUserUseCase) Execute(ctx context.Context, input RegisterInput) (string, error) {
	if errs := ValidateRegisterInput(input); len(errs) > 0 {
		return "", Invalid(fieldErrorMessage(errs))
	}

	user, err := entity.NewProspecteur(input.Nom, input.Prenom, input.Email, input.Telephone)
	if err != nil {
		return "", Invalid(err.Error())
	}

	if err := uc.Users.Create(ctx, user); err != nil {
		if errors.Is(err, entity.ErrEmailAlreadyExists) {
			return "", Conflict("Cet email est déjà utilisé")
		}
		return "", &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}

	payload := queue.NotificationPayload{
		To:       uc.OpsEmail,
		Subject:  "Nouvelle demande d'accès prospecteur - LeadCentral",
		Template: "access_request",
		Data: map[string]string{
			"Nom":            user.Nom,
			"Prenom":         user.Prenom,
			"Email":          user.Email,
			"Telephone":      user.Telephone,
			"ValidationLink": uc.AppURL + "/validate/" + *user.ValidationToken,
		},
	}
	if err := uc.Producer.PublishNotification(ctx, payload); err != nil {
		log.Printf("access-request notification dropped for %s: %v", user.Email, err)
	}

	return "Votre demande a été envoyée. Vous recevrez vos identifiants par email une fois validé.", nil
}
