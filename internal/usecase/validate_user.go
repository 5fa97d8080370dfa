package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/xavierca1/leadcentral/internal/auth"
	"github.com/xavierca1/leadcentral/internal/entity"
	"github.com/xavierca1/leadcentral/internal/infra/queue"
)

const generatedPasswordLength = 10

// ValidateUserUseCase turns a pending account active: generates a password,
// stores its hash, clears the one-time token and emails the credentials.
type ValidateUserUseCase struct {
	Users    UserRepositoryInterface
	Producer NotificationProducerInterface
	AppURL   string

	// GeneratePassword is swappable in tests.
	GeneratePassword func(n int) string
}

func NewValidateUserUseCase(
	users UserRepositoryInterface,
	producer NotificationProducerInterface,
	appURL string,
) *ValidateUserUseCase {
	return &ValidateUserUseCase{
		Users:            users,
		Producer:         producer,
		AppURL:           appURL,
		GeneratePassword: auth.GeneratePassword,
	}
}

func (uc *ValidateUserUseCase) Execute(ctx context.Context, token string) (*ValidateOutput, error) {
	user, err := uc.Users.FindByValidationToken(ctx, token)
	if err != nil {
		return nil, NotFound("Lien de validation invalide")
	}

	// Re-validating an already active account is a harmless no-op.
	if user.Status == entity.UserActive {
		return &ValidateOutput{
			Message:       "Ce compte est déjà activé",
			AlreadyActive: true,
		}, nil
	}

	password := uc.GeneratePassword(generatedPasswordLength)
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, &TechnicalError{Code: "HASH_ERROR", Message: err.Error()}
	}

	if err := uc.Users.Activate(ctx, user.ID, hash); err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}

	payload := queue.NotificationPayload{
		To:       user.Email,
		Subject:  "Vos identifiants LeadCentral",
		Template: "credentials",
		Data: map[string]string{
			"Email":    user.Email,
			"Password": password,
			"AppURL":   uc.AppURL,
		},
	}
	if err := uc.Producer.PublishNotification(ctx, payload); err != nil {
		log.Printf("credentials notification dropped for %s: %v", user.Email, err)
	}

	return &ValidateOutput{
		Message: fmt.Sprintf("Le compte de %s %s a été activé. Les identifiants ont été envoyés par email.", user.Prenom, user.Nom),
	}, nil
}
