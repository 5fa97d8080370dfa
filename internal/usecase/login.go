package usecase

import (
	"context"

	"github.com/xavierca1/leadcentral/internal/auth"
	"github.com/xavierca1/leadcentral/internal/entity"
)

// LoginUseCase authenticates by email + password and issues an access token.
type LoginUseCase struct {
	Users  UserRepositoryInterface
	Tokens TokenGenerator
}

func NewLoginUseCase(users UserRepositoryInterface, tokens TokenGenerator) *LoginUseCase {
	return &LoginUseCase{Users: users, Tokens: tokens}
}

func (uc *LoginUseCase) Execute(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	user, err := uc.Users.FindByEmail(ctx, input.Email)
	if err != nil {
		// Same message as a bad password; don't leak which emails exist.
		return nil, Unauthorized("Email ou mot de passe incorrect")
	}

	if user.Status != entity.UserActive {
		return nil, Unauthorized("Votre compte n'est pas encore activé")
	}

	if user.PasswordHash == nil || !auth.CheckPassword(*user.PasswordHash, input.Password) {
		return nil, Unauthorized("Email ou mot de passe incorrect")
	}

	token, err := uc.Tokens.Generate(user.ID, user.Role)
	if err != nil {
		return nil, &TechnicalError{Code: "TOKEN_ERROR", Message: err.Error()}
	}

	return &LoginOutput{
		Token: token,
		User: UserSummary{
			ID:     user.ID,
			Nom:    user.Nom,
			Prenom: user.Prenom,
			Email:  user.Email,
			Role:   user.Role,
		},
	}, nil
}
