package bootstrap

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/xavierca1/leadcentral/internal/auth"
	"github.com/xavierca1/leadcentral/internal/entity"
	"github.com/xavierca1/leadcentral/internal/infra/database"
)

// EnsureAdmin seeds the organizer account on first boot. Idempotent: if any
// admin already exists nothing is written.
func EnsureAdmin(ctx context.Context, users *database.UserRepository, email, password string) error {
	if email == "" || password == "" {
		return errors.New("admin bootstrap missing ADMIN_EMAIL or ADMIN_PASSWORD")
	}

	_, err := users.FindFirstByRole(ctx, entity.RoleAdmin)
	if err == nil {
		return nil
	}
	if !errors.Is(err, entity.ErrUserNotFound) {
		return err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	admin := &entity.User{
		ID:           uuid.New().String(),
		Nom:          "Admin",
		Prenom:       "LeadCentral",
		Email:        email,
		Telephone:    "",
		Role:         entity.RoleAdmin,
		Status:       entity.UserActive,
		PasswordHash: &hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := users.Create(ctx, admin); err != nil {
		return err
	}

	log.Printf("admin user created: %s", email)
	return nil
}
