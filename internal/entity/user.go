package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin       Role = "admin"
	RoleProspecteur Role = "prospecteur"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleProspecteur
}

type UserStatus string

const (
	UserPending  UserStatus = "pending"
	UserActive   UserStatus = "active"
	UserInactive UserStatus = "inactive"
)

func (s UserStatus) Valid() bool {
	return s == UserPending || s == UserActive || s == UserInactive
}

var (
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrProspectNotFound   = errors.New("prospect not found")
)

// Entidade: User (admin ou prospecteur)
type User struct {
	ID        string `json:"id"`
	Nom       string `json:"nom"`
	Prenom    string `json:"prenom"`
	Email     string `json:"email"`
	Telephone string `json:"telephone"`

	Role   Role       `json:"role"`
	Status UserStatus `json:"status"`

	// Hash present only once the account is activated (admin is seeded active).
	PasswordHash    *string `json:"-"`
	ValidationToken *string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// Factory
func NewProspecteur(nom, prenom, email, telephone string) (*User, error) {
	token := uuid.New().String()

	user := &User{
		ID:              uuid.New().String(),
		Nom:             nom,
		Prenom:          prenom,
		Email:           email,
		Telephone:       telephone,
		Role:            RoleProspecteur,
		Status:          UserPending,
		ValidationToken: &token,
		CreatedAt:       time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

func (u *User) Validate() error {
	if u.Nom == "" {
		return errors.New("nom is required")
	}
	if u.Prenom == "" {
		return errors.New("prenom is required")
	}
	if u.Email == "" {
		return errors.New("email is required")
	}
	if u.Telephone == "" {
		return errors.New("telephone is required")
	}
	return nil
}

func (u *User) FullName() string {
	return u.Prenom + " " + u.Nom
}
