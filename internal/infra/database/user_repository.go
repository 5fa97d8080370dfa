package database

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/lib/pq"

	"github.com/xavierca1/leadcentral/internal/entity"
)

type UserRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{DB: db}
}

const userColumns = `id, nom, prenom, email, telephone, role, status, password_hash, validation_token, created_at`

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	query := `
		INSERT INTO users (id, nom, prenom, email, telephone, role, status, password_hash, validation_token, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.DB.ExecContext(ctx, query,
		u.ID,
		u.Nom,
		u.Prenom,
		u.Email,
		u.Telephone,
		string(u.Role),
		string(u.Status),
		u.PasswordHash,
		u.ValidationToken,
		u.CreatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return entity.ErrEmailAlreadyExists
		}

		log.Printf("user insert failed: %v", err)
		return err
	}

	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (r *UserRepository) FindByValidationToken(ctx context.Context, token string) (*entity.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE validation_token = $1`, token)
}

func (r *UserRepository) FindFirstByRole(ctx context.Context, role entity.Role) (*entity.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE role = $1 LIMIT 1`, string(role))
}

func (r *UserRepository) findOne(ctx context.Context, query string, arg interface{}) (*entity.User, error) {
	var u entity.User
	var role, status string

	err := r.DB.QueryRowContext(ctx, query, arg).Scan(
		&u.ID,
		&u.Nom,
		&u.Prenom,
		&u.Email,
		&u.Telephone,
		&role,
		&status,
		&u.PasswordHash,
		&u.ValidationToken,
		&u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrUserNotFound
		}
		return nil, err
	}

	u.Role = entity.Role(role)
	u.Status = entity.UserStatus(status)
	return &u, nil
}

// Activate flips the account to active, stores the hash and burns the
// one-time validation token.
func (r *UserRepository) Activate(ctx context.Context, id, passwordHash string) error {
	query := `
		UPDATE users
		SET status = 'active', password_hash = $2, validation_token = NULL
		WHERE id = $1
	`
	res, err := r.DB.ExecContext(ctx, query, id, passwordHash)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entity.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) UpdateStatus(ctx context.Context, id string, status entity.UserStatus) error {
	res, err := r.DB.ExecContext(ctx, `UPDATE users SET status = $2 WHERE id = $1`, id, string(status))
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entity.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) ListByRole(ctx context.Context, role entity.Role) ([]entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE role = $1 ORDER BY created_at`

	rows, err := r.DB.QueryContext(ctx, query, string(role))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []entity.User
	for rows.Next() {
		var u entity.User
		var roleCol, status string
		err := rows.Scan(
			&u.ID, &u.Nom, &u.Prenom, &u.Email, &u.Telephone,
			&roleCol, &status, &u.PasswordHash, &u.ValidationToken, &u.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		u.Role = entity.Role(roleCol)
		u.Status = entity.UserStatus(status)
		users = append(users, u)
	}

	return users, rows.Err()
}

func (r *UserRepository) CountByRoleAndStatus(ctx context.Context, role entity.Role, status entity.UserStatus) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM users WHERE role = $1 AND status = $2`,
		string(role), string(status),
	).Scan(&count)
	return count, err
}
