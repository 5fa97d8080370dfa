package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/xavierca1/leadcentral/internal/entity"
)

// CallRepository persists the append-only call ledger.
type CallRepository struct {
	DB *sql.DB
}

func NewCallRepository(db *sql.DB) *CallRepository {
	return &CallRepository{DB: db}
}

func (r *CallRepository) Insert(ctx context.Context, call *entity.CallRecord) error {
	query := `
		INSERT INTO calls (id, prospect_id, prospecteur_id, result, timestamp)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.DB.ExecContext(ctx, query,
		call.ID, call.ProspectID, call.ProspecteurID, string(call.Result), call.Timestamp,
	)
	return err
}

// Delete is the compensation path only; nothing else removes ledger rows.
func (r *CallRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM calls WHERE id = $1`, id)
	return err
}

func (r *CallRepository) CountByProspecteur(ctx context.Context, prospecteurID string) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM calls WHERE prospecteur_id = $1`, prospecteurID,
	).Scan(&count)
	return count, err
}

func (r *CallRepository) CountAll(ctx context.Context) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM calls`).Scan(&count)
	return count, err
}

func (r *CallRepository) ListByProspecteurSince(ctx context.Context, prospecteurID string, since time.Time) ([]entity.CallRecord, error) {
	query := `
		SELECT id, prospect_id, prospecteur_id, result, timestamp
		FROM calls
		WHERE prospecteur_id = $1 AND timestamp >= $2
		ORDER BY timestamp
	`

	rows, err := r.DB.QueryContext(ctx, query, prospecteurID, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var calls []entity.CallRecord
	for rows.Next() {
		var c entity.CallRecord
		var result string
		if err := rows.Scan(&c.ID, &c.ProspectID, &c.ProspecteurID, &result, &c.Timestamp); err != nil {
			return nil, err
		}
		c.Result = entity.CallResult(result)
		calls = append(calls, c)
	}

	return calls, rows.Err()
}
