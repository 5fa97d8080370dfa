package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/xavierca1/leadcentral/internal/entity"
	"github.com/xavierca1/leadcentral/internal/usecase"
)

type ProspectRepository struct {
	DB *sql.DB
}

func NewProspectRepository(db *sql.DB) *ProspectRepository {
	return &ProspectRepository{DB: db}
}

const prospectColumns = `
	id, nom, secteur, telephone, email,
	status, prospecteur_id, last_call,
	refus_date, rappel_date, rappel_note,
	rdv_date, rdv_heure, rdv_telephone, rdv_email, rdv_note,
	no_response_attempts, created_at`

// InsertMany writes an imported batch in one transaction: either the whole
// file lands or none of it does.
func (r *ProspectRepository) InsertMany(ctx context.Context, prospects []*entity.Prospect) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO prospects (id, nom, secteur, telephone, email, status, prospecteur_id, no_response_attempts, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, p := range prospects {
		_, err := stmt.ExecContext(ctx,
			p.ID, p.Nom, p.Secteur, p.Telephone, p.Email,
			string(p.Status), p.ProspecteurID, p.NoResponseAttempts, p.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert prospect %s: %w", p.ID, err)
		}
	}

	return tx.Commit()
}

func (r *ProspectRepository) FindByID(ctx context.Context, id string) (*entity.Prospect, error) {
	query := `SELECT` + prospectColumns + ` FROM prospects WHERE id = $1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, id))
}

func (r *ProspectRepository) FindOwned(ctx context.Context, id, prospecteurID string) (*entity.Prospect, error) {
	query := `SELECT` + prospectColumns + ` FROM prospects WHERE id = $1 AND prospecteur_id = $2`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, id, prospecteurID))
}

func (r *ProspectRepository) scanOne(row *sql.Row) (*entity.Prospect, error) {
	var p entity.Prospect
	var status string

	err := row.Scan(
		&p.ID, &p.Nom, &p.Secteur, &p.Telephone, &p.Email,
		&status, &p.ProspecteurID, &p.LastCall,
		&p.RefusDate, &p.RappelDate, &p.RappelNote,
		&p.RdvDate, &p.RdvHeure, &p.RdvTelephone, &p.RdvEmail, &p.RdvNote,
		&p.NoResponseAttempts, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrProspectNotFound
		}
		return nil, err
	}

	p.Status = entity.ProspectStatus(status)
	return &p, nil
}

func buildFilter(filter usecase.ProspectFilter) (string, []interface{}) {
	where := ""
	args := []interface{}{}

	if filter.Status != "" {
		args = append(args, string(filter.Status))
		where += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.ProspecteurID != "" {
		args = append(args, filter.ProspecteurID)
		where += fmt.Sprintf(" AND prospecteur_id = $%d", len(args))
	}

	return where, args
}

func (r *ProspectRepository) List(ctx context.Context, filter usecase.ProspectFilter) ([]entity.Prospect, error) {
	where, args := buildFilter(filter)
	query := `SELECT` + prospectColumns + ` FROM prospects WHERE 1=1` + where + ` ORDER BY created_at`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	prospects := []entity.Prospect{}
	for rows.Next() {
		var p entity.Prospect
		var status string
		err := rows.Scan(
			&p.ID, &p.Nom, &p.Secteur, &p.Telephone, &p.Email,
			&status, &p.ProspecteurID, &p.LastCall,
			&p.RefusDate, &p.RappelDate, &p.RappelNote,
			&p.RdvDate, &p.RdvHeure, &p.RdvTelephone, &p.RdvEmail, &p.RdvNote,
			&p.NoResponseAttempts, &p.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		p.Status = entity.ProspectStatus(status)
		prospects = append(prospects, p)
	}

	return prospects, rows.Err()
}

func (r *ProspectRepository) Count(ctx context.Context, filter usecase.ProspectFilter) (int, error) {
	where, args := buildFilter(filter)

	var count int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM prospects WHERE 1=1`+where, args...).Scan(&count)
	return count, err
}

// Assign sets the owner and puts the prospect on the active list. Used by
// both bulk assignment and single reassignment.
func (r *ProspectRepository) Assign(ctx context.Context, id, prospecteurID string) error {
	query := `UPDATE prospects SET prospecteur_id = $2, status = 'active' WHERE id = $1`
	_, err := r.DB.ExecContext(ctx, query, id, prospecteurID)
	return err
}

// UpdateDetails patches only the provided fields, keeping the rest.
func (r *ProspectRepository) UpdateDetails(ctx context.Context, id string, patch entity.ProspectPatch) error {
	query := `
		UPDATE prospects
		SET nom       = COALESCE($2, nom),
		    secteur   = COALESCE($3, secteur),
		    telephone = COALESCE($4, telephone),
		    email     = COALESCE($5, email)
		WHERE id = $1
	`
	res, err := r.DB.ExecContext(ctx, query, id, patch.Nom, patch.Secteur, patch.Telephone, patch.Email)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entity.ErrProspectNotFound
	}
	return nil
}

func (r *ProspectRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM prospects WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entity.ErrProspectNotFound
	}
	return nil
}

func (r *ProspectRepository) MarkRefus(ctx context.Context, id string, at time.Time) error {
	query := `
		UPDATE prospects
		SET status = 'refus', refus_date = $2, last_call = $2
		WHERE id = $1
	`
	_, err := r.DB.ExecContext(ctx, query, id, at)
	return err
}

func (r *ProspectRepository) MarkARappeler(ctx context.Context, id string, at time.Time, date, note string) error {
	query := `
		UPDATE prospects
		SET status = 'a_rappeler', rappel_date = $2, rappel_note = $3, last_call = $4
		WHERE id = $1
	`
	_, err := r.DB.ExecContext(ctx, query, id, nullString(date), nullString(note), at)
	return err
}

func (r *ProspectRepository) MarkPasDeReponse(ctx context.Context, id string, at time.Time, attempts int) error {
	query := `
		UPDATE prospects
		SET status = 'pas_de_reponse', no_response_attempts = $2, last_call = $3
		WHERE id = $1
	`
	_, err := r.DB.ExecContext(ctx, query, id, attempts, at)
	return err
}

func (r *ProspectRepository) MarkRdvPris(ctx context.Context, id string, at time.Time, rdv entity.Appointment) error {
	query := `
		UPDATE prospects
		SET status = 'rdv_pris',
		    rdv_date = $2, rdv_heure = $3, rdv_telephone = $4,
		    rdv_email = $5, rdv_note = $6, last_call = $7
		WHERE id = $1
	`
	_, err := r.DB.ExecContext(ctx, query, id,
		nullString(rdv.Date), nullString(rdv.Heure), nullString(rdv.Telephone),
		rdv.Email, rdv.Note, at,
	)
	return err
}

// TopPerformers groups rdv_pris prospects by owner. Ties break on the owner
// id ascending so rankings are stable between runs.
func (r *ProspectRepository) TopPerformers(ctx context.Context, limit int) ([]usecase.PerformerCount, error) {
	query := `
		SELECT prospecteur_id, COUNT(*) AS rdv_count
		FROM prospects
		WHERE status = 'rdv_pris' AND prospecteur_id IS NOT NULL
		GROUP BY prospecteur_id
		ORDER BY rdv_count DESC, prospecteur_id ASC
		LIMIT $1
	`

	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var performers []usecase.PerformerCount
	for rows.Next() {
		var perf usecase.PerformerCount
		if err := rows.Scan(&perf.ProspecteurID, &perf.RdvCount); err != nil {
			return nil, err
		}
		performers = append(performers, perf)
	}

	return performers, rows.Err()
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
