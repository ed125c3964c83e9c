package submissions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/inkpresscms/inkpress/internal/common"
	"github.com/inkpresscms/inkpress/internal/dbx"
	"github.com/inkpresscms/inkpress/internal/server/models"
)

// PostgresRepository serves contact submissions from the relational store.
type PostgresRepository struct {
	uow *dbx.UnitOfWork
}

// NewPostgresRepository binds the repository to the unit of work.
func NewPostgresRepository(uow *dbx.UnitOfWork) *PostgresRepository {
	return &PostgresRepository{uow: uow}
}

const submissionColumns = `id, name, email, company, message, ip_address, user_agent, status, created_at, updated_at`

func (r *PostgresRepository) Save(ctx context.Context, s *models.ContactSubmission) (*models.ContactSubmission, error) {
	saved := *s
	saved.Type = models.TypeSubmission
	if saved.ID == "" {
		saved.ID = uuid.NewString()
	}
	if saved.Status == "" {
		saved.Status = models.SubmissionStatusNew
	}
	now := time.Now().Unix()
	if saved.CreatedAt == 0 {
		saved.CreatedAt = now
	}
	saved.UpdatedAt = now

	if err := saved.Validate(); err != nil {
		return nil, err
	}

	query := `
		INSERT INTO contact_submissions (id, name, email, company, message, ip_address, user_agent, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id)
		DO UPDATE SET
			name = EXCLUDED.name,
			email = EXCLUDED.email,
			company = EXCLUDED.company,
			message = EXCLUDED.message,
			ip_address = EXCLUDED.ip_address,
			user_agent = EXCLUDED.user_agent,
			status = EXCLUDED.status,
			updated_at = EXCLUDED.updated_at;
	`
	q := r.uow.QueriesFromContext(ctx)
	if _, err := q.ExecContext(ctx, query,
		saved.ID, saved.Name, saved.Email, saved.Company, saved.Message,
		saved.IPAddress, saved.UserAgent, saved.Status, saved.CreatedAt, saved.UpdatedAt); err != nil {
		return nil, fmt.Errorf("%w: saving submission: %v", common.ErrInternal, err)
	}
	return &saved, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.ContactSubmission, error) {
	q := r.uow.QueriesFromContext(ctx)
	return scanSubmission(q.QueryRowContext(ctx,
		`SELECT `+submissionColumns+` FROM contact_submissions WHERE id = $1`, id))
}

func (r *PostgresRepository) List(ctx context.Context, opts models.ListOptions) ([]*models.ContactSubmission, error) {
	opts = opts.Normalize()
	q := r.uow.QueriesFromContext(ctx)
	rows, err := q.QueryContext(ctx,
		`SELECT `+submissionColumns+` FROM contact_submissions ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		opts.Limit, opts.Skip)
	if err != nil {
		return nil, fmt.Errorf("%w: selecting submissions: %v", common.ErrInternal, err)
	}
	return scanSubmissions(rows)
}

func (r *PostgresRepository) ListByStatus(ctx context.Context, status string, opts models.ListOptions) ([]*models.ContactSubmission, error) {
	opts = opts.Normalize()
	q := r.uow.QueriesFromContext(ctx)
	rows, err := q.QueryContext(ctx,
		`SELECT `+submissionColumns+` FROM contact_submissions WHERE status = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		status, opts.Limit, opts.Skip)
	if err != nil {
		return nil, fmt.Errorf("%w: selecting submissions: %v", common.ErrInternal, err)
	}
	return scanSubmissions(rows)
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, id, status string) (*models.ContactSubmission, error) {
	s, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.Status = status
	return r.Save(ctx, s)
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	q := r.uow.QueriesFromContext(ctx)
	res, err := q.ExecContext(ctx, `DELETE FROM contact_submissions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%w: deleting submission: %v", common.ErrInternal, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: rows affected: %v", common.ErrInternal, err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func scanSubmission(row interface{ Scan(dest ...any) error }) (*models.ContactSubmission, error) {
	var s models.ContactSubmission
	err := row.Scan(&s.ID, &s.Name, &s.Email, &s.Company, &s.Message,
		&s.IPAddress, &s.UserAgent, &s.Status, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scanning submission: %v", common.ErrInternal, err)
	}
	s.Type = models.TypeSubmission
	return &s, nil
}

func scanSubmissions(rows *sql.Rows) ([]*models.ContactSubmission, error) {
	defer rows.Close()
	var out []*models.ContactSubmission
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating submissions: %v", common.ErrInternal, err)
	}
	return out, nil
}
