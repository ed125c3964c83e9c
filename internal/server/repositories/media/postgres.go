package media

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/inkpresscms/inkpress/internal/common"
	"github.com/inkpresscms/inkpress/internal/dbx"
	"github.com/inkpresscms/inkpress/internal/server/models"
)

const uniqueViolation = "23505"

// PostgresRepository serves media records from the relational store. The
// filename view becomes a unique index on the filename column.
type PostgresRepository struct {
	uow *dbx.UnitOfWork
}

// NewPostgresRepository binds the repository to the unit of work.
func NewPostgresRepository(uow *dbx.UnitOfWork) *PostgresRepository {
	return &PostgresRepository{uow: uow}
}

const mediaColumns = `id, filename, original_name, mime_type, size, url, alt_text, uploaded_by, created_at`

func (r *PostgresRepository) Save(ctx context.Context, m *models.Media) (*models.Media, error) {
	saved := *m
	saved.Type = models.TypeMedia
	if saved.ID == "" {
		saved.ID = uuid.NewString()
	}
	if saved.CreatedAt == 0 {
		saved.CreatedAt = time.Now().Unix()
	}

	if err := saved.Validate(); err != nil {
		return nil, err
	}

	query := `
		INSERT INTO media (id, filename, original_name, mime_type, size, url, alt_text, uploaded_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id)
		DO UPDATE SET
			filename = EXCLUDED.filename,
			original_name = EXCLUDED.original_name,
			mime_type = EXCLUDED.mime_type,
			size = EXCLUDED.size,
			url = EXCLUDED.url,
			alt_text = EXCLUDED.alt_text,
			uploaded_by = EXCLUDED.uploaded_by;
	`
	q := r.uow.QueriesFromContext(ctx)
	if _, err := q.ExecContext(ctx, query,
		saved.ID, saved.Filename, saved.OriginalName, saved.MimeType, saved.Size,
		saved.URL, saved.AltText, saved.UploadedBy, saved.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, fmt.Errorf("%w: filename %q already in use", common.ErrConflict, saved.Filename)
		}
		return nil, fmt.Errorf("%w: saving media: %v", common.ErrInternal, err)
	}
	return &saved, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Media, error) {
	q := r.uow.QueriesFromContext(ctx)
	return scanMedia(q.QueryRowContext(ctx, `SELECT `+mediaColumns+` FROM media WHERE id = $1`, id))
}

func (r *PostgresRepository) GetByFilename(ctx context.Context, filename string) (*models.Media, error) {
	q := r.uow.QueriesFromContext(ctx)
	return scanMedia(q.QueryRowContext(ctx, `SELECT `+mediaColumns+` FROM media WHERE filename = $1`, filename))
}

func (r *PostgresRepository) List(ctx context.Context, opts models.ListOptions) ([]*models.Media, error) {
	opts = opts.Normalize()
	q := r.uow.QueriesFromContext(ctx)
	rows, err := q.QueryContext(ctx,
		`SELECT `+mediaColumns+` FROM media ORDER BY filename LIMIT $1 OFFSET $2`,
		opts.Limit, opts.Skip)
	if err != nil {
		return nil, fmt.Errorf("%w: selecting media: %v", common.ErrInternal, err)
	}
	defer rows.Close()

	var out []*models.Media
	for rows.Next() {
		m, err := scanMedia(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating media: %v", common.ErrInternal, err)
	}
	return out, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	q := r.uow.QueriesFromContext(ctx)
	res, err := q.ExecContext(ctx, `DELETE FROM media WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%w: deleting media: %v", common.ErrInternal, err)
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

func scanMedia(row interface{ Scan(dest ...any) error }) (*models.Media, error) {
	var m models.Media
	err := row.Scan(&m.ID, &m.Filename, &m.OriginalName, &m.MimeType, &m.Size,
		&m.URL, &m.AltText, &m.UploadedBy, &m.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scanning media: %v", common.ErrInternal, err)
	}
	m.Type = models.TypeMedia
	return &m, nil
}
