package pages

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/inkpresscms/inkpress/internal/common"
	"github.com/inkpresscms/inkpress/internal/dbx"
	"github.com/inkpresscms/inkpress/internal/server/models"
)

// uniqueViolation is the PostgreSQL error code for duplicate keys.
const uniqueViolation = "23505"

// PostgresRepository serves pages from the relational store. Every method
// resolves its query handle from the context, so calls inside a unit-of-work
// block join that transaction transparently.
type PostgresRepository struct {
	uow *dbx.UnitOfWork
}

// NewPostgresRepository binds the repository to the unit of work.
func NewPostgresRepository(uow *dbx.UnitOfWork) *PostgresRepository {
	return &PostgresRepository{uow: uow}
}

const pageColumns = `id, title, slug, content, meta_description, status, created_at, updated_at`

func (r *PostgresRepository) Save(ctx context.Context, page *models.Page) (*models.Page, error) {
	saved := *page
	saved.Type = models.TypePage
	if saved.ID == "" {
		saved.ID = uuid.NewString()
	}
	now := time.Now().Unix()
	if saved.CreatedAt == 0 {
		saved.CreatedAt = now
	}
	saved.UpdatedAt = now

	if err := saved.Validate(); err != nil {
		return nil, err
	}

	content, err := json.Marshal(saved.Content)
	if err != nil {
		return nil, fmt.Errorf("%w: encoding content: %v", common.ErrInternal, err)
	}

	query := `
		INSERT INTO pages (id, title, slug, content, meta_description, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id)
		DO UPDATE SET
			title = EXCLUDED.title,
			slug = EXCLUDED.slug,
			content = EXCLUDED.content,
			meta_description = EXCLUDED.meta_description,
			status = EXCLUDED.status,
			updated_at = EXCLUDED.updated_at;
	`
	q := r.uow.QueriesFromContext(ctx)
	if _, err := q.ExecContext(ctx, query,
		saved.ID, saved.Title, saved.Slug, content, saved.MetaDescription,
		saved.Status, saved.CreatedAt, saved.UpdatedAt); err != nil {
		return nil, translatePgError(err, saved.Slug)
	}
	return &saved, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Page, error) {
	q := r.uow.QueriesFromContext(ctx)
	row := q.QueryRowContext(ctx, `SELECT `+pageColumns+` FROM pages WHERE id = $1`, id)
	return scanPage(row)
}

func (r *PostgresRepository) GetBySlug(ctx context.Context, slug string) (*models.Page, error) {
	q := r.uow.QueriesFromContext(ctx)
	row := q.QueryRowContext(ctx, `SELECT `+pageColumns+` FROM pages WHERE slug = $1`, slug)
	return scanPage(row)
}

func (r *PostgresRepository) List(ctx context.Context, opts models.ListOptions) ([]*models.Page, error) {
	opts = opts.Normalize()
	q := r.uow.QueriesFromContext(ctx)
	rows, err := q.QueryContext(ctx,
		`SELECT `+pageColumns+` FROM pages ORDER BY slug LIMIT $1 OFFSET $2`,
		opts.Limit, opts.Skip)
	if err != nil {
		return nil, fmt.Errorf("%w: selecting pages: %v", common.ErrInternal, err)
	}
	return scanPages(rows)
}

func (r *PostgresRepository) ListByStatus(ctx context.Context, status string, opts models.ListOptions) ([]*models.Page, error) {
	opts = opts.Normalize()
	q := r.uow.QueriesFromContext(ctx)
	rows, err := q.QueryContext(ctx,
		`SELECT `+pageColumns+` FROM pages WHERE status = $1 ORDER BY slug LIMIT $2 OFFSET $3`,
		status, opts.Limit, opts.Skip)
	if err != nil {
		return nil, fmt.Errorf("%w: selecting pages: %v", common.ErrInternal, err)
	}
	return scanPages(rows)
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	q := r.uow.QueriesFromContext(ctx)
	res, err := q.ExecContext(ctx, `DELETE FROM pages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%w: deleting page: %v", common.ErrInternal, err)
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

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPage(row rowScanner) (*models.Page, error) {
	var page models.Page
	var content []byte
	err := row.Scan(&page.ID, &page.Title, &page.Slug, &content,
		&page.MetaDescription, &page.Status, &page.CreatedAt, &page.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scanning page: %v", common.ErrInternal, err)
	}
	if err := json.Unmarshal(content, &page.Content); err != nil {
		return nil, fmt.Errorf("%w: decoding content: %v", common.ErrInternal, err)
	}
	page.Type = models.TypePage
	return &page, nil
}

func scanPages(rows *sql.Rows) ([]*models.Page, error) {
	defer rows.Close()
	var out []*models.Page
	for rows.Next() {
		page, err := scanPage(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, page)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating pages: %v", common.ErrInternal, err)
	}
	return out, nil
}

// translatePgError classifies driver errors into the shared taxonomy: a
// unique violation is a conflict (somebody else holds the slug), anything
// else stays internal.
func translatePgError(err error, slug string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%w: slug %q already in use", common.ErrConflict, slug)
	}
	return fmt.Errorf("%w: %v", common.ErrInternal, err)
}
