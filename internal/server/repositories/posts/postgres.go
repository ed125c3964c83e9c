package posts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/inkpresscms/inkpress/internal/common"
	"github.com/inkpresscms/inkpress/internal/dbx"
	"github.com/inkpresscms/inkpress/internal/server/models"
	"github.com/inkpresscms/inkpress/internal/views"
)

const uniqueViolation = "23505"

// PostgresRepository serves blog posts from the relational store. Each
// document-store view is re-expressed here: scalar views become WHERE
// clauses, multi-valued views become junction-table joins, the published
// view becomes a status-plus-time predicate, the search view becomes a
// token-array column materialized on write, and the counter views become
// GROUP BY queries.
type PostgresRepository struct {
	uow *dbx.UnitOfWork
}

// NewPostgresRepository binds the repository to the unit of work.
func NewPostgresRepository(uow *dbx.UnitOfWork) *PostgresRepository {
	return &PostgresRepository{uow: uow}
}

const postColumns = `p.id, p.title, p.slug, p.excerpt, p.content, p.author,
	p.meta_description, p.status, p.published_at, p.created_at, p.updated_at`

// Save writes the post row plus its category and tag junction rows. The
// steps join the caller's unit-of-work transaction when one is active, which
// is what makes the multi-table write atomic.
func (r *PostgresRepository) Save(ctx context.Context, post *models.BlogPost) (*models.BlogPost, error) {
	saved := *post
	saved.Type = models.TypeBlogPost
	if saved.ID == "" {
		saved.ID = uuid.NewString()
	}
	now := time.Now().Unix()
	if saved.CreatedAt == 0 {
		saved.CreatedAt = now
	}
	saved.UpdatedAt = now
	saved.Normalize()

	if err := saved.Validate(); err != nil {
		return nil, err
	}

	tokens := views.Tokenize(append([]string{
		saved.Title, saved.Excerpt, saved.MetaDescription,
	}, append(saved.Categories, saved.Tags...)...)...)
	if tokens == nil {
		tokens = []string{}
	}

	q := r.uow.QueriesFromContext(ctx)

	query := `
		INSERT INTO posts (id, title, slug, excerpt, content, author, meta_description,
			status, published_at, search_tokens, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (id)
		DO UPDATE SET
			title = EXCLUDED.title,
			slug = EXCLUDED.slug,
			excerpt = EXCLUDED.excerpt,
			content = EXCLUDED.content,
			author = EXCLUDED.author,
			meta_description = EXCLUDED.meta_description,
			status = EXCLUDED.status,
			published_at = EXCLUDED.published_at,
			search_tokens = EXCLUDED.search_tokens,
			updated_at = EXCLUDED.updated_at;
	`
	if _, err := q.ExecContext(ctx, query,
		saved.ID, saved.Title, saved.Slug, saved.Excerpt, saved.Content, saved.Author,
		saved.MetaDescription, saved.Status, saved.PublishedAt, tokens,
		saved.CreatedAt, saved.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, fmt.Errorf("%w: slug %q already in use", common.ErrConflict, saved.Slug)
		}
		return nil, fmt.Errorf("%w: saving post: %v", common.ErrInternal, err)
	}

	if err := r.replaceFacets(ctx, q, saved.ID, "post_categories", "category", saved.Categories); err != nil {
		return nil, err
	}
	if err := r.replaceFacets(ctx, q, saved.ID, "post_tags", "tag", saved.Tags); err != nil {
		return nil, err
	}

	return &saved, nil
}

func (r *PostgresRepository) replaceFacets(ctx context.Context, q dbx.DBTX, postID, table, column string, values []string) error {
	if _, err := q.ExecContext(ctx,
		fmt.Sprintf(`DELETE FROM %s WHERE post_id = $1`, table), postID); err != nil {
		return fmt.Errorf("%w: clearing %s: %v", common.ErrInternal, table, err)
	}
	for _, v := range values {
		if _, err := q.ExecContext(ctx,
			fmt.Sprintf(`INSERT INTO %s (post_id, %s) VALUES ($1, $2)`, table, column),
			postID, v); err != nil {
			return fmt.Errorf("%w: inserting into %s: %v", common.ErrInternal, table, err)
		}
	}
	return nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.BlogPost, error) {
	return r.selectOne(ctx, `SELECT `+postColumns+` FROM posts p WHERE p.id = $1`, id)
}

func (r *PostgresRepository) GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	return r.selectOne(ctx, `SELECT `+postColumns+` FROM posts p WHERE p.slug = $1`, slug)
}

func (r *PostgresRepository) List(ctx context.Context, opts models.ListOptions) ([]*models.BlogPost, error) {
	return r.selectMany(ctx, opts,
		`SELECT `+postColumns+` FROM posts p ORDER BY p.slug`)
}

func (r *PostgresRepository) ListByStatus(ctx context.Context, status string, opts models.ListOptions) ([]*models.BlogPost, error) {
	return r.selectMany(ctx, opts,
		`SELECT `+postColumns+` FROM posts p WHERE p.status = $1 ORDER BY p.slug`, status)
}

func (r *PostgresRepository) ListByAuthor(ctx context.Context, author string, opts models.ListOptions) ([]*models.BlogPost, error) {
	return r.selectMany(ctx, opts,
		`SELECT `+postColumns+` FROM posts p WHERE p.author = $1 ORDER BY p.slug`, author)
}

func (r *PostgresRepository) ListByCategory(ctx context.Context, category string, opts models.ListOptions) ([]*models.BlogPost, error) {
	return r.selectMany(ctx, opts,
		`SELECT `+postColumns+` FROM posts p
		JOIN post_categories pc ON pc.post_id = p.id
		WHERE pc.category = $1 ORDER BY p.slug`, category)
}

func (r *PostgresRepository) ListByTag(ctx context.Context, tag string, opts models.ListOptions) ([]*models.BlogPost, error) {
	return r.selectMany(ctx, opts,
		`SELECT `+postColumns+` FROM posts p
		JOIN post_tags pt ON pt.post_id = p.id
		WHERE pt.tag = $1 ORDER BY p.slug`, tag)
}

func (r *PostgresRepository) ListPublished(ctx context.Context, now time.Time, opts models.ListOptions) ([]*models.BlogPost, error) {
	return r.selectMany(ctx, opts,
		`SELECT `+postColumns+` FROM posts p
		WHERE p.status = $1 AND p.published_at <> '' AND p.published_at <= $2
		ORDER BY p.published_at DESC`,
		models.StatusPublished, now.UTC().Format(time.RFC3339))
}

func (r *PostgresRepository) Search(ctx context.Context, token string, opts models.ListOptions) ([]*models.BlogPost, error) {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" {
		return nil, nil
	}
	return r.selectMany(ctx, opts,
		`SELECT `+postColumns+` FROM posts p WHERE $1 = ANY(p.search_tokens) ORDER BY p.slug`,
		token)
}

func (r *PostgresRepository) CategoryCounts(ctx context.Context) ([]FacetCount, error) {
	return r.counts(ctx,
		`SELECT pc.category, COUNT(*) FROM post_categories pc
		JOIN posts p ON p.id = pc.post_id
		WHERE p.status = $1
		GROUP BY pc.category ORDER BY pc.category`)
}

func (r *PostgresRepository) TagCounts(ctx context.Context) ([]FacetCount, error) {
	return r.counts(ctx,
		`SELECT pt.tag, COUNT(*) FROM post_tags pt
		JOIN posts p ON p.id = pt.post_id
		WHERE p.status = $1
		GROUP BY pt.tag ORDER BY pt.tag`)
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	q := r.uow.QueriesFromContext(ctx)
	res, err := q.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%w: deleting post: %v", common.ErrInternal, err)
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

func (r *PostgresRepository) counts(ctx context.Context, query string) ([]FacetCount, error) {
	q := r.uow.QueriesFromContext(ctx)
	rows, err := q.QueryContext(ctx, query, models.StatusPublished)
	if err != nil {
		return nil, fmt.Errorf("%w: counting facets: %v", common.ErrInternal, err)
	}
	defer rows.Close()

	var out []FacetCount
	for rows.Next() {
		var fc FacetCount
		if err := rows.Scan(&fc.Name, &fc.Count); err != nil {
			return nil, fmt.Errorf("%w: scanning facet count: %v", common.ErrInternal, err)
		}
		out = append(out, fc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating facet counts: %v", common.ErrInternal, err)
	}
	return out, nil
}

func (r *PostgresRepository) selectOne(ctx context.Context, query string, arg any) (*models.BlogPost, error) {
	q := r.uow.QueriesFromContext(ctx)
	post, err := scanPost(q.QueryRowContext(ctx, query, arg))
	if err != nil {
		return nil, err
	}
	if err := r.attachFacets(ctx, []*models.BlogPost{post}); err != nil {
		return nil, err
	}
	return post, nil
}

func (r *PostgresRepository) selectMany(ctx context.Context, opts models.ListOptions, query string, args ...any) ([]*models.BlogPost, error) {
	opts = opts.Normalize()
	args = append(args, opts.Limit, opts.Skip)
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	q := r.uow.QueriesFromContext(ctx)
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: selecting posts: %v", common.ErrInternal, err)
	}
	defer rows.Close()

	var out []*models.BlogPost
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating posts: %v", common.ErrInternal, err)
	}
	if err := r.attachFacets(ctx, out); err != nil {
		return nil, err
	}
	return out, nil
}

// attachFacets loads categories and tags for the given posts in two batch
// queries instead of one pair per post.
func (r *PostgresRepository) attachFacets(ctx context.Context, posts []*models.BlogPost) error {
	if len(posts) == 0 {
		return nil
	}
	byID := make(map[string]*models.BlogPost, len(posts))
	ids := make([]string, 0, len(posts))
	for _, p := range posts {
		byID[p.ID] = p
		ids = append(ids, p.ID)
	}

	q := r.uow.QueriesFromContext(ctx)
	load := func(table, column string, assign func(p *models.BlogPost, v string)) error {
		rows, err := q.QueryContext(ctx,
			fmt.Sprintf(`SELECT post_id, %s FROM %s WHERE post_id = ANY($1) ORDER BY %s`, column, table, column),
			ids)
		if err != nil {
			return fmt.Errorf("%w: loading %s: %v", common.ErrInternal, table, err)
		}
		defer rows.Close()
		for rows.Next() {
			var postID, value string
			if err := rows.Scan(&postID, &value); err != nil {
				return fmt.Errorf("%w: scanning %s: %v", common.ErrInternal, table, err)
			}
			if p, ok := byID[postID]; ok {
				assign(p, value)
			}
		}
		return rows.Err()
	}

	if err := load("post_categories", "category", func(p *models.BlogPost, v string) {
		p.Categories = append(p.Categories, v)
	}); err != nil {
		return err
	}
	return load("post_tags", "tag", func(p *models.BlogPost, v string) {
		p.Tags = append(p.Tags, v)
	})
}

func scanPost(row interface{ Scan(dest ...any) error }) (*models.BlogPost, error) {
	var post models.BlogPost
	err := row.Scan(&post.ID, &post.Title, &post.Slug, &post.Excerpt, &post.Content,
		&post.Author, &post.MetaDescription, &post.Status, &post.PublishedAt,
		&post.CreatedAt, &post.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scanning post: %v", common.ErrInternal, err)
	}
	post.Type = models.TypeBlogPost
	return &post, nil
}
