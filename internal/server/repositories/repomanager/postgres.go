package repomanager

import (
	"context"
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/inkpresscms/inkpress/internal/dbx"
	"github.com/inkpresscms/inkpress/internal/logging"
	"github.com/inkpresscms/inkpress/internal/server/migrations"
	"github.com/inkpresscms/inkpress/internal/server/repositories/media"
	"github.com/inkpresscms/inkpress/internal/server/repositories/pages"
	"github.com/inkpresscms/inkpress/internal/server/repositories/posts"
	"github.com/inkpresscms/inkpress/internal/server/repositories/submissions"
)

// PostgresRepositoryManager vends relational repositories sharing one
// unit of work, and exposes a schema migration hook.
type PostgresRepositoryManager struct {
	db          *sql.DB
	uow         *dbx.UnitOfWork
	pages       pages.Repository
	posts       posts.Repository
	media       media.Repository
	submissions submissions.Repository
}

// NewPostgresRepositoryManager constructs the manager over the given pool.
func NewPostgresRepositoryManager(db *sql.DB, l logging.Logger) *PostgresRepositoryManager {
	uow := dbx.NewUnitOfWork(db, l)
	return &PostgresRepositoryManager{
		db:          db,
		uow:         uow,
		pages:       pages.NewPostgresRepository(uow),
		posts:       posts.NewPostgresRepository(uow),
		media:       media.NewPostgresRepository(uow),
		submissions: submissions.NewPostgresRepository(uow),
	}
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// Init sets up goose with the embedded migrations and runs them against the
// pool.
func (m *PostgresRepositoryManager) Init(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUpContext(ctx, m.db, ".")
}

func (m *PostgresRepositoryManager) Pages() pages.Repository             { return m.pages }
func (m *PostgresRepositoryManager) Posts() posts.Repository             { return m.posts }
func (m *PostgresRepositoryManager) Media() media.Repository             { return m.media }
func (m *PostgresRepositoryManager) Submissions() submissions.Repository { return m.submissions }

// Do wraps fn in a transaction via the shared unit of work.
func (m *PostgresRepositoryManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.uow.Do(ctx, fn)
}
