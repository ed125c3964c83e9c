package submissions

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/inkpresscms/inkpress/internal/common"
	"github.com/inkpresscms/inkpress/internal/dbx"
	"github.com/inkpresscms/inkpress/internal/logging/logtest"
	"github.com/inkpresscms/inkpress/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(dbx.NewUnitOfWork(db, logtest.NewNop())), mock, db
}

func submissionRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "email", "company", "message", "ip_address", "user_agent", "status", "created_at", "updated_at",
	})
}

func TestPostgresSave_DefaultsToNew(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)INSERT\s+INTO\s+contact_submissions`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	saved, err := repo.Save(context.Background(), validSubmission())
	if err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if saved.Status != models.SubmissionStatusNew || saved.ID == "" {
		t.Fatalf("unexpected submission: %+v", saved)
	}
}

func TestPostgresUpdateStatus(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)SELECT\s+.*\s+FROM\s+contact_submissions\s+WHERE\s+id\s*=\s*\$1`).
		WithArgs("s-1").
		WillReturnRows(submissionRows().AddRow(
			"s-1", "Alice", "alice@example.com", "", "Hello there", "", "",
			models.SubmissionStatusNew, int64(1), int64(1)))
	mock.ExpectExec(`(?s)INSERT\s+INTO\s+contact_submissions`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	got, err := repo.UpdateStatus(context.Background(), "s-1", models.SubmissionStatusReplied)
	if err != nil {
		t.Fatalf("UpdateStatus error: %v", err)
	}
	if got.Status != models.SubmissionStatusReplied {
		t.Fatalf("expected status replied, got %q", got.Status)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPostgresListByStatus(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)SELECT\s+.*\s+FROM\s+contact_submissions\s+WHERE\s+status\s*=\s*\$1`).
		WithArgs(models.SubmissionStatusNew, 50, 0).
		WillReturnRows(submissionRows().AddRow(
			"s-1", "Alice", "alice@example.com", "", "Hello there", "", "",
			models.SubmissionStatusNew, int64(2), int64(2)))

	got, err := repo.ListByStatus(context.Background(), models.SubmissionStatusNew, models.ListOptions{})
	if err != nil {
		t.Fatalf("ListByStatus error: %v", err)
	}
	if len(got) != 1 || got[0].Email != "alice@example.com" {
		t.Fatalf("unexpected listing: %+v", got)
	}
}

func TestPostgresGetByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)SELECT\s+.*\s+FROM\s+contact_submissions\s+WHERE\s+id\s*=\s*\$1`).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "ghost")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want common.ErrNotFound, got %v", err)
	}
}
