package submissions

import (
	"context"
	"errors"
	"testing"

	"github.com/inkpresscms/inkpress/internal/common"
	"github.com/inkpresscms/inkpress/internal/couch"
	"github.com/inkpresscms/inkpress/internal/server/models"
	"github.com/inkpresscms/inkpress/internal/views"
)

func newCouchRepo() *CouchRepository {
	return NewCouchRepository(couch.NewMemStore(views.Default()))
}

func validSubmission() *models.ContactSubmission {
	return &models.ContactSubmission{
		Name:    "Alice",
		Email:   "alice@example.com",
		Message: "Hello there",
	}
}

func TestCouchSave_DefaultsToNew(t *testing.T) {
	repo := newCouchRepo()

	saved, err := repo.Save(context.Background(), validSubmission())
	if err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if saved.Status != models.SubmissionStatusNew {
		t.Fatalf("expected status %q, got %q", models.SubmissionStatusNew, saved.Status)
	}
	if saved.ID == "" || saved.Rev == "" || saved.CreatedAt == 0 {
		t.Fatalf("expected identity and timestamps, got %+v", saved)
	}
}

func TestCouchSave_InvalidEmail(t *testing.T) {
	repo := newCouchRepo()

	s := validSubmission()
	s.Email = "not-an-email"
	if _, err := repo.Save(context.Background(), s); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestCouchUpdateStatus(t *testing.T) {
	repo := newCouchRepo()
	ctx := context.Background()

	saved, err := repo.Save(ctx, validSubmission())
	if err != nil {
		t.Fatalf("Save error: %v", err)
	}

	updated, err := repo.UpdateStatus(ctx, saved.ID, models.SubmissionStatusRead)
	if err != nil {
		t.Fatalf("UpdateStatus error: %v", err)
	}
	if updated.Status != models.SubmissionStatusRead {
		t.Fatalf("expected status read, got %q", updated.Status)
	}

	got, err := repo.ListByStatus(ctx, models.SubmissionStatusRead, models.ListOptions{})
	if err != nil {
		t.Fatalf("ListByStatus error: %v", err)
	}
	if len(got) != 1 || got[0].ID != saved.ID {
		t.Fatalf("unexpected listing: %+v", got)
	}
}

func TestCouchUpdateStatus_InvalidStatus(t *testing.T) {
	repo := newCouchRepo()
	ctx := context.Background()

	saved, err := repo.Save(ctx, validSubmission())
	if err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if _, err := repo.UpdateStatus(ctx, saved.ID, "archived"); err == nil {
		t.Fatal("expected validation error for unknown status")
	}
}

func TestCouchUpdateStatus_NotFound(t *testing.T) {
	repo := newCouchRepo()

	_, err := repo.UpdateStatus(context.Background(), "ghost", models.SubmissionStatusRead)
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want common.ErrNotFound, got %v", err)
	}
}

func TestCouchDelete(t *testing.T) {
	repo := newCouchRepo()
	ctx := context.Background()

	saved, err := repo.Save(ctx, validSubmission())
	if err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if err := repo.Delete(ctx, saved.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, err := repo.GetByID(ctx, saved.ID); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want common.ErrNotFound after delete, got %v", err)
	}
}
