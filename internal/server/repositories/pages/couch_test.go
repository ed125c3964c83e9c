package pages

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

func validPage(slug string) *models.Page {
	return &models.Page{
		Title:   "Title for " + slug,
		Slug:    slug,
		Status:  models.StatusDraft,
		Content: []models.Block{{Type: models.BlockTypeGeneric, Data: "hello"}},
	}
}

func TestCouchSave_AssignsIdentityAndTimestamps(t *testing.T) {
	repo := newCouchRepo()

	saved, err := repo.Save(context.Background(), validPage("about"))
	if err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if saved.ID == "" || saved.Rev == "" {
		t.Fatalf("expected id and rev to be set, got %+v", saved)
	}
	if saved.CreatedAt == 0 || saved.UpdatedAt == 0 {
		t.Fatalf("expected timestamps to be set, got %+v", saved)
	}
	if saved.Type != models.TypePage {
		t.Fatalf("expected type %q, got %q", models.TypePage, saved.Type)
	}

	got, err := repo.GetByID(context.Background(), saved.ID)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got.Slug != "about" || len(got.Content) != 1 || got.Content[0].Data != "hello" {
		t.Fatalf("unexpected page: %+v", got)
	}
}

func TestCouchSave_InvalidSlug(t *testing.T) {
	repo := newCouchRepo()

	page := validPage("about")
	page.Slug = "Not A Slug"
	if _, err := repo.Save(context.Background(), page); err == nil {
		t.Fatal("expected validation error for bad slug")
	}
}

func TestCouchSave_SlugConflict(t *testing.T) {
	repo := newCouchRepo()
	ctx := context.Background()

	if _, err := repo.Save(ctx, validPage("about")); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	_, err := repo.Save(ctx, validPage("about"))
	if !errors.Is(err, common.ErrConflict) {
		t.Fatalf("want common.ErrConflict, got %v", err)
	}
}

func TestCouchSave_UpdateKeepsSlug(t *testing.T) {
	repo := newCouchRepo()
	ctx := context.Background()

	saved, err := repo.Save(ctx, validPage("about"))
	if err != nil {
		t.Fatalf("Save error: %v", err)
	}

	saved.Title = "Updated title"
	updated, err := repo.Save(ctx, saved)
	if err != nil {
		t.Fatalf("update error: %v", err)
	}
	if updated.Rev == saved.Rev {
		t.Fatal("expected a fresh revision after update")
	}

	got, err := repo.GetBySlug(ctx, "about")
	if err != nil {
		t.Fatalf("GetBySlug error: %v", err)
	}
	if got.Title != "Updated title" {
		t.Fatalf("unexpected title: %q", got.Title)
	}
}

func TestCouchGetBySlug_NotFound(t *testing.T) {
	repo := newCouchRepo()

	_, err := repo.GetBySlug(context.Background(), "ghost")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want common.ErrNotFound, got %v", err)
	}
}

func TestCouchListByStatus(t *testing.T) {
	repo := newCouchRepo()
	ctx := context.Background()

	draft := validPage("draft-page")
	published := validPage("published-page")
	published.Status = models.StatusPublished

	for _, p := range []*models.Page{draft, published} {
		if _, err := repo.Save(ctx, p); err != nil {
			t.Fatalf("Save error: %v", err)
		}
	}

	got, err := repo.ListByStatus(ctx, models.StatusPublished, models.ListOptions{})
	if err != nil {
		t.Fatalf("ListByStatus error: %v", err)
	}
	if len(got) != 1 || got[0].Slug != "published-page" {
		t.Fatalf("unexpected listing: %+v", got)
	}

	all, err := repo.List(ctx, models.ListOptions{})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(all))
	}
}

func TestCouchDelete(t *testing.T) {
	repo := newCouchRepo()
	ctx := context.Background()

	saved, err := repo.Save(ctx, validPage("about"))
	if err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if err := repo.Delete(ctx, saved.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, err := repo.GetByID(ctx, saved.ID); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want common.ErrNotFound after delete, got %v", err)
	}
	if err := repo.Delete(ctx, saved.ID); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want common.ErrNotFound for missing page, got %v", err)
	}
}
