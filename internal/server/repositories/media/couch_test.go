package media

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

func validMedia(filename string) *models.Media {
	return &models.Media{
		Filename:     filename,
		OriginalName: "photo.jpg",
		MimeType:     "image/jpeg",
		Size:         1024,
	}
}

func TestCouchSave_RoundTrip(t *testing.T) {
	repo := newCouchRepo()
	ctx := context.Background()

	saved, err := repo.Save(ctx, validMedia("abc123-17000.jpg"))
	if err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if saved.ID == "" || saved.Rev == "" || saved.CreatedAt == 0 {
		t.Fatalf("expected identity and timestamp, got %+v", saved)
	}

	got, err := repo.GetByFilename(ctx, "abc123-17000.jpg")
	if err != nil {
		t.Fatalf("GetByFilename error: %v", err)
	}
	if got.ID != saved.ID || got.MimeType != "image/jpeg" {
		t.Fatalf("unexpected media: %+v", got)
	}
}

func TestCouchSave_FilenameConflict(t *testing.T) {
	repo := newCouchRepo()
	ctx := context.Background()

	if _, err := repo.Save(ctx, validMedia("abc123-17000.jpg")); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	_, err := repo.Save(ctx, validMedia("abc123-17000.jpg"))
	if !errors.Is(err, common.ErrConflict) {
		t.Fatalf("want common.ErrConflict, got %v", err)
	}
}

func TestCouchSave_MissingMimeType(t *testing.T) {
	repo := newCouchRepo()

	m := validMedia("abc123-17000.jpg")
	m.MimeType = ""
	if _, err := repo.Save(context.Background(), m); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestCouchList_OrderedByFilename(t *testing.T) {
	repo := newCouchRepo()
	ctx := context.Background()

	for _, name := range []string{"bbb.png", "aaa.png"} {
		if _, err := repo.Save(ctx, validMedia(name)); err != nil {
			t.Fatalf("Save error: %v", err)
		}
	}

	got, err := repo.List(ctx, models.ListOptions{})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 2 || got[0].Filename != "aaa.png" || got[1].Filename != "bbb.png" {
		t.Fatalf("unexpected listing: %+v", got)
	}
}

func TestCouchDelete(t *testing.T) {
	repo := newCouchRepo()
	ctx := context.Background()

	saved, err := repo.Save(ctx, validMedia("abc123-17000.jpg"))
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
