package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/inkpresscms/inkpress/internal/common"
	"github.com/inkpresscms/inkpress/internal/couch"
	"github.com/inkpresscms/inkpress/internal/server/models"
	"github.com/inkpresscms/inkpress/internal/server/repositories/repomanager"
	"github.com/inkpresscms/inkpress/internal/views"
)

func newManager() repomanager.RepositoryManager {
	return repomanager.NewCouchRepositoryManager(couch.NewMemStore(views.Default()), views.Default())
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Hello, World!", "hello-world"},
		{"  Already-fine  ", "already-fine"},
		{"Go 1.22 Release Notes", "go-1-22-release-notes"},
		{"---", ""},
	}
	for _, tc := range tests {
		if got := Slugify(tc.in); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSavePage_DerivesSlug(t *testing.T) {
	svc := NewContentService(newManager())

	saved, err := svc.SavePage(context.Background(), &models.Page{
		Title:  "About Our Team",
		Status: models.StatusDraft,
	})
	if err != nil {
		t.Fatalf("SavePage error: %v", err)
	}
	if saved.Slug != "about-our-team" {
		t.Fatalf("unexpected slug: %q", saved.Slug)
	}

	got, err := svc.GetPageBySlug(context.Background(), "about-our-team")
	if err != nil {
		t.Fatalf("GetPageBySlug error: %v", err)
	}
	if got.ID != saved.ID {
		t.Fatalf("expected page %q, got %q", saved.ID, got.ID)
	}
}

func TestSavePost_SlugConflictSurfaces(t *testing.T) {
	svc := NewContentService(newManager())
	ctx := context.Background()

	post := func() *models.BlogPost {
		return &models.BlogPost{
			Title:   "Go Tips",
			Content: "body",
			Author:  "alice",
			Status:  models.StatusDraft,
		}
	}

	if _, err := svc.SavePost(ctx, post()); err != nil {
		t.Fatalf("SavePost error: %v", err)
	}
	_, err := svc.SavePost(ctx, post())
	if !errors.Is(err, common.ErrConflict) {
		t.Fatalf("want common.ErrConflict, got %v", err)
	}
}

func TestListPosts_FilterDimensions(t *testing.T) {
	svc := NewContentService(newManager())
	ctx := context.Background()

	post := &models.BlogPost{
		Title:      "Tagged Post",
		Slug:       "tagged-post",
		Content:    "body",
		Author:     "alice",
		Status:     models.StatusPublished,
		Categories: []string{"engineering"},
		Tags:       []string{"go"},
	}
	post.PublishedAt = time.Now().Add(-time.Hour).UTC().Format(time.RFC3339)
	if _, err := svc.SavePost(ctx, post); err != nil {
		t.Fatalf("SavePost error: %v", err)
	}

	for name, filter := range map[string]PostFilter{
		"status":   {Status: models.StatusPublished},
		"author":   {Author: "alice"},
		"category": {Category: "engineering"},
		"tag":      {Tag: "go"},
		"all":      {},
	} {
		got, err := svc.ListPosts(ctx, filter, models.ListOptions{})
		if err != nil {
			t.Fatalf("ListPosts(%s) error: %v", name, err)
		}
		if len(got) != 1 {
			t.Fatalf("ListPosts(%s): expected 1 post, got %d", name, len(got))
		}
	}

	published, err := svc.ListPublishedPosts(ctx, models.ListOptions{})
	if err != nil {
		t.Fatalf("ListPublishedPosts error: %v", err)
	}
	if len(published) != 1 {
		t.Fatalf("expected 1 published post, got %d", len(published))
	}

	found, err := svc.SearchPosts(ctx, "tagged", models.ListOptions{})
	if err != nil {
		t.Fatalf("SearchPosts error: %v", err)
	}
	if len(found) != 1 {
		t.Fatalf("expected 1 search hit, got %d", len(found))
	}

	tags, err := svc.TagCounts(ctx)
	if err != nil {
		t.Fatalf("TagCounts error: %v", err)
	}
	if len(tags) != 1 || tags[0].Name != "go" || tags[0].Count != 1 {
		t.Fatalf("unexpected tag counts: %+v", tags)
	}
}

func TestDeletePage_NotFound(t *testing.T) {
	svc := NewContentService(newManager())

	err := svc.DeletePage(context.Background(), "ghost")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want common.ErrNotFound, got %v", err)
	}
}
