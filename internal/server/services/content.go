// Package services holds the application services sitting between the
// transports and the repository ports. Services never see the storage
// backend; they talk to repositories vended by the repository manager and
// group multi-step writes with its Do.
package services

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/inkpresscms/inkpress/internal/server/models"
	"github.com/inkpresscms/inkpress/internal/server/repositories/posts"
	"github.com/inkpresscms/inkpress/internal/server/repositories/repomanager"
)

// ContentService orchestrates page and post CRUD.
type ContentService struct {
	rm repomanager.RepositoryManager
}

// NewContentService constructs the service over the repository manager.
func NewContentService(rm repomanager.RepositoryManager) *ContentService {
	return &ContentService{rm: rm}
}

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL-safe slug from a title: lower-cased, runs of
// anything but letters and digits collapsed into single hyphens.
func Slugify(title string) string {
	s := nonSlugChars.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(s, "-")
}

// SavePage upserts a page, deriving the slug from the title when none is
// given.
func (s *ContentService) SavePage(ctx context.Context, page *models.Page) (*models.Page, error) {
	if page.Slug == "" {
		page.Slug = Slugify(page.Title)
	}
	var saved *models.Page
	err := s.rm.Do(ctx, func(ctx context.Context) error {
		var err error
		saved, err = s.rm.Pages().Save(ctx, page)
		return err
	})
	return saved, err
}

func (s *ContentService) GetPage(ctx context.Context, id string) (*models.Page, error) {
	return s.rm.Pages().GetByID(ctx, id)
}

func (s *ContentService) GetPageBySlug(ctx context.Context, slug string) (*models.Page, error) {
	return s.rm.Pages().GetBySlug(ctx, slug)
}

func (s *ContentService) ListPages(ctx context.Context, status string, opts models.ListOptions) ([]*models.Page, error) {
	if status == "" {
		return s.rm.Pages().List(ctx, opts)
	}
	return s.rm.Pages().ListByStatus(ctx, status, opts)
}

func (s *ContentService) DeletePage(ctx context.Context, id string) error {
	return s.rm.Do(ctx, func(ctx context.Context) error {
		return s.rm.Pages().Delete(ctx, id)
	})
}

// SavePost upserts a post. The relational adapter writes the post row plus
// its facet junction rows, so the whole save runs inside one Do block.
func (s *ContentService) SavePost(ctx context.Context, post *models.BlogPost) (*models.BlogPost, error) {
	if post.Slug == "" {
		post.Slug = Slugify(post.Title)
	}
	var saved *models.BlogPost
	err := s.rm.Do(ctx, func(ctx context.Context) error {
		var err error
		saved, err = s.rm.Posts().Save(ctx, post)
		return err
	})
	return saved, err
}

func (s *ContentService) GetPost(ctx context.Context, id string) (*models.BlogPost, error) {
	return s.rm.Posts().GetByID(ctx, id)
}

func (s *ContentService) GetPostBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	return s.rm.Posts().GetBySlug(ctx, slug)
}

// PostFilter narrows ListPosts to one dimension. Zero value lists all.
type PostFilter struct {
	Status   string
	Author   string
	Category string
	Tag      string
}

func (s *ContentService) ListPosts(ctx context.Context, f PostFilter, opts models.ListOptions) ([]*models.BlogPost, error) {
	repo := s.rm.Posts()
	switch {
	case f.Status != "":
		return repo.ListByStatus(ctx, f.Status, opts)
	case f.Author != "":
		return repo.ListByAuthor(ctx, f.Author, opts)
	case f.Category != "":
		return repo.ListByCategory(ctx, f.Category, opts)
	case f.Tag != "":
		return repo.ListByTag(ctx, f.Tag, opts)
	default:
		return repo.List(ctx, opts)
	}
}

// ListPublishedPosts returns the public feed: published posts whose
// effective publish time has passed, newest first.
func (s *ContentService) ListPublishedPosts(ctx context.Context, opts models.ListOptions) ([]*models.BlogPost, error) {
	return s.rm.Posts().ListPublished(ctx, time.Now(), opts)
}

func (s *ContentService) SearchPosts(ctx context.Context, token string, opts models.ListOptions) ([]*models.BlogPost, error) {
	return s.rm.Posts().Search(ctx, token, opts)
}

func (s *ContentService) CategoryCounts(ctx context.Context) ([]posts.FacetCount, error) {
	return s.rm.Posts().CategoryCounts(ctx)
}

func (s *ContentService) TagCounts(ctx context.Context) ([]posts.FacetCount, error) {
	return s.rm.Posts().TagCounts(ctx)
}

func (s *ContentService) DeletePost(ctx context.Context, id string) error {
	return s.rm.Do(ctx, func(ctx context.Context) error {
		return s.rm.Posts().Delete(ctx, id)
	})
}
