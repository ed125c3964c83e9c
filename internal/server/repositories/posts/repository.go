// Package posts defines the blog post repository port and its two storage
// adapters.
package posts

import (
	"context"
	"time"

	"github.com/inkpresscms/inkpress/internal/server/models"
)

// FacetCount is one entry of a global frequency table (category or tag
// name with the number of published posts carrying it), used for faceted
// navigation without a full scan.
type FacetCount struct {
	Name  string
	Count int64
}

type Repository interface {
	// Save validates and upserts the post. A slug held by a different post
	// yields common.ErrConflict.
	Save(ctx context.Context, post *models.BlogPost) (*models.BlogPost, error)
	GetByID(ctx context.Context, id string) (*models.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	List(ctx context.Context, opts models.ListOptions) ([]*models.BlogPost, error)
	ListByStatus(ctx context.Context, status string, opts models.ListOptions) ([]*models.BlogPost, error)
	ListByAuthor(ctx context.Context, author string, opts models.ListOptions) ([]*models.BlogPost, error)
	ListByCategory(ctx context.Context, category string, opts models.ListOptions) ([]*models.BlogPost, error)
	ListByTag(ctx context.Context, tag string, opts models.ListOptions) ([]*models.BlogPost, error)

	// ListPublished returns posts whose effective publish time is at or
	// before now, newest first. Future-dated published posts stay hidden.
	ListPublished(ctx context.Context, now time.Time, opts models.ListOptions) ([]*models.BlogPost, error)

	// Search looks up one exact token from the inverted index.
	Search(ctx context.Context, token string, opts models.ListOptions) ([]*models.BlogPost, error)

	CategoryCounts(ctx context.Context) ([]FacetCount, error)
	TagCounts(ctx context.Context) ([]FacetCount, error)

	Delete(ctx context.Context, id string) error
}
