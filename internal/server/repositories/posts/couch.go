package posts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/inkpresscms/inkpress/internal/common"
	"github.com/inkpresscms/inkpress/internal/couch"
	"github.com/inkpresscms/inkpress/internal/server/models"
	"github.com/inkpresscms/inkpress/internal/views"
)

// CouchRepository serves blog posts from the document store through the
// posts design document.
type CouchRepository struct {
	store couch.Store
}

// NewCouchRepository binds the repository to a document store handle.
func NewCouchRepository(store couch.Store) *CouchRepository {
	return &CouchRepository{store: store}
}

func (r *CouchRepository) Save(ctx context.Context, post *models.BlogPost) (*models.BlogPost, error) {
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

	owner, err := r.GetBySlug(ctx, saved.Slug)
	if err != nil && !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}
	if owner != nil && owner.ID != saved.ID {
		return nil, fmt.Errorf("%w: slug %q already in use", common.ErrConflict, saved.Slug)
	}

	rev, err := r.store.Upsert(ctx, saved.ID, &saved)
	if err != nil {
		return nil, err
	}
	saved.Rev = rev
	return &saved, nil
}

func (r *CouchRepository) GetByID(ctx context.Context, id string) (*models.BlogPost, error) {
	var post models.BlogPost
	if err := r.store.Get(ctx, id, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *CouchRepository) GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	result, err := r.store.Query(ctx, views.DesignPosts, views.ViewBySlug, couch.Params{"key": slug, "limit": 1})
	if err != nil {
		return nil, err
	}
	if len(result.Rows) == 0 {
		return nil, common.ErrNotFound
	}
	return decodePost(result.Rows[0].Value)
}

func (r *CouchRepository) List(ctx context.Context, opts models.ListOptions) ([]*models.BlogPost, error) {
	return r.query(ctx, views.ViewBySlug, couch.Params{}, opts)
}

func (r *CouchRepository) ListByStatus(ctx context.Context, status string, opts models.ListOptions) ([]*models.BlogPost, error) {
	return r.query(ctx, views.ViewByStatus, couch.Params{"key": status}, opts)
}

func (r *CouchRepository) ListByAuthor(ctx context.Context, author string, opts models.ListOptions) ([]*models.BlogPost, error) {
	return r.query(ctx, views.ViewByAuthor, couch.Params{"key": author}, opts)
}

func (r *CouchRepository) ListByCategory(ctx context.Context, category string, opts models.ListOptions) ([]*models.BlogPost, error) {
	return r.query(ctx, views.ViewByCategory, couch.Params{"key": category}, opts)
}

func (r *CouchRepository) ListByTag(ctx context.Context, tag string, opts models.ListOptions) ([]*models.BlogPost, error) {
	return r.query(ctx, views.ViewByTag, couch.Params{"key": tag}, opts)
}

func (r *CouchRepository) ListPublished(ctx context.Context, now time.Time, opts models.ListOptions) ([]*models.BlogPost, error) {
	// The published view keys by publish time; gating against now happens
	// here, at query time. Descending order puts the newest post first,
	// with startkey as the high end of the range.
	return r.query(ctx, views.ViewPublished, couch.Params{
		"descending": true,
		"startkey":   now.UTC().Format(time.RFC3339),
	}, opts)
}

func (r *CouchRepository) Search(ctx context.Context, token string, opts models.ListOptions) ([]*models.BlogPost, error) {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" {
		return nil, nil
	}
	return r.query(ctx, views.ViewSearch, couch.Params{"key": token}, opts)
}

func (r *CouchRepository) CategoryCounts(ctx context.Context) ([]FacetCount, error) {
	return r.counts(ctx, views.ViewCategories)
}

func (r *CouchRepository) TagCounts(ctx context.Context) ([]FacetCount, error) {
	return r.counts(ctx, views.ViewTags)
}

func (r *CouchRepository) Delete(ctx context.Context, id string) error {
	post, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return r.store.Delete(ctx, id, post.Rev)
}

func (r *CouchRepository) counts(ctx context.Context, view string) ([]FacetCount, error) {
	result, err := r.store.Query(ctx, views.DesignPosts, view, couch.Params{"group": true})
	if err != nil {
		return nil, err
	}
	out := make([]FacetCount, 0, len(result.Rows))
	for _, row := range result.Rows {
		name, _ := row.Key.(string)
		var count int64
		if err := json.Unmarshal(row.Value, &count); err != nil {
			return nil, fmt.Errorf("%w: decoding count row: %v", common.ErrInternal, err)
		}
		out = append(out, FacetCount{Name: name, Count: count})
	}
	return out, nil
}

func (r *CouchRepository) query(ctx context.Context, view string, params couch.Params, opts models.ListOptions) ([]*models.BlogPost, error) {
	opts = opts.Normalize()
	params["limit"] = opts.Limit
	params["skip"] = opts.Skip

	result, err := r.store.Query(ctx, views.DesignPosts, view, params)
	if err != nil {
		return nil, err
	}

	out := make([]*models.BlogPost, 0, len(result.Rows))
	for _, row := range result.Rows {
		post, err := decodePost(row.Value)
		if err != nil {
			return nil, err
		}
		out = append(out, post)
	}
	return out, nil
}

func decodePost(raw json.RawMessage) (*models.BlogPost, error) {
	var post models.BlogPost
	if err := json.Unmarshal(raw, &post); err != nil {
		return nil, fmt.Errorf("%w: decoding post row: %v", common.ErrInternal, err)
	}
	return &post, nil
}
