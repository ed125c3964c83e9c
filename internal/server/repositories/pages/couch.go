package pages

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/inkpresscms/inkpress/internal/common"
	"github.com/inkpresscms/inkpress/internal/couch"
	"github.com/inkpresscms/inkpress/internal/server/models"
	"github.com/inkpresscms/inkpress/internal/views"
)

// CouchRepository serves pages from the document store through the pages
// design document.
type CouchRepository struct {
	store couch.Store
}

// NewCouchRepository binds the repository to a document store handle.
func NewCouchRepository(store couch.Store) *CouchRepository {
	return &CouchRepository{store: store}
}

func (r *CouchRepository) Save(ctx context.Context, page *models.Page) (*models.Page, error) {
	saved := *page
	saved.Type = models.TypePage
	if saved.ID == "" {
		saved.ID = uuid.NewString()
	}
	now := time.Now().Unix()
	if saved.CreatedAt == 0 {
		saved.CreatedAt = now
	}
	saved.UpdatedAt = now

	if err := saved.Validate(); err != nil {
		return nil, err
	}

	// Slug uniqueness among non-deleted pages. The view read and the write
	// are not atomic in an eventually consistent store; this is the
	// strongest check the backend offers.
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

func (r *CouchRepository) GetByID(ctx context.Context, id string) (*models.Page, error) {
	var page models.Page
	if err := r.store.Get(ctx, id, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (r *CouchRepository) GetBySlug(ctx context.Context, slug string) (*models.Page, error) {
	result, err := r.store.Query(ctx, views.DesignPages, views.ViewBySlug, couch.Params{"key": slug, "limit": 1})
	if err != nil {
		return nil, err
	}
	if len(result.Rows) == 0 {
		return nil, common.ErrNotFound
	}
	return decodePage(result.Rows[0].Value)
}

func (r *CouchRepository) List(ctx context.Context, opts models.ListOptions) ([]*models.Page, error) {
	return r.query(ctx, views.ViewBySlug, couch.Params{}, opts)
}

func (r *CouchRepository) ListByStatus(ctx context.Context, status string, opts models.ListOptions) ([]*models.Page, error) {
	return r.query(ctx, views.ViewByStatus, couch.Params{"key": status}, opts)
}

func (r *CouchRepository) Delete(ctx context.Context, id string) error {
	// The store's delete wants the current revision; fetch it fresh.
	page, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return r.store.Delete(ctx, id, page.Rev)
}

func (r *CouchRepository) query(ctx context.Context, view string, params couch.Params, opts models.ListOptions) ([]*models.Page, error) {
	opts = opts.Normalize()
	params["limit"] = opts.Limit
	params["skip"] = opts.Skip

	result, err := r.store.Query(ctx, views.DesignPages, view, params)
	if err != nil {
		return nil, err
	}

	out := make([]*models.Page, 0, len(result.Rows))
	for _, row := range result.Rows {
		page, err := decodePage(row.Value)
		if err != nil {
			return nil, err
		}
		out = append(out, page)
	}
	return out, nil
}

func decodePage(raw json.RawMessage) (*models.Page, error) {
	var page models.Page
	if err := json.Unmarshal(raw, &page); err != nil {
		return nil, fmt.Errorf("%w: decoding page row: %v", common.ErrInternal, err)
	}
	return &page, nil
}
