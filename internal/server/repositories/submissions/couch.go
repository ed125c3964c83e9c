package submissions

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/inkpresscms/inkpress/internal/common"
	"github.com/inkpresscms/inkpress/internal/couch"
	"github.com/inkpresscms/inkpress/internal/server/models"
	"github.com/inkpresscms/inkpress/internal/views"
)

// CouchRepository serves contact submissions from the document store
// through the submissions design document.
type CouchRepository struct {
	store couch.Store
}

// NewCouchRepository binds the repository to a document store handle.
func NewCouchRepository(store couch.Store) *CouchRepository {
	return &CouchRepository{store: store}
}

func (r *CouchRepository) Save(ctx context.Context, s *models.ContactSubmission) (*models.ContactSubmission, error) {
	saved := *s
	saved.Type = models.TypeSubmission
	if saved.ID == "" {
		saved.ID = uuid.NewString()
	}
	if saved.Status == "" {
		saved.Status = models.SubmissionStatusNew
	}
	now := time.Now().Unix()
	if saved.CreatedAt == 0 {
		saved.CreatedAt = now
	}
	saved.UpdatedAt = now

	if err := saved.Validate(); err != nil {
		return nil, err
	}

	rev, err := r.store.Upsert(ctx, saved.ID, &saved)
	if err != nil {
		return nil, err
	}
	saved.Rev = rev
	return &saved, nil
}

func (r *CouchRepository) GetByID(ctx context.Context, id string) (*models.ContactSubmission, error) {
	var s models.ContactSubmission
	if err := r.store.Get(ctx, id, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *CouchRepository) List(ctx context.Context, opts models.ListOptions) ([]*models.ContactSubmission, error) {
	return r.query(ctx, couch.Params{}, opts)
}

func (r *CouchRepository) ListByStatus(ctx context.Context, status string, opts models.ListOptions) ([]*models.ContactSubmission, error) {
	return r.query(ctx, couch.Params{"key": status}, opts)
}

func (r *CouchRepository) UpdateStatus(ctx context.Context, id, status string) (*models.ContactSubmission, error) {
	s, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.Status = status
	return r.Save(ctx, s)
}

func (r *CouchRepository) Delete(ctx context.Context, id string) error {
	s, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return r.store.Delete(ctx, id, s.Rev)
}

func (r *CouchRepository) query(ctx context.Context, params couch.Params, opts models.ListOptions) ([]*models.ContactSubmission, error) {
	opts = opts.Normalize()
	params["limit"] = opts.Limit
	params["skip"] = opts.Skip

	result, err := r.store.Query(ctx, views.DesignSubmissions, views.ViewByStatus, params)
	if err != nil {
		return nil, err
	}
	out := make([]*models.ContactSubmission, 0, len(result.Rows))
	for _, row := range result.Rows {
		var s models.ContactSubmission
		if err := json.Unmarshal(row.Value, &s); err != nil {
			return nil, fmt.Errorf("%w: decoding submission row: %v", common.ErrInternal, err)
		}
		out = append(out, &s)
	}
	return out, nil
}
