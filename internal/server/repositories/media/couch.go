package media

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

// CouchRepository serves media records from the document store through the
// media design document.
type CouchRepository struct {
	store couch.Store
}

// NewCouchRepository binds the repository to a document store handle.
func NewCouchRepository(store couch.Store) *CouchRepository {
	return &CouchRepository{store: store}
}

func (r *CouchRepository) Save(ctx context.Context, m *models.Media) (*models.Media, error) {
	saved := *m
	saved.Type = models.TypeMedia
	if saved.ID == "" {
		saved.ID = uuid.NewString()
	}
	if saved.CreatedAt == 0 {
		saved.CreatedAt = time.Now().Unix()
	}

	if err := saved.Validate(); err != nil {
		return nil, err
	}

	owner, err := r.GetByFilename(ctx, saved.Filename)
	if err != nil && !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}
	if owner != nil && owner.ID != saved.ID {
		return nil, fmt.Errorf("%w: filename %q already in use", common.ErrConflict, saved.Filename)
	}

	rev, err := r.store.Upsert(ctx, saved.ID, &saved)
	if err != nil {
		return nil, err
	}
	saved.Rev = rev
	return &saved, nil
}

func (r *CouchRepository) GetByID(ctx context.Context, id string) (*models.Media, error) {
	var m models.Media
	if err := r.store.Get(ctx, id, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *CouchRepository) GetByFilename(ctx context.Context, filename string) (*models.Media, error) {
	result, err := r.store.Query(ctx, views.DesignMedia, views.ViewByFilename, couch.Params{"key": filename, "limit": 1})
	if err != nil {
		return nil, err
	}
	if len(result.Rows) == 0 {
		return nil, common.ErrNotFound
	}
	return decodeMedia(result.Rows[0].Value)
}

func (r *CouchRepository) List(ctx context.Context, opts models.ListOptions) ([]*models.Media, error) {
	opts = opts.Normalize()
	result, err := r.store.Query(ctx, views.DesignMedia, views.ViewByFilename, couch.Params{
		"limit": opts.Limit,
		"skip":  opts.Skip,
	})
	if err != nil {
		return nil, err
	}
	out := make([]*models.Media, 0, len(result.Rows))
	for _, row := range result.Rows {
		m, err := decodeMedia(row.Value)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

func (r *CouchRepository) Delete(ctx context.Context, id string) error {
	m, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return r.store.Delete(ctx, id, m.Rev)
}

func decodeMedia(raw json.RawMessage) (*models.Media, error) {
	var m models.Media
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("%w: decoding media row: %v", common.ErrInternal, err)
	}
	return &m, nil
}
