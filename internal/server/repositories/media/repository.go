// Package media defines the media metadata repository port and its two
// storage adapters. The asset bytes live in object storage; only the
// descriptive record is persisted here.
package media

import (
	"context"

	"github.com/inkpresscms/inkpress/internal/server/models"
)

type Repository interface {
	// Save validates and upserts the record. A filename held by a different
	// record yields common.ErrConflict.
	Save(ctx context.Context, m *models.Media) (*models.Media, error)
	GetByID(ctx context.Context, id string) (*models.Media, error)
	GetByFilename(ctx context.Context, filename string) (*models.Media, error)
	List(ctx context.Context, opts models.ListOptions) ([]*models.Media, error)
	Delete(ctx context.Context, id string) error
}
