// Package pages defines the page repository port and its two storage
// adapters. Callers cannot tell the backends apart: any behavioral
// difference between document views and SQL queries stays behind this
// interface.
package pages

import (
	"context"

	"github.com/inkpresscms/inkpress/internal/server/models"
)

type Repository interface {
	// Save validates and upserts the page, assigning an id on first write.
	// A slug held by a different page yields common.ErrConflict.
	Save(ctx context.Context, page *models.Page) (*models.Page, error)
	GetByID(ctx context.Context, id string) (*models.Page, error)
	GetBySlug(ctx context.Context, slug string) (*models.Page, error)
	List(ctx context.Context, opts models.ListOptions) ([]*models.Page, error)
	ListByStatus(ctx context.Context, status string, opts models.ListOptions) ([]*models.Page, error)
	Delete(ctx context.Context, id string) error
}
