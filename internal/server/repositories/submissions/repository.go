// Package submissions defines the contact submission repository port and
// its two storage adapters.
package submissions

import (
	"context"

	"github.com/inkpresscms/inkpress/internal/server/models"
)

type Repository interface {
	// Save validates and upserts the submission.
	Save(ctx context.Context, s *models.ContactSubmission) (*models.ContactSubmission, error)
	GetByID(ctx context.Context, id string) (*models.ContactSubmission, error)
	List(ctx context.Context, opts models.ListOptions) ([]*models.ContactSubmission, error)
	ListByStatus(ctx context.Context, status string, opts models.ListOptions) ([]*models.ContactSubmission, error)

	// UpdateStatus moves the submission to the given triage status.
	UpdateStatus(ctx context.Context, id, status string) (*models.ContactSubmission, error)

	Delete(ctx context.Context, id string) error
}
