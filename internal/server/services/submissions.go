package services

import (
	"context"

	"github.com/inkpresscms/inkpress/internal/server/models"
	"github.com/inkpresscms/inkpress/internal/server/repositories/repomanager"
)

// SubmissionService records and triages contact form submissions.
type SubmissionService struct {
	rm repomanager.RepositoryManager
}

// NewSubmissionService constructs the service.
func NewSubmissionService(rm repomanager.RepositoryManager) *SubmissionService {
	return &SubmissionService{rm: rm}
}

// Submit records a new submission with the caller's network details. The
// status always starts at new regardless of what the caller sent.
func (s *SubmissionService) Submit(ctx context.Context, sub *models.ContactSubmission, ip, userAgent string) (*models.ContactSubmission, error) {
	sub.Status = models.SubmissionStatusNew
	sub.IPAddress = ip
	sub.UserAgent = userAgent

	var saved *models.ContactSubmission
	err := s.rm.Do(ctx, func(ctx context.Context) error {
		var err error
		saved, err = s.rm.Submissions().Save(ctx, sub)
		return err
	})
	return saved, err
}

func (s *SubmissionService) Get(ctx context.Context, id string) (*models.ContactSubmission, error) {
	return s.rm.Submissions().GetByID(ctx, id)
}

func (s *SubmissionService) List(ctx context.Context, status string, opts models.ListOptions) ([]*models.ContactSubmission, error) {
	if status == "" {
		return s.rm.Submissions().List(ctx, opts)
	}
	return s.rm.Submissions().ListByStatus(ctx, status, opts)
}

func (s *SubmissionService) SetStatus(ctx context.Context, id, status string) (*models.ContactSubmission, error) {
	var updated *models.ContactSubmission
	err := s.rm.Do(ctx, func(ctx context.Context) error {
		var err error
		updated, err = s.rm.Submissions().UpdateStatus(ctx, id, status)
		return err
	})
	return updated, err
}

func (s *SubmissionService) Delete(ctx context.Context, id string) error {
	return s.rm.Do(ctx, func(ctx context.Context) error {
		return s.rm.Submissions().Delete(ctx, id)
	})
}
