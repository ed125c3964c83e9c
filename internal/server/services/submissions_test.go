package services

import (
	"context"
	"errors"
	"testing"

	"github.com/inkpresscms/inkpress/internal/common"
	"github.com/inkpresscms/inkpress/internal/server/models"
)

func TestSubmit_RecordsNetworkDetails(t *testing.T) {
	svc := NewSubmissionService(newManager())

	saved, err := svc.Submit(context.Background(), &models.ContactSubmission{
		Name:    "Alice",
		Email:   "alice@example.com",
		Message: "Hello",
		Status:  models.SubmissionStatusReplied, // caller cannot pick a status
	}, "203.0.113.7", "curl/8.0")
	if err != nil {
		t.Fatalf("Submit error: %v", err)
	}
	if saved.Status != models.SubmissionStatusNew {
		t.Fatalf("expected status new, got %q", saved.Status)
	}
	if saved.IPAddress != "203.0.113.7" || saved.UserAgent != "curl/8.0" {
		t.Fatalf("unexpected network details: %+v", saved)
	}
}

func TestSetStatus(t *testing.T) {
	svc := NewSubmissionService(newManager())
	ctx := context.Background()

	saved, err := svc.Submit(ctx, &models.ContactSubmission{
		Name:    "Alice",
		Email:   "alice@example.com",
		Message: "Hello",
	}, "", "")
	if err != nil {
		t.Fatalf("Submit error: %v", err)
	}

	updated, err := svc.SetStatus(ctx, saved.ID, models.SubmissionStatusRead)
	if err != nil {
		t.Fatalf("SetStatus error: %v", err)
	}
	if updated.Status != models.SubmissionStatusRead {
		t.Fatalf("expected status read, got %q", updated.Status)
	}

	listed, err := svc.List(ctx, models.SubmissionStatusRead, models.ListOptions{})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != saved.ID {
		t.Fatalf("unexpected listing: %+v", listed)
	}
}

func TestSetStatus_NotFound(t *testing.T) {
	svc := NewSubmissionService(newManager())

	_, err := svc.SetStatus(context.Background(), "ghost", models.SubmissionStatusRead)
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want common.ErrNotFound, got %v", err)
	}
}
