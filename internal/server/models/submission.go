package models

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Contact submission statuses. The progression is monotonic in practice
// (new → read → replied) but the model does not enforce it.
const (
	SubmissionStatusNew     = "new"
	SubmissionStatusRead    = "read"
	SubmissionStatusReplied = "replied"
	SubmissionStatusSpam    = "spam"
)

// ContactSubmission is one message sent through the public contact form.
type ContactSubmission struct {
	ID        string `json:"_id,omitempty"`
	Rev       string `json:"_rev,omitempty"`
	Type      string `json:"type"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Company   string `json:"company,omitempty"`
	Message   string `json:"message"`
	IPAddress string `json:"ip_address,omitempty"`
	UserAgent string `json:"user_agent,omitempty"`
	Status    string `json:"status"`
	CreatedAt int64  `json:"created_at"`
	UpdatedAt int64  `json:"updated_at"`
}

// Validate checks structural invariants before any write.
func (s ContactSubmission) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&s.Email, validation.Required, is.Email),
		validation.Field(&s.Message, validation.Required),
		validation.Field(&s.Status, validation.Required,
			validation.In(SubmissionStatusNew, SubmissionStatusRead, SubmissionStatusReplied, SubmissionStatusSpam)),
	)
}
