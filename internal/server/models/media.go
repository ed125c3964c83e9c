package models

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Media describes an uploaded asset. Filename is the storage key, derived
// deterministically from content hash plus upload timestamp so it is
// globally unique; the bytes themselves live in object storage.
type Media struct {
	ID           string `json:"_id,omitempty"`
	Rev          string `json:"_rev,omitempty"`
	Type         string `json:"type"`
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
	MimeType     string `json:"mime_type"`
	Size         int64  `json:"size"`
	URL          string `json:"url,omitempty"`
	AltText      string `json:"alt_text,omitempty"`
	UploadedBy   string `json:"uploaded_by,omitempty"`
	CreatedAt    int64  `json:"created_at"`
}

// Validate checks structural invariants before any write.
func (m Media) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Filename, validation.Required),
		validation.Field(&m.OriginalName, validation.Required),
		validation.Field(&m.MimeType, validation.Required),
		validation.Field(&m.Size, validation.Min(0)),
	)
}
