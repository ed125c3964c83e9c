package models

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// slugPattern keeps slugs URL-safe: lowercase segments joined by hyphens.
var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Page is a CMS page. Slug is unique among non-deleted pages. Timestamps
// are epoch seconds.
type Page struct {
	ID              string  `json:"_id,omitempty"`
	Rev             string  `json:"_rev,omitempty"`
	Type            string  `json:"type"`
	Title           string  `json:"title"`
	Slug            string  `json:"slug"`
	Content         []Block `json:"content"`
	MetaDescription string  `json:"meta_description,omitempty"`
	Status          string  `json:"status"`
	CreatedAt       int64   `json:"created_at"`
	UpdatedAt       int64   `json:"updated_at"`
}

// Validate checks structural invariants before any write.
func (p Page) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Title, validation.Required, validation.Length(1, 300)),
		validation.Field(&p.Slug, validation.Required, validation.Match(slugPattern)),
		validation.Field(&p.Status, validation.Required, validation.In(StatusDraft, StatusPublished)),
	)
}

// IsPublished reports whether the page is publicly visible.
func (p *Page) IsPublished() bool {
	return p.Status == StatusPublished
}
