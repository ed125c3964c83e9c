// Package models defines the persisted content entities. Every document
// carries a `type` discriminator and, when stored in the document backend,
// an opaque revision token (_rev) that changes on each successful write.
package models

// Document type discriminators.
const (
	TypePage       = "page"
	TypeBlogPost   = "blog_post"
	TypeMedia      = "media"
	TypeSubmission = "contact_submission"
)

// Content statuses shared by pages and posts. Transitions are free-form.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Block is one element of a structured content block list.
type Block struct {
	Type string `json:"type"`
	Data string `json:"data"`
}

// BlockTypeGeneric marks content wrapped from an unstructured source.
const BlockTypeGeneric = "generic"
