package models

import (
	"sort"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// BlogPost is an authored article. Content is the rich-text body as one
// opaque string; categories and tags are sets (duplicates are ignored by
// the adapters). PublishedAt is an RFC3339 string in document form so the
// published view can gate on the effective publish time.
type BlogPost struct {
	ID              string   `json:"_id,omitempty"`
	Rev             string   `json:"_rev,omitempty"`
	Type            string   `json:"type"`
	Title           string   `json:"title"`
	Slug            string   `json:"slug"`
	Excerpt         string   `json:"excerpt,omitempty"`
	Content         string   `json:"content"`
	Author          string   `json:"author"`
	Categories      []string `json:"categories,omitempty"`
	Tags            []string `json:"tags,omitempty"`
	MetaDescription string   `json:"meta_description,omitempty"`
	Status          string   `json:"status"`
	PublishedAt     string   `json:"published_at,omitempty"`
	CreatedAt       int64    `json:"created_at"`
	UpdatedAt       int64    `json:"updated_at"`
}

// Validate checks structural invariants before any write.
func (p BlogPost) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Title, validation.Required, validation.Length(1, 300)),
		validation.Field(&p.Slug, validation.Required, validation.Match(slugPattern)),
		validation.Field(&p.Author, validation.Required),
		validation.Field(&p.Status, validation.Required, validation.In(StatusDraft, StatusPublished)),
		validation.Field(&p.PublishedAt, validation.When(p.Status == StatusPublished, validation.Required, validation.Date(time.RFC3339))),
	)
}

// Normalize dedupes the category and tag sets and rewrites a parseable
// publish time to canonical UTC RFC3339, so keys sort chronologically in
// every backend. Adapters call this before writing.
func (p *BlogPost) Normalize() {
	p.Categories = uniqueSorted(p.Categories)
	p.Tags = uniqueSorted(p.Tags)
	if t, ok := p.EffectivePublishTime(); ok {
		p.PublishedAt = t.UTC().Format(time.RFC3339)
	}
}

func uniqueSorted(values []string) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// EffectivePublishTime parses PublishedAt; ok is false when the value is
// missing or unparseable.
func (p *BlogPost) EffectivePublishTime() (time.Time, bool) {
	if p.PublishedAt == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, p.PublishedAt)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// VisibleAt reports whether the post belongs in the published projection at
// the given instant: status is published and the effective publish time has
// passed. A future-dated published post stays hidden.
func (p *BlogPost) VisibleAt(now time.Time) bool {
	if p.Status != StatusPublished {
		return false
	}
	t, ok := p.EffectivePublishTime()
	if !ok {
		return false
	}
	return !t.After(now)
}
