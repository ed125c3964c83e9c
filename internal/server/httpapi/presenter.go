package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/inkpresscms/inkpress/internal/common"
	"github.com/inkpresscms/inkpress/internal/server/models"
	"github.com/inkpresscms/inkpress/internal/server/repositories/posts"
)

// Flat JSON shapes for the HTTP surface. Timestamps are epoch seconds;
// publish times are RFC3339 like the stored form.

type blockPayload struct {
	Type string `json:"type"`
	Data string `json:"data"`
}

type pagePayload struct {
	ID              string         `json:"id,omitempty"`
	Rev             string         `json:"rev,omitempty"`
	Title           string         `json:"title"`
	Slug            string         `json:"slug,omitempty"`
	Content         []blockPayload `json:"content,omitempty"`
	MetaDescription string         `json:"meta_description,omitempty"`
	Status          string         `json:"status"`
	CreatedAt       int64          `json:"created_at,omitempty"`
	UpdatedAt       int64          `json:"updated_at,omitempty"`
}

type postPayload struct {
	ID              string   `json:"id,omitempty"`
	Rev             string   `json:"rev,omitempty"`
	Title           string   `json:"title"`
	Slug            string   `json:"slug,omitempty"`
	Excerpt         string   `json:"excerpt,omitempty"`
	Content         string   `json:"content"`
	Author          string   `json:"author"`
	Categories      []string `json:"categories,omitempty"`
	Tags            []string `json:"tags,omitempty"`
	MetaDescription string   `json:"meta_description,omitempty"`
	Status          string   `json:"status"`
	PublishedAt     string   `json:"published_at,omitempty"`
	CreatedAt       int64    `json:"created_at,omitempty"`
	UpdatedAt       int64    `json:"updated_at,omitempty"`
}

type mediaPayload struct {
	ID           string `json:"id,omitempty"`
	Rev          string `json:"rev,omitempty"`
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
	MimeType     string `json:"mime_type"`
	Size         int64  `json:"size"`
	URL          string `json:"url,omitempty"`
	AltText      string `json:"alt_text,omitempty"`
	UploadedBy   string `json:"uploaded_by,omitempty"`
	CreatedAt    int64  `json:"created_at,omitempty"`
}

type submissionPayload struct {
	ID        string `json:"id,omitempty"`
	Rev       string `json:"rev,omitempty"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Company   string `json:"company,omitempty"`
	Message   string `json:"message"`
	Status    string `json:"status,omitempty"`
	CreatedAt int64  `json:"created_at,omitempty"`
	UpdatedAt int64  `json:"updated_at,omitempty"`
}

type facetPayload struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

func pageToPayload(p *models.Page) pagePayload {
	blocks := make([]blockPayload, 0, len(p.Content))
	for _, b := range p.Content {
		blocks = append(blocks, blockPayload{Type: b.Type, Data: b.Data})
	}
	return pagePayload{
		ID:              p.ID,
		Rev:             p.Rev,
		Title:           p.Title,
		Slug:            p.Slug,
		Content:         blocks,
		MetaDescription: p.MetaDescription,
		Status:          p.Status,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func (p pagePayload) toModel() *models.Page {
	blocks := make([]models.Block, 0, len(p.Content))
	for _, b := range p.Content {
		blocks = append(blocks, models.Block{Type: b.Type, Data: b.Data})
	}
	return &models.Page{
		ID:              p.ID,
		Rev:             p.Rev,
		Title:           p.Title,
		Slug:            p.Slug,
		Content:         blocks,
		MetaDescription: p.MetaDescription,
		Status:          p.Status,
	}
}

func postToPayload(p *models.BlogPost) postPayload {
	return postPayload{
		ID:              p.ID,
		Rev:             p.Rev,
		Title:           p.Title,
		Slug:            p.Slug,
		Excerpt:         p.Excerpt,
		Content:         p.Content,
		Author:          p.Author,
		Categories:      p.Categories,
		Tags:            p.Tags,
		MetaDescription: p.MetaDescription,
		Status:          p.Status,
		PublishedAt:     p.PublishedAt,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func (p postPayload) toModel() *models.BlogPost {
	return &models.BlogPost{
		ID:              p.ID,
		Rev:             p.Rev,
		Title:           p.Title,
		Slug:            p.Slug,
		Excerpt:         p.Excerpt,
		Content:         p.Content,
		Author:          p.Author,
		Categories:      p.Categories,
		Tags:            p.Tags,
		MetaDescription: p.MetaDescription,
		Status:          p.Status,
		PublishedAt:     p.PublishedAt,
	}
}

func mediaToPayload(m *models.Media) mediaPayload {
	return mediaPayload{
		ID:           m.ID,
		Rev:          m.Rev,
		Filename:     m.Filename,
		OriginalName: m.OriginalName,
		MimeType:     m.MimeType,
		Size:         m.Size,
		URL:          m.URL,
		AltText:      m.AltText,
		UploadedBy:   m.UploadedBy,
		CreatedAt:    m.CreatedAt,
	}
}

func (p submissionPayload) toModel() *models.ContactSubmission {
	return &models.ContactSubmission{
		Name:    p.Name,
		Email:   p.Email,
		Company: p.Company,
		Message: p.Message,
	}
}

func submissionToPayload(s *models.ContactSubmission) submissionPayload {
	return submissionPayload{
		ID:        s.ID,
		Rev:       s.Rev,
		Name:      s.Name,
		Email:     s.Email,
		Company:   s.Company,
		Message:   s.Message,
		Status:    s.Status,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func facetsToPayload(list []posts.FacetCount) []facetPayload {
	out := make([]facetPayload, 0, len(list))
	for _, f := range list {
		out = append(out, facetPayload{Name: f.Name, Count: f.Count})
	}
	return out
}

// listEnvelope wraps list responses with pagination continuation. NextSkip
// is present only when the page came back full.
type listEnvelope struct {
	Items    any  `json:"items"`
	NextSkip *int `json:"next_skip,omitempty"`
}

func envelope(items any, opts models.ListOptions, got int) listEnvelope {
	env := listEnvelope{Items: items}
	norm := opts.Normalize()
	if got == norm.Limit {
		next := norm.Skip + got
		env.NextSkip = &next
	}
	return env
}

// queryListOptions decodes limit and skip query parameters.
func queryListOptions(r *http.Request) models.ListOptions {
	opts := models.ListOptions{}
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil {
		opts.Limit = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("skip")); err == nil {
		opts.Skip = v
	}
	return opts
}

func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

type errorPayload struct {
	Error string `json:"error"`
}

// writeError maps the shared error taxonomy onto HTTP status codes.
// Anything not in the taxonomy is internal and its message is not echoed to
// the client.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, common.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorPayload{Error: "not found"})
	case errors.Is(err, common.ErrConflict):
		writeJSON(w, http.StatusConflict, errorPayload{Error: "conflict"})
	case errors.Is(err, common.ErrTokenExpired):
		writeJSON(w, http.StatusUnauthorized, errorPayload{Error: "token expired"})
	case errors.Is(err, common.ErrUnauthenticated), errors.Is(err, common.ErrInvalidToken):
		writeJSON(w, http.StatusUnauthorized, errorPayload{Error: "unauthenticated"})
	case errors.Is(err, common.ErrPermissionDenied):
		writeJSON(w, http.StatusForbidden, errorPayload{Error: "permission denied"})
	default:
		writeJSON(w, http.StatusInternalServerError, errorPayload{Error: "internal error"})
	}
}

func decodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

// clientIP prefers the first X-Forwarded-For hop when present.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		return strings.TrimSpace(first)
	}
	return r.RemoteAddr
}
