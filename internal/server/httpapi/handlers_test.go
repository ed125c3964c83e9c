package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/inkpresscms/inkpress/internal/couch"
	"github.com/inkpresscms/inkpress/internal/logging/logtest"
	"github.com/inkpresscms/inkpress/internal/server/auth"
	sc "github.com/inkpresscms/inkpress/internal/server/config"
	"github.com/inkpresscms/inkpress/internal/server/models"
	"github.com/inkpresscms/inkpress/internal/server/repositories/repomanager"
	"github.com/inkpresscms/inkpress/internal/server/services"
	"github.com/inkpresscms/inkpress/internal/views"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	rm := repomanager.NewCouchRepositoryManager(couch.NewMemStore(views.Default()), views.Default())
	cfg := &sc.Config{}
	cfg.LoadDefaults()

	srv, err := NewServer("127.0.0.1:0", logtest.NewNop(),
		services.NewContentService(rm),
		services.NewMediaService(rm, cfg),
		services.NewSubmissionService(rm),
		"secret", "inkpress")
	if err != nil {
		t.Fatalf("NewServer error: %v", err)
	}
	return srv
}

func token(t *testing.T, s *Server, role string) string {
	t.Helper()
	tok, err := auth.GenerateToken("user-1", role, s.jwtSecret, s.issuer, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	return tok
}

func doJSON(t *testing.T, h http.Handler, method, path, bearer string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return v
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s.Router(), http.MethodGet, "/health", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
}

func TestSavePage_RoundTripBySlug(t *testing.T) {
	s := newTestServer(t)
	r := s.Router()
	editor := token(t, s, auth.RoleEditor)

	rec := doJSON(t, r, http.MethodPost, "/api/pages", editor, pagePayload{
		Title:  "About Us",
		Status: models.StatusDraft,
		Content: []blockPayload{
			{Type: "generic", Data: "hello"},
		},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d body=%s", rec.Code, rec.Body.String())
	}
	saved := decodeBody[pagePayload](t, rec)
	if saved.Slug != "about-us" || saved.ID == "" {
		t.Fatalf("unexpected page: %+v", saved)
	}

	rec = doJSON(t, r, http.MethodGet, "/api/pages/slug/about-us", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	got := decodeBody[pagePayload](t, rec)
	if got.ID != saved.ID || len(got.Content) != 1 {
		t.Fatalf("unexpected page: %+v", got)
	}
}

func TestSavePost_ConflictIs409(t *testing.T) {
	s := newTestServer(t)
	r := s.Router()
	editor := token(t, s, auth.RoleEditor)

	post := postPayload{Title: "Go Tips", Content: "body", Author: "alice", Status: models.StatusDraft}

	if rec := doJSON(t, r, http.MethodPost, "/api/posts", editor, post); rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d body=%s", rec.Code, rec.Body.String())
	}
	rec := doJSON(t, r, http.MethodPost, "/api/posts", editor, post)
	if rec.Code != http.StatusConflict {
		t.Fatalf("want 409, got %d", rec.Code)
	}
}

func TestPublishedFeedAndSearch(t *testing.T) {
	s := newTestServer(t)
	r := s.Router()
	editor := token(t, s, auth.RoleEditor)

	rec := doJSON(t, r, http.MethodPost, "/api/posts", editor, postPayload{
		Title:       "Release Notes",
		Content:     "body",
		Author:      "alice",
		Status:      models.StatusPublished,
		PublishedAt: time.Now().Add(-time.Hour).UTC().Format(time.RFC3339),
		Tags:        []string{"go"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d body=%s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, r, http.MethodGet, "/api/posts/published", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	feed := decodeBody[struct {
		Items []postPayload `json:"items"`
	}](t, rec)
	if len(feed.Items) != 1 || feed.Items[0].Title != "Release Notes" {
		t.Fatalf("unexpected feed: %+v", feed.Items)
	}

	rec = doJSON(t, r, http.MethodGet, "/api/posts/search?q=release", "", nil)
	found := decodeBody[struct {
		Items []postPayload `json:"items"`
	}](t, rec)
	if len(found.Items) != 1 {
		t.Fatalf("expected 1 search hit, got %d", len(found.Items))
	}

	rec = doJSON(t, r, http.MethodGet, "/api/posts/facets", "", nil)
	facets := decodeBody[map[string][]facetPayload](t, rec)
	if len(facets["tags"]) != 1 || facets["tags"][0].Name != "go" {
		t.Fatalf("unexpected facets: %+v", facets)
	}
}

func TestListPosts_PaginationEnvelope(t *testing.T) {
	s := newTestServer(t)
	r := s.Router()
	editor := token(t, s, auth.RoleEditor)

	for _, title := range []string{"One", "Two", "Three"} {
		rec := doJSON(t, r, http.MethodPost, "/api/posts", editor, postPayload{
			Title: title, Content: "body", Author: "alice", Status: models.StatusDraft,
		})
		if rec.Code != http.StatusOK {
			t.Fatalf("save %s: status %d", title, rec.Code)
		}
	}

	rec := doJSON(t, r, http.MethodGet, "/api/posts?limit=2", editor, nil)
	page := decodeBody[struct {
		Items    []postPayload `json:"items"`
		NextSkip *int          `json:"next_skip"`
	}](t, rec)
	if len(page.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(page.Items))
	}
	if page.NextSkip == nil || *page.NextSkip != 2 {
		t.Fatalf("unexpected next_skip: %v", page.NextSkip)
	}

	rec = doJSON(t, r, http.MethodGet, "/api/posts?limit=2&skip=2", editor, nil)
	page = decodeBody[struct {
		Items    []postPayload `json:"items"`
		NextSkip *int          `json:"next_skip"`
	}](t, rec)
	if len(page.Items) != 1 || page.NextSkip != nil {
		t.Fatalf("unexpected second page: %+v next=%v", page.Items, page.NextSkip)
	}
}

func TestGetPage_NotFoundIs404(t *testing.T) {
	s := newTestServer(t)
	viewer := token(t, s, auth.RoleViewer)

	rec := doJSON(t, s.Router(), http.MethodGet, "/api/pages/ghost", viewer, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d", rec.Code)
	}
}

func TestSubmitContact_PublicAndTriaged(t *testing.T) {
	s := newTestServer(t)
	r := s.Router()

	rec := doJSON(t, r, http.MethodPost, "/api/contact", "", submissionPayload{
		Name:    "Alice",
		Email:   "alice@example.com",
		Message: "Hello",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("unexpected status: %d body=%s", rec.Code, rec.Body.String())
	}
	saved := decodeBody[submissionPayload](t, rec)
	if saved.Status != models.SubmissionStatusNew {
		t.Fatalf("unexpected status: %q", saved.Status)
	}

	admin := token(t, s, auth.RoleAdmin)
	rec = doJSON(t, r, http.MethodPut, "/api/submissions/"+saved.ID+"/status", admin, statusPayload{
		Status: models.SubmissionStatusRead,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d body=%s", rec.Code, rec.Body.String())
	}
	updated := decodeBody[submissionPayload](t, rec)
	if updated.Status != models.SubmissionStatusRead {
		t.Fatalf("unexpected status: %q", updated.Status)
	}

	rec = doJSON(t, r, http.MethodGet, "/api/submissions?status=read", admin, nil)
	listed := decodeBody[struct {
		Items []submissionPayload `json:"items"`
	}](t, rec)
	if len(listed.Items) != 1 {
		t.Fatalf("expected 1 submission, got %d", len(listed.Items))
	}
}

func TestDeletePage_NoContent(t *testing.T) {
	s := newTestServer(t)
	r := s.Router()
	editor := token(t, s, auth.RoleEditor)

	rec := doJSON(t, r, http.MethodPost, "/api/pages", editor, pagePayload{
		Title: "Temp", Status: models.StatusDraft,
	})
	saved := decodeBody[pagePayload](t, rec)

	rec = doJSON(t, r, http.MethodDelete, "/api/pages/"+saved.ID, editor, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("want 204, got %d", rec.Code)
	}

	rec = doJSON(t, r, http.MethodDelete, "/api/pages/"+saved.ID, editor, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("want 404 on second delete, got %d", rec.Code)
	}
}

func TestMalformedBodyIs400(t *testing.T) {
	s := newTestServer(t)
	editor := token(t, s, auth.RoleEditor)

	req := httptest.NewRequest(http.MethodPost, "/api/pages", bytes.NewBufferString("{broken"))
	req.Header.Set("Authorization", "Bearer "+editor)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", rec.Code)
	}
}
