package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/inkpresscms/inkpress/internal/server/models"
	"github.com/inkpresscms/inkpress/internal/server/reqmeta"
	"github.com/inkpresscms/inkpress/internal/server/services"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}

func (s *Server) handleSavePage(w http.ResponseWriter, r *http.Request) {
	var payload pagePayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorPayload{Error: "malformed body"})
		return
	}
	saved, err := s.content.SavePage(r.Context(), payload.toModel())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pageToPayload(saved))
}

func (s *Server) handleGetPage(w http.ResponseWriter, r *http.Request) {
	page, err := s.content.GetPage(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pageToPayload(page))
}

func (s *Server) handleGetPageBySlug(w http.ResponseWriter, r *http.Request) {
	page, err := s.content.GetPageBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pageToPayload(page))
}

func (s *Server) handleListPages(w http.ResponseWriter, r *http.Request) {
	opts := queryListOptions(r)
	pages, err := s.content.ListPages(r.Context(), r.URL.Query().Get("status"), opts)
	if err != nil {
		writeError(w, err)
		return
	}
	items := make([]pagePayload, 0, len(pages))
	for _, p := range pages {
		items = append(items, pageToPayload(p))
	}
	writeJSON(w, http.StatusOK, envelope(items, opts, len(items)))
}

func (s *Server) handleDeletePage(w http.ResponseWriter, r *http.Request) {
	if err := s.content.DeletePage(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSavePost(w http.ResponseWriter, r *http.Request) {
	var payload postPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorPayload{Error: "malformed body"})
		return
	}
	saved, err := s.content.SavePost(r.Context(), payload.toModel())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, postToPayload(saved))
}

func (s *Server) handleGetPost(w http.ResponseWriter, r *http.Request) {
	post, err := s.content.GetPost(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, postToPayload(post))
}

func (s *Server) handleGetPostBySlug(w http.ResponseWriter, r *http.Request) {
	post, err := s.content.GetPostBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, postToPayload(post))
}

func (s *Server) handleListPosts(w http.ResponseWriter, r *http.Request) {
	opts := queryListOptions(r)
	q := r.URL.Query()
	filter := services.PostFilter{
		Status:   q.Get("status"),
		Author:   q.Get("author"),
		Category: q.Get("category"),
		Tag:      q.Get("tag"),
	}
	list, err := s.content.ListPosts(r.Context(), filter, opts)
	if err != nil {
		writeError(w, err)
		return
	}
	s.writePostList(w, list, opts)
}

func (s *Server) handleListPublishedPosts(w http.ResponseWriter, r *http.Request) {
	opts := queryListOptions(r)
	list, err := s.content.ListPublishedPosts(r.Context(), opts)
	if err != nil {
		writeError(w, err)
		return
	}
	s.writePostList(w, list, opts)
}

func (s *Server) handleSearchPosts(w http.ResponseWriter, r *http.Request) {
	opts := queryListOptions(r)
	list, err := s.content.SearchPosts(r.Context(), r.URL.Query().Get("q"), opts)
	if err != nil {
		writeError(w, err)
		return
	}
	s.writePostList(w, list, opts)
}

func (s *Server) writePostList(w http.ResponseWriter, list []*models.BlogPost, opts models.ListOptions) {
	items := make([]postPayload, 0, len(list))
	for _, p := range list {
		items = append(items, postToPayload(p))
	}
	writeJSON(w, http.StatusOK, envelope(items, opts, len(items)))
}

func (s *Server) handleFacetCounts(w http.ResponseWriter, r *http.Request) {
	categories, err := s.content.CategoryCounts(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	tags, err := s.content.TagCounts(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]facetPayload{
		"categories": facetsToPayload(categories),
		"tags":       facetsToPayload(tags),
	})
}

func (s *Server) handleDeletePost(w http.ResponseWriter, r *http.Request) {
	if err := s.content.DeletePost(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type beginUploadPayload struct {
	OriginalName string `json:"original_name"`
	MimeType     string `json:"mime_type"`
	Size         int64  `json:"size"`
	ContentHash  string `json:"content_hash,omitempty"`
	AltText      string `json:"alt_text,omitempty"`
}

type beginUploadResponse struct {
	Media     mediaPayload `json:"media"`
	UploadURL string       `json:"upload_url"`
}

func (s *Server) handleBeginUpload(w http.ResponseWriter, r *http.Request) {
	var payload beginUploadPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorPayload{Error: "malformed body"})
		return
	}
	m, _ := reqmeta.FromContext(r.Context())
	saved, url, err := s.media.BeginUpload(r.Context(), services.UploadRequest{
		OriginalName: payload.OriginalName,
		MimeType:     payload.MimeType,
		Size:         payload.Size,
		ContentHash:  payload.ContentHash,
		AltText:      payload.AltText,
		UploadedBy:   m.UserID,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, beginUploadResponse{
		Media:     mediaToPayload(saved),
		UploadURL: url,
	})
}

func (s *Server) handleGetMedia(w http.ResponseWriter, r *http.Request) {
	m, err := s.media.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mediaToPayload(m))
}

func (s *Server) handleListMedia(w http.ResponseWriter, r *http.Request) {
	opts := queryListOptions(r)
	list, err := s.media.List(r.Context(), opts)
	if err != nil {
		writeError(w, err)
		return
	}
	items := make([]mediaPayload, 0, len(list))
	for _, m := range list {
		items = append(items, mediaToPayload(m))
	}
	writeJSON(w, http.StatusOK, envelope(items, opts, len(items)))
}

func (s *Server) handleDownloadURL(w http.ResponseWriter, r *http.Request) {
	url, err := s.media.DownloadURL(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}

func (s *Server) handleDeleteMedia(w http.ResponseWriter, r *http.Request) {
	if err := s.media.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSubmitContact(w http.ResponseWriter, r *http.Request) {
	var payload submissionPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorPayload{Error: "malformed body"})
		return
	}
	sub := payload.toModel()
	saved, err := s.submissions.Submit(r.Context(), sub, clientIP(r), r.UserAgent())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, submissionToPayload(saved))
}

func (s *Server) handleGetSubmission(w http.ResponseWriter, r *http.Request) {
	sub, err := s.submissions.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, submissionToPayload(sub))
}

func (s *Server) handleListSubmissions(w http.ResponseWriter, r *http.Request) {
	opts := queryListOptions(r)
	list, err := s.submissions.List(r.Context(), r.URL.Query().Get("status"), opts)
	if err != nil {
		writeError(w, err)
		return
	}
	items := make([]submissionPayload, 0, len(list))
	for _, sub := range list {
		items = append(items, submissionToPayload(sub))
	}
	writeJSON(w, http.StatusOK, envelope(items, opts, len(items)))
}

type statusPayload struct {
	Status string `json:"status"`
}

func (s *Server) handleSetSubmissionStatus(w http.ResponseWriter, r *http.Request) {
	var payload statusPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorPayload{Error: "malformed body"})
		return
	}
	updated, err := s.submissions.SetStatus(r.Context(), chi.URLParam(r, "id"), payload.Status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, submissionToPayload(updated))
}

func (s *Server) handleDeleteSubmission(w http.ResponseWriter, r *http.Request) {
	if err := s.submissions.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
