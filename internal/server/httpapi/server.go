// Package httpapi exposes the content API over HTTP/JSON. It is a thin
// presenter over the same services as the gRPC transport, with the same
// middleware chain: panic recovery, request logging, token authentication,
// role authorization.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/inkpresscms/inkpress/internal/logging"
	"github.com/inkpresscms/inkpress/internal/server/auth"
	"github.com/inkpresscms/inkpress/internal/server/services"
)

type Server struct {
	address     string
	logger      logging.Logger
	content     *services.ContentService
	media       *services.MediaService
	submissions *services.SubmissionService
	jwtSecret   []byte
	issuer      string
}

func NewServer(a string, l logging.Logger, cs *services.ContentService, ms *services.MediaService, ss *services.SubmissionService, secretKey, issuer string) (*Server, error) {
	return &Server{
		address:     a,
		logger:      l.With("module", "http_server"),
		content:     cs,
		media:       ms,
		submissions: ss,
		jwtSecret:   []byte(secretKey),
		issuer:      issuer,
	}, nil
}

// Router assembles the route tree. Public routes carry only recovery and
// logging; everything under the authenticated groups additionally passes
// token and role checks.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(s.recoverer)
	r.Use(s.requestLogger)

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		// Public read surface plus the contact form.
		r.Get("/pages/slug/{slug}", s.handleGetPageBySlug)
		r.Get("/posts/slug/{slug}", s.handleGetPostBySlug)
		r.Get("/posts/published", s.handleListPublishedPosts)
		r.Get("/posts/search", s.handleSearchPosts)
		r.Get("/posts/facets", s.handleFacetCounts)
		r.Get("/media/{id}/download-url", s.handleDownloadURL)
		r.Post("/contact", s.handleSubmitContact)

		// Authenticated reads.
		r.Group(func(r chi.Router) {
			r.Use(s.authenticate)
			r.Use(s.requireRole(auth.RoleViewer))
			r.Get("/pages", s.handleListPages)
			r.Get("/pages/{id}", s.handleGetPage)
			r.Get("/posts", s.handleListPosts)
			r.Get("/posts/{id}", s.handleGetPost)
			r.Get("/media", s.handleListMedia)
			r.Get("/media/{id}", s.handleGetMedia)
		})

		// Content writes.
		r.Group(func(r chi.Router) {
			r.Use(s.authenticate)
			r.Use(s.requireRole(auth.RoleEditor))
			r.Post("/pages", s.handleSavePage)
			r.Delete("/pages/{id}", s.handleDeletePage)
			r.Post("/posts", s.handleSavePost)
			r.Delete("/posts/{id}", s.handleDeletePost)
			r.Post("/media/uploads", s.handleBeginUpload)
			r.Delete("/media/{id}", s.handleDeleteMedia)
		})

		// Submission triage.
		r.Group(func(r chi.Router) {
			r.Use(s.authenticate)
			r.Use(s.requireRole(auth.RoleAdmin))
			r.Get("/submissions", s.handleListSubmissions)
			r.Get("/submissions/{id}", s.handleGetSubmission)
			r.Put("/submissions/{id}/status", s.handleSetSubmissionStatus)
			r.Delete("/submissions/{id}", s.handleDeleteSubmission)
		})
	})

	return r
}

func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "HTTP shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}
