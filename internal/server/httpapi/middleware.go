package httpapi

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/inkpresscms/inkpress/internal/common"
	"github.com/inkpresscms/inkpress/internal/server/auth"
	"github.com/inkpresscms/inkpress/internal/server/reqmeta"
)

func (s *Server) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				s.logger.Error(r.Context(), "panic in handler", "path", r.URL.Path, "panic", rec)
				writeError(w, common.ErrInternal)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		ctx := reqmeta.WithMeta(r.Context(), reqmeta.Meta{RequestID: requestID})
		w.Header().Set("X-Request-Id", requestID)

		start := time.Now()
		next.ServeHTTP(w, r.WithContext(ctx))

		s.logger.Info(ctx, "request handled",
			"method", r.Method, "path", r.URL.Path,
			"request_id", requestID, "duration", time.Since(start))
	})
}

// authenticate verifies the bearer token and records the caller in the
// request metadata. It rejects; it never passes anonymous traffic through.
func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if token == "" {
			writeError(w, common.ErrUnauthenticated)
			return
		}

		claims, err := auth.ParseToken(token, s.jwtSecret, s.issuer)
		if err != nil {
			if errors.Is(err, common.ErrTokenExpired) {
				writeError(w, common.ErrTokenExpired)
				return
			}
			writeError(w, common.ErrInvalidToken)
			return
		}

		m, _ := reqmeta.FromContext(r.Context())
		m.UserID = claims.UserID
		m.Role = claims.Role
		next.ServeHTTP(w, r.WithContext(reqmeta.WithMeta(r.Context(), m)))
	})
}

// requireRole gates a route group on a minimum role. Must run after
// authenticate.
func (s *Server) requireRole(required string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			m, _ := reqmeta.FromContext(r.Context())
			if !auth.RoleAtLeast(m.Role, required) {
				writeError(w, common.ErrPermissionDenied)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
