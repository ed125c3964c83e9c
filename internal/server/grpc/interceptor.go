package grpc

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/inkpresscms/inkpress/internal/common"
	"github.com/inkpresscms/inkpress/internal/server/auth"
	"github.com/inkpresscms/inkpress/internal/server/reqmeta"
)

// publicMethods are reachable without a token: the read surface of the
// public site plus the contact form.
var publicMethods = map[string]bool{
	"/inkpress.cms.ContentService/Ping":               true,
	"/inkpress.cms.ContentService/GetPageBySlug":      true,
	"/inkpress.cms.ContentService/GetPostBySlug":      true,
	"/inkpress.cms.ContentService/ListPublishedPosts": true,
	"/inkpress.cms.ContentService/SearchPosts":        true,
	"/inkpress.cms.ContentService/FacetCounts":        true,
	"/inkpress.cms.ContentService/GetDownloadUrl":     true,
	"/inkpress.cms.ContentService/SubmitContact":      true,
}

// methodRoles is the minimum role per authenticated method. Methods absent
// from the map require the viewer role.
var methodRoles = map[string]string{
	"/inkpress.cms.ContentService/SavePage":   auth.RoleEditor,
	"/inkpress.cms.ContentService/DeletePage": auth.RoleEditor,
	"/inkpress.cms.ContentService/SavePost":   auth.RoleEditor,
	"/inkpress.cms.ContentService/DeletePost": auth.RoleEditor,

	"/inkpress.cms.ContentService/BeginUpload": auth.RoleEditor,
	"/inkpress.cms.ContentService/DeleteMedia": auth.RoleEditor,

	"/inkpress.cms.ContentService/ListSubmissions":     auth.RoleAdmin,
	"/inkpress.cms.ContentService/SetSubmissionStatus": auth.RoleAdmin,
	"/inkpress.cms.ContentService/DeleteSubmission":    auth.RoleAdmin,
}

func (s *GRPCServer) recoveryInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp interface{}, err error) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error(ctx, "panic in handler", "method", info.FullMethod, "panic", r)
			resp, err = nil, status.Error(codes.Internal, "internal error")
		}
	}()
	return handler(ctx, req)
}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	requestID := uuid.NewString()
	ctx = reqmeta.WithMeta(ctx, reqmeta.Meta{RequestID: requestID})

	start := time.Now()
	resp, err := handler(ctx, req)

	if err != nil {
		s.logger.Error(ctx, "request failed",
			"method", info.FullMethod, "request_id", requestID,
			"duration", time.Since(start), "error", err)
	} else {
		s.logger.Info(ctx, "request handled",
			"method", info.FullMethod, "request_id", requestID,
			"duration", time.Since(start))
	}
	return resp, err
}

// bearerToken extracts the token from the authorization metadata entry,
// with or without the conventional Bearer prefix.
func bearerToken(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	values := md.Get("authorization")
	if len(values) == 0 {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(values[0], "Bearer "))
}

func (s *GRPCServer) authInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	if publicMethods[info.FullMethod] {
		return handler(ctx, req)
	}

	token := bearerToken(ctx)
	if token == "" {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	claims, err := auth.ParseToken(token, s.jwtSecret, s.issuer)
	if err != nil {
		if errors.Is(err, common.ErrTokenExpired) {
			return nil, status.Error(codes.Unauthenticated, "token expired")
		}
		return nil, status.Error(codes.Unauthenticated, "invalid token")
	}

	m, _ := reqmeta.FromContext(ctx)
	m.UserID = claims.UserID
	m.Role = claims.Role
	ctx = reqmeta.WithMeta(ctx, m)

	return handler(ctx, req)
}

func (s *GRPCServer) roleInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	if publicMethods[info.FullMethod] {
		return handler(ctx, req)
	}

	required, ok := methodRoles[info.FullMethod]
	if !ok {
		required = auth.RoleViewer
	}

	m, _ := reqmeta.FromContext(ctx)
	if !auth.RoleAtLeast(m.Role, required) {
		return nil, status.Error(codes.PermissionDenied, "insufficient role")
	}
	return handler(ctx, req)
}
