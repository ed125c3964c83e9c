package grpc

import (
	"context"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/inkpresscms/inkpress/internal/server/auth"
	"github.com/inkpresscms/inkpress/internal/server/reqmeta"
)

const (
	protectedMethod = "/inkpress.cms.ContentService/SavePage"
	adminMethod     = "/inkpress.cms.ContentService/ListSubmissions"
	publicMethod    = "/inkpress.cms.ContentService/GetPageBySlug"
)

func authedContext(t *testing.T, s *GRPCServer, role string) context.Context {
	t.Helper()
	token, err := auth.GenerateToken("user-1", role, s.jwtSecret, s.issuer, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	md := metadata.New(map[string]string{"authorization": "Bearer " + token})
	return metadata.NewIncomingContext(context.Background(), md)
}

func TestAuthInterceptor_PublicMethodWithoutToken(t *testing.T) {
	s := newTestServer(t, "127.0.0.1:0")
	info := &grpc.UnaryServerInfo{FullMethod: publicMethod}

	called := false
	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		called = true
		return "ok", nil
	}

	resp, err := s.authInterceptor(context.Background(), nil, info, h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called || resp != "ok" {
		t.Fatalf("handler not invoked: called=%v resp=%v", called, resp)
	}
}

func TestAuthInterceptor_MissingToken(t *testing.T) {
	s := newTestServer(t, "127.0.0.1:0")
	info := &grpc.UnaryServerInfo{FullMethod: protectedMethod}

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		t.Fatal("handler should not be called when token missing")
		return nil, nil
	}

	_, err := s.authInterceptor(context.Background(), nil, info, h)
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", status.Code(err))
	}
	if status.Convert(err).Message() != "missing token" {
		t.Fatalf("expected 'missing token', got %q", status.Convert(err).Message())
	}
}

func TestAuthInterceptor_InvalidToken(t *testing.T) {
	s := newTestServer(t, "127.0.0.1:0")

	md := metadata.New(map[string]string{"authorization": "Bearer not-a-valid-jwt"})
	ctx := metadata.NewIncomingContext(context.Background(), md)
	info := &grpc.UnaryServerInfo{FullMethod: protectedMethod}

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		t.Fatal("handler should not be called for invalid token")
		return nil, nil
	}

	_, err := s.authInterceptor(ctx, nil, info, h)
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", status.Code(err))
	}
}

func TestAuthInterceptor_ExpiredToken(t *testing.T) {
	s := newTestServer(t, "127.0.0.1:0")

	token, err := auth.GenerateToken("user-1", auth.RoleEditor, s.jwtSecret, s.issuer, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	md := metadata.New(map[string]string{"authorization": "Bearer " + token})
	ctx := metadata.NewIncomingContext(context.Background(), md)
	info := &grpc.UnaryServerInfo{FullMethod: protectedMethod}

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		t.Fatal("handler should not be called for expired token")
		return nil, nil
	}

	_, err = s.authInterceptor(ctx, nil, info, h)
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", status.Code(err))
	}
	if status.Convert(err).Message() != "token expired" {
		t.Fatalf("expected 'token expired', got %q", status.Convert(err).Message())
	}
}

func TestAuthInterceptor_ValidToken_SetsMeta(t *testing.T) {
	s := newTestServer(t, "127.0.0.1:0")
	ctx := authedContext(t, s, auth.RoleEditor)
	info := &grpc.UnaryServerInfo{FullMethod: protectedMethod}

	var got reqmeta.Meta
	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		got, _ = reqmeta.FromContext(ctx)
		return "ok", nil
	}

	if _, err := s.authInterceptor(ctx, nil, info, h); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.UserID != "user-1" || got.Role != auth.RoleEditor {
		t.Fatalf("caller metadata not propagated: %+v", got)
	}
}

func TestRoleInterceptor_EnforcesMinimumRole(t *testing.T) {
	s := newTestServer(t, "127.0.0.1:0")

	tests := []struct {
		name   string
		method string
		role   string
		want   codes.Code
	}{
		{"viewer blocked from editing", protectedMethod, auth.RoleViewer, codes.PermissionDenied},
		{"editor allowed to edit", protectedMethod, auth.RoleEditor, codes.OK},
		{"editor blocked from submissions", adminMethod, auth.RoleEditor, codes.PermissionDenied},
		{"admin allowed everywhere", adminMethod, auth.RoleAdmin, codes.OK},
		{"viewer allowed to read", "/inkpress.cms.ContentService/ListPages", auth.RoleViewer, codes.OK},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctx := reqmeta.WithMeta(context.Background(), reqmeta.Meta{UserID: "u", Role: tc.role})
			info := &grpc.UnaryServerInfo{FullMethod: tc.method}
			h := func(ctx context.Context, req interface{}) (interface{}, error) { return "ok", nil }

			_, err := s.roleInterceptor(ctx, nil, info, h)
			if status.Code(err) != tc.want {
				t.Fatalf("want %v, got %v (err=%v)", tc.want, status.Code(err), err)
			}
		})
	}
}

func TestRecoveryInterceptor_TurnsPanicIntoInternal(t *testing.T) {
	s := newTestServer(t, "127.0.0.1:0")
	info := &grpc.UnaryServerInfo{FullMethod: protectedMethod}

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		panic("boom")
	}

	_, err := s.recoveryInterceptor(context.Background(), nil, info, h)
	if status.Code(err) != codes.Internal {
		t.Fatalf("want Internal, got %v", status.Code(err))
	}
}

func TestLoggingInterceptor_AssignsRequestID(t *testing.T) {
	s := newTestServer(t, "127.0.0.1:0")
	info := &grpc.UnaryServerInfo{FullMethod: publicMethod}

	var got reqmeta.Meta
	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		got, _ = reqmeta.FromContext(ctx)
		return "ok", nil
	}

	if _, err := s.loggingInterceptor(context.Background(), nil, info, h); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.RequestID == "" {
		t.Fatal("request id not assigned")
	}
}
