package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/inkpresscms/inkpress/internal/common"
)

var (
	testSecret = []byte("test-secret")
	testIssuer = "inkpress"
)

func TestGenerateAndParseToken(t *testing.T) {
	tok, err := GenerateToken("u-1", RoleEditor, testSecret, testIssuer, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	claims, err := ParseToken(tok, testSecret, testIssuer)
	if err != nil {
		t.Fatalf("ParseToken error: %v", err)
	}
	if claims.UserID != "u-1" || claims.Role != RoleEditor {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestParseToken_Expired(t *testing.T) {
	tok, err := GenerateToken("u-1", RoleEditor, testSecret, testIssuer, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	_, err = ParseToken(tok, testSecret, testIssuer)
	if !errors.Is(err, common.ErrTokenExpired) {
		t.Fatalf("want common.ErrTokenExpired, got %v", err)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	tok, err := GenerateToken("u-1", RoleEditor, testSecret, testIssuer, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	_, err = ParseToken(tok, []byte("other-secret"), testIssuer)
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("want common.ErrInvalidToken, got %v", err)
	}
}

func TestParseToken_WrongIssuer(t *testing.T) {
	tok, err := GenerateToken("u-1", RoleEditor, testSecret, "someone-else", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	_, err = ParseToken(tok, testSecret, testIssuer)
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("want common.ErrInvalidToken, got %v", err)
	}
}

func TestParseToken_Garbage(t *testing.T) {
	_, err := ParseToken("not.a.token", testSecret, testIssuer)
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("want common.ErrInvalidToken, got %v", err)
	}
}

func TestParseToken_UnknownRole(t *testing.T) {
	tok, err := GenerateToken("u-1", "superuser", testSecret, testIssuer, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	_, err = ParseToken(tok, testSecret, testIssuer)
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("want common.ErrInvalidToken, got %v", err)
	}
}

func TestRoleAtLeast(t *testing.T) {
	tests := []struct {
		have, required string
		want           bool
	}{
		{RoleAdmin, RoleViewer, true},
		{RoleAdmin, RoleAdmin, true},
		{RoleEditor, RoleViewer, true},
		{RoleEditor, RoleAdmin, false},
		{RoleViewer, RoleEditor, false},
		{"superuser", RoleViewer, false},
		{RoleAdmin, "superuser", false},
	}
	for _, tc := range tests {
		if got := RoleAtLeast(tc.have, tc.required); got != tc.want {
			t.Errorf("RoleAtLeast(%q, %q) = %v, want %v", tc.have, tc.required, got, tc.want)
		}
	}
}
