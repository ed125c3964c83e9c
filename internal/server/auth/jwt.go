// Package auth issues and verifies the HS256 access tokens used by both
// transports, and defines the role hierarchy checked by the authorization
// middleware.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/inkpresscms/inkpress/internal/common"
)

// Roles, ordered from least to most privileged. Every admin can do what an
// editor can; every editor can do what a viewer can.
const (
	RoleViewer = "viewer"
	RoleEditor = "editor"
	RoleAdmin  = "admin"
)

var roleRank = map[string]int{
	RoleViewer: 0,
	RoleEditor: 1,
	RoleAdmin:  2,
}

// KnownRole reports whether role is one of the defined roles.
func KnownRole(role string) bool {
	_, ok := roleRank[role]
	return ok
}

// RoleAtLeast reports whether have grants everything required does. An
// unknown role on either side never satisfies the check.
func RoleAtLeast(have, required string) bool {
	h, ok := roleRank[have]
	if !ok {
		return false
	}
	r, ok := roleRank[required]
	if !ok {
		return false
	}
	return h >= r
}

// Claims carries the registered claims plus the subject's role.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"uid"`
	Role   string `json:"role"`
}

// GenerateToken signs an HS256 token for the given subject and role.
func GenerateToken(userID, role string, secretKey []byte, issuer string, validity time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validity)),
		},
		UserID: userID,
		Role:   role,
	})
	return token.SignedString(secretKey)
}

// ParseToken verifies signature, expiry, and issuer, in that order of
// reporting: a structurally broken or forged token is invalid, an expired
// but well-formed one is expired.
func ParseToken(tokenString string, secretKey []byte, issuer string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) { return secretKey, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
	)
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, common.ErrTokenExpired
	case err != nil:
		return nil, common.ErrInvalidToken
	}
	if !token.Valid || !KnownRole(claims.Role) {
		return nil, common.ErrInvalidToken
	}
	return claims, nil
}
