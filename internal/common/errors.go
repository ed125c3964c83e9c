// Package common defines the error taxonomy shared by adapters, services,
// and presenters. Adapters translate transport failures (HTTP status codes,
// SQL errors) into these sentinels at the adapter boundary; callers match
// them with errors.Is. Presenters are the only place these become
// protocol-specific codes.
package common

import "errors"

var (
	// ErrNotFound indicates the addressed entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a write lost an optimistic-concurrency race:
	// the presented revision token is stale, or a unique constraint
	// (e.g. slug) is already taken.
	ErrConflict = errors.New("conflict")

	// ErrInternal covers any failure that is not safe to show to clients.
	ErrInternal = errors.New("internal error")

	// Produced exclusively by the middleware chain, never by adapters.
	ErrUnauthenticated  = errors.New("unauthenticated")
	ErrPermissionDenied = errors.New("permission denied")

	// Token-level errors. ErrInvalidToken covers structural problems
	// (malformed or badly signed tokens); ErrTokenExpired is semantic.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
