// Package reqmeta carries authenticated request metadata through the
// context as one typed value instead of loose string keys.
package reqmeta

import "context"

// Meta identifies the current request and its authenticated caller.
// RequestID is set for every request; UserID and Role stay empty on public
// endpoints.
type Meta struct {
	RequestID string
	UserID    string
	Role      string
}

type ctxKey struct{}

// WithMeta returns a context carrying m.
func WithMeta(ctx context.Context, m Meta) context.Context {
	return context.WithValue(ctx, ctxKey{}, m)
}

// FromContext extracts the caller metadata; ok is false on an
// unauthenticated (public) request.
func FromContext(ctx context.Context) (Meta, bool) {
	m, ok := ctx.Value(ctxKey{}).(Meta)
	return m, ok
}
