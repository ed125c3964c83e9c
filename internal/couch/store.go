// Package couch implements the document storage backend: a client speaking
// the CouchDB HTTP/JSON wire contract, an in-process store evaluating the
// native view registry, and the bounded optimistic-concurrency upsert both
// share.
package couch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/inkpresscms/inkpress/internal/common"
)

// Params carries view query options (key, startkey, endkey, limit, skip,
// reduce, group). Key-like values are JSON-encoded on the wire.
type Params map[string]any

// Row is one view emission. ID is the emitting document's id (empty for
// reduced rows); Value is left raw so callers can decode either a full
// document or an aggregate.
type Row struct {
	ID    string          `json:"id,omitempty"`
	Key   any             `json:"key"`
	Value json.RawMessage `json:"value"`
}

// ViewResult is the rows envelope returned by a view query.
type ViewResult struct {
	TotalRows int   `json:"total_rows"`
	Offset    int   `json:"offset"`
	Rows      []Row `json:"rows"`
}

// ViewDefinition is one view inside a design document.
type ViewDefinition struct {
	Map    string `json:"map"`
	Reduce string `json:"reduce,omitempty"`
}

// DesignDocument groups related views, deployed as configuration at startup.
type DesignDocument struct {
	ID       string                    `json:"_id"`
	Rev      string                    `json:"_rev,omitempty"`
	Language string                    `json:"language"`
	Views    map[string]ViewDefinition `json:"views"`
}

// Store is the document-store port. A write with a stale revision token
// must fail with common.ErrConflict, never silently overwrite.
type Store interface {
	// Put creates or updates the document under id and returns the new
	// revision token. Updating requires the caller's document to embed the
	// current revision.
	Put(ctx context.Context, id string, doc any) (string, error)

	// Get reads the document under id into out.
	Get(ctx context.Context, id string, out any) error

	// Delete removes the document; rev must be its current revision.
	Delete(ctx context.Context, id, rev string) error

	// Upsert writes without explicit revision management: one direct
	// attempt, then at most one merge-and-retry after a conflict.
	Upsert(ctx context.Context, id string, doc any) (string, error)

	// Query runs a view.
	Query(ctx context.Context, designDoc, view string, params Params) (*ViewResult, error)

	// CreateDesignDocument writes a design document idempotently: re-running
	// index setup at startup never fails on a stale revision.
	CreateDesignDocument(ctx context.Context, dd DesignDocument) error
}

// upsert is the shared two-state write. State one is a direct Put. On
// conflict, state two re-fetches the current document, merges the caller's
// fields over it (caller wins per overlapping field), and retries exactly
// once. A single bounded retry is deliberate: unbounded retries would mask
// concurrent writers thrashing the same key as normal operation. When the
// document does not exist at all, the write degrades to plain creation.
func upsert(ctx context.Context, s Store, id string, doc any) (string, error) {
	fields, err := toMap(doc)
	if err != nil {
		return "", err
	}

	rev, err := s.Put(ctx, id, doc)
	if err == nil {
		return rev, nil
	}
	if !errors.Is(err, common.ErrConflict) {
		return "", err
	}

	return retryAfterConflict(ctx, s, id, fields)
}

// retryAfterConflict is the second (and last) upsert state.
func retryAfterConflict(ctx context.Context, s Store, id string, fields map[string]any) (string, error) {
	// Retries are bounded by attempt count, not time; still honor the
	// caller's deadline before issuing more I/O.
	if err := ctx.Err(); err != nil {
		return "", err
	}

	current := map[string]any{}
	switch err := s.Get(ctx, id, &current); {
	case errors.Is(err, common.ErrNotFound):
		// Conflicted against a document that is gone now (stale embedded
		// revision on a fresh id): plain creation.
		delete(fields, "_rev")
		return s.Put(ctx, id, fields)
	case err != nil:
		return "", err
	}

	merged := make(map[string]any, len(current)+len(fields))
	for k, v := range current {
		merged[k] = v
	}
	for k, v := range fields {
		if k == "_rev" || k == "_id" {
			continue
		}
		merged[k] = v
	}
	merged["_id"] = id
	merged["_rev"], _ = current["_rev"].(string)

	return s.Put(ctx, id, merged)
}

func toMap(doc any) (map[string]any, error) {
	if m, ok := doc.(map[string]any); ok {
		out := make(map[string]any, len(m))
		for k, v := range m {
			out[k] = v
		}
		return out, nil
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encoding document: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("decoding document: %w", err)
	}
	return m, nil
}
