package couch

import (
	"context"

	"github.com/inkpresscms/inkpress/internal/views"
)

// DesignDocuments renders the native view registry into the design
// documents deployed to the store.
func DesignDocuments(reg *views.Registry) []DesignDocument {
	var out []DesignDocument
	for _, name := range reg.DesignDocs() {
		dd := DesignDocument{
			ID:       "_design/" + name,
			Language: "javascript",
			Views:    map[string]ViewDefinition{},
		}
		for _, v := range reg.ByDesignDoc(name) {
			dd.Views[v.Name] = ViewDefinition{Map: v.Source, Reduce: v.Reduce}
		}
		out = append(out, dd)
	}
	return out
}

// EnsureViews writes every design document once at startup. The definitions
// are treated as immutable configuration afterwards; re-running is a no-op
// thanks to the idempotent create.
func EnsureViews(ctx context.Context, s Store, reg *views.Registry) error {
	for _, dd := range DesignDocuments(reg) {
		if err := s.CreateDesignDocument(ctx, dd); err != nil {
			return err
		}
	}
	return nil
}
