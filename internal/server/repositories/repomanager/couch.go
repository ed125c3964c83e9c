package repomanager

import (
	"context"

	"github.com/inkpresscms/inkpress/internal/couch"
	"github.com/inkpresscms/inkpress/internal/server/repositories/media"
	"github.com/inkpresscms/inkpress/internal/server/repositories/pages"
	"github.com/inkpresscms/inkpress/internal/server/repositories/posts"
	"github.com/inkpresscms/inkpress/internal/server/repositories/submissions"
	"github.com/inkpresscms/inkpress/internal/views"
)

// CouchRepositoryManager vends document-store-backed repositories sharing
// one store handle.
type CouchRepositoryManager struct {
	store       couch.Store
	registry    *views.Registry
	pages       pages.Repository
	posts       posts.Repository
	media       media.Repository
	submissions submissions.Repository
}

// NewCouchRepositoryManager constructs the manager over the given store.
func NewCouchRepositoryManager(store couch.Store, registry *views.Registry) *CouchRepositoryManager {
	return &CouchRepositoryManager{
		store:       store,
		registry:    registry,
		pages:       pages.NewCouchRepository(store),
		posts:       posts.NewCouchRepository(store),
		media:       media.NewCouchRepository(store),
		submissions: submissions.NewCouchRepository(store),
	}
}

// Init publishes the design documents derived from the registry.
func (m *CouchRepositoryManager) Init(ctx context.Context) error {
	return couch.EnsureViews(ctx, m.store, m.registry)
}

func (m *CouchRepositoryManager) Pages() pages.Repository             { return m.pages }
func (m *CouchRepositoryManager) Posts() posts.Repository             { return m.posts }
func (m *CouchRepositoryManager) Media() media.Repository             { return m.media }
func (m *CouchRepositoryManager) Submissions() submissions.Repository { return m.submissions }

// Do runs fn directly. Document writes are individually atomic and the
// store has no multi-document transactions, so there is nothing to open or
// commit here.
func (m *CouchRepositoryManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
