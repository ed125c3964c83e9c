// Package repomanager vends the repository set for a chosen storage backend
// and hides the backend behind one interface: services ask the manager for
// repositories and wrap multi-step writes in Do without knowing whether a
// document store or a relational database sits underneath.
package repomanager

import (
	"context"

	"github.com/inkpresscms/inkpress/internal/server/repositories/media"
	"github.com/inkpresscms/inkpress/internal/server/repositories/pages"
	"github.com/inkpresscms/inkpress/internal/server/repositories/posts"
	"github.com/inkpresscms/inkpress/internal/server/repositories/submissions"
)

type RepositoryManager interface {
	// Init prepares backend state: design documents for the document store,
	// schema migrations for the relational store. Safe to run on every start.
	Init(ctx context.Context) error

	Pages() pages.Repository
	Posts() posts.Repository
	Media() media.Repository
	Submissions() submissions.Repository

	// Do runs fn as one atomic group where the backend supports it. The
	// relational manager opens a transaction; the document-store manager runs
	// fn directly, since each document write is already atomic there.
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
