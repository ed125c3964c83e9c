package couch

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkpresscms/inkpress/internal/common"
	"github.com/inkpresscms/inkpress/internal/views"
)

func newMemStore() *MemStore {
	return NewMemStore(views.Default())
}

func TestMemStore_RevisionMonotonicity(t *testing.T) {
	ctx := context.Background()
	s := newMemStore()

	seen := map[string]struct{}{}
	doc := map[string]any{"type": "page", "slug": "about"}

	rev, err := s.Put(ctx, "p1", doc)
	require.NoError(t, err)
	seen[rev] = struct{}{}

	for i := 0; i < 5; i++ {
		doc["_rev"] = rev
		doc["title"] = time.Now().String()
		rev, err = s.Put(ctx, "p1", doc)
		require.NoError(t, err)
		_, dup := seen[rev]
		require.False(t, dup, "revision token reused")
		seen[rev] = struct{}{}
	}
}

func TestMemStore_StalePutRejectedWithoutCorruption(t *testing.T) {
	ctx := context.Background()
	s := newMemStore()

	rev1, err := s.Put(ctx, "p1", map[string]any{"type": "page", "slug": "about", "title": "v1"})
	require.NoError(t, err)
	_, err = s.Put(ctx, "p1", map[string]any{"_rev": rev1, "type": "page", "slug": "about", "title": "v2"})
	require.NoError(t, err)

	// A write presenting the superseded revision must fail...
	_, err = s.Put(ctx, "p1", map[string]any{"_rev": rev1, "type": "page", "slug": "about", "title": "intruder"})
	require.ErrorIs(t, err, common.ErrConflict)

	// ...and leave the stored document untouched.
	var got map[string]any
	require.NoError(t, s.Get(ctx, "p1", &got))
	assert.Equal(t, "v2", got["title"])
}

func TestMemStore_PutWithRevOnMissingDocConflicts(t *testing.T) {
	_, err := newMemStore().Put(context.Background(), "ghost", map[string]any{"_rev": "1-abc"})
	require.ErrorIs(t, err, common.ErrConflict)
}

func TestMemStore_GetMissing(t *testing.T) {
	var out map[string]any
	err := newMemStore().Get(context.Background(), "nope", &out)
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestMemStore_Delete(t *testing.T) {
	ctx := context.Background()
	s := newMemStore()

	rev, err := s.Put(ctx, "p1", map[string]any{"type": "page"})
	require.NoError(t, err)

	require.ErrorIs(t, s.Delete(ctx, "p1", "1-stale"), common.ErrConflict)
	require.ErrorIs(t, s.Delete(ctx, "missing", rev), common.ErrNotFound)
	require.NoError(t, s.Delete(ctx, "p1", rev))
	require.ErrorIs(t, s.Get(ctx, "p1", &map[string]any{}), common.ErrNotFound)
}

func TestMemStore_UpsertConvergence(t *testing.T) {
	ctx := context.Background()
	s := newMemStore()

	// Two writers with disjoint field sets race on a fresh id: the loser's
	// single retry suffices and the final document holds both field sets.
	_, err := s.Upsert(ctx, "post1", map[string]any{"type": "blog_post", "title": "first"})
	require.NoError(t, err)

	_, err = s.Upsert(ctx, "post1", map[string]any{"type": "blog_post", "author": "ana"})
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, s.Get(ctx, "post1", &got))
	assert.Equal(t, "first", got["title"])
	assert.Equal(t, "ana", got["author"])
}

func TestMemStore_UpsertLastWriterWinsPerField(t *testing.T) {
	ctx := context.Background()
	s := newMemStore()

	_, err := s.Upsert(ctx, "post1", map[string]any{"type": "blog_post", "title": "old"})
	require.NoError(t, err)
	_, err = s.Upsert(ctx, "post1", map[string]any{"type": "blog_post", "title": "new"})
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, s.Get(ctx, "post1", &got))
	assert.Equal(t, "new", got["title"])
}

func TestMemStore_UpsertHonorsContextBeforeRetry(t *testing.T) {
	s := newMemStore()

	_, err := s.Upsert(context.Background(), "p1", map[string]any{"type": "page", "title": "v1"})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.Upsert(ctx, "p1", map[string]any{"type": "page", "title": "v2"})
	require.ErrorIs(t, err, context.Canceled)
}

func TestMemStore_DesignDocumentIdempotent(t *testing.T) {
	ctx := context.Background()
	s := newMemStore()

	dd := DesignDocument{
		ID:       "_design/posts",
		Language: "javascript",
		Views:    map[string]ViewDefinition{"by_slug": {Map: "function(doc){}"}},
	}

	require.NoError(t, s.CreateDesignDocument(ctx, dd))
	// Re-running index setup must not fail with a stale-revision conflict
	// and must leave the definitions unchanged.
	require.NoError(t, s.CreateDesignDocument(ctx, dd))

	var got DesignDocument
	require.NoError(t, s.Get(ctx, "_design/posts", &got))
	assert.Equal(t, dd.Views, got.Views)
}

func putPost(t *testing.T, s *MemStore, id string, doc map[string]any) {
	t.Helper()
	doc["type"] = "blog_post"
	_, err := s.Put(context.Background(), id, doc)
	require.NoError(t, err)
}

func TestMemStore_QueryByTag(t *testing.T) {
	ctx := context.Background()
	s := newMemStore()
	putPost(t, s, "post1", map[string]any{"slug": "one", "status": "draft", "tags": []any{"a", "b"}})

	result, err := s.Query(ctx, views.DesignPosts, views.ViewByTag, nil)
	require.NoError(t, err)
	require.Len(t, result.Rows, 2)
	assert.Equal(t, "a", result.Rows[0].Key)
	assert.Equal(t, "b", result.Rows[1].Key)
	assert.Contains(t, string(result.Rows[0].Value), `"slug":"one"`)
}

func TestMemStore_QueryExactKey(t *testing.T) {
	ctx := context.Background()
	s := newMemStore()
	putPost(t, s, "post1", map[string]any{"slug": "one", "status": "draft"})
	putPost(t, s, "post2", map[string]any{"slug": "two", "status": "draft"})

	result, err := s.Query(ctx, views.DesignPosts, views.ViewBySlug, Params{"key": "two"})
	require.NoError(t, err)
	require.Len(t, result.Rows, 1)
	assert.Equal(t, "post2", result.Rows[0].ID)
}

func TestMemStore_QueryPublishedGatesOnEndkey(t *testing.T) {
	ctx := context.Background()
	s := newMemStore()
	now := time.Now().UTC()

	putPost(t, s, "past", map[string]any{
		"slug": "past", "status": "published",
		"published_at": now.Add(-time.Hour).Format(time.RFC3339),
	})
	putPost(t, s, "future", map[string]any{
		"slug": "future", "status": "published",
		"published_at": now.Add(time.Hour).Format(time.RFC3339),
	})

	result, err := s.Query(ctx, views.DesignPosts, views.ViewPublished,
		Params{"endkey": now.Format(time.RFC3339)})
	require.NoError(t, err)
	require.Len(t, result.Rows, 1)
	assert.Equal(t, "past", result.Rows[0].ID)
}

func TestMemStore_QueryReduceCounters(t *testing.T) {
	ctx := context.Background()
	s := newMemStore()
	pub := time.Now().UTC().Add(-time.Hour).Format(time.RFC3339)

	putPost(t, s, "p1", map[string]any{"status": "published", "published_at": pub, "tags": []any{"go", "cms"}})
	putPost(t, s, "p2", map[string]any{"status": "published", "published_at": pub, "tags": []any{"go"}})
	putPost(t, s, "p3", map[string]any{"status": "draft", "tags": []any{"go"}})

	result, err := s.Query(ctx, views.DesignPosts, views.ViewTags, Params{"group": true})
	require.NoError(t, err)
	require.Len(t, result.Rows, 2)
	assert.Equal(t, "cms", result.Rows[0].Key)
	assert.JSONEq(t, "1", string(result.Rows[0].Value))
	assert.Equal(t, "go", result.Rows[1].Key)
	assert.JSONEq(t, "2", string(result.Rows[1].Value))
}

func TestMemStore_QuerySkipLimit(t *testing.T) {
	ctx := context.Background()
	s := newMemStore()
	putPost(t, s, "p1", map[string]any{"slug": "a", "status": "draft"})
	putPost(t, s, "p2", map[string]any{"slug": "b", "status": "draft"})
	putPost(t, s, "p3", map[string]any{"slug": "c", "status": "draft"})

	result, err := s.Query(ctx, views.DesignPosts, views.ViewBySlug, Params{"skip": 1, "limit": 1})
	require.NoError(t, err)
	assert.Equal(t, 3, result.TotalRows)
	assert.Equal(t, 1, result.Offset)
	require.Len(t, result.Rows, 1)
	assert.Equal(t, "b", result.Rows[0].Key)
}

func TestMemStore_QueryUnknownView(t *testing.T) {
	_, err := newMemStore().Query(context.Background(), views.DesignPosts, "nope", nil)
	require.ErrorIs(t, err, common.ErrNotFound)
}
