// Package views declares every queryable projection over content documents
// as a view: a deterministic, pure mapping from one document to zero or more
// (key, value) emissions, optionally reduced by a built-in aggregator.
//
// View logic is native Go registered in a lookup table keyed by
// (design document, view name). Each view also carries the JavaScript
// source deployed to the document store, generated to match the native
// function; the Go function is the single source of truth for semantics and
// is what the in-memory store and the tests execute.
package views

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Emit is the callback a map function uses to produce index rows.
type Emit func(key string, value any)

// MapFunc maps one decoded document to zero or more emissions. It must be
// pure: no clocks, no randomness, no I/O.
type MapFunc func(doc map[string]any, emit Emit)

// Built-in reduce functions.
const (
	ReduceSum = "_sum"
)

// View is one declarative secondary index.
type View struct {
	DesignDoc string
	Name      string
	Map       MapFunc
	Reduce    string // "" or a built-in reduce
	Source    string // JavaScript rendering for the document store
}

// Registry is the immutable lookup table of all views, populated once at
// init and treated as configuration thereafter.
type Registry struct {
	views map[string]View
}

func key(designDoc, name string) string { return designDoc + "/" + name }

// Lookup returns the view registered under (designDoc, name).
func (r *Registry) Lookup(designDoc, name string) (View, bool) {
	v, ok := r.views[key(designDoc, name)]
	return v, ok
}

// ByDesignDoc returns all views of one design document, sorted by name.
func (r *Registry) ByDesignDoc(designDoc string) []View {
	var out []View
	for _, v := range r.views {
		if v.DesignDoc == designDoc {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// DesignDocs returns the distinct design document names, sorted.
func (r *Registry) DesignDocs() []string {
	seen := map[string]struct{}{}
	for _, v := range r.views {
		seen[v.DesignDoc] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for d := range seen {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

// Design document names.
const (
	DesignPages       = "pages"
	DesignPosts       = "posts"
	DesignMedia       = "media"
	DesignSubmissions = "submissions"
)

// View names.
const (
	ViewBySlug     = "by_slug"
	ViewByStatus   = "by_status"
	ViewByAuthor   = "by_author"
	ViewByCategory = "by_category"
	ViewByTag      = "by_tag"
	ViewPublished  = "published"
	ViewSearch     = "search"
	ViewCategories = "categories"
	ViewTags       = "tags"
	ViewByFilename = "by_filename"
)

// Default returns the registry with every view the repositories query.
func Default() *Registry {
	r := &Registry{views: map[string]View{}}
	for _, v := range all() {
		r.views[key(v.DesignDoc, v.Name)] = v
	}
	return r
}

func all() []View {
	return []View{
		{
			DesignDoc: DesignPages, Name: ViewBySlug,
			Map:    fieldMap(typePage, "slug"),
			Source: jsFieldMap(typePage, "slug"),
		},
		{
			DesignDoc: DesignPages, Name: ViewByStatus,
			Map:    fieldMap(typePage, "status"),
			Source: jsFieldMap(typePage, "status"),
		},
		{
			DesignDoc: DesignPosts, Name: ViewBySlug,
			Map:    fieldMap(typeBlogPost, "slug"),
			Source: jsFieldMap(typeBlogPost, "slug"),
		},
		{
			DesignDoc: DesignPosts, Name: ViewByStatus,
			Map:    fieldMap(typeBlogPost, "status"),
			Source: jsFieldMap(typeBlogPost, "status"),
		},
		{
			DesignDoc: DesignPosts, Name: ViewByAuthor,
			Map:    fieldMap(typeBlogPost, "author"),
			Source: jsFieldMap(typeBlogPost, "author"),
		},
		{
			DesignDoc: DesignPosts, Name: ViewByCategory,
			Map:    multiFieldMap(typeBlogPost, "categories"),
			Source: jsMultiFieldMap(typeBlogPost, "categories"),
		},
		{
			DesignDoc: DesignPosts, Name: ViewByTag,
			Map:    multiFieldMap(typeBlogPost, "tags"),
			Source: jsMultiFieldMap(typeBlogPost, "tags"),
		},
		{
			DesignDoc: DesignPosts, Name: ViewPublished,
			Map:    publishedMap,
			Source: publishedSource,
		},
		{
			DesignDoc: DesignPosts, Name: ViewSearch,
			Map:    searchMap,
			Source: searchSource,
		},
		{
			DesignDoc: DesignPosts, Name: ViewCategories,
			Map:    counterMap("categories"),
			Reduce: ReduceSum,
			Source: jsCounterMap("categories"),
		},
		{
			DesignDoc: DesignPosts, Name: ViewTags,
			Map:    counterMap("tags"),
			Reduce: ReduceSum,
			Source: jsCounterMap("tags"),
		},
		{
			DesignDoc: DesignMedia, Name: ViewByFilename,
			Map:    fieldMap(typeMedia, "filename"),
			Source: jsFieldMap(typeMedia, "filename"),
		},
		{
			DesignDoc: DesignSubmissions, Name: ViewByStatus,
			Map:    fieldMap(typeSubmission, "status"),
			Source: jsFieldMap(typeSubmission, "status"),
		},
	}
}

// Discriminator values, mirrored from models to keep this package free of
// upward imports.
const (
	typePage       = "page"
	typeBlogPost   = "blog_post"
	typeMedia      = "media"
	typeSubmission = "contact_submission"
	published      = "published"
)

// fieldMap emits one row per matching document, keyed by a scalar field.
func fieldMap(docType, field string) MapFunc {
	return func(doc map[string]any, emit Emit) {
		if docStr(doc, "type") != docType {
			return
		}
		if v := docStr(doc, field); v != "" {
			emit(v, doc)
		}
	}
}

// multiFieldMap emits one row per element of a multi-valued field: a post
// with three tags produces three rows, each carrying the full document.
func multiFieldMap(docType, field string) MapFunc {
	return func(doc map[string]any, emit Emit) {
		if docStr(doc, "type") != docType {
			return
		}
		for _, v := range docStrs(doc, field) {
			emit(v, doc)
		}
	}
}

// publishedMap emits posts whose status is published and whose published_at
// parses as RFC3339, keyed by the publish time. Gating against "now" happens
// at query time via an endkey, keeping the map function pure; RFC3339 UTC
// keys sort chronologically.
func publishedMap(doc map[string]any, emit Emit) {
	if docStr(doc, "type") != typeBlogPost || docStr(doc, "status") != published {
		return
	}
	raw := docStr(doc, "published_at")
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return
	}
	emit(t.UTC().Format(time.RFC3339), doc)
}

const publishedSource = `function (doc) {
  if (doc.type !== 'blog_post' || doc.status !== 'published' || !doc.published_at) return;
  var t = new Date(doc.published_at);
  if (isNaN(t.getTime())) return;
  emit(t.toISOString().replace(/\.\d{3}Z$/, 'Z'), doc);
}`

// searchMap builds a crude inverted index: lower-cased title, excerpt, meta
// description, categories, and tags are split on whitespace and each
// distinct token longer than two characters yields one row. Queries look up
// exact tokens, not substrings or stemmed forms; that precision limit is a
// known property of this index, not something to fix here.
func searchMap(doc map[string]any, emit Emit) {
	if docStr(doc, "type") != typeBlogPost {
		return
	}
	parts := []string{
		docStr(doc, "title"),
		docStr(doc, "excerpt"),
		docStr(doc, "meta_description"),
	}
	parts = append(parts, docStrs(doc, "categories")...)
	parts = append(parts, docStrs(doc, "tags")...)
	for _, tok := range Tokenize(parts...) {
		emit(tok, doc)
	}
}

const searchSource = `function (doc) {
  if (doc.type !== 'blog_post') return;
  var text = [doc.title, doc.excerpt, doc.meta_description]
    .concat(doc.categories || [], doc.tags || [])
    .join(' ').toLowerCase();
  var seen = {};
  text.split(/\s+/).forEach(function (tok) {
    if (tok.length > 2 && !seen[tok]) { seen[tok] = true; emit(tok, doc); }
  });
}`

// counterMap emits (element, 1) per published post per element of field; the
// sum reduce turns that into a global frequency table for faceted navigation
// without a full scan.
func counterMap(field string) MapFunc {
	return func(doc map[string]any, emit Emit) {
		if docStr(doc, "type") != typeBlogPost || docStr(doc, "status") != published {
			return
		}
		for _, v := range docStrs(doc, field) {
			emit(v, 1)
		}
	}
}

func jsCounterMap(field string) string {
	return fmt.Sprintf(`function (doc) {
  if (doc.type !== 'blog_post' || doc.status !== 'published') return;
  (doc.%s || []).forEach(function (v) { emit(v, 1); });
}`, field)
}

func jsFieldMap(docType, field string) string {
	return fmt.Sprintf(`function (doc) {
  if (doc.type === '%s' && doc.%s) emit(doc.%s, doc);
}`, docType, field, field)
}

func jsMultiFieldMap(docType, field string) string {
	return fmt.Sprintf(`function (doc) {
  if (doc.type !== '%s') return;
  (doc.%s || []).forEach(function (v) { emit(v, doc); });
}`, docType, field)
}

// Tokenize lower-cases and whitespace-splits the given parts, returning the
// distinct tokens longer than two characters in first-seen order. The
// Postgres adapter reuses this to materialize its search column so both
// back-ends index identically.
func Tokenize(parts ...string) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, tok := range strings.Fields(strings.ToLower(strings.Join(parts, " "))) {
		if len(tok) <= 2 {
			continue
		}
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		out = append(out, tok)
	}
	return out
}

func docStr(doc map[string]any, field string) string {
	s, _ := doc[field].(string)
	return s
}

func docStrs(doc map[string]any, field string) []string {
	raw, ok := doc[field].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
