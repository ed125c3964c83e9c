package couch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/inkpresscms/inkpress/internal/common"
	"github.com/inkpresscms/inkpress/internal/views"
)

// MemStore is an in-process Store that evaluates the native view registry
// directly. It backs repository tests and local runs without a document
// store server, and enforces the same revision-token semantics as the wire
// client. Safe for concurrent use.
type MemStore struct {
	mu       sync.RWMutex
	docs     map[string]map[string]any
	registry *views.Registry
}

// NewMemStore returns an empty store evaluating reg.
func NewMemStore(reg *views.Registry) *MemStore {
	return &MemStore{
		docs:     map[string]map[string]any{},
		registry: reg,
	}
}

// Put creates or updates a document, enforcing optimistic concurrency: an
// update must present the stored revision, and a revision presented for a
// missing document is stale by definition.
func (m *MemStore) Put(ctx context.Context, id string, doc any) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fields, err := toMap(doc)
	if err != nil {
		return "", err
	}
	providedRev, _ := fields["_rev"].(string)

	m.mu.Lock()
	defer m.mu.Unlock()

	current, exists := m.docs[id]
	if exists {
		currentRev, _ := current["_rev"].(string)
		if providedRev != currentRev {
			return "", common.ErrConflict
		}
	} else if providedRev != "" {
		return "", common.ErrConflict
	}

	rev := nextRev(current)
	fields["_id"] = id
	fields["_rev"] = rev
	m.docs[id] = fields
	return rev, nil
}

// Get reads a document into out.
func (m *MemStore) Get(ctx context.Context, id string, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.RLock()
	doc, ok := m.docs[id]
	m.mu.RUnlock()
	if !ok {
		return common.ErrNotFound
	}

	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: encoding document: %v", common.ErrInternal, err)
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("%w: decoding document: %v", common.ErrInternal, err)
	}
	return nil
}

// Delete removes a document at the given revision.
func (m *MemStore) Delete(ctx context.Context, id, rev string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	doc, ok := m.docs[id]
	if !ok {
		return common.ErrNotFound
	}
	if currentRev, _ := doc["_rev"].(string); currentRev != rev {
		return common.ErrConflict
	}
	delete(m.docs, id)
	return nil
}

// Upsert runs the bounded write-merge-retry described on Store.
func (m *MemStore) Upsert(ctx context.Context, id string, doc any) (string, error) {
	return upsert(ctx, m, id, doc)
}

// CreateDesignDocument stores dd idempotently, like the wire client.
func (m *MemStore) CreateDesignDocument(ctx context.Context, dd DesignDocument) error {
	var current struct {
		Rev string `json:"_rev"`
	}
	switch err := m.Get(ctx, dd.ID, &current); {
	case err == nil:
		dd.Rev = current.Rev
	case errors.Is(err, common.ErrNotFound):
		dd.Rev = ""
	default:
		return err
	}

	_, err := m.Put(ctx, dd.ID, dd)
	return err
}

// Query evaluates the registered native view over all documents, then
// applies key filters, ordering, reduce, skip, and limit the way the wire
// store would.
func (m *MemStore) Query(ctx context.Context, designDoc, view string, params Params) (*ViewResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	v, ok := m.registry.Lookup(designDoc, view)
	if !ok {
		return nil, common.ErrNotFound
	}

	m.mu.RLock()
	ids := make([]string, 0, len(m.docs))
	for id := range m.docs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var rows []emission
	for _, id := range ids {
		doc := m.docs[id]
		v.Map(doc, func(key string, value any) {
			rows = append(rows, emission{id: id, key: key, value: value})
		})
	}
	m.mu.RUnlock()

	descending := boolParam(params, "descending", false)
	rows = filterByKey(rows, params, descending)
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].key != rows[j].key {
			if descending {
				return rows[i].key > rows[j].key
			}
			return rows[i].key < rows[j].key
		}
		return rows[i].id < rows[j].id
	})

	if v.Reduce != "" && boolParam(params, "reduce", true) {
		return reduceRows(rows, boolParam(params, "group", false))
	}

	total := len(rows)
	skip := intParam(params, "skip", 0)
	if skip > len(rows) {
		skip = len(rows)
	}
	rows = rows[skip:]
	if limit := intParam(params, "limit", -1); limit >= 0 && limit < len(rows) {
		rows = rows[:limit]
	}

	result := &ViewResult{TotalRows: total, Offset: skip, Rows: make([]Row, 0, len(rows))}
	for _, e := range rows {
		raw, err := json.Marshal(e.value)
		if err != nil {
			return nil, fmt.Errorf("%w: encoding row value: %v", common.ErrInternal, err)
		}
		result.Rows = append(result.Rows, Row{ID: e.id, Key: e.key, Value: raw})
	}
	return result, nil
}

// emission is one raw map-phase row before wire encoding.
type emission struct {
	id    string
	key   string
	value any
}

func filterByKey(rows []emission, params Params, descending bool) []emission {
	exact, hasExact := stringParam(params, "key")
	start, hasStart := stringParam(params, "startkey")
	end, hasEnd := stringParam(params, "endkey")
	if !hasExact && !hasStart && !hasEnd {
		return rows
	}

	// With descending=true the start key is the high end of the range,
	// matching the wire store's behavior.
	if descending {
		start, end = end, start
		hasStart, hasEnd = hasEnd, hasStart
	}

	out := make([]emission, 0, len(rows))
	for _, e := range rows {
		if hasExact && e.key != exact {
			continue
		}
		if hasStart && e.key < start {
			continue
		}
		if hasEnd && e.key > end {
			continue
		}
		out = append(out, e)
	}
	return out
}

// reduceRows applies the _sum reduce: per distinct key when grouped, or one
// total row otherwise.
func reduceRows(rows []emission, group bool) (*ViewResult, error) {
	sums := map[string]int64{}
	order := []string{}
	var total int64
	for _, e := range rows {
		n := int64(1)
		switch value := e.value.(type) {
		case int:
			n = int64(value)
		case int64:
			n = value
		case float64:
			n = int64(value)
		}
		if _, ok := sums[e.key]; !ok {
			order = append(order, e.key)
		}
		sums[e.key] += n
		total += n
	}

	result := &ViewResult{}
	if !group {
		raw, err := json.Marshal(total)
		if err != nil {
			return nil, fmt.Errorf("%w: encoding reduce value: %v", common.ErrInternal, err)
		}
		result.Rows = []Row{{Key: nil, Value: raw}}
		return result, nil
	}

	sort.Strings(order)
	for _, k := range order {
		raw, err := json.Marshal(sums[k])
		if err != nil {
			return nil, fmt.Errorf("%w: encoding reduce value: %v", common.ErrInternal, err)
		}
		result.Rows = append(result.Rows, Row{Key: k, Value: raw})
	}
	return result, nil
}

func stringParam(params Params, name string) (string, bool) {
	v, ok := params[name]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func boolParam(params Params, name string, def bool) bool {
	v, ok := params[name]
	if !ok {
		return def
	}
	switch value := v.(type) {
	case bool:
		return value
	case string:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return def
		}
		return b
	default:
		return def
	}
}

func intParam(params Params, name string, def int) int {
	v, ok := params[name]
	if !ok {
		return def
	}
	switch value := v.(type) {
	case int:
		return value
	case float64:
		return int(value)
	case string:
		n, err := strconv.Atoi(value)
		if err != nil {
			return def
		}
		return n
	default:
		return def
	}
}

// nextRev produces a fresh opaque revision token: a monotonic sequence
// number joined with a random suffix, so every successful write yields a
// token distinct from all prior ones for that id.
func nextRev(current map[string]any) string {
	seq := 1
	if current != nil {
		if rev, _ := current["_rev"].(string); rev != "" {
			if n, _, found := strings.Cut(rev, "-"); found {
				if parsed, err := strconv.Atoi(n); err == nil {
					seq = parsed + 1
				}
			}
		}
	}
	return fmt.Sprintf("%d-%s", seq, strings.ReplaceAll(uuid.NewString(), "-", "")[:12])
}
