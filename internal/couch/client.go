package couch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/inkpresscms/inkpress/internal/common"
	"github.com/inkpresscms/inkpress/internal/logging"
)

// Client talks to a CouchDB-compatible server over HTTP/JSON:
//
//	PUT    /{db}/{id}                                  -> {id, rev}
//	GET    /{db}/{id}                                  -> document | 404
//	DELETE /{db}/{id}?rev=X
//	GET    /{db}/_design/{doc}/_view/{view}?key=...    -> {total_rows, offset, rows}
//
// Basic-auth credentials are attached when configured. The underlying
// http.Client is constructed once at process startup and shared read-only
// by all request workers.
type Client struct {
	baseURL  string
	db       string
	username string
	password string
	hc       *http.Client
	logger   logging.Logger
}

// NewClient validates the base URL and returns a ready client.
func NewClient(baseURL, db, username, password string, l logging.Logger) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid document store url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid document store url scheme %q", u.Scheme)
	}
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		db:       db,
		username: username,
		password: password,
		hc:       &http.Client{Timeout: 30 * time.Second},
		logger:   l.With("module", "couch"),
	}, nil
}

// Put creates or updates a document. The marshaled document must embed the
// current revision when updating; a stale revision yields ErrConflict.
func (c *Client) Put(ctx context.Context, id string, doc any) (string, error) {
	body, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("encoding document %s: %w", id, err)
	}

	var reply struct {
		ID  string `json:"id"`
		Rev string `json:"rev"`
	}
	if err := c.do(ctx, http.MethodPut, c.docPath(id), body, &reply); err != nil {
		return "", err
	}
	return reply.Rev, nil
}

// Get reads a document into out. Missing documents yield ErrNotFound.
func (c *Client) Get(ctx context.Context, id string, out any) error {
	return c.do(ctx, http.MethodGet, c.docPath(id), nil, out)
}

// Delete removes a document at the given revision.
func (c *Client) Delete(ctx context.Context, id, rev string) error {
	return c.do(ctx, http.MethodDelete, c.docPath(id)+"?rev="+url.QueryEscape(rev), nil, nil)
}

// Upsert runs the bounded write-merge-retry described on Store.
func (c *Client) Upsert(ctx context.Context, id string, doc any) (string, error) {
	return upsert(ctx, c, id, doc)
}

// Query runs a view and returns the rows envelope.
func (c *Client) Query(ctx context.Context, designDoc, view string, params Params) (*ViewResult, error) {
	path := fmt.Sprintf("/%s/_design/%s/_view/%s", c.db, url.PathEscape(designDoc), url.PathEscape(view))
	if q := encodeParams(params); q != "" {
		path += "?" + q
	}

	var result ViewResult
	if err := c.do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CreateDesignDocument writes dd, merging in the current revision when the
// target already exists so startup index setup is idempotent.
func (c *Client) CreateDesignDocument(ctx context.Context, dd DesignDocument) error {
	var current struct {
		Rev string `json:"_rev"`
	}
	switch err := c.Get(ctx, dd.ID, &current); {
	case err == nil:
		dd.Rev = current.Rev
	case errors.Is(err, common.ErrNotFound):
		dd.Rev = ""
	default:
		return err
	}

	_, err := c.Put(ctx, dd.ID, dd)
	return err
}

func (c *Client) docPath(id string) string {
	// Design document ids keep their "_design/" prefix unescaped.
	if name, ok := strings.CutPrefix(id, "_design/"); ok {
		return fmt.Sprintf("/%s/_design/%s", c.db, url.PathEscape(name))
	}
	return fmt.Sprintf("/%s/%s", c.db, url.PathEscape(id))
}

func (c *Client) do(ctx context.Context, method, path string, body []byte, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%w: building request: %v", common.ErrInternal, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		// Keep caller-driven cancellation visible instead of burying it in
		// the internal bucket.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("%w: %s %s: %v", common.ErrInternal, method, path, err)
	}
	defer resp.Body.Close()

	if err := classifyStatus(resp.StatusCode); err != nil {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return err
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decoding response: %v", common.ErrInternal, err)
	}
	return nil
}

// classifyStatus translates transport status codes into the shared error
// taxonomy at the adapter boundary. Nothing above this layer interprets raw
// HTTP statuses.
func classifyStatus(code int) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusNotFound:
		return common.ErrNotFound
	case code == http.StatusConflict:
		return common.ErrConflict
	default:
		return fmt.Errorf("%w: unexpected status %d", common.ErrInternal, code)
	}
}

func encodeParams(params Params) string {
	if len(params) == 0 {
		return ""
	}
	q := url.Values{}
	for k, v := range params {
		switch k {
		case "key", "startkey", "endkey":
			// Key-like values are JSON on the wire.
			b, err := json.Marshal(v)
			if err != nil {
				continue
			}
			q.Set(k, string(b))
		default:
			q.Set(k, fmt.Sprintf("%v", v))
		}
	}
	return q.Encode()
}
