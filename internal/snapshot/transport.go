package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
)

const apiPrefix = "/api/"

// Transport serves requests for the REST API from a static snapshot. Requests
// under /api/ are rewritten to the matching collection file and single-item
// lookups are answered by filtering the whole collection. Every other request
// goes to Base unchanged.
type Transport struct {
	Base http.RoundTripper

	cache *fileCache
}

// TransportOption configures a Transport.
type TransportOption func(*Transport)

// WithCache keeps decoded collection files in memory after the first fetch.
func WithCache() TransportOption {
	return func(t *Transport) { t.cache = &fileCache{items: make(map[string][]json.RawMessage)} }
}

// NewTransport wraps base, which must be able to fetch the snapshot's
// /api/<name>.json files. A nil base means http.DefaultTransport.
func NewTransport(base http.RoundTripper, opts ...TransportOption) *Transport {
	t := &Transport{Base: base}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// NewFileTransport serves the snapshot exported to dir.
func NewFileTransport(dir string, opts ...TransportOption) *Transport {
	return NewTransport(http.NewFileTransport(http.Dir(dir)), opts...)
}

func (t *Transport) base() http.RoundTripper {
	if t.Base == nil {
		return http.DefaultTransport
	}
	return t.Base
}

// RoundTrip implements http.RoundTripper.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if !strings.HasPrefix(req.URL.Path, apiPrefix) {
		return t.base().RoundTrip(req)
	}
	if req.Method != http.MethodGet && req.Method != http.MethodHead {
		return jsonResponse(req, http.StatusMethodNotAllowed, []byte(`{"message":"Static snapshot is read-only"}`)), nil
	}

	endpoint := strings.TrimPrefix(req.URL.Path, apiPrefix)
	if endpoint == "stoves/featured" {
		return t.serveFile(req, "stoves-featured")
	}
	if rest, ok := strings.CutPrefix(endpoint, "stoves/"); ok {
		if !singleSegment(rest) {
			return notFound(req), nil
		}
		return t.findStove(req, rest)
	}
	if rest, ok := strings.CutPrefix(endpoint, "blog/"); ok {
		if !singleSegment(rest) {
			return notFound(req), nil
		}
		return t.findPost(req, rest)
	}
	// stoves-featured is only reachable as stoves/featured.
	if !singleSegment(endpoint) || endpoint == "stoves-featured" {
		return notFound(req), nil
	}
	return t.serveFile(req, endpoint)
}

// singleSegment reports whether s is one non-empty path segment.
func singleSegment(s string) bool {
	return s != "" && !strings.Contains(s, "/")
}

// serveFile answers with the named collection file. A missing file gets the
// same JSON 404 the live API sends for unknown paths.
func (t *Transport) serveFile(req *http.Request, name string) (*http.Response, error) {
	resp, err := t.base().RoundTrip(rewrite(req, FilePath(name)))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusNotFound {
		resp.Body.Close()
		return notFound(req), nil
	}
	return resp, nil
}

func notFound(req *http.Request) *http.Response {
	return jsonResponse(req, http.StatusNotFound, []byte(`{"message":"Not found"}`))
}

// FilePath returns the snapshot path serving the named collection.
func FilePath(name string) string {
	return apiPrefix + name + ".json"
}

func (t *Transport) findStove(req *http.Request, rawID string) (*http.Response, error) {
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return jsonResponse(req, http.StatusBadRequest, []byte(`{"message":"Invalid ID format"}`)), nil
	}
	items, err := t.collection(req, "stoves")
	if err != nil {
		return nil, err
	}
	return find(req, items, func(k itemKey) bool { return k.ID == id })
}

func (t *Transport) findPost(req *http.Request, slug string) (*http.Response, error) {
	items, err := t.collection(req, "blog")
	if err != nil {
		return nil, err
	}
	return find(req, items, func(k itemKey) bool { return k.Slug == slug })
}

// itemKey holds the fields single-item lookups filter on.
type itemKey struct {
	ID   int64  `json:"id"`
	Slug string `json:"slug"`
}

// find answers with the first matching item, or a 404 whose body is null.
func find(req *http.Request, items []json.RawMessage, match func(itemKey) bool) (*http.Response, error) {
	for _, raw := range items {
		var key itemKey
		if err := json.Unmarshal(raw, &key); err != nil {
			return nil, fmt.Errorf("decode snapshot item: %w", err)
		}
		if match(key) {
			return jsonResponse(req, http.StatusOK, raw), nil
		}
	}
	return jsonResponse(req, http.StatusNotFound, []byte("null")), nil
}

// collection fetches and decodes a collection file through the base transport.
func (t *Transport) collection(req *http.Request, name string) ([]json.RawMessage, error) {
	path := FilePath(name)
	if items, ok := t.cache.get(path); ok {
		return items, nil
	}

	resp, err := t.base().RoundTrip(rewrite(req, path))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: %s", path, resp.Status)
	}

	var items []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	t.cache.put(path, items)
	return items, nil
}

// rewrite returns a body-less GET for path on the same host as req.
func rewrite(req *http.Request, path string) *http.Request {
	out := req.Clone(req.Context())
	out.Method = http.MethodGet
	out.URL.Path = path
	out.URL.RawPath = ""
	out.URL.RawQuery = ""
	out.Body = nil
	out.GetBody = nil
	out.ContentLength = 0
	return out
}

func jsonResponse(req *http.Request, status int, body []byte) *http.Response {
	return &http.Response{
		Status:        fmt.Sprintf("%d %s", status, http.StatusText(status)),
		StatusCode:    status,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        http.Header{"Content-Type": {"application/json"}},
		Body:          io.NopCloser(bytes.NewReader(body)),
		ContentLength: int64(len(body)),
		Request:       req,
	}
}

// fileCache memoizes decoded collection files. A nil cache stores nothing.
type fileCache struct {
	mu    sync.Mutex
	items map[string][]json.RawMessage
}

func (c *fileCache) get(path string) ([]json.RawMessage, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	items, ok := c.items[path]
	return items, ok
}

func (c *fileCache) put(path string, items []json.RawMessage) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[path] = items
}
