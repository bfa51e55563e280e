// Package apiclient implements catalog.Catalog against the site's REST API,
// either a live server or a static snapshot behind snapshot.Transport.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/boisserenc/atelier/internal/domain"
)

// Client calls the REST API rooted at baseURL.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client, typically to install a
// custom transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New creates a Client for the API at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) ListBlogPosts(ctx context.Context) ([]domain.BlogPost, error) {
	return list[domain.BlogPost](ctx, c, "/api/blog")
}

func (c *Client) GetBlogPostBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	var post domain.BlogPost
	if err := c.get(ctx, "/api/blog/"+url.PathEscape(slug), &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *Client) ListStoveProjects(ctx context.Context) ([]domain.StoveProject, error) {
	return list[domain.StoveProject](ctx, c, "/api/stoves")
}

func (c *Client) ListFeaturedStoveProjects(ctx context.Context) ([]domain.StoveProject, error) {
	return list[domain.StoveProject](ctx, c, "/api/stoves/featured")
}

func (c *Client) GetStoveProjectByID(ctx context.Context, rawID string) (*domain.StoveProject, error) {
	var project domain.StoveProject
	if err := c.get(ctx, "/api/stoves/"+url.PathEscape(rawID), &project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (c *Client) ListTestimonials(ctx context.Context) ([]domain.Testimonial, error) {
	return list[domain.Testimonial](ctx, c, "/api/testimonials")
}

func (c *Client) CreateContactMessage(ctx context.Context, in domain.InsertContactMessage) (*domain.ContactMessage, error) {
	payload, err := json.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("encode contact message: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/contact", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var msg domain.ContactMessage
	if err := c.do(req, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// list fetches a collection endpoint. A null body decodes to an empty slice.
func list[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	var items []T
	if err := c.get(ctx, path, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	return c.do(req, out)
}

// do sends req and decodes a successful JSON body into out. Error statuses
// map onto the domain failure kinds: 404 is ErrNotFound, 400 is an
// InputError carrying the server's message, anything else is ErrStoreFailure.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %w", domain.ErrStoreFailure, req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		msg := errorMessage(resp.Body)
		switch resp.StatusCode {
		case http.StatusNotFound:
			return fmt.Errorf("%w: %s", domain.ErrNotFound, req.URL.Path)
		case http.StatusBadRequest:
			if msg == "" {
				msg = resp.Status
			}
			return domain.NewInputError("%s", msg)
		default:
			if msg == "" {
				msg = resp.Status
			}
			return fmt.Errorf("%w: %s %s: %s", domain.ErrStoreFailure, req.Method, req.URL.Path, msg)
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode %s: %w", domain.ErrStoreFailure, req.URL.Path, err)
	}
	return nil
}

func errorMessage(body io.Reader) string {
	var errResp struct {
		Message string `json:"message"`
	}
	_ = json.NewDecoder(io.LimitReader(body, 64<<10)).Decode(&errResp)
	return errResp.Message
}
