// Package memory implements the domain repositories on top of in-process
// keyed collections. Nothing survives a restart.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/boisserenc/atelier/internal/domain"
)

// Store owns five typed collections, each with its own id counter.
// All access goes through the repositories it hands out.
type Store struct {
	mu  sync.RWMutex
	now func() time.Time

	users        collection[domain.User]
	contacts     collection[domain.ContactMessage]
	blogPosts    collection[domain.BlogPost]
	stoves       collection[domain.StoveProject]
	testimonials collection[domain.Testimonial]
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the clock used to stamp createdAt fields.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New returns an empty Store.
func New(opts ...Option) *Store {
	s := &Store{
		now:          func() time.Time { return time.Now().UTC() },
		users:        newCollection[domain.User](),
		contacts:     newCollection[domain.ContactMessage](),
		blogPosts:    newCollection[domain.BlogPost](),
		stoves:       newCollection[domain.StoveProject](),
		testimonials: newCollection[domain.Testimonial](),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Migrate is a no-op; the collections need no schema.
func (s *Store) Migrate(ctx context.Context) error { return nil }

// Close is a no-op.
func (s *Store) Close() error { return nil }

func (s *Store) Users() domain.UserRepository { return &userRepo{s: s} }
func (s *Store) ContactMessages() domain.ContactMessageRepository { return &contactRepo{s: s} }
func (s *Store) BlogPosts() domain.BlogPostRepository { return &blogPostRepo{s: s} }
func (s *Store) StoveProjects() domain.StoveProjectRepository { return &stoveRepo{s: s} }
func (s *Store) Testimonials() domain.TestimonialRepository { return &testimonialRepo{s: s} }

// collection is an insertion-ordered map keyed by a monotonically
// increasing id. Ids start at 1 and are never reused.
type collection[T any] struct {
	next  int64
	order []int64
	items map[int64]T
}

func newCollection[T any]() collection[T] {
	return collection[T]{next: 1, items: make(map[int64]T)}
}

// insert assigns the next id, builds the record and stores it.
// The caller must hold the store's write lock.
func (c *collection[T]) insert(build func(id int64) T) T {
	id := c.next
	c.next++
	item := build(id)
	c.items[id] = item
	c.order = append(c.order, id)
	return item
}

func (c *collection[T]) get(id int64) (T, bool) {
	item, ok := c.items[id]
	return item, ok
}

// all returns the records in insertion order. Never nil.
func (c *collection[T]) all() []T {
	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.items[id])
	}
	return out
}
