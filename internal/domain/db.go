package domain

import "context"

// Database defines lifecycle operations for the underlying store and hands
// out its repositories. The in-memory and SQLite backends both implement it,
// so the rest of the application is indifferent to which one runs.
type Database interface {
	Migrate(ctx context.Context) error
	Close() error

	Users() UserRepository
	ContactMessages() ContactMessageRepository
	BlogPosts() BlogPostRepository
	StoveProjects() StoveProjectRepository
	Testimonials() TestimonialRepository
}
