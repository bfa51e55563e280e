// Package catalog defines the read-side contract the pages and the exporter
// consume, independent of where the content actually lives.
package catalog

import (
	"context"

	"github.com/boisserenc/atelier/internal/domain"
	"github.com/boisserenc/atelier/internal/service"
)

// Catalog is the content API of the site. Implementations report absence as
// domain.ErrNotFound, rejected input as domain.ErrInvalidInput and anything
// else as domain.ErrStoreFailure.
type Catalog interface {
	ListBlogPosts(ctx context.Context) ([]domain.BlogPost, error)
	GetBlogPostBySlug(ctx context.Context, slug string) (*domain.BlogPost, error)
	ListStoveProjects(ctx context.Context) ([]domain.StoveProject, error)
	ListFeaturedStoveProjects(ctx context.Context) ([]domain.StoveProject, error)
	GetStoveProjectByID(ctx context.Context, rawID string) (*domain.StoveProject, error)
	ListTestimonials(ctx context.Context) ([]domain.Testimonial, error)
	CreateContactMessage(ctx context.Context, in domain.InsertContactMessage) (*domain.ContactMessage, error)
}

// Local serves the catalog in-process from the services.
type Local struct {
	*service.ContentService
	*service.ContactService
}

// NewLocal creates a Local catalog.
func NewLocal(content *service.ContentService, contact *service.ContactService) *Local {
	return &Local{ContentService: content, ContactService: contact}
}

var _ Catalog = (*Local)(nil)
