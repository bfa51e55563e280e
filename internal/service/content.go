package service

import (
	"context"
	"strconv"

	"github.com/boisserenc/atelier/internal/domain"
)

// ContentService exposes the read side of the site's content: blog posts,
// stove projects and testimonials.
type ContentService struct {
	posts        domain.BlogPostRepository
	stoves       domain.StoveProjectRepository
	testimonials domain.TestimonialRepository
}

// NewContentService creates a new ContentService.
func NewContentService(posts domain.BlogPostRepository, stoves domain.StoveProjectRepository, testimonials domain.TestimonialRepository) *ContentService {
	return &ContentService{posts: posts, stoves: stoves, testimonials: testimonials}
}

// ListBlogPosts returns all blog posts in insertion order.
func (s *ContentService) ListBlogPosts(ctx context.Context) ([]domain.BlogPost, error) {
	posts, err := s.posts.List(ctx)
	if err != nil {
		return nil, storeFailure("list blog posts", err)
	}
	return posts, nil
}

// GetBlogPostBySlug returns the first post with the given slug.
func (s *ContentService) GetBlogPostBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	post, err := s.posts.GetBySlug(ctx, slug)
	if err != nil {
		return nil, lookupError("get blog post by slug", err)
	}
	return post, nil
}

// ListStoveProjects returns all stove projects in insertion order.
func (s *ContentService) ListStoveProjects(ctx context.Context) ([]domain.StoveProject, error) {
	projects, err := s.stoves.List(ctx)
	if err != nil {
		return nil, storeFailure("list stove projects", err)
	}
	return projects, nil
}

// ListFeaturedStoveProjects returns featured projects ordered by rank.
func (s *ContentService) ListFeaturedStoveProjects(ctx context.Context) ([]domain.StoveProject, error) {
	projects, err := s.stoves.ListFeatured(ctx)
	if err != nil {
		return nil, storeFailure("list featured stove projects", err)
	}
	return projects, nil
}

// GetStoveProjectByID looks a project up by its id as it appears in a URL.
// A value that is not a base-10 integer is rejected as invalid input, which
// callers must keep distinct from a valid id that matches nothing.
func (s *ContentService) GetStoveProjectByID(ctx context.Context, rawID string) (*domain.StoveProject, error) {
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return nil, domain.NewInputError("Invalid ID format")
	}

	project, err := s.stoves.GetByID(ctx, id)
	if err != nil {
		return nil, lookupError("get stove project by id", err)
	}
	return project, nil
}

// ListTestimonials returns all testimonials in insertion order.
func (s *ContentService) ListTestimonials(ctx context.Context) ([]domain.Testimonial, error) {
	list, err := s.testimonials.List(ctx)
	if err != nil {
		return nil, storeFailure("list testimonials", err)
	}
	return list, nil
}
