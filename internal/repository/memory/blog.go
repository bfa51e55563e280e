package memory

import (
	"context"

	"github.com/boisserenc/atelier/internal/domain"
)

type blogPostRepo struct {
	s *Store
}

func (r *blogPostRepo) Create(ctx context.Context, in domain.InsertBlogPost) (*domain.BlogPost, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	post := r.s.blogPosts.insert(func(id int64) domain.BlogPost {
		return domain.BlogPost{
			ID:        id,
			TitleFR:   in.TitleFR,
			TitleEN:   in.TitleEN,
			Slug:      in.Slug,
			ExcerptFR: in.ExcerptFR,
			ExcerptEN: in.ExcerptEN,
			ContentFR: in.ContentFR,
			ContentEN: in.ContentEN,
			Category:  in.Category,
			Image:     domain.Optional(in.Image),
			CreatedAt: r.s.now(),
		}
	})
	return &post, nil
}

func (r *blogPostRepo) List(ctx context.Context) ([]domain.BlogPost, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.blogPosts.all(), nil
}

func (r *blogPostRepo) GetByID(ctx context.Context, id int64) (*domain.BlogPost, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	post, ok := r.s.blogPosts.get(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &post, nil
}

func (r *blogPostRepo) GetBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, post := range r.s.blogPosts.all() {
		if post.Slug == slug {
			return &post, nil
		}
	}
	return nil, domain.ErrNotFound
}
