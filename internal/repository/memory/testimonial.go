package memory

import (
	"context"

	"github.com/boisserenc/atelier/internal/domain"
)

type testimonialRepo struct {
	s *Store
}

func (r *testimonialRepo) Create(ctx context.Context, in domain.InsertTestimonial) (*domain.Testimonial, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	t := r.s.testimonials.insert(func(id int64) domain.Testimonial {
		return domain.Testimonial{
			ID:         id,
			Name:       in.Name,
			PositionFR: in.PositionFR,
			PositionEN: in.PositionEN,
			ContentFR:  in.ContentFR,
			ContentEN:  in.ContentEN,
			Rating:     in.RatingOrDefault(),
		}
	})
	return &t, nil
}

func (r *testimonialRepo) List(ctx context.Context) ([]domain.Testimonial, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.testimonials.all(), nil
}

func (r *testimonialRepo) GetByID(ctx context.Context, id int64) (*domain.Testimonial, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	t, ok := r.s.testimonials.get(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &t, nil
}
