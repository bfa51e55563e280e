package memory

import (
	"cmp"
	"context"
	"slices"

	"github.com/boisserenc/atelier/internal/domain"
)

type stoveRepo struct {
	s *Store
}

func (r *stoveRepo) Create(ctx context.Context, in domain.InsertStoveProject) (*domain.StoveProject, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	project := r.s.stoves.insert(func(id int64) domain.StoveProject {
		return domain.StoveProject{
			ID:            id,
			NameFR:        in.NameFR,
			NameEN:        in.NameEN,
			DescriptionFR: in.DescriptionFR,
			DescriptionEN: in.DescriptionEN,
			Category:      in.Category,
			Year:          domain.Optional(in.Year),
			Image:         in.Image,
			Featured:      in.FeaturedRank(),
		}
	})
	return &project, nil
}

func (r *stoveRepo) List(ctx context.Context) ([]domain.StoveProject, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.stoves.all(), nil
}

func (r *stoveRepo) GetByID(ctx context.Context, id int64) (*domain.StoveProject, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	project, ok := r.s.stoves.get(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &project, nil
}

func (r *stoveRepo) ListFeatured(ctx context.Context) ([]domain.StoveProject, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	featured := make([]domain.StoveProject, 0)
	for _, p := range r.s.stoves.all() {
		if p.IsFeatured() {
			featured = append(featured, p)
		}
	}
	// Stable: equal ranks keep insertion order.
	slices.SortStableFunc(featured, func(a, b domain.StoveProject) int {
		return cmp.Compare(a.Featured, b.Featured)
	})
	return featured, nil
}
