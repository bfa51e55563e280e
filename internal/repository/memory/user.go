package memory

import (
	"context"

	"github.com/boisserenc/atelier/internal/domain"
)

type userRepo struct {
	s *Store
}

func (r *userRepo) Create(ctx context.Context, in domain.InsertUser) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users.items {
		if u.Username == in.Username {
			return nil, domain.ErrDuplicateUsername
		}
	}

	user := r.s.users.insert(func(id int64) domain.User {
		return domain.User{ID: id, Username: in.Username, Password: in.Password}
	})
	return &user, nil
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	user, ok := r.s.users.get(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &user, nil
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.users.all() {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, domain.ErrNotFound
}
