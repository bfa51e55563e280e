package memory

import (
	"context"

	"github.com/boisserenc/atelier/internal/domain"
)

type contactRepo struct {
	s *Store
}

func (r *contactRepo) Create(ctx context.Context, in domain.InsertContactMessage) (*domain.ContactMessage, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	msg := r.s.contacts.insert(func(id int64) domain.ContactMessage {
		return domain.ContactMessage{
			ID:        id,
			Name:      in.Name,
			Email:     in.Email,
			Phone:     domain.Optional(in.Phone),
			Service:   domain.Optional(in.Service),
			Message:   in.Message,
			CreatedAt: r.s.now(),
		}
	})
	return &msg, nil
}

func (r *contactRepo) List(ctx context.Context) ([]domain.ContactMessage, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.contacts.all(), nil
}
