package domain

import (
	"context"
	"time"
)

// ContactMessage is a message submitted through the public contact form.
// CreatedAt is stamped by the store.
type ContactMessage struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone"`
	Service   *string   `json:"service"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// InsertContactMessage is the creation payload for a ContactMessage.
type InsertContactMessage struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   *string `json:"phone,omitempty"`
	Service *string `json:"service,omitempty"`
	Message string  `json:"message"`
}

// ContactMessageRepository defines persistence operations for contact messages.
// Messages are append-only.
type ContactMessageRepository interface {
	Create(ctx context.Context, in InsertContactMessage) (*ContactMessage, error)
	List(ctx context.Context) ([]ContactMessage, error)
}
