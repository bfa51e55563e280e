package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/boisserenc/atelier/internal/domain"
)

type contactRepo struct {
	db  *sql.DB
	now func() time.Time
}

func (r *contactRepo) Create(ctx context.Context, in domain.InsertContactMessage) (*domain.ContactMessage, error) {
	msg := &domain.ContactMessage{
		Name:      in.Name,
		Email:     in.Email,
		Phone:     domain.Optional(in.Phone),
		Service:   domain.Optional(in.Service),
		Message:   in.Message,
		CreatedAt: r.now(),
	}

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO contact_messages (name, email, phone, service, message, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		msg.Name, msg.Email, msg.Phone, msg.Service, msg.Message, msg.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert contact message: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("get last insert id: %w", err)
	}
	msg.ID = id
	return msg, nil
}

func (r *contactRepo) List(ctx context.Context) ([]domain.ContactMessage, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, email, phone, service, message, created_at
		 FROM contact_messages ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	defer rows.Close()

	msgs := make([]domain.ContactMessage, 0)
	for rows.Next() {
		var m domain.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Phone, &m.Service, &m.Message, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan contact message: %w", err)
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}
