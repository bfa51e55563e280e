package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/boisserenc/atelier/internal/domain"
)

type userRepo struct {
	db *sql.DB
}

func (r *userRepo) Create(ctx context.Context, in domain.InsertUser) (*domain.User, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO users (username, password) VALUES (?, ?)`,
		in.Username, in.Password,
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return nil, domain.ErrDuplicateUsername
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("get last insert id: %w", err)
	}

	return &domain.User{ID: id, Username: in.Username, Password: in.Password}, nil
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.getOne(ctx, "id = ?", id)
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getOne(ctx, "username = ?", username)
}

func (r *userRepo) getOne(ctx context.Context, where string, arg any) (*domain.User, error) {
	user := &domain.User{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, username, password FROM users WHERE `+where, arg,
	).Scan(&user.ID, &user.Username, &user.Password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query user: %w", err)
	}
	return user, nil
}
