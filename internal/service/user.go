package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/boisserenc/atelier/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// UserService manages site administrator accounts.
type UserService struct {
	users      domain.UserRepository
	bcryptCost int
}

// NewUserService creates a new UserService.
func NewUserService(users domain.UserRepository, bcryptCost int) *UserService {
	return &UserService{users: users, bcryptCost: bcryptCost}
}

// CreateUser stores a new account with a bcrypt-hashed password.
func (s *UserService) CreateUser(ctx context.Context, username, password string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, domain.NewInputError("Validation error: username and password are required")
	}
	if len(password) < 8 {
		return nil, domain.NewInputError("Validation error: password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, domain.InsertUser{Username: username, Password: string(hash)})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateUsername) {
			return nil, err
		}
		return nil, storeFailure("create user", err)
	}
	return user, nil
}

// EnsureUser creates the account unless one with the same username exists.
// It reports whether a new account was created.
func (s *UserService) EnsureUser(ctx context.Context, username, password string) (bool, error) {
	_, err := s.users.GetByUsername(ctx, strings.TrimSpace(username))
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return false, storeFailure("get user by username", err)
	}
	if _, err := s.CreateUser(ctx, username, password); err != nil {
		return false, err
	}
	return true, nil
}

// GetByUsername returns the account with the given username.
func (s *UserService) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, lookupError("get user by username", err)
	}
	return user, nil
}
