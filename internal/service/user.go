package service

import (
	"context" // Request scoped cancellation
	"errors"  // Sentinel errors
	"strings" // String manipulation

	"wallet_ledger/internal/domain"     // Importing domain models
	"wallet_ledger/internal/repository" // Storage layer

	"golang.org/x/crypto/bcrypt" // Password hashing
)

// UserService registers and authenticates users
type UserService struct {
	users UserStore
}

// NewUserService creates a UserService
func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// Register stores a user with a bcrypt hash of password
func (s *UserService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	_, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return nil, validation(ErrEmailTaken)
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost) // Hash the password
	if err != nil {
		return nil, err
	}
	u := &domain.User{Name: name, Email: email, Password: string(hash)}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Authenticate returns the user owning email when password matches
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	u, err := s.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	// Compare the provided password with the stored hash
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}
