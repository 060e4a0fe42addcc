package user

import (
	"context"

	"github.com/shoplite/shoplite-backend/internal/apperr"
	"golang.org/x/crypto/bcrypt"
)

// Service defines the interface for user-related business logic.
type Service interface {
	// Register creates a standard (non-admin) account. Duplicate username
	// or email fails with Conflict.
	Register(ctx context.Context, req SignupRequest) (*User, error)
}

type service struct {
	repo Repository
}

// NewService creates a new user service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Register(ctx context.Context, req SignupRequest) (*User, error) {
	if req.Username == "" {
		return nil, apperr.Validationf("username is required")
	}
	if req.Email == "" {
		return nil, apperr.Validationf("email is required")
	}
	if req.Password == "" {
		return nil, apperr.Validationf("password is required")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	// Registration only ever creates standard accounts.
	u := &User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hashed),
		IsAdmin:      false,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}
