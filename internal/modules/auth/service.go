package auth

import (
	"context"

	"github.com/shoplite/shoplite-backend/internal/apperr"
	"github.com/shoplite/shoplite-backend/internal/modules/user"
	"golang.org/x/crypto/bcrypt"
)

// Service defines the interface for authentication-related business logic.
type Service interface {
	// Login verifies the credentials and issues a bearer token.
	Login(ctx context.Context, username, password string) (string, error)
}

type service struct {
	userRepo user.Repository
	tokens   *TokenManager
}

// NewService creates a new auth service.
func NewService(userRepo user.Repository, tokens *TokenManager) Service {
	return &service{userRepo: userRepo, tokens: tokens}
}

func (s *service) Login(ctx context.Context, username, password string) (string, error) {
	u, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", apperr.Unauthorizedf("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", apperr.Unauthorizedf("invalid credentials")
	}
	return s.tokens.Issue(u.Username)
}

// AuthoritiesFor derives the role set for a stored user.
func AuthoritiesFor(u *user.User) []string {
	authorities := []string{RoleUser}
	if u.IsAdmin {
		authorities = append(authorities, RoleAdmin)
	}
	return authorities
}
