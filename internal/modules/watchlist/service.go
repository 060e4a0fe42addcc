package watchlist

import (
	"context"

	"github.com/shoplite/shoplite-backend/internal/apperr"
	"github.com/shoplite/shoplite-backend/internal/modules/catalog"
	"github.com/shoplite/shoplite-backend/internal/modules/user"
)

// Service defines the watchlist engine.
type Service interface {
	// Add puts a product on the user's watchlist. The product only needs
	// to exist; stock does not matter for watching.
	Add(ctx context.Context, userID, productID int64) error

	// Remove takes a product off the watchlist. Removing a product that
	// is not on the list succeeds.
	Remove(ctx context.Context, userID, productID int64) error

	// List returns the watched products that are currently in stock.
	List(ctx context.Context, userID int64) ([]*catalog.Product, error)
}

type service struct {
	repo        Repository
	userRepo    user.Repository
	productRepo catalog.Repository
}

// NewService creates a new watchlist service.
func NewService(repo Repository, userRepo user.Repository, productRepo catalog.Repository) Service {
	return &service{repo: repo, userRepo: userRepo, productRepo: productRepo}
}

func (s *service) Add(ctx context.Context, userID, productID int64) error {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if u == nil {
		return apperr.NotFoundf("user %d not found", userID)
	}

	// Admin view: an out-of-stock product can still be watched.
	p, err := s.productRepo.GetByID(ctx, productID, true)
	if err != nil {
		return err
	}
	if p == nil {
		return apperr.NotFoundf("product %d not found", productID)
	}

	return s.repo.Add(ctx, userID, productID)
}

func (s *service) Remove(ctx context.Context, userID, productID int64) error {
	return s.repo.Remove(ctx, userID, productID)
}

func (s *service) List(ctx context.Context, userID int64) ([]*catalog.Product, error) {
	return s.repo.ListInStock(ctx, userID)
}
