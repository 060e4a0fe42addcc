package report

import (
	"context"

	"github.com/shoplite/shoplite-backend/internal/apperr"
	"github.com/shoplite/shoplite-backend/internal/modules/user"
)

// Service defines the reporting queries. The per-user queries verify the
// user exists before aggregating.
type Service interface {
	TopFrequent(ctx context.Context, userID int64, limit int) ([]*ProductCount, error)
	TopRecent(ctx context.Context, userID int64, limit int) ([]*ProductRecency, error)
	TopPopular(ctx context.Context, limit int) ([]*ProductCount, error)
	TopProfitable(ctx context.Context, limit int) ([]*ProductProfit, error)
	TotalSold(ctx context.Context) (int64, error)
}

type service struct {
	repo     Repository
	userRepo user.Repository
}

// NewService creates a new reporting service.
func NewService(repo Repository, userRepo user.Repository) Service {
	return &service{repo: repo, userRepo: userRepo}
}

func (s *service) TopFrequent(ctx context.Context, userID int64, limit int) ([]*ProductCount, error) {
	if err := s.checkUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.repo.TopFrequent(ctx, userID, limit)
}

func (s *service) TopRecent(ctx context.Context, userID int64, limit int) ([]*ProductRecency, error) {
	if err := s.checkUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.repo.TopRecent(ctx, userID, limit)
}

func (s *service) TopPopular(ctx context.Context, limit int) ([]*ProductCount, error) {
	return s.repo.TopPopular(ctx, limit)
}

func (s *service) TopProfitable(ctx context.Context, limit int) ([]*ProductProfit, error) {
	return s.repo.TopProfitable(ctx, limit)
}

func (s *service) TotalSold(ctx context.Context) (int64, error) {
	return s.repo.TotalSold(ctx)
}

func (s *service) checkUser(ctx context.Context, userID int64) error {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if u == nil {
		return apperr.NotFoundf("user %d not found", userID)
	}
	return nil
}
