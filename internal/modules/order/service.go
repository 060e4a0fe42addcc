package order

import (
	"context"

	"github.com/shoplite/shoplite-backend/internal/apperr"
	"github.com/shoplite/shoplite-backend/internal/modules/auth"
)

// Service defines the order engine. Ownership checks happen here, after
// the record loads, so routing alone can never leak another user's order.
type Service interface {
	// Place atomically reserves stock for every line and persists the
	// order in PROCESSING, or fails leaving the store untouched.
	Place(ctx context.Context, userID int64, req PlaceOrderRequest) (*Order, error)

	// Cancel moves a PROCESSING order to CANCELED and credits its lines
	// back to stock. Permitted for the order's owner and for admins.
	Cancel(ctx context.Context, orderID int64, principal *auth.Principal) (*Detail, error)

	// Complete moves a PROCESSING order to COMPLETED. Admin only; the
	// role gate sits at the router.
	Complete(ctx context.Context, orderID int64) (*Order, error)

	// GetDetail returns the order with its lines. Owner or admin.
	GetDetail(ctx context.Context, orderID int64, principal *auth.Principal) (*Detail, error)

	// ListForRequester returns all orders for admins, own orders for users.
	ListForRequester(ctx context.Context, principal *auth.Principal) ([]*Order, error)
}

type service struct {
	repo Repository
}

// NewService creates a new order service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Place(ctx context.Context, userID int64, req PlaceOrderRequest) (*Order, error) {
	if len(req.Items) == 0 {
		return nil, apperr.Validationf("order must contain at least one item")
	}
	seen := make(map[int64]bool, len(req.Items))
	for _, line := range req.Items {
		if line.ProductID < 1 {
			return nil, apperr.Validationf("productId is required")
		}
		if line.Quantity < 1 {
			return nil, apperr.Validationf("quantity must be at least 1 for product %d", line.ProductID)
		}
		if seen[line.ProductID] {
			return nil, apperr.Validationf("duplicate product %d in cart", line.ProductID)
		}
		seen[line.ProductID] = true
	}
	return s.repo.Place(ctx, userID, req.Items)
}

func (s *service) Cancel(ctx context.Context, orderID int64, principal *auth.Principal) (*Detail, error) {
	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, apperr.NotFoundf("order %d not found", orderID)
	}
	if !principal.IsAdmin() && o.UserID != principal.UserID {
		return nil, apperr.Forbiddenf("not your order")
	}

	if _, err := s.repo.Transition(ctx, orderID, StatusCanceled); err != nil {
		return nil, err
	}
	return s.repo.GetDetailByID(ctx, orderID)
}

func (s *service) Complete(ctx context.Context, orderID int64) (*Order, error) {
	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, apperr.NotFoundf("order %d not found", orderID)
	}
	return s.repo.Transition(ctx, orderID, StatusCompleted)
}

func (s *service) GetDetail(ctx context.Context, orderID int64, principal *auth.Principal) (*Detail, error) {
	detail, err := s.repo.GetDetailByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, apperr.NotFoundf("order %d not found", orderID)
	}
	if !principal.IsAdmin() && detail.UserID != principal.UserID {
		return nil, apperr.Forbiddenf("not your order")
	}
	return detail, nil
}

func (s *service) ListForRequester(ctx context.Context, principal *auth.Principal) ([]*Order, error) {
	if principal.IsAdmin() {
		return s.repo.ListAll(ctx)
	}
	return s.repo.ListByUser(ctx, principal.UserID)
}
