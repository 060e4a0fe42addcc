package catalog

import (
	"context"

	"github.com/shoplite/shoplite-backend/internal/apperr"
)

// Service defines product administration and catalog reads.
type Service interface {
	// Add validates and persists a new product.
	Add(ctx context.Context, req CreateProductRequest) (*Product, error)

	// Patch applies a partial update; fields absent from the payload are
	// left as they are, and an update that would violate the product
	// invariants leaves the record untouched.
	Patch(ctx context.Context, id int64, req UpdateProductRequest) (*Product, error)

	// Get returns the product; the user view hides out-of-stock products.
	Get(ctx context.Context, id int64, forAdmin bool) (*Product, error)

	// List returns all products for admins, in-stock products for users.
	List(ctx context.Context, forAdmin bool) ([]*Product, error)
}

type service struct {
	repo Repository
}

// NewService creates a new catalog service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Add(ctx context.Context, req CreateProductRequest) (*Product, error) {
	if req.Name == "" {
		return nil, apperr.Validationf("name is required")
	}
	if req.WholesalePrice < 0 || req.RetailPrice < 0 {
		return nil, apperr.Validationf("prices must not be negative")
	}
	if req.Quantity < 1 {
		return nil, apperr.Validationf("quantity must be at least 1")
	}

	p := &Product{
		Name:           req.Name,
		Description:    req.Description,
		WholesalePrice: req.WholesalePrice,
		RetailPrice:    req.RetailPrice,
		Quantity:       req.Quantity,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) Patch(ctx context.Context, id int64, req UpdateProductRequest) (*Product, error) {
	// Read-modify-write over the admin view; stock does not gate edits.
	p, err := s.repo.GetByID(ctx, id, true)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.NotFoundf("product %d not found", id)
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.WholesalePrice != nil {
		p.WholesalePrice = *req.WholesalePrice
	}
	if req.RetailPrice != nil {
		p.RetailPrice = *req.RetailPrice
	}
	if req.Quantity != nil {
		p.Quantity = *req.Quantity
	}

	if p.Name == "" {
		return nil, apperr.Validationf("name must not be empty")
	}
	if p.WholesalePrice < 0 || p.RetailPrice < 0 {
		return nil, apperr.Validationf("prices must not be negative")
	}
	if p.Quantity < 0 {
		return nil, apperr.Validationf("quantity must not be negative")
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) Get(ctx context.Context, id int64, forAdmin bool) (*Product, error) {
	p, err := s.repo.GetByID(ctx, id, forAdmin)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.NotFoundf("product %d not found", id)
	}
	return p, nil
}

func (s *service) List(ctx context.Context, forAdmin bool) ([]*Product, error) {
	return s.repo.List(ctx, forAdmin)
}
