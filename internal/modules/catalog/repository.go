package catalog

import "context"

// Repository defines data access for products. Lookups return (nil, nil)
// when no record matches. The admin flag controls the out-of-stock filter:
// user reads never see products with zero quantity.
type Repository interface {
	Create(ctx context.Context, p *Product) error
	Update(ctx context.Context, p *Product) error
	GetByID(ctx context.Context, id int64, forAdmin bool) (*Product, error)
	List(ctx context.Context, forAdmin bool) ([]*Product, error)
}
