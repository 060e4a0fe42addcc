package watchlist

import (
	"context"

	"github.com/shoplite/shoplite-backend/internal/modules/catalog"
)

// Repository defines data access for watchlist entries.
type Repository interface {
	// Add inserts an entry; adding an existing (user, product) pair is a
	// no-op.
	Add(ctx context.Context, userID, productID int64) error

	// Remove deletes the entry if present; removing a missing entry is
	// not an error.
	Remove(ctx context.Context, userID, productID int64) error

	// ListInStock returns the distinct watched products with stock on
	// hand. Out-of-stock entries stay on the list but are not returned.
	ListInStock(ctx context.Context, userID int64) ([]*catalog.Product, error)
}
