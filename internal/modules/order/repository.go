package order

import "context"

// Repository defines data access for orders. The multi-statement operations
// (Place, Transition) each run inside a single transaction: either every
// mutation commits or none do.
type Repository interface {
	// Place validates the cart against live stock under row locks,
	// decrements stock, and persists the order and its items with price
	// snapshots, all in one transaction. Fails with NotFound for an
	// unknown user or product and InsufficientStock when any line cannot
	// be fulfilled.
	Place(ctx context.Context, userID int64, cart []CartItem) (*Order, error)

	// GetByID returns the bare order, or (nil, nil) when absent.
	GetByID(ctx context.Context, id int64) (*Order, error)

	// GetDetailByID returns the order with its items and product names, or
	// (nil, nil) when absent.
	GetDetailByID(ctx context.Context, id int64) (*Detail, error)

	// ListByUser returns a user's orders, most recent first.
	ListByUser(ctx context.Context, userID int64) ([]*Order, error)

	// ListAll returns every order, most recent first.
	ListAll(ctx context.Context) ([]*Order, error)

	// Transition moves the order to a new status inside one transaction.
	// Moving PROCESSING to CANCELED credits each line's quantity back to
	// stock exactly once. A transition out of a terminal state fails with
	// Forbidden and changes nothing.
	Transition(ctx context.Context, id int64, to Status) (*Order, error)
}
