package user

import "context"

// Repository defines data access for users. Lookups return (nil, nil) when
// no record matches.
type Repository interface {
	// Create persists a new user and assigns its id. Duplicate username or
	// email surfaces as a Conflict error naming the field.
	Create(ctx context.Context, u *User) error

	GetByID(ctx context.Context, id int64) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}
