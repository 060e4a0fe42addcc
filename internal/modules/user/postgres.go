package user

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/lib/pq"
	"github.com/shoplite/shoplite-backend/internal/apperr"
)

type postgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository creates a new PostgreSQL user repository.
func NewPostgresRepository(db *sql.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) Create(ctx context.Context, u *User) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO "user" (username, email, password_hash, is_admin)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		u.Username, u.Email, u.PasswordHash, u.IsAdmin).Scan(&u.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			field := "username"
			if strings.Contains(pqErr.Constraint, "email") {
				field = "email"
			}
			return apperr.Conflictf("%s is already taken", field)
		}
		return err
	}
	return nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*User, error) {
	return r.scan(r.db.QueryRowContext(ctx, `
		SELECT id, username, email, password_hash, is_admin
		FROM "user" WHERE id = $1`, id))
}

func (r *postgresRepository) GetByUsername(ctx context.Context, username string) (*User, error) {
	return r.scan(r.db.QueryRowContext(ctx, `
		SELECT id, username, email, password_hash, is_admin
		FROM "user" WHERE username = $1`, username))
}

func (r *postgresRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	return r.scan(r.db.QueryRowContext(ctx, `
		SELECT id, username, email, password_hash, is_admin
		FROM "user" WHERE email = $1`, email))
}

func (r *postgresRepository) scan(row *sql.Row) (*User, error) {
	u := &User{}
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.IsAdmin)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}
