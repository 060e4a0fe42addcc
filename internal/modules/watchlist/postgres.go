package watchlist

import (
	"context"
	"database/sql"

	"github.com/shoplite/shoplite-backend/internal/modules/catalog"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a new PostgreSQL watchlist repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Add(ctx context.Context, userID, productID int64) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO watchlist (user_id, product_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, product_id) DO NOTHING`, userID, productID)
	return err
}

func (r *postgresRepo) Remove(ctx context.Context, userID, productID int64) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM watchlist WHERE user_id=$1 AND product_id=$2`, userID, productID)
	return err
}

func (r *postgresRepo) ListInStock(ctx context.Context, userID int64) ([]*catalog.Product, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT DISTINCT p.id, p.name, p.description, p.wholesale_price, p.retail_price, p.quantity
		FROM watchlist w
		JOIN product p ON p.id = w.product_id
		WHERE w.user_id=$1 AND p.quantity > 0
		ORDER BY p.id ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []*catalog.Product{}
	for rows.Next() {
		p := &catalog.Product{}
		if err := rows.Scan(&p.ID, &p.Name, &p.Description,
			&p.WholesalePrice, &p.RetailPrice, &p.Quantity); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
