package report

import (
	"context"
	"database/sql"

	"github.com/shoplite/shoplite-backend/internal/modules/catalog"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a new PostgreSQL reporting repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

const productColumns = `p.id, p.name, p.description, p.wholesale_price, p.retail_price, p.quantity`

func (r *postgresRepo) TopFrequent(ctx context.Context, userID int64, limit int) ([]*ProductCount, error) {
	return r.queryCounts(ctx, `
		SELECT `+productColumns+`, SUM(oi.quantity) AS total_quantity
		FROM order_item oi
		JOIN "order" o ON o.id = oi.order_id
		JOIN product p ON p.id = oi.product_id
		WHERE o.user_id = $1 AND o.status <> 'CANCELED'
		GROUP BY p.id
		ORDER BY total_quantity DESC, p.id ASC
		LIMIT $2`, userID, limit)
}

func (r *postgresRepo) TopRecent(ctx context.Context, userID int64, limit int) ([]*ProductRecency, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+productColumns+`, MAX(o.placed_at) AS last_ordered_at
		FROM order_item oi
		JOIN "order" o ON o.id = oi.order_id
		JOIN product p ON p.id = oi.product_id
		WHERE o.user_id = $1 AND o.status <> 'CANCELED'
		GROUP BY p.id
		ORDER BY last_ordered_at DESC, p.id ASC
		LIMIT $2`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []*ProductRecency{}
	for rows.Next() {
		p := &catalog.Product{}
		row := &ProductRecency{Product: p}
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.WholesalePrice,
			&p.RetailPrice, &p.Quantity, &row.LastOrderedAt); err != nil {
			return nil, err
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

func (r *postgresRepo) TopPopular(ctx context.Context, limit int) ([]*ProductCount, error) {
	return r.queryCounts(ctx, `
		SELECT `+productColumns+`, SUM(oi.quantity) AS total_quantity
		FROM order_item oi
		JOIN "order" o ON o.id = oi.order_id
		JOIN product p ON p.id = oi.product_id
		WHERE o.status <> 'CANCELED'
		GROUP BY p.id
		ORDER BY total_quantity DESC, p.id ASC
		LIMIT $1`, limit)
}

// TopProfitable scores by the snapshot prices stored on each line, not the
// product's current prices.
func (r *postgresRepo) TopProfitable(ctx context.Context, limit int) ([]*ProductProfit, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+productColumns+`, SUM((oi.retail_price - oi.wholesale_price) * oi.quantity) AS profit
		FROM order_item oi
		JOIN "order" o ON o.id = oi.order_id
		JOIN product p ON p.id = oi.product_id
		WHERE o.status <> 'CANCELED'
		GROUP BY p.id
		ORDER BY profit DESC, p.id ASC
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []*ProductProfit{}
	for rows.Next() {
		p := &catalog.Product{}
		row := &ProductProfit{Product: p}
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.WholesalePrice,
			&p.RetailPrice, &p.Quantity, &row.Profit); err != nil {
			return nil, err
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

func (r *postgresRepo) TotalSold(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(oi.quantity), 0)
		FROM order_item oi
		JOIN "order" o ON o.id = oi.order_id
		WHERE o.status <> 'CANCELED'`).Scan(&total)
	return total, err
}

func (r *postgresRepo) queryCounts(ctx context.Context, query string, args ...interface{}) ([]*ProductCount, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []*ProductCount{}
	for rows.Next() {
		p := &catalog.Product{}
		row := &ProductCount{Product: p}
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.WholesalePrice,
			&p.RetailPrice, &p.Quantity, &row.TotalQuantity); err != nil {
			return nil, err
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
