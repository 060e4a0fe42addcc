package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/shoplite/shoplite-backend/internal/apperr"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a new PostgreSQL order repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

// Place runs the whole placement scope in one transaction. Product rows are
// locked with SELECT ... FOR UPDATE in ascending id order so concurrent
// placements serialize on shared products instead of deadlocking.
func (r *postgresRepo) Place(ctx context.Context, userID int64, cart []CartItem) (*Order, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRowContext(ctx, `SELECT 1 FROM "user" WHERE id=$1`, userID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFoundf("user %d not found", userID)
	}
	if err != nil {
		return nil, err
	}

	lines := make([]CartItem, len(cart))
	copy(lines, cart)
	sort.Slice(lines, func(i, j int) bool { return lines[i].ProductID < lines[j].ProductID })

	items := make([]*Item, 0, len(lines))
	for _, line := range lines {
		var wholesale, retail float64
		var available int
		err := tx.QueryRowContext(ctx, `
			SELECT wholesale_price, retail_price, quantity
			FROM product WHERE id=$1
			FOR UPDATE`, line.ProductID).Scan(&wholesale, &retail, &available)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFoundf("product %d not found", line.ProductID)
		}
		if err != nil {
			return nil, err
		}
		if available < line.Quantity {
			return nil, apperr.InsufficientStock(line.ProductID, available, line.Quantity)
		}

		if _, err := tx.ExecContext(ctx, `
			UPDATE product SET quantity = quantity - $1 WHERE id=$2`,
			line.Quantity, line.ProductID); err != nil {
			return nil, err
		}

		items = append(items, &Item{
			ProductID:             line.ProductID,
			Quantity:              line.Quantity,
			RetailPriceAtOrder:    retail,
			WholesalePriceAtOrder: wholesale,
		})
	}

	o := &Order{UserID: userID, PlacedAt: time.Now().UTC(), Status: StatusProcessing}
	err = tx.QueryRowContext(ctx, `
		INSERT INTO "order" (user_id, placed_at, status)
		VALUES ($1, $2, $3)
		RETURNING id`, o.UserID, o.PlacedAt, o.Status).Scan(&o.ID)
	if err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}

	for _, item := range items {
		item.OrderID = o.ID
		err = tx.QueryRowContext(ctx, `
			INSERT INTO order_item (order_id, product_id, quantity, retail_price, wholesale_price)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`,
			item.OrderID, item.ProductID, item.Quantity,
			item.RetailPriceAtOrder, item.WholesalePriceAtOrder).Scan(&item.ID)
		if err != nil {
			return nil, fmt.Errorf("insert order_item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return o, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*Order, error) {
	return scanOrder(r.db.QueryRowContext(ctx, `
		SELECT id, user_id, placed_at, status FROM "order" WHERE id=$1`, id))
}

func (r *postgresRepo) GetDetailByID(ctx context.Context, id int64) (*Detail, error) {
	o, err := r.GetByID(ctx, id)
	if err != nil || o == nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT oi.product_id, p.name, oi.quantity, oi.retail_price
		FROM order_item oi
		JOIN product p ON p.id = oi.product_id
		WHERE oi.order_id=$1
		ORDER BY oi.id ASC`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	detail := &Detail{Order: *o, Items: []*ItemDetail{}}
	for rows.Next() {
		it := &ItemDetail{}
		if err := rows.Scan(&it.ProductID, &it.ProductName, &it.Quantity, &it.RetailPriceAtOrder); err != nil {
			return nil, err
		}
		detail.Items = append(detail.Items, it)
	}
	return detail, rows.Err()
}

func (r *postgresRepo) ListByUser(ctx context.Context, userID int64) ([]*Order, error) {
	return r.queryOrders(ctx, `
		SELECT id, user_id, placed_at, status
		FROM "order" WHERE user_id=$1 ORDER BY placed_at DESC`, userID)
}

func (r *postgresRepo) ListAll(ctx context.Context) ([]*Order, error) {
	return r.queryOrders(ctx, `
		SELECT id, user_id, placed_at, status
		FROM "order" ORDER BY placed_at DESC`)
}

// Transition re-reads the order under a row lock so the terminal-state
// check and the stock restore cannot race a concurrent transition.
func (r *postgresRepo) Transition(ctx context.Context, id int64, to Status) (*Order, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	o, err := scanOrder(tx.QueryRowContext(ctx, `
		SELECT id, user_id, placed_at, status FROM "order" WHERE id=$1 FOR UPDATE`, id))
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, apperr.NotFoundf("order %d not found", id)
	}
	if !CanTransition(o.Status, to) {
		return nil, apperr.Forbiddenf("order %d cannot move from %s to %s", id, o.Status, to)
	}

	if to == StatusCanceled {
		rows, err := tx.QueryContext(ctx, `
			SELECT product_id, quantity FROM order_item WHERE order_id=$1`, id)
		if err != nil {
			return nil, err
		}
		type restore struct {
			productID int64
			quantity  int
		}
		var restores []restore
		for rows.Next() {
			var re restore
			if err := rows.Scan(&re.productID, &re.quantity); err != nil {
				rows.Close()
				return nil, err
			}
			restores = append(restores, re)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return nil, err
		}

		for _, re := range restores {
			if _, err := tx.ExecContext(ctx, `
				UPDATE product SET quantity = quantity + $1 WHERE id=$2`,
				re.quantity, re.productID); err != nil {
				return nil, err
			}
		}
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE "order" SET status=$1 WHERE id=$2`, to, id); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	o.Status = to
	return o, nil
}

// ── helpers ──────────────────────────────────────────────────────────────────

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOrder(row rowScanner) (*Order, error) {
	o := &Order{}
	err := row.Scan(&o.ID, &o.UserID, &o.PlacedAt, &o.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (r *postgresRepo) queryOrders(ctx context.Context, query string, args ...interface{}) ([]*Order, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*Order
	for rows.Next() {
		o := &Order{}
		if err := rows.Scan(&o.ID, &o.UserID, &o.PlacedAt, &o.Status); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}
