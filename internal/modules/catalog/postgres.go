package catalog

import (
	"context"
	"database/sql"
	"errors"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a new PostgreSQL product repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Create(ctx context.Context, p *Product) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO product (name, description, wholesale_price, retail_price, quantity)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		p.Name, p.Description, p.WholesalePrice, p.RetailPrice, p.Quantity).Scan(&p.ID)
}

func (r *postgresRepo) Update(ctx context.Context, p *Product) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE product
		SET name=$1, description=$2, wholesale_price=$3, retail_price=$4, quantity=$5
		WHERE id=$6`,
		p.Name, p.Description, p.WholesalePrice, p.RetailPrice, p.Quantity, p.ID)
	return err
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64, forAdmin bool) (*Product, error) {
	query := `
		SELECT id, name, description, wholesale_price, retail_price, quantity
		FROM product WHERE id=$1`
	if !forAdmin {
		query += ` AND quantity > 0`
	}
	p := &Product{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.WholesalePrice, &p.RetailPrice, &p.Quantity)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *postgresRepo) List(ctx context.Context, forAdmin bool) ([]*Product, error) {
	query := `
		SELECT id, name, description, wholesale_price, retail_price, quantity
		FROM product`
	if !forAdmin {
		query += ` WHERE quantity > 0`
	}
	query += ` ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*Product
	for rows.Next() {
		p := &Product{}
		if err := rows.Scan(&p.ID, &p.Name, &p.Description,
			&p.WholesalePrice, &p.RetailPrice, &p.Quantity); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
