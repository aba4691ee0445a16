package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"prism/internal/domain"
	"prism/internal/ports"
)

// ProductRepository

func (db *DB) Create(ctx context.Context, p domain.NewProduct) (domain.Product, error) {
	var out domain.Product
	err := db.pool.QueryRow(ctx, `
		INSERT INTO products (name, category, company_name, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, category, company_name, description, created_at
	`, p.Name, p.Category, p.CompanyName, p.Description).
		Scan(&out.ID, &out.Name, &out.Category, &out.CompanyName, &out.Description, &out.CreatedAt)
	return out, err
}

func (db *DB) List(ctx context.Context) ([]domain.Product, error) {
	rows, err := db.pool.Query(ctx, `
		SELECT id, name, category, company_name, description, created_at
		FROM products
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.CompanyName, &p.Description, &p.CreatedAt); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (db *DB) Get(ctx context.Context, id string) (domain.Product, error) {
	var p domain.Product
	err := db.pool.QueryRow(ctx, `
		SELECT id, name, category, company_name, description, created_at
		FROM products WHERE id = $1
	`, id).Scan(&p.ID, &p.Name, &p.Category, &p.CompanyName, &p.Description, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return p, ports.ErrNotFound
	}
	return p, err
}

func (db *DB) Update(ctx context.Context, id string, p domain.NewProduct) (domain.Product, error) {
	var out domain.Product
	err := db.pool.QueryRow(ctx, `
		UPDATE products
		SET name = $2, category = $3, company_name = $4, description = $5
		WHERE id = $1
		RETURNING id, name, category, company_name, description, created_at
	`, id, p.Name, p.Category, p.CompanyName, p.Description).
		Scan(&out.ID, &out.Name, &out.Category, &out.CompanyName, &out.Description, &out.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return out, ports.ErrNotFound
	}
	return out, err
}

func (db *DB) Delete(ctx context.Context, id string) error {
	tag, err := db.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ports.ErrNotFound
	}
	return nil
}
