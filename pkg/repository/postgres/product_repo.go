package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/storekit/backend/pkg/product"
)

// ProductRepository implements product.Repository backed by PostgreSQL (pgx).
// Prices live in a NUMERIC(10,2) column and cross the wire as text so they
// never pass through a binary float.
type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) (*ProductRepository, error) {
	repo := &ProductRepository{pool: pool}
	if err := repo.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *ProductRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS products (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT,
			price NUMERIC(10,2) NOT NULL CHECK (price >= 0),
			image_url TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE INDEX IF NOT EXISTS idx_products_created_at ON products(created_at DESC);
	`)
	return err
}

func (r *ProductRepository) Create(ctx context.Context, p product.Product) (product.Product, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO products (name, description, price, image_url)
		VALUES ($1, $2, $3::numeric, $4)
		RETURNING id, price::text, created_at, updated_at
	`, p.Name, p.Description, p.Price, p.ImageURL)
	if err := row.Scan(&p.ID, &p.Price, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return product.Product{}, mapConstraint(err)
	}
	return p, nil
}

func (r *ProductRepository) FindPage(ctx context.Context, limit, offset int) ([]product.Product, int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM products`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, description, price::text, image_url, created_at, updated_at
		FROM products
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var res []product.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, err
		}
		res = append(res, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return res, total, nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id int64) (product.Product, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, description, price::text, image_url, created_at, updated_at
		FROM products WHERE id = $1
	`, id)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return product.Product{}, product.ErrNotFound
		}
		return product.Product{}, err
	}
	return p, nil
}

func (r *ProductRepository) Update(ctx context.Context, p product.Product) (product.Product, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE products
		SET name = $2, description = $3, price = $4::numeric, image_url = $5, updated_at = now()
		WHERE id = $1
		RETURNING price::text, updated_at
	`, p.ID, p.Name, p.Description, p.Price, p.ImageURL)
	if err := row.Scan(&p.Price, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return product.Product{}, product.ErrNotFound
		}
		return product.Product{}, mapConstraint(err)
	}
	return p, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return product.ErrNotFound
	}
	return nil
}

func scanProduct(row pgx.Row) (product.Product, error) {
	var p product.Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return product.Product{}, err
	}
	p.CreatedAt = p.CreatedAt.UTC()
	p.UpdatedAt = p.UpdatedAt.UTC()
	return p, nil
}

// mapConstraint turns check/not-null violations into the domain's
// constraint error so callers can answer with a validation failure.
func mapConstraint(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23514", "23502": // check_violation, not_null_violation
			return product.ErrConstraint
		}
	}
	return err
}
