package sqlite

import (
	"context"

	"github.com/loomandfold/loom/internal/shop/domain"
)

type productsRepo struct {
	q dbtx
}

const productColumns = `id, shop_id, title, description, price_cents, stock, published, created_at, updated_at`

func (r *productsRepo) scanProduct(row interface{ Scan(...any) error }) (domain.Product, error) {
	var p domain.Product
	err := row.Scan(&p.ID, &p.ShopID, &p.Title, &p.Description,
		&p.PriceCents, &p.Stock, &p.Published, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return domain.Product{}, mapNotFound(err)
	}
	return p, nil
}

func (r *productsRepo) GetProduct(ctx context.Context, shopID, productID string) (domain.Product, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = ? AND shop_id = ?`,
		productID, shopID)
	return r.scanProduct(row)
}

func (r *productsRepo) ListProducts(ctx context.Context, shopID string) ([]domain.Product, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+productColumns+` FROM products WHERE shop_id = ? ORDER BY created_at DESC`,
		shopID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		p, err := r.scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *productsRepo) CreateProduct(ctx context.Context, p domain.Product) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO products (id, shop_id, title, description, price_cents, stock, published)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.ShopID, p.Title, p.Description, p.PriceCents, p.Stock, p.Published)
	return mapConstraint(err)
}

func (r *productsRepo) UpdateProduct(ctx context.Context, p domain.Product) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE products
		 SET title = ?, description = ?, price_cents = ?, stock = ?, published = ?,
		     updated_at = CURRENT_TIMESTAMP
		 WHERE id = ? AND shop_id = ?`,
		p.Title, p.Description, p.PriceCents, p.Stock, p.Published, p.ID, p.ShopID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *productsRepo) DecrementStock(ctx context.Context, productID string, quantity int64) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE products
		 SET stock = stock - ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ? AND stock >= ?`,
		quantity, productID, quantity)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *productsRepo) DeleteProduct(ctx context.Context, shopID, productID string) error {
	res, err := r.q.ExecContext(ctx,
		`DELETE FROM products WHERE id = ? AND shop_id = ?`, productID, shopID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *productsRepo) GetPublishedProduct(ctx context.Context, productID string) (domain.Product, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+catalogColumns+`
		 FROM products p JOIN shops s ON s.id = p.shop_id
		 WHERE p.id = ? AND p.published = TRUE AND s.status = 'active'`,
		productID)
	return r.scanProduct(row)
}

func (r *productsRepo) ListPublishedProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+catalogColumns+`
		 FROM products p JOIN shops s ON s.id = p.shop_id
		 WHERE p.published = TRUE AND s.status = 'active'
		 ORDER BY p.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		p, err := r.scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// catalogColumns is productColumns with the "p." alias applied, for the
// catalog joins above.
const catalogColumns = `p.id, p.shop_id, p.title, p.description, p.price_cents, p.stock, p.published, p.created_at, p.updated_at`
