package sqlite

import (
	"context"
	"time"

	"github.com/loomandfold/loom/internal/shop/domain"
)

type ordersRepo struct {
	q dbtx
}

const orderColumns = `id, shop_id, customer_id, product_id, quantity, total_cents, status, created_at, updated_at`

func (r *ordersRepo) scanOrder(row interface{ Scan(...any) error }) (domain.Order, error) {
	var o domain.Order
	var status string
	err := row.Scan(&o.ID, &o.ShopID, &o.CustomerID, &o.ProductID,
		&o.Quantity, &o.TotalCents, &status, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return domain.Order{}, mapNotFound(err)
	}
	o.Status = domain.OrderStatus(status)
	return o, nil
}

func (r *ordersRepo) CreateOrder(ctx context.Context, o domain.Order) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO orders (id, shop_id, customer_id, product_id, quantity, total_cents, status)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		o.ID, o.ShopID, o.CustomerID, o.ProductID, o.Quantity, o.TotalCents, string(o.Status))
	return mapConstraint(err)
}

func (r *ordersRepo) GetShopOrder(ctx context.Context, shopID, orderID string) (domain.Order, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = ? AND shop_id = ?`,
		orderID, shopID)
	return r.scanOrder(row)
}

func (r *ordersRepo) ListShopOrders(ctx context.Context, shopID string) ([]domain.Order, error) {
	return r.listOrders(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE shop_id = ? ORDER BY created_at DESC`,
		shopID)
}

func (r *ordersRepo) ListCustomerOrders(ctx context.Context, customerID string) ([]domain.Order, error) {
	return r.listOrders(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE customer_id = ? ORDER BY created_at DESC`,
		customerID)
}

func (r *ordersRepo) listOrders(ctx context.Context, query string, arg any) ([]domain.Order, error) {
	rows, err := r.q.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		o, err := r.scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *ordersRepo) UpdateOrderStatus(ctx context.Context, shopID, orderID string, status domain.OrderStatus) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE orders SET status = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ? AND shop_id = ?`,
		string(status), orderID, shopID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *ordersRepo) DeleteCancelledOrdersBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.q.ExecContext(ctx,
		`DELETE FROM orders WHERE status = 'cancelled' AND updated_at < ?`,
		cutoff.UTC().Format("2006-01-02 15:04:05"))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
