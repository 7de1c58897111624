package sqlite

import (
	"context"

	"github.com/loomandfold/loom/internal/shop/domain"
)

type looksRepo struct {
	q dbtx
}

func (r *looksRepo) ListLooksByCustomer(ctx context.Context, customerID string) ([]domain.Look, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT id, customer_id, name, product_ids, created_at
		 FROM looks WHERE customer_id = ? ORDER BY created_at DESC`,
		customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var looks []domain.Look
	for rows.Next() {
		var l domain.Look
		var ids string
		if err := rows.Scan(&l.ID, &l.CustomerID, &l.Name, &ids, &l.CreatedAt); err != nil {
			return nil, err
		}
		l.ProductIDs = splitIDs(ids)
		looks = append(looks, l)
	}
	return looks, rows.Err()
}

func (r *looksRepo) CreateLook(ctx context.Context, l domain.Look) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO looks (id, customer_id, name, product_ids)
		 VALUES (?, ?, ?, ?)`,
		l.ID, l.CustomerID, l.Name, joinIDs(l.ProductIDs))
	return mapConstraint(err)
}
