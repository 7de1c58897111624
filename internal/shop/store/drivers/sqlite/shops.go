package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/loomandfold/loom/internal/shop/domain"
)

type shopsRepo struct {
	q dbtx
}

const shopColumns = `id, owner_user_id, name, status, created_at, updated_at`

func (r *shopsRepo) scanShop(row interface{ Scan(...any) error }) (domain.Shop, error) {
	var s domain.Shop
	var status string
	err := row.Scan(&s.ID, &s.OwnerUserID, &s.Name, &status, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return domain.Shop{}, mapNotFound(err)
	}
	s.Status = domain.ShopStatus(status)
	return s, nil
}

func (r *shopsRepo) GetShopByID(ctx context.Context, id string) (domain.Shop, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+shopColumns+` FROM shops WHERE id = ?`, id)
	return r.scanShop(row)
}

func (r *shopsRepo) GetShopByOwner(ctx context.Context, ownerUserID string) (domain.Shop, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+shopColumns+` FROM shops WHERE owner_user_id = ?`, ownerUserID)
	return r.scanShop(row)
}

func (r *shopsRepo) CreateShop(ctx context.Context, s domain.Shop) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO shops (id, owner_user_id, name, status)
		 VALUES (?, ?, ?, ?)`,
		s.ID, s.OwnerUserID, s.Name, string(s.Status))
	return mapConstraint(err)
}

func (r *shopsRepo) ListShops(ctx context.Context) ([]domain.Shop, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+shopColumns+` FROM shops ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shops []domain.Shop
	for rows.Next() {
		s, err := r.scanShop(rows)
		if err != nil {
			return nil, err
		}
		shops = append(shops, s)
	}
	return shops, rows.Err()
}

func (r *shopsRepo) ApproveShop(ctx context.Context, shopID string) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE shops SET status = 'active', updated_at = CURRENT_TIMESTAMP
		 WHERE id = ? AND status = 'pending'`, shopID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return mapNotFound(sql.ErrNoRows)
	}
	return nil
}

func (r *shopsRepo) DeleteStalePendingShops(ctx context.Context, cutoff time.Time) (int64, error) {
	// CURRENT_TIMESTAMP stores "YYYY-MM-DD HH:MM:SS" text, so the cutoff
	// must be bound in the same shape for the comparison to hold.
	res, err := r.q.ExecContext(ctx,
		`DELETE FROM shops WHERE status = 'pending' AND created_at < ?`,
		cutoff.UTC().Format("2006-01-02 15:04:05"))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
