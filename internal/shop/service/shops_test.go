package service

import (
	"context"
	"testing"

	"github.com/loomandfold/loom/internal/shop/domain"
	"github.com/stretchr/testify/require"
)

func TestApproveShop(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	owner := seedUser(t, s, "owner@example.com", domain.RoleVendor)
	pending := seedShop(t, s, owner, "Atelier", domain.ShopPending)

	svc := &ShopService{Store: s}

	t.Run("pending shop becomes active", func(t *testing.T) {
		approved, err := svc.ApproveShop(ctx, pending.ID)
		require.NoError(t, err)
		require.Equal(t, domain.ShopActive, approved.Status)

		stored, err := svc.GetShop(ctx, pending.ID)
		require.NoError(t, err)
		require.Equal(t, domain.ShopActive, stored.Status)
	})

	t.Run("active shop cannot be approved again", func(t *testing.T) {
		_, err := svc.ApproveShop(ctx, pending.ID)
		require.ErrorIs(t, err, ErrShopAlreadyActive)
	})

	t.Run("unknown shop is not found", func(t *testing.T) {
		_, err := svc.ApproveShop(ctx, "no-such-shop")
		require.ErrorIs(t, err, ErrShopNotFound)
	})
}

func TestListShops(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	a := seedUser(t, s, "a@example.com", domain.RoleVendor)
	seedShop(t, s, a, "First", domain.ShopActive)
	b := seedUser(t, s, "b@example.com", domain.RoleVendor)
	seedShop(t, s, b, "Second", domain.ShopPending)

	svc := &ShopService{Store: s}

	shops, err := svc.ListShops(ctx)
	require.NoError(t, err)
	require.Len(t, shops, 2)
}
