package service

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/loomandfold/loom/internal/shop/domain"
	"github.com/stretchr/testify/require"
)

func TestHousekeepingCleanup(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	staleOwner := seedUser(t, s, "stale@example.com", domain.RoleVendor)
	stale := seedShop(t, s, staleOwner, "Abandoned", domain.ShopPending)
	activeOwner := seedUser(t, s, "active@example.com", domain.RoleVendor)
	active := seedShop(t, s, activeOwner, "Open", domain.ShopActive)

	product := seedProduct(t, s, active.ID, "Coat", 1000, 10, true)
	customer := seedUser(t, s, "customer@example.com", domain.RoleCustomer)

	orders := &OrderService{Store: s}
	cancelled, err := orders.PlaceOrder(ctx, customer.ID, product.ID, 1)
	require.NoError(t, err)
	require.NoError(t, s.Orders().UpdateOrderStatus(ctx, active.ID, cancelled.ID, domain.OrderCancelled))
	kept, err := orders.PlaceOrder(ctx, customer.ID, product.ID, 1)
	require.NoError(t, err)

	svc := NewHousekeepingService(s, slog.Default(), time.Hour)
	// Future cutoffs make every eligible row stale without clock games.
	svc.PendingShopMaxAge = -time.Hour
	svc.CancelledOrderRetention = -time.Hour

	svc.cleanup()

	t.Run("stale pending shop is gone", func(t *testing.T) {
		_, err := s.Shops().GetShopByID(ctx, stale.ID)
		require.Error(t, err)
	})

	t.Run("active shop survives", func(t *testing.T) {
		_, err := s.Shops().GetShopByID(ctx, active.ID)
		require.NoError(t, err)
	})

	t.Run("cancelled order past retention is gone, placed order survives", func(t *testing.T) {
		remaining, err := s.Orders().ListShopOrders(ctx, active.ID)
		require.NoError(t, err)
		require.Len(t, remaining, 1)
		require.Equal(t, kept.ID, remaining[0].ID)
	})
}

func TestHousekeepingStartStop(t *testing.T) {
	s := newTestStore(t)

	svc := NewHousekeepingService(s, slog.Default(), time.Hour)
	svc.Start()
	svc.Stop()
}
