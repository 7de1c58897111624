package service

import (
	"context"
	"testing"

	"github.com/loomandfold/loom/internal/shop/domain"
	"github.com/stretchr/testify/require"
)

func TestSaveAndListLooks(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	owner := seedUser(t, s, "owner@example.com", domain.RoleVendor)
	shop := seedShop(t, s, owner, "Atelier", domain.ShopActive)
	coat := seedProduct(t, s, shop.ID, "Coat", 12000, 5, true)
	scarf := seedProduct(t, s, shop.ID, "Scarf", 3000, 5, true)

	wren := seedUser(t, s, "wren@example.com", domain.RoleCustomer)
	sage := seedUser(t, s, "sage@example.com", domain.RoleCustomer)

	svc := &LookService{Store: s}

	saved, err := svc.SaveLook(ctx, wren.ID, "Autumn layers", []string{coat.ID, scarf.ID})
	require.NoError(t, err)
	require.NotEmpty(t, saved.ID)

	_, err = svc.SaveLook(ctx, wren.ID, "Just the coat", []string{coat.ID})
	require.NoError(t, err)

	t.Run("customer sees own looks with product ids intact", func(t *testing.T) {
		looks, err := svc.ListLooks(ctx, wren.ID)
		require.NoError(t, err)
		require.Len(t, looks, 2)

		byID := map[string]domain.Look{}
		for _, l := range looks {
			byID[l.ID] = l
		}
		require.Equal(t, []string{coat.ID, scarf.ID}, byID[saved.ID].ProductIDs)
		require.Equal(t, "Autumn layers", byID[saved.ID].Name)
	})

	t.Run("other customers see nothing", func(t *testing.T) {
		looks, err := svc.ListLooks(ctx, sage.ID)
		require.NoError(t, err)
		require.Empty(t, looks)
	})

	t.Run("nameless or empty looks rejected", func(t *testing.T) {
		_, err := svc.SaveLook(ctx, wren.ID, "  ", []string{coat.ID})
		require.ErrorIs(t, err, ErrInvalidLook)

		_, err = svc.SaveLook(ctx, wren.ID, "No products", nil)
		require.ErrorIs(t, err, ErrInvalidLook)
	})
}
