package service

import (
	"context"
	"testing"

	"github.com/loomandfold/loom/internal/shop/domain"
	"github.com/stretchr/testify/require"
)

func TestDeriveShopScope(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	owner := seedUser(t, s, "owner@example.com", domain.RoleVendor)
	shop := seedShop(t, s, owner, "Atelier", domain.ShopActive)
	nobody := seedUser(t, s, "nobody@example.com", domain.RoleCustomer)

	svc := &ScopeService{Store: s}

	t.Run("owner resolves to their shop", func(t *testing.T) {
		scope, err := svc.DeriveShopScope(ctx, owner.ID)
		require.NoError(t, err)
		require.Equal(t, shop.ID, scope)
	})

	t.Run("user without a shop gets ErrNoScope", func(t *testing.T) {
		_, err := svc.DeriveShopScope(ctx, nobody.ID)
		require.ErrorIs(t, err, ErrNoScope)
	})

	t.Run("unknown user gets ErrNoScope", func(t *testing.T) {
		_, err := svc.DeriveShopScope(ctx, "does-not-exist")
		require.ErrorIs(t, err, ErrNoScope)
	})
}

func TestRoleResolution(t *testing.T) {
	t.Parallel()

	svc := &ScopeService{}

	t.Run("highest tag wins", func(t *testing.T) {
		require.Equal(t, domain.RoleAdmin, svc.Role([]string{"customer", "admin", "vendor"}))
		require.Equal(t, domain.RoleVendor, svc.Role([]string{"customer", "vendor"}))
	})

	t.Run("unknown tags are ignored", func(t *testing.T) {
		require.Equal(t, domain.RoleVendor, svc.Role([]string{"superuser", "vendor"}))
	})

	t.Run("no recognised tag defaults to customer", func(t *testing.T) {
		require.Equal(t, domain.RoleCustomer, svc.Role(nil))
		require.Equal(t, domain.RoleCustomer, svc.Role([]string{"something-else"}))
	})
}
