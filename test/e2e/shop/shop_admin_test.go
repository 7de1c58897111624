package shop_test

import (
	"net/http"
	"testing"

	"github.com/loomandfold/loom/pkg/shopsdk"
	"github.com/stretchr/testify/require"
)

// TestAdminListShops checks the admin overview sees every shop,
// whatever its status.
func TestAdminListShops(t *testing.T) {
	env, cleanup := setupShopContainer(t)
	defer cleanup()
	ctx := t.Context()

	registerVendor(t, env, "sara@atelier.example", "Sara", "Atelier Sara")
	setupActiveVendor(t, env, "tom@atelier.example", "Tom", "Atelier Tom")

	admin := mintSession(t, env, "usr-admin-e2e", "admin")
	resp, err := admin.ListShops(ctx)
	require.NoError(t, err)
	require.Len(t, resp.Shops, 2)

	statuses := map[string]string{}
	for _, s := range resp.Shops {
		statuses[s.Name] = s.Status
	}
	require.Equal(t, "pending", statuses["Atelier Sara"])
	require.Equal(t, "active", statuses["Atelier Tom"])
}

// TestApproveShopTwice checks approving an active shop conflicts.
func TestApproveShopTwice(t *testing.T) {
	env, cleanup := setupShopContainer(t)
	defer cleanup()
	ctx := t.Context()

	created := registerVendor(t, env, "uma@atelier.example", "Uma", "Atelier Uma")

	admin := mintSession(t, env, "usr-admin-e2e", "admin")

	approved, err := admin.ApproveShop(ctx, created.ShopID)
	require.NoError(t, err)
	require.Equal(t, "active", approved.Status)

	_, err = admin.ApproveShop(ctx, created.ShopID)
	assertAPIError(t, err, http.StatusConflict, shopsdk.ErrorCodeConflict)
}

// TestApproveUnknownShop checks approval of a nonexistent shop is a 404.
func TestApproveUnknownShop(t *testing.T) {
	env, cleanup := setupShopContainer(t)
	defer cleanup()

	admin := mintSession(t, env, "usr-admin-e2e", "admin")

	_, err := admin.ApproveShop(t.Context(), "shop-does-not-exist")
	assertAPIError(t, err, http.StatusNotFound, shopsdk.ErrorCodeNotFound)
}

// TestAdminRoutesRequireAdminRole checks vendor and customer sessions
// are turned away from the admin surface.
func TestAdminRoutesRequireAdminRole(t *testing.T) {
	env, cleanup := setupShopContainer(t)
	defer cleanup()
	ctx := t.Context()

	created := registerVendor(t, env, "vic@atelier.example", "Vic", "Atelier Vic")
	vendor := mintSession(t, env, created.UserID, "vendor")

	_, err := vendor.ListShops(ctx)
	assertAPIError(t, err, http.StatusForbidden, shopsdk.ErrorCodeInsufficientRole)

	_, err = vendor.ApproveShop(ctx, created.ShopID)
	assertAPIError(t, err, http.StatusForbidden, shopsdk.ErrorCodeInsufficientRole)
}
