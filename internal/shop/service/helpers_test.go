package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/loomandfold/loom/internal/shop/domain"
	"github.com/loomandfold/loom/internal/shop/store"
	"github.com/loomandfold/loom/internal/shop/store/drivers/sqlite"
	"github.com/loomandfold/loom/pkg/cryptox"
	"github.com/loomandfold/loom/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "service-test-*")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	cryptox.SetPepperPath(filepath.Join(dir, "pepper.key"))

	os.Exit(m.Run())
}

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func seedUser(t *testing.T, s store.Store, email string, role domain.Role) domain.User {
	t.Helper()

	user := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		DisplayName:  email,
		PasswordHash: "hash",
		Role:         role,
	}
	require.NoError(t, s.Users().CreateUser(context.Background(), user))
	return user
}

func seedShop(t *testing.T, s store.Store, owner domain.User, name string, status domain.ShopStatus) domain.Shop {
	t.Helper()

	shop := domain.Shop{
		ID:          idx.New().String(),
		OwnerUserID: owner.ID,
		Name:        name,
		Status:      status,
	}
	require.NoError(t, s.Shops().CreateShop(context.Background(), shop))
	return shop
}

func seedProduct(t *testing.T, s store.Store, shopID, title string, priceCents, stock int64, published bool) domain.Product {
	t.Helper()

	product := domain.Product{
		ID:         idx.New().String(),
		ShopID:     shopID,
		Title:      title,
		PriceCents: priceCents,
		Stock:      stock,
		Published:  published,
	}
	require.NoError(t, s.Products().CreateProduct(context.Background(), product))
	return product
}
