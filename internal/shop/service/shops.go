package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/loomandfold/loom/internal/shop/domain"
	"github.com/loomandfold/loom/internal/shop/store"
	"github.com/loomandfold/loom/pkg/slogx"
)

var (
	ErrShopNotFound      = errors.New("shop not found")
	ErrShopAlreadyActive = errors.New("shop is already active")
)

// ShopService covers the vendor's own-shop read and the admin approval
// surface.
type ShopService struct {
	Store store.Store
}

// GetShop fetches one shop by id. Vendor handlers call this with the
// derived scope id, admin handlers with a path id.
func (s *ShopService) GetShop(ctx context.Context, shopID string) (domain.Shop, error) {
	shop, err := s.Store.Shops().GetShopByID(ctx, shopID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Shop{}, ErrShopNotFound
		}
		slogx.FromContext(ctx).Error("failed to fetch shop", slog.Any("error", err))
		return domain.Shop{}, err
	}
	return shop, nil
}

// ListShops returns every shop on the platform, newest first.
func (s *ShopService) ListShops(ctx context.Context) ([]domain.Shop, error) {
	shops, err := s.Store.Shops().ListShops(ctx)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list shops", slog.Any("error", err))
		return nil, err
	}
	return shops, nil
}

// ApproveShop moves a pending shop to active and returns the updated shop.
func (s *ShopService) ApproveShop(ctx context.Context, shopID string) (domain.Shop, error) {
	log := slogx.FromContext(ctx)

	shop, err := s.Store.Shops().GetShopByID(ctx, shopID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("approval attempted for unknown shop", slog.String("shop_id", shopID))
			return domain.Shop{}, ErrShopNotFound
		}
		log.Error("failed to fetch shop for approval", slog.Any("error", err))
		return domain.Shop{}, err
	}

	if shop.Status == domain.ShopActive {
		return domain.Shop{}, ErrShopAlreadyActive
	}

	if err := s.Store.Shops().ApproveShop(ctx, shopID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Shop{}, ErrShopNotFound
		}
		log.Error("failed to approve shop", slog.String("shop_id", shopID), slog.Any("error", err))
		return domain.Shop{}, err
	}

	shop.Status = domain.ShopActive

	log.Info("shop approved",
		slog.String("shop_id", shop.ID),
		slog.String("owner_user_id", shop.OwnerUserID),
	)

	return shop, nil
}
