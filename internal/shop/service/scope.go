package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/loomandfold/loom/internal/shop/domain"
	"github.com/loomandfold/loom/internal/shop/store"
	"github.com/loomandfold/loom/pkg/slogx"
)

// ErrNoScope means the authenticated user owns no shop. Shop-scoped
// operations must refuse outright on this; there is no partial or
// unscoped fallback.
var ErrNoScope = errors.New("no shop scope for this account")

// ScopeService turns an authenticated identity into the tenant scope its
// shop-owned operations run under. The shop id never comes from request
// input, only from this lookup.
type ScopeService struct {
	Store store.Store
}

// DeriveShopScope resolves the shop owned by userID and returns its id.
// Exactly one store read. A user without a shop gets ErrNoScope.
func (s *ScopeService) DeriveShopScope(ctx context.Context, userID string) (string, error) {
	log := slogx.FromContext(ctx)

	shop, err := s.Store.Shops().GetShopByOwner(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("shop-scoped operation attempted without a shop",
				slog.String("user_id", userID),
			)
			return "", ErrNoScope
		}
		log.Error("failed to derive shop scope", slog.Any("error", err))
		return "", err
	}

	return shop.ID, nil
}

// Role collapses the session's role tags into one effective role. No
// store access; precedence is admin > vendor > customer.
func (s *ScopeService) Role(tags []string) domain.Role {
	return domain.ResolveRole(tags)
}
