package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/loomandfold/loom/internal/shop/domain"
	"github.com/loomandfold/loom/internal/shop/store"
	"github.com/loomandfold/loom/pkg/idx"
	"github.com/loomandfold/loom/pkg/slogx"
)

var ErrInvalidLook = errors.New("invalid look")

// LookService stores and fetches outfit results. The styling pipeline
// writes looks through SaveLook; customers read their own back.
type LookService struct {
	Store store.Store
}

// SaveLook stores an outfit result for a customer. A look needs a name
// and at least one product.
func (s *LookService) SaveLook(ctx context.Context, customerID, name string, productIDs []string) (domain.Look, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(productIDs) == 0 {
		return domain.Look{}, ErrInvalidLook
	}

	look := domain.Look{
		ID:         idx.New().String(),
		CustomerID: customerID,
		Name:       name,
		ProductIDs: productIDs,
	}
	if err := s.Store.Looks().CreateLook(ctx, look); err != nil {
		slogx.FromContext(ctx).Error("failed to save look",
			slog.String("customer_id", customerID),
			slog.Any("error", err),
		)
		return domain.Look{}, err
	}
	return look, nil
}

// ListLooks returns the caller's stored outfit results, newest first.
func (s *LookService) ListLooks(ctx context.Context, customerID string) ([]domain.Look, error) {
	looks, err := s.Store.Looks().ListLooksByCustomer(ctx, customerID)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list looks",
			slog.String("customer_id", customerID),
			slog.Any("error", err),
		)
		return nil, err
	}
	return looks, nil
}
