package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/loomandfold/loom/internal/shop/domain"
	"github.com/loomandfold/loom/internal/shop/store"
	"github.com/loomandfold/loom/pkg/idx"
	"github.com/loomandfold/loom/pkg/slogx"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidOrder      = errors.New("invalid order")
	ErrOrderNotPlaced    = errors.New("order is not in the placed state")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// OrderService covers both sides of an order: the customer who places it
// and the shop that fulfils it.
type OrderService struct {
	Store store.Store
}

// PlaceOrder creates an order for a published product of an active shop.
// Stock is checked and decremented in the same transaction as the insert.
func (s *OrderService) PlaceOrder(ctx context.Context, customerID, productID string, quantity int64) (domain.Order, error) {
	log := slogx.FromContext(ctx)

	if productID == "" || quantity <= 0 {
		return domain.Order{}, ErrInvalidOrder
	}

	var order domain.Order
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		product, err := tx.Products().GetPublishedProduct(ctx, productID)
		if err != nil {
			return err
		}

		if product.Stock < quantity {
			return ErrInsufficientStock
		}

		order = domain.Order{
			ID:         idx.New().String(),
			ShopID:     product.ShopID,
			CustomerID: customerID,
			ProductID:  product.ID,
			Quantity:   quantity,
			TotalCents: product.PriceCents * quantity,
			Status:     domain.OrderPlaced,
		}

		if err := tx.Orders().CreateOrder(ctx, order); err != nil {
			return err
		}

		// The decrement re-checks stock in the UPDATE itself; a zero-row
		// result here means another order drained it first.
		if err := tx.Products().DecrementStock(ctx, product.ID, quantity); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInsufficientStock
			}
			return err
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Order{}, ErrProductNotFound
		}
		if errors.Is(err, ErrInsufficientStock) {
			return domain.Order{}, ErrInsufficientStock
		}
		log.Error("failed to place order",
			slog.String("product_id", productID),
			slog.Any("error", err),
		)
		return domain.Order{}, err
	}

	log.Info("order placed",
		slog.String("order_id", order.ID),
		slog.String("shop_id", order.ShopID),
		slog.String("product_id", order.ProductID),
		slog.Int64("quantity", order.Quantity),
	)

	return order, nil
}

// ListCustomerOrders returns the orders placed by one customer.
func (s *OrderService) ListCustomerOrders(ctx context.Context, customerID string) ([]domain.Order, error) {
	orders, err := s.Store.Orders().ListCustomerOrders(ctx, customerID)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list customer orders", slog.Any("error", err))
		return nil, err
	}
	return orders, nil
}

// ListShopOrders returns the orders of one shop, newest first.
func (s *OrderService) ListShopOrders(ctx context.Context, shopID string) ([]domain.Order, error) {
	orders, err := s.Store.Orders().ListShopOrders(ctx, shopID)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list shop orders", slog.Any("error", err))
		return nil, err
	}
	return orders, nil
}

// ShipOrder marks a placed order of the shop as shipped. Only the placed
// state can transition to shipped.
func (s *OrderService) ShipOrder(ctx context.Context, shopID, orderID string) (domain.Order, error) {
	log := slogx.FromContext(ctx)

	order, err := s.Store.Orders().GetShopOrder(ctx, shopID, orderID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Order{}, ErrOrderNotFound
		}
		log.Error("failed to fetch order", slog.Any("error", err))
		return domain.Order{}, err
	}

	if order.Status != domain.OrderPlaced {
		return domain.Order{}, ErrOrderNotPlaced
	}

	if err := s.Store.Orders().UpdateOrderStatus(ctx, shopID, orderID, domain.OrderShipped); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Order{}, ErrOrderNotFound
		}
		log.Error("failed to mark order shipped",
			slog.String("order_id", orderID),
			slog.String("shop_id", shopID),
			slog.Any("error", err),
		)
		return domain.Order{}, err
	}

	order.Status = domain.OrderShipped

	log.Info("order shipped",
		slog.String("order_id", order.ID),
		slog.String("shop_id", shopID),
	)

	return order, nil
}
