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

var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidProduct  = errors.New("invalid product")
)

// ProductInput carries the vendor-editable fields of a product.
type ProductInput struct {
	Title       string
	Description string
	PriceCents  int64
	Stock       int64
	Published   bool
}

func (in ProductInput) validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return ErrInvalidProduct
	}
	if in.PriceCents < 0 || in.Stock < 0 {
		return ErrInvalidProduct
	}
	return nil
}

// ProductService manages a shop's products. Every method takes the
// derived shop id; none accepts a tenant identifier from request input.
type ProductService struct {
	Store store.Store
}

// GetProduct fetches one product within the shop's scope.
func (s *ProductService) GetProduct(ctx context.Context, shopID, productID string) (domain.Product, error) {
	p, err := s.Store.Products().GetProduct(ctx, shopID, productID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Product{}, ErrProductNotFound
		}
		slogx.FromContext(ctx).Error("failed to fetch product", slog.Any("error", err))
		return domain.Product{}, err
	}
	return p, nil
}

// ListProducts returns the shop's products, newest first.
func (s *ProductService) ListProducts(ctx context.Context, shopID string) ([]domain.Product, error) {
	products, err := s.Store.Products().ListProducts(ctx, shopID)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list products", slog.Any("error", err))
		return nil, err
	}
	return products, nil
}

// CreateProduct validates the input and inserts a product under the shop.
func (s *ProductService) CreateProduct(ctx context.Context, shopID string, in ProductInput) (domain.Product, error) {
	log := slogx.FromContext(ctx)

	if err := in.validate(); err != nil {
		return domain.Product{}, err
	}

	p := domain.Product{
		ID:          idx.New().String(),
		ShopID:      shopID,
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		PriceCents:  in.PriceCents,
		Stock:       in.Stock,
		Published:   in.Published,
	}

	if err := s.Store.Products().CreateProduct(ctx, p); err != nil {
		log.Error("failed to create product",
			slog.String("shop_id", shopID),
			slog.Any("error", err),
		)
		return domain.Product{}, err
	}

	log.Debug("product created",
		slog.String("product_id", p.ID),
		slog.String("shop_id", shopID),
	)

	return p, nil
}

// UpdateProduct replaces the mutable fields of a product within the
// shop's scope.
func (s *ProductService) UpdateProduct(ctx context.Context, shopID, productID string, in ProductInput) (domain.Product, error) {
	log := slogx.FromContext(ctx)

	if err := in.validate(); err != nil {
		return domain.Product{}, err
	}

	p := domain.Product{
		ID:          productID,
		ShopID:      shopID,
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		PriceCents:  in.PriceCents,
		Stock:       in.Stock,
		Published:   in.Published,
	}

	if err := s.Store.Products().UpdateProduct(ctx, p); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Product{}, ErrProductNotFound
		}
		log.Error("failed to update product",
			slog.String("product_id", productID),
			slog.String("shop_id", shopID),
			slog.Any("error", err),
		)
		return domain.Product{}, err
	}

	return s.GetProduct(ctx, shopID, productID)
}

// DeleteProduct removes a product within the shop's scope.
func (s *ProductService) DeleteProduct(ctx context.Context, shopID, productID string) error {
	err := s.Store.Products().DeleteProduct(ctx, shopID, productID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrProductNotFound
		}
		slogx.FromContext(ctx).Error("failed to delete product",
			slog.String("product_id", productID),
			slog.String("shop_id", shopID),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

// ListCatalog returns published products of active shops for the public
// catalog.
func (s *ProductService) ListCatalog(ctx context.Context) ([]domain.Product, error) {
	products, err := s.Store.Products().ListPublishedProducts(ctx)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list catalog", slog.Any("error", err))
		return nil, err
	}
	return products, nil
}

// GetCatalogProduct returns one published product of an active shop.
// Unpublished products and products of pending shops are not found.
func (s *ProductService) GetCatalogProduct(ctx context.Context, productID string) (domain.Product, error) {
	p, err := s.Store.Products().GetPublishedProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Product{}, ErrProductNotFound
		}
		slogx.FromContext(ctx).Error("failed to fetch catalog product", slog.Any("error", err))
		return domain.Product{}, err
	}
	return p, nil
}
