package shopsdk

import (
	"context"
	"net/http"
)

// GetShop returns the shop owned by the authenticated vendor.
func (s *Session) GetShop(ctx context.Context) (*ShopResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/shop", nil)
	if err != nil {
		return nil, err
	}

	var shop ShopResponse
	if err := decodeJSON(resp, &shop, http.StatusOK); err != nil {
		return nil, err
	}

	return &shop, nil
}

// ListProducts returns the products of the authenticated vendor's shop.
func (s *Session) ListProducts(ctx context.Context) (*ListProductsResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/products", nil)
	if err != nil {
		return nil, err
	}

	var out ListProductsResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	return &out, nil
}

// GetProduct returns one product of the authenticated vendor's shop.
func (s *Session) GetProduct(ctx context.Context, productID string) (*ProductResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/products/"+productID, nil)
	if err != nil {
		return nil, err
	}

	var out ProductResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	return &out, nil
}

// CreateProduct creates a product in the authenticated vendor's shop.
func (s *Session) CreateProduct(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/products", req)
	if err != nil {
		return nil, err
	}

	var out ProductResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}

	return &out, nil
}

// UpdateProduct replaces the mutable fields of a product in the
// authenticated vendor's shop.
func (s *Session) UpdateProduct(ctx context.Context, productID string, req UpdateProductRequest) (*ProductResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPut, "/v1/products/"+productID, req)
	if err != nil {
		return nil, err
	}

	var out ProductResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	return &out, nil
}

// DeleteProduct deletes one product of the authenticated vendor's shop.
func (s *Session) DeleteProduct(ctx context.Context, productID string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, "/v1/products/"+productID, nil)
	if err != nil {
		return err
	}

	return checkStatusNoContent(resp)
}
