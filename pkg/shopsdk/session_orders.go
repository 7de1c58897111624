package shopsdk

import (
	"context"
	"net/http"
)

// ListShopOrders returns the orders placed against the authenticated
// vendor's shop.
func (s *Session) ListShopOrders(ctx context.Context) (*ListOrdersResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/orders", nil)
	if err != nil {
		return nil, err
	}

	var out ListOrdersResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	return &out, nil
}

// ShipOrder marks a placed order of the authenticated vendor's shop as
// shipped.
func (s *Session) ShipOrder(ctx context.Context, orderID string) (*OrderResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/orders/"+orderID+"/ship", nil)
	if err != nil {
		return nil, err
	}

	var out OrderResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	return &out, nil
}

// PlaceOrder places an order for a published product as the authenticated
// customer.
func (s *Session) PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*OrderResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/my/orders", req)
	if err != nil {
		return nil, err
	}

	var out OrderResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}

	return &out, nil
}

// ListMyOrders returns the orders placed by the authenticated customer.
func (s *Session) ListMyOrders(ctx context.Context) (*ListOrdersResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/my/orders", nil)
	if err != nil {
		return nil, err
	}

	var out ListOrdersResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	return &out, nil
}
