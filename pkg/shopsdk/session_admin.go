package shopsdk

import (
	"context"
	"net/http"
)

// ListShops returns every shop on the platform. Requires the ADMIN role.
func (s *Session) ListShops(ctx context.Context) (*ListShopsResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/admin/shops", nil)
	if err != nil {
		return nil, err
	}

	var out ListShopsResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	return &out, nil
}

// ApproveShop moves a pending shop to active. Requires the ADMIN role.
func (s *Session) ApproveShop(ctx context.Context, shopID string) (*ShopResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/admin/shops/"+shopID+"/approve", nil)
	if err != nil {
		return nil, err
	}

	var out ShopResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	return &out, nil
}
