package shopsdk

import (
	"context"
	"net/http"
)

// ListCatalog returns the published products of all active shops.
func (c *SDKClient) ListCatalog(ctx context.Context) (*ListCatalogResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/catalog/products", nil)
	if err != nil {
		return nil, err
	}

	var out ListCatalogResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	return &out, nil
}

// GetCatalogProduct returns one published product by id.
func (c *SDKClient) GetCatalogProduct(ctx context.Context, productID string) (*CatalogProductResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/catalog/products/"+productID, nil)
	if err != nil {
		return nil, err
	}

	var out CatalogProductResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	return &out, nil
}
