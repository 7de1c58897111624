package http

import (
	"errors"
	"net/http"

	"github.com/loomandfold/loom/internal/shop/service"
	"github.com/loomandfold/loom/pkg/httpx"
	"github.com/loomandfold/loom/pkg/shopsdk"
	"github.com/loomandfold/loom/pkg/slogx"
)

// CatalogHandler serves the public read-only catalog: published products
// of active shops. No session involved.
type CatalogHandler struct {
	ProductService *service.ProductService
}

// HandleList godoc
//
//	@Summary		List Catalog
//	@Description	Returns the published products of all active shops, newest first
//	@Tags			Catalog
//	@Produce		json
//	@Success		200	{object}	shopsdk.ListCatalogResponse	"products"
//	@Failure		500	{object}	shopsdk.ErrorResponse		"Internal server error"
//	@Router			/v1/catalog/products [get].
func (h *CatalogHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	products, err := h.ProductService.ListCatalog(ctx)
	if err != nil {
		shopsdk.ErrServerError.WriteError(w)
		return
	}

	out := shopsdk.ListCatalogResponse{Products: make([]shopsdk.CatalogProductResponse, 0, len(products))}
	for _, p := range products {
		out.Products = append(out.Products, catalogResponse(p))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet godoc
//
//	@Summary		Get Catalog Product
//	@Description	Returns one published product of an active shop
//	@Tags			Catalog
//	@Produce		json
//	@Param			id	path		string							true	"Product ID"
//	@Success		200	{object}	shopsdk.CatalogProductResponse	"product"
//	@Failure		404	{object}	shopsdk.ErrorResponse			"Product not available"
//	@Router			/v1/catalog/products/{id} [get].
func (h *CatalogHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	productID := r.PathValue("id")
	if productID == "" {
		shopsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	product, err := h.ProductService.GetCatalogProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			shopsdk.NewAPIError(http.StatusNotFound, shopsdk.ErrorCodeNotFound,
				"product "+productID+" is not available").WriteError(w)
			return
		}
		slogx.FromContext(ctx).Error("failed to load catalog product", "err", err)
		shopsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, catalogResponse(product))
}
