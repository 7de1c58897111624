package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/loomandfold/loom/internal/shop/service"
	"github.com/loomandfold/loom/pkg/httpx"
	"github.com/loomandfold/loom/pkg/shopsdk"
	"github.com/loomandfold/loom/pkg/slogx"
)

// ProductsHandler serves the vendor's product CRUD. Every operation runs
// under the shop scope derived from the session; product ids from the
// path are only ever combined with that scope.
type ProductsHandler struct {
	ScopeService   *service.ScopeService
	ProductService *service.ProductService
}

// HandleList godoc
//
//	@Summary		List Own Products
//	@Description	Returns all products of the authenticated vendor's shop, newest first
//	@Tags			Products
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	shopsdk.ListProductsResponse	"products"
//	@Failure		401	{object}	shopsdk.ErrorResponse			"Invalid or missing session"
//	@Failure		403	{object}	shopsdk.ErrorResponse			"No shop for this account"
//	@Failure		500	{object}	shopsdk.ErrorResponse			"Internal server error"
//	@Router			/v1/products [get].
func (h *ProductsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	shopID, ok := requireShopScope(w, r, h.ScopeService)
	if !ok {
		return
	}

	products, err := h.ProductService.ListProducts(ctx, shopID)
	if err != nil {
		shopsdk.ErrServerError.WriteError(w)
		return
	}

	out := shopsdk.ListProductsResponse{Products: make([]shopsdk.ProductResponse, 0, len(products))}
	for _, p := range products {
		out.Products = append(out.Products, productResponse(p))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet godoc
//
//	@Summary		Get Product
//	@Description	Returns one product of the authenticated vendor's shop
//	@Tags			Products
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string					true	"Product ID"
//	@Success		200	{object}	shopsdk.ProductResponse	"product"
//	@Failure		401	{object}	shopsdk.ErrorResponse	"Invalid or missing session"
//	@Failure		403	{object}	shopsdk.ErrorResponse	"No shop for this account"
//	@Failure		404	{object}	shopsdk.ErrorResponse	"Product not found in this shop"
//	@Router			/v1/products/{id} [get].
func (h *ProductsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	shopID, ok := requireShopScope(w, r, h.ScopeService)
	if !ok {
		return
	}

	productID := r.PathValue("id")
	if productID == "" {
		shopsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	product, err := h.ProductService.GetProduct(ctx, shopID, productID)
	if err != nil {
		writeProductError(ctx, w, productID, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, productResponse(product))
}

// HandleCreate godoc
//
//	@Summary		Create Product
//	@Description	Creates a product in the authenticated vendor's shop
//	@Tags			Products
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		shopsdk.CreateProductRequest	true	"Product fields"
//	@Success		201		{object}	shopsdk.ProductResponse			"created product"
//	@Failure		400		{object}	shopsdk.ErrorResponse			"Malformed body or invalid fields"
//	@Failure		401		{object}	shopsdk.ErrorResponse			"Invalid or missing session"
//	@Failure		403		{object}	shopsdk.ErrorResponse			"No shop for this account"
//	@Router			/v1/products [post].
func (h *ProductsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	shopID, ok := requireShopScope(w, r, h.ScopeService)
	if !ok {
		return
	}

	var req shopsdk.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shopsdk.ErrInvalidJSONBody.WriteError(w)
		return
	}

	product, err := h.ProductService.CreateProduct(ctx, shopID, service.ProductInput{
		Title:       req.Title,
		Description: req.Description,
		PriceCents:  req.PriceCents,
		Stock:       req.Stock,
		Published:   req.Published,
	})
	if err != nil {
		writeProductError(ctx, w, "", err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, productResponse(product))
}

// HandleUpdate godoc
//
//	@Summary		Update Product
//	@Description	Replaces the mutable fields of a product in the authenticated vendor's shop
//	@Tags			Products
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Product ID"
//	@Param			request	body		shopsdk.UpdateProductRequest	true	"Product fields"
//	@Success		200		{object}	shopsdk.ProductResponse			"updated product"
//	@Failure		400		{object}	shopsdk.ErrorResponse			"Malformed body or invalid fields"
//	@Failure		401		{object}	shopsdk.ErrorResponse			"Invalid or missing session"
//	@Failure		403		{object}	shopsdk.ErrorResponse			"No shop for this account"
//	@Failure		404		{object}	shopsdk.ErrorResponse			"Product not found in this shop"
//	@Router			/v1/products/{id} [put].
func (h *ProductsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	shopID, ok := requireShopScope(w, r, h.ScopeService)
	if !ok {
		return
	}

	productID := r.PathValue("id")
	if productID == "" {
		shopsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	var req shopsdk.UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shopsdk.ErrInvalidJSONBody.WriteError(w)
		return
	}

	product, err := h.ProductService.UpdateProduct(ctx, shopID, productID, service.ProductInput{
		Title:       req.Title,
		Description: req.Description,
		PriceCents:  req.PriceCents,
		Stock:       req.Stock,
		Published:   req.Published,
	})
	if err != nil {
		writeProductError(ctx, w, productID, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, productResponse(product))
}

// HandleDelete godoc
//
//	@Summary		Delete Product
//	@Description	Deletes a product of the authenticated vendor's shop
//	@Tags			Products
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Product ID"
//	@Success		204	"deleted"
//	@Failure		401	{object}	shopsdk.ErrorResponse	"Invalid or missing session"
//	@Failure		403	{object}	shopsdk.ErrorResponse	"No shop for this account"
//	@Failure		404	{object}	shopsdk.ErrorResponse	"Product not found in this shop"
//	@Router			/v1/products/{id} [delete].
func (h *ProductsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	shopID, ok := requireShopScope(w, r, h.ScopeService)
	if !ok {
		return
	}

	productID := r.PathValue("id")
	if productID == "" {
		shopsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	if err := h.ProductService.DeleteProduct(ctx, shopID, productID); err != nil {
		writeProductError(ctx, w, productID, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// writeProductError maps product service errors onto the wire. Not-found
// echoes the requested id so the client can tell which lookup failed.
func writeProductError(ctx context.Context, w http.ResponseWriter, productID string, err error) {
	switch {
	case errors.Is(err, service.ErrProductNotFound):
		shopsdk.NewAPIError(http.StatusNotFound, shopsdk.ErrorCodeNotFound,
			"product "+productID+" not found").WriteError(w)
	case errors.Is(err, service.ErrInvalidProduct):
		shopsdk.NewAPIError(http.StatusBadRequest, shopsdk.ErrorCodeInvalidRequest,
			"title is required and price/stock must not be negative").WriteError(w)
	default:
		slogx.FromContext(ctx).Error("product operation failed", "err", err)
		shopsdk.ErrServerError.WriteError(w)
	}
}
