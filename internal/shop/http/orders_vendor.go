package http

import (
	"errors"
	"net/http"

	"github.com/loomandfold/loom/internal/shop/service"
	"github.com/loomandfold/loom/pkg/httpx"
	"github.com/loomandfold/loom/pkg/shopsdk"
	"github.com/loomandfold/loom/pkg/slogx"
)

// VendorOrdersHandler serves the vendor's view of orders placed against
// their shop.
type VendorOrdersHandler struct {
	ScopeService *service.ScopeService
	OrderService *service.OrderService
}

// HandleList godoc
//
//	@Summary		List Shop Orders
//	@Description	Returns the orders placed against the authenticated vendor's shop, newest first
//	@Tags			Orders
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	shopsdk.ListOrdersResponse	"orders"
//	@Failure		401	{object}	shopsdk.ErrorResponse		"Invalid or missing session"
//	@Failure		403	{object}	shopsdk.ErrorResponse		"No shop for this account"
//	@Failure		500	{object}	shopsdk.ErrorResponse		"Internal server error"
//	@Router			/v1/orders [get].
func (h *VendorOrdersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	shopID, ok := requireShopScope(w, r, h.ScopeService)
	if !ok {
		return
	}

	orders, err := h.OrderService.ListShopOrders(ctx, shopID)
	if err != nil {
		shopsdk.ErrServerError.WriteError(w)
		return
	}

	out := shopsdk.ListOrdersResponse{Orders: make([]shopsdk.OrderResponse, 0, len(orders))}
	for _, o := range orders {
		out.Orders = append(out.Orders, orderResponse(o))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleShip godoc
//
//	@Summary		Ship Order
//	@Description	Marks a placed order of the authenticated vendor's shop as shipped
//	@Tags			Orders
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string					true	"Order ID"
//	@Success		200	{object}	shopsdk.OrderResponse	"shipped order"
//	@Failure		401	{object}	shopsdk.ErrorResponse	"Invalid or missing session"
//	@Failure		403	{object}	shopsdk.ErrorResponse	"No shop for this account"
//	@Failure		404	{object}	shopsdk.ErrorResponse	"Order not found in this shop"
//	@Failure		409	{object}	shopsdk.ErrorResponse	"Order is not in the placed state"
//	@Router			/v1/orders/{id}/ship [post].
func (h *VendorOrdersHandler) HandleShip(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	shopID, ok := requireShopScope(w, r, h.ScopeService)
	if !ok {
		return
	}

	orderID := r.PathValue("id")
	if orderID == "" {
		shopsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	order, err := h.OrderService.ShipOrder(ctx, shopID, orderID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			shopsdk.NewAPIError(http.StatusNotFound, shopsdk.ErrorCodeNotFound,
				"order "+orderID+" not found").WriteError(w)
		case errors.Is(err, service.ErrOrderNotPlaced):
			shopsdk.NewAPIError(http.StatusConflict, shopsdk.ErrorCodeConflict,
				"order "+orderID+" is not in the placed state").WriteError(w)
		default:
			slogx.FromContext(ctx).Error("failed to ship order", "err", err)
			shopsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, orderResponse(order))
}
