package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/loomandfold/loom/internal/shop/service"
	"github.com/loomandfold/loom/pkg/httpx"
	"github.com/loomandfold/loom/pkg/shopsdk"
	"github.com/loomandfold/loom/pkg/slogx"
)

// MyOrdersHandler serves the customer's view of their own orders. The
// customer id is always the session subject, never request input.
type MyOrdersHandler struct {
	OrderService *service.OrderService
}

// HandleList godoc
//
//	@Summary		List My Orders
//	@Description	Returns the orders placed by the authenticated customer, newest first
//	@Tags			Orders
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	shopsdk.ListOrdersResponse	"orders"
//	@Failure		401	{object}	shopsdk.ErrorResponse		"Invalid or missing session"
//	@Failure		500	{object}	shopsdk.ErrorResponse		"Internal server error"
//	@Router			/v1/my/orders [get].
func (h *MyOrdersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	orders, err := h.OrderService.ListCustomerOrders(ctx, userID)
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

// HandlePlace godoc
//
//	@Summary		Place Order
//	@Description	Places an order for a published product of an active shop
//	@Tags			Orders
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		shopsdk.PlaceOrderRequest	true	"product_id, quantity"
//	@Success		201		{object}	shopsdk.OrderResponse		"placed order"
//	@Failure		400		{object}	shopsdk.ErrorResponse		"Malformed body or invalid quantity"
//	@Failure		401		{object}	shopsdk.ErrorResponse		"Invalid or missing session"
//	@Failure		404		{object}	shopsdk.ErrorResponse		"Product not available"
//	@Failure		409		{object}	shopsdk.ErrorResponse		"Insufficient stock"
//	@Router			/v1/my/orders [post].
func (h *MyOrdersHandler) HandlePlace(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req shopsdk.PlaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shopsdk.ErrInvalidJSONBody.WriteError(w)
		return
	}

	order, err := h.OrderService.PlaceOrder(ctx, userID, req.ProductID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidOrder):
			shopsdk.NewAPIError(http.StatusBadRequest, shopsdk.ErrorCodeInvalidRequest,
				"product_id is required and quantity must be positive").WriteError(w)
		case errors.Is(err, service.ErrProductNotFound):
			shopsdk.NewAPIError(http.StatusNotFound, shopsdk.ErrorCodeNotFound,
				"product "+req.ProductID+" is not available").WriteError(w)
		case errors.Is(err, service.ErrInsufficientStock):
			shopsdk.NewAPIError(http.StatusConflict, shopsdk.ErrorCodeConflict,
				"insufficient stock for product "+req.ProductID).WriteError(w)
		default:
			slogx.FromContext(ctx).Error("failed to place order", "err", err)
			shopsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, orderResponse(order))
}
