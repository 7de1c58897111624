package http

import (
	"errors"
	"net/http"

	"github.com/loomandfold/loom/internal/shop/service"
	"github.com/loomandfold/loom/pkg/httpx"
	"github.com/loomandfold/loom/pkg/shopsdk"
	"github.com/loomandfold/loom/pkg/slogx"
)

// AdminShopsHandler serves the platform admin surface. Role enforcement
// happens in the middleware chain; by the time these run the session is
// known to carry the admin tag.
type AdminShopsHandler struct {
	ShopService *service.ShopService
}

// HandleList godoc
//
//	@Summary		List All Shops
//	@Description	Returns every shop on the platform, newest first. Requires the admin role.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	shopsdk.ListShopsResponse	"shops"
//	@Failure		401	{object}	shopsdk.ErrorResponse		"Invalid or missing session"
//	@Failure		403	{object}	shopsdk.ErrorResponse		"Session lacks the admin role"
//	@Failure		500	{object}	shopsdk.ErrorResponse		"Internal server error"
//	@Router			/v1/admin/shops [get].
func (h *AdminShopsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	shops, err := h.ShopService.ListShops(ctx)
	if err != nil {
		shopsdk.ErrServerError.WriteError(w)
		return
	}

	out := shopsdk.ListShopsResponse{Shops: make([]shopsdk.ShopResponse, 0, len(shops))}
	for _, s := range shops {
		out.Shops = append(out.Shops, shopResponse(s))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleApprove godoc
//
//	@Summary		Approve Shop
//	@Description	Moves a pending shop to active, making it visible to the public catalog. Requires the admin role.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string					true	"Shop ID"
//	@Success		200	{object}	shopsdk.ShopResponse	"approved shop"
//	@Failure		401	{object}	shopsdk.ErrorResponse	"Invalid or missing session"
//	@Failure		403	{object}	shopsdk.ErrorResponse	"Session lacks the admin role"
//	@Failure		404	{object}	shopsdk.ErrorResponse	"Shop not found"
//	@Failure		409	{object}	shopsdk.ErrorResponse	"Shop is already active"
//	@Router			/v1/admin/shops/{id}/approve [post].
func (h *AdminShopsHandler) HandleApprove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	shopID := r.PathValue("id")
	if shopID == "" {
		shopsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	shop, err := h.ShopService.ApproveShop(ctx, shopID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrShopNotFound):
			shopsdk.NewAPIError(http.StatusNotFound, shopsdk.ErrorCodeNotFound,
				"shop "+shopID+" not found").WriteError(w)
		case errors.Is(err, service.ErrShopAlreadyActive):
			shopsdk.NewAPIError(http.StatusConflict, shopsdk.ErrorCodeConflict,
				"shop "+shopID+" is already active").WriteError(w)
		default:
			slogx.FromContext(ctx).Error("failed to approve shop", "err", err)
			shopsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, shopResponse(shop))
}
