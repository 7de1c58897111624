package http

import (
	"errors"
	"net/http"

	"github.com/loomandfold/loom/internal/shop/service"
	"github.com/loomandfold/loom/pkg/httpx"
	"github.com/loomandfold/loom/pkg/shopsdk"
	"github.com/loomandfold/loom/pkg/slogx"
)

type ShopHandler struct {
	ScopeService *service.ScopeService
	ShopService  *service.ShopService
}

// ServeHTTP godoc
//
//	@Summary		Get Own Shop
//	@Description	Returns the shop owned by the authenticated vendor
//	@Tags			Shop
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	shopsdk.ShopResponse	"id, owner_user_id, name, status"
//	@Failure		401	{object}	shopsdk.ErrorResponse	"Invalid or missing session"
//	@Failure		403	{object}	shopsdk.ErrorResponse	"No shop for this account"
//	@Failure		500	{object}	shopsdk.ErrorResponse	"Internal server error"
//	@Router			/v1/shop [get].
func (h *ShopHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	shopID, ok := requireShopScope(w, r, h.ScopeService)
	if !ok {
		return
	}

	shop, err := h.ShopService.GetShop(ctx, shopID)
	if err != nil {
		if errors.Is(err, service.ErrShopNotFound) {
			// The scope pointed at a row that vanished since derivation.
			shopsdk.ErrNoShopScope.WriteError(w)
			return
		}
		slogx.FromContext(ctx).Error("failed to load shop", "err", err)
		shopsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, shopResponse(shop))
}
