package http

import (
	"errors"
	"net/http"

	"github.com/loomandfold/loom/internal/shop/domain"
	"github.com/loomandfold/loom/internal/shop/service"
	"github.com/loomandfold/loom/pkg/httpx"
	"github.com/loomandfold/loom/pkg/shopsdk"
	"github.com/loomandfold/loom/pkg/slogx"
)

// requireUser extracts the authenticated subject set by AuthnMiddleware.
// Writes 401 and returns false when absent.
func requireUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID := httpx.UserIDFromCtx(r.Context())
	if userID == "" {
		shopsdk.ErrInvalidToken.WriteError(w)
		return "", false
	}
	return userID, true
}

// requireShopScope derives the caller's shop scope. Writes 403 when the
// user owns no shop and 500 on store failure. Every shop-scoped handler
// funnels through here before touching tenant data.
func requireShopScope(w http.ResponseWriter, r *http.Request, scopes *service.ScopeService) (string, bool) {
	userID, ok := requireUser(w, r)
	if !ok {
		return "", false
	}

	shopID, err := scopes.DeriveShopScope(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrNoScope) {
			shopsdk.ErrNoShopScope.WriteError(w)
		} else {
			slogx.FromContext(r.Context()).Error("scope derivation failed", "err", err)
			shopsdk.ErrServerError.WriteError(w)
		}
		return "", false
	}
	return shopID, true
}

func shopResponse(s domain.Shop) shopsdk.ShopResponse {
	return shopsdk.ShopResponse{
		ID:          s.ID,
		OwnerUserID: s.OwnerUserID,
		Name:        s.Name,
		Status:      string(s.Status),
		CreatedAt:   s.CreatedAt.Unix(),
	}
}

func productResponse(p domain.Product) shopsdk.ProductResponse {
	return shopsdk.ProductResponse{
		ID:          p.ID,
		ShopID:      p.ShopID,
		Title:       p.Title,
		Description: p.Description,
		PriceCents:  p.PriceCents,
		Stock:       p.Stock,
		Published:   p.Published,
		CreatedAt:   p.CreatedAt.Unix(),
	}
}

func catalogResponse(p domain.Product) shopsdk.CatalogProductResponse {
	return shopsdk.CatalogProductResponse{
		ID:          p.ID,
		ShopID:      p.ShopID,
		Title:       p.Title,
		Description: p.Description,
		PriceCents:  p.PriceCents,
	}
}

func orderResponse(o domain.Order) shopsdk.OrderResponse {
	return shopsdk.OrderResponse{
		ID:         o.ID,
		ShopID:     o.ShopID,
		CustomerID: o.CustomerID,
		ProductID:  o.ProductID,
		Quantity:   o.Quantity,
		TotalCents: o.TotalCents,
		Status:     string(o.Status),
		CreatedAt:  o.CreatedAt.Unix(),
	}
}
