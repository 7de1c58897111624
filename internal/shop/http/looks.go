package http

import (
	"net/http"

	"github.com/loomandfold/loom/internal/shop/service"
	"github.com/loomandfold/loom/pkg/httpx"
	"github.com/loomandfold/loom/pkg/shopsdk"
)

type LooksHandler struct {
	LookService *service.LookService
}

// ServeHTTP godoc
//
//	@Summary		List Looks
//	@Description	Returns the stored outfit results of the authenticated customer, newest first
//	@Tags			Looks
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	shopsdk.ListLooksResponse	"looks"
//	@Failure		401	{object}	shopsdk.ErrorResponse		"Invalid or missing session"
//	@Failure		500	{object}	shopsdk.ErrorResponse		"Internal server error"
//	@Router			/v1/looks [get].
func (h *LooksHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	looks, err := h.LookService.ListLooks(ctx, userID)
	if err != nil {
		shopsdk.ErrServerError.WriteError(w)
		return
	}

	out := shopsdk.ListLooksResponse{Looks: make([]shopsdk.LookResponse, 0, len(looks))}
	for _, l := range looks {
		out.Looks = append(out.Looks, shopsdk.LookResponse{
			ID:         l.ID,
			Name:       l.Name,
			ProductIDs: l.ProductIDs,
			CreatedAt:  l.CreatedAt.Unix(),
		})
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}
