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

type ProfileHandler struct {
	UserService *service.UserService
}

// ServeHTTP godoc
//
//	@Summary		Get Profile
//	@Description	Returns the profile of the authenticated user
//	@Tags			Profile
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	shopsdk.ProfileResponse	"user_id, email, name, role"
//	@Failure		401	{object}	shopsdk.ErrorResponse	"Invalid or missing session"
//	@Failure		500	{object}	shopsdk.ErrorResponse	"Internal server error"
//	@Router			/v1/me [get].
func (h *ProfileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	user, err := h.UserService.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			// Valid session for a user row that no longer exists.
			shopsdk.ErrInvalidToken.WriteError(w)
			return
		}
		slogx.FromContext(ctx).Error("failed to load profile", "err", err)
		shopsdk.ErrServerError.WriteError(w)
		return
	}

	// The effective role folds the session tags over the stored role,
	// so an admin token is reported as admin even for a vendor row.
	role := user.Role
	if claims, ok := httpx.ClaimsFromCtx(ctx); ok && len(claims.Roles) > 0 {
		role = domain.ResolveRole(claims.Roles)
	}

	httpx.WriteJSON(w, http.StatusOK, shopsdk.ProfileResponse{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.DisplayName,
		Role:   role.String(),
	})
}
