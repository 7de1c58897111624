package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/loomandfold/loom/internal/shop/service"
	"github.com/loomandfold/loom/pkg/httpx"
	"github.com/loomandfold/loom/pkg/otpx"
	"github.com/loomandfold/loom/pkg/shopsdk"
	"github.com/loomandfold/loom/pkg/slogx"
)

// PartnerHandler runs the two-step vendor signup: register issues a
// verification code to the caller's agent and emails it; verify consumes
// the code and creates the account.
type PartnerHandler struct {
	PartnerService *service.PartnerService
	Ledger         *otpx.Ledger
}

// HandleRegister godoc
//
//	@Summary		Start Partner Registration
//	@Description	Issues a single-use verification code, emails it to the given address,
//	@Description	and stores its signed form in a short-lived cookie on the caller's agent.
//	@Description	A repeated call replaces the previous code.
//	@Tags			Partners
//	@Accept			json
//	@Produce		json
//	@Param			request	body		shopsdk.RegisterPartnerRequest	true	"email"
//	@Success		200		{object}	shopsdk.RegisterPartnerResponse	"message"
//	@Failure		400		{object}	shopsdk.ErrorResponse			"Malformed body or email"
//	@Failure		500		{object}	shopsdk.ErrorResponse			"Internal server error"
//	@Router			/v1/partners/register [post].
func (h *PartnerHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req shopsdk.RegisterPartnerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shopsdk.ErrInvalidJSONBody.WriteError(w)
		return
	}

	jar := otpx.HTTPJar{W: w, R: r}
	code, err := h.Ledger.Issue(jar)
	if err != nil {
		log.Error("failed to issue verification code", "err", err)
		shopsdk.ErrServerError.WriteError(w)
		return
	}

	if err := h.PartnerService.StartRegistration(ctx, req.Email, code); err != nil {
		// The cookie was already set; clear it so a failed start leaves
		// no pending code behind.
		h.Ledger.Invalidate(jar)

		if errors.Is(err, service.ErrInvalidRegistration) {
			shopsdk.NewAPIError(http.StatusBadRequest, shopsdk.ErrorCodeInvalidRequest,
				"a valid email address is required").WriteError(w)
			return
		}
		log.Error("failed to start registration", "err", err)
		shopsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, shopsdk.RegisterPartnerResponse{
		Message: "verification code sent",
	})
}

// HandleVerify godoc
//
//	@Summary		Complete Partner Registration
//	@Description	Confirms the verification code from the agent's cookie and creates the
//	@Description	vendor account with its pending shop. A mismatched code keeps the pending
//	@Description	code so the caller may retry; a missing or expired code must be reissued.
//	@Tags			Partners
//	@Accept			json
//	@Produce		json
//	@Param			request	body		shopsdk.VerifyPartnerRequest	true	"email, name, password, shop_name, code"
//	@Success		201		{object}	shopsdk.VerifyPartnerResponse	"user_id, shop_id, status"
//	@Failure		400		{object}	shopsdk.ErrorResponse			"Invalid code or missing fields"
//	@Failure		409		{object}	shopsdk.ErrorResponse			"Email already registered"
//	@Failure		500		{object}	shopsdk.ErrorResponse			"Internal server error"
//	@Router			/v1/partners/register/verify [post].
func (h *PartnerHandler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req shopsdk.VerifyPartnerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shopsdk.ErrInvalidJSONBody.WriteError(w)
		return
	}

	if req.Code == "" {
		shopsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	jar := otpx.HTTPJar{W: w, R: r}
	if err := h.Ledger.Confirm(jar, req.Code); err != nil {
		switch {
		case errors.Is(err, otpx.ErrNotFound):
			shopsdk.ErrCodeNotFound.WriteError(w)
		case errors.Is(err, otpx.ErrMismatch):
			shopsdk.ErrCodeMismatch.WriteError(w)
		default:
			log.Error("failed to confirm verification code", "err", err)
			shopsdk.ErrServerError.WriteError(w)
		}
		return
	}

	user, shop, err := h.PartnerService.CompleteRegistration(ctx, req.Email, req.Name, req.Password, req.ShopName)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRegistration):
			shopsdk.NewAPIError(http.StatusBadRequest, shopsdk.ErrorCodeInvalidRequest,
				"email, name, password and shop_name are required").WriteError(w)
		case errors.Is(err, service.ErrEmailTaken):
			shopsdk.ErrEmailTaken.WriteError(w)
		default:
			log.Error("failed to complete registration", "err", err)
			shopsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, shopsdk.VerifyPartnerResponse{
		UserID: user.ID,
		ShopID: shop.ID,
		Status: string(shop.Status),
	})
}
