package shop_test

import (
	"net/http"
	"testing"

	"github.com/loomandfold/loom/pkg/shopsdk"
	"github.com/stretchr/testify/require"
)

// TestPartnerRegistrationFlow walks the full email-verified signup:
// register, pull the code off the (dev) mailer, verify, then confirm the
// created account can see its own pending shop.
func TestPartnerRegistrationFlow(t *testing.T) {
	env, cleanup := setupShopContainer(t)
	defer cleanup()
	ctx := t.Context()

	created := registerVendor(t, env, "ana@atelier.example", "Ana", "Atelier Ana")

	// The new vendor's session resolves to their shop, still pending.
	vendor := mintSession(t, env, created.UserID, "vendor")
	shop, err := vendor.GetShop(ctx)
	require.NoError(t, err)
	require.Equal(t, created.ShopID, shop.ID)
	require.Equal(t, created.UserID, shop.OwnerUserID)
	require.Equal(t, "Atelier Ana", shop.Name)
	require.Equal(t, "pending", shop.Status)
}

// TestPartnerVerifyWrongCode checks a wrong guess is rejected without
// burning the real code, so the right one still works afterwards.
func TestPartnerVerifyWrongCode(t *testing.T) {
	env, cleanup := setupShopContainer(t)
	defer cleanup()
	ctx := t.Context()

	const email = "bo@atelier.example"

	_, err := env.client.RegisterPartner(ctx, email)
	require.NoError(t, err)

	code := verificationCode(t, env, email)

	wrong := "000000"
	if code == wrong {
		wrong = "000001"
	}

	req := shopsdk.VerifyPartnerRequest{
		Email:    email,
		Name:     "Bo",
		Password: partnerPassword,
		ShopName: "Atelier Bo",
		Code:     wrong,
	}
	_, err = env.client.VerifyPartner(ctx, req)
	assertAPIError(t, err, http.StatusBadRequest, shopsdk.ErrorCodeInvalidCode)

	// The real code survives the failed guess.
	req.Code = code
	resp, err := env.client.VerifyPartner(ctx, req)
	require.NoError(t, err)
	require.NotEmpty(t, resp.UserID)
}

// TestPartnerVerifyReplay checks a consumed code cannot be confirmed twice.
func TestPartnerVerifyReplay(t *testing.T) {
	env, cleanup := setupShopContainer(t)
	defer cleanup()
	ctx := t.Context()

	const email = "cleo@atelier.example"

	_, err := env.client.RegisterPartner(ctx, email)
	require.NoError(t, err)

	code := verificationCode(t, env, email)

	req := shopsdk.VerifyPartnerRequest{
		Email:    email,
		Name:     "Cleo",
		Password: partnerPassword,
		ShopName: "Atelier Cleo",
		Code:     code,
	}
	_, err = env.client.VerifyPartner(ctx, req)
	require.NoError(t, err)

	// Same code again: the cookie was cleared on the first confirm.
	req.Email = "cleo2@atelier.example"
	req.ShopName = "Atelier Cleo II"
	_, err = env.client.VerifyPartner(ctx, req)
	assertAPIError(t, err, http.StatusBadRequest, shopsdk.ErrorCodeInvalidCode)
}

// TestPartnerDuplicateEmail checks a second registration for a taken
// email fails at completion with a conflict.
func TestPartnerDuplicateEmail(t *testing.T) {
	env, cleanup := setupShopContainer(t)
	defer cleanup()
	ctx := t.Context()

	const email = "dora@atelier.example"

	registerVendor(t, env, email, "Dora", "Atelier Dora")

	// Start over with the same address. A fresh code is issued; the
	// conflict only surfaces when completing.
	_, err := env.client.RegisterPartner(ctx, email)
	require.NoError(t, err, "Register deliberately does not reveal taken emails")

	code := verificationCode(t, env, email)

	_, err = env.client.VerifyPartner(ctx, shopsdk.VerifyPartnerRequest{
		Email:    email,
		Name:     "Dora Again",
		Password: partnerPassword,
		ShopName: "Atelier Dora II",
		Code:     code,
	})
	assertAPIError(t, err, http.StatusConflict, shopsdk.ErrorCodeConflict)
}

// TestPartnerVerifyWithoutRegister checks verify with no outstanding
// code is rejected.
func TestPartnerVerifyWithoutRegister(t *testing.T) {
	env, cleanup := setupShopContainer(t)
	defer cleanup()

	_, err := env.client.VerifyPartner(t.Context(), shopsdk.VerifyPartnerRequest{
		Email:    "eve@atelier.example",
		Name:     "Eve",
		Password: partnerPassword,
		ShopName: "Atelier Eve",
		Code:     "123456",
	})
	assertAPIError(t, err, http.StatusBadRequest, shopsdk.ErrorCodeInvalidCode)
}
