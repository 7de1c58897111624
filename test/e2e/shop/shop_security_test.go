package shop_test

import (
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/loomandfold/loom/pkg/jwtx"
	"github.com/loomandfold/loom/pkg/shopsdk"
	"github.com/stretchr/testify/require"
)

// TestRejectMissingToken checks authenticated routes turn away requests
// with no session at all.
func TestRejectMissingToken(t *testing.T) {
	env, cleanup := setupShopContainer(t)
	defer cleanup()

	anonymous := env.client.WithToken("")

	_, err := anonymous.Me(t.Context())
	assertAPIError(t, err, http.StatusUnauthorized, shopsdk.ErrorCodeInvalidToken)
}

// TestRejectGarbageToken checks a token that is not even a JWT is rejected.
func TestRejectGarbageToken(t *testing.T) {
	env, cleanup := setupShopContainer(t)
	defer cleanup()

	bogus := env.client.WithToken("not-a-token")

	_, err := bogus.Me(t.Context())
	assertAPIError(t, err, http.StatusUnauthorized, shopsdk.ErrorCodeInvalidToken)
}

// TestRejectForeignSignature checks a structurally valid token signed by
// an unknown key is rejected.
func TestRejectForeignSignature(t *testing.T) {
	env, cleanup := setupShopContainer(t)
	defer cleanup()

	_, foreignKey, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	foreignSigner, err := jwtx.NewEdDSASigner(sessionKeyID, foreignKey)
	require.NoError(t, err)

	claims := jwtx.NewSessionClaims(
		"usr-forged", "sess-forged", []string{"admin"},
		time.Hour, sessionIssuer, "forged@example.com", "Forged", time.Now(),
	)
	token, err := foreignSigner.Sign(claims)
	require.NoError(t, err)

	forged := env.client.WithToken(token)

	_, err = forged.ListShops(t.Context())
	assertAPIError(t, err, http.StatusUnauthorized, shopsdk.ErrorCodeInvalidToken)
}

// TestRejectExpiredToken checks an expired session is rejected.
func TestRejectExpiredToken(t *testing.T) {
	env, cleanup := setupShopContainer(t)
	defer cleanup()

	claims := jwtx.NewSessionClaims(
		"usr-late", "sess-late", nil,
		time.Minute, sessionIssuer, "late@example.com", "Late", time.Now().Add(-time.Hour),
	)
	token, err := env.signer.Sign(claims)
	require.NoError(t, err)

	expired := env.client.WithToken(token)

	_, err = expired.Me(t.Context())
	assertAPIError(t, err, http.StatusUnauthorized, shopsdk.ErrorCodeInvalidToken)
}

// TestRejectWrongIssuer checks a token from another issuer is rejected
// even when signed with the trusted key.
func TestRejectWrongIssuer(t *testing.T) {
	env, cleanup := setupShopContainer(t)
	defer cleanup()

	claims := jwtx.NewSessionClaims(
		"usr-elsewhere", "sess-elsewhere", nil,
		time.Hour, "some-other-idp", "el@example.com", "El", time.Now(),
	)
	token, err := env.signer.Sign(claims)
	require.NoError(t, err)

	stranger := env.client.WithToken(token)

	_, err = stranger.Me(t.Context())
	assertAPIError(t, err, http.StatusUnauthorized, shopsdk.ErrorCodeInvalidToken)
}

// TestNoShopScope checks a valid session whose user owns no shop cannot
// reach the vendor surface.
func TestNoShopScope(t *testing.T) {
	env, cleanup := setupShopContainer(t)
	defer cleanup()
	ctx := t.Context()

	// Valid signature, real issuer, but no shop row behind the subject.
	shopless := mintSession(t, env, "usr-no-shop", "customer")

	_, err := shopless.GetShop(ctx)
	assertAPIError(t, err, http.StatusForbidden, shopsdk.ErrorCodeNoShopScope)

	_, err = shopless.ListProducts(ctx)
	assertAPIError(t, err, http.StatusForbidden, shopsdk.ErrorCodeNoShopScope)

	_, err = shopless.ListShopOrders(ctx)
	assertAPIError(t, err, http.StatusForbidden, shopsdk.ErrorCodeNoShopScope)
}

// TestCatalogCORS checks the public catalog answers preflight and tags
// responses for the configured origin, and only that origin.
func TestCatalogCORS(t *testing.T) {
	env, cleanup := setupShopContainer(t)
	defer cleanup()

	httpClient := &http.Client{Timeout: 10 * time.Second}

	// Preflight from the allowed origin.
	preflight, err := http.NewRequestWithContext(t.Context(),
		http.MethodOptions, env.baseURL+"/v1/catalog/products", nil)
	require.NoError(t, err)
	preflight.Header.Set("Origin", catalogOrigin)

	resp, err := httpClient.Do(preflight)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	require.Equal(t, catalogOrigin, resp.Header.Get("Access-Control-Allow-Origin"))

	// A stranger origin gets no CORS grant.
	req, err := http.NewRequestWithContext(t.Context(),
		http.MethodGet, env.baseURL+"/v1/catalog/products", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://evil.example")

	resp2, err := httpClient.Do(req)
	require.NoError(t, err)
	defer resp2.Body.Close()
	require.Equal(t, http.StatusOK, resp2.StatusCode)
	require.Empty(t, resp2.Header.Get("Access-Control-Allow-Origin"))
}

// TestRateLimitPartnerEndpoints checks the strict per-IP limit actually
// bites on the public signup surface. This test boots its own container
// with production limits.
func TestRateLimitPartnerEndpoints(t *testing.T) {
	env, cleanup := setupShopContainerWithDefaultRateLimits(t)
	defer cleanup()
	ctx := t.Context()

	// The strict profile allows a burst of 5 per IP. Burn through it.
	var rateLimited bool
	for i := 0; i < 10; i++ {
		_, err := env.client.RegisterPartner(ctx, "burst@atelier.example")
		if err != nil {
			var apiErr *shopsdk.APIError
			if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusTooManyRequests {
				rateLimited = true
				break
			}
			t.Fatalf("unexpected error before rate limit: %v", err)
		}
	}

	require.True(t, rateLimited, "Strict limit should reject within 10 rapid requests")
}

// TestMethodNotAllowed checks wrong-method requests get 405 from the
// router itself, before any handler or store access.
func TestMethodNotAllowed(t *testing.T) {
	env, cleanup := setupShopContainer(t)
	defer cleanup()

	httpClient := &http.Client{Timeout: 10 * time.Second}

	cases := map[string]struct {
		method string
		path   string
		allow  string
	}{
		"GET against partner register": {http.MethodGet, "/v1/partners/register", http.MethodPost},
		"DELETE against profile":       {http.MethodDelete, "/v1/me", http.MethodGet},
		"PUT against order ship":       {http.MethodPut, "/v1/orders/some-id/ship", http.MethodPost},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			req, err := http.NewRequestWithContext(t.Context(), tc.method, env.baseURL+tc.path, nil)
			require.NoError(t, err)

			resp, err := httpClient.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			require.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
			require.Contains(t, resp.Header.Get("Allow"), tc.allow)
		})
	}
}
