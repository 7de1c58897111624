package shop_test

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"io"
	"os"
	"os/exec"
	"regexp"
	"testing"
	"time"

	"github.com/loomandfold/loom/pkg/jwtx"
	"github.com/loomandfold/loom/pkg/shopsdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Common constants and helper functions for shop service end-to-end tests.
 * This includes container setup, session minting, and the partner
 * registration flow used by most scenarios.
 */

const (
	testImageName = "loom-shop-test:latest"

	sessionIssuer = "loom-e2e-id"
	sessionKeyID  = "loom-e2e-key-001"
	otpSecret     = "e2e-verification-secret"
	catalogOrigin = "https://shop.loomandfold.example"

	partnerPassword = "Partner123!"
)

// shopEnv bundles everything a test needs to talk to one running
// container: the SDK client, and the signing key whose public half the
// container trusts.
type shopEnv struct {
	baseURL   string
	client    *shopsdk.SDKClient
	signer    *jwtx.EdDSASigner
	container testcontainers.Container
}

// TestMain manages the test lifecycle, builds the Docker image once before
// all tests and cleans it up after all tests complete.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building Shop Service Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up Shop Service Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

// buildDockerImage builds the test Docker image if it doesn't exist.
func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/shopapi/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

// cleanupDockerImage removes the test Docker image.
func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // Ignore errors - image might not exist
}

// setupShopContainer starts the shop service in a container. Each call
// generates a fresh Ed25519 keypair; the public half goes to the
// container as the trusted session key and the private half stays with
// the test to mint sessions, standing in for the identity provider.
func setupShopContainer(t *testing.T) (*shopEnv, func()) {
	t.Helper()
	ctx := context.Background()

	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	signer, err := jwtx.NewEdDSASigner(sessionKeyID, priv)
	require.NoError(t, err)

	pubDER, err := x509.MarshalPKIXPublicKey(pub)
	require.NoError(t, err)
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubDER})

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env: map[string]string{
			"SHOP_SESSION_ISSUER":     sessionIssuer,
			"SHOP_SESSION_KEY_ID":     sessionKeyID,
			"SHOP_SESSION_PUBLIC_KEY": string(pubPEM),
			"SHOP_OTP_SECRET":         otpSecret,
			"SHOP_DATABASE_FILE":      "/tmp/shop.db",
			"SHOP_PEPPER_FILE":        "/tmp/pepper",
			"SHOP_CORS_ORIGIN":        catalogOrigin,
			// No SMTP_HOST: the log mailer writes verification codes to
			// the container log, where verificationCode digs them out.
			"ENV":        "test",
			"LOG_LEVEL":  "info",
			"LOG_FORMAT": "json",
			// Increase rate limits for E2E tests to prevent test failures
			// Tests often make many rapid requests which would otherwise hit the strict production limits
			"RATELIMIT_STRICT_REQUESTS":   "1000",
			"RATELIMIT_STRICT_WINDOW_SEC": "60",
			"RATELIMIT_STRICT_BURST":      "1000",
			"RATELIMIT_MODERATE_REQUESTS": "1000",
			"RATELIMIT_MODERATE_BURST":    "1000",
		},
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	env := &shopEnv{
		baseURL:   baseURL,
		client:    shopsdk.NewSDKClient(baseURL),
		signer:    signer,
		container: container,
	}

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return env, cleanup
}

// setupShopContainerWithDefaultRateLimits starts the shop service with
// DEFAULT rate limits. This is specifically for testing that rate
// limiting actually works. Most tests should use setupShopContainer()
// which has relaxed limits to prevent test failures.
func setupShopContainerWithDefaultRateLimits(t *testing.T) (*shopEnv, func()) {
	t.Helper()
	ctx := context.Background()

	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	signer, err := jwtx.NewEdDSASigner(sessionKeyID, priv)
	require.NoError(t, err)

	pubDER, err := x509.MarshalPKIXPublicKey(pub)
	require.NoError(t, err)
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubDER})

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env: map[string]string{
			"SHOP_SESSION_ISSUER":     sessionIssuer,
			"SHOP_SESSION_KEY_ID":     sessionKeyID,
			"SHOP_SESSION_PUBLIC_KEY": string(pubPEM),
			"SHOP_OTP_SECRET":         otpSecret,
			"SHOP_DATABASE_FILE":      "/tmp/shop.db",
			"SHOP_PEPPER_FILE":        "/tmp/pepper",
			"SHOP_CORS_ORIGIN":        catalogOrigin,
			"ENV":                     "test",
			"LOG_LEVEL":               "info",
			"LOG_FORMAT":              "json",
			// NOTE: No rate limit overrides - using production defaults for rate limit testing
		},
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	env := &shopEnv{
		baseURL:   baseURL,
		client:    shopsdk.NewSDKClient(baseURL),
		signer:    signer,
		container: container,
	}

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return env, cleanup
}

// mintSession signs a one-hour session for the given user and returns an
// SDK session carrying it. This is what the identity provider would do
// at login.
func mintSession(t *testing.T, env *shopEnv, userID string, roles ...string) *shopsdk.Session {
	t.Helper()

	claims := jwtx.NewSessionClaims(
		userID,
		"sess-"+userID,
		roles,
		time.Hour,
		sessionIssuer,
		userID+"@loomandfold.example",
		"E2E User",
		time.Now(),
	)

	token, err := env.signer.Sign(claims)
	require.NoError(t, err)

	return env.client.WithToken(token)
}

// codePattern matches the log mailer's JSON output, which logs the
// recipient and code as adjacent attributes.
func codePattern(email string) *regexp.Regexp {
	return regexp.MustCompile(`"to":"` + regexp.QuoteMeta(email) + `","code":"(\d{6})"`)
}

// verificationCode fishes the most recent verification code for email
// out of the container log. The log mailer has already written it by the
// time the register call returns, but the log stream can lag, hence the
// short retry loop.
func verificationCode(t *testing.T, env *shopEnv, email string) string {
	t.Helper()
	ctx := context.Background()

	pattern := codePattern(email)
	deadline := time.Now().Add(5 * time.Second)

	for {
		reader, err := env.container.Logs(ctx)
		require.NoError(t, err)

		logs, err := io.ReadAll(reader)
		_ = reader.Close()
		require.NoError(t, err)

		matches := pattern.FindAllSubmatch(logs, -1)
		if len(matches) > 0 {
			return string(matches[len(matches)-1][1])
		}

		if time.Now().After(deadline) {
			t.Fatalf("no verification code for %s found in container logs", email)
		}
		time.Sleep(100 * time.Millisecond)
	}
}

// registerVendor walks the full partner registration flow and returns
// the created account. The SDK client's cookie jar carries the
// verification cookie between the two calls.
func registerVendor(t *testing.T, env *shopEnv, email, name, shopName string) *shopsdk.VerifyPartnerResponse {
	t.Helper()
	ctx := context.Background()

	regResp, err := env.client.RegisterPartner(ctx, email)
	require.NoError(t, err, "Register should succeed")
	require.NotEmpty(t, regResp.Message)

	code := verificationCode(t, env, email)

	verifyResp, err := env.client.VerifyPartner(ctx, shopsdk.VerifyPartnerRequest{
		Email:    email,
		Name:     name,
		Password: partnerPassword,
		ShopName: shopName,
		Code:     code,
	})
	require.NoError(t, err, "Verify should succeed")
	require.NotEmpty(t, verifyResp.UserID)
	require.NotEmpty(t, verifyResp.ShopID)
	require.Equal(t, "pending", verifyResp.Status, "New shops start pending")

	return verifyResp
}

// setupActiveVendor registers a vendor and approves their shop, the
// usual starting point for catalog and order scenarios.
func setupActiveVendor(t *testing.T, env *shopEnv, email, name, shopName string) (*shopsdk.Session, *shopsdk.VerifyPartnerResponse) {
	t.Helper()
	ctx := context.Background()

	created := registerVendor(t, env, email, name, shopName)

	admin := mintSession(t, env, "usr-admin-e2e", "admin")
	approved, err := admin.ApproveShop(ctx, created.ShopID)
	require.NoError(t, err, "Approve should succeed")
	require.Equal(t, "active", approved.Status)

	return mintSession(t, env, created.UserID, "vendor"), created
}

// assertHealthy verifies a health check response is OK.
func assertHealthy(t *testing.T, health *shopsdk.HealthResponse, err error) {
	t.Helper()
	require.NoError(t, err)
	require.NotNil(t, health)
	require.Equal(t, "ok", health.Status)
}

// assertAPIError checks err is an APIError with the given status and code.
func assertAPIError(t *testing.T, err error, statusCode int, code string) {
	t.Helper()
	require.Error(t, err)

	var apiErr *shopsdk.APIError
	require.ErrorAs(t, err, &apiErr, "error should be an APIError, got: %v", err)
	require.Equal(t, statusCode, apiErr.StatusCode)
	require.Equal(t, code, apiErr.Code)
}
