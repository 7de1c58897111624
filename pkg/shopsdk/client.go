package shopsdk

import (
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"
)

// SDKClient is a client for the shop platform API. It provides access to
// unauthenticated operations (catalog, partner registration, health) and can
// create authenticated Sessions from a bearer token.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a new shop API client. The underlying HTTP client
// carries a cookie jar so the partner registration flow can round-trip the
// verification cookie between register and verify.
func NewSDKClient(baseURL string) *SDKClient {
	jar, _ := cookiejar.New(nil)

	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
			Jar:     jar,
		},
	}
}

// WithToken creates an authenticated Session from an existing session token.
// Tokens are minted by the identity provider; the SDK never creates them.
func (c *SDKClient) WithToken(token string) *Session {
	return &Session{
		client: c,
		token:  token,
	}
}
