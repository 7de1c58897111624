package shopsdk

import (
	"context"
	"net/http"
)

// Session represents an authenticated caller. The token is opaque to the
// SDK; refresh is the identity provider's concern, not this service's.
type Session struct {
	client *SDKClient
	token  string
}

// Token returns the session token this Session sends as a bearer credential.
func (s *Session) Token() string {
	return s.token
}

// Me returns the profile of the authenticated user.
func (s *Session) Me(ctx context.Context) (*ProfileResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/me", nil)
	if err != nil {
		return nil, err
	}

	var profile ProfileResponse
	if err := decodeJSON(resp, &profile, http.StatusOK); err != nil {
		return nil, err
	}

	return &profile, nil
}

// ListLooks returns the stored outfit results of the authenticated customer.
func (s *Session) ListLooks(ctx context.Context) (*ListLooksResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/looks", nil)
	if err != nil {
		return nil, err
	}

	var looks ListLooksResponse
	if err := decodeJSON(resp, &looks, http.StatusOK); err != nil {
		return nil, err
	}

	return &looks, nil
}
