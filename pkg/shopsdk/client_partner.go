package shopsdk

import (
	"context"
	"net/http"
)

// RegisterPartner starts the partner registration flow. The service issues
// a verification code, emails it to the given address, and sets the
// verification cookie on this client's jar.
func (c *SDKClient) RegisterPartner(ctx context.Context, email string) (*RegisterPartnerResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/partners/register", RegisterPartnerRequest{
		Email: email,
	})
	if err != nil {
		return nil, err
	}

	var out RegisterPartnerResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	return &out, nil
}

// VerifyPartner completes the partner registration flow. On success the
// vendor account and its pending shop exist and the verification cookie
// has been cleared.
func (c *SDKClient) VerifyPartner(ctx context.Context, req VerifyPartnerRequest) (*VerifyPartnerResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/partners/register/verify", req)
	if err != nil {
		return nil, err
	}

	var out VerifyPartnerResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}

	return &out, nil
}
