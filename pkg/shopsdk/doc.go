/*
Package shopsdk provides a client SDK for the shop platform API.

# Overview

The package is organized around two main types:

  - SDKClient: unauthenticated operations (catalog, partner registration,
    health) and Session construction
  - Session: authenticated operations performed with a bearer session token

Create an SDKClient to interact with public endpoints:

	client := shopsdk.NewSDKClient("https://api.example.com")

	// Check service health
	health, err := client.GetReadiness(ctx)

	// Browse the public catalog
	catalog, err := client.ListCatalog(ctx)

The partner registration flow is a two-step exchange. The SDKClient's HTTP
client carries a cookie jar, so the verification cookie set by the first
call is presented automatically on the second:

	_, err := client.RegisterPartner(ctx, "owner@atelier.example")
	// ... the code arrives by email ...
	result, err := client.VerifyPartner(ctx, shopsdk.VerifyPartnerRequest{
		Email:    "owner@atelier.example",
		Name:     "Atelier Owner",
		Password: "secure-password",
		ShopName: "Atelier",
		Code:     code,
	})

# Sessions

Session tokens are minted by the platform's identity provider; this service
only verifies them. Wrap an existing token to perform authenticated calls:

	session := client.WithToken(token)

	profile, err := session.Me(ctx)
	products, err := session.ListProducts(ctx)
	order, err := session.ShipOrder(ctx, orderID)

The SDK never refreshes tokens. When a token expires the server responds
401 and the returned *APIError carries the "invalid_token" code.

# Error Handling

All non-2xx responses are returned as *APIError with the HTTP status and
the service's {error, error_description} body:

	_, err := session.GetProduct(ctx, id)
	if apiErr, ok := err.(*shopsdk.APIError); ok {
		fmt.Println(apiErr.StatusCode, apiErr.Code)
	}
*/
package shopsdk
