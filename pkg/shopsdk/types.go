package shopsdk

// ============================================================================
// Internal Response Types (used for JSON unmarshaling)
// ============================================================================

// ErrorResponse is the service's standard error response body. This is used
// internally for parsing HTTP error responses; client code should use the
// APIError type from errors.go instead.
type ErrorResponse struct {
	// Error is the machine-readable error code (e.g., "invalid_request")
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error
	ErrorDescription string `json:"error_description"`
}

// ============================================================================
// Profile Types
// ============================================================================

// ProfileResponse is returned from GET /v1/me.
type ProfileResponse struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}

// ============================================================================
// Shop Types
// ============================================================================

// ShopResponse describes a shop. Returned from GET /v1/shop and the admin
// shop listing.
type ShopResponse struct {
	ID          string `json:"id"`
	OwnerUserID string `json:"owner_user_id"`
	Name        string `json:"name"`
	Status      string `json:"status"`
	CreatedAt   int64  `json:"created_at"`
}

// ListShopsResponse is returned from GET /v1/admin/shops.
type ListShopsResponse struct {
	Shops []ShopResponse `json:"shops"`
}

// ============================================================================
// Product Types
// ============================================================================

// CreateProductRequest is the body for POST /v1/products.
type CreateProductRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	PriceCents  int64  `json:"price_cents"`
	Stock       int64  `json:"stock"`
	Published   bool   `json:"published"`
}

// UpdateProductRequest is the body for PUT /v1/products/{id}.
type UpdateProductRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	PriceCents  int64  `json:"price_cents"`
	Stock       int64  `json:"stock"`
	Published   bool   `json:"published"`
}

// ProductResponse describes a product owned by the caller's shop.
type ProductResponse struct {
	ID          string `json:"id"`
	ShopID      string `json:"shop_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	PriceCents  int64  `json:"price_cents"`
	Stock       int64  `json:"stock"`
	Published   bool   `json:"published"`
	CreatedAt   int64  `json:"created_at"`
}

// ListProductsResponse is returned from GET /v1/products.
type ListProductsResponse struct {
	Products []ProductResponse `json:"products"`
}

// CatalogProductResponse describes a published product as seen by the
// public catalog. It omits stock.
type CatalogProductResponse struct {
	ID          string `json:"id"`
	ShopID      string `json:"shop_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	PriceCents  int64  `json:"price_cents"`
}

// ListCatalogResponse is returned from GET /v1/catalog/products.
type ListCatalogResponse struct {
	Products []CatalogProductResponse `json:"products"`
}

// ============================================================================
// Order Types
// ============================================================================

// PlaceOrderRequest is the body for POST /v1/my/orders.
type PlaceOrderRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

// OrderResponse describes an order, from either the vendor or customer view.
type OrderResponse struct {
	ID         string `json:"id"`
	ShopID     string `json:"shop_id"`
	CustomerID string `json:"customer_id"`
	ProductID  string `json:"product_id"`
	Quantity   int64  `json:"quantity"`
	TotalCents int64  `json:"total_cents"`
	Status     string `json:"status"`
	CreatedAt  int64  `json:"created_at"`
}

// ListOrdersResponse is returned from GET /v1/orders and GET /v1/my/orders.
type ListOrdersResponse struct {
	Orders []OrderResponse `json:"orders"`
}

// ============================================================================
// Look Types
// ============================================================================

// LookResponse describes a stored outfit result.
type LookResponse struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	ProductIDs []string `json:"product_ids"`
	CreatedAt  int64    `json:"created_at"`
}

// ListLooksResponse is returned from GET /v1/looks.
type ListLooksResponse struct {
	Looks []LookResponse `json:"looks"`
}

// ============================================================================
// Partner Registration Types
// ============================================================================

// RegisterPartnerRequest is the body for POST /v1/partners/register.
type RegisterPartnerRequest struct {
	Email string `json:"email"`
}

// RegisterPartnerResponse acknowledges that a verification code was issued.
// The code itself travels by email, never in this body.
type RegisterPartnerResponse struct {
	Message string `json:"message"`
}

// VerifyPartnerRequest is the body for POST /v1/partners/register/verify.
type VerifyPartnerRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
	ShopName string `json:"shop_name"`
	Code     string `json:"code"`
}

// VerifyPartnerResponse is returned once the vendor account and its pending
// shop have been created.
type VerifyPartnerResponse struct {
	UserID string `json:"user_id"`
	ShopID string `json:"shop_id"`
	Status string `json:"status"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthResponse is returned from the /livez and /readyz endpoints.
type HealthResponse struct {
	Status  string `json:"status"`
	Uptime  string `json:"uptime"`
	Version string `json:"version"`

	// Checks is only populated by /readyz
	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the state of the service's critical dependencies.
type HealthChecks struct {
	Database string `json:"database"`
	Verifier string `json:"verifier"`
}
