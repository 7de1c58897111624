package domain

import "time"

type OrderStatus string

const (
	OrderPlaced    OrderStatus = "placed"
	OrderShipped   OrderStatus = "shipped"
	OrderCancelled OrderStatus = "cancelled"
)

// Order is visible from two scopes: the owning shop (vendor view) and
// the customer who placed it. Both lookups are keyed by the derived
// scope, never by ids from the request alone.
type Order struct {
	ID         string
	ShopID     string
	CustomerID string
	ProductID  string
	Quantity   int64
	TotalCents int64
	Status     OrderStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
