package domain

import "time"

// ShopStatus is the lifecycle state of a shop. New partner shops start
// pending and stay invisible to the public catalog until approved.
type ShopStatus string

const (
	ShopPending ShopStatus = "pending"
	ShopActive  ShopStatus = "active"
)

// Shop is the tenant boundary. Every vendor-owned row (products, orders)
// hangs off a shop id, and that id is only ever derived server-side from
// the owner's session.
type Shop struct {
	ID          string
	OwnerUserID string
	Name        string
	Status      ShopStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
