package domain

import "time"

type Product struct {
	ID          string
	ShopID      string
	Title       string
	Description string
	PriceCents  int64
	Stock       int64
	Published   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
