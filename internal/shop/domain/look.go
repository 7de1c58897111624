package domain

import "time"

// Look is a stored outfit result for a customer. The recommendation
// pipeline computes them; this service only stores and lists them.
type Look struct {
	ID         string
	CustomerID string
	Name       string
	ProductIDs []string // stored space-delimited
	CreatedAt  time.Time
}
