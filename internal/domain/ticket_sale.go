package domain

import "time"

// TicketSale records a sold ticket quantity against a Show. Quantity is
// recorded as given; sales are not reconciled against offer capacity.
type TicketSale struct {
	ID         int64     `json:"-"`
	ExternalID string    `json:"external_id"`
	ShowID     int64     `json:"-"`
	Quantity   int       `json:"quantity"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Denormalized for projections, populated by joined reads.
	ShowExternalID string `json:"-"`
}
