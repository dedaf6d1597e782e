package domain

import "time"

// TicketOffer is a named allocation of tickets carved out of a Show's total
// ticket count, e.g. "General Admission". The sum of offer ticket counts per
// show never exceeds the show's ticket count; this is enforced when offers
// are created and when a show's ticket count shrinks.
type TicketOffer struct {
	ID          int64     `json:"-"`
	ExternalID  string    `json:"external_id"`
	ShowID      int64     `json:"-"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	TicketCount int       `json:"ticket_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Denormalized for projections, populated by joined reads.
	ShowExternalID string `json:"-"`
}

// OfferCapacity summarizes how a show's ticket count is allocated across its
// offers.
type OfferCapacity struct {
	ShowTicketCount int `json:"show_ticket_count"`
	Allocated       int `json:"allocated"`
	Remaining       int `json:"remaining"`
}
