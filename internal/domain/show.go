package domain

import "time"

// Show represents a scheduled performance of an Act at a Venue. It carries no
// tenant column: its tenant is whichever tenant owns its Venue, and by the
// creation-time check also its Act. Venue and Act references are immutable.
type Show struct {
	ID          int64     `json:"-"`
	ExternalID  string    `json:"external_id"`
	VenueID     int64     `json:"-"`
	ActID       int64     `json:"-"`
	TicketCount int       `json:"ticket_count"`
	StartTime   time.Time `json:"start_time"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Denormalized for projections, populated by joined reads.
	VenueExternalID string `json:"-"`
	VenueName       string `json:"-"`
	ActExternalID   string `json:"-"`
	ActName         string `json:"-"`
}
