package domain

import "time"

// Venue represents a physical location owned by exactly one tenant.
type Venue struct {
	ID              int64     `json:"-"`
	ExternalID      string    `json:"external_id"`
	TenantID        int64     `json:"-"`
	Name            string    `json:"name"`
	Address         string    `json:"address,omitempty"`
	Latitude        *float64  `json:"latitude,omitempty"`
	Longitude       *float64  `json:"longitude,omitempty"`
	SeatingCapacity int       `json:"seating_capacity"`
	Description     string    `json:"description,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
