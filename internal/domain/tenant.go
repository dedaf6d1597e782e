package domain

import "time"

// Tenant represents an organization owning an isolated slice of the data.
// It is the root of the isolation hierarchy and is itself unscoped.
type Tenant struct {
	ID         int64      `json:"-"`
	ExternalID string     `json:"external_id"`
	Name       string     `json:"name"`
	Slug       string     `json:"slug"`
	IsActive   bool       `json:"is_active"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
