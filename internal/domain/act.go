package domain

import "time"

// Act represents a performing act owned by exactly one tenant. Acts are never
// shared across tenants; two tenants booking the same performer hold two
// independent rows with independent external ids.
type Act struct {
	ID         int64     `json:"-"`
	ExternalID string    `json:"external_id"`
	TenantID   int64     `json:"-"`
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
