package dto

import "regexp"

// CreateTenantRequest represents the request to provision a new tenant
type CreateTenantRequest struct {
	Name string `json:"name" binding:"required,min=1,max=200"`
	Slug string `json:"slug" binding:"required,min=1,max=100"`
}

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Validate validates the CreateTenantRequest
func (r *CreateTenantRequest) Validate() (bool, string) {
	if r.Name == "" {
		return false, "Tenant name is required"
	}
	if r.Slug == "" {
		return false, "Tenant slug is required"
	}
	if !slugPattern.MatchString(r.Slug) {
		return false, "Slug must be lowercase letters, digits and hyphens"
	}
	return true, ""
}

// TenantResponse represents the response for a tenant
type TenantResponse struct {
	ExternalID string `json:"external_id"`
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	IsActive   bool   `json:"is_active"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}
