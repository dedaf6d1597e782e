package dto

// CreateActRequest represents the request to create a new act
type CreateActRequest struct {
	Name string `json:"name" binding:"required,min=1,max=200"`
}

// Validate validates the CreateActRequest
func (r *CreateActRequest) Validate() (bool, string) {
	if r.Name == "" {
		return false, "Act name is required"
	}
	return true, ""
}

// UpdateActRequest represents a partial update to an act
type UpdateActRequest struct {
	Name string `json:"name" binding:"omitempty,min=1,max=200"`
}

// Validate validates the UpdateActRequest
func (r *UpdateActRequest) Validate() (bool, string) {
	if r.Name == "" {
		return false, "At least one field must be provided for update"
	}
	return true, ""
}

// ActResponse represents the response for an act
type ActResponse struct {
	ExternalID string `json:"external_id"`
	Name       string `json:"name"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}
