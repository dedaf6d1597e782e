package dto

// CreateVenueRequest represents the request to create a new venue
type CreateVenueRequest struct {
	Name            string   `json:"name" binding:"required,min=1,max=200"`
	Address         string   `json:"address" binding:"omitempty,max=500"`
	Latitude        *float64 `json:"latitude" binding:"omitempty,gte=-90,lte=90"`
	Longitude       *float64 `json:"longitude" binding:"omitempty,gte=-180,lte=180"`
	SeatingCapacity int      `json:"seating_capacity" binding:"required,gt=0"`
	Description     string   `json:"description" binding:"omitempty,max=1000"`
}

// Validate validates the CreateVenueRequest
func (r *CreateVenueRequest) Validate() (bool, string) {
	if r.Name == "" {
		return false, "Venue name is required"
	}
	if r.SeatingCapacity <= 0 {
		return false, "Seating capacity must be greater than 0"
	}
	return true, ""
}

// UpdateVenueRequest represents a partial update to a venue
type UpdateVenueRequest struct {
	Name            string   `json:"name" binding:"omitempty,min=1,max=200"`
	Address         *string  `json:"address" binding:"omitempty,max=500"`
	Latitude        *float64 `json:"latitude" binding:"omitempty,gte=-90,lte=90"`
	Longitude       *float64 `json:"longitude" binding:"omitempty,gte=-180,lte=180"`
	SeatingCapacity *int     `json:"seating_capacity" binding:"omitempty,gt=0"`
	Description     *string  `json:"description" binding:"omitempty,max=1000"`
}

// Validate validates the UpdateVenueRequest
func (r *UpdateVenueRequest) Validate() (bool, string) {
	if r.Name == "" && r.Address == nil && r.Latitude == nil && r.Longitude == nil && r.SeatingCapacity == nil && r.Description == nil {
		return false, "At least one field must be provided for update"
	}
	if r.SeatingCapacity != nil && *r.SeatingCapacity <= 0 {
		return false, "Seating capacity must be greater than 0"
	}
	return true, ""
}

// VenueResponse represents the response for a venue
type VenueResponse struct {
	ExternalID      string   `json:"external_id"`
	Name            string   `json:"name"`
	Address         string   `json:"address,omitempty"`
	Latitude        *float64 `json:"latitude,omitempty"`
	Longitude       *float64 `json:"longitude,omitempty"`
	SeatingCapacity int      `json:"seating_capacity"`
	Description     string   `json:"description,omitempty"`
	CreatedAt       string   `json:"created_at"`
	UpdatedAt       string   `json:"updated_at"`
}
