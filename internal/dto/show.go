package dto

import "time"

// CreateShowRequest represents the request to schedule a new show
type CreateShowRequest struct {
	ActExternalID   string    `json:"act_external_id" binding:"required,uuid"`
	VenueExternalID string    `json:"venue_external_id" binding:"required,uuid"`
	TicketCount     int       `json:"ticket_count" binding:"required,gt=0"`
	StartTime       time.Time `json:"start_time" binding:"required"`
}

// Validate validates the CreateShowRequest
func (r *CreateShowRequest) Validate() (bool, string) {
	if r.ActExternalID == "" {
		return false, "Act id is required"
	}
	if r.VenueExternalID == "" {
		return false, "Venue id is required"
	}
	if r.TicketCount <= 0 {
		return false, "Ticket count must be greater than 0"
	}
	if r.StartTime.IsZero() {
		return false, "Start time is required"
	}
	return true, ""
}

// UpdateShowRequest represents a partial update of a show. The venue and act
// references are immutable and cannot be changed here.
type UpdateShowRequest struct {
	TicketCount *int       `json:"ticket_count,omitempty"`
	StartTime   *time.Time `json:"start_time,omitempty"`
}

// Validate validates the UpdateShowRequest
func (r *UpdateShowRequest) Validate() (bool, string) {
	if r.TicketCount != nil && *r.TicketCount <= 0 {
		return false, "Ticket count must be greater than 0"
	}
	return true, ""
}

// ShowResponse represents the projection of a show returned at the boundary
type ShowResponse struct {
	ExternalID      string `json:"external_id"`
	VenueExternalID string `json:"venue_external_id"`
	VenueName       string `json:"venue_name"`
	ActExternalID   string `json:"act_external_id"`
	ActName         string `json:"act_name"`
	TicketCount     int    `json:"ticket_count"`
	StartTime       string `json:"start_time"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

// NearbyShowsResponse lists shows at a venue inside the proximity window
// around a reference time, ascending by start time.
type NearbyShowsResponse struct {
	Message string          `json:"message"`
	Shows   []*ShowResponse `json:"shows"`
}
