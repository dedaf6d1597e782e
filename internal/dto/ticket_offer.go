package dto

// CreateTicketOfferRequest represents the request to add a priced block of
// tickets to a show
type CreateTicketOfferRequest struct {
	ShowExternalID string  `json:"show_external_id" binding:"required,uuid"`
	Name           string  `json:"name" binding:"required"`
	Price          float64 `json:"price" binding:"required,gt=0"`
	TicketCount    int     `json:"ticket_count" binding:"required,gt=0"`
}

// Validate validates the CreateTicketOfferRequest
func (r *CreateTicketOfferRequest) Validate() (bool, string) {
	if r.ShowExternalID == "" {
		return false, "Show id is required"
	}
	if r.Name == "" {
		return false, "Offer name is required"
	}
	if r.Price <= 0 {
		return false, "Price must be greater than 0"
	}
	if r.TicketCount <= 0 {
		return false, "Ticket count must be greater than 0"
	}
	return true, ""
}

// TicketOfferResponse represents a ticket offer at the boundary
type TicketOfferResponse struct {
	ExternalID     string  `json:"external_id"`
	ShowExternalID string  `json:"show_external_id"`
	Name           string  `json:"name"`
	Price          float64 `json:"price"`
	TicketCount    int     `json:"ticket_count"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

// OfferCapacityResponse summarizes how a show's ticket inventory is split
// across its offers
type OfferCapacityResponse struct {
	ShowExternalID  string `json:"show_external_id"`
	ShowTicketCount int    `json:"show_ticket_count"`
	Allocated       int    `json:"allocated"`
	Remaining       int    `json:"remaining"`
}
