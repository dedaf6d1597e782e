package dto

// CreateTicketSaleRequest records sold tickets against a show
type CreateTicketSaleRequest struct {
	ShowExternalID string `json:"show_external_id" binding:"required,uuid"`
	Quantity       int    `json:"quantity" binding:"required,gt=0"`
}

// Validate validates the CreateTicketSaleRequest
func (r *CreateTicketSaleRequest) Validate() (bool, string) {
	if r.ShowExternalID == "" {
		return false, "Show id is required"
	}
	if r.Quantity <= 0 {
		return false, "Quantity must be greater than 0"
	}
	return true, ""
}

// UpdateTicketSaleRequest represents a partial update of a ticket sale
type UpdateTicketSaleRequest struct {
	Quantity *int `json:"quantity,omitempty"`
}

// Validate validates the UpdateTicketSaleRequest
func (r *UpdateTicketSaleRequest) Validate() (bool, string) {
	if r.Quantity != nil && *r.Quantity <= 0 {
		return false, "Quantity must be greater than 0"
	}
	return true, ""
}

// TicketSaleResponse represents a ticket sale at the boundary
type TicketSaleResponse struct {
	ExternalID     string `json:"external_id"`
	ShowExternalID string `json:"show_external_id"`
	Quantity       int    `json:"quantity"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}
