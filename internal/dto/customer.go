package dto

import "github.com/stagepass/stagepass/internal/domain"

// AddressRequest is a structured postal address supplied at the boundary
type AddressRequest struct {
	Street     string `json:"street" binding:"required"`
	City       string `json:"city" binding:"required"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code" binding:"required"`
	Country    string `json:"country" binding:"required"`
}

// Validate validates the AddressRequest
func (r *AddressRequest) Validate() (bool, string) {
	if r.Street == "" {
		return false, "Street is required"
	}
	if r.City == "" {
		return false, "City is required"
	}
	if r.PostalCode == "" {
		return false, "Postal code is required"
	}
	if r.Country == "" {
		return false, "Country is required"
	}
	return true, ""
}

// ToDomain converts the request to a domain address
func (r *AddressRequest) ToDomain() domain.Address {
	return domain.Address{
		Street:     r.Street,
		City:       r.City,
		State:      r.State,
		PostalCode: r.PostalCode,
		Country:    r.Country,
	}
}

// CreateCustomerRequest represents the request to register a customer
type CreateCustomerRequest struct {
	Name            string          `json:"name" binding:"required"`
	BillingAddress  AddressRequest  `json:"billing_address" binding:"required"`
	ShippingAddress *AddressRequest `json:"shipping_address,omitempty"`
}

// Validate validates the CreateCustomerRequest
func (r *CreateCustomerRequest) Validate() (bool, string) {
	if r.Name == "" {
		return false, "Name is required"
	}
	if ok, msg := r.BillingAddress.Validate(); !ok {
		return false, "Billing address: " + msg
	}
	if r.ShippingAddress != nil {
		if ok, msg := r.ShippingAddress.Validate(); !ok {
			return false, "Shipping address: " + msg
		}
	}
	return true, ""
}

// UpdateCustomerRequest represents a partial update of a customer
type UpdateCustomerRequest struct {
	Name            *string         `json:"name,omitempty"`
	BillingAddress  *AddressRequest `json:"billing_address,omitempty"`
	ShippingAddress *AddressRequest `json:"shipping_address,omitempty"`
}

// Validate validates the UpdateCustomerRequest
func (r *UpdateCustomerRequest) Validate() (bool, string) {
	if r.Name != nil && *r.Name == "" {
		return false, "Name must not be empty"
	}
	if r.BillingAddress != nil {
		if ok, msg := r.BillingAddress.Validate(); !ok {
			return false, "Billing address: " + msg
		}
	}
	if r.ShippingAddress != nil {
		if ok, msg := r.ShippingAddress.Validate(); !ok {
			return false, "Shipping address: " + msg
		}
	}
	return true, ""
}

// CustomerResponse represents a customer at the boundary
type CustomerResponse struct {
	ExternalID      string          `json:"external_id"`
	Name            string          `json:"name"`
	BillingAddress  domain.Address  `json:"billing_address"`
	ShippingAddress *domain.Address `json:"shipping_address,omitempty"`
	CreatedAt       string          `json:"created_at"`
	UpdatedAt       string          `json:"updated_at"`
}
