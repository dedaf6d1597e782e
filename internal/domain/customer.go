package domain

import "time"

// Address is a structured postal address.
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// Customer represents a buyer owned by exactly one tenant. Billing address is
// required, shipping address is optional.
type Customer struct {
	ID              int64     `json:"-"`
	ExternalID      string    `json:"external_id"`
	TenantID        int64     `json:"-"`
	Name            string    `json:"name"`
	BillingAddress  Address   `json:"billing_address"`
	ShippingAddress *Address  `json:"shipping_address,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
