package recurly

import (
	"context"
	"net/http"
	"time"
)

// ShippingAddressesService handles /accounts/{id}/shipping_addresses.
type ShippingAddressesService service

// ShippingAddress is a delivery address stored on an account.
type ShippingAddress struct {
	ID         string     `json:"id"`
	Object     string     `json:"object"`
	AccountID  string     `json:"account_id"`
	Nickname   string     `json:"nickname"`
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	Company    string     `json:"company"`
	Email      string     `json:"email"`
	VatNumber  string     `json:"vat_number"`
	Phone      string     `json:"phone"`
	Street1    string     `json:"street1"`
	Street2    string     `json:"street2"`
	City       string     `json:"city"`
	Region     string     `json:"region"`
	PostalCode string     `json:"postal_code"`
	Country    string     `json:"country"`
	GeoCode    string     `json:"geo_code"`
	CreatedAt  *time.Time `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at"`
}

// ShippingAddressCreate is the body of POST .../shipping_addresses.
type ShippingAddressCreate struct {
	Nickname   string `json:"nickname,omitempty" validate:"omitempty,max=255"`
	FirstName  string `json:"first_name" validate:"required,max=255"`
	LastName   string `json:"last_name" validate:"required,max=255"`
	Company    string `json:"company,omitempty"`
	Email      string `json:"email,omitempty" validate:"omitempty,email"`
	VatNumber  string `json:"vat_number,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Street1    string `json:"street1" validate:"required"`
	Street2    string `json:"street2,omitempty"`
	City       string `json:"city" validate:"required"`
	Region     string `json:"region,omitempty"`
	PostalCode string `json:"postal_code" validate:"required"`
	Country    string `json:"country" validate:"required,len=2"`
	GeoCode    string `json:"geo_code,omitempty"`
}

// ShippingAddressUpdate is the body of PUT .../shipping_addresses/{id}.
type ShippingAddressUpdate struct {
	Nickname   string `json:"nickname,omitempty" validate:"omitempty,max=255"`
	FirstName  string `json:"first_name,omitempty" validate:"omitempty,max=255"`
	LastName   string `json:"last_name,omitempty" validate:"omitempty,max=255"`
	Company    string `json:"company,omitempty"`
	Email      string `json:"email,omitempty" validate:"omitempty,email"`
	VatNumber  string `json:"vat_number,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Street1    string `json:"street1,omitempty"`
	Street2    string `json:"street2,omitempty"`
	City       string `json:"city,omitempty"`
	Region     string `json:"region,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	Country    string `json:"country,omitempty" validate:"omitempty,len=2"`
	GeoCode    string `json:"geo_code,omitempty"`
}

// List returns an account's shipping addresses.
func (s *ShippingAddressesService) List(ctx context.Context, accountID string, params *ListParams, opts ...RequestOption) (*List[ShippingAddress], error) {
	return call[List[ShippingAddress]](ctx, (*service)(s), http.MethodGet, newRoute("/accounts/%s/shipping_addresses", accountID), params, nil, opts)
}

// Create adds a shipping address to an account.
func (s *ShippingAddressesService) Create(ctx context.Context, accountID string, body *ShippingAddressCreate, opts ...RequestOption) (*ShippingAddress, error) {
	return call[ShippingAddress](ctx, (*service)(s), http.MethodPost, newRoute("/accounts/%s/shipping_addresses", accountID), nil, body, opts)
}

// Get fetches one shipping address.
func (s *ShippingAddressesService) Get(ctx context.Context, accountID, addressID string, opts ...RequestOption) (*ShippingAddress, error) {
	return call[ShippingAddress](ctx, (*service)(s), http.MethodGet, newRoute("/accounts/%s/shipping_addresses/%s", accountID, addressID), nil, nil, opts)
}

// Update modifies one shipping address.
func (s *ShippingAddressesService) Update(ctx context.Context, accountID, addressID string, body *ShippingAddressUpdate, opts ...RequestOption) (*ShippingAddress, error) {
	return call[ShippingAddress](ctx, (*service)(s), http.MethodPut, newRoute("/accounts/%s/shipping_addresses/%s", accountID, addressID), nil, body, opts)
}

// Remove deletes a shipping address.
func (s *ShippingAddressesService) Remove(ctx context.Context, accountID, addressID string, opts ...RequestOption) error {
	return exec(ctx, (*service)(s), http.MethodDelete, newRoute("/accounts/%s/shipping_addresses/%s", accountID, addressID), nil, nil, opts)
}
