package recurly

import (
	"context"
	"net/http"
	"time"
)

// ShippingMethodsService handles /shipping_methods.
type ShippingMethodsService service

// ShippingMethod is a carrier option offered at checkout.
type ShippingMethod struct {
	ID             string     `json:"id"`
	Object         string     `json:"object"`
	Code           string     `json:"code"`
	Name           string     `json:"name"`
	AccountingCode string     `json:"accounting_code"`
	TaxCode        string     `json:"tax_code"`
	CreatedAt      *time.Time `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at"`
	DeletedAt      *time.Time `json:"deleted_at"`
}

// ShippingMethodCreate is the body of POST /shipping_methods.
type ShippingMethodCreate struct {
	Code           string `json:"code" validate:"required,max=50"`
	Name           string `json:"name" validate:"required,max=100"`
	AccountingCode string `json:"accounting_code,omitempty" validate:"omitempty,max=20"`
	TaxCode        string `json:"tax_code,omitempty" validate:"omitempty,max=50"`
}

// ShippingMethodUpdate is the body of PUT /shipping_methods/{id}.
type ShippingMethodUpdate struct {
	Code           string `json:"code,omitempty" validate:"omitempty,max=50"`
	Name           string `json:"name,omitempty" validate:"omitempty,max=100"`
	AccountingCode string `json:"accounting_code,omitempty" validate:"omitempty,max=20"`
	TaxCode        string `json:"tax_code,omitempty" validate:"omitempty,max=50"`
}

// List returns the site's shipping methods.
func (s *ShippingMethodsService) List(ctx context.Context, params *ListParams, opts ...RequestOption) (*List[ShippingMethod], error) {
	return call[List[ShippingMethod]](ctx, (*service)(s), http.MethodGet, newRoute("/shipping_methods"), params, nil, opts)
}

// Create creates a shipping method.
func (s *ShippingMethodsService) Create(ctx context.Context, body *ShippingMethodCreate, opts ...RequestOption) (*ShippingMethod, error) {
	return call[ShippingMethod](ctx, (*service)(s), http.MethodPost, newRoute("/shipping_methods"), nil, body, opts)
}

// Get fetches a shipping method by ID or Code(code).
func (s *ShippingMethodsService) Get(ctx context.Context, methodID string, opts ...RequestOption) (*ShippingMethod, error) {
	return call[ShippingMethod](ctx, (*service)(s), http.MethodGet, newRoute("/shipping_methods/%s", methodID), nil, nil, opts)
}

// Update modifies a shipping method.
func (s *ShippingMethodsService) Update(ctx context.Context, methodID string, body *ShippingMethodUpdate, opts ...RequestOption) (*ShippingMethod, error) {
	return call[ShippingMethod](ctx, (*service)(s), http.MethodPut, newRoute("/shipping_methods/%s", methodID), nil, body, opts)
}

// Deactivate removes a shipping method from checkout.
func (s *ShippingMethodsService) Deactivate(ctx context.Context, methodID string, opts ...RequestOption) (*ShippingMethod, error) {
	return call[ShippingMethod](ctx, (*service)(s), http.MethodDelete, newRoute("/shipping_methods/%s", methodID), nil, nil, opts)
}
