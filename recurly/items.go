package recurly

import (
	"context"
	"net/http"
	"time"
)

// ItemsService handles /items.
type ItemsService service

// Item is a catalog product that can be sold on its own or as an add-on.
type Item struct {
	ID                      string        `json:"id"`
	Object                  string        `json:"object"`
	Code                    string        `json:"code"`
	State                   string        `json:"state"`
	Name                    string        `json:"name"`
	Description             string        `json:"description"`
	ExternalSKU             string        `json:"external_sku"`
	AccountingCode          string        `json:"accounting_code"`
	RevenueScheduleType     string        `json:"revenue_schedule_type"`
	TaxCode                 string        `json:"tax_code"`
	TaxExempt               bool          `json:"tax_exempt"`
	AvalaraTransactionType  int           `json:"avalara_transaction_type"`
	AvalaraServiceType      int           `json:"avalara_service_type"`
	HarmonizedSystemCode    string        `json:"harmonized_system_code"`
	LiabilityGLAccountID    string        `json:"liability_gl_account_id"`
	RevenueGLAccountID      string        `json:"revenue_gl_account_id"`
	PerformanceObligationID string        `json:"performance_obligation_id"`
	CustomFields            []CustomField `json:"custom_fields"`
	Currencies              []Pricing     `json:"currencies"`
	CreatedAt               *time.Time    `json:"created_at"`
	UpdatedAt               *time.Time    `json:"updated_at"`
	DeletedAt               *time.Time    `json:"deleted_at"`
}

// ItemCreate is the body of POST /items.
type ItemCreate struct {
	Code                    string        `json:"code" validate:"required,max=50"`
	Name                    string        `json:"name" validate:"required,max=255"`
	Description             string        `json:"description,omitempty"`
	ExternalSKU             string        `json:"external_sku,omitempty"`
	AccountingCode          string        `json:"accounting_code,omitempty"`
	RevenueScheduleType     string        `json:"revenue_schedule_type,omitempty" validate:"omitempty,oneof=at_range_end at_range_start evenly never"`
	TaxCode                 string        `json:"tax_code,omitempty"`
	TaxExempt               *bool         `json:"tax_exempt,omitempty"`
	HarmonizedSystemCode    string        `json:"harmonized_system_code,omitempty"`
	LiabilityGLAccountID    string        `json:"liability_gl_account_id,omitempty"`
	RevenueGLAccountID      string        `json:"revenue_gl_account_id,omitempty"`
	PerformanceObligationID string        `json:"performance_obligation_id,omitempty"`
	CustomFields            []CustomField `json:"custom_fields,omitempty" validate:"omitempty,dive"`
	Currencies              []Pricing     `json:"currencies,omitempty" validate:"omitempty,dive"`
}

// ItemUpdate is the body of PUT /items/{id}.
type ItemUpdate struct {
	Code                    string        `json:"code,omitempty" validate:"omitempty,max=50"`
	Name                    string        `json:"name,omitempty" validate:"omitempty,max=255"`
	Description             string        `json:"description,omitempty"`
	ExternalSKU             string        `json:"external_sku,omitempty"`
	AccountingCode          string        `json:"accounting_code,omitempty"`
	RevenueScheduleType     string        `json:"revenue_schedule_type,omitempty" validate:"omitempty,oneof=at_range_end at_range_start evenly never"`
	TaxCode                 string        `json:"tax_code,omitempty"`
	TaxExempt               *bool         `json:"tax_exempt,omitempty"`
	LiabilityGLAccountID    string        `json:"liability_gl_account_id,omitempty"`
	RevenueGLAccountID      string        `json:"revenue_gl_account_id,omitempty"`
	PerformanceObligationID string        `json:"performance_obligation_id,omitempty"`
	CustomFields            []CustomField `json:"custom_fields,omitempty" validate:"omitempty,dive"`
	Currencies              []Pricing     `json:"currencies,omitempty" validate:"omitempty,dive"`
}

// List returns a page of items.
func (s *ItemsService) List(ctx context.Context, params *PlanListParams, opts ...RequestOption) (*List[Item], error) {
	return call[List[Item]](ctx, (*service)(s), http.MethodGet, newRoute("/items"), params, nil, opts)
}

// Create creates an item.
func (s *ItemsService) Create(ctx context.Context, body *ItemCreate, opts ...RequestOption) (*Item, error) {
	return call[Item](ctx, (*service)(s), http.MethodPost, newRoute("/items"), nil, body, opts)
}

// Get fetches an item by ID or Code(code).
func (s *ItemsService) Get(ctx context.Context, itemID string, opts ...RequestOption) (*Item, error) {
	return call[Item](ctx, (*service)(s), http.MethodGet, newRoute("/items/%s", itemID), nil, nil, opts)
}

// Update modifies an item.
func (s *ItemsService) Update(ctx context.Context, itemID string, body *ItemUpdate, opts ...RequestOption) (*Item, error) {
	return call[Item](ctx, (*service)(s), http.MethodPut, newRoute("/items/%s", itemID), nil, body, opts)
}

// Deactivate makes an item unavailable for new purchases.
func (s *ItemsService) Deactivate(ctx context.Context, itemID string, opts ...RequestOption) (*Item, error) {
	return call[Item](ctx, (*service)(s), http.MethodDelete, newRoute("/items/%s", itemID), nil, nil, opts)
}

// Reactivate makes a deactivated item available again.
func (s *ItemsService) Reactivate(ctx context.Context, itemID string, opts ...RequestOption) (*Item, error) {
	return call[Item](ctx, (*service)(s), http.MethodPut, newRoute("/items/%s/reactivate", itemID), nil, nil, opts)
}
