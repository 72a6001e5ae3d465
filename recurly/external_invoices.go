package recurly

import (
	"context"
	"net/http"
	"time"
)

// ExternalInvoicesService handles invoices issued by app stores.
type ExternalInvoicesService service

// ExternalInvoice is a store receipt recorded against a subscription.
type ExternalInvoice struct {
	ID                   string                `json:"id"`
	Object               string                `json:"object"`
	Account              *AccountMini          `json:"account"`
	ExternalSubscription *ExternalSubscription `json:"external_subscription"`
	ExternalID           string                `json:"external_id"`
	State                string                `json:"state"`
	Total                string                `json:"total"`
	Currency             string                `json:"currency"`
	LineItems            []ExternalCharge      `json:"line_items"`
	PurchasedAt          *time.Time            `json:"purchased_at"`
	CreatedAt            *time.Time            `json:"created_at"`
	UpdatedAt            *time.Time            `json:"updated_at"`
}

// ExternalCharge is one line of an external invoice.
type ExternalCharge struct {
	ID                       string                    `json:"id"`
	Object                   string                    `json:"object"`
	Account                  *AccountMini              `json:"account"`
	Currency                 string                    `json:"currency"`
	UnitAmount               string                    `json:"unit_amount"`
	Quantity                 int                       `json:"quantity"`
	Description              string                    `json:"description"`
	ExternalProductReference *ExternalProductReference `json:"external_product_reference"`
	CreatedAt                *time.Time                `json:"created_at"`
	UpdatedAt                *time.Time                `json:"updated_at"`
}

// ExternalChargeCreate is one line of an ExternalInvoiceCreate.
type ExternalChargeCreate struct {
	Currency                 string                          `json:"currency" validate:"required,len=3"`
	UnitAmount               string                          `json:"unit_amount" validate:"required,numeric"`
	Quantity                 int                             `json:"quantity" validate:"min=1"`
	Description              string                          `json:"description,omitempty"`
	ExternalProductReference *ExternalProductReferenceCreate `json:"external_product_reference,omitempty"`
}

// ExternalInvoiceCreate is the body of
// POST /external_subscriptions/{id}/external_invoices.
type ExternalInvoiceCreate struct {
	ExternalID  string                 `json:"external_id" validate:"required"`
	State       string                 `json:"state" validate:"required,oneof=paid"`
	Total       string                 `json:"total" validate:"required,numeric"`
	Currency    string                 `json:"currency" validate:"required,len=3"`
	PurchasedAt *time.Time             `json:"purchased_at" validate:"required"`
	LineItems   []ExternalChargeCreate `json:"line_items,omitempty" validate:"omitempty,dive"`
}

// List returns the site's external invoices.
func (s *ExternalInvoicesService) List(ctx context.Context, params *ListParams, opts ...RequestOption) (*List[ExternalInvoice], error) {
	return call[List[ExternalInvoice]](ctx, (*service)(s), http.MethodGet, newRoute("/external_invoices"), params, nil, opts)
}

// ListForAccount returns an account's external invoices.
func (s *ExternalInvoicesService) ListForAccount(ctx context.Context, accountID string, params *ListParams, opts ...RequestOption) (*List[ExternalInvoice], error) {
	return call[List[ExternalInvoice]](ctx, (*service)(s), http.MethodGet, newRoute("/accounts/%s/external_invoices", accountID), params, nil, opts)
}

// ListForSubscription returns the invoices of an external subscription.
func (s *ExternalInvoicesService) ListForSubscription(ctx context.Context, subscriptionID string, params *ListParams, opts ...RequestOption) (*List[ExternalInvoice], error) {
	return call[List[ExternalInvoice]](ctx, (*service)(s), http.MethodGet, newRoute("/external_subscriptions/%s/external_invoices", subscriptionID), params, nil, opts)
}

// Create records an external invoice on an external subscription.
func (s *ExternalInvoicesService) Create(ctx context.Context, subscriptionID string, body *ExternalInvoiceCreate, opts ...RequestOption) (*ExternalInvoice, error) {
	return call[ExternalInvoice](ctx, (*service)(s), http.MethodPost, newRoute("/external_subscriptions/%s/external_invoices", subscriptionID), nil, body, opts)
}

// Get fetches an external invoice.
func (s *ExternalInvoicesService) Get(ctx context.Context, invoiceID string, opts ...RequestOption) (*ExternalInvoice, error) {
	return call[ExternalInvoice](ctx, (*service)(s), http.MethodGet, newRoute("/external_invoices/%s", invoiceID), nil, nil, opts)
}
