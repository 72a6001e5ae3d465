package recurly

import (
	"context"
	"net/http"
	"time"
)

// InvoiceTemplatesService handles /invoice_templates.
type InvoiceTemplatesService service

// InvoiceTemplate is an alternate invoice layout.
type InvoiceTemplate struct {
	ID          string     `json:"id"`
	Object      string     `json:"object"`
	Code        string     `json:"code"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	CreatedAt   *time.Time `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

// List returns the site's invoice templates.
func (s *InvoiceTemplatesService) List(ctx context.Context, params *ListParams, opts ...RequestOption) (*List[InvoiceTemplate], error) {
	return call[List[InvoiceTemplate]](ctx, (*service)(s), http.MethodGet, newRoute("/invoice_templates"), params, nil, opts)
}

// Get fetches an invoice template.
func (s *InvoiceTemplatesService) Get(ctx context.Context, templateID string, opts ...RequestOption) (*InvoiceTemplate, error) {
	return call[InvoiceTemplate](ctx, (*service)(s), http.MethodGet, newRoute("/invoice_templates/%s", templateID), nil, nil, opts)
}

// ListAccounts returns the accounts using a template.
func (s *InvoiceTemplatesService) ListAccounts(ctx context.Context, templateID string, params *AccountListParams, opts ...RequestOption) (*List[Account], error) {
	return call[List[Account]](ctx, (*service)(s), http.MethodGet, newRoute("/invoice_templates/%s/accounts", templateID), params, nil, opts)
}
