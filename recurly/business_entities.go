package recurly

import (
	"context"
	"net/http"
	"time"
)

// BusinessEntitiesService handles /business_entities.
type BusinessEntitiesService service

// BusinessEntity is a legal entity that issues invoices.
type BusinessEntity struct {
	ID                          string     `json:"id"`
	Object                      string     `json:"object"`
	Code                        string     `json:"code"`
	Name                        string     `json:"name"`
	InvoiceDisplayAddress       *Address   `json:"invoice_display_address"`
	TaxAddress                  *Address   `json:"tax_address"`
	DefaultVatNumber            string     `json:"default_vat_number"`
	DefaultRegistrationNumber   string     `json:"default_registration_number"`
	SubscriberLocationCountries []string   `json:"subscriber_location_countries"`
	DefaultLiabilityGLAccountID string     `json:"default_liability_gl_account_id"`
	DefaultRevenueGLAccountID   string     `json:"default_revenue_gl_account_id"`
	CreatedAt                   *time.Time `json:"created_at"`
	UpdatedAt                   *time.Time `json:"updated_at"`
}

// List returns the site's business entities.
func (s *BusinessEntitiesService) List(ctx context.Context, opts ...RequestOption) (*List[BusinessEntity], error) {
	return call[List[BusinessEntity]](ctx, (*service)(s), http.MethodGet, newRoute("/business_entities"), nil, nil, opts)
}

// Get fetches a business entity.
func (s *BusinessEntitiesService) Get(ctx context.Context, entityID string, opts ...RequestOption) (*BusinessEntity, error) {
	return call[BusinessEntity](ctx, (*service)(s), http.MethodGet, newRoute("/business_entities/%s", entityID), nil, nil, opts)
}

// ListInvoices returns the invoices issued by a business entity.
func (s *BusinessEntitiesService) ListInvoices(ctx context.Context, entityID string, params *InvoiceListParams, opts ...RequestOption) (*List[Invoice], error) {
	return call[List[Invoice]](ctx, (*service)(s), http.MethodGet, newRoute("/business_entities/%s/invoices", entityID), params, nil, opts)
}
