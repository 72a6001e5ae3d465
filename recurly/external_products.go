package recurly

import (
	"context"
	"net/http"
	"time"
)

// ExternalProductsService handles /external_products and their
// references to products in app stores.
type ExternalProductsService service

// ExternalProduct ties a plan to products sold through external stores.
type ExternalProduct struct {
	ID                        string                     `json:"id"`
	Object                    string                     `json:"object"`
	Name                      string                     `json:"name"`
	Plan                      *PlanMini                  `json:"plan"`
	ExternalProductReferences []ExternalProductReference `json:"external_product_references"`
	CreatedAt                 *time.Time                 `json:"created_at"`
	UpdatedAt                 *time.Time                 `json:"updated_at"`
}

// ExternalProductReference is a product identifier in one external store.
type ExternalProductReference struct {
	ID                     string     `json:"id"`
	Object                 string     `json:"object"`
	ReferenceCode          string     `json:"reference_code"`
	ExternalConnectionType string     `json:"external_connection_type"`
	CreatedAt              *time.Time `json:"created_at"`
	UpdatedAt              *time.Time `json:"updated_at"`
}

// ExternalProductReferenceCreate is the body used to add a reference.
type ExternalProductReferenceCreate struct {
	ReferenceCode          string `json:"reference_code" validate:"required"`
	ExternalConnectionType string `json:"external_connection_type" validate:"required,oneof=apple_app_store google_play_store"`
}

// ExternalProductCreate is the body of POST /external_products.
type ExternalProductCreate struct {
	Name                      string                           `json:"name" validate:"required"`
	PlanID                    string                           `json:"plan_id,omitempty"`
	ExternalProductReferences []ExternalProductReferenceCreate `json:"external_product_references,omitempty" validate:"omitempty,dive"`
}

// ExternalProductUpdate is the body of PUT /external_products/{id}.
type ExternalProductUpdate struct {
	PlanID string `json:"plan_id" validate:"required"`
}

// List returns the site's external products.
func (s *ExternalProductsService) List(ctx context.Context, params *ListParams, opts ...RequestOption) (*List[ExternalProduct], error) {
	return call[List[ExternalProduct]](ctx, (*service)(s), http.MethodGet, newRoute("/external_products"), params, nil, opts)
}

// Create creates an external product.
func (s *ExternalProductsService) Create(ctx context.Context, body *ExternalProductCreate, opts ...RequestOption) (*ExternalProduct, error) {
	return call[ExternalProduct](ctx, (*service)(s), http.MethodPost, newRoute("/external_products"), nil, body, opts)
}

// Get fetches an external product.
func (s *ExternalProductsService) Get(ctx context.Context, productID string, opts ...RequestOption) (*ExternalProduct, error) {
	return call[ExternalProduct](ctx, (*service)(s), http.MethodGet, newRoute("/external_products/%s", productID), nil, nil, opts)
}

// Update relinks an external product to another plan.
func (s *ExternalProductsService) Update(ctx context.Context, productID string, body *ExternalProductUpdate, opts ...RequestOption) (*ExternalProduct, error) {
	return call[ExternalProduct](ctx, (*service)(s), http.MethodPut, newRoute("/external_products/%s", productID), nil, body, opts)
}

// Deactivate deactivates an external product.
func (s *ExternalProductsService) Deactivate(ctx context.Context, productID string, opts ...RequestOption) (*ExternalProduct, error) {
	return call[ExternalProduct](ctx, (*service)(s), http.MethodDelete, newRoute("/external_products/%s", productID), nil, nil, opts)
}

// ListReferences returns a product's store references.
func (s *ExternalProductsService) ListReferences(ctx context.Context, productID string, params *ListParams, opts ...RequestOption) (*List[ExternalProductReference], error) {
	return call[List[ExternalProductReference]](ctx, (*service)(s), http.MethodGet, newRoute("/external_products/%s/external_product_references", productID), params, nil, opts)
}

// CreateReference adds a store reference to a product.
func (s *ExternalProductsService) CreateReference(ctx context.Context, productID string, body *ExternalProductReferenceCreate, opts ...RequestOption) (*ExternalProductReference, error) {
	return call[ExternalProductReference](ctx, (*service)(s), http.MethodPost, newRoute("/external_products/%s/external_product_references", productID), nil, body, opts)
}

// GetReference fetches one store reference.
func (s *ExternalProductsService) GetReference(ctx context.Context, productID, referenceID string, opts ...RequestOption) (*ExternalProductReference, error) {
	return call[ExternalProductReference](ctx, (*service)(s), http.MethodGet, newRoute("/external_products/%s/external_product_references/%s", productID, referenceID), nil, nil, opts)
}

// DeactivateReference deactivates one store reference.
func (s *ExternalProductsService) DeactivateReference(ctx context.Context, productID, referenceID string, opts ...RequestOption) (*ExternalProductReference, error) {
	return call[ExternalProductReference](ctx, (*service)(s), http.MethodDelete, newRoute("/external_products/%s/external_product_references/%s", productID, referenceID), nil, nil, opts)
}
