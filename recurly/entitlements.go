package recurly

import (
	"context"
	"net/http"
	"time"
)

// EntitlementsService handles /accounts/{id}/entitlements.
type EntitlementsService service

// Entitlement is a customer permission granted by active subscriptions.
type Entitlement struct {
	Object             string              `json:"object"`
	CustomerPermission *CustomerPermission `json:"customer_permission"`
	GrantedBy          []GrantedBy         `json:"granted_by"`
	CreatedAt          *time.Time          `json:"created_at"`
	UpdatedAt          *time.Time          `json:"updated_at"`
}

// CustomerPermission is a named permission defined on the site.
type CustomerPermission struct {
	ID          string `json:"id"`
	Object      string `json:"object"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// GrantedBy names the subscription that grants an entitlement.
type GrantedBy struct {
	Object string `json:"object"`
	ID     string `json:"id"`
}

// ListForAccount returns the account's entitlements.
func (s *EntitlementsService) ListForAccount(ctx context.Context, accountID string, params *EntitlementListParams, opts ...RequestOption) (*List[Entitlement], error) {
	return call[List[Entitlement]](ctx, (*service)(s), http.MethodGet, newRoute("/accounts/%s/entitlements", accountID), params, nil, opts)
}
