package recurly

import (
	"context"
	"net/http"
	"time"
)

// UsageService handles usage records of usage-based subscription add-ons.
type UsageService service

// Usage is one metered usage record.
type Usage struct {
	ID                 string     `json:"id"`
	Object             string     `json:"object"`
	MerchantTag        string     `json:"merchant_tag"`
	Amount             float64    `json:"amount"`
	UsageType          string     `json:"usage_type"`
	TierType           string     `json:"tier_type"`
	Tiers              []Tier     `json:"tiers"`
	MeasuredUnitID     string     `json:"measured_unit_id"`
	UnitAmount         float64    `json:"unit_amount"`
	UsagePercentage    float64    `json:"usage_percentage"`
	RecordingTimestamp *time.Time `json:"recording_timestamp"`
	UsageTimestamp     *time.Time `json:"usage_timestamp"`
	BilledAt           *time.Time `json:"billed_at"`
	CreatedAt          *time.Time `json:"created_at"`
	UpdatedAt          *time.Time `json:"updated_at"`
}

// UsageCreate is the body of POST .../add_ons/{add_on_id}/usage.
type UsageCreate struct {
	MerchantTag        string     `json:"merchant_tag,omitempty"`
	Amount             float64    `json:"amount" validate:"min=0"`
	RecordingTimestamp *time.Time `json:"recording_timestamp,omitempty"`
	UsageTimestamp     *time.Time `json:"usage_timestamp,omitempty"`
}

// UsageListParams filters usage records.
type UsageListParams struct {
	ListParams
	BillingStatus string `url:"billing_status,omitempty" validate:"omitempty,oneof=unbilled billed all"`
}

// List returns the usage recorded against a subscription add-on.
func (s *UsageService) List(ctx context.Context, subscriptionID, addOnID string, params *UsageListParams, opts ...RequestOption) (*List[Usage], error) {
	return call[List[Usage]](ctx, (*service)(s), http.MethodGet, newRoute("/subscriptions/%s/add_ons/%s/usage", subscriptionID, addOnID), params, nil, opts)
}

// Create records usage against a subscription add-on.
func (s *UsageService) Create(ctx context.Context, subscriptionID, addOnID string, body *UsageCreate, opts ...RequestOption) (*Usage, error) {
	return call[Usage](ctx, (*service)(s), http.MethodPost, newRoute("/subscriptions/%s/add_ons/%s/usage", subscriptionID, addOnID), nil, body, opts)
}

// Get fetches a usage record.
func (s *UsageService) Get(ctx context.Context, usageID string, opts ...RequestOption) (*Usage, error) {
	return call[Usage](ctx, (*service)(s), http.MethodGet, newRoute("/usage/%s", usageID), nil, nil, opts)
}

// Update modifies an unbilled usage record.
func (s *UsageService) Update(ctx context.Context, usageID string, body *UsageCreate, opts ...RequestOption) (*Usage, error) {
	return call[Usage](ctx, (*service)(s), http.MethodPut, newRoute("/usage/%s", usageID), nil, body, opts)
}

// Remove deletes an unbilled usage record.
func (s *UsageService) Remove(ctx context.Context, usageID string, opts ...RequestOption) error {
	return exec(ctx, (*service)(s), http.MethodDelete, newRoute("/usage/%s", usageID), nil, nil, opts)
}
