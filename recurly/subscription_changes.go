package recurly

import (
	"context"
	"net/http"
	"time"
)

// SubscriptionChangesService handles /subscriptions/{id}/change.
type SubscriptionChangesService service

// SubscriptionChange is a plan or price change, applied now or pending
// until renewal.
type SubscriptionChange struct {
	ID                  string              `json:"id"`
	Object              string              `json:"object"`
	SubscriptionID      string              `json:"subscription_id"`
	Plan                *PlanMini           `json:"plan"`
	AddOns              []SubscriptionAddOn `json:"add_ons"`
	UnitAmount          float64             `json:"unit_amount"`
	TaxInclusive        bool                `json:"tax_inclusive"`
	Quantity            int                 `json:"quantity"`
	ShippingMethodID    string              `json:"shipping_method_id"`
	RevenueScheduleType string              `json:"revenue_schedule_type"`
	Activated           bool                `json:"activated"`
	Invoices            *InvoiceCollection  `json:"invoice_collection"`
	ActivateAt          *time.Time          `json:"activate_at"`
	CreatedAt           *time.Time          `json:"created_at"`
	UpdatedAt           *time.Time          `json:"updated_at"`
	DeletedAt           *time.Time          `json:"deleted_at"`
}

// SubscriptionChangeCreate is the body of POST /subscriptions/{id}/change.
type SubscriptionChangeCreate struct {
	Timeframe           string                    `json:"timeframe,omitempty" validate:"omitempty,oneof=bill_date now renewal term_end"`
	PlanID              string                    `json:"plan_id,omitempty"`
	PlanCode            string                    `json:"plan_code,omitempty"`
	BusinessEntityID    string                    `json:"business_entity_id,omitempty"`
	UnitAmount          *float64                  `json:"unit_amount,omitempty" validate:"omitempty,min=0"`
	TaxInclusive        *bool                     `json:"tax_inclusive,omitempty"`
	Quantity            int                       `json:"quantity,omitempty" validate:"omitempty,min=0"`
	AddOns              []SubscriptionAddOnCreate `json:"add_ons,omitempty" validate:"omitempty,dive"`
	CouponCodes         []string                  `json:"coupon_codes,omitempty"`
	CollectionMethod    string                    `json:"collection_method,omitempty" validate:"omitempty,oneof=automatic manual"`
	RevenueScheduleType string                    `json:"revenue_schedule_type,omitempty" validate:"omitempty,oneof=at_range_end at_range_start evenly never"`
	PONumber            string                    `json:"po_number,omitempty" validate:"omitempty,max=50"`
	NetTerms            *int                      `json:"net_terms,omitempty" validate:"omitempty,min=0,max=999"`
	TransactionType     string                    `json:"transaction_type,omitempty" validate:"omitempty,oneof=moto"`
	CustomFields        []CustomField             `json:"custom_fields,omitempty" validate:"omitempty,dive"`
}

// Get fetches the subscription's pending change.
func (s *SubscriptionChangesService) Get(ctx context.Context, subscriptionID string, opts ...RequestOption) (*SubscriptionChange, error) {
	return call[SubscriptionChange](ctx, (*service)(s), http.MethodGet, newRoute("/subscriptions/%s/change", subscriptionID), nil, nil, opts)
}

// Create changes the subscription now or schedules the change.
func (s *SubscriptionChangesService) Create(ctx context.Context, subscriptionID string, body *SubscriptionChangeCreate, opts ...RequestOption) (*SubscriptionChange, error) {
	return call[SubscriptionChange](ctx, (*service)(s), http.MethodPost, newRoute("/subscriptions/%s/change", subscriptionID), nil, body, opts)
}

// Preview shows the effect of a change without applying it.
func (s *SubscriptionChangesService) Preview(ctx context.Context, subscriptionID string, body *SubscriptionChangeCreate, opts ...RequestOption) (*SubscriptionChange, error) {
	return call[SubscriptionChange](ctx, (*service)(s), http.MethodPost, newRoute("/subscriptions/%s/change/preview", subscriptionID), nil, body, opts)
}

// Remove discards the pending change.
func (s *SubscriptionChangesService) Remove(ctx context.Context, subscriptionID string, opts ...RequestOption) error {
	return exec(ctx, (*service)(s), http.MethodDelete, newRoute("/subscriptions/%s/change", subscriptionID), nil, nil, opts)
}
