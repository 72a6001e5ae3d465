package recurly

import (
	"context"
	"net/http"
	"time"
)

// PlansService handles /plans.
type PlansService service

// Plan is a recurring price a subscription is created from.
type Plan struct {
	ID                          string             `json:"id"`
	Object                      string             `json:"object"`
	Code                        string             `json:"code"`
	State                       string             `json:"state"`
	Name                        string             `json:"name"`
	Description                 string             `json:"description"`
	IntervalUnit                string             `json:"interval_unit"`
	IntervalLength              int                `json:"interval_length"`
	TrialUnit                   string             `json:"trial_unit"`
	TrialLength                 int                `json:"trial_length"`
	TrialRequiresBillingInfo    bool               `json:"trial_requires_billing_info"`
	TotalBillingCycles          int                `json:"total_billing_cycles"`
	AutoRenew                   bool               `json:"auto_renew"`
	PricingModel                string             `json:"pricing_model"`
	RevenueScheduleType         string             `json:"revenue_schedule_type"`
	SetupFeeRevenueScheduleType string             `json:"setup_fee_revenue_schedule_type"`
	AccountingCode              string             `json:"accounting_code"`
	SetupFeeAccountingCode      string             `json:"setup_fee_accounting_code"`
	TaxCode                     string             `json:"tax_code"`
	TaxExempt                   bool               `json:"tax_exempt"`
	VertexTransactionType       string             `json:"vertex_transaction_type"`
	AllowAnyItemOnSubscriptions bool               `json:"allow_any_item_on_subscriptions"`
	DunningCampaignID           string             `json:"dunning_campaign_id"`
	CustomFields                []CustomField      `json:"custom_fields"`
	Currencies                  []PlanPricing      `json:"currencies"`
	RampIntervals               []PlanRampInterval `json:"ramp_intervals"`
	HostedPages                 *PlanHostedPages   `json:"hosted_pages"`
	CreatedAt                   *time.Time         `json:"created_at"`
	UpdatedAt                   *time.Time         `json:"updated_at"`
	DeletedAt                   *time.Time         `json:"deleted_at"`
}

// PlanRampInterval is a price step of a ramp plan.
type PlanRampInterval struct {
	StartingBillingCycle int           `json:"starting_billing_cycle" validate:"min=1"`
	Currencies           []PlanPricing `json:"currencies" validate:"omitempty,dive"`
}

// PlanHostedPages configures the hosted payment pages of a plan.
type PlanHostedPages struct {
	SuccessURL         string `json:"success_url,omitempty" validate:"omitempty,url"`
	CancelURL          string `json:"cancel_url,omitempty" validate:"omitempty,url"`
	BypassConfirmation *bool  `json:"bypass_confirmation,omitempty"`
	DisplayQuantity    *bool  `json:"display_quantity,omitempty"`
}

// PlanCreate is the body of POST /plans.
type PlanCreate struct {
	Code                        string             `json:"code" validate:"required,max=50"`
	Name                        string             `json:"name" validate:"required,max=255"`
	Description                 string             `json:"description,omitempty"`
	IntervalUnit                string             `json:"interval_unit,omitempty" validate:"omitempty,oneof=days months"`
	IntervalLength              int                `json:"interval_length,omitempty" validate:"omitempty,min=1"`
	TrialUnit                   string             `json:"trial_unit,omitempty" validate:"omitempty,oneof=days months"`
	TrialLength                 int                `json:"trial_length,omitempty" validate:"omitempty,min=0"`
	TrialRequiresBillingInfo    *bool              `json:"trial_requires_billing_info,omitempty"`
	TotalBillingCycles          int                `json:"total_billing_cycles,omitempty" validate:"omitempty,min=1"`
	AutoRenew                   *bool              `json:"auto_renew,omitempty"`
	PricingModel                string             `json:"pricing_model,omitempty" validate:"omitempty,oneof=fixed ramp"`
	RevenueScheduleType         string             `json:"revenue_schedule_type,omitempty" validate:"omitempty,oneof=at_range_end at_range_start evenly never"`
	AccountingCode              string             `json:"accounting_code,omitempty"`
	SetupFeeAccountingCode      string             `json:"setup_fee_accounting_code,omitempty"`
	TaxCode                     string             `json:"tax_code,omitempty"`
	TaxExempt                   *bool              `json:"tax_exempt,omitempty"`
	AllowAnyItemOnSubscriptions *bool              `json:"allow_any_item_on_subscriptions,omitempty"`
	DunningCampaignID           string             `json:"dunning_campaign_id,omitempty"`
	CustomFields                []CustomField      `json:"custom_fields,omitempty" validate:"omitempty,dive"`
	Currencies                  []PlanPricing      `json:"currencies" validate:"required,min=1,dive"`
	RampIntervals               []PlanRampInterval `json:"ramp_intervals,omitempty" validate:"omitempty,dive"`
	HostedPages                 *PlanHostedPages   `json:"hosted_pages,omitempty"`
	AddOns                      []AddOnCreate      `json:"add_ons,omitempty" validate:"omitempty,dive"`
}

// PlanUpdate is the body of PUT /plans/{id}.
type PlanUpdate struct {
	Code                     string             `json:"code,omitempty" validate:"omitempty,max=50"`
	Name                     string             `json:"name,omitempty" validate:"omitempty,max=255"`
	Description              string             `json:"description,omitempty"`
	TrialUnit                string             `json:"trial_unit,omitempty" validate:"omitempty,oneof=days months"`
	TrialLength              *int               `json:"trial_length,omitempty"`
	TrialRequiresBillingInfo *bool              `json:"trial_requires_billing_info,omitempty"`
	TotalBillingCycles       int                `json:"total_billing_cycles,omitempty" validate:"omitempty,min=1"`
	AutoRenew                *bool              `json:"auto_renew,omitempty"`
	RevenueScheduleType      string             `json:"revenue_schedule_type,omitempty" validate:"omitempty,oneof=at_range_end at_range_start evenly never"`
	AccountingCode           string             `json:"accounting_code,omitempty"`
	TaxCode                  string             `json:"tax_code,omitempty"`
	TaxExempt                *bool              `json:"tax_exempt,omitempty"`
	DunningCampaignID        string             `json:"dunning_campaign_id,omitempty"`
	CustomFields             []CustomField      `json:"custom_fields,omitempty" validate:"omitempty,dive"`
	Currencies               []PlanPricing      `json:"currencies,omitempty" validate:"omitempty,dive"`
	RampIntervals            []PlanRampInterval `json:"ramp_intervals,omitempty" validate:"omitempty,dive"`
	HostedPages              *PlanHostedPages   `json:"hosted_pages,omitempty"`
}

// List returns a page of plans.
func (s *PlansService) List(ctx context.Context, params *PlanListParams, opts ...RequestOption) (*List[Plan], error) {
	return call[List[Plan]](ctx, (*service)(s), http.MethodGet, newRoute("/plans"), params, nil, opts)
}

// Create creates a plan.
func (s *PlansService) Create(ctx context.Context, body *PlanCreate, opts ...RequestOption) (*Plan, error) {
	return call[Plan](ctx, (*service)(s), http.MethodPost, newRoute("/plans"), nil, body, opts)
}

// Get fetches a plan by ID or Code(code).
func (s *PlansService) Get(ctx context.Context, planID string, opts ...RequestOption) (*Plan, error) {
	return call[Plan](ctx, (*service)(s), http.MethodGet, newRoute("/plans/%s", planID), nil, nil, opts)
}

// Update modifies a plan.
func (s *PlansService) Update(ctx context.Context, planID string, body *PlanUpdate, opts ...RequestOption) (*Plan, error) {
	return call[Plan](ctx, (*service)(s), http.MethodPut, newRoute("/plans/%s", planID), nil, body, opts)
}

// Remove deactivates a plan. Existing subscriptions keep renewing.
func (s *PlansService) Remove(ctx context.Context, planID string, opts ...RequestOption) (*Plan, error) {
	return call[Plan](ctx, (*service)(s), http.MethodDelete, newRoute("/plans/%s", planID), nil, nil, opts)
}
