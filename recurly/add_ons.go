package recurly

import (
	"context"
	"net/http"
	"time"
)

// AddOnsService handles plan add-ons and the site-wide add-on index.
type AddOnsService service

// AddOn is an optional charge attached to a plan.
type AddOn struct {
	ID                          string     `json:"id"`
	Object                      string     `json:"object"`
	PlanID                      string     `json:"plan_id"`
	Code                        string     `json:"code"`
	State                       string     `json:"state"`
	Name                        string     `json:"name"`
	AddOnType                   string     `json:"add_on_type"`
	UsageType                   string     `json:"usage_type"`
	UsageCalculationType        string     `json:"usage_calculation_type"`
	UsagePercentage             float64    `json:"usage_percentage"`
	MeasuredUnitID              string     `json:"measured_unit_id"`
	AccountingCode              string     `json:"accounting_code"`
	RevenueScheduleType         string     `json:"revenue_schedule_type"`
	DisplayQuantityOnHostedPage bool       `json:"display_quantity_on_hosted_page"`
	DefaultQuantity             int        `json:"default_quantity"`
	Optional                    bool       `json:"optional"`
	TaxCode                     string     `json:"tax_code"`
	TierType                    string     `json:"tier_type"`
	UsageTimeframe              string     `json:"usage_timeframe"`
	Item                        *ItemMini  `json:"item"`
	Currencies                  []Pricing  `json:"currencies"`
	Tiers                       []Tier     `json:"tiers"`
	CreatedAt                   *time.Time `json:"created_at"`
	UpdatedAt                   *time.Time `json:"updated_at"`
	DeletedAt                   *time.Time `json:"deleted_at"`
}

// AddOnCreate is the body of POST /plans/{id}/add_ons.
type AddOnCreate struct {
	ItemCode             string    `json:"item_code,omitempty" validate:"omitempty,max=50"`
	ItemID               string    `json:"item_id,omitempty"`
	Code                 string    `json:"code,omitempty" validate:"omitempty,max=50"`
	Name                 string    `json:"name,omitempty" validate:"omitempty,max=255"`
	AddOnType            string    `json:"add_on_type,omitempty" validate:"omitempty,oneof=fixed usage"`
	UsageType            string    `json:"usage_type,omitempty" validate:"omitempty,oneof=price percentage"`
	UsageCalculationType string    `json:"usage_calculation_type,omitempty" validate:"omitempty,oneof=cumulative last_in_period"`
	UsagePercentage      float64   `json:"usage_percentage,omitempty" validate:"omitempty,min=0,max=100"`
	MeasuredUnitID       string    `json:"measured_unit_id,omitempty"`
	MeasuredUnitName     string    `json:"measured_unit_name,omitempty"`
	AccountingCode       string    `json:"accounting_code,omitempty"`
	RevenueScheduleType  string    `json:"revenue_schedule_type,omitempty" validate:"omitempty,oneof=at_range_end at_range_start evenly never"`
	DefaultQuantity      int       `json:"default_quantity,omitempty" validate:"omitempty,min=0"`
	Optional             *bool     `json:"optional,omitempty"`
	TaxCode              string    `json:"tax_code,omitempty"`
	TierType             string    `json:"tier_type,omitempty" validate:"omitempty,oneof=flat tiered stairstep volume"`
	UsageTimeframe       string    `json:"usage_timeframe,omitempty" validate:"omitempty,oneof=billing_period subscription_term"`
	Currencies           []Pricing `json:"currencies,omitempty" validate:"omitempty,dive"`
	Tiers                []Tier    `json:"tiers,omitempty" validate:"omitempty,dive"`
}

// AddOnUpdate is the body of PUT /plans/{id}/add_ons/{add_on_id}.
type AddOnUpdate struct {
	Code                string    `json:"code,omitempty" validate:"omitempty,max=50"`
	Name                string    `json:"name,omitempty" validate:"omitempty,max=255"`
	UsagePercentage     float64   `json:"usage_percentage,omitempty" validate:"omitempty,min=0,max=100"`
	MeasuredUnitID      string    `json:"measured_unit_id,omitempty"`
	AccountingCode      string    `json:"accounting_code,omitempty"`
	RevenueScheduleType string    `json:"revenue_schedule_type,omitempty" validate:"omitempty,oneof=at_range_end at_range_start evenly never"`
	DefaultQuantity     int       `json:"default_quantity,omitempty" validate:"omitempty,min=0"`
	Optional            *bool     `json:"optional,omitempty"`
	TaxCode             string    `json:"tax_code,omitempty"`
	Currencies          []Pricing `json:"currencies,omitempty" validate:"omitempty,dive"`
	Tiers               []Tier    `json:"tiers,omitempty" validate:"omitempty,dive"`
}

// ListForPlan returns a plan's add-ons.
func (s *AddOnsService) ListForPlan(ctx context.Context, planID string, params *PlanListParams, opts ...RequestOption) (*List[AddOn], error) {
	return call[List[AddOn]](ctx, (*service)(s), http.MethodGet, newRoute("/plans/%s/add_ons", planID), params, nil, opts)
}

// Create attaches a new add-on to a plan.
func (s *AddOnsService) Create(ctx context.Context, planID string, body *AddOnCreate, opts ...RequestOption) (*AddOn, error) {
	return call[AddOn](ctx, (*service)(s), http.MethodPost, newRoute("/plans/%s/add_ons", planID), nil, body, opts)
}

// Get fetches one add-on of a plan.
func (s *AddOnsService) Get(ctx context.Context, planID, addOnID string, opts ...RequestOption) (*AddOn, error) {
	return call[AddOn](ctx, (*service)(s), http.MethodGet, newRoute("/plans/%s/add_ons/%s", planID, addOnID), nil, nil, opts)
}

// Update modifies one add-on of a plan.
func (s *AddOnsService) Update(ctx context.Context, planID, addOnID string, body *AddOnUpdate, opts ...RequestOption) (*AddOn, error) {
	return call[AddOn](ctx, (*service)(s), http.MethodPut, newRoute("/plans/%s/add_ons/%s", planID, addOnID), nil, body, opts)
}

// Remove deletes an add-on from a plan.
func (s *AddOnsService) Remove(ctx context.Context, planID, addOnID string, opts ...RequestOption) (*AddOn, error) {
	return call[AddOn](ctx, (*service)(s), http.MethodDelete, newRoute("/plans/%s/add_ons/%s", planID, addOnID), nil, nil, opts)
}

// ListSiteAddOns returns add-ons across every plan on the site.
func (s *AddOnsService) ListSiteAddOns(ctx context.Context, params *PlanListParams, opts ...RequestOption) (*List[AddOn], error) {
	return call[List[AddOn]](ctx, (*service)(s), http.MethodGet, newRoute("/add_ons"), params, nil, opts)
}

// GetSiteAddOn fetches an add-on by its own ID.
func (s *AddOnsService) GetSiteAddOn(ctx context.Context, addOnID string, opts ...RequestOption) (*AddOn, error) {
	return call[AddOn](ctx, (*service)(s), http.MethodGet, newRoute("/add_ons/%s", addOnID), nil, nil, opts)
}
