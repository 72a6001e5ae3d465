package recurly

import (
	"context"
	"net/http"
	"time"
)

// CouponsService handles /coupons.
type CouponsService service

// UniqueCouponCodesService handles /unique_coupon_codes.
type UniqueCouponCodesService service

// Coupon is a discount definition.
type Coupon struct {
	ID                       string            `json:"id"`
	Object                   string            `json:"object"`
	Code                     string            `json:"code"`
	Name                     string            `json:"name"`
	State                    string            `json:"state"`
	MaxRedemptions           int               `json:"max_redemptions"`
	MaxRedemptionsPerAccount int               `json:"max_redemptions_per_account"`
	UniqueCouponCodesCount   int               `json:"unique_coupon_codes_count"`
	UniqueCodeTemplate       string            `json:"unique_code_template"`
	UniqueCouponCode         *UniqueCouponCode `json:"unique_coupon_code"`
	Duration                 string            `json:"duration"`
	TemporalAmount           int               `json:"temporal_amount"`
	TemporalUnit             string            `json:"temporal_unit"`
	FreeTrialUnit            string            `json:"free_trial_unit"`
	FreeTrialAmount          int               `json:"free_trial_amount"`
	AppliesToAllPlans        bool              `json:"applies_to_all_plans"`
	AppliesToAllItems        bool              `json:"applies_to_all_items"`
	AppliesToNonPlanCharges  bool              `json:"applies_to_non_plan_charges"`
	Plans                    []PlanMini        `json:"plans"`
	Items                    []ItemMini        `json:"items"`
	RedemptionResource       string            `json:"redemption_resource"`
	Discount                 *CouponDiscount   `json:"discount"`
	CouponType               string            `json:"coupon_type"`
	HostedPageDescription    string            `json:"hosted_page_description"`
	InvoiceDescription       string            `json:"invoice_description"`
	RedeemBy                 *time.Time        `json:"redeem_by"`
	CreatedAt                *time.Time        `json:"created_at"`
	UpdatedAt                *time.Time        `json:"updated_at"`
	ExpiredAt                *time.Time        `json:"expired_at"`
}

// CouponDiscount is the discount a coupon grants.
type CouponDiscount struct {
	Type       string               `json:"type"`
	Percent    int                  `json:"percent"`
	Currencies []Pricing            `json:"currencies"`
	Trial      *CouponDiscountTrial `json:"trial"`
}

// CouponDiscountTrial is the free trial a coupon grants.
type CouponDiscountTrial struct {
	Unit   string `json:"unit"`
	Length int    `json:"length"`
}

// CouponPricing is a fixed discount amount in one currency.
type CouponPricing struct {
	Currency string  `json:"currency" validate:"required,len=3"`
	Discount float64 `json:"discount"`
}

// CouponCreate is the body of POST /coupons.
type CouponCreate struct {
	Code                     string          `json:"code" validate:"required,max=50"`
	Name                     string          `json:"name" validate:"required,max=255"`
	DiscountType             string          `json:"discount_type" validate:"required,oneof=fixed free_trial percent"`
	DiscountPercent          int             `json:"discount_percent,omitempty" validate:"omitempty,min=1,max=100"`
	Currencies               []CouponPricing `json:"currencies,omitempty" validate:"omitempty,dive"`
	FreeTrialUnit            string          `json:"free_trial_unit,omitempty" validate:"omitempty,oneof=day month week"`
	FreeTrialAmount          int             `json:"free_trial_amount,omitempty" validate:"omitempty,min=1"`
	Duration                 string          `json:"duration,omitempty" validate:"omitempty,oneof=forever single_use temporal"`
	TemporalAmount           int             `json:"temporal_amount,omitempty"`
	TemporalUnit             string          `json:"temporal_unit,omitempty" validate:"omitempty,oneof=day month week year"`
	CouponType               string          `json:"coupon_type,omitempty" validate:"omitempty,oneof=bulk single_code"`
	UniqueCodeTemplate       string          `json:"unique_code_template,omitempty"`
	MaxRedemptions           int             `json:"max_redemptions,omitempty" validate:"omitempty,min=1"`
	MaxRedemptionsPerAccount int             `json:"max_redemptions_per_account,omitempty" validate:"omitempty,min=1"`
	AppliesToAllPlans        *bool           `json:"applies_to_all_plans,omitempty"`
	AppliesToAllItems        *bool           `json:"applies_to_all_items,omitempty"`
	AppliesToNonPlanCharges  *bool           `json:"applies_to_non_plan_charges,omitempty"`
	PlanCodes                []string        `json:"plan_codes,omitempty"`
	ItemCodes                []string        `json:"item_codes,omitempty"`
	RedemptionResource       string          `json:"redemption_resource,omitempty" validate:"omitempty,oneof=account subscription"`
	HostedDescription        string          `json:"hosted_description,omitempty"`
	InvoiceDescription       string          `json:"invoice_description,omitempty"`
	RedeemByDate             string          `json:"redeem_by_date,omitempty"`
}

// CouponUpdate is the body of PUT /coupons/{id}.
type CouponUpdate struct {
	Name                     string `json:"name,omitempty" validate:"omitempty,max=255"`
	MaxRedemptions           int    `json:"max_redemptions,omitempty" validate:"omitempty,min=1"`
	MaxRedemptionsPerAccount int    `json:"max_redemptions_per_account,omitempty" validate:"omitempty,min=1"`
	HostedDescription        string `json:"hosted_description,omitempty"`
	InvoiceDescription       string `json:"invoice_description,omitempty"`
	RedeemByDate             string `json:"redeem_by_date,omitempty"`
}

// CouponBulkCreate is the body of POST /coupons/{id}/generate.
type CouponBulkCreate struct {
	NumberOfUniqueCodes int `json:"number_of_unique_codes" validate:"required,min=1,max=200"`
}

// UniqueCouponCode is one code of a bulk coupon.
type UniqueCouponCode struct {
	ID             string     `json:"id"`
	Object         string     `json:"object"`
	Code           string     `json:"code"`
	State          string     `json:"state"`
	BulkCouponID   string     `json:"bulk_coupon_id"`
	BulkCouponCode string     `json:"bulk_coupon_code"`
	CreatedAt      *time.Time `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at"`
	RedeemedAt     *time.Time `json:"redeemed_at"`
	ExpiredAt      *time.Time `json:"expired_at"`
}

// UniqueCouponCodeParams are the results of a generate call.
type UniqueCouponCodeParams struct {
	Limit     int        `json:"limit"`
	Order     string     `json:"order"`
	Sort      string     `json:"sort"`
	BeginTime *time.Time `json:"begin_time"`
}

// UniqueCouponCodeGenerated is returned by GenerateUniqueCodes.
type UniqueCouponCodeGenerated struct {
	Object                  string                  `json:"object"`
	UniqueCouponCodesParams *UniqueCouponCodeParams `json:"unique_coupon_codes_params"`
}

// List returns a page of coupons.
func (s *CouponsService) List(ctx context.Context, params *ListParams, opts ...RequestOption) (*List[Coupon], error) {
	return call[List[Coupon]](ctx, (*service)(s), http.MethodGet, newRoute("/coupons"), params, nil, opts)
}

// Create creates a coupon.
func (s *CouponsService) Create(ctx context.Context, body *CouponCreate, opts ...RequestOption) (*Coupon, error) {
	return call[Coupon](ctx, (*service)(s), http.MethodPost, newRoute("/coupons"), nil, body, opts)
}

// Get fetches a coupon by ID or Code(code).
func (s *CouponsService) Get(ctx context.Context, couponID string, opts ...RequestOption) (*Coupon, error) {
	return call[Coupon](ctx, (*service)(s), http.MethodGet, newRoute("/coupons/%s", couponID), nil, nil, opts)
}

// Update modifies a coupon.
func (s *CouponsService) Update(ctx context.Context, couponID string, body *CouponUpdate, opts ...RequestOption) (*Coupon, error) {
	return call[Coupon](ctx, (*service)(s), http.MethodPut, newRoute("/coupons/%s", couponID), nil, body, opts)
}

// Deactivate expires a coupon so it can no longer be redeemed.
func (s *CouponsService) Deactivate(ctx context.Context, couponID string, opts ...RequestOption) (*Coupon, error) {
	return call[Coupon](ctx, (*service)(s), http.MethodDelete, newRoute("/coupons/%s", couponID), nil, nil, opts)
}

// Restore reactivates an expired coupon. body may be nil.
func (s *CouponsService) Restore(ctx context.Context, couponID string, body *CouponUpdate, opts ...RequestOption) (*Coupon, error) {
	var payload any
	if body != nil {
		payload = body
	}
	return call[Coupon](ctx, (*service)(s), http.MethodPut, newRoute("/coupons/%s/restore", couponID), nil, payload, opts)
}

// ListUniqueCodes returns the codes generated for a bulk coupon.
func (s *CouponsService) ListUniqueCodes(ctx context.Context, couponID string, params *StateParams, opts ...RequestOption) (*List[UniqueCouponCode], error) {
	return call[List[UniqueCouponCode]](ctx, (*service)(s), http.MethodGet, newRoute("/coupons/%s/unique_coupon_codes", couponID), params, nil, opts)
}

// GenerateUniqueCodes creates new codes for a bulk coupon.
func (s *CouponsService) GenerateUniqueCodes(ctx context.Context, couponID string, body *CouponBulkCreate, opts ...RequestOption) (*UniqueCouponCodeGenerated, error) {
	return call[UniqueCouponCodeGenerated](ctx, (*service)(s), http.MethodPost, newRoute("/coupons/%s/generate", couponID), nil, body, opts)
}

// Get fetches a unique code by ID or Code(code).
func (s *UniqueCouponCodesService) Get(ctx context.Context, codeID string, opts ...RequestOption) (*UniqueCouponCode, error) {
	return call[UniqueCouponCode](ctx, (*service)(s), http.MethodGet, newRoute("/unique_coupon_codes/%s", codeID), nil, nil, opts)
}

// Deactivate expires a unique code.
func (s *UniqueCouponCodesService) Deactivate(ctx context.Context, codeID string, opts ...RequestOption) (*UniqueCouponCode, error) {
	return call[UniqueCouponCode](ctx, (*service)(s), http.MethodDelete, newRoute("/unique_coupon_codes/%s", codeID), nil, nil, opts)
}

// Reactivate restores an expired unique code.
func (s *UniqueCouponCodesService) Reactivate(ctx context.Context, codeID string, opts ...RequestOption) (*UniqueCouponCode, error) {
	return call[UniqueCouponCode](ctx, (*service)(s), http.MethodPut, newRoute("/unique_coupon_codes/%s/restore", codeID), nil, nil, opts)
}
