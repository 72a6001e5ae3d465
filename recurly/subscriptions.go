package recurly

import (
	"context"
	"net/http"
	"time"
)

// SubscriptionsService handles /subscriptions.
type SubscriptionsService service

// Subscription is an account's recurring purchase of a plan.
type Subscription struct {
	ID                      string                     `json:"id"`
	Object                  string                     `json:"object"`
	UUID                    string                     `json:"uuid"`
	Account                 *AccountMini               `json:"account"`
	Plan                    *PlanMini                  `json:"plan"`
	State                   string                     `json:"state"`
	ShippingAddress         *ShippingAddress           `json:"shipping_address"`
	PendingChange           *SubscriptionChange        `json:"pending_change"`
	CurrentPeriodStartedAt  *time.Time                 `json:"current_period_started_at"`
	CurrentPeriodEndsAt     *time.Time                 `json:"current_period_ends_at"`
	CurrentTermStartedAt    *time.Time                 `json:"current_term_started_at"`
	CurrentTermEndsAt       *time.Time                 `json:"current_term_ends_at"`
	TrialStartedAt          *time.Time                 `json:"trial_started_at"`
	TrialEndsAt             *time.Time                 `json:"trial_ends_at"`
	RemainingBillingCycles  int                        `json:"remaining_billing_cycles"`
	TotalBillingCycles      int                        `json:"total_billing_cycles"`
	RenewalBillingCycles    int                        `json:"renewal_billing_cycles"`
	AutoRenew               bool                       `json:"auto_renew"`
	RampIntervals           []SubscriptionRampInterval `json:"ramp_intervals"`
	PausedAt                *time.Time                 `json:"paused_at"`
	RemainingPauseCycles    int                        `json:"remaining_pause_cycles"`
	Currency                string                     `json:"currency"`
	RevenueScheduleType     string                     `json:"revenue_schedule_type"`
	UnitAmount              float64                    `json:"unit_amount"`
	TaxInclusive            bool                       `json:"tax_inclusive"`
	Quantity                int                        `json:"quantity"`
	AddOns                  []SubscriptionAddOn        `json:"add_ons"`
	AddOnsTotal             float64                    `json:"add_ons_total"`
	Subtotal                float64                    `json:"subtotal"`
	Tax                     float64                    `json:"tax"`
	TaxInfo                 *TaxInfo                   `json:"tax_info"`
	Total                   float64                    `json:"total"`
	CollectionMethod        string                     `json:"collection_method"`
	PONumber                string                     `json:"po_number"`
	NetTerms                int                        `json:"net_terms"`
	NetTermsType            string                     `json:"net_terms_type"`
	TermsAndConditions      string                     `json:"terms_and_conditions"`
	CustomerNotes           string                     `json:"customer_notes"`
	ExpirationReason        string                     `json:"expiration_reason"`
	CustomFields            []CustomField              `json:"custom_fields"`
	BillingInfoID           string                     `json:"billing_info_id"`
	ActiveInvoiceID         string                     `json:"active_invoice_id"`
	BusinessEntityID        string                     `json:"business_entity_id"`
	GatewayCode             string                     `json:"gateway_code"`
	CreatedAt               *time.Time                 `json:"created_at"`
	UpdatedAt               *time.Time                 `json:"updated_at"`
	ActivatedAt             *time.Time                 `json:"activated_at"`
	CanceledAt              *time.Time                 `json:"canceled_at"`
	ExpiresAt               *time.Time                 `json:"expires_at"`
	BankAccountAuthorizedAt *time.Time                 `json:"bank_account_authorized_at"`
}

// SubscriptionAddOn is an add-on attached to a subscription.
type SubscriptionAddOn struct {
	ID                  string     `json:"id"`
	Object              string     `json:"object"`
	SubscriptionID      string     `json:"subscription_id"`
	AddOn               *AddOn     `json:"add_on"`
	AddOnSource         string     `json:"add_on_source"`
	Quantity            int        `json:"quantity"`
	UnitAmount          float64    `json:"unit_amount"`
	RevenueScheduleType string     `json:"revenue_schedule_type"`
	TierType            string     `json:"tier_type"`
	UsagePercentage     float64    `json:"usage_percentage"`
	Tiers               []Tier     `json:"tiers"`
	CreatedAt           *time.Time `json:"created_at"`
	UpdatedAt           *time.Time `json:"updated_at"`
	ExpiredAt           *time.Time `json:"expired_at"`
}

// SubscriptionAddOnCreate attaches an add-on when creating or changing a
// subscription.
type SubscriptionAddOnCreate struct {
	Code                string  `json:"code" validate:"required,max=50"`
	AddOnSource         string  `json:"add_on_source,omitempty" validate:"omitempty,oneof=plan_add_on item"`
	Quantity            int     `json:"quantity,omitempty" validate:"omitempty,min=0"`
	UnitAmount          float64 `json:"unit_amount,omitempty" validate:"omitempty,min=0"`
	RevenueScheduleType string  `json:"revenue_schedule_type,omitempty" validate:"omitempty,oneof=at_range_end at_range_start evenly never"`
	UsagePercentage     float64 `json:"usage_percentage,omitempty" validate:"omitempty,min=0,max=100"`
	Tiers               []Tier  `json:"tiers,omitempty" validate:"omitempty,dive"`
}

// SubscriptionRampInterval is a price step on a ramp subscription.
type SubscriptionRampInterval struct {
	StartingBillingCycle   int     `json:"starting_billing_cycle" validate:"min=1"`
	RemainingBillingCycles int     `json:"remaining_billing_cycles,omitempty"`
	UnitAmount             float64 `json:"unit_amount"`
}

// SubscriptionCreate is the body of POST /subscriptions.
type SubscriptionCreate struct {
	PlanCode             string                     `json:"plan_code,omitempty" validate:"required_without=PlanID"`
	PlanID               string                     `json:"plan_id,omitempty"`
	Account              *AccountCreate             `json:"account" validate:"required"`
	Currency             string                     `json:"currency" validate:"required,len=3"`
	BillingInfoID        string                     `json:"billing_info_id,omitempty"`
	BusinessEntityID     string                     `json:"business_entity_id,omitempty"`
	ShippingAddressID    string                     `json:"shipping_address_id,omitempty"`
	UnitAmount           *float64                   `json:"unit_amount,omitempty" validate:"omitempty,min=0"`
	TaxInclusive         *bool                      `json:"tax_inclusive,omitempty"`
	Quantity             int                        `json:"quantity,omitempty" validate:"omitempty,min=0"`
	AddOns               []SubscriptionAddOnCreate  `json:"add_ons,omitempty" validate:"omitempty,dive"`
	CouponCodes          []string                   `json:"coupon_codes,omitempty"`
	CustomFields         []CustomField              `json:"custom_fields,omitempty" validate:"omitempty,dive"`
	TrialEndsAt          *time.Time                 `json:"trial_ends_at,omitempty"`
	StartsAt             *time.Time                 `json:"starts_at,omitempty"`
	NextBillDate         *time.Time                 `json:"next_bill_date,omitempty"`
	TotalBillingCycles   int                        `json:"total_billing_cycles,omitempty" validate:"omitempty,min=1"`
	RenewalBillingCycles int                        `json:"renewal_billing_cycles,omitempty" validate:"omitempty,min=1"`
	AutoRenew            *bool                      `json:"auto_renew,omitempty"`
	RampIntervals        []SubscriptionRampInterval `json:"ramp_intervals,omitempty" validate:"omitempty,dive"`
	RevenueScheduleType  string                     `json:"revenue_schedule_type,omitempty" validate:"omitempty,oneof=at_range_end at_range_start evenly never"`
	TermsAndConditions   string                     `json:"terms_and_conditions,omitempty"`
	CustomerNotes        string                     `json:"customer_notes,omitempty"`
	CreditCustomerNotes  string                     `json:"credit_customer_notes,omitempty"`
	PONumber             string                     `json:"po_number,omitempty" validate:"omitempty,max=50"`
	CollectionMethod     string                     `json:"collection_method,omitempty" validate:"omitempty,oneof=automatic manual"`
	NetTerms             *int                       `json:"net_terms,omitempty" validate:"omitempty,min=0,max=999"`
	NetTermsType         string                     `json:"net_terms_type,omitempty" validate:"omitempty,oneof=net eom"`
	GatewayCode          string                     `json:"gateway_code,omitempty"`
	TransactionType      string                     `json:"transaction_type,omitempty" validate:"omitempty,oneof=moto"`
}

// SubscriptionUpdate is the body of PUT /subscriptions/{id}.
type SubscriptionUpdate struct {
	NextBillDate           *time.Time    `json:"next_bill_date,omitempty"`
	RemainingBillingCycles *int          `json:"remaining_billing_cycles,omitempty"`
	RenewalBillingCycles   int           `json:"renewal_billing_cycles,omitempty" validate:"omitempty,min=1"`
	AutoRenew              *bool         `json:"auto_renew,omitempty"`
	RevenueScheduleType    string        `json:"revenue_schedule_type,omitempty" validate:"omitempty,oneof=at_range_end at_range_start evenly never"`
	TermsAndConditions     string        `json:"terms_and_conditions,omitempty"`
	CustomerNotes          string        `json:"customer_notes,omitempty"`
	PONumber               string        `json:"po_number,omitempty" validate:"omitempty,max=50"`
	CollectionMethod       string        `json:"collection_method,omitempty" validate:"omitempty,oneof=automatic manual"`
	NetTerms               *int          `json:"net_terms,omitempty" validate:"omitempty,min=0,max=999"`
	NetTermsType           string        `json:"net_terms_type,omitempty" validate:"omitempty,oneof=net eom"`
	TaxInclusive           *bool         `json:"tax_inclusive,omitempty"`
	GatewayCode            string        `json:"gateway_code,omitempty"`
	BillingInfoID          string        `json:"billing_info_id,omitempty"`
	ShippingAddressID      string        `json:"shipping_address_id,omitempty"`
	CustomFields           []CustomField `json:"custom_fields,omitempty" validate:"omitempty,dive"`
}

// SubscriptionCancel is the optional body of PUT /subscriptions/{id}/cancel.
type SubscriptionCancel struct {
	Timeframe string `json:"timeframe,omitempty" validate:"omitempty,oneof=bill_date term_end"`
}

// SubscriptionPause is the body of PUT /subscriptions/{id}/pause.
type SubscriptionPause struct {
	RemainingPauseCycles int `json:"remaining_pause_cycles" validate:"min=0"`
}

// List returns the site's subscriptions.
func (s *SubscriptionsService) List(ctx context.Context, params *SubscriptionListParams, opts ...RequestOption) (*List[Subscription], error) {
	return call[List[Subscription]](ctx, (*service)(s), http.MethodGet, newRoute("/subscriptions"), params, nil, opts)
}

// ListForAccount returns an account's subscriptions.
func (s *SubscriptionsService) ListForAccount(ctx context.Context, accountID string, params *SubscriptionListParams, opts ...RequestOption) (*List[Subscription], error) {
	return call[List[Subscription]](ctx, (*service)(s), http.MethodGet, newRoute("/accounts/%s/subscriptions", accountID), params, nil, opts)
}

// Create creates a subscription, creating the account too if needed.
func (s *SubscriptionsService) Create(ctx context.Context, body *SubscriptionCreate, opts ...RequestOption) (*Subscription, error) {
	return call[Subscription](ctx, (*service)(s), http.MethodPost, newRoute("/subscriptions"), nil, body, opts)
}

// Get fetches a subscription by ID or "uuid-<uuid>".
func (s *SubscriptionsService) Get(ctx context.Context, subscriptionID string, opts ...RequestOption) (*Subscription, error) {
	return call[Subscription](ctx, (*service)(s), http.MethodGet, newRoute("/subscriptions/%s", subscriptionID), nil, nil, opts)
}

// Update modifies a subscription without changing its plan or price.
func (s *SubscriptionsService) Update(ctx context.Context, subscriptionID string, body *SubscriptionUpdate, opts ...RequestOption) (*Subscription, error) {
	return call[Subscription](ctx, (*service)(s), http.MethodPut, newRoute("/subscriptions/%s", subscriptionID), nil, body, opts)
}

// Terminate ends a subscription immediately. params may be nil.
func (s *SubscriptionsService) Terminate(ctx context.Context, subscriptionID string, params *TerminateParams, opts ...RequestOption) (*Subscription, error) {
	return call[Subscription](ctx, (*service)(s), http.MethodDelete, newRoute("/subscriptions/%s", subscriptionID), params, nil, opts)
}

// Cancel stops renewal at the end of the current term. body may be nil.
func (s *SubscriptionsService) Cancel(ctx context.Context, subscriptionID string, body *SubscriptionCancel, opts ...RequestOption) (*Subscription, error) {
	var payload any
	if body != nil {
		payload = body
	}
	return call[Subscription](ctx, (*service)(s), http.MethodPut, newRoute("/subscriptions/%s/cancel", subscriptionID), nil, payload, opts)
}

// Reactivate undoes a cancellation before the subscription expires.
func (s *SubscriptionsService) Reactivate(ctx context.Context, subscriptionID string, opts ...RequestOption) (*Subscription, error) {
	return call[Subscription](ctx, (*service)(s), http.MethodPut, newRoute("/subscriptions/%s/reactivate", subscriptionID), nil, nil, opts)
}

// Pause pauses renewal for a number of billing cycles.
func (s *SubscriptionsService) Pause(ctx context.Context, subscriptionID string, body *SubscriptionPause, opts ...RequestOption) (*Subscription, error) {
	return call[Subscription](ctx, (*service)(s), http.MethodPut, newRoute("/subscriptions/%s/pause", subscriptionID), nil, body, opts)
}

// Resume ends a pause immediately.
func (s *SubscriptionsService) Resume(ctx context.Context, subscriptionID string, opts ...RequestOption) (*Subscription, error) {
	return call[Subscription](ctx, (*service)(s), http.MethodPut, newRoute("/subscriptions/%s/resume", subscriptionID), nil, nil, opts)
}

// ConvertTrial ends a trial and starts billing now.
func (s *SubscriptionsService) ConvertTrial(ctx context.Context, subscriptionID string, opts ...RequestOption) (*Subscription, error) {
	return call[Subscription](ctx, (*service)(s), http.MethodPut, newRoute("/subscriptions/%s/convert_trial", subscriptionID), nil, nil, opts)
}

// PreviewRenewal shows the invoice the next renewal would produce.
func (s *SubscriptionsService) PreviewRenewal(ctx context.Context, subscriptionID string, opts ...RequestOption) (*InvoiceCollection, error) {
	return call[InvoiceCollection](ctx, (*service)(s), http.MethodGet, newRoute("/subscriptions/%s/preview_renewal", subscriptionID), nil, nil, opts)
}
