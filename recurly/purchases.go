package recurly

import (
	"context"
	"net/http"
)

// PurchasesService handles /purchases.
type PurchasesService service

// PurchaseCreate is the body of every /purchases call. It can create an
// account, subscriptions and one-time charges in a single invoice.
type PurchaseCreate struct {
	Currency               string                 `json:"currency" validate:"required,len=3"`
	Account                *AccountCreate         `json:"account" validate:"required"`
	BillingInfoID          string                 `json:"billing_info_id,omitempty"`
	BusinessEntityID       string                 `json:"business_entity_id,omitempty"`
	CollectionMethod       string                 `json:"collection_method,omitempty" validate:"omitempty,oneof=automatic manual"`
	PONumber               string                 `json:"po_number,omitempty" validate:"omitempty,max=50"`
	NetTerms               *int                   `json:"net_terms,omitempty" validate:"omitempty,min=0,max=999"`
	NetTermsType           string                 `json:"net_terms_type,omitempty" validate:"omitempty,oneof=net eom"`
	TermsAndConditions     string                 `json:"terms_and_conditions,omitempty"`
	CustomerNotes          string                 `json:"customer_notes,omitempty"`
	VatReverseChargeNotes  string                 `json:"vat_reverse_charge_notes,omitempty"`
	CreditCustomerNotes    string                 `json:"credit_customer_notes,omitempty"`
	GatewayCode            string                 `json:"gateway_code,omitempty"`
	Shipping               *PurchaseShipping      `json:"shipping,omitempty"`
	LineItems              []LineItemCreate       `json:"line_items,omitempty" validate:"omitempty,dive"`
	Subscriptions          []PurchaseSubscription `json:"subscriptions,omitempty" validate:"omitempty,dive"`
	CouponCodes            []string               `json:"coupon_codes,omitempty"`
	GiftCardRedemptionCode string                 `json:"gift_card_redemption_code,omitempty"`
	TransactionType        string                 `json:"transaction_type,omitempty" validate:"omitempty,oneof=moto"`
}

// PurchaseShipping sets the shipping address and method of a purchase.
type PurchaseShipping struct {
	AddressID  string                 `json:"address_id,omitempty"`
	Address    *ShippingAddressCreate `json:"address,omitempty"`
	MethodID   string                 `json:"method_id,omitempty"`
	MethodCode string                 `json:"method_code,omitempty"`
	Amount     float64                `json:"amount,omitempty" validate:"omitempty,min=0"`
}

// PurchaseSubscription is one subscription created by a purchase.
type PurchaseSubscription struct {
	PlanCode             string                     `json:"plan_code,omitempty" validate:"required_without=PlanID"`
	PlanID               string                     `json:"plan_id,omitempty"`
	UnitAmount           *float64                   `json:"unit_amount,omitempty" validate:"omitempty,min=0"`
	Quantity             int                        `json:"quantity,omitempty" validate:"omitempty,min=0"`
	AddOns               []SubscriptionAddOnCreate  `json:"add_ons,omitempty" validate:"omitempty,dive"`
	CustomFields         []CustomField              `json:"custom_fields,omitempty" validate:"omitempty,dive"`
	RampIntervals        []SubscriptionRampInterval `json:"ramp_intervals,omitempty" validate:"omitempty,dive"`
	TotalBillingCycles   int                        `json:"total_billing_cycles,omitempty" validate:"omitempty,min=1"`
	RenewalBillingCycles int                        `json:"renewal_billing_cycles,omitempty" validate:"omitempty,min=1"`
	AutoRenew            *bool                      `json:"auto_renew,omitempty"`
	RevenueScheduleType  string                     `json:"revenue_schedule_type,omitempty" validate:"omitempty,oneof=at_range_end at_range_start evenly never"`
}

// Create creates the invoice for a purchase and collects payment.
func (s *PurchasesService) Create(ctx context.Context, body *PurchaseCreate, opts ...RequestOption) (*InvoiceCollection, error) {
	return call[InvoiceCollection](ctx, (*service)(s), http.MethodPost, newRoute("/purchases"), nil, body, opts)
}

// Preview returns the invoices a purchase would produce.
func (s *PurchasesService) Preview(ctx context.Context, body *PurchaseCreate, opts ...RequestOption) (*InvoiceCollection, error) {
	return call[InvoiceCollection](ctx, (*service)(s), http.MethodPost, newRoute("/purchases/preview"), nil, body, opts)
}

// CreatePending creates a purchase paid later through a redirect flow.
func (s *PurchasesService) CreatePending(ctx context.Context, body *PurchaseCreate, opts ...RequestOption) (*InvoiceCollection, error) {
	return call[InvoiceCollection](ctx, (*service)(s), http.MethodPost, newRoute("/purchases/pending"), nil, body, opts)
}

// Authorize authorizes payment for a purchase without capturing it.
func (s *PurchasesService) Authorize(ctx context.Context, body *PurchaseCreate, opts ...RequestOption) (*InvoiceCollection, error) {
	return call[InvoiceCollection](ctx, (*service)(s), http.MethodPost, newRoute("/purchases/authorize"), nil, body, opts)
}

// Capture captures an authorized purchase.
func (s *PurchasesService) Capture(ctx context.Context, transactionID string, opts ...RequestOption) (*InvoiceCollection, error) {
	return call[InvoiceCollection](ctx, (*service)(s), http.MethodPost, newRoute("/purchases/%s/capture", transactionID), nil, nil, opts)
}

// Cancel voids an authorized purchase.
func (s *PurchasesService) Cancel(ctx context.Context, transactionID string, opts ...RequestOption) (*InvoiceCollection, error) {
	return call[InvoiceCollection](ctx, (*service)(s), http.MethodPost, newRoute("/purchases/%s/cancel/", transactionID), nil, nil, opts)
}
