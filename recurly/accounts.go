package recurly

import (
	"context"
	"net/http"
	"time"
)

// AccountsService handles /accounts.
type AccountsService service

// Account is a customer account.
type Account struct {
	ID                       string            `json:"id"`
	Object                   string            `json:"object"`
	Code                     string            `json:"code"`
	State                    string            `json:"state"`
	HostedLoginToken         string            `json:"hosted_login_token"`
	ShippingAddresses        []ShippingAddress `json:"shipping_addresses"`
	HasLiveSubscription      bool              `json:"has_live_subscription"`
	HasActiveSubscription    bool              `json:"has_active_subscription"`
	HasFutureSubscription    bool              `json:"has_future_subscription"`
	HasCanceledSubscription  bool              `json:"has_canceled_subscription"`
	HasPausedSubscription    bool              `json:"has_paused_subscription"`
	HasPastDueInvoice        bool              `json:"has_past_due_invoice"`
	Username                 string            `json:"username"`
	Email                    string            `json:"email"`
	OverrideBusinessEntityID string            `json:"override_business_entity_id,omitempty"`
	PreferredLocale          string            `json:"preferred_locale"`
	PreferredTimeZone        string            `json:"preferred_time_zone"`
	CcEmails                 string            `json:"cc_emails"`
	FirstName                string            `json:"first_name"`
	LastName                 string            `json:"last_name"`
	Company                  string            `json:"company"`
	VatNumber                string            `json:"vat_number"`
	TaxExempt                bool              `json:"tax_exempt"`
	ExemptionCertificate     string            `json:"exemption_certificate"`
	ParentAccountID          string            `json:"parent_account_id"`
	BillTo                   string            `json:"bill_to"`
	DunningCampaignID        string            `json:"dunning_campaign_id"`
	InvoiceTemplateID        string            `json:"invoice_template_id"`
	Address                  *Address          `json:"address"`
	BillingInfo              *BillingInfo      `json:"billing_info"`
	CustomFields             []CustomField     `json:"custom_fields"`
	ExternalAccounts         []ExternalAccount `json:"external_accounts"`
	CreatedAt                *time.Time        `json:"created_at"`
	UpdatedAt                *time.Time        `json:"updated_at"`
	DeletedAt                *time.Time        `json:"deleted_at"`
}

// AccountCreate is the body of POST /accounts.
type AccountCreate struct {
	Code                     string                    `json:"code" validate:"required,max=50"`
	Acquisition              *AccountAcquisitionUpdate `json:"acquisition,omitempty"`
	ShippingAddresses        []ShippingAddressCreate   `json:"shipping_addresses,omitempty" validate:"omitempty,dive"`
	Username                 string                    `json:"username,omitempty"`
	Email                    string                    `json:"email,omitempty" validate:"omitempty,email"`
	PreferredLocale          string                    `json:"preferred_locale,omitempty"`
	PreferredTimeZone        string                    `json:"preferred_time_zone,omitempty"`
	CcEmails                 string                    `json:"cc_emails,omitempty"`
	FirstName                string                    `json:"first_name,omitempty" validate:"omitempty,max=255"`
	LastName                 string                    `json:"last_name,omitempty" validate:"omitempty,max=255"`
	Company                  string                    `json:"company,omitempty"`
	VatNumber                string                    `json:"vat_number,omitempty"`
	TaxExempt                *bool                     `json:"tax_exempt,omitempty"`
	ExemptionCertificate     string                    `json:"exemption_certificate,omitempty"`
	ParentAccountCode        string                    `json:"parent_account_code,omitempty"`
	ParentAccountID          string                    `json:"parent_account_id,omitempty"`
	BillTo                   string                    `json:"bill_to,omitempty" validate:"omitempty,oneof=parent self"`
	TransactionType          string                    `json:"transaction_type,omitempty" validate:"omitempty,oneof=moto"`
	DunningCampaignID        string                    `json:"dunning_campaign_id,omitempty"`
	InvoiceTemplateID        string                    `json:"invoice_template_id,omitempty"`
	OverrideBusinessEntityID string                    `json:"override_business_entity_id,omitempty"`
	Address                  *Address                  `json:"address,omitempty"`
	BillingInfo              *BillingInfoCreate        `json:"billing_info,omitempty"`
	CustomFields             []CustomField             `json:"custom_fields,omitempty" validate:"omitempty,dive"`
}

// AccountUpdate is the body of PUT /accounts/{id}.
type AccountUpdate struct {
	Username                 string             `json:"username,omitempty"`
	Email                    string             `json:"email,omitempty" validate:"omitempty,email"`
	PreferredLocale          string             `json:"preferred_locale,omitempty"`
	PreferredTimeZone        string             `json:"preferred_time_zone,omitempty"`
	CcEmails                 string             `json:"cc_emails,omitempty"`
	FirstName                string             `json:"first_name,omitempty" validate:"omitempty,max=255"`
	LastName                 string             `json:"last_name,omitempty" validate:"omitempty,max=255"`
	Company                  string             `json:"company,omitempty"`
	VatNumber                string             `json:"vat_number,omitempty"`
	TaxExempt                *bool              `json:"tax_exempt,omitempty"`
	ExemptionCertificate     string             `json:"exemption_certificate,omitempty"`
	ParentAccountCode        string             `json:"parent_account_code,omitempty"`
	ParentAccountID          string             `json:"parent_account_id,omitempty"`
	BillTo                   string             `json:"bill_to,omitempty" validate:"omitempty,oneof=parent self"`
	DunningCampaignID        string             `json:"dunning_campaign_id,omitempty"`
	InvoiceTemplateID        string             `json:"invoice_template_id,omitempty"`
	OverrideBusinessEntityID string             `json:"override_business_entity_id,omitempty"`
	Address                  *Address           `json:"address,omitempty"`
	BillingInfo              *BillingInfoCreate `json:"billing_info,omitempty"`
	CustomFields             []CustomField      `json:"custom_fields,omitempty" validate:"omitempty,dive"`
}

// AccountBalance is the account's outstanding balance per currency.
type AccountBalance struct {
	Object   string                 `json:"object"`
	Account  AccountMini            `json:"account"`
	PastDue  bool                   `json:"past_due"`
	Balances []AccountBalanceAmount `json:"balances"`
}

// AccountBalanceAmount is the balance in one currency.
type AccountBalanceAmount struct {
	Currency              string  `json:"currency"`
	Amount                float64 `json:"amount"`
	ProcessingPrepayment  float64 `json:"processing_prepayment_amount"`
	AvailableCreditAmount float64 `json:"available_credit_amount"`
}

// List returns a page of the site's accounts.
func (s *AccountsService) List(ctx context.Context, params *AccountListParams, opts ...RequestOption) (*List[Account], error) {
	return call[List[Account]](ctx, (*service)(s), http.MethodGet, newRoute("/accounts"), params, nil, opts)
}

// Create creates an account.
func (s *AccountsService) Create(ctx context.Context, body *AccountCreate, opts ...RequestOption) (*Account, error) {
	return call[Account](ctx, (*service)(s), http.MethodPost, newRoute("/accounts"), nil, body, opts)
}

// Get fetches an account by ID or Code(code).
func (s *AccountsService) Get(ctx context.Context, accountID string, opts ...RequestOption) (*Account, error) {
	return call[Account](ctx, (*service)(s), http.MethodGet, newRoute("/accounts/%s", accountID), nil, nil, opts)
}

// Update modifies an account.
func (s *AccountsService) Update(ctx context.Context, accountID string, body *AccountUpdate, opts ...RequestOption) (*Account, error) {
	return call[Account](ctx, (*service)(s), http.MethodPut, newRoute("/accounts/%s", accountID), nil, body, opts)
}

// Deactivate closes an account. Active subscriptions are canceled and
// billing information removed by the API.
func (s *AccountsService) Deactivate(ctx context.Context, accountID string, opts ...RequestOption) (*Account, error) {
	return call[Account](ctx, (*service)(s), http.MethodDelete, newRoute("/accounts/%s", accountID), nil, nil, opts)
}

// Reactivate reopens a closed account.
func (s *AccountsService) Reactivate(ctx context.Context, accountID string, opts ...RequestOption) (*Account, error) {
	return call[Account](ctx, (*service)(s), http.MethodPut, newRoute("/accounts/%s/reactivate", accountID), nil, nil, opts)
}

// GetBalance fetches the account balance.
func (s *AccountsService) GetBalance(ctx context.Context, accountID string, opts ...RequestOption) (*AccountBalance, error) {
	return call[AccountBalance](ctx, (*service)(s), http.MethodGet, newRoute("/accounts/%s/balance", accountID), nil, nil, opts)
}

// ListChildAccounts lists accounts whose parent is accountID.
func (s *AccountsService) ListChildAccounts(ctx context.Context, accountID string, params *AccountListParams, opts ...RequestOption) (*List[Account], error) {
	return call[List[Account]](ctx, (*service)(s), http.MethodGet, newRoute("/accounts/%s/accounts", accountID), params, nil, opts)
}
