package recurly

import (
	"context"
	"net/http"
	"time"
)

// BillingInfoService handles an account's primary billing info.
type BillingInfoService service

// BillingInfosService handles the account wallet (multiple billing infos).
type BillingInfosService service

// BillingInfo is a stored payment method.
type BillingInfo struct {
	ID                   string                `json:"id"`
	Object               string                `json:"object"`
	AccountID            string                `json:"account_id"`
	FirstName            string                `json:"first_name"`
	LastName             string                `json:"last_name"`
	Company              string                `json:"company"`
	Address              *Address              `json:"address"`
	VatNumber            string                `json:"vat_number"`
	Valid                bool                  `json:"valid"`
	PrimaryPaymentMethod bool                  `json:"primary_payment_method"`
	BackupPaymentMethod  bool                  `json:"backup_payment_method"`
	PaymentMethod        *PaymentMethod        `json:"payment_method"`
	Fraud                *FraudInfo            `json:"fraud"`
	CreatedAt            *time.Time            `json:"created_at"`
	UpdatedAt            *time.Time            `json:"updated_at"`
	UpdatedBy            *BillingInfoUpdatedBy `json:"updated_by"`
}

// PaymentMethod describes the instrument behind a billing info.
type PaymentMethod struct {
	Object             string `json:"object"`
	CardType           string `json:"card_type"`
	FirstSix           string `json:"first_six"`
	LastFour           string `json:"last_four"`
	LastTwo            string `json:"last_two"`
	ExpMonth           int    `json:"exp_month"`
	ExpYear            int    `json:"exp_year"`
	GatewayToken       string `json:"gateway_token"`
	CCBinCountry       string `json:"cc_bin_country"`
	GatewayCode        string `json:"gateway_code"`
	BillingAgreementID string `json:"billing_agreement_id"`
	NameOnAccount      string `json:"name_on_account"`
	AccountType        string `json:"account_type"`
	RoutingNumber      string `json:"routing_number"`
	RoutingNumberBank  string `json:"routing_number_bank"`
	Username           string `json:"username"`
}

// FraudInfo is the fraud screening result.
type FraudInfo struct {
	Score              int              `json:"score"`
	Decision           string           `json:"decision"`
	RiskRulesTriggered []map[string]any `json:"risk_rules_triggered"`
}

// BillingInfoUpdatedBy records where the last update came from.
type BillingInfoUpdatedBy struct {
	IP      string `json:"ip"`
	Country string `json:"country"`
}

// BillingInfoCreate is the body used to create or replace billing info.
// Either TokenID or the raw card/bank fields are supplied.
type BillingInfoCreate struct {
	TokenID                         string   `json:"token_id,omitempty"`
	FirstName                       string   `json:"first_name,omitempty" validate:"omitempty,max=50"`
	LastName                        string   `json:"last_name,omitempty" validate:"omitempty,max=50"`
	Company                         string   `json:"company,omitempty"`
	Address                         *Address `json:"address,omitempty"`
	Number                          string   `json:"number,omitempty"`
	Month                           string   `json:"month,omitempty"`
	Year                            string   `json:"year,omitempty"`
	CVV                             string   `json:"cvv,omitempty"`
	Currency                        string   `json:"currency,omitempty" validate:"omitempty,len=3"`
	VatNumber                       string   `json:"vat_number,omitempty"`
	IPAddress                       string   `json:"ip_address,omitempty" validate:"omitempty,ip"`
	GatewayToken                    string   `json:"gateway_token,omitempty"`
	GatewayCode                     string   `json:"gateway_code,omitempty"`
	AmazonBillingAgreementID        string   `json:"amazon_billing_agreement_id,omitempty"`
	PaypalBillingAgreementID        string   `json:"paypal_billing_agreement_id,omitempty"`
	FraudSessionID                  string   `json:"fraud_session_id,omitempty"`
	TransactionType                 string   `json:"transaction_type,omitempty" validate:"omitempty,oneof=moto"`
	ThreeDSecureActionResultTokenID string   `json:"three_d_secure_action_result_token_id,omitempty"`
	Iban                            string   `json:"iban,omitempty"`
	NameOnAccount                   string   `json:"name_on_account,omitempty"`
	AccountNumber                   string   `json:"account_number,omitempty"`
	RoutingNumber                   string   `json:"routing_number,omitempty"`
	SortCode                        string   `json:"sort_code,omitempty"`
	Type                            string   `json:"type,omitempty" validate:"omitempty,oneof=bacs becs"`
	AccountType                     string   `json:"account_type,omitempty" validate:"omitempty,oneof=checking savings"`
	TaxIdentifier                   string   `json:"tax_identifier,omitempty"`
	TaxIdentifierType               string   `json:"tax_identifier_type,omitempty"`
	PrimaryPaymentMethod            *bool    `json:"primary_payment_method,omitempty"`
	BackupPaymentMethod             *bool    `json:"backup_payment_method,omitempty"`
}

// BillingInfoVerify is the optional body of POST …/billing_info/verify.
type BillingInfoVerify struct {
	GatewayCode string `json:"gateway_code,omitempty"`
}

// BillingInfoVerifyCVV is the body of POST …/billing_info/verify_cvv.
type BillingInfoVerifyCVV struct {
	VerificationValue string `json:"verification_value" validate:"required,min=3,max=4,numeric"`
}

// Get fetches the account's primary billing info.
func (s *BillingInfoService) Get(ctx context.Context, accountID string, opts ...RequestOption) (*BillingInfo, error) {
	return call[BillingInfo](ctx, (*service)(s), http.MethodGet, newRoute("/accounts/%s/billing_info", accountID), nil, nil, opts)
}

// Update sets the account's primary billing info.
func (s *BillingInfoService) Update(ctx context.Context, accountID string, body *BillingInfoCreate, opts ...RequestOption) (*BillingInfo, error) {
	return call[BillingInfo](ctx, (*service)(s), http.MethodPut, newRoute("/accounts/%s/billing_info", accountID), nil, body, opts)
}

// Remove deletes the account's primary billing info.
func (s *BillingInfoService) Remove(ctx context.Context, accountID string, opts ...RequestOption) error {
	return exec(ctx, (*service)(s), http.MethodDelete, newRoute("/accounts/%s/billing_info", accountID), nil, nil, opts)
}

// Verify runs a zero-amount authorization against the billing info.
// body may be nil.
func (s *BillingInfoService) Verify(ctx context.Context, accountID string, body *BillingInfoVerify, opts ...RequestOption) (*Transaction, error) {
	var payload any
	if body != nil {
		payload = body
	}
	return call[Transaction](ctx, (*service)(s), http.MethodPost, newRoute("/accounts/%s/billing_info/verify", accountID), nil, payload, opts)
}

// VerifyCVV checks a card security code against the stored card.
func (s *BillingInfoService) VerifyCVV(ctx context.Context, accountID string, body *BillingInfoVerifyCVV, opts ...RequestOption) (*Transaction, error) {
	return call[Transaction](ctx, (*service)(s), http.MethodPost, newRoute("/accounts/%s/billing_info/verify_cvv", accountID), nil, body, opts)
}

// List returns every billing info in the account wallet.
func (s *BillingInfosService) List(ctx context.Context, accountID string, params *ListParams, opts ...RequestOption) (*List[BillingInfo], error) {
	return call[List[BillingInfo]](ctx, (*service)(s), http.MethodGet, newRoute("/accounts/%s/billing_infos", accountID), params, nil, opts)
}

// Create adds a billing info to the wallet.
func (s *BillingInfosService) Create(ctx context.Context, accountID string, body *BillingInfoCreate, opts ...RequestOption) (*BillingInfo, error) {
	return call[BillingInfo](ctx, (*service)(s), http.MethodPost, newRoute("/accounts/%s/billing_infos", accountID), nil, body, opts)
}

// Get fetches one wallet entry.
func (s *BillingInfosService) Get(ctx context.Context, accountID, billingInfoID string, opts ...RequestOption) (*BillingInfo, error) {
	return call[BillingInfo](ctx, (*service)(s), http.MethodGet, newRoute("/accounts/%s/billing_infos/%s", accountID, billingInfoID), nil, nil, opts)
}

// Update replaces one wallet entry.
func (s *BillingInfosService) Update(ctx context.Context, accountID, billingInfoID string, body *BillingInfoCreate, opts ...RequestOption) (*BillingInfo, error) {
	return call[BillingInfo](ctx, (*service)(s), http.MethodPut, newRoute("/accounts/%s/billing_infos/%s", accountID, billingInfoID), nil, body, opts)
}

// Remove deletes one wallet entry.
func (s *BillingInfosService) Remove(ctx context.Context, accountID, billingInfoID string, opts ...RequestOption) error {
	return exec(ctx, (*service)(s), http.MethodDelete, newRoute("/accounts/%s/billing_infos/%s", accountID, billingInfoID), nil, nil, opts)
}
