package recurly

import (
	"context"
	"net/http"
	"time"
)

// InvoicesService handles /invoices.
type InvoicesService service

// Invoice is a charge or credit invoice.
type Invoice struct {
	ID                    string           `json:"id"`
	Object                string           `json:"object"`
	UUID                  string           `json:"uuid"`
	Type                  string           `json:"type"`
	Origin                string           `json:"origin"`
	State                 string           `json:"state"`
	Account               *AccountMini     `json:"account"`
	BillingInfoID         string           `json:"billing_info_id"`
	SubscriptionIDs       []string         `json:"subscription_ids"`
	PreviousInvoiceID     string           `json:"previous_invoice_id"`
	Number                string           `json:"number"`
	CollectionMethod      string           `json:"collection_method"`
	PONumber              string           `json:"po_number"`
	NetTerms              int              `json:"net_terms"`
	NetTermsType          string           `json:"net_terms_type"`
	Address               *InvoiceAddress  `json:"address"`
	ShippingAddress       *ShippingAddress `json:"shipping_address"`
	Currency              string           `json:"currency"`
	Discount              float64          `json:"discount"`
	Subtotal              float64          `json:"subtotal"`
	Tax                   float64          `json:"tax"`
	Total                 float64          `json:"total"`
	RefundableAmount      float64          `json:"refundable_amount"`
	Paid                  float64          `json:"paid"`
	Balance               float64          `json:"balance"`
	TaxInfo               *TaxInfo         `json:"tax_info"`
	UsedTaxService        bool             `json:"used_tax_service"`
	VatNumber             string           `json:"vat_number"`
	VatReverseChargeNotes string           `json:"vat_reverse_charge_notes"`
	TermsAndConditions    string           `json:"terms_and_conditions"`
	CustomerNotes         string           `json:"customer_notes"`
	LineItems             []LineItem       `json:"line_items"`
	Transactions          []Transaction    `json:"transactions"`
	CreditPayments        []CreditPayment  `json:"credit_payments"`
	DunningCampaignID     string           `json:"dunning_campaign_id"`
	DunningEventsSent     int              `json:"dunning_events_sent"`
	FinalDunningEvent     bool             `json:"final_dunning_event"`
	BusinessEntityID      string           `json:"business_entity_id"`
	CreatedAt             *time.Time       `json:"created_at"`
	UpdatedAt             *time.Time       `json:"updated_at"`
	DueAt                 *time.Time       `json:"due_at"`
	ClosedAt              *time.Time       `json:"closed_at"`
}

// InvoiceAddress is the billing address printed on an invoice.
type InvoiceAddress struct {
	Address
	NameOnAccount string `json:"name_on_account,omitempty"`
	Company       string `json:"company,omitempty"`
	FirstName     string `json:"first_name,omitempty"`
	LastName      string `json:"last_name,omitempty"`
}

// InvoiceCollection is returned when an action produces both a charge
// invoice and credit invoices.
type InvoiceCollection struct {
	Object         string    `json:"object"`
	ChargeInvoice  *Invoice  `json:"charge_invoice"`
	CreditInvoices []Invoice `json:"credit_invoices"`
}

// InvoiceCreate is the body of POST /accounts/{id}/invoices.
type InvoiceCreate struct {
	Currency              string `json:"currency" validate:"required,len=3"`
	BusinessEntityID      string `json:"business_entity_id,omitempty"`
	BusinessEntityCode    string `json:"business_entity_code,omitempty"`
	CollectionMethod      string `json:"collection_method,omitempty" validate:"omitempty,oneof=automatic manual"`
	ChargeCustomerNotes   string `json:"charge_customer_notes,omitempty"`
	CreditCustomerNotes   string `json:"credit_customer_notes,omitempty"`
	NetTerms              *int   `json:"net_terms,omitempty" validate:"omitempty,min=0,max=999"`
	NetTermsType          string `json:"net_terms_type,omitempty" validate:"omitempty,oneof=net eom"`
	PONumber              string `json:"po_number,omitempty" validate:"omitempty,max=50"`
	TermsAndConditions    string `json:"terms_and_conditions,omitempty"`
	VatReverseChargeNotes string `json:"vat_reverse_charge_notes,omitempty"`
}

// InvoiceUpdate is the body of PUT /invoices/{id}.
type InvoiceUpdate struct {
	PONumber              string          `json:"po_number,omitempty" validate:"omitempty,max=50"`
	VatReverseChargeNotes string          `json:"vat_reverse_charge_notes,omitempty"`
	TermsAndConditions    string          `json:"terms_and_conditions,omitempty"`
	CustomerNotes         string          `json:"customer_notes,omitempty"`
	NetTerms              *int            `json:"net_terms,omitempty" validate:"omitempty,min=0,max=999"`
	GatewayCode           string          `json:"gateway_code,omitempty"`
	Address               *InvoiceAddress `json:"address,omitempty"`
}

// InvoiceCollect is the optional body of PUT /invoices/{id}/collect.
type InvoiceCollect struct {
	ThreeDSecureActionResultTokenID string `json:"three_d_secure_action_result_token_id,omitempty"`
	TransactionType                 string `json:"transaction_type,omitempty" validate:"omitempty,oneof=moto"`
	BillingInfoID                   string `json:"billing_info_id,omitempty"`
}

// ExternalTransaction records a payment made outside Recurly.
type ExternalTransaction struct {
	PaymentMethod string     `json:"payment_method" validate:"required,oneof=ach amazon apple_pay bank_transfer braintree_v_zero cash check credit_card eft google_pay money_order other paypal roku sepadirectdebit wire_transfer"`
	Description   string     `json:"description,omitempty"`
	Amount        float64    `json:"amount" validate:"required,gt=0"`
	CollectedAt   *time.Time `json:"collected_at,omitempty"`
}

// InvoiceRefund is the body of POST /invoices/{id}/refund.
type InvoiceRefund struct {
	Type                string           `json:"type" validate:"required,oneof=amount percentage line_items"`
	Amount              float64          `json:"amount,omitempty" validate:"required_if=Type amount"`
	Percentage          int              `json:"percentage,omitempty" validate:"omitempty,min=1,max=100"`
	LineItems           []LineItemRefund `json:"line_items,omitempty" validate:"required_if=Type line_items,dive"`
	RefundMethod        string           `json:"refund_method,omitempty" validate:"omitempty,oneof=all_credit all_transaction credit_first transaction_first"`
	CreditCustomerNotes string           `json:"credit_customer_notes,omitempty"`
	ExternalRefund      *ExternalRefund  `json:"external_refund,omitempty"`
}

// LineItemRefund refunds some quantity of one line item.
type LineItemRefund struct {
	ID              string `json:"id" validate:"required"`
	Quantity        int    `json:"quantity,omitempty" validate:"omitempty,min=1"`
	QuantityDecimal string `json:"quantity_decimal,omitempty"`
	Prorate         *bool  `json:"prorate,omitempty"`
}

// ExternalRefund records a refund made outside Recurly.
type ExternalRefund struct {
	PaymentMethod string     `json:"payment_method" validate:"required"`
	Description   string     `json:"description,omitempty"`
	RefundedAt    *time.Time `json:"refunded_at,omitempty"`
}

// List returns the site's invoices.
func (s *InvoicesService) List(ctx context.Context, params *InvoiceListParams, opts ...RequestOption) (*List[Invoice], error) {
	return call[List[Invoice]](ctx, (*service)(s), http.MethodGet, newRoute("/invoices"), params, nil, opts)
}

// ListForAccount returns an account's invoices.
func (s *InvoicesService) ListForAccount(ctx context.Context, accountID string, params *InvoiceListParams, opts ...RequestOption) (*List[Invoice], error) {
	return call[List[Invoice]](ctx, (*service)(s), http.MethodGet, newRoute("/accounts/%s/invoices", accountID), params, nil, opts)
}

// ListForSubscription returns a subscription's invoices.
func (s *InvoicesService) ListForSubscription(ctx context.Context, subscriptionID string, params *InvoiceListParams, opts ...RequestOption) (*List[Invoice], error) {
	return call[List[Invoice]](ctx, (*service)(s), http.MethodGet, newRoute("/subscriptions/%s/invoices", subscriptionID), params, nil, opts)
}

// CreateForAccount invoices an account's pending line items.
func (s *InvoicesService) CreateForAccount(ctx context.Context, accountID string, body *InvoiceCreate, opts ...RequestOption) (*InvoiceCollection, error) {
	return call[InvoiceCollection](ctx, (*service)(s), http.MethodPost, newRoute("/accounts/%s/invoices", accountID), nil, body, opts)
}

// PreviewForAccount shows what CreateForAccount would produce.
func (s *InvoicesService) PreviewForAccount(ctx context.Context, accountID string, body *InvoiceCreate, opts ...RequestOption) (*InvoiceCollection, error) {
	return call[InvoiceCollection](ctx, (*service)(s), http.MethodPost, newRoute("/accounts/%s/invoices/preview", accountID), nil, body, opts)
}

// Get fetches an invoice by ID or "number-<number>".
func (s *InvoicesService) Get(ctx context.Context, invoiceID string, opts ...RequestOption) (*Invoice, error) {
	return call[Invoice](ctx, (*service)(s), http.MethodGet, newRoute("/invoices/%s", invoiceID), nil, nil, opts)
}

// Update modifies an invoice.
func (s *InvoicesService) Update(ctx context.Context, invoiceID string, body *InvoiceUpdate, opts ...RequestOption) (*Invoice, error) {
	return call[Invoice](ctx, (*service)(s), http.MethodPut, newRoute("/invoices/%s", invoiceID), nil, body, opts)
}

// GetPDF downloads the rendered invoice.
func (s *InvoicesService) GetPDF(ctx context.Context, invoiceID string, opts ...RequestOption) ([]byte, error) {
	var pdf []byte
	r := request{
		method: http.MethodGet,
		route:  newRoute("/invoices/%s.pdf", invoiceID),
		accept: acceptPDF,
	}
	if err := s.client.do(ctx, r, &pdf, opts); err != nil {
		return nil, err
	}
	return pdf, nil
}

// ApplyCreditBalance pays a pending invoice with the account's credit.
func (s *InvoicesService) ApplyCreditBalance(ctx context.Context, invoiceID string, opts ...RequestOption) (*Invoice, error) {
	return call[Invoice](ctx, (*service)(s), http.MethodPut, newRoute("/invoices/%s/apply_credit_balance", invoiceID), nil, nil, opts)
}

// Collect retries payment of a pending or past due invoice. body may be nil.
func (s *InvoicesService) Collect(ctx context.Context, invoiceID string, body *InvoiceCollect, opts ...RequestOption) (*Invoice, error) {
	var payload any
	if body != nil {
		payload = body
	}
	return call[Invoice](ctx, (*service)(s), http.MethodPut, newRoute("/invoices/%s/collect", invoiceID), nil, payload, opts)
}

// MarkFailed marks an invoice as failed.
func (s *InvoicesService) MarkFailed(ctx context.Context, invoiceID string, opts ...RequestOption) (*Invoice, error) {
	return call[Invoice](ctx, (*service)(s), http.MethodPut, newRoute("/invoices/%s/mark_failed", invoiceID), nil, nil, opts)
}

// MarkSuccessful marks an invoice as paid outside Recurly.
func (s *InvoicesService) MarkSuccessful(ctx context.Context, invoiceID string, opts ...RequestOption) (*Invoice, error) {
	return call[Invoice](ctx, (*service)(s), http.MethodPut, newRoute("/invoices/%s/mark_successful", invoiceID), nil, nil, opts)
}

// Reopen reopens a closed manual invoice.
func (s *InvoicesService) Reopen(ctx context.Context, invoiceID string, opts ...RequestOption) (*Invoice, error) {
	return call[Invoice](ctx, (*service)(s), http.MethodPut, newRoute("/invoices/%s/reopen", invoiceID), nil, nil, opts)
}

// Void voids a credit invoice.
func (s *InvoicesService) Void(ctx context.Context, invoiceID string, opts ...RequestOption) (*Invoice, error) {
	return call[Invoice](ctx, (*service)(s), http.MethodPut, newRoute("/invoices/%s/void", invoiceID), nil, nil, opts)
}

// RecordExternalTransaction records a payment collected outside Recurly.
func (s *InvoicesService) RecordExternalTransaction(ctx context.Context, invoiceID string, body *ExternalTransaction, opts ...RequestOption) (*Transaction, error) {
	return call[Transaction](ctx, (*service)(s), http.MethodPost, newRoute("/invoices/%s/transactions", invoiceID), nil, body, opts)
}

// ListRelated returns credit invoices issued against a charge invoice
// and vice versa.
func (s *InvoicesService) ListRelated(ctx context.Context, invoiceID string, opts ...RequestOption) (*List[Invoice], error) {
	return call[List[Invoice]](ctx, (*service)(s), http.MethodGet, newRoute("/invoices/%s/related_invoices", invoiceID), nil, nil, opts)
}

// Refund issues a credit invoice against a charge invoice.
func (s *InvoicesService) Refund(ctx context.Context, invoiceID string, body *InvoiceRefund, opts ...RequestOption) (*Invoice, error) {
	return call[Invoice](ctx, (*service)(s), http.MethodPost, newRoute("/invoices/%s/refund", invoiceID), nil, body, opts)
}
