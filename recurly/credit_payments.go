package recurly

import (
	"context"
	"net/http"
	"time"
)

// CreditPaymentsService handles /credit_payments.
type CreditPaymentsService service

// CreditPayment moves credit from one invoice to another.
type CreditPayment struct {
	ID                      string           `json:"id"`
	Object                  string           `json:"object"`
	UUID                    string           `json:"uuid"`
	Action                  string           `json:"action"`
	Account                 *AccountMini     `json:"account"`
	AppliedToInvoice        *InvoiceMini     `json:"applied_to_invoice"`
	OriginalInvoice         *InvoiceMini     `json:"original_invoice"`
	Currency                string           `json:"currency"`
	Amount                  float64          `json:"amount"`
	OriginalCreditPaymentID string           `json:"original_credit_payment_id"`
	RefundTransaction       *TransactionMini `json:"refund_transaction"`
	CreatedAt               *time.Time       `json:"created_at"`
	UpdatedAt               *time.Time       `json:"updated_at"`
	VoidedAt                *time.Time       `json:"voided_at"`
}

// List returns the site's credit payments.
func (s *CreditPaymentsService) List(ctx context.Context, params *ListParams, opts ...RequestOption) (*List[CreditPayment], error) {
	return call[List[CreditPayment]](ctx, (*service)(s), http.MethodGet, newRoute("/credit_payments"), params, nil, opts)
}

// ListForAccount returns an account's credit payments.
func (s *CreditPaymentsService) ListForAccount(ctx context.Context, accountID string, params *ListParams, opts ...RequestOption) (*List[CreditPayment], error) {
	return call[List[CreditPayment]](ctx, (*service)(s), http.MethodGet, newRoute("/accounts/%s/credit_payments", accountID), params, nil, opts)
}

// Get fetches one credit payment.
func (s *CreditPaymentsService) Get(ctx context.Context, creditPaymentID string, opts ...RequestOption) (*CreditPayment, error) {
	return call[CreditPayment](ctx, (*service)(s), http.MethodGet, newRoute("/credit_payments/%s", creditPaymentID), nil, nil, opts)
}
