package recurly

import (
	"context"
	"net/http"
	"time"
)

// TransactionsService handles /transactions.
type TransactionsService service

// Transaction is a payment attempt against a payment gateway.
type Transaction struct {
	ID                      string              `json:"id"`
	Object                  string              `json:"object"`
	UUID                    string              `json:"uuid"`
	OriginalTransactionID   string              `json:"original_transaction_id"`
	Account                 *AccountMini        `json:"account"`
	Invoice                 *InvoiceMini        `json:"invoice"`
	VoidedByInvoice         *InvoiceMini        `json:"voided_by_invoice"`
	SubscriptionIDs         []string            `json:"subscription_ids"`
	Type                    string              `json:"type"`
	Origin                  string              `json:"origin"`
	Currency                string              `json:"currency"`
	Amount                  float64             `json:"amount"`
	Status                  string              `json:"status"`
	Success                 bool                `json:"success"`
	BackupPaymentMethodUsed bool                `json:"backup_payment_method_used"`
	Refunded                bool                `json:"refunded"`
	BillingAddress          *Address            `json:"billing_address"`
	CollectionMethod        string              `json:"collection_method"`
	PaymentMethod           *PaymentMethod      `json:"payment_method"`
	IPAddressV4             string              `json:"ip_address_v4"`
	IPAddressCountry        string              `json:"ip_address_country"`
	StatusCode              string              `json:"status_code"`
	StatusMessage           string              `json:"status_message"`
	CustomerMessage         string              `json:"customer_message"`
	CustomerMessageLocale   string              `json:"customer_message_locale"`
	PaymentGateway          *TransactionGateway `json:"payment_gateway"`
	GatewayMessage          string              `json:"gateway_message"`
	GatewayReference        string              `json:"gateway_reference"`
	GatewayApprovalCode     string              `json:"gateway_approval_code"`
	GatewayResponseCode     string              `json:"gateway_response_code"`
	GatewayResponseTime     float64             `json:"gateway_response_time"`
	CVVCheck                string              `json:"cvv_check"`
	AVSCheck                string              `json:"avs_check"`
	FraudInfo               *FraudInfo          `json:"fraud_info"`
	CreatedAt               *time.Time          `json:"created_at"`
	UpdatedAt               *time.Time          `json:"updated_at"`
	VoidedAt                *time.Time          `json:"voided_at"`
	CollectedAt             *time.Time          `json:"collected_at"`
}

// TransactionGateway identifies the gateway that processed a transaction.
type TransactionGateway struct {
	ID     string `json:"id"`
	Object string `json:"object"`
	Type   string `json:"type"`
	Name   string `json:"name"`
}

// List returns the site's transactions.
func (s *TransactionsService) List(ctx context.Context, params *TransactionListParams, opts ...RequestOption) (*List[Transaction], error) {
	return call[List[Transaction]](ctx, (*service)(s), http.MethodGet, newRoute("/transactions"), params, nil, opts)
}

// ListForAccount returns an account's transactions.
func (s *TransactionsService) ListForAccount(ctx context.Context, accountID string, params *TransactionListParams, opts ...RequestOption) (*List[Transaction], error) {
	return call[List[Transaction]](ctx, (*service)(s), http.MethodGet, newRoute("/accounts/%s/transactions", accountID), params, nil, opts)
}

// Get fetches a transaction by ID or "uuid-<uuid>".
func (s *TransactionsService) Get(ctx context.Context, transactionID string, opts ...RequestOption) (*Transaction, error) {
	return call[Transaction](ctx, (*service)(s), http.MethodGet, newRoute("/transactions/%s", transactionID), nil, nil, opts)
}
