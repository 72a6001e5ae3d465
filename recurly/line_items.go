package recurly

import (
	"context"
	"net/http"
	"time"
)

// LineItemsService handles /line_items.
type LineItemsService service

// LineItem is a charge or credit, either pending or on an invoice.
type LineItem struct {
	ID                        string           `json:"id"`
	Object                    string           `json:"object"`
	UUID                      string           `json:"uuid"`
	Type                      string           `json:"type"`
	ItemCode                  string           `json:"item_code"`
	ItemID                    string           `json:"item_id"`
	ExternalSKU               string           `json:"external_sku"`
	RevenueScheduleType       string           `json:"revenue_schedule_type"`
	State                     string           `json:"state"`
	LegacyCategory            string           `json:"legacy_category"`
	Account                   *AccountMini     `json:"account"`
	BillForAccountID          string           `json:"bill_for_account_id"`
	SubscriptionID            string           `json:"subscription_id"`
	PlanID                    string           `json:"plan_id"`
	PlanCode                  string           `json:"plan_code"`
	AddOnID                   string           `json:"add_on_id"`
	AddOnCode                 string           `json:"add_on_code"`
	InvoiceID                 string           `json:"invoice_id"`
	InvoiceNumber             string           `json:"invoice_number"`
	PreviousLineItemID        string           `json:"previous_line_item_id"`
	OriginalLineItemInvoiceID string           `json:"original_line_item_invoice_id"`
	Origin                    string           `json:"origin"`
	AccountingCode            string           `json:"accounting_code"`
	ProductCode               string           `json:"product_code"`
	CreditReasonCode          string           `json:"credit_reason_code"`
	Currency                  string           `json:"currency"`
	Amount                    float64          `json:"amount"`
	Description               string           `json:"description"`
	Quantity                  int              `json:"quantity"`
	QuantityDecimal           string           `json:"quantity_decimal"`
	UnitAmount                float64          `json:"unit_amount"`
	Subtotal                  float64          `json:"subtotal"`
	Discount                  float64          `json:"discount"`
	Tax                       float64          `json:"tax"`
	Taxable                   bool             `json:"taxable"`
	TaxExempt                 bool             `json:"tax_exempt"`
	TaxCode                   string           `json:"tax_code"`
	TaxInfo                   *TaxInfo         `json:"tax_info"`
	Proration                 string           `json:"proration_rate"`
	Refund                    bool             `json:"refund"`
	RefundedQuantity          int              `json:"refunded_quantity"`
	CreditApplied             float64          `json:"credit_applied"`
	ShippingAddress           *ShippingAddress `json:"shipping_address"`
	CustomFields              []CustomField    `json:"custom_fields"`
	StartDate                 *time.Time       `json:"start_date"`
	EndDate                   *time.Time       `json:"end_date"`
	CreatedAt                 *time.Time       `json:"created_at"`
	UpdatedAt                 *time.Time       `json:"updated_at"`
}

// LineItemCreate is the body of POST /accounts/{id}/line_items.
type LineItemCreate struct {
	Currency            string        `json:"currency" validate:"required,len=3"`
	UnitAmount          float64       `json:"unit_amount"`
	Quantity            int           `json:"quantity,omitempty" validate:"omitempty,min=1"`
	Description         string        `json:"description,omitempty" validate:"omitempty,max=255"`
	ItemCode            string        `json:"item_code,omitempty"`
	ItemID              string        `json:"item_id,omitempty"`
	RevenueScheduleType string        `json:"revenue_schedule_type,omitempty" validate:"omitempty,oneof=at_invoice at_range_end at_range_start evenly never"`
	Type                string        `json:"type,omitempty" validate:"omitempty,oneof=charge credit"`
	CreditReasonCode    string        `json:"credit_reason_code,omitempty"`
	AccountingCode      string        `json:"accounting_code,omitempty"`
	TaxExempt           *bool         `json:"tax_exempt,omitempty"`
	TaxCode             string        `json:"tax_code,omitempty"`
	ProductCode         string        `json:"product_code,omitempty"`
	Origin              string        `json:"origin,omitempty" validate:"omitempty,oneof=external_gift_card prepayment"`
	CustomFields        []CustomField `json:"custom_fields,omitempty" validate:"omitempty,dive"`
	StartDate           *time.Time    `json:"start_date,omitempty"`
	EndDate             *time.Time    `json:"end_date,omitempty"`
}

// List returns the site's line items.
func (s *LineItemsService) List(ctx context.Context, params *LineItemListParams, opts ...RequestOption) (*List[LineItem], error) {
	return call[List[LineItem]](ctx, (*service)(s), http.MethodGet, newRoute("/line_items"), params, nil, opts)
}

// ListForAccount returns an account's line items.
func (s *LineItemsService) ListForAccount(ctx context.Context, accountID string, params *LineItemListParams, opts ...RequestOption) (*List[LineItem], error) {
	return call[List[LineItem]](ctx, (*service)(s), http.MethodGet, newRoute("/accounts/%s/line_items", accountID), params, nil, opts)
}

// ListForInvoice returns the line items on an invoice.
func (s *LineItemsService) ListForInvoice(ctx context.Context, invoiceID string, params *LineItemListParams, opts ...RequestOption) (*List[LineItem], error) {
	return call[List[LineItem]](ctx, (*service)(s), http.MethodGet, newRoute("/invoices/%s/line_items", invoiceID), params, nil, opts)
}

// ListForSubscription returns a subscription's line items.
func (s *LineItemsService) ListForSubscription(ctx context.Context, subscriptionID string, params *LineItemListParams, opts ...RequestOption) (*List[LineItem], error) {
	return call[List[LineItem]](ctx, (*service)(s), http.MethodGet, newRoute("/subscriptions/%s/line_items", subscriptionID), params, nil, opts)
}

// CreateForAccount adds a pending charge or credit to an account.
func (s *LineItemsService) CreateForAccount(ctx context.Context, accountID string, body *LineItemCreate, opts ...RequestOption) (*LineItem, error) {
	return call[LineItem](ctx, (*service)(s), http.MethodPost, newRoute("/accounts/%s/line_items", accountID), nil, body, opts)
}

// Get fetches a line item.
func (s *LineItemsService) Get(ctx context.Context, lineItemID string, opts ...RequestOption) (*LineItem, error) {
	return call[LineItem](ctx, (*service)(s), http.MethodGet, newRoute("/line_items/%s", lineItemID), nil, nil, opts)
}

// Remove deletes an uninvoiced line item.
func (s *LineItemsService) Remove(ctx context.Context, lineItemID string, opts ...RequestOption) error {
	return exec(ctx, (*service)(s), http.MethodDelete, newRoute("/line_items/%s", lineItemID), nil, nil, opts)
}
