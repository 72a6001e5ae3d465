package recurly

import (
	"context"
	"net/http"
	"time"
)

// GiftCardsService handles /gift_cards.
type GiftCardsService service

// GiftCard is a prepaid credit bought by one account for another.
type GiftCard struct {
	ID                      string            `json:"id"`
	Object                  string            `json:"object"`
	GifterAccountID         string            `json:"gifter_account_id"`
	RecipientAccountID      string            `json:"recipient_account_id"`
	PurchaseInvoiceID       string            `json:"purchase_invoice_id"`
	RedemptionInvoiceID     string            `json:"redemption_invoice_id"`
	RedemptionCode          string            `json:"redemption_code"`
	Balance                 float64           `json:"balance"`
	ProductCode             string            `json:"product_code"`
	UnitAmount              float64           `json:"unit_amount"`
	Currency                string            `json:"currency"`
	Delivery                *GiftCardDelivery `json:"delivery"`
	PerformanceObligationID string            `json:"performance_obligation_id"`
	LiabilityGLAccountID    string            `json:"liability_gl_account_id"`
	RevenueGLAccountID      string            `json:"revenue_gl_account_id"`
	CreatedAt               *time.Time        `json:"created_at"`
	UpdatedAt               *time.Time        `json:"updated_at"`
	DeliveredAt             *time.Time        `json:"delivered_at"`
	RedeemedAt              *time.Time        `json:"redeemed_at"`
	CanceledAt              *time.Time        `json:"canceled_at"`
}

// GiftCardDelivery says how and when a gift card reaches its recipient.
type GiftCardDelivery struct {
	Method           string     `json:"method" validate:"required,oneof=email post"`
	EmailAddress     string     `json:"email_address,omitempty" validate:"omitempty,email"`
	DeliverAt        *time.Time `json:"deliver_at,omitempty"`
	FirstName        string     `json:"first_name,omitempty"`
	LastName         string     `json:"last_name,omitempty"`
	RecipientAddress *Address   `json:"recipient_address,omitempty"`
	GifterName       string     `json:"gifter_name,omitempty"`
	PersonalMessage  string     `json:"personal_message,omitempty" validate:"omitempty,max=255"`
}

// GiftCardCreate is the body of POST /gift_cards.
type GiftCardCreate struct {
	ProductCode   string            `json:"product_code" validate:"required"`
	UnitAmount    float64           `json:"unit_amount" validate:"required,gt=0"`
	Currency      string            `json:"currency" validate:"required,len=3"`
	Delivery      *GiftCardDelivery `json:"delivery" validate:"required"`
	GifterAccount *AccountCreate    `json:"gifter_account" validate:"required"`
}

// GiftCardRedeem is the body of POST /gift_cards/{code}/redeem.
type GiftCardRedeem struct {
	RecipientAccount AccountReference `json:"recipient_account"`
}

// List returns the site's gift cards.
func (s *GiftCardsService) List(ctx context.Context, params *ListParams, opts ...RequestOption) (*List[GiftCard], error) {
	return call[List[GiftCard]](ctx, (*service)(s), http.MethodGet, newRoute("/gift_cards"), params, nil, opts)
}

// Create purchases a gift card.
func (s *GiftCardsService) Create(ctx context.Context, body *GiftCardCreate, opts ...RequestOption) (*GiftCard, error) {
	return call[GiftCard](ctx, (*service)(s), http.MethodPost, newRoute("/gift_cards"), nil, body, opts)
}

// Get fetches a gift card.
func (s *GiftCardsService) Get(ctx context.Context, giftCardID string, opts ...RequestOption) (*GiftCard, error) {
	return call[GiftCard](ctx, (*service)(s), http.MethodGet, newRoute("/gift_cards/%s", giftCardID), nil, nil, opts)
}

// Preview validates a gift card purchase without charging anything.
func (s *GiftCardsService) Preview(ctx context.Context, body *GiftCardCreate, opts ...RequestOption) (*GiftCard, error) {
	return call[GiftCard](ctx, (*service)(s), http.MethodPost, newRoute("/gift_cards/preview"), nil, body, opts)
}

// Redeem credits a gift card to the recipient account.
func (s *GiftCardsService) Redeem(ctx context.Context, redemptionCode string, body *GiftCardRedeem, opts ...RequestOption) (*GiftCard, error) {
	return call[GiftCard](ctx, (*service)(s), http.MethodPost, newRoute("/gift_cards/%s/redeem", redemptionCode), nil, body, opts)
}
