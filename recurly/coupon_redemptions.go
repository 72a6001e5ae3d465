package recurly

import (
	"context"
	"net/http"
	"time"
)

// CouponRedemptionsService handles coupon redemptions on accounts,
// invoices and subscriptions.
type CouponRedemptionsService service

// CouponRedemption is a coupon applied to an account or subscription.
type CouponRedemption struct {
	ID             string       `json:"id"`
	Object         string       `json:"object"`
	Account        *AccountMini `json:"account"`
	SubscriptionID string       `json:"subscription_id"`
	Coupon         *Coupon      `json:"coupon"`
	State          string       `json:"state"`
	Currency       string       `json:"currency"`
	Discounted     float64      `json:"discounted"`
	CreatedAt      *time.Time   `json:"created_at"`
	UpdatedAt      *time.Time   `json:"updated_at"`
	RemovedAt      *time.Time   `json:"removed_at"`
}

// CouponRedemptionCreate is the body of POST /accounts/{id}/coupon_redemptions.
type CouponRedemptionCreate struct {
	CouponID       string `json:"coupon_id" validate:"required"`
	Currency       string `json:"currency,omitempty" validate:"omitempty,len=3"`
	SubscriptionID string `json:"subscription_id,omitempty"`
}

// ListForAccount returns every redemption on an account.
func (s *CouponRedemptionsService) ListForAccount(ctx context.Context, accountID string, params *ListParams, opts ...RequestOption) (*List[CouponRedemption], error) {
	return call[List[CouponRedemption]](ctx, (*service)(s), http.MethodGet, newRoute("/accounts/%s/coupon_redemptions", accountID), params, nil, opts)
}

// ListActive returns the account's active redemptions.
func (s *CouponRedemptionsService) ListActive(ctx context.Context, accountID string, opts ...RequestOption) (*List[CouponRedemption], error) {
	return call[List[CouponRedemption]](ctx, (*service)(s), http.MethodGet, newRoute("/accounts/%s/coupon_redemptions/active", accountID), nil, nil, opts)
}

// Create redeems a coupon on an account.
func (s *CouponRedemptionsService) Create(ctx context.Context, accountID string, body *CouponRedemptionCreate, opts ...RequestOption) (*CouponRedemption, error) {
	return call[CouponRedemption](ctx, (*service)(s), http.MethodPost, newRoute("/accounts/%s/coupon_redemptions", accountID), nil, body, opts)
}

// RemoveActive removes the account's active redemption.
func (s *CouponRedemptionsService) RemoveActive(ctx context.Context, accountID string, opts ...RequestOption) (*CouponRedemption, error) {
	return call[CouponRedemption](ctx, (*service)(s), http.MethodDelete, newRoute("/accounts/%s/coupon_redemptions/active", accountID), nil, nil, opts)
}

// Remove removes a specific redemption from an account.
func (s *CouponRedemptionsService) Remove(ctx context.Context, accountID, redemptionID string, opts ...RequestOption) (*CouponRedemption, error) {
	return call[CouponRedemption](ctx, (*service)(s), http.MethodDelete, newRoute("/accounts/%s/coupon_redemptions/%s", accountID, redemptionID), nil, nil, opts)
}

// ListForInvoice returns the redemptions applied to an invoice.
func (s *CouponRedemptionsService) ListForInvoice(ctx context.Context, invoiceID string, params *ListParams, opts ...RequestOption) (*List[CouponRedemption], error) {
	return call[List[CouponRedemption]](ctx, (*service)(s), http.MethodGet, newRoute("/invoices/%s/coupon_redemptions", invoiceID), params, nil, opts)
}

// ListForSubscription returns the redemptions applied to a subscription.
func (s *CouponRedemptionsService) ListForSubscription(ctx context.Context, subscriptionID string, params *ListParams, opts ...RequestOption) (*List[CouponRedemption], error) {
	return call[List[CouponRedemption]](ctx, (*service)(s), http.MethodGet, newRoute("/subscriptions/%s/coupon_redemptions", subscriptionID), params, nil, opts)
}
