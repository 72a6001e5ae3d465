package recurly

import (
	"context"
	"net/http"
	"time"
)

// AccountAcquisitionsService handles account acquisition attribution.
type AccountAcquisitionsService service

// AccountAcquisition records how an account was acquired.
type AccountAcquisition struct {
	ID         string                  `json:"id"`
	Object     string                  `json:"object"`
	Account    *AccountMini            `json:"account"`
	Cost       *AccountAcquisitionCost `json:"cost"`
	Channel    string                  `json:"channel"`
	Subchannel string                  `json:"subchannel"`
	Campaign   string                  `json:"campaign"`
	CreatedAt  *time.Time              `json:"created_at"`
	UpdatedAt  *time.Time              `json:"updated_at"`
}

// AccountAcquisitionCost is the acquisition cost in one currency.
type AccountAcquisitionCost struct {
	Currency string  `json:"currency" validate:"omitempty,len=3"`
	Amount   float64 `json:"amount"`
}

// AccountAcquisitionUpdate is the body of PUT /accounts/{id}/acquisition.
type AccountAcquisitionUpdate struct {
	Cost       *AccountAcquisitionCost `json:"cost,omitempty"`
	Channel    string                  `json:"channel,omitempty" validate:"omitempty,oneof=advertising blog direct_traffic email events marketing_content organic_search other outbound_sales paid_search public_relations referral social_media"`
	Subchannel string                  `json:"subchannel,omitempty"`
	Campaign   string                  `json:"campaign,omitempty"`
}

// List returns acquisition records across the site.
func (s *AccountAcquisitionsService) List(ctx context.Context, params *ListParams, opts ...RequestOption) (*List[AccountAcquisition], error) {
	return call[List[AccountAcquisition]](ctx, (*service)(s), http.MethodGet, newRoute("/acquisitions"), params, nil, opts)
}

// Get fetches an account's acquisition record.
func (s *AccountAcquisitionsService) Get(ctx context.Context, accountID string, opts ...RequestOption) (*AccountAcquisition, error) {
	return call[AccountAcquisition](ctx, (*service)(s), http.MethodGet, newRoute("/accounts/%s/acquisition", accountID), nil, nil, opts)
}

// Update creates or replaces an account's acquisition record.
func (s *AccountAcquisitionsService) Update(ctx context.Context, accountID string, body *AccountAcquisitionUpdate, opts ...RequestOption) (*AccountAcquisition, error) {
	return call[AccountAcquisition](ctx, (*service)(s), http.MethodPut, newRoute("/accounts/%s/acquisition", accountID), nil, body, opts)
}

// Remove deletes an account's acquisition record.
func (s *AccountAcquisitionsService) Remove(ctx context.Context, accountID string, opts ...RequestOption) error {
	return exec(ctx, (*service)(s), http.MethodDelete, newRoute("/accounts/%s/acquisition", accountID), nil, nil, opts)
}
