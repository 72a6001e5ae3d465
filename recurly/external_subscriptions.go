package recurly

import (
	"context"
	"net/http"
	"time"
)

// ExternalSubscriptionsService handles /external_subscriptions.
type ExternalSubscriptionsService service

// ExternalSubscription is a subscription purchased through an app store.
type ExternalSubscription struct {
	ID                       string                    `json:"id"`
	Object                   string                    `json:"object"`
	Account                  *AccountMini              `json:"account"`
	ExternalProductReference *ExternalProductReference `json:"external_product_reference"`
	ExternalID               string                    `json:"external_id"`
	LastPurchased            *time.Time                `json:"last_purchased"`
	AutoRenew                bool                      `json:"auto_renew"`
	InGracePeriod            bool                      `json:"in_grace_period"`
	AppIdentifier            string                    `json:"app_identifier"`
	Quantity                 int                       `json:"quantity"`
	State                    string                    `json:"state"`
	Test                     bool                      `json:"test"`
	ActivatedAt              *time.Time                `json:"activated_at"`
	CanceledAt               *time.Time                `json:"canceled_at"`
	ExpiresAt                *time.Time                `json:"expires_at"`
	TrialStartedAt           *time.Time                `json:"trial_started_at"`
	TrialEndsAt              *time.Time                `json:"trial_ends_at"`
	CreatedAt                *time.Time                `json:"created_at"`
	UpdatedAt                *time.Time                `json:"updated_at"`
}

// ExternalSubscriptionCreate is the body of POST /external_subscriptions.
type ExternalSubscriptionCreate struct {
	Account                  AccountReference               `json:"account"`
	ExternalProductReference ExternalProductReferenceCreate `json:"external_product_reference"`
	ExternalID               string                         `json:"external_id,omitempty"`
	LastPurchased            *time.Time                     `json:"last_purchased,omitempty"`
	AutoRenew                *bool                          `json:"auto_renew,omitempty"`
	State                    string                         `json:"state,omitempty" validate:"omitempty,oneof=active canceled expired past_due paused"`
	AppIdentifier            string                         `json:"app_identifier,omitempty"`
	Quantity                 int                            `json:"quantity,omitempty" validate:"omitempty,min=0"`
	ActivatedAt              *time.Time                     `json:"activated_at,omitempty"`
	ExpiresAt                *time.Time                     `json:"expires_at,omitempty"`
	TrialStartedAt           *time.Time                     `json:"trial_started_at,omitempty"`
	TrialEndsAt              *time.Time                     `json:"trial_ends_at,omitempty"`
}

// ExternalSubscriptionUpdate is the body of PUT /external_subscriptions/{id}.
type ExternalSubscriptionUpdate struct {
	ExternalID     string     `json:"external_id,omitempty"`
	LastPurchased  *time.Time `json:"last_purchased,omitempty"`
	AutoRenew      *bool      `json:"auto_renew,omitempty"`
	State          string     `json:"state,omitempty" validate:"omitempty,oneof=active canceled expired past_due paused"`
	AppIdentifier  string     `json:"app_identifier,omitempty"`
	Quantity       int        `json:"quantity,omitempty" validate:"omitempty,min=0"`
	ActivatedAt    *time.Time `json:"activated_at,omitempty"`
	ExpiresAt      *time.Time `json:"expires_at,omitempty"`
	TrialStartedAt *time.Time `json:"trial_started_at,omitempty"`
	TrialEndsAt    *time.Time `json:"trial_ends_at,omitempty"`
}

// List returns the site's external subscriptions.
func (s *ExternalSubscriptionsService) List(ctx context.Context, params *ListParams, opts ...RequestOption) (*List[ExternalSubscription], error) {
	return call[List[ExternalSubscription]](ctx, (*service)(s), http.MethodGet, newRoute("/external_subscriptions"), params, nil, opts)
}

// ListForAccount returns an account's external subscriptions.
func (s *ExternalSubscriptionsService) ListForAccount(ctx context.Context, accountID string, params *ListParams, opts ...RequestOption) (*List[ExternalSubscription], error) {
	return call[List[ExternalSubscription]](ctx, (*service)(s), http.MethodGet, newRoute("/accounts/%s/external_subscriptions", accountID), params, nil, opts)
}

// Create records an external subscription.
func (s *ExternalSubscriptionsService) Create(ctx context.Context, body *ExternalSubscriptionCreate, opts ...RequestOption) (*ExternalSubscription, error) {
	return call[ExternalSubscription](ctx, (*service)(s), http.MethodPost, newRoute("/external_subscriptions"), nil, body, opts)
}

// Get fetches an external subscription.
func (s *ExternalSubscriptionsService) Get(ctx context.Context, subscriptionID string, opts ...RequestOption) (*ExternalSubscription, error) {
	return call[ExternalSubscription](ctx, (*service)(s), http.MethodGet, newRoute("/external_subscriptions/%s", subscriptionID), nil, nil, opts)
}

// Update modifies an external subscription.
func (s *ExternalSubscriptionsService) Update(ctx context.Context, subscriptionID string, body *ExternalSubscriptionUpdate, opts ...RequestOption) (*ExternalSubscription, error) {
	return call[ExternalSubscription](ctx, (*service)(s), http.MethodPut, newRoute("/external_subscriptions/%s", subscriptionID), nil, body, opts)
}
