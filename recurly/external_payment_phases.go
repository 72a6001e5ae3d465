package recurly

import (
	"context"
	"net/http"
	"time"
)

// ExternalPaymentPhasesService handles the offer phases of external
// subscriptions.
type ExternalPaymentPhasesService service

// ExternalPaymentPhase is a pricing phase such as an introductory offer.
type ExternalPaymentPhase struct {
	ID                         string     `json:"id"`
	Object                     string     `json:"object"`
	StartedAt                  *time.Time `json:"started_at"`
	EndsAt                     *time.Time `json:"ends_at"`
	StartingBillingPeriodIndex int        `json:"starting_billing_period_index"`
	EndingBillingPeriodIndex   int        `json:"ending_billing_period_index"`
	OfferType                  string     `json:"offer_type"`
	OfferName                  string     `json:"offer_name"`
	PeriodCount                int        `json:"period_count"`
	PeriodLength               string     `json:"period_length"`
	Amount                     string     `json:"amount"`
	Currency                   string     `json:"currency"`
	CreatedAt                  *time.Time `json:"created_at"`
	UpdatedAt                  *time.Time `json:"updated_at"`
}

// List returns an external subscription's payment phases.
func (s *ExternalPaymentPhasesService) List(ctx context.Context, subscriptionID string, params *ListParams, opts ...RequestOption) (*List[ExternalPaymentPhase], error) {
	return call[List[ExternalPaymentPhase]](ctx, (*service)(s), http.MethodGet, newRoute("/external_subscriptions/%s/external_payment_phases", subscriptionID), params, nil, opts)
}

// Get fetches one payment phase.
func (s *ExternalPaymentPhasesService) Get(ctx context.Context, subscriptionID, phaseID string, opts ...RequestOption) (*ExternalPaymentPhase, error) {
	return call[ExternalPaymentPhase](ctx, (*service)(s), http.MethodGet, newRoute("/external_subscriptions/%s/external_payment_phases/%s", subscriptionID, phaseID), nil, nil, opts)
}
