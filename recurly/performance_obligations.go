package recurly

import (
	"context"
	"net/http"
	"time"
)

// PerformanceObligationsService handles /performance_obligations.
type PerformanceObligationsService service

// PerformanceObligation is a revenue recognition obligation.
type PerformanceObligation struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// List returns the site's performance obligations.
func (s *PerformanceObligationsService) List(ctx context.Context, opts ...RequestOption) (*List[PerformanceObligation], error) {
	return call[List[PerformanceObligation]](ctx, (*service)(s), http.MethodGet, newRoute("/performance_obligations"), nil, nil, opts)
}

// Get fetches a performance obligation.
func (s *PerformanceObligationsService) Get(ctx context.Context, obligationID string, opts ...RequestOption) (*PerformanceObligation, error) {
	return call[PerformanceObligation](ctx, (*service)(s), http.MethodGet, newRoute("/performance_obligations/%s", obligationID), nil, nil, opts)
}
