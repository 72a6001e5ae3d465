package recurly

import (
	"context"
	"net/http"
	"time"
)

// PriceSegmentsService handles /price_segments.
type PriceSegmentsService service

// PriceSegment groups customers that share a price list.
type PriceSegment struct {
	ID        string     `json:"id"`
	Object    string     `json:"object"`
	Code      string     `json:"code"`
	Name      string     `json:"name"`
	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// List returns the site's price segments.
func (s *PriceSegmentsService) List(ctx context.Context, params *ListParams, opts ...RequestOption) (*List[PriceSegment], error) {
	return call[List[PriceSegment]](ctx, (*service)(s), http.MethodGet, newRoute("/price_segments"), params, nil, opts)
}

// Get fetches a price segment.
func (s *PriceSegmentsService) Get(ctx context.Context, segmentID string, opts ...RequestOption) (*PriceSegment, error) {
	return call[PriceSegment](ctx, (*service)(s), http.MethodGet, newRoute("/price_segments/%s", segmentID), nil, nil, opts)
}
