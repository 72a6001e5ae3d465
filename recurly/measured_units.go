package recurly

import (
	"context"
	"net/http"
	"time"
)

// MeasuredUnitsService handles /measured_units.
type MeasuredUnitsService service

// MeasuredUnit names the unit usage-based add-ons are billed in.
type MeasuredUnit struct {
	ID          string     `json:"id"`
	Object      string     `json:"object"`
	Name        string     `json:"name"`
	DisplayName string     `json:"display_name"`
	State       string     `json:"state"`
	Description string     `json:"description"`
	CreatedAt   *time.Time `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at"`
}

// MeasuredUnitCreate is the body of POST /measured_units.
type MeasuredUnitCreate struct {
	Name        string `json:"name" validate:"required,max=255"`
	DisplayName string `json:"display_name" validate:"required,max=50"`
	Description string `json:"description,omitempty"`
}

// MeasuredUnitUpdate is the body of PUT /measured_units/{id}.
type MeasuredUnitUpdate struct {
	Name        string `json:"name,omitempty" validate:"omitempty,max=255"`
	DisplayName string `json:"display_name,omitempty" validate:"omitempty,max=50"`
	Description string `json:"description,omitempty"`
}

// List returns the site's measured units.
func (s *MeasuredUnitsService) List(ctx context.Context, params *StateParams, opts ...RequestOption) (*List[MeasuredUnit], error) {
	return call[List[MeasuredUnit]](ctx, (*service)(s), http.MethodGet, newRoute("/measured_units"), params, nil, opts)
}

// Create creates a measured unit.
func (s *MeasuredUnitsService) Create(ctx context.Context, body *MeasuredUnitCreate, opts ...RequestOption) (*MeasuredUnit, error) {
	return call[MeasuredUnit](ctx, (*service)(s), http.MethodPost, newRoute("/measured_units"), nil, body, opts)
}

// Get fetches a measured unit.
func (s *MeasuredUnitsService) Get(ctx context.Context, unitID string, opts ...RequestOption) (*MeasuredUnit, error) {
	return call[MeasuredUnit](ctx, (*service)(s), http.MethodGet, newRoute("/measured_units/%s", unitID), nil, nil, opts)
}

// Update modifies a measured unit.
func (s *MeasuredUnitsService) Update(ctx context.Context, unitID string, body *MeasuredUnitUpdate, opts ...RequestOption) (*MeasuredUnit, error) {
	return call[MeasuredUnit](ctx, (*service)(s), http.MethodPut, newRoute("/measured_units/%s", unitID), nil, body, opts)
}

// Remove deletes a measured unit.
func (s *MeasuredUnitsService) Remove(ctx context.Context, unitID string, opts ...RequestOption) (*MeasuredUnit, error) {
	return call[MeasuredUnit](ctx, (*service)(s), http.MethodDelete, newRoute("/measured_units/%s", unitID), nil, nil, opts)
}
