package recurly

import (
	"context"
	"net/http"
	"time"
)

// SitesService handles /sites.
type SitesService service

// Site is a Recurly site the API key can reach.
type Site struct {
	ID           string        `json:"id"`
	Object       string        `json:"object"`
	Subdomain    string        `json:"subdomain"`
	PublicAPIKey string        `json:"public_api_key"`
	Mode         string        `json:"mode"`
	Address      *Address      `json:"address"`
	Settings     *SiteSettings `json:"settings"`
	Features     []string      `json:"features"`
	CreatedAt    *time.Time    `json:"created_at"`
	UpdatedAt    *time.Time    `json:"updated_at"`
	DeletedAt    *time.Time    `json:"deleted_at"`
}

// SiteSettings are the site-wide billing settings.
type SiteSettings struct {
	BillingAddressRequirement string   `json:"billing_address_requirement"`
	AcceptedCurrencies        []string `json:"accepted_currencies"`
	DefaultCurrency           string   `json:"default_currency"`
}

// SiteListParams filters site lists.
type SiteListParams struct {
	ListParams
	State string `url:"state,omitempty" validate:"omitempty,oneof=active inactive"`
}

// List returns the sites the API key can access.
func (s *SitesService) List(ctx context.Context, params *SiteListParams, opts ...RequestOption) (*List[Site], error) {
	return call[List[Site]](ctx, (*service)(s), http.MethodGet, newRoute("/sites"), params, nil, opts)
}

// Get fetches a site by ID or "subdomain-<name>".
func (s *SitesService) Get(ctx context.Context, siteID string, opts ...RequestOption) (*Site, error) {
	return call[Site](ctx, (*service)(s), http.MethodGet, newRoute("/sites/%s", siteID), nil, nil, opts)
}
