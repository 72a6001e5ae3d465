package recurly

import (
	"context"
	"net/http"
	"time"
)

// DunningCampaignsService handles /dunning_campaigns.
type DunningCampaignsService service

// DunningCampaign is a schedule of payment retries and reminder emails.
type DunningCampaign struct {
	ID              string         `json:"id"`
	Object          string         `json:"object"`
	Code            string         `json:"code"`
	Name            string         `json:"name"`
	Description     string         `json:"description"`
	DefaultCampaign bool           `json:"default_campaign"`
	DunningCycles   []DunningCycle `json:"dunning_cycles"`
	CreatedAt       *time.Time     `json:"created_at"`
	UpdatedAt       *time.Time     `json:"updated_at"`
	DeletedAt       *time.Time     `json:"deleted_at"`
}

// DunningCycle is the dunning configuration for one collection method.
type DunningCycle struct {
	Type                         string `json:"type"`
	AppliesToManualTrial         bool   `json:"applies_to_manual_trial"`
	FirstCommunicationInterval   int    `json:"first_communication_interval"`
	SendImmediatelyOnHardDecline bool   `json:"send_immediately_on_hard_decline"`
	TotalDunningDays             int    `json:"total_dunning_days"`
	TotalRecyclingDays           int    `json:"total_recycling_days"`
	Version                      int    `json:"version"`
	ExpireSubscription           bool   `json:"expire_subscription"`
	FailInvoice                  bool   `json:"fail_invoice"`
}

// DunningCampaignsBulkUpdate assigns a campaign to many plans at once.
type DunningCampaignsBulkUpdate struct {
	PlanCodes []string `json:"plan_codes,omitempty" validate:"omitempty,max=200"`
	PlanIDs   []string `json:"plan_ids,omitempty" validate:"omitempty,max=200"`
}

// DunningCampaignsBulkUpdateResponse lists the plans that were updated.
type DunningCampaignsBulkUpdateResponse struct {
	Object string     `json:"object"`
	Plans  []PlanMini `json:"plans"`
}

// List returns the site's dunning campaigns.
func (s *DunningCampaignsService) List(ctx context.Context, params *ListParams, opts ...RequestOption) (*List[DunningCampaign], error) {
	return call[List[DunningCampaign]](ctx, (*service)(s), http.MethodGet, newRoute("/dunning_campaigns"), params, nil, opts)
}

// Get fetches a dunning campaign.
func (s *DunningCampaignsService) Get(ctx context.Context, campaignID string, opts ...RequestOption) (*DunningCampaign, error) {
	return call[DunningCampaign](ctx, (*service)(s), http.MethodGet, newRoute("/dunning_campaigns/%s", campaignID), nil, nil, opts)
}

// BulkUpdate assigns the campaign to the given plans.
func (s *DunningCampaignsService) BulkUpdate(ctx context.Context, campaignID string, body *DunningCampaignsBulkUpdate, opts ...RequestOption) (*DunningCampaignsBulkUpdateResponse, error) {
	return call[DunningCampaignsBulkUpdateResponse](ctx, (*service)(s), http.MethodPut, newRoute("/dunning_campaigns/%s/bulk_update", campaignID), nil, body, opts)
}
