// Package recurly is a typed client for the Recurly v2021-02-25 REST API.
//
// Every service method maps to exactly one HTTP request. The client adds
// authentication and versioning headers, checks the status code, and
// decodes the JSON response. It never retries and never follows
// pagination links on its own: list methods return a single page and the
// caller decides whether to request the next one.
//
//	client, err := recurly.New(recurly.Config{APIKey: key, Region: recurly.RegionEU})
//	if err != nil {
//		return err
//	}
//	account, err := client.Accounts.Get(ctx, recurly.Code("acme"))
package recurly

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/alvinosh/nestjs-recurly-sub000/adapters/idgen"
	"github.com/alvinosh/nestjs-recurly-sub000/ports"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

const (
	// APIVersion is the API version pinned by the Accept header.
	APIVersion = "v2021-02-25"

	// Version is the library version reported in the User-Agent header.
	Version = "1.4.0"

	acceptVersioned = "application/vnd.recurly." + APIVersion
	acceptPDF       = "application/pdf"

	defaultTimeout = 30 * time.Second
)

// Region selects the regional API endpoint.
type Region string

const (
	RegionUS Region = "us"
	RegionEU Region = "eu"
)

var regionURLs = map[Region]string{
	RegionUS: "https://v3.recurly.com",
	RegionEU: "https://v3.eu.recurly.com",
}

// ParseRegion accepts "us" or "eu" in any case, with surrounding space.
func ParseRegion(s string) (Region, error) {
	r := Region(strings.ToLower(strings.TrimSpace(s)))
	if err := r.validate(); err != nil {
		return "", fmt.Errorf("region must be 'us' or 'eu', got %q", s)
	}
	return r, nil
}

func (r Region) validate() error {
	if _, ok := regionURLs[r]; !ok {
		return fmt.Errorf("region must be 'us' or 'eu', got %q", r)
	}
	return nil
}

// Config holds the settings resolved once per client.
type Config struct {
	// APIKey is the site's private API key.
	APIKey string
	// AcceptLanguage is sent as Accept-Language when non-empty.
	AcceptLanguage string
	// Region defaults to RegionUS.
	Region Region
	// BaseURL replaces the regional endpoint entirely (proxies, tests).
	BaseURL string
	// Timeout defaults to 30s. Ignored when WithHTTPClient is used.
	Timeout time.Duration
}

// Validate reports the first problem with the configuration.
func (c Config) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return fmt.Errorf("api key is required")
	}
	if c.Region != "" {
		if err := c.Region.validate(); err != nil {
			return err
		}
	}
	if c.BaseURL != "" {
		u, err := url.Parse(c.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("base url %q is not an absolute URL", c.BaseURL)
		}
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative")
	}
	return nil
}

// Client talks to the Recurly API. It is safe for concurrent use.
type Client struct {
	cfg         Config
	httpClient  *http.Client
	logger      zerolog.Logger
	observer    ports.RequestObserver
	idempotency ports.IDGenerator
	userAgent   string
	validate    *validator.Validate

	common service

	AccountAcquisitions    *AccountAcquisitionsService
	AccountNotes           *AccountNotesService
	Accounts               *AccountsService
	AddOns                 *AddOnsService
	AutomatedExports       *AutomatedExportsService
	BillingInfo            *BillingInfoService
	BillingInfos           *BillingInfosService
	BusinessEntities       *BusinessEntitiesService
	CouponRedemptions      *CouponRedemptionsService
	Coupons                *CouponsService
	CreditPayments         *CreditPaymentsService
	CustomFieldDefinitions *CustomFieldDefinitionsService
	DunningCampaigns       *DunningCampaignsService
	Entitlements           *EntitlementsService
	ExternalAccounts       *ExternalAccountsService
	ExternalInvoices       *ExternalInvoicesService
	ExternalPaymentPhases  *ExternalPaymentPhasesService
	ExternalProducts       *ExternalProductsService
	ExternalSubscriptions  *ExternalSubscriptionsService
	GeneralLedgerAccounts  *GeneralLedgerAccountsService
	GiftCards              *GiftCardsService
	InvoiceTemplates       *InvoiceTemplatesService
	Invoices               *InvoicesService
	Items                  *ItemsService
	LineItems              *LineItemsService
	MeasuredUnits          *MeasuredUnitsService
	PerformanceObligations *PerformanceObligationsService
	Plans                  *PlansService
	PriceSegments          *PriceSegmentsService
	Purchases              *PurchasesService
	ShippingAddresses      *ShippingAddressesService
	ShippingMethods        *ShippingMethodsService
	Sites                  *SitesService
	SubscriptionChanges    *SubscriptionChangesService
	Subscriptions          *SubscriptionsService
	Transactions           *TransactionsService
	UniqueCouponCodes      *UniqueCouponCodesService
	Usage                  *UsageService
}

type service struct {
	client *Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger sets the logger. Requests are logged at debug level.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithObserver registers a callback for every completed request.
func WithObserver(o ports.RequestObserver) Option {
	return func(c *Client) {
		c.observer = o
	}
}

// WithUserAgent replaces the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithIdempotencyKeys sets the generator used for POST Idempotency-Key headers.
func WithIdempotencyKeys(g ports.IDGenerator) Option {
	return func(c *Client) {
		if g != nil {
			c.idempotency = g
		}
	}
}

// New validates cfg and returns a ready client.
func New(cfg Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid recurly config: %w", err)
	}
	if cfg.Region == "" {
		cfg.Region = RegionUS
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	c := &Client{
		cfg:         cfg,
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		logger:      zerolog.Nop(),
		idempotency: idgen.UUID{},
		userAgent:   "recurly-go/" + Version,
		validate:    newValidator(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.common.client = c
	c.AccountAcquisitions = (*AccountAcquisitionsService)(&c.common)
	c.AccountNotes = (*AccountNotesService)(&c.common)
	c.Accounts = (*AccountsService)(&c.common)
	c.AddOns = (*AddOnsService)(&c.common)
	c.AutomatedExports = (*AutomatedExportsService)(&c.common)
	c.BillingInfo = (*BillingInfoService)(&c.common)
	c.BillingInfos = (*BillingInfosService)(&c.common)
	c.BusinessEntities = (*BusinessEntitiesService)(&c.common)
	c.CouponRedemptions = (*CouponRedemptionsService)(&c.common)
	c.Coupons = (*CouponsService)(&c.common)
	c.CreditPayments = (*CreditPaymentsService)(&c.common)
	c.CustomFieldDefinitions = (*CustomFieldDefinitionsService)(&c.common)
	c.DunningCampaigns = (*DunningCampaignsService)(&c.common)
	c.Entitlements = (*EntitlementsService)(&c.common)
	c.ExternalAccounts = (*ExternalAccountsService)(&c.common)
	c.ExternalInvoices = (*ExternalInvoicesService)(&c.common)
	c.ExternalPaymentPhases = (*ExternalPaymentPhasesService)(&c.common)
	c.ExternalProducts = (*ExternalProductsService)(&c.common)
	c.ExternalSubscriptions = (*ExternalSubscriptionsService)(&c.common)
	c.GeneralLedgerAccounts = (*GeneralLedgerAccountsService)(&c.common)
	c.GiftCards = (*GiftCardsService)(&c.common)
	c.InvoiceTemplates = (*InvoiceTemplatesService)(&c.common)
	c.Invoices = (*InvoicesService)(&c.common)
	c.Items = (*ItemsService)(&c.common)
	c.LineItems = (*LineItemsService)(&c.common)
	c.MeasuredUnits = (*MeasuredUnitsService)(&c.common)
	c.PerformanceObligations = (*PerformanceObligationsService)(&c.common)
	c.Plans = (*PlansService)(&c.common)
	c.PriceSegments = (*PriceSegmentsService)(&c.common)
	c.Purchases = (*PurchasesService)(&c.common)
	c.ShippingAddresses = (*ShippingAddressesService)(&c.common)
	c.ShippingMethods = (*ShippingMethodsService)(&c.common)
	c.Sites = (*SitesService)(&c.common)
	c.SubscriptionChanges = (*SubscriptionChangesService)(&c.common)
	c.Subscriptions = (*SubscriptionsService)(&c.common)
	c.Transactions = (*TransactionsService)(&c.common)
	c.UniqueCouponCodes = (*UniqueCouponCodesService)(&c.common)
	c.Usage = (*UsageService)(&c.common)

	return c, nil
}

// Config returns the resolved configuration.
func (c *Client) Config() Config {
	return c.cfg
}

// BaseURL returns the endpoint requests are sent to when no per-call
// region override is given.
func (c *Client) BaseURL() string {
	return c.baseURL("")
}

// baseURL resolves the endpoint. An explicit BaseURL always wins, then the
// per-call region, then the configured region. do rejects unknown
// per-call regions before this is reached.
func (c *Client) baseURL(override Region) string {
	if c.cfg.BaseURL != "" {
		return c.cfg.BaseURL
	}
	if u, ok := regionURLs[override]; ok {
		return u
	}
	return regionURLs[c.cfg.Region]
}

// Code formats an identifier so the API looks the resource up by its code
// instead of its ID, e.g. Code("acme") == "code-acme".
func Code(code string) string {
	return "code-" + code
}
