package recurly

import "time"

// Address is a postal address.
type Address struct {
	Phone      string `json:"phone,omitempty"`
	Street1    string `json:"street1,omitempty"`
	Street2    string `json:"street2,omitempty"`
	City       string `json:"city,omitempty"`
	Region     string `json:"region,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	Country    string `json:"country,omitempty" validate:"omitempty,len=2"`
	GeoCode    string `json:"geo_code,omitempty"`
}

// CustomField is a site-defined name/value pair.
type CustomField struct {
	Name  string `json:"name" validate:"required"`
	Value string `json:"value"`
}

// Pricing is an amount in one currency.
type Pricing struct {
	Currency     string  `json:"currency" validate:"required,len=3"`
	UnitAmount   float64 `json:"unit_amount"`
	TaxInclusive *bool   `json:"tax_inclusive,omitempty"`
}

// PlanPricing is the per-currency setup and unit price of a plan.
type PlanPricing struct {
	Currency     string  `json:"currency" validate:"required,len=3"`
	SetupFee     float64 `json:"setup_fee,omitempty"`
	UnitAmount   float64 `json:"unit_amount"`
	TaxInclusive *bool   `json:"tax_inclusive,omitempty"`
}

// Tier is one step in tiered pricing.
type Tier struct {
	EndingQuantity int       `json:"ending_quantity,omitempty"`
	Currencies     []Pricing `json:"currencies,omitempty" validate:"omitempty,dive"`
}

// TaxInfo describes the tax applied to a charge or invoice.
type TaxInfo struct {
	Type    string      `json:"type"`
	Region  string      `json:"region"`
	Rate    float64     `json:"rate"`
	Details []TaxDetail `json:"tax_details,omitempty"`
}

// TaxDetail is one jurisdiction's share of the tax.
type TaxDetail struct {
	Type   string  `json:"type"`
	Region string  `json:"region"`
	Rate   float64 `json:"rate"`
	Tax    float64 `json:"tax"`
	Name   string  `json:"name,omitempty"`
	Level  string  `json:"level,omitempty"`
}

// AccountMini is the short account form embedded in other resources.
type AccountMini struct {
	ID              string `json:"id"`
	Object          string `json:"object"`
	Code            string `json:"code"`
	Email           string `json:"email"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Company         string `json:"company"`
	ParentAccountID string `json:"parent_account_id,omitempty"`
	BillTo          string `json:"bill_to,omitempty"`
}

// AccountReference points at an existing account by ID or code.
type AccountReference struct {
	ID   string `json:"id,omitempty"`
	Code string `json:"code,omitempty" validate:"required_without=ID"`
}

// PlanMini is the short plan form.
type PlanMini struct {
	ID     string `json:"id"`
	Object string `json:"object"`
	Code   string `json:"code"`
	Name   string `json:"name"`
}

// ItemMini is the short item form.
type ItemMini struct {
	ID          string `json:"id"`
	Object      string `json:"object"`
	Code        string `json:"code"`
	State       string `json:"state"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// InvoiceMini is the short invoice form.
type InvoiceMini struct {
	ID               string `json:"id"`
	Object           string `json:"object"`
	Number           string `json:"number"`
	BusinessEntityID string `json:"business_entity_id,omitempty"`
	Type             string `json:"type"`
	State            string `json:"state"`
}

// SubscriptionMini is the short subscription form.
type SubscriptionMini struct {
	ID     string `json:"id"`
	Object string `json:"object"`
	UUID   string `json:"uuid"`
	State  string `json:"state"`
}

// TransactionMini is the short transaction form.
type TransactionMini struct {
	ID     string  `json:"id"`
	Object string  `json:"object"`
	UUID   string  `json:"uuid"`
	Amount float64 `json:"amount"`
	Status string  `json:"status"`
}

// UserMini identifies the Recurly user who performed an action.
type UserMini struct {
	ID        string `json:"id"`
	Object    string `json:"object"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Timestamps are the audit fields most resources share.
type Timestamps struct {
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}
