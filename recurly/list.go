package recurly

import "time"

// List is one page of results. Next holds the path of the following page
// when HasMore is true; the client never requests it on its own.
type List[T any] struct {
	Object  string `json:"object"`
	HasMore bool   `json:"has_more"`
	Next    string `json:"next"`
	Data    []T    `json:"data"`
}

// ListParams are the query parameters shared by every list endpoint.
type ListParams struct {
	IDs       []string   `url:"ids,comma,omitempty" validate:"omitempty,max=200"`
	Limit     int        `url:"limit,omitempty" validate:"omitempty,min=1,max=200"`
	Order     string     `url:"order,omitempty" validate:"omitempty,oneof=asc desc"`
	Sort      string     `url:"sort,omitempty" validate:"omitempty,oneof=created_at updated_at"`
	BeginTime *time.Time `url:"begin_time,omitempty"`
	EndTime   *time.Time `url:"end_time,omitempty"`
	// Cursor is the opaque value from a previous page's Next link.
	Cursor string `url:"cursor,omitempty"`
}

// StateParams filters list results by state.
type StateParams struct {
	ListParams
	State string `url:"state,omitempty"`
}

// AccountListParams filters account lists.
type AccountListParams struct {
	ListParams
	Email      string `url:"email,omitempty" validate:"omitempty,email"`
	Subscriber *bool  `url:"subscriber,omitempty"`
	PastDue    string `url:"past_due,omitempty" validate:"omitempty,oneof=true"`
}

// SubscriptionListParams filters subscription lists.
type SubscriptionListParams struct {
	ListParams
	State string `url:"state,omitempty" validate:"omitempty,oneof=active canceled expired future in_trial live"`
}

// InvoiceListParams filters invoice lists.
type InvoiceListParams struct {
	ListParams
	State string `url:"state,omitempty" validate:"omitempty,oneof=pending past_due paid failed"`
	Type  string `url:"type,omitempty" validate:"omitempty,oneof=charge credit legacy non-legacy"`
}

// LineItemListParams filters line item lists.
type LineItemListParams struct {
	ListParams
	Original string `url:"original,omitempty" validate:"omitempty,oneof=true false"`
	State    string `url:"state,omitempty" validate:"omitempty,oneof=pending invoiced"`
	Type     string `url:"type,omitempty" validate:"omitempty,oneof=charge credit"`
}

// TransactionListParams filters transaction lists.
type TransactionListParams struct {
	ListParams
	Type    string `url:"type,omitempty" validate:"omitempty,oneof=authorization capture payment purchase refund verify"`
	Success string `url:"success,omitempty" validate:"omitempty,oneof=true false"`
}

// PlanListParams filters plan and item lists.
type PlanListParams struct {
	ListParams
	State string `url:"state,omitempty" validate:"omitempty,oneof=active inactive"`
}

// EntitlementListParams filters entitlement lists.
type EntitlementListParams struct {
	ListParams
	State string `url:"state,omitempty" validate:"omitempty,oneof=active inactive"`
}

// TerminateParams control how a subscription is terminated.
type TerminateParams struct {
	Refund string `url:"refund,omitempty" validate:"omitempty,oneof=full partial none"`
	Charge *bool  `url:"charge,omitempty"`
}

// RefundQuery is used by DELETE endpoints that can refund on removal.
type RefundQuery struct {
	Refund string `url:"refund,omitempty" validate:"omitempty,oneof=full partial none"`
}
