package recurly

import (
	"context"
	"net/http"
	"time"
)

// GeneralLedgerAccountsService handles /general_ledger_accounts.
type GeneralLedgerAccountsService service

// GeneralLedgerAccount is a revenue or liability account used for
// revenue recognition.
type GeneralLedgerAccount struct {
	ID          string     `json:"id"`
	Object      string     `json:"object"`
	Code        string     `json:"code"`
	Description string     `json:"description"`
	AccountType string     `json:"account_type"`
	CreatedAt   *time.Time `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

// GeneralLedgerAccountCreate is the body of POST /general_ledger_accounts.
type GeneralLedgerAccountCreate struct {
	Code        string `json:"code" validate:"required,max=255"`
	Description string `json:"description,omitempty"`
	AccountType string `json:"account_type" validate:"required,oneof=liability revenue"`
}

// GeneralLedgerAccountUpdate is the body of PUT /general_ledger_accounts/{id}.
type GeneralLedgerAccountUpdate struct {
	Code        string `json:"code,omitempty" validate:"omitempty,max=255"`
	Description string `json:"description,omitempty"`
}

// GeneralLedgerAccountListParams filters general ledger accounts.
type GeneralLedgerAccountListParams struct {
	ListParams
	AccountType string `url:"account_type,omitempty" validate:"omitempty,oneof=liability revenue"`
}

// List returns the site's general ledger accounts.
func (s *GeneralLedgerAccountsService) List(ctx context.Context, params *GeneralLedgerAccountListParams, opts ...RequestOption) (*List[GeneralLedgerAccount], error) {
	return call[List[GeneralLedgerAccount]](ctx, (*service)(s), http.MethodGet, newRoute("/general_ledger_accounts"), params, nil, opts)
}

// Create creates a general ledger account.
func (s *GeneralLedgerAccountsService) Create(ctx context.Context, body *GeneralLedgerAccountCreate, opts ...RequestOption) (*GeneralLedgerAccount, error) {
	return call[GeneralLedgerAccount](ctx, (*service)(s), http.MethodPost, newRoute("/general_ledger_accounts"), nil, body, opts)
}

// Get fetches a general ledger account.
func (s *GeneralLedgerAccountsService) Get(ctx context.Context, accountID string, opts ...RequestOption) (*GeneralLedgerAccount, error) {
	return call[GeneralLedgerAccount](ctx, (*service)(s), http.MethodGet, newRoute("/general_ledger_accounts/%s", accountID), nil, nil, opts)
}

// Update modifies a general ledger account.
func (s *GeneralLedgerAccountsService) Update(ctx context.Context, accountID string, body *GeneralLedgerAccountUpdate, opts ...RequestOption) (*GeneralLedgerAccount, error) {
	return call[GeneralLedgerAccount](ctx, (*service)(s), http.MethodPut, newRoute("/general_ledger_accounts/%s", accountID), nil, body, opts)
}
