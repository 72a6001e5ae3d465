package recurly

import (
	"context"
	"net/http"
	"time"
)

// ExternalAccountsService handles /accounts/{id}/external_accounts.
type ExternalAccountsService service

// ExternalAccount links a Recurly account to an app store identity.
type ExternalAccount struct {
	ID                     string     `json:"id"`
	Object                 string     `json:"object"`
	ExternalAccountCode    string     `json:"external_account_code"`
	ExternalConnectionType string     `json:"external_connection_type"`
	CreatedAt              *time.Time `json:"created_at"`
	UpdatedAt              *time.Time `json:"updated_at"`
}

// ExternalAccountCreate is the body used to create or update a link.
type ExternalAccountCreate struct {
	ExternalAccountCode    string `json:"external_account_code" validate:"required"`
	ExternalConnectionType string `json:"external_connection_type" validate:"required"`
}

// List returns an account's external accounts.
func (s *ExternalAccountsService) List(ctx context.Context, accountID string, opts ...RequestOption) (*List[ExternalAccount], error) {
	return call[List[ExternalAccount]](ctx, (*service)(s), http.MethodGet, newRoute("/accounts/%s/external_accounts", accountID), nil, nil, opts)
}

// Create links an external account.
func (s *ExternalAccountsService) Create(ctx context.Context, accountID string, body *ExternalAccountCreate, opts ...RequestOption) (*ExternalAccount, error) {
	return call[ExternalAccount](ctx, (*service)(s), http.MethodPost, newRoute("/accounts/%s/external_accounts", accountID), nil, body, opts)
}

// Get fetches one external account.
func (s *ExternalAccountsService) Get(ctx context.Context, accountID, externalAccountID string, opts ...RequestOption) (*ExternalAccount, error) {
	return call[ExternalAccount](ctx, (*service)(s), http.MethodGet, newRoute("/accounts/%s/external_accounts/%s", accountID, externalAccountID), nil, nil, opts)
}

// Update modifies one external account.
func (s *ExternalAccountsService) Update(ctx context.Context, accountID, externalAccountID string, body *ExternalAccountCreate, opts ...RequestOption) (*ExternalAccount, error) {
	return call[ExternalAccount](ctx, (*service)(s), http.MethodPut, newRoute("/accounts/%s/external_accounts/%s", accountID, externalAccountID), nil, body, opts)
}

// Remove unlinks an external account.
func (s *ExternalAccountsService) Remove(ctx context.Context, accountID, externalAccountID string, opts ...RequestOption) (*ExternalAccount, error) {
	return call[ExternalAccount](ctx, (*service)(s), http.MethodDelete, newRoute("/accounts/%s/external_accounts/%s", accountID, externalAccountID), nil, nil, opts)
}
