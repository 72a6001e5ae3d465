package recurly

import (
	"context"
	"net/http"
	"time"
)

// AccountNotesService handles /accounts/{id}/notes.
type AccountNotesService service

// AccountNote is a free-form note attached to an account.
type AccountNote struct {
	ID        string     `json:"id"`
	Object    string     `json:"object"`
	AccountID string     `json:"account_id"`
	User      *UserMini  `json:"user"`
	Message   string     `json:"message"`
	CreatedAt *time.Time `json:"created_at"`
}

// List returns an account's notes.
func (s *AccountNotesService) List(ctx context.Context, accountID string, params *ListParams, opts ...RequestOption) (*List[AccountNote], error) {
	return call[List[AccountNote]](ctx, (*service)(s), http.MethodGet, newRoute("/accounts/%s/notes", accountID), params, nil, opts)
}

// Get fetches one note.
func (s *AccountNotesService) Get(ctx context.Context, accountID, noteID string, opts ...RequestOption) (*AccountNote, error) {
	return call[AccountNote](ctx, (*service)(s), http.MethodGet, newRoute("/accounts/%s/notes/%s", accountID, noteID), nil, nil, opts)
}
