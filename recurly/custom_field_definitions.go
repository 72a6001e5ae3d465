package recurly

import (
	"context"
	"net/http"
	"time"
)

// CustomFieldDefinitionsService handles /custom_field_definitions.
type CustomFieldDefinitionsService service

// CustomFieldDefinition declares a custom field for a resource type.
type CustomFieldDefinition struct {
	ID          string     `json:"id"`
	Object      string     `json:"object"`
	RelatedType string     `json:"related_type"`
	Name        string     `json:"name"`
	UserAccess  string     `json:"user_access"`
	DisplayName string     `json:"display_name"`
	Tooltip     string     `json:"tooltip"`
	CreatedAt   *time.Time `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at"`
}

// CustomFieldDefinitionListParams filters definitions by related type.
type CustomFieldDefinitionListParams struct {
	ListParams
	RelatedType string `url:"related_type,omitempty" validate:"omitempty,oneof=account item plan subscription charge"`
}

// List returns the site's custom field definitions.
func (s *CustomFieldDefinitionsService) List(ctx context.Context, params *CustomFieldDefinitionListParams, opts ...RequestOption) (*List[CustomFieldDefinition], error) {
	return call[List[CustomFieldDefinition]](ctx, (*service)(s), http.MethodGet, newRoute("/custom_field_definitions"), params, nil, opts)
}

// Get fetches one definition.
func (s *CustomFieldDefinitionsService) Get(ctx context.Context, definitionID string, opts ...RequestOption) (*CustomFieldDefinition, error) {
	return call[CustomFieldDefinition](ctx, (*service)(s), http.MethodGet, newRoute("/custom_field_definitions/%s", definitionID), nil, nil, opts)
}
