package recurly

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Error types returned in the "type" field of API error documents.
const (
	ErrorTypeBadRequest      = "bad_request"
	ErrorTypeUnauthorized    = "unauthorized"
	ErrorTypeForbidden       = "forbidden"
	ErrorTypeNotFound        = "not_found"
	ErrorTypeValidation      = "validation"
	ErrorTypeTransaction     = "transaction"
	ErrorTypeRateLimited     = "rate_limited"
	ErrorTypeInternalServer  = "internal_server_error"
	ErrorTypeServiceNotAvail = "service_unavailable"
	ErrorTypeUnknown         = "unknown"
)

// APIError is returned for every non-2xx response.
type APIError struct {
	StatusCode       int               `json:"-"`
	RequestID        string            `json:"-"`
	Type             string            `json:"type"`
	Message          string            `json:"message"`
	Params           []ErrorParam      `json:"params,omitempty"`
	TransactionError *TransactionError `json:"transaction_error,omitempty"`
}

// ErrorParam points at a request field the API rejected.
type ErrorParam struct {
	Param   string `json:"param"`
	Message string `json:"message"`
}

// TransactionError describes a declined or failed payment.
type TransactionError struct {
	Object                  string `json:"object"`
	TransactionID           string `json:"transaction_id"`
	Category                string `json:"category"`
	Code                    string `json:"code"`
	DeclineCode             string `json:"decline_code"`
	MerchantAdvice          string `json:"merchant_advice"`
	Message                 string `json:"message"`
	ThreeDSecureActionToken string `json:"three_d_secure_action_token_id"`
}

func (e *APIError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "recurly: %d %s: %s", e.StatusCode, e.Type, e.Message)
	for _, p := range e.Params {
		fmt.Fprintf(&b, "; %s %s", p.Param, p.Message)
	}
	if e.RequestID != "" {
		fmt.Fprintf(&b, " (request %s)", e.RequestID)
	}
	return b.String()
}

func errorTypeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrorTypeBadRequest
	case http.StatusUnauthorized:
		return ErrorTypeUnauthorized
	case http.StatusForbidden:
		return ErrorTypeForbidden
	case http.StatusNotFound:
		return ErrorTypeNotFound
	case http.StatusUnprocessableEntity:
		return ErrorTypeValidation
	case http.StatusTooManyRequests:
		return ErrorTypeRateLimited
	case http.StatusInternalServerError:
		return ErrorTypeInternalServer
	case http.StatusServiceUnavailable:
		return ErrorTypeServiceNotAvail
	default:
		return ErrorTypeUnknown
	}
}

func statusIs(err error, status int) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == status
	}
	return false
}

// IsNotFound returns true if the API answered 404.
func IsNotFound(err error) bool {
	return statusIs(err, http.StatusNotFound)
}

// IsValidation returns true if the API rejected the request body (422).
func IsValidation(err error) bool {
	return statusIs(err, http.StatusUnprocessableEntity)
}

// IsUnauthorized returns true for a rejected API key (401).
func IsUnauthorized(err error) bool {
	return statusIs(err, http.StatusUnauthorized)
}

// IsRateLimited returns true when the API answered 429. The client does
// not wait or retry; callers decide what to do.
func IsRateLimited(err error) bool {
	return statusIs(err, http.StatusTooManyRequests)
}

// -----------------------------------------------------------------------------
// Local request validation
// -----------------------------------------------------------------------------

// FieldError names one field that failed local validation.
type FieldError struct {
	Field string
	Rule  string
	Param string
}

// ValidationError is returned before any network I/O when a request body
// or params struct fails its `validate` tags.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		if f.Param != "" {
			parts[i] = fmt.Sprintf("%s failed %s=%s", f.Field, f.Rule, f.Param)
		} else {
			parts[i] = fmt.Sprintf("%s failed %s", f.Field, f.Rule)
		}
	}
	return "invalid request: " + strings.Join(parts, ", ")
}

// ErrMissingBody is returned when a method that requires a body gets nil.
var ErrMissingBody = errors.New("request body is required")

// ErrMissingID is returned when a path identifier is empty.
var ErrMissingID = errors.New("resource identifier is required")

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "url"} {
			name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return f.Name
	})
	return v
}

// validateRequest checks struct values against their validate tags.
// nil interfaces and non-struct values pass; typed nil pointers do not.
func (c *Client) validateRequest(ctx context.Context, v any) error {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return ErrMissingBody
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}

	err := c.validate.StructCtx(ctx, v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate request: %w", err)
	}
	out := &ValidationError{Fields: make([]FieldError, len(verrs))}
	for i, fe := range verrs {
		out.Fields[i] = FieldError{
			Field: fieldPath(fe.Namespace()),
			Rule:  fe.Tag(),
			Param: fe.Param(),
		}
	}
	return out
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// fieldPath turns "AccountListParams.ListParams.limit" into "limit". The root
// type and embedded struct names are not part of the wire name.
func fieldPath(ns string) string {
	parts := strings.Split(ns, ".")
	out := parts[:0]
	for _, p := range parts[1:] {
		if p != "" && unicode.IsUpper(rune(p[0])) {
			continue
		}
		out = append(out, p)
	}
	return strings.Join(out, ".")
}
