package recurly

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alvinosh/nestjs-recurly-sub000/adapters/idgen"
	"github.com/rs/zerolog"
)

// capture records the requests a test server receives.
type capture struct {
	mu       sync.Mutex
	requests []*http.Request
	bodies   []string
}

func (c *capture) record(r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.requests = append(c.requests, r)
	c.bodies = append(c.bodies, string(body))
}

func (c *capture) last(t *testing.T) (*http.Request, string) {
	t.Helper()
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.requests) == 0 {
		t.Fatal("expected a request to reach the server")
	}
	n := len(c.requests) - 1
	return c.requests[n], c.bodies[n]
}

func (c *capture) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.requests)
}

// newTestClient starts a server that answers every request with status
// and body and returns a client pointed at it.
func newTestClient(t *testing.T, status int, body string, opts ...Option) (*Client, *capture) {
	t.Helper()
	cap := &capture{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cap.record(r)
		w.Header().Set("X-Request-Id", "req-123")
		w.WriteHeader(status)
		io.WriteString(w, body)
	}))
	t.Cleanup(server.Close)

	client, err := New(Config{APIKey: "test-key", BaseURL: server.URL}, opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return client, cap
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "minimal", cfg: Config{APIKey: "k"}},
		{name: "eu region", cfg: Config{APIKey: "k", Region: RegionEU}},
		{name: "custom base url", cfg: Config{APIKey: "k", BaseURL: "http://localhost:8080"}},
		{name: "missing key", cfg: Config{}, wantErr: "api key is required"},
		{name: "blank key", cfg: Config{APIKey: "   "}, wantErr: "api key is required"},
		{name: "unknown region", cfg: Config{APIKey: "k", Region: "ap"}, wantErr: "region must be"},
		{name: "relative base url", cfg: Config{APIKey: "k", BaseURL: "/v3"}, wantErr: "not an absolute URL"},
		{name: "negative timeout", cfg: Config{APIKey: "k", Timeout: -time.Second}, wantErr: "timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestNew_Defaults(t *testing.T) {
	client, err := New(Config{APIKey: "k", BaseURL: "https://proxy.example.com/"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	cfg := client.Config()
	if cfg.Region != RegionUS {
		t.Errorf("Region = %s, want %s", cfg.Region, RegionUS)
	}
	if cfg.Timeout != defaultTimeout {
		t.Errorf("Timeout = %v, want %v", cfg.Timeout, defaultTimeout)
	}
	if cfg.BaseURL != "https://proxy.example.com" {
		t.Errorf("BaseURL = %s, want trailing slash trimmed", cfg.BaseURL)
	}
	if client.Accounts == nil || client.Usage == nil || client.AutomatedExports == nil {
		t.Error("expected services to be wired")
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	_, err := New(Config{})
	if err == nil {
		t.Fatal("expected error for empty config")
	}
	if !strings.Contains(err.Error(), "invalid recurly config") {
		t.Errorf("error = %v, want wrapped config error", err)
	}
}

func TestClient_BaseURL(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		override Region
		want     string
	}{
		{name: "default region", cfg: Config{APIKey: "k"}, want: "https://v3.recurly.com"},
		{name: "configured eu", cfg: Config{APIKey: "k", Region: RegionEU}, want: "https://v3.eu.recurly.com"},
		{name: "per call eu", cfg: Config{APIKey: "k"}, override: RegionEU, want: "https://v3.eu.recurly.com"},
		{name: "per call us beats configured eu", cfg: Config{APIKey: "k", Region: RegionEU}, override: RegionUS, want: "https://v3.recurly.com"},
		{name: "base url wins", cfg: Config{APIKey: "k", BaseURL: "http://127.0.0.1:9000"}, override: RegionEU, want: "http://127.0.0.1:9000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := New(tt.cfg)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if got := client.baseURL(tt.override); got != tt.want {
				t.Errorf("baseURL(%q) = %s, want %s", tt.override, got, tt.want)
			}
		})
	}
}

func TestClient_UnknownRegionOverride(t *testing.T) {
	client, cap := newTestClient(t, http.StatusOK, `{}`)

	for _, region := range []Region{"EU", "mars"} {
		_, err := client.Sites.Get(context.Background(), "s1", WithRegion(region))
		if err == nil || !strings.Contains(err.Error(), "region must be") {
			t.Errorf("WithRegion(%q) error = %v, want region error", region, err)
		}
	}
	if n := cap.count(); n != 0 {
		t.Errorf("requests = %d, want 0", n)
	}

	if _, err := client.Sites.Get(context.Background(), "s1", WithRegion(RegionEU)); err != nil {
		t.Errorf("WithRegion(eu) error = %v", err)
	}
}

func TestParseRegion(t *testing.T) {
	tests := []struct {
		in      string
		want    Region
		wantErr bool
	}{
		{in: "us", want: RegionUS},
		{in: "EU", want: RegionEU},
		{in: " Us ", want: RegionUS},
		{in: "mars", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseRegion(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseRegion(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseRegion(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestBuildQueryString(t *testing.T) {
	begin := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	subscriber := true
	var nilParams *ListParams

	tests := []struct {
		name   string
		params any
		want   string
	}{
		{name: "nil", params: nil, want: ""},
		{name: "typed nil", params: nilParams, want: ""},
		{name: "empty", params: &ListParams{}, want: ""},
		{
			name: "list params",
			params: &ListParams{
				IDs:       []string{"a", "b"},
				Limit:     10,
				Order:     "asc",
				BeginTime: &begin,
			},
			want: "begin_time=2024-01-02T03%3A04%3A05Z&ids=a%2Cb&limit=10&order=asc",
		},
		{
			name: "embedded with filters",
			params: &AccountListParams{
				ListParams: ListParams{Sort: "updated_at"},
				Email:      "a@example.com",
				Subscriber: &subscriber,
			},
			want: "email=a%40example.com&sort=updated_at&subscriber=true",
		},
		{
			name:   "terminate",
			params: &TerminateParams{Refund: "partial"},
			want:   "refund=partial",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := buildQueryString(tt.params)
			if err != nil {
				t.Fatalf("buildQueryString() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("buildQueryString() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestNewRoute(t *testing.T) {
	rt := newRoute("/accounts/%s/shipping_addresses/%s", "code-a b", "x/y")

	if rt.path != "/accounts/code-a%20b/shipping_addresses/x%2Fy" {
		t.Errorf("path = %s", rt.path)
	}
	if rt.pattern != "/accounts/{id}/shipping_addresses/{id}" {
		t.Errorf("pattern = %s", rt.pattern)
	}
}

func TestNewRoute_EmptyID(t *testing.T) {
	rt := newRoute("/accounts/%s/notes/%s", "a1", "")
	if !errors.Is(rt.err, ErrMissingID) {
		t.Errorf("err = %v, want ErrMissingID", rt.err)
	}

	client, cap := newTestClient(t, http.StatusOK, `{"object":"list","data":[]}`)
	_, err := client.Accounts.Get(context.Background(), "")
	if !errors.Is(err, ErrMissingID) {
		t.Errorf("Accounts.Get(\"\") error = %v, want ErrMissingID", err)
	}
	if n := cap.count(); n != 0 {
		t.Errorf("requests = %d, want 0", n)
	}
}

func TestCode(t *testing.T) {
	if got := Code("acme"); got != "code-acme" {
		t.Errorf("Code() = %s, want code-acme", got)
	}
}

func TestClient_Headers(t *testing.T) {
	client, cap := newTestClient(t, http.StatusOK, `{"id":"a1","code":"acme"}`,
		WithIdempotencyKeys(idgen.NewSequential("idem-")))
	ctx := context.Background()

	t.Run("get", func(t *testing.T) {
		if _, err := client.Accounts.Get(ctx, Code("acme")); err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		r, body := cap.last(t)

		wantAuth := "Basic " + base64.StdEncoding.EncodeToString([]byte("test-key:"))
		if got := r.Header.Get("Authorization"); got != wantAuth {
			t.Errorf("Authorization = %s, want %s", got, wantAuth)
		}
		if got := r.Header.Get("Accept"); got != "application/vnd.recurly.v2021-02-25" {
			t.Errorf("Accept = %s", got)
		}
		if got := r.Header.Get("User-Agent"); got != "recurly-go/"+Version {
			t.Errorf("User-Agent = %s", got)
		}
		if got := r.Header.Get("Accept-Language"); got != "" {
			t.Errorf("Accept-Language = %s, want empty", got)
		}
		if got := r.Header.Get("Content-Type"); got != "" {
			t.Errorf("Content-Type = %s, want empty for GET", got)
		}
		if got := r.Header.Get("Idempotency-Key"); got != "" {
			t.Errorf("Idempotency-Key = %s, want empty for GET", got)
		}
		if body != "" {
			t.Errorf("body = %q, want empty", body)
		}
	})

	t.Run("post", func(t *testing.T) {
		_, err := client.Accounts.Create(ctx, &AccountCreate{Code: "acme"},
			WithAcceptLanguage("fr"), WithHeader("X-Trace", "t1"))
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		r, body := cap.last(t)

		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("Content-Type = %s, want application/json", got)
		}
		if got := r.Header.Get("Idempotency-Key"); got != "idem-1" {
			t.Errorf("Idempotency-Key = %s, want idem-1", got)
		}
		if got := r.Header.Get("Accept-Language"); got != "fr" {
			t.Errorf("Accept-Language = %s, want fr", got)
		}
		if got := r.Header.Get("X-Trace"); got != "t1" {
			t.Errorf("X-Trace = %s, want t1", got)
		}
		if !strings.Contains(body, `"code":"acme"`) {
			t.Errorf("body = %s, want account code", body)
		}
	})

	t.Run("explicit idempotency key", func(t *testing.T) {
		_, err := client.Accounts.Create(ctx, &AccountCreate{Code: "acme"}, WithIdempotencyKey("retry-7"))
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		r, _ := cap.last(t)
		if got := r.Header.Get("Idempotency-Key"); got != "retry-7" {
			t.Errorf("Idempotency-Key = %s, want retry-7", got)
		}
	})
}

func TestClient_ConfiguredAcceptLanguage(t *testing.T) {
	cap := &capture{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cap.record(r)
		io.WriteString(w, `{}`)
	}))
	defer server.Close()

	client, err := New(Config{APIKey: "k", BaseURL: server.URL, AcceptLanguage: "de"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, err := client.Sites.Get(context.Background(), "s1"); err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	r, _ := cap.last(t)
	if got := r.Header.Get("Accept-Language"); got != "de" {
		t.Errorf("Accept-Language = %s, want de", got)
	}
}

func TestClient_DecodesResponse(t *testing.T) {
	client, cap := newTestClient(t, http.StatusOK,
		`{"object":"list","has_more":true,"next":"/accounts?cursor=abc","data":[{"id":"a1","code":"one"},{"id":"a2","code":"two"}]}`)

	list, err := client.Accounts.List(context.Background(), &AccountListParams{ListParams: ListParams{Limit: 2}})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	if !list.HasMore {
		t.Error("HasMore = false, want true")
	}
	if list.Next != "/accounts?cursor=abc" {
		t.Errorf("Next = %s", list.Next)
	}
	if len(list.Data) != 2 || list.Data[1].Code != "two" {
		t.Errorf("Data = %+v", list.Data)
	}
	if cap.count() != 1 {
		t.Errorf("requests = %d, want exactly 1", cap.count())
	}
	r, _ := cap.last(t)
	if r.URL.RawQuery != "limit=2" {
		t.Errorf("query = %s, want limit=2", r.URL.RawQuery)
	}
}

func TestCheckResponse(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantType    string
		wantMessage string
		wantParams  int
	}{
		{
			name:        "validation document",
			status:      http.StatusUnprocessableEntity,
			body:        `{"error":{"type":"validation","message":"Code is invalid","params":[{"param":"code","message":"is invalid"}]}}`,
			wantType:    ErrorTypeValidation,
			wantMessage: "Code is invalid",
			wantParams:  1,
		},
		{
			name:        "not found document",
			status:      http.StatusNotFound,
			body:        `{"error":{"type":"not_found","message":"Couldn't find Account with code = nope"}}`,
			wantType:    ErrorTypeNotFound,
			wantMessage: "Couldn't find Account with code = nope",
		},
		{
			name:        "plain text body",
			status:      http.StatusBadGateway,
			body:        "upstream unavailable\n",
			wantType:    ErrorTypeUnknown,
			wantMessage: "upstream unavailable",
		},
		{
			name:        "empty body",
			status:      http.StatusTooManyRequests,
			body:        "",
			wantType:    ErrorTypeRateLimited,
			wantMessage: "Too Many Requests",
		},
		{
			name:        "document without type",
			status:      http.StatusUnauthorized,
			body:        `{"error":{"message":"bad key"}}`,
			wantType:    ErrorTypeUnauthorized,
			wantMessage: "bad key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := &http.Response{
				StatusCode: tt.status,
				Header:     http.Header{"X-Request-Id": []string{"req-9"}},
				Body:       io.NopCloser(strings.NewReader(tt.body)),
			}
			err := checkResponse(resp)

			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("checkResponse() error = %v, want *APIError", err)
			}
			if apiErr.StatusCode != tt.status {
				t.Errorf("StatusCode = %d, want %d", apiErr.StatusCode, tt.status)
			}
			if apiErr.Type != tt.wantType {
				t.Errorf("Type = %s, want %s", apiErr.Type, tt.wantType)
			}
			if apiErr.Message != tt.wantMessage {
				t.Errorf("Message = %q, want %q", apiErr.Message, tt.wantMessage)
			}
			if len(apiErr.Params) != tt.wantParams {
				t.Errorf("Params = %d, want %d", len(apiErr.Params), tt.wantParams)
			}
			if apiErr.RequestID != "req-9" {
				t.Errorf("RequestID = %s, want req-9", apiErr.RequestID)
			}
		})
	}
}

func TestCheckResponse_Success(t *testing.T) {
	for _, status := range []int{http.StatusOK, http.StatusCreated, http.StatusNoContent} {
		resp := &http.Response{StatusCode: status, Body: io.NopCloser(strings.NewReader(""))}
		if err := checkResponse(resp); err != nil {
			t.Errorf("checkResponse(%d) error = %v, want nil", status, err)
		}
	}
}

func TestClient_APIError(t *testing.T) {
	body := `{"error":{"type":"transaction","message":"Your card was declined.","transaction_error":{"object":"transaction_error","transaction_id":"t1","category":"soft","code":"declined","decline_code":"insufficient_funds"}}}`
	client, _ := newTestClient(t, http.StatusUnprocessableEntity, body)

	_, err := client.Purchases.Create(context.Background(), &PurchaseCreate{
		Currency: "USD",
		Account:  &AccountCreate{Code: "acme"},
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsValidation(err) {
		t.Errorf("IsValidation(%v) = false, want true", err)
	}
	if IsNotFound(err) || IsUnauthorized(err) || IsRateLimited(err) {
		t.Error("unexpected status helper match")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %T, want *APIError", err)
	}
	if apiErr.TransactionError == nil || apiErr.TransactionError.DeclineCode != "insufficient_funds" {
		t.Errorf("TransactionError = %+v", apiErr.TransactionError)
	}
	if apiErr.RequestID != "req-123" {
		t.Errorf("RequestID = %s, want req-123", apiErr.RequestID)
	}
	if !strings.Contains(err.Error(), "(request req-123)") {
		t.Errorf("Error() = %s, want request id", err.Error())
	}
}

func TestStatusHelpers(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
		want  bool
	}{
		{name: "not found", err: &APIError{StatusCode: 404}, check: IsNotFound, want: true},
		{name: "wrapped not found", err: errors.Join(errors.New("lookup"), &APIError{StatusCode: 404}), check: IsNotFound, want: true},
		{name: "unauthorized", err: &APIError{StatusCode: 401}, check: IsUnauthorized, want: true},
		{name: "rate limited", err: &APIError{StatusCode: 429}, check: IsRateLimited, want: true},
		{name: "validation", err: &APIError{StatusCode: 422}, check: IsValidation, want: true},
		{name: "plain error", err: errors.New("boom"), check: IsNotFound, want: false},
		{name: "nil", err: nil, check: IsNotFound, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.check(tt.err); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClient_NoContent(t *testing.T) {
	client, cap := newTestClient(t, http.StatusNoContent, "")

	if err := client.BillingInfo.Remove(context.Background(), "a1"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	r, _ := cap.last(t)
	if r.Method != http.MethodDelete || r.URL.Path != "/accounts/a1/billing_info" {
		t.Errorf("request = %s %s", r.Method, r.URL.Path)
	}
}

func TestClient_InvalidJSON(t *testing.T) {
	client, _ := newTestClient(t, http.StatusOK, `{"id":`)

	_, err := client.Plans.Get(context.Background(), "p1")
	if err == nil || !strings.Contains(err.Error(), "decode response") {
		t.Errorf("error = %v, want decode error", err)
	}
}

func TestClient_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	obs := &recordingObserver{}
	client, err := New(Config{APIKey: "k", BaseURL: url}, WithObserver(obs))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	_, err = client.Sites.List(context.Background(), nil)
	if err == nil || !strings.Contains(err.Error(), "execute request") {
		t.Errorf("error = %v, want transport error", err)
	}
	if len(obs.calls) != 1 || obs.calls[0].status != 0 || obs.calls[0].err == nil {
		t.Errorf("observer calls = %+v", obs.calls)
	}
}

func TestClient_ContextCanceled(t *testing.T) {
	client, cap := newTestClient(t, http.StatusOK, `{}`)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Accounts.Get(ctx, "a1")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
	if cap.count() != 0 {
		t.Errorf("requests = %d, want 0", cap.count())
	}
}

type observedCall struct {
	method   string
	resource string
	status   int
	err      error
}

type recordingObserver struct {
	mu    sync.Mutex
	calls []observedCall
}

func (o *recordingObserver) ObserveRequest(method, resource string, status int, _ time.Duration, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.calls = append(o.calls, observedCall{method: method, resource: resource, status: status, err: err})
}

func TestClient_Observer(t *testing.T) {
	obs := &recordingObserver{}
	client, _ := newTestClient(t, http.StatusNotFound, `{"error":{"type":"not_found","message":"nope"}}`, WithObserver(obs))

	_, err := client.Subscriptions.Get(context.Background(), "uuid-abc")
	if !IsNotFound(err) {
		t.Fatalf("error = %v, want not found", err)
	}

	if len(obs.calls) != 1 {
		t.Fatalf("observer calls = %d, want 1", len(obs.calls))
	}
	call := obs.calls[0]
	if call.method != http.MethodGet {
		t.Errorf("method = %s, want GET", call.method)
	}
	if call.resource != "/subscriptions/{id}" {
		t.Errorf("resource = %s, want /subscriptions/{id}", call.resource)
	}
	if call.status != http.StatusNotFound {
		t.Errorf("status = %d, want 404", call.status)
	}
	if call.err == nil {
		t.Error("expected observed error")
	}
}

func TestClient_DeprecationWarning(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Recurly-Deprecated", "TRUE")
		w.Header().Set("Recurly-Sunset-Date", "2027-01-01T00:00:00Z")
		io.WriteString(w, `{}`)
	}))
	defer server.Close()

	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.WarnLevel)
	client, err := New(Config{APIKey: "k", BaseURL: server.URL}, WithLogger(logger))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if _, err := client.Items.Get(context.Background(), "i1"); err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "deprecated") {
		t.Errorf("log = %s, want deprecation warning", out)
	}
	if !strings.Contains(out, "2027-01-01T00:00:00Z") {
		t.Errorf("log = %s, want sunset date", out)
	}
}

func TestClient_UserAgentOption(t *testing.T) {
	client, cap := newTestClient(t, http.StatusOK, `{}`, WithUserAgent("billing-worker/2"))

	if _, err := client.Coupons.Get(context.Background(), "c1"); err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	r, _ := cap.last(t)
	if got := r.Header.Get("User-Agent"); got != "billing-worker/2" {
		t.Errorf("User-Agent = %s", got)
	}
}

func TestClient_HTTPClientOption(t *testing.T) {
	hc := &http.Client{Timeout: time.Second}
	client, err := New(Config{APIKey: "k"}, WithHTTPClient(hc))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if client.httpClient != hc {
		t.Error("expected custom http client")
	}

	client, err = New(Config{APIKey: "k"}, WithHTTPClient(nil))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if client.httpClient == nil || client.httpClient.Timeout != defaultTimeout {
		t.Error("nil http client should keep the default")
	}
}
