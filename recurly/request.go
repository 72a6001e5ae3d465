package recurly

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-querystring/query"
)

// RequestOption adjusts a single request.
type RequestOption func(*requestOptions)

type requestOptions struct {
	region         Region
	acceptLanguage string
	idempotencyKey string
	header         http.Header
}

// WithRegion sends this request to the given region instead of the
// configured one. It has no effect when Config.BaseURL is set. A region
// other than RegionUS or RegionEU fails the call before any I/O.
func WithRegion(r Region) RequestOption {
	return func(o *requestOptions) {
		o.region = r
	}
}

// WithAcceptLanguage overrides the Accept-Language header for one request.
func WithAcceptLanguage(lang string) RequestOption {
	return func(o *requestOptions) {
		o.acceptLanguage = lang
	}
}

// WithIdempotencyKey sets the Idempotency-Key header. Only POST requests
// carry one; without this option a fresh key is generated.
func WithIdempotencyKey(key string) RequestOption {
	return func(o *requestOptions) {
		o.idempotencyKey = key
	}
}

// WithHeader adds an arbitrary header to one request.
func WithHeader(key, value string) RequestOption {
	return func(o *requestOptions) {
		if o.header == nil {
			o.header = make(http.Header)
		}
		o.header.Add(key, value)
	}
}

// route is a request path plus the pattern it was built from. The
// pattern is used as a low-cardinality label for logs and metrics.
type route struct {
	pattern string
	path    string
	err     error
}

// newRoute path-escapes every identifier into pattern's %s verbs. An empty
// identifier would address the collection instead of a resource, so the
// route carries ErrMissingID and the request is never sent.
func newRoute(pattern string, ids ...string) route {
	rt := route{pattern: strings.ReplaceAll(pattern, "%s", "{id}")}
	args := make([]any, len(ids))
	for i, id := range ids {
		if id == "" {
			rt.err = fmt.Errorf("%w: %s", ErrMissingID, rt.pattern)
			return rt
		}
		args[i] = url.PathEscape(id)
	}
	rt.path = fmt.Sprintf(pattern, args...)
	return rt
}

type request struct {
	method string
	route  route
	params any
	body   any
	accept string
}

// headers builds the header set every request carries.
func (c *Client) headers(r request, o requestOptions) http.Header {
	h := make(http.Header)

	auth := base64.StdEncoding.EncodeToString([]byte(c.cfg.APIKey + ":"))
	h.Set("Authorization", "Basic "+auth)

	accept := r.accept
	if accept == "" {
		accept = acceptVersioned
	}
	h.Set("Accept", accept)
	h.Set("User-Agent", c.userAgent)

	lang := c.cfg.AcceptLanguage
	if o.acceptLanguage != "" {
		lang = o.acceptLanguage
	}
	if lang != "" {
		h.Set("Accept-Language", lang)
	}

	if r.body != nil {
		h.Set("Content-Type", "application/json")
	}

	if r.method == http.MethodPost {
		key := o.idempotencyKey
		if key == "" {
			key = c.idempotency.New()
		}
		h.Set("Idempotency-Key", key)
	}

	for k, vs := range o.header {
		for _, v := range vs {
			h.Add(k, v)
		}
	}
	return h
}

// buildQueryString encodes params using their `url` struct tags.
// A nil params value produces an empty string.
func buildQueryString(params any) (string, error) {
	if params == nil {
		return "", nil
	}
	values, err := query.Values(params)
	if err != nil {
		return "", fmt.Errorf("encode query: %w", err)
	}
	return values.Encode(), nil
}

func (c *Client) buildURL(region Region, path string, params any) (string, error) {
	qs, err := buildQueryString(params)
	if err != nil {
		return "", err
	}
	u := c.baseURL(region) + path
	if qs != "" {
		u += "?" + qs
	}
	return u, nil
}

// do performs one request. out may be nil, a *[]byte for raw bodies, or a
// pointer to decode JSON into.
func (c *Client) do(ctx context.Context, r request, out any, opts []RequestOption) error {
	var o requestOptions
	for _, opt := range opts {
		opt(&o)
	}

	if r.route.err != nil {
		return r.route.err
	}
	if o.region != "" {
		if err := o.region.validate(); err != nil {
			return err
		}
	}

	if !isNil(r.params) {
		if err := c.validateRequest(ctx, r.params); err != nil {
			return err
		}
	}
	if err := c.validateRequest(ctx, r.body); err != nil {
		return err
	}

	u, err := c.buildURL(o.region, r.route.path, r.params)
	if err != nil {
		return err
	}

	var bodyReader io.Reader
	if r.body != nil {
		data, err := json.Marshal(r.body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, u, bodyReader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header = c.headers(r, o)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.finish(r, 0, "", start, err)
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	requestID := resp.Header.Get("X-Request-Id")
	c.warnDeprecated(r, resp)

	if err := checkResponse(resp); err != nil {
		c.finish(r, resp.StatusCode, requestID, start, err)
		return err
	}
	c.finish(r, resp.StatusCode, requestID, start, nil)

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if raw, ok := out.(*[]byte); ok {
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("read response: %w", err)
		}
		*raw = data
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// checkResponse returns an *APIError for any status outside 2xx.
func checkResponse(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		RequestID:  resp.Header.Get("X-Request-Id"),
	}

	var doc struct {
		Error *APIError `json:"error"`
	}
	if err := json.Unmarshal(body, &doc); err == nil && doc.Error != nil {
		apiErr.Type = doc.Error.Type
		apiErr.Message = doc.Error.Message
		apiErr.Params = doc.Error.Params
		apiErr.TransactionError = doc.Error.TransactionError
	} else {
		apiErr.Message = strings.TrimSpace(string(body))
	}
	if apiErr.Type == "" {
		apiErr.Type = errorTypeForStatus(resp.StatusCode)
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}

func (c *Client) finish(r request, status int, requestID string, start time.Time, err error) {
	elapsed := time.Since(start)

	if c.observer != nil {
		c.observer.ObserveRequest(r.method, r.route.pattern, status, elapsed, err)
	}

	ev := c.logger.Debug()
	if err != nil {
		ev = c.logger.Warn().Err(err)
	}
	ev.Str("method", r.method).
		Str("path", r.route.path).
		Int("status", status).
		Str("request_id", requestID).
		Dur("duration", elapsed).
		Msg("recurly request")
}

func (c *Client) warnDeprecated(r request, resp *http.Response) {
	if !strings.EqualFold(resp.Header.Get("Recurly-Deprecated"), "true") {
		return
	}
	c.logger.Warn().
		Str("method", r.method).
		Str("path", r.route.pattern).
		Str("sunset_date", resp.Header.Get("Recurly-Sunset-Date")).
		Msg("recurly API version is deprecated")
}

// call performs a request and decodes the response into a new T.
func call[T any](ctx context.Context, s *service, method string, rt route, params, body any, opts []RequestOption) (*T, error) {
	out := new(T)
	r := request{method: method, route: rt, params: params, body: body}
	if err := s.client.do(ctx, r, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

// exec performs a request whose response body is ignored.
func exec(ctx context.Context, s *service, method string, rt route, params, body any, opts []RequestOption) error {
	r := request{method: method, route: rt, params: params, body: body}
	return s.client.do(ctx, r, nil, opts)
}
