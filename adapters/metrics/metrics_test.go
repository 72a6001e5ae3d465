package metrics_test

import (
	"errors"
	"testing"
	"time"

	"github.com/alvinosh/nestjs-recurly-sub000/adapters/metrics"
	"github.com/alvinosh/nestjs-recurly-sub000/ports"
	"github.com/alvinosh/nestjs-recurly-sub000/recurly"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

var (
	_ ports.RequestObserver      = (*metrics.Collector)(nil)
	_ ports.NotificationObserver = (*metrics.Collector)(nil)
)

func TestNew(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewWithRegistry(reg)

	if m == nil {
		t.Fatal("NewWithRegistry returned nil")
	}
	if m.RequestsTotal == nil {
		t.Error("RequestsTotal is nil")
	}
	if m.RequestDuration == nil {
		t.Error("RequestDuration is nil")
	}
	if m.Notifications == nil {
		t.Error("Notifications is nil")
	}
	if m.ConfigReloads == nil {
		t.Error("ConfigReloads is nil")
	}
}

func TestObserveRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewWithRegistry(reg)

	m.ObserveRequest("GET", "/accounts/{id}", 200, 50*time.Millisecond, nil)
	m.ObserveRequest("GET", "/accounts/{id}", 200, 80*time.Millisecond, nil)
	m.ObserveRequest("GET", "/accounts/{id}", 404, 10*time.Millisecond, &recurly.APIError{StatusCode: 404, Type: "not_found"})
	m.ObserveRequest("POST", "/purchases", 0, time.Second, errors.New("dial tcp: refused"))

	if got := testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/accounts/{id}", "2xx")); got != 2 {
		t.Errorf("2xx requests = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/accounts/{id}", "4xx")); got != 1 {
		t.Errorf("4xx requests = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.RequestsTotal.WithLabelValues("POST", "/purchases", "none")); got != 1 {
		t.Errorf("unanswered requests = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.RequestErrors.WithLabelValues("not_found")); got != 1 {
		t.Errorf("not_found errors = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.RequestErrors.WithLabelValues("transport")); got != 1 {
		t.Errorf("transport errors = %v, want 1", got)
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather error: %v", err)
	}
	found := false
	for _, f := range families {
		if f.GetName() == "recurly_request_duration_seconds" {
			found = true
		}
	}
	if !found {
		t.Error("recurly_request_duration_seconds metric not found")
	}
}

func TestObserveNotification(t *testing.T) {
	m := metrics.NewWithRegistry(prometheus.NewRegistry())

	m.ObserveNotification("subscription", "renewed", "stored")
	m.ObserveNotification("subscription", "renewed", "duplicate")
	m.ObserveNotification("", "", "rejected")

	if got := testutil.ToFloat64(m.Notifications.WithLabelValues("subscription", "renewed", "stored")); got != 1 {
		t.Errorf("stored = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.Notifications.WithLabelValues("unknown", "unknown", "rejected")); got != 1 {
		t.Errorf("rejected = %v, want 1", got)
	}
}

func TestObserveReload(t *testing.T) {
	m := metrics.NewWithRegistry(prometheus.NewRegistry())

	m.ObserveReload(nil)
	m.ObserveReload(nil)
	m.ObserveReload(errors.New("bad yaml"))

	if got := testutil.ToFloat64(m.ConfigReloads); got != 2 {
		t.Errorf("ConfigReloads = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.ConfigReloadErrors); got != 1 {
		t.Errorf("ConfigReloadErrors = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.ConfigLastReload); got <= 0 {
		t.Errorf("ConfigLastReload = %v, want a timestamp", got)
	}
}

func TestStatusClass(t *testing.T) {
	tests := []struct {
		status int
		want   string
	}{
		{0, "none"},
		{200, "2xx"},
		{204, "2xx"},
		{404, "4xx"},
		{422, "4xx"},
		{503, "5xx"},
	}

	for _, tt := range tests {
		if got := metrics.StatusClass(tt.status); got != tt.want {
			t.Errorf("StatusClass(%d) = %s, want %s", tt.status, got, tt.want)
		}
	}
}

func TestErrorType(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"api error", &recurly.APIError{Type: "validation"}, "validation"},
		{"local validation", &recurly.ValidationError{}, "validation"},
		{"transport", errors.New("timeout"), "transport"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := metrics.ErrorType(tt.err); got != tt.want {
				t.Errorf("ErrorType() = %s, want %s", got, tt.want)
			}
		})
	}
}
