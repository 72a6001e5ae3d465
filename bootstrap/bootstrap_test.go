package bootstrap_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alvinosh/nestjs-recurly-sub000/adapters/clock"
	"github.com/alvinosh/nestjs-recurly-sub000/bootstrap"
	"github.com/alvinosh/nestjs-recurly-sub000/config"
	"github.com/alvinosh/nestjs-recurly-sub000/domain/webhook"
	"github.com/rs/zerolog"
)

var now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

const notification = `{"id":"n1","object_type":"account","event_type":"created","account_code":"acme"}`

func writeConfig(t *testing.T, path, apiKey, secret, dsn string, port int) {
	t.Helper()
	content := fmt.Sprintf(`
recurly:
  api_key: %q
server:
  host: "127.0.0.1"
  port: %d
webhooks:
  secret: %q
database:
  dsn: %q
metrics:
  enabled: true
logging:
  level: debug
`, apiKey, port, secret, dsn)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func newApp(t *testing.T, dsn string) (*bootstrap.App, string) {
	t.Helper()
	for _, k := range []string{"RECURLY_API_KEY", "RECURLY_WEBHOOK_SECRET", "RECURLY_DATABASE_DSN", "RECURLY_METRICS_ENABLED"} {
		t.Setenv(k, "")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if dsn == "" {
		dsn = filepath.Join(dir, "test.db")
	}
	writeConfig(t, path, "key-1", "secret-1", dsn, 8080)

	holder, err := config.NewHolder(path, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewHolder: %v", err)
	}

	app, err := bootstrap.New(holder, bootstrap.Options{LogOutput: io.Discard, Clock: clock.NewFake(now)})
	if err != nil {
		t.Fatalf("create app: %v", err)
	}
	return app, path
}

func post(t *testing.T, h http.Handler, secret string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/webhooks/recurly", strings.NewReader(notification))
	req.Header.Set(webhook.SignatureHeader, webhook.SignatureHeaderValue(secret, now, []byte(notification)))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestBootstrap_Integration(t *testing.T) {
	app, _ := newApp(t, "")
	defer app.Shutdown()

	if app.DB == nil {
		t.Error("DB should not be nil")
	}
	if app.HTTPServer == nil {
		t.Fatal("HTTPServer should not be nil")
	}
	if app.Metrics == nil {
		t.Error("Metrics should not be nil")
	}
	if app.Client() == nil {
		t.Error("Client should not be nil")
	}
	if app.HTTPServer.Addr != "127.0.0.1:8080" {
		t.Errorf("Addr = %s, want 127.0.0.1:8080", app.HTTPServer.Addr)
	}

	h := app.HTTPServer.Handler
	if rec := post(t, h, "secret-1"); rec.Code != http.StatusOK {
		t.Fatalf("webhook status = %d: %s", rec.Code, rec.Body.String())
	}

	stored, err := app.Store.Get(context.Background(), "n1")
	if err != nil {
		t.Fatalf("stored notification: %v", err)
	}
	if stored.AccountCode != "acme" {
		t.Errorf("AccountCode = %s, want acme", stored.AccountCode)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("metrics status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `recurly_webhook_notifications_total{event_type="created",object_type="account",outcome="stored"} 1`) {
		t.Errorf("metrics missing stored notification:\n%s", rec.Body.String())
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("readiness status = %d", rec.Code)
	}
}

func TestBootstrap_MemoryStore(t *testing.T) {
	app, _ := newApp(t, bootstrap.MemoryDSN)
	defer app.Shutdown()

	if app.DB != nil {
		t.Error("DB should be nil for the memory store")
	}
	if rec := post(t, app.HTTPServer.Handler, "secret-1"); rec.Code != http.StatusOK {
		t.Errorf("webhook status = %d", rec.Code)
	}
}

func TestBootstrap_ReloadSwapsClientAndSecret(t *testing.T) {
	app, path := newApp(t, bootstrap.MemoryDSN)
	defer app.Shutdown()

	before := app.Client()
	writeConfig(t, path, "key-2", "secret-2", bootstrap.MemoryDSN, 8080)
	if err := app.Config.Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}

	if app.Client() == before {
		t.Error("client was not replaced after reload")
	}

	h := app.HTTPServer.Handler
	if rec := post(t, h, "secret-1"); rec.Code != http.StatusUnauthorized {
		t.Errorf("old secret status = %d, want 401", rec.Code)
	}
	if rec := post(t, h, "secret-2"); rec.Code != http.StatusOK {
		t.Errorf("new secret status = %d, want 200", rec.Code)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if !strings.Contains(rec.Body.String(), "recurly_config_reloads_total 1") {
		t.Errorf("metrics missing reload count:\n%s", rec.Body.String())
	}
}

func TestBootstrap_ReadinessChecksAPI(t *testing.T) {
	for _, k := range []string{"RECURLY_API_KEY", "RECURLY_BASE_URL", "RECURLY_CHECK_READINESS", "RECURLY_WEBHOOK_SECRET", "RECURLY_DATABASE_DSN", "RECURLY_METRICS_ENABLED"} {
		t.Setenv(k, "")
	}

	goodAuth := "Basic " + base64.StdEncoding.EncodeToString([]byte("key-2:"))
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/sites" || r.URL.Query().Get("limit") != "1" {
			t.Errorf("unexpected request %s", r.URL)
		}
		if r.Header.Get("Authorization") != goodAuth {
			w.WriteHeader(http.StatusUnauthorized)
			io.WriteString(w, `{"error":{"type":"unauthorized","message":"Invalid API key"}}`)
			return
		}
		io.WriteString(w, `{"object":"list","has_more":false,"data":[]}`)
	}))
	defer api.Close()

	write := func(path, apiKey string) {
		content := fmt.Sprintf(`
recurly:
  api_key: %q
  base_url: %q
  check_readiness: true
webhooks:
  secret: "secret-1"
database:
  dsn: "memory"
metrics:
  enabled: true
`, apiKey, api.URL)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("write config: %v", err)
		}
	}

	path := filepath.Join(t.TempDir(), "config.yaml")
	write(path, "key-1")
	holder, err := config.NewHolder(path, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewHolder: %v", err)
	}
	app, err := bootstrap.New(holder, bootstrap.Options{LogOutput: io.Discard})
	if err != nil {
		t.Fatalf("create app: %v", err)
	}
	defer app.Shutdown()

	h := app.HTTPServer.Handler
	ready := func() *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
		return rec
	}

	if rec := ready(); rec.Code != http.StatusServiceUnavailable {
		t.Errorf("readiness with rejected key = %d, want 503", rec.Code)
	}

	write(path, "key-2")
	if err := app.Config.Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if rec := ready(); rec.Code != http.StatusOK {
		t.Errorf("readiness after key rotation = %d: %s", rec.Code, rec.Body.String())
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	for _, want := range []string{
		`recurly_requests_total{method="GET",resource="/sites",status="4xx"} 1`,
		`recurly_requests_total{method="GET",resource="/sites",status="2xx"} 1`,
	} {
		if !strings.Contains(rec.Body.String(), want) {
			t.Errorf("metrics missing %s", want)
		}
	}
}

func TestBootstrap_RunContext(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	port := l.Addr().(*net.TCPAddr).Port
	l.Close()

	for _, k := range []string{"RECURLY_API_KEY", "RECURLY_WEBHOOK_SECRET", "RECURLY_DATABASE_DSN", "RECURLY_METRICS_ENABLED", "RECURLY_SERVER_PORT"} {
		t.Setenv(k, "")
	}
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeConfig(t, path, "key-1", "secret-1", bootstrap.MemoryDSN, port)
	holder, err := config.NewHolder(path, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewHolder: %v", err)
	}
	app, err := bootstrap.New(holder, bootstrap.Options{LogOutput: io.Discard})
	if err != nil {
		t.Fatalf("create app: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.RunContext(ctx) }()

	url := fmt.Sprintf("http://127.0.0.1:%d/health", port)
	deadline := time.Now().Add(2 * time.Second)
	for {
		resp, err := http.Get(url)
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				t.Errorf("health status = %d", resp.StatusCode)
			}
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("server did not start: %v", err)
		}
		time.Sleep(20 * time.Millisecond)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("RunContext returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("RunContext did not return after cancel")
	}
}

func TestNewLogger(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.GlobalLevel())

	var buf bytes.Buffer
	logger := bootstrap.NewLogger(config.LoggingConfig{Level: "warn", Format: "json"}, &buf)
	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message logged at warn level: %s", out)
	}
	if !strings.Contains(out, `"message":"shown"`) {
		t.Errorf("warn message missing: %s", out)
	}

	buf.Reset()
	logger = bootstrap.NewLogger(config.LoggingConfig{Level: "bogus", Format: "console"}, &buf)
	logger.Info().Msg("console line")
	if strings.Contains(buf.String(), "{") {
		t.Errorf("console output looks like JSON: %s", buf.String())
	}
	if !strings.Contains(buf.String(), "console line") {
		t.Errorf("console message missing: %s", buf.String())
	}
}
