// Package http provides the HTTP surface of the webhook receiver.
package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/alvinosh/nestjs-recurly-sub000/domain/webhook"
	"github.com/alvinosh/nestjs-recurly-sub000/ports"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// MaxNotificationBytes caps the size of an accepted delivery.
const MaxNotificationBytes = 1 << 20

// Notification outcomes reported to the observer.
const (
	OutcomeStored    = "stored"
	OutcomeDuplicate = "duplicate"
	OutcomeRejected  = "rejected"
	OutcomeError     = "error"
)

// WebhookResponse is the body returned to Recurly.
type WebhookResponse struct {
	Status string `json:"status"`
	ID     string `json:"id,omitempty"`
	Error  string `json:"error,omitempty"`
}

// WebhookHandler verifies, parses and stores Recurly notifications.
type WebhookHandler struct {
	store    ports.NotificationStore
	observer ports.NotificationObserver
	clock    ports.Clock
	logger   zerolog.Logger

	mu        sync.RWMutex
	secret    string
	tolerance time.Duration
}

// WebhookConfig holds the dependencies of a WebhookHandler.
type WebhookConfig struct {
	Store     ports.NotificationStore
	Observer  ports.NotificationObserver // optional
	Clock     ports.Clock
	Logger    zerolog.Logger
	Secret    string
	Tolerance time.Duration
}

// NewWebhookHandler creates a webhook handler.
func NewWebhookHandler(cfg WebhookConfig) *WebhookHandler {
	return &WebhookHandler{
		store:     cfg.Store,
		observer:  cfg.Observer,
		clock:     cfg.Clock,
		logger:    cfg.Logger,
		secret:    cfg.Secret,
		tolerance: cfg.Tolerance,
	}
}

// SetSecret swaps the signing secret, e.g. after a config reload.
func (h *WebhookHandler) SetSecret(secret string, tolerance time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.secret = secret
	h.tolerance = tolerance
}

func (h *WebhookHandler) credentials() (string, time.Duration) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.secret, h.tolerance
}

func (h *WebhookHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetReqID(r.Context())

	body, err := io.ReadAll(io.LimitReader(r.Body, MaxNotificationBytes+1))
	if err != nil {
		h.reject(w, http.StatusBadRequest, "could not read body")
		return
	}
	if len(body) > MaxNotificationBytes {
		h.reject(w, http.StatusRequestEntityTooLarge, "body too large")
		return
	}

	secret, tolerance := h.credentials()
	now := h.clock.Now()
	if err := webhook.Verify(secret, r.Header.Get(webhook.SignatureHeader), body, now, tolerance); err != nil {
		h.logger.Warn().Err(err).Str("request_id", reqID).Msg("webhook signature rejected")
		status := http.StatusUnauthorized
		if errors.Is(err, webhook.ErrMissingSecret) {
			status = http.StatusServiceUnavailable
		}
		h.reject(w, status, err.Error())
		return
	}

	n, err := webhook.Parse(body, now)
	if err != nil {
		h.logger.Warn().Err(err).Str("request_id", reqID).Msg("webhook payload rejected")
		h.reject(w, http.StatusBadRequest, err.Error())
		return
	}

	log := h.logger.With().
		Str("notification_id", n.ID).
		Str("event", n.Event()).
		Str("account_code", n.AccountCode).
		Logger()

	err = h.store.Save(r.Context(), n)
	switch {
	case errors.Is(err, ports.ErrDuplicate):
		log.Info().Msg("duplicate webhook notification")
		h.observe(n.ObjectType, n.EventType, OutcomeDuplicate)
		writeJSON(w, http.StatusOK, WebhookResponse{Status: OutcomeDuplicate, ID: n.ID})
	case err != nil:
		log.Error().Err(err).Msg("store webhook notification")
		h.observe(n.ObjectType, n.EventType, OutcomeError)
		writeJSON(w, http.StatusInternalServerError, WebhookResponse{Status: OutcomeError, ID: n.ID, Error: "storage failure"})
	default:
		log.Info().Msg("webhook notification stored")
		h.observe(n.ObjectType, n.EventType, OutcomeStored)
		writeJSON(w, http.StatusOK, WebhookResponse{Status: OutcomeStored, ID: n.ID})
	}
}

func (h *WebhookHandler) reject(w http.ResponseWriter, status int, msg string) {
	h.observe("", "", OutcomeRejected)
	writeJSON(w, status, WebhookResponse{Status: OutcomeRejected, Error: msg})
}

func (h *WebhookHandler) observe(objectType, eventType, outcome string) {
	if h.observer != nil {
		h.observer.ObserveNotification(objectType, eventType, outcome)
	}
}

// NotificationsHandler serves stored notifications for inspection.
type NotificationsHandler struct {
	store ports.NotificationStore
}

// NewNotificationsHandler creates a read-only notifications handler.
func NewNotificationsHandler(store ports.NotificationStore) *NotificationsHandler {
	return &NotificationsHandler{store: store}
}

// List returns the most recent notifications; ?limit=N caps the count.
func (h *NotificationsHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 200 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "limit must be between 1 and 200"})
			return
		}
		limit = n
	}

	items, err := h.store.List(r.Context(), limit)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "storage failure"})
		return
	}
	out := make([]json.RawMessage, 0, len(items))
	for _, n := range items {
		out = append(out, n.Payload)
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": out})
}

// Get returns the raw payload of one notification.
func (h *NotificationsHandler) Get(w http.ResponseWriter, r *http.Request) {
	n, err := h.store.Get(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, ports.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "notification not found"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "storage failure"})
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(n.Payload)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
