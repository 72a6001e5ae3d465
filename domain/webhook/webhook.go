// Package webhook provides value types and pure functions for Recurly
// webhook notifications: signature checks and payload parsing.
// All types are immutable values; all functions are pure.
package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// SignatureHeader is the header Recurly signs each delivery with.
const SignatureHeader = "Recurly-Signature"

// DefaultTolerance is how far a signature timestamp may drift from now.
const DefaultTolerance = 5 * time.Minute

// Object types sent in the object_type field.
const (
	ObjectAccount      = "account"
	ObjectBillingInfo  = "billing_info"
	ObjectCharge       = "charge_invoice"
	ObjectCredit       = "credit_invoice"
	ObjectPayment      = "payment"
	ObjectSubscription = "subscription"
	ObjectGiftCard     = "gift_card"
	ObjectUsage        = "usage"
	ObjectDunning      = "dunning"
)

// Verification errors.
var (
	ErrMissingSignature = errors.New("webhook: missing signature header")
	ErrMalformedHeader  = errors.New("webhook: malformed signature header")
	ErrTimestampExpired = errors.New("webhook: signature timestamp outside tolerance")
	ErrInvalidSignature = errors.New("webhook: signature mismatch")
	ErrMissingSecret    = errors.New("webhook: signing secret not configured")
)

// Notification is one webhook delivery (value type).
type Notification struct {
	ID          string          `json:"id"`
	ObjectType  string          `json:"object_type"`
	SiteID      string          `json:"site_id"`
	EventType   string          `json:"event_type"`
	EventTime   time.Time       `json:"event_time"`
	AccountCode string          `json:"account_code,omitempty"`
	UUID        string          `json:"uuid,omitempty"`
	Payload     json.RawMessage `json:"-"`
	ReceivedAt  time.Time       `json:"-"`
}

// Event returns "object_type.event_type", e.g. "subscription.renewed".
func (n Notification) Event() string {
	return n.ObjectType + "." + n.EventType
}

// Signature is a parsed recurly-signature header.
type Signature struct {
	Timestamp time.Time
	// raw is the millisecond value exactly as sent; it is part of the signed text.
	raw        string
	Signatures []string
}

// ParseSignatureHeader splits "<unix-ms>,<sig>[,<sig>...]".
// This is a PURE function.
func ParseSignatureHeader(header string) (Signature, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return Signature{}, ErrMissingSignature
	}
	parts := strings.Split(header, ",")
	if len(parts) < 2 {
		return Signature{}, ErrMalformedHeader
	}
	ms, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil {
		return Signature{}, fmt.Errorf("%w: timestamp %q", ErrMalformedHeader, parts[0])
	}

	sig := Signature{Timestamp: time.UnixMilli(ms), raw: strings.TrimSpace(parts[0])}
	for _, p := range parts[1:] {
		if p = strings.TrimSpace(p); p != "" {
			sig.Signatures = append(sig.Signatures, p)
		}
	}
	if len(sig.Signatures) == 0 {
		return Signature{}, ErrMalformedHeader
	}
	return sig, nil
}

// Sign computes the hex HMAC-SHA256 of "<timestamp>.<body>".
// This is a PURE function.
func Sign(secret, timestamp string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(timestamp))
	mac.Write([]byte("."))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// SignatureHeaderValue builds a header value for body signed at t.
// This is a PURE function.
func SignatureHeaderValue(secret string, t time.Time, body []byte) string {
	ts := strconv.FormatInt(t.UnixMilli(), 10)
	return ts + "," + Sign(secret, ts, body)
}

// Verify checks header against body. Any listed signature may match; the
// list holds more than one while Recurly rotates secrets.
// This is a PURE function.
func Verify(secret, header string, body []byte, now time.Time, tolerance time.Duration) error {
	if secret == "" {
		return ErrMissingSecret
	}
	sig, err := ParseSignatureHeader(header)
	if err != nil {
		return err
	}
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	if drift := now.Sub(sig.Timestamp); drift > tolerance || drift < -tolerance {
		return ErrTimestampExpired
	}

	expected := []byte(Sign(secret, sig.raw, body))
	for _, s := range sig.Signatures {
		if hmac.Equal([]byte(strings.ToLower(s)), expected) {
			return nil
		}
	}
	return ErrInvalidSignature
}

// Parse decodes a JSON notification body. The raw body is kept in Payload.
// This is a PURE function.
func Parse(body []byte, receivedAt time.Time) (Notification, error) {
	var n Notification
	if err := json.Unmarshal(body, &n); err != nil {
		return Notification{}, fmt.Errorf("webhook: decode notification: %w", err)
	}
	if ok, msg := Validate(n); !ok {
		return Notification{}, fmt.Errorf("webhook: %s", msg)
	}
	n.Payload = append(json.RawMessage(nil), body...)
	n.ReceivedAt = receivedAt.UTC()
	return n, nil
}

// Validate checks the fields every notification carries.
// This is a PURE function.
func Validate(n Notification) (bool, string) {
	if n.ID == "" {
		return false, "id is required"
	}
	if n.ObjectType == "" {
		return false, "object_type is required"
	}
	if n.EventType == "" {
		return false, "event_type is required"
	}
	return true, ""
}
