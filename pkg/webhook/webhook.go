// Package webhook sends HTTP notifications when an audit run completes.
package webhook

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// EventType identifies what happened.
type EventType string

const (
	EventRunCompleted    EventType = "audit.completed"
	EventDeviationsFound EventType = "audit.deviations"
)

// Event is the payload posted to the hook URL.
type Event struct {
	Event          EventType `json:"event"`
	Timestamp      string    `json:"timestamp"`
	RunID          string    `json:"run_id"`
	Parent         string    `json:"parent"`
	FoldersScanned int       `json:"folders_scanned"`
	DeviantCount   int       `json:"deviant_count"`
	ErrorCount     int       `json:"error_count"`
}

// Client posts events to a single configured hook.
type Client struct {
	url        string
	secret     string
	maxRetries int
	retryDelay time.Duration
	http       *http.Client
}

// NewClient creates a webhook client. secret may be empty to disable
// signing.
func NewClient(url, secret string) *Client {
	return &Client{
		url:        url,
		secret:     secret,
		maxRetries: 3,
		retryDelay: 2 * time.Second,
		http:       &http.Client{Timeout: 10 * time.Second},
	}
}

// Notify posts the event, retrying transient failures. A nil client or an
// empty URL is a no-op so callers need no enabled-checks.
func (c *Client) Notify(event Event) error {
	if c == nil || c.url == "" {
		return nil
	}
	if event.Timestamp == "" {
		event.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal webhook event: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(c.retryDelay)
		}
		if lastErr = c.post(body); lastErr == nil {
			return nil
		}
	}
	return fmt.Errorf("webhook delivery failed after %d attempts: %w", c.maxRetries+1, lastErr)
}

func (c *Client) post(body []byte) error {
	req, err := http.NewRequest(http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.secret != "" {
		req.Header.Set("X-Permaudit-Signature", Sign(c.secret, body))
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}

// Sign computes the hex HMAC-SHA256 signature for a payload.
func Sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}
