package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go-contact-form/internal/domain"
	"go-contact-form/pkg/logger"
)

// submitPath is the serverless function route relative to the configured base.
const submitPath = "/functions/v1/contact-form"

// Client submits contact messages to the remote contact-form function.
// It issues exactly one POST per Send call; retries are left to the user.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient creates a relay client for the given functions host and bearer
// token. A zero timeout means the request is never timed out client-side.
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: timeout},
	}
}

// IsConfigured checks whether both the endpoint base and the token are set.
func (c *Client) IsConfigured() bool {
	return c.baseURL != "" && c.token != ""
}

// Send relays one validated contact message. The returned error is meant for
// logs and flow control; callers show the user a generic retry message.
func (c *Client) Send(ctx context.Context, msg domain.ContactMessage) error {
	if !c.IsConfigured() {
		return domain.ErrSenderNotConfigured
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to encode contact message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+submitPath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build contact request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		logger.Log.Error("Contact submission request failed", "error", err)
		return fmt.Errorf("contact submission failed: %w", err)
	}
	defer resp.Body.Close()

	// Success means an HTTP success status and a body that decodes without
	// an error field. The error detail is logged, never shown to the user.
	var result struct {
		Error string `json:"error"`
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_ = json.NewDecoder(resp.Body).Decode(&result) // best effort, for logs
		logger.Log.Error("Contact endpoint rejected submission",
			"status", resp.StatusCode, "detail", result.Error)
		return fmt.Errorf("contact endpoint returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		logger.Log.Error("Failed to parse contact endpoint response", "error", err)
		return fmt.Errorf("failed to parse contact endpoint response: %w", err)
	}
	if result.Error != "" {
		logger.Log.Error("Contact endpoint reported an error", "detail", result.Error)
		return fmt.Errorf("contact endpoint reported an error")
	}

	return nil
}
