// Package mailgw is the outbound adapter for the downstream mail gateway.
// It translates gateway HTTP responses into the fault taxonomy so the rest
// of the service never sees raw status codes.
package mailgw

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/asfuyao/outcome"
	"github.com/asfuyao/outcome/internal/domain/customer"
	"github.com/asfuyao/outcome/internal/platform/httpclient"
	"github.com/asfuyao/outcome/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.Mailer        = (*Client)(nil)
	_ ports.HealthChecker = (*Client)(nil)
)

// Client implements [ports.Mailer] against the gateway's send endpoint.
//
// The underlying [httpclient.Client] provides circuit breaking, retry with
// exponential backoff, rate limiting, and OpenTelemetry tracing for every
// outbound call.
type Client struct {
	http   *httpclient.Client
	logger *slog.Logger
}

// New creates a Client that sends requests through the given
// [httpclient.Client]. The client's BaseURL should point to the mail gateway
// root (e.g. "https://mail-gateway.example.com").
func New(client *httpclient.Client, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Client{http: client, logger: logger}
}

// sendRequest is the gateway's send payload.
type sendRequest struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// sendAck is the gateway's acceptance body.
type sendAck struct {
	MessageID string `json:"message_id"`
}

// Deliver sends a message via POST /api/v1/messages. The gateway answers
// 202 Accepted with a message ID; any other status is translated into a
// fault-backed error.
func (c *Client) Deliver(ctx context.Context, to string, msg customer.Message) error {
	payload, err := json.Marshal(sendRequest{To: to, Subject: msg.Subject, Body: msg.Body})
	if err != nil {
		return fmt.Errorf("marshaling send request: %w", err)
	}

	url := c.http.BaseURL() + "/api/v1/messages"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("creating send request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(ctx, req)
	if err != nil {
		// httpclient.Do can return both resp and err when retries are
		// exhausted on a retryable status (e.g. 5xx). Translate the HTTP
		// response rather than returning the raw retry error.
		if resp != nil {
			defer c.closeBody(ctx, resp)
			if resp.StatusCode != http.StatusAccepted {
				return TranslateHTTPError(resp)
			}
		}
		c.logger.ErrorContext(ctx, "send request failed",
			slog.String("url", url),
			slog.String("error", err.Error()),
		)
		return outcome.NewFault(outcome.KindInvalidState,
			fmt.Sprintf("mail gateway unreachable: %v", err))
	}
	defer c.closeBody(ctx, resp)

	if resp.StatusCode != http.StatusAccepted {
		translateErr := TranslateHTTPError(resp)
		c.logger.ErrorContext(ctx, "unexpected gateway status",
			slog.String("url", url),
			slog.Int("status", resp.StatusCode),
		)
		return translateErr
	}

	var ack sendAck
	if err := json.NewDecoder(resp.Body).Decode(&ack); err != nil {
		return outcome.NewFault(outcome.KindDataCorrupt,
			fmt.Sprintf("decoding gateway acknowledgment: %v", err))
	}

	c.logger.DebugContext(ctx, "message accepted by gateway",
		slog.String("message_id", ack.MessageID),
	)
	return nil
}

// closeBody closes an HTTP response body and logs on failure.
func (c *Client) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		c.logger.WarnContext(ctx, "failed to close response body",
			slog.String("error", err.Error()),
		)
	}
}

// Name returns the identifier used when this component is registered with a
// [ports.HealthRegistry]. It matches the service name of the underlying
// HTTP client, so traces, metrics, and readiness checks agree.
func (c *Client) Name() string {
	return c.http.Name()
}

// HealthCheck reports the gateway's availability based on the circuit
// breaker state of the underlying client. No network call is made: readiness
// reflects what the breaker already knows, and probing here would keep a
// failing gateway's breaker from recovering.
func (c *Client) HealthCheck(ctx context.Context) error {
	return c.http.HealthCheck(ctx)
}
