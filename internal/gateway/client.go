package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/employee-console/internal/config"
	"github.com/spec-kit/employee-console/pkg/util/faultutil"
)

// Client issues typed CRUD requests against the remote HR API. Every
// operation performs exactly one HTTP request; there are no retries and no
// timeout beyond the shared http.Client's. Failures surface immediately as
// faults and the client never touches the collection store.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// NewClient builds a gateway client for the configured upstream.
func NewClient(cfg config.UpstreamConfig, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout()},
		logger:  logger,
	}
}

// Ping probes upstream reachability with a single list request.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/departments", nil, nil)
}

// errorPayload is the structured error body the HR API returns on
// non-success statuses.
type errorPayload struct {
	Message string `json:"message"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return faultutil.NewInternal(fmt.Errorf("encode request: %w", err))
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return faultutil.NewInternal(fmt.Errorf("build request: %w", err))
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return faultutil.NewTransport("upstream unreachable", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.faultFromResponse(method, path, resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return faultutil.NewTransport("decode upstream response", err)
	}
	return nil
}

// faultFromResponse extracts the structured error message when the body
// carries one, else reports a generic transport fault. 404 keeps its own
// kind so stale targets remain distinguishable upstream of the controller.
func (c *Client) faultFromResponse(method, path string, resp *http.Response) error {
	var payload errorPayload
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	_ = json.Unmarshal(raw, &payload)

	c.logger.Debug("upstream request failed",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.String("message", payload.Message))

	if resp.StatusCode == http.StatusNotFound {
		message := payload.Message
		if message == "" {
			message = "resource not found"
		}
		return faultutil.NewNotFound(message)
	}
	if payload.Message != "" {
		return faultutil.NewValidation(payload.Message)
	}
	return faultutil.NewTransport(fmt.Sprintf("upstream returned status %d", resp.StatusCode), nil)
}
