package auction

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"plate-auction-web/internal/models"
	"plate-auction-web/internal/plateerrors"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	opListPlates = "list_plates"
	opSubmitBid  = "submit_bid"

	// maxErrorBody caps how much of an error response is kept for logs
	maxErrorBody = 4 << 10
)

// Client talks to the auction REST API over HTTP with bearer auth
type Client struct {
	baseURL    string
	httpClient *http.Client
	metrics    *Metrics
}

// Option customizes a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithMetrics records upstream call metrics
func WithMetrics(m *Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// NewClient creates a client for the auction service rooted at baseURL
func NewClient(baseURL string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListPlates handles GET /plates/
func (c *Client) ListPlates(ctx context.Context, token string) ([]models.PlateListing, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/plates/", token, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opListPlates, err)
	}

	resp, err := c.do(req, opListPlates)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var plates []models.PlateListing
	if err := json.NewDecoder(resp.Body).Decode(&plates); err != nil {
		return nil, fmt.Errorf("%s: decode response: %w: %w", opListPlates, plateerrors.ErrTransport, err)
	}
	if plates == nil {
		plates = []models.PlateListing{}
	}
	return plates, nil
}

// SubmitBid handles POST /bid/{plate_id}/
func (c *Client) SubmitBid(ctx context.Context, token string, bid models.BidRequest) error {
	body, err := json.Marshal(bid)
	if err != nil {
		return fmt.Errorf("%s: encode bid: %w", opSubmitBid, err)
	}

	path := "/bid/" + strconv.FormatInt(bid.PlateID, 10) + "/"
	req, err := c.newRequest(ctx, http.MethodPost, path, token, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%s: %w", opSubmitBid, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.do(req, opSubmitBid)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	// the response body is undocumented; drain it so the connection is reused
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

func (c *Client) newRequest(ctx context.Context, method, path, token string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	if id := RequestIDFromContext(ctx); id != "" {
		req.Header.Set("X-Request-ID", id)
	}
	return req, nil
}

// do sends the request and turns every non-2xx answer into a *StatusError.
// The caller owns the body of a successful response.
func (c *Client) do(req *http.Request, op string) (*http.Response, error) {
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.observe(op, "transport_error", time.Since(start))
		return nil, fmt.Errorf("%s: %w: %w", op, plateerrors.ErrTransport, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.metrics.observe(op, strconv.Itoa(resp.StatusCode), time.Since(start))
		return nil, &StatusError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(snippet)),
		}
	}

	c.metrics.observe(op, "ok", time.Since(start))
	return resp, nil
}
