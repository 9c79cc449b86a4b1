package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

// Config holds the client configuration. Every field has a concrete default;
// the configuration is immutable after New returns.
type Config struct {
	// BaseURL is the platform API root, without a trailing slash.
	BaseURL string
	// APIKey, when non-empty, is sent as "Authorization: Bearer <APIKey>"
	// on every request. An empty key means no Authorization header is sent.
	APIKey string
	// Timeout bounds each network call, enforced by the transport.
	Timeout time.Duration
	// MaxRetries is the retry budget for GET requests that fail with a
	// transport error or a 5xx status. Non-GET requests are never retried.
	MaxRetries int
	// BlockchainEnabled records whether the ledger subsystem is active on
	// the target deployment. Advisory: operations are not gated locally.
	BlockchainEnabled bool
	// Debug enables pre-send and post-settle request logging.
	Debug bool
}

func defaultConfig() Config {
	return Config{
		BaseURL:           "http://localhost:8000/api",
		Timeout:           30 * time.Second,
		MaxRetries:        3,
		BlockchainEnabled: true,
	}
}

// Client is the Cortexa Campus SDK entry point. It owns the shared HTTP
// transport and configuration, and hands out domain sub-clients that all
// route through the same transport.
type Client struct {
	cfg        Config
	httpClient *http.Client
	logger     *zap.Logger
	limiter    *rate.Limiter
	tokens     oauth2.TokenSource

	// agent sub-clients — guarded by mu, one instance per agent type
	mu     sync.Mutex
	agents map[string]*AgentClient

	blockchain *BlockchainClient
	governance *GovernanceClient
}

// Option is a functional option for configuring a Client.
type Option func(*Client)

// WithBaseURL points the client at a platform deployment.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.cfg.BaseURL = strings.TrimRight(u, "/") }
}

// WithAPIKey sets the bearer token attached to every request.
func WithAPIKey(key string) Option {
	return func(c *Client) { c.cfg.APIKey = key }
}

// WithTimeout sets the per-call transport timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.cfg.Timeout = d }
}

// WithMaxRetries sets the GET retry budget. Zero disables retries.
func WithMaxRetries(n int) Option {
	return func(c *Client) { c.cfg.MaxRetries = n }
}

// WithBlockchainEnabled records whether the target deployment has the
// ledger subsystem enabled.
func WithBlockchainEnabled(enabled bool) Option {
	return func(c *Client) { c.cfg.BlockchainEnabled = enabled }
}

// WithDebug enables request/response logging. Without an explicit
// WithLogger, debug mode builds a zap production logger.
func WithDebug() Option {
	return func(c *Client) { c.cfg.Debug = true }
}

// WithLogger sets the logger used by the debug hooks.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithHTTPClient sets a custom http.Client, overriding the configured timeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithRateLimit throttles outgoing requests with a token bucket: rps is the
// steady-state requests per second, burst the maximum burst size.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) { c.limiter = rate.NewLimiter(rate.Limit(rps), burst) }
}

// WithTokenSource authenticates requests from an OAuth2 token source instead
// of a static API key. When set, it takes precedence over WithAPIKey.
func WithTokenSource(ts oauth2.TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

// New creates a Client with opts merged over the defaults. It always
// succeeds; an invalid base URL surfaces only when a call is attempted.
func New(opts ...Option) *Client {
	c := &Client{
		cfg:    defaultConfig(),
		agents: make(map[string]*AgentClient),
	}
	for _, o := range opts {
		o(c)
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: c.cfg.Timeout}
	}
	if c.logger == nil {
		if c.cfg.Debug {
			c.logger, _ = zap.NewProduction()
		} else {
			c.logger = zap.NewNop()
		}
	}
	c.blockchain = &BlockchainClient{c: c}
	c.governance = &GovernanceClient{c: c}
	return c
}

// Config returns a copy of the client configuration.
func (c *Client) Config() Config {
	return c.cfg
}

// Blockchain returns the credential/ledger sub-client. Exactly one instance
// exists for the life of the client.
func (c *Client) Blockchain() *BlockchainClient {
	if c == nil || c.blockchain == nil {
		// Zero-value client: hand back a sub-client whose calls fail
		// with ErrNotInitialized instead of a nil handle.
		return &BlockchainClient{c: c}
	}
	return c.blockchain
}

// Governance returns the compliance/audit sub-client. Exactly one instance
// exists for the life of the client.
func (c *Client) Governance() *GovernanceClient {
	if c == nil || c.governance == nil {
		return &GovernanceClient{c: c}
	}
	return c.governance
}

// UniversityContext fetches the institution snapshot. The result is a
// read-only projection, never cached by this layer.
func (c *Client) UniversityContext(ctx context.Context) (*UniversityContext, error) {
	var out UniversityContext
	if err := c.do(ctx, http.MethodGet, "/university/context", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Health probes the platform health endpoint.
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	var out HealthStatus
	if err := c.do(ctx, http.MethodGet, "/health", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// do is the generic request primitive shared by every operation. It sends
// method+path through the transport with body JSON-encoded, decodes a 2xx
// response into out, and propagates every failure unchanged to the caller.
// GET requests are retried up to MaxRetries times on transport errors and
// 5xx statuses, with exponential backoff.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	if c == nil || c.httpClient == nil {
		return ErrNotInitialized
	}

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
	}

	retries := 0
	if method == http.MethodGet {
		retries = c.cfg.MaxRetries
	}

	backoff := 100 * time.Millisecond
	var lastErr error
	for attempt := 0; ; attempt++ {
		err := c.send(ctx, method, path, payload, out)
		if err == nil {
			return nil
		}
		lastErr = err
		if attempt >= retries || !retryable(err) || ctx.Err() != nil {
			return lastErr
		}
		select {
		case <-ctx.Done():
			return lastErr
		case <-time.After(backoff):
		}
		backoff *= 2
	}
}

// send performs a single network attempt. The debug pre-hook fires strictly
// before the send and the post-hook strictly after settlement, exactly once
// per attempt regardless of outcome.
func (c *Client) send(ctx context.Context, method, path string, payload []byte, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return &terminalError{fmt.Errorf("rate limit wait: %w", err)}
		}
	}

	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	if c.tokens != nil {
		tok, err := c.tokens.Token()
		if err != nil {
			return fmt.Errorf("obtain token: %w", err)
		}
		tok.SetAuthHeader(req)
	} else if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	if c.cfg.Debug {
		c.logger.Debug("campus request",
			zap.String("method", method),
			zap.String("path", path),
		)
	}

	route := routeLabel(path)
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	requestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	if err != nil {
		requestsTotal.WithLabelValues(method, route, "error").Inc()
		if c.cfg.Debug {
			c.logger.Debug("campus request failed",
				zap.String("method", method),
				zap.String("path", path),
				zap.Error(err),
			)
		}
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	requestsTotal.WithLabelValues(method, route, strconv.Itoa(resp.StatusCode)).Inc()
	if readErr != nil {
		if c.cfg.Debug {
			c.logger.Debug("campus response read failed",
				zap.String("method", method),
				zap.String("path", path),
				zap.Error(readErr),
			)
		}
		return fmt.Errorf("read response: %w", readErr)
	}

	if resp.StatusCode >= 300 {
		if c.cfg.Debug {
			c.logger.Debug("campus request error",
				zap.Int("status", resp.StatusCode),
				zap.String("path", path),
				zap.ByteString("body", respBody),
			)
		}
		return &APIError{Status: resp.StatusCode, Method: method, Path: path, Body: respBody}
	}

	if c.cfg.Debug {
		c.logger.Debug("campus response",
			zap.Int("status", resp.StatusCode),
			zap.String("path", path),
		)
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			// The platform answered; another attempt cannot fix a
			// malformed body, and re-decoding into a half-populated out
			// would compound the damage.
			return &terminalError{fmt.Errorf("decode response: %w", err)}
		}
	}
	return nil
}

// terminalError marks a failure that settled after the platform answered.
// The retry loop never replays it.
type terminalError struct{ err error }

func (e *terminalError) Error() string { return e.err.Error() }
func (e *terminalError) Unwrap() error { return e.err }

// retryable reports whether err is worth another attempt: transport
// failures and 5xx responses. 4xx responses are the server's verdict
// on the request and are final, as are terminal failures (decode,
// limiter wait).
func retryable(err error) bool {
	var term *terminalError
	if errors.As(err, &term) {
		return false
	}
	if apiErr, ok := AsAPIError(err); ok {
		return apiErr.Status >= 500
	}
	return true
}
