package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"endocare/internal/logging"
)

const healthCheckEndpoint = "/get_all_sleep"

// Config mirrors the knobs the mobile client hardcoded. Zero values
// fall back to the production defaults.
type Config struct {
	BaseURL            string
	HTTPClient         *http.Client
	RequestTimeout     time.Duration
	HealthCheckTimeout time.Duration
	MaxRetries         int
	Logger             *logging.Logger

	// Sleep is swapped out by tests to observe the backoff schedule.
	Sleep func(time.Duration)
}

// Client is the remote access layer: every call runs under a fixed
// timeout, retries transient failures on a fixed delay schedule, and
// surfaces classified *APIError values.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	requestTimeout time.Duration
	healthTimeout  time.Duration
	maxRetries     int
	log            *logging.Logger
	sleep          func(time.Duration)
}

func New(cfg Config) *Client {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{}
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 10 * time.Second
	}
	if cfg.HealthCheckTimeout <= 0 {
		cfg.HealthCheckTimeout = 2 * time.Second
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.NewNop()
	}
	if cfg.Sleep == nil {
		cfg.Sleep = time.Sleep
	}
	return &Client{
		baseURL:        cfg.BaseURL,
		httpClient:     cfg.HTTPClient,
		requestTimeout: cfg.RequestTimeout,
		healthTimeout:  cfg.HealthCheckTimeout,
		maxRetries:     cfg.MaxRetries,
		log:            cfg.Logger,
		sleep:          cfg.Sleep,
	}
}

// Ping probes a known-cheap endpoint to gate a full data load. It uses
// a short timeout and a smaller retry budget, and retries on any
// failure, reachable-but-erroring servers included.
func (client *Client) Ping(ctx context.Context) error {
	policy := RetryPolicy{MaxRetries: 2, Delays: HealthCheckDelays, Sleep: client.sleep}
	retryAll := func(error) bool { return true }
	err := policy.Do(retryAll, func(attempt int) error {
		_, err := client.attempt(ctx, http.MethodGet, healthCheckEndpoint, nil, client.healthTimeout, attempt, policy.MaxRetries)
		return err
	})
	if err != nil {
		return fmt.Errorf("health check: %w", err)
	}
	return nil
}

// request issues one endpoint call under the standard data-call policy
// and returns the raw success body.
func (client *Client) request(ctx context.Context, method string, endpoint string, body any) ([]byte, error) {
	policy := RetryPolicy{MaxRetries: client.maxRetries, Delays: DefaultDelays, Sleep: client.sleep}
	return client.do(ctx, method, endpoint, body, policy, client.requestTimeout)
}

func (client *Client) do(ctx context.Context, method string, endpoint string, body any, policy RetryPolicy, timeout time.Duration) ([]byte, error) {
	var payload []byte
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode %s body: %w", endpoint, err)
		}
		payload = encoded
	}

	var result []byte
	err := policy.Do(IsRetryable, func(attempt int) error {
		response, err := client.attempt(ctx, method, endpoint, payload, timeout, attempt, policy.MaxRetries)
		if err != nil {
			return err
		}
		result = response
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// attempt performs a single HTTP exchange. Failures come back as
// *APIError: status 0 for network-level trouble, the response status
// otherwise, with Retryable set from the class of the failure.
func (client *Client) attempt(ctx context.Context, method string, endpoint string, payload []byte, timeout time.Duration, attempt int, maxRetries int) ([]byte, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	request, err := http.NewRequestWithContext(attemptCtx, method, client.baseURL+endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", endpoint, err)
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Accept", "application/json")
	// Lets the backend sit behind an ngrok tunnel during development.
	request.Header.Set("ngrok-skip-browser-warning", "true")

	started := time.Now()
	response, err := client.httpClient.Do(request)
	if err != nil {
		client.log.Warn("request failed",
			"method", method, "endpoint", endpoint,
			"attempt", attempt+1, "max_attempts", maxRetries+1,
			"error", err)
		return nil, &APIError{Endpoint: endpoint, Status: 0, Body: err.Error(), Retryable: true}
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		client.log.Warn("response read failed",
			"method", method, "endpoint", endpoint,
			"attempt", attempt+1, "error", err)
		return nil, &APIError{Endpoint: endpoint, Status: 0, Body: err.Error(), Retryable: true}
	}

	client.log.Debug("request finished",
		"method", method, "endpoint", endpoint,
		"attempt", attempt+1, "status", response.StatusCode,
		"duration", time.Since(started))

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		return body, nil
	}

	apiErr := &APIError{
		Endpoint:  endpoint,
		Status:    response.StatusCode,
		Body:      string(body),
		Retryable: response.StatusCode >= 500,
	}
	client.log.Warn("request rejected",
		"method", method, "endpoint", endpoint,
		"attempt", attempt+1, "status", response.StatusCode,
		"retryable", apiErr.Retryable)
	return nil, apiErr
}
