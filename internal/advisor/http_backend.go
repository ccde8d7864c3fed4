package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Veraticus/axox-storefront/internal/common"
	"github.com/Veraticus/axox-storefront/internal/service"
)

const (
	searchPath = "/api/ai/search"
	advicePath = "/api/ai/product-advice"

	defaultBackendTimeout = 10 * time.Second
	maxErrorBody          = 512
)

// BackendConfig configures an HTTPBackend.
type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
	// MaxAttempts bounds calls per request; 0 or 1 means a single attempt.
	MaxAttempts int
	RetryDelay  time.Duration
}

// HTTPBackend calls a remote recommendation service that speaks the same JSON
// shapes as the local API.
type HTTPBackend struct {
	httpClient *http.Client
	baseURL    string
	retryOpts  service.RetryOptions
}

// NewHTTPBackend creates a backend client for cfg.BaseURL.
func NewHTTPBackend(cfg BackendConfig) (*HTTPBackend, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("backend URL: %w", common.ErrMissingConfig)
	}
	if !strings.HasPrefix(cfg.BaseURL, "http://") && !strings.HasPrefix(cfg.BaseURL, "https://") {
		return nil, fmt.Errorf("backend URL %q must be http or https: %w", cfg.BaseURL, common.ErrInvalidConfig)
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultBackendTimeout
	}

	return &HTTPBackend{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		retryOpts: service.RetryOptions{
			MaxAttempts:  cfg.MaxAttempts,
			InitialDelay: cfg.RetryDelay,
		},
	}, nil
}

// Search posts req to the backend search endpoint.
func (b *HTTPBackend) Search(ctx context.Context, req SearchRequest) (SearchResponse, error) {
	var resp SearchResponse
	if err := b.post(ctx, searchPath, req, &resp); err != nil {
		return SearchResponse{}, err
	}
	if resp.Recommendations == nil {
		return SearchResponse{}, fmt.Errorf("search response has no recommendations field: %w", common.ErrBackendRejected)
	}
	if resp.Intent.Priorities == nil {
		resp.Intent.Priorities = []string{}
	}
	return resp, nil
}

// ProductAdvice posts req to the backend advice endpoint.
func (b *HTTPBackend) ProductAdvice(ctx context.Context, req AdviceRequest) (AdviceResponse, error) {
	var resp AdviceResponse
	if err := b.post(ctx, advicePath, req, &resp); err != nil {
		return AdviceResponse{}, err
	}
	return resp, nil
}

func (b *HTTPBackend) post(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	return common.WithRetry(ctx, func() error {
		return b.do(ctx, path, body, out)
	}, b.retryOpts)
}

func (b *HTTPBackend) do(ctx context.Context, path string, body []byte, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return &common.RetryableError{Err: fmt.Errorf("failed to create request: %w", err), Retryable: false}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return &common.RetryableError{
			Err:       fmt.Errorf("%w: %w", common.ErrBackendUnavailable, err),
			Retryable: !errors.Is(err, context.Canceled),
		}
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &common.RetryableError{
			Err:       fmt.Errorf("%w: failed to read response: %w", common.ErrBackendUnavailable, err),
			Retryable: true,
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return classifyStatus(resp.StatusCode, data)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return &common.RetryableError{
			Err:       fmt.Errorf("%w: failed to parse response: %w", common.ErrBackendRejected, err),
			Retryable: false,
		}
	}

	return nil
}

func classifyStatus(status int, body []byte) error {
	snippet := string(body)
	if len(snippet) > maxErrorBody {
		snippet = snippet[:maxErrorBody]
	}

	switch {
	case status == http.StatusTooManyRequests:
		return &common.RetryableError{
			Err:       fmt.Errorf("%w (status %d): %w", common.ErrBackendUnavailable, status, common.ErrRateLimit),
			Retryable: true,
		}
	case status >= 500:
		return &common.RetryableError{
			Err:       fmt.Errorf("%w (status %d): %s", common.ErrBackendUnavailable, status, snippet),
			Retryable: true,
		}
	default:
		return &common.RetryableError{
			Err:       fmt.Errorf("%w (status %d): %s", common.ErrBackendRejected, status, snippet),
			Retryable: false,
		}
	}
}
