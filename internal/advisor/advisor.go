package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Veraticus/axox-storefront/internal/catalog"
	"github.com/Veraticus/axox-storefront/internal/common"
)

// Source records which engine produced a response.
type Source string

// Response sources.
const (
	SourceBackend Source = "backend"
	SourceCache   Source = "cache"
	SourceLocal   Source = "local"
)

// AnswersOnlyQuery replaces an empty query when the shopper has answered
// clarifying questions.
const AnswersOnlyQuery = "Help me decide"

// ErrEmptyQuery is returned for a blank query with no answers.
var ErrEmptyQuery = errors.New("search query is empty")

// Config configures an Advisor.
type Config struct {
	BackendURL  string
	Timeout     time.Duration
	MaxAttempts int
	RateLimit   int
	CacheTTL    time.Duration
}

// Advisor answers shopper requests through the configured backend and falls
// back to the local engine exactly once when the backend cannot answer.
type Advisor struct {
	backend     Backend
	local       Backend
	searchCache *responseCache[SearchResponse]
	adviceCache *responseCache[AdviceResponse]
	limiter     *rateLimiter
	logger      *slog.Logger
}

// New creates an Advisor over cat. Without a BackendURL it answers locally.
func New(cfg Config, cat *catalog.Catalog, logger *slog.Logger) (*Advisor, error) {
	local := NewMockEngine(cat)
	if cfg.BackendURL == "" {
		return NewWithBackend(nil, local, cfg, logger), nil
	}

	backend, err := NewHTTPBackend(BackendConfig{
		BaseURL:     cfg.BackendURL,
		Timeout:     cfg.Timeout,
		MaxAttempts: cfg.MaxAttempts,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create recommendation backend: %w", err)
	}

	return NewWithBackend(backend, local, cfg, logger), nil
}

// NewWithBackend wires an Advisor from explicit engines. backend may be nil.
func NewWithBackend(backend, local Backend, cfg Config, logger *slog.Logger) *Advisor {
	if logger == nil {
		logger = slog.Default()
	}

	a := &Advisor{
		backend: backend,
		local:   local,
		logger:  logger,
	}
	if backend != nil {
		a.searchCache = newResponseCache[SearchResponse](cfg.CacheTTL)
		a.adviceCache = newResponseCache[AdviceResponse](cfg.CacheTTL)
		a.limiter = newRateLimiter(cfg.RateLimit)
	}
	return a
}

// HasBackend reports whether a remote backend is configured.
func (a *Advisor) HasBackend() bool {
	return a.backend != nil
}

// Search answers a search request. A blank query with answers is rewritten to
// AnswersOnlyQuery; a blank query without answers fails with ErrEmptyQuery.
func (a *Advisor) Search(ctx context.Context, req SearchRequest) (SearchResponse, Source, error) {
	req, err := normalizeQuery(req)
	if err != nil {
		return SearchResponse{}, "", err
	}

	if a.backend == nil {
		resp, err := a.local.Search(ctx, req)
		return resp, SourceLocal, err
	}

	key := cacheKey("search", req)
	if resp, ok := a.searchCache.get(key); ok {
		return resp, SourceCache, nil
	}

	if a.limiter.tryAcquire() {
		resp, err := a.backend.Search(ctx, req)
		if err == nil {
			a.searchCache.set(key, resp)
			return resp, SourceBackend, nil
		}
		if errors.Is(ctx.Err(), context.Canceled) {
			return SearchResponse{}, "", ctx.Err()
		}
		a.logger.Warn("Recommendation backend failed, answering locally",
			"operation", "search",
			"error", err)
	} else {
		a.logger.Warn("Recommendation backend rate limited, answering locally",
			"operation", "search")
	}

	resp, err := a.local.Search(ctx, req)
	return resp, SourceLocal, err
}

// ProductAdvice answers an advice request. Unknown product ids yield
// common.ErrNotFound from the local engine.
func (a *Advisor) ProductAdvice(ctx context.Context, req AdviceRequest) (AdviceResponse, Source, error) {
	if req.ProductID == "" {
		return AdviceResponse{}, "", common.NewUserError("product id is required", common.ErrNotFound)
	}

	if a.backend == nil {
		resp, err := a.local.ProductAdvice(ctx, req)
		return resp, SourceLocal, err
	}

	key := cacheKey("advice", req)
	if resp, ok := a.adviceCache.get(key); ok {
		return resp, SourceCache, nil
	}

	if a.limiter.tryAcquire() {
		resp, err := a.backend.ProductAdvice(ctx, req)
		if err == nil {
			a.adviceCache.set(key, resp)
			return resp, SourceBackend, nil
		}
		if errors.Is(ctx.Err(), context.Canceled) {
			return AdviceResponse{}, "", ctx.Err()
		}
		a.logger.Warn("Recommendation backend failed, answering locally",
			"operation", "product_advice",
			"product_id", req.ProductID,
			"error", err)
	} else {
		a.logger.Warn("Recommendation backend rate limited, answering locally",
			"operation", "product_advice")
	}

	resp, err := a.local.ProductAdvice(ctx, req)
	return resp, SourceLocal, err
}

// Close releases background resources.
func (a *Advisor) Close() {
	if a.backend == nil {
		return
	}
	a.searchCache.Close()
	a.adviceCache.Close()
	a.limiter.Close()
}

func cacheKey(kind string, req any) string {
	data, err := json.Marshal(req)
	if err != nil {
		return ""
	}
	return kind + ":" + string(data)
}
