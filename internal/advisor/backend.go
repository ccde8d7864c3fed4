package advisor

import "context"

// Backend answers search and advice requests. HTTPBackend and MockEngine both
// implement it.
type Backend interface {
	Search(ctx context.Context, req SearchRequest) (SearchResponse, error)
	ProductAdvice(ctx context.Context, req AdviceRequest) (AdviceResponse, error)
}
