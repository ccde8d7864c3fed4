package advisor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Veraticus/axox-storefront/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBackend(t *testing.T, attempts int, handler http.HandlerFunc) (*HTTPBackend, *int32) {
	t.Helper()

	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	backend, err := NewHTTPBackend(BackendConfig{
		BaseURL:     server.URL + "/",
		Timeout:     2 * time.Second,
		MaxAttempts: attempts,
		RetryDelay:  time.Millisecond,
	})
	require.NoError(t, err)

	return backend, &hits
}

func TestNewHTTPBackend_Validation(t *testing.T) {
	_, err := NewHTTPBackend(BackendConfig{})
	require.ErrorIs(t, err, common.ErrMissingConfig)

	_, err = NewHTTPBackend(BackendConfig{BaseURL: "ftp://example.com"})
	require.ErrorIs(t, err, common.ErrInvalidConfig)
}

func TestHTTPBackend_Search(t *testing.T) {
	backend, hits := newTestBackend(t, 1, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, searchPath, r.URL.Path)

		var req SearchRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "rower", req.Query)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"intent":{"goal":"Home gym"},"recommendations":[{"productId":"rx-200","explanation":"Quiet"}]}`))
	})

	resp, err := backend.Search(context.Background(), SearchRequest{Query: "rower"})
	require.NoError(t, err)
	assert.Equal(t, "Home gym", Deref(resp.Intent.Goal))
	assert.Equal(t, []string{"rx-200"}, recommendedIDs(resp))
	assert.Equal(t, []string{}, resp.Intent.Priorities)
	assert.Equal(t, int32(1), atomic.LoadInt32(hits))
}

func TestHTTPBackend_ProductAdvice(t *testing.T) {
	backend, _ := newTestBackend(t, 1, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, advicePath, r.URL.Path)
		_, _ = w.Write([]byte(`{"bestFor":["Rowers"],"fitNotes":[{"label":"Power","value":"None","ok":true}]}`))
	})

	resp, err := backend.ProductAdvice(context.Background(), AdviceRequest{ProductID: "rx-200"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Rowers"}, resp.BestFor)
	assert.Equal(t, []FitNote{{Label: "Power", Value: "None", OK: true}}, resp.FitNotes)
}

func TestHTTPBackend_Errors(t *testing.T) {
	tests := []struct {
		handler  http.HandlerFunc
		wantErr  error
		name     string
		attempts int
		wantHits int32
	}{
		{
			name:     "server error retried until attempts exhausted",
			attempts: 2,
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
			wantErr:  common.ErrBackendUnavailable,
			wantHits: 2,
		},
		{
			name:     "rate limited",
			attempts: 1,
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
			},
			wantErr:  common.ErrRateLimit,
			wantHits: 1,
		},
		{
			name:     "client error not retried",
			attempts: 3,
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"error":"bad query"}`))
			},
			wantErr:  common.ErrBackendRejected,
			wantHits: 1,
		},
		{
			name:     "malformed body",
			attempts: 3,
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`not json`))
			},
			wantErr:  common.ErrBackendRejected,
			wantHits: 1,
		},
		{
			name:     "missing recommendations",
			attempts: 1,
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"intent":{}}`))
			},
			wantErr:  common.ErrBackendRejected,
			wantHits: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend, hits := newTestBackend(t, tt.attempts, tt.handler)

			_, err := backend.Search(context.Background(), SearchRequest{Query: "x"})
			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantHits, atomic.LoadInt32(hits))
		})
	}
}

func TestHTTPBackend_ExhaustedRetriesWrapMaxRetries(t *testing.T) {
	backend, _ := newTestBackend(t, 2, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := backend.Search(context.Background(), SearchRequest{Query: "x"})
	require.ErrorIs(t, err, common.ErrMaxRetries)
	assert.True(t, common.IsRetryable(err))
}
