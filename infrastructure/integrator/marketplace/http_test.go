package marketplace

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string, retries int) *HTTPClient {
	return NewHTTPClient(Options{
		Name:       "teste",
		BaseURL:    baseURL,
		Timeout:    5 * time.Second,
		MaxRetries: retries,
		RetryDelay: time.Millisecond,
	}, func(ctx context.Context, req *http.Request) error {
		req.Header.Set("Client-Id", "123")
		req.Header.Set("Api-Key", "secret")
		return nil
	})
}

func TestHTTPClient_Post(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/report/info", r.URL.Path)
		assert.Equal(t, "123", r.Header.Get("Client-Id"))
		assert.Equal(t, "secret", r.Header.Get("Api-Key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"code":"abc"}`, string(body))

		w.Write([]byte(`{"result":{"status":"success","file":"https://files/x.csv"}}`))
	}))
	defer server.Close()

	var out struct {
		Result struct {
			Status string `json:"status"`
			File   string `json:"file"`
		} `json:"result"`
	}

	client := newTestClient(server.URL, 0)
	err := client.Post(context.Background(), "/v1/report/info", map[string]string{"code": "abc"}, &out)

	require.NoError(t, err)
	assert.Equal(t, "success", out.Result.Status)
	assert.Equal(t, "https://files/x.csv", out.Result.File)
}

func TestHTTPClient_GetQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "2024-06-10", r.URL.Query().Get("dateFrom"))
		w.Write([]byte(`{"rows":[]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, 0)
	err := client.Get(context.Background(), "/daily", url.Values{"dateFrom": {"2024-06-10"}}, nil)
	assert.NoError(t, err)
}

func TestHTTPClient_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"invalid filter"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, 3)
	err := client.Post(context.Background(), "/v3/finance/transaction/list", nil, nil)

	var upstreamErr *UpstreamError
	require.True(t, errors.As(err, &upstreamErr))
	assert.Equal(t, http.StatusBadRequest, upstreamErr.StatusCode)
	assert.Equal(t, `{"message":"invalid filter"}`, upstreamErr.Body)
	assert.Equal(t, http.MethodPost, upstreamErr.Method)
}

func TestHTTPClient_RetriesTooManyRequests(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	var out struct {
		OK bool `json:"ok"`
	}

	client := newTestClient(server.URL, 3)
	err := client.Get(context.Background(), "/limited", nil, &out)

	require.NoError(t, err)
	assert.True(t, out.OK)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestHTTPClient_RetriesExhausted(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := newTestClient(server.URL, 2)
	err := client.Get(context.Background(), "/limited", nil, nil)

	var upstreamErr *UpstreamError
	require.True(t, errors.As(err, &upstreamErr))
	assert.Equal(t, http.StatusTooManyRequests, upstreamErr.StatusCode)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}
