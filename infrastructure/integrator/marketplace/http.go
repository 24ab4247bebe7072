package marketplace

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Authorizer adiciona os cabeçalhos de autenticação do marketplace na requisição
type Authorizer func(ctx context.Context, req *http.Request) error

type Options struct {
	Name              string
	BaseURL           string
	Timeout           time.Duration
	RequestsPerSecond float64
	MaxRetries        int
	RetryDelay        time.Duration
}

type HTTPClient struct {
	name       string
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	authorize  Authorizer
	maxRetries int
	retryDelay time.Duration
}

func NewHTTPClient(opts Options, authorize Authorizer) *HTTPClient {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	limit := rate.Inf
	burst := 1
	if opts.RequestsPerSecond > 0 {
		limit = rate.Limit(opts.RequestsPerSecond)
		burst = int(opts.RequestsPerSecond)
		if burst < 1 {
			burst = 1
		}
	}

	return &HTTPClient{
		name:    opts.Name,
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		limiter:    rate.NewLimiter(limit, burst),
		authorize:  authorize,
		maxRetries: opts.MaxRetries,
		retryDelay: opts.RetryDelay,
	}
}

func (c *HTTPClient) Get(ctx context.Context, path string, query url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint = endpoint + "?" + query.Encode()
	}
	return c.do(ctx, http.MethodGet, endpoint, nil, out)
}

func (c *HTTPClient) Post(ctx context.Context, path string, body any, out any) error {
	var payload []byte
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("erro ao serializar o corpo da requisição: %w", err)
		}
		payload = encoded
	}
	return c.do(ctx, http.MethodPost, c.baseURL+path, payload, out)
}

func (c *HTTPClient) do(ctx context.Context, method, endpoint string, payload []byte, out any) error {
	for attempt := 0; ; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}

		status, body, err := c.send(ctx, method, endpoint, payload)
		if err != nil {
			return err
		}

		if isRetryable(status) && attempt < c.maxRetries {
			delay := c.retryDelay * time.Duration(1<<attempt)
			logrus.WithFields(logrus.Fields{
				"client":  c.name,
				"url":     endpoint,
				"status":  status,
				"attempt": attempt + 1,
				"delay":   delay.String(),
			}).Warn("Marketplace pediu para aguardar, tentando novamente")

			if err := sleep(ctx, delay); err != nil {
				return err
			}
			continue
		}

		if status >= http.StatusBadRequest {
			logrus.WithFields(logrus.Fields{
				"client": c.name,
				"method": method,
				"url":    endpoint,
				"status": status,
				"body":   string(body),
			}).Warn("Resposta de erro do marketplace")

			return &UpstreamError{
				Method:     method,
				URL:        endpoint,
				StatusCode: status,
				Body:       string(body),
			}
		}

		if out == nil || len(body) == 0 {
			return nil
		}

		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("erro ao decodificar a resposta de %s: %w", endpoint, err)
		}

		return nil
	}
}

func (c *HTTPClient) send(ctx context.Context, method, endpoint string, payload []byte) (int, []byte, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.authorize != nil {
		if err := c.authorize(ctx, req); err != nil {
			return 0, nil, fmt.Errorf("erro ao autenticar a requisição: %w", err)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("erro ao ler a resposta: %w", err)
	}

	return resp.StatusCode, body, nil
}

func isRetryable(status int) bool {
	switch status {
	case http.StatusTooManyRequests, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	}
	return false
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
