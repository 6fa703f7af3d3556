// Package transport owns the one persistent HTTP session a provider
// uses and classifies request failures into the SDK error taxonomy.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/geomaps/locationkit/internal/observability"
	"github.com/geomaps/locationkit/pkg/errors"
)

// Session wraps a reusable HTTP client with a fixed per-request timeout
type Session struct {
	httpClient *http.Client
	timeout    time.Duration
	closeOnce  sync.Once
}

// NewSession creates a session with the given timeout. A nil httpClient
// gets a default client; a supplied one is used as-is (test seam).
func NewSession(timeout time.Duration, httpClient *http.Client) *Session {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Session{
		httpClient: httpClient,
		timeout:    timeout,
	}
}

// Do issues a GET or POST request and decodes the JSON response body
// into out. Status codes are checked before any body parse: 401/403
// surface as authentication errors, 429 as rate-limit, any other >= 400
// as an API error carrying the status and body text. Timeouts,
// connection failures, and undecodable bodies all surface as API errors.
func (s *Session) Do(ctx context.Context, method, rawURL string, params url.Values, body interface{}, headers map[string]string, out interface{}) error {
	method = strings.ToUpper(method)
	if method != http.MethodGet && method != http.MethodPost {
		return errors.NewValidationError(fmt.Sprintf("unsupported HTTP method: %s", method))
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return errors.NewAPIError("failed to encode request body", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	if len(params) > 0 {
		parsed, err := url.Parse(rawURL)
		if err != nil {
			return errors.NewAPIError("invalid request URL", err)
		}
		query := parsed.Query()
		for key, values := range params {
			for _, value := range values {
				query.Add(key, value)
			}
		}
		parsed.RawQuery = query.Encode()
		rawURL = parsed.String()
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reqBody)
	if err != nil {
		return errors.NewAPIError("failed to build request", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	requestID := uuid.NewString()
	start := time.Now()
	logger := observability.LoggerFromContext(ctx)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			logger.Debug().Str("request_id", requestID).Str("method", method).Msg("request timed out")
			return errors.NewAPIError(fmt.Sprintf("request timed out after %s", s.timeout), err)
		}
		return errors.NewAPIError("connection error", err)
	}
	defer resp.Body.Close()

	logger.Debug().
		Str("request_id", requestID).
		Str("method", method).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("request completed")

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return errors.NewAuthenticationError("invalid API key or insufficient permissions")
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return errors.NewRateLimitError("API rate limit exceeded, please try again later")
	}
	if resp.StatusCode >= 400 {
		text, _ := io.ReadAll(resp.Body)
		logger.Error().
			Str("request_id", requestID).
			Int("status", resp.StatusCode).
			Str("body", string(text)).
			Msg("request failed")
		return errors.NewAPIStatusError(resp.StatusCode, string(text))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.NewAPIError("failed to parse response body", err)
	}
	return nil
}

// Close releases the session's idle connections. Safe to call more
// than once; only the first call has effect.
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		s.httpClient.CloseIdleConnections()
	})
	return nil
}

func isTimeout(err error) bool {
	if stderrors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var urlErr *url.Error
	if stderrors.As(err, &urlErr) {
		return urlErr.Timeout()
	}
	return false
}
