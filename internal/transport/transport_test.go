package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geomaps/locationkit/pkg/errors"
)

func newTestSession(t *testing.T, handler http.HandlerFunc) (*Session, string) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewSession(5*time.Second, server.Client()), server.URL
}

func TestDo_UnsupportedMethod(t *testing.T) {
	var called bool
	session, url := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})
	defer session.Close()

	err := session.Do(context.Background(), http.MethodPut, url, nil, nil, nil, nil)
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
	assert.False(t, called, "no request should be issued for an unsupported method")
}

func TestDo_QueryParamsAndHeaders(t *testing.T) {
	session, url := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "hello", r.URL.Query().Get("text"))
		assert.Equal(t, "secret", r.URL.Query().Get("apiKey"))
		assert.Equal(t, "value", r.Header.Get("X-Custom"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok": true}`))
	})
	defer session.Close()

	params := map[string][]string{"text": {"hello"}, "apiKey": {"secret"}}
	var out map[string]interface{}
	err := session.Do(context.Background(), http.MethodGet, url, params, nil, map[string]string{"X-Custom": "value"}, &out)
	require.NoError(t, err)
	assert.Equal(t, true, out["ok"])
}

func TestDo_PostBody(t *testing.T) {
	session, url := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "drive", body["mode"])
		_, _ = w.Write([]byte(`{}`))
	})
	defer session.Close()

	body := map[string]string{"mode": "drive"}
	var out map[string]interface{}
	err := session.Do(context.Background(), http.MethodPost, url, nil, body, nil, &out)
	assert.NoError(t, err)
}

func TestDo_StatusClassification(t *testing.T) {
	tests := []struct {
		name   string
		status int
		check  func(error) bool
	}{
		{"401 is authentication", http.StatusUnauthorized, errors.IsAuthentication},
		{"403 is authentication", http.StatusForbidden, errors.IsAuthentication},
		{"429 is rate limit", http.StatusTooManyRequests, errors.IsRateLimit},
		{"500 is api", http.StatusInternalServerError, errors.IsAPI},
		{"400 is api", http.StatusBadRequest, errors.IsAPI},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, url := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"message":"nope"}`))
			})
			defer session.Close()

			err := session.Do(context.Background(), http.MethodGet, url, nil, nil, nil, nil)
			require.Error(t, err)
			assert.True(t, tt.check(err))
		})
	}
}

func TestDo_APIErrorCarriesStatusAndBody(t *testing.T) {
	session, url := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"bad request"}`))
	})
	defer session.Close()

	err := session.Do(context.Background(), http.MethodGet, url, nil, nil, nil, nil)
	require.Error(t, err)

	var sdkErr *errors.Error
	require.ErrorAs(t, err, &sdkErr)
	assert.Equal(t, http.StatusBadRequest, sdkErr.StatusCode)
	assert.Equal(t, `{"message":"bad request"}`, sdkErr.Body)
}

func TestDo_UnparseableBody(t *testing.T) {
	session, url := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	})
	defer session.Close()

	var out map[string]interface{}
	err := session.Do(context.Background(), http.MethodGet, url, nil, nil, nil, &out)
	require.Error(t, err)
	assert.True(t, errors.IsAPI(err))
}

func TestDo_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	t.Cleanup(server.Close)

	session := NewSession(20*time.Millisecond, &http.Client{Timeout: 20 * time.Millisecond})
	defer session.Close()

	err := session.Do(context.Background(), http.MethodGet, server.URL, nil, nil, nil, nil)
	require.Error(t, err)
	assert.True(t, errors.IsAPI(err))
	assert.Contains(t, err.Error(), "timed out")
}

func TestDo_ConnectionFailure(t *testing.T) {
	session := NewSession(time.Second, nil)
	defer session.Close()

	err := session.Do(context.Background(), http.MethodGet, "http://127.0.0.1:1", nil, nil, nil, nil)
	require.Error(t, err)
	assert.True(t, errors.IsAPI(err))
	assert.Contains(t, err.Error(), "connection error")
}

func TestClose_Idempotent(t *testing.T) {
	session := NewSession(time.Second, nil)
	assert.NoError(t, session.Close())
	assert.NoError(t, session.Close())
}
