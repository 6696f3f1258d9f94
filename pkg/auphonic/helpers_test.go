package auphonic

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/akordowski/auphonic-go/pkg/precondition"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testClientID     = "client-id"
	testClientSecret = "client-secret"
	testToken        = "token-abc"
)

// recordedRequest is a snapshot of a request received by the mock server.
type recordedRequest struct {
	Method        string
	Path          string
	RawQuery      string
	Authorization string
	ContentType   string
	Body          string
}

type mockServer struct {
	*httptest.Server
	mu       sync.Mutex
	requests []recordedRequest
	hits     atomic.Int32
}

func (m *mockServer) last(t *testing.T) recordedRequest {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	require.NotEmpty(t, m.requests, "no request reached the server")
	return m.requests[len(m.requests)-1]
}

// newMockServer starts a server that records every request and answers with
// status and body.
func newMockServer(t *testing.T, status int, body string) *mockServer {
	t.Helper()
	return newMockServerFunc(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	})
}

func newMockServerFunc(t *testing.T, handler http.HandlerFunc) *mockServer {
	t.Helper()
	m := &mockServer{}
	m.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		m.hits.Add(1)
		m.mu.Lock()
		m.requests = append(m.requests, recordedRequest{
			Method:        r.Method,
			Path:          r.URL.Path,
			RawQuery:      r.URL.RawQuery,
			Authorization: r.Header.Get("Authorization"),
			ContentType:   r.Header.Get("Content-Type"),
			Body:          string(b),
		})
		m.mu.Unlock()
		r.Body = io.NopCloser(bytes.NewReader(b))
		handler(w, r)
	}))
	t.Cleanup(m.Close)
	return m
}

// newTestClient returns a client pointed at srv.
func newTestClient(t *testing.T, srv *mockServer, opts ...ClientOption) *Client {
	t.Helper()
	opts = append([]ClientOption{WithHTTPClient(srv.Client())}, opts...)
	c, err := New(testClientID, testClientSecret, opts...)
	require.NoError(t, err)
	c.baseURL = srv.URL
	return c
}

func newAuthenticatedClient(t *testing.T, srv *mockServer, opts ...ClientOption) *Client {
	t.Helper()
	c := newTestClient(t, srv, opts...)
	require.NoError(t, c.Authenticate(testToken))
	return c
}

func envelope(data string) string {
	return `{"data":` + data + `,"error_code":null,"error_message":"","form_errors":{},"status_code":200}`
}

func requireAuthError(t *testing.T, err error, message string) {
	t.Helper()
	require.Error(t, err)
	var authErr *AuthenticationError
	require.True(t, errors.As(err, &authErr), "expected *AuthenticationError, got %T: %v", err, err)
	assert.Equal(t, message, authErr.Message)
	assert.ErrorIs(t, err, ErrAuthentication)
}

func requireAPIError(t *testing.T, err error) *APIError {
	t.Helper()
	require.Error(t, err)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr), "expected *APIError, got %T: %v", err, err)
	return apiErr
}

func requireArgumentError(t *testing.T, err error, kind precondition.Kind, param string) {
	t.Helper()
	require.Error(t, err)
	var argErr *precondition.ArgumentError
	require.True(t, errors.As(err, &argErr), "expected *precondition.ArgumentError, got %T: %v", err, err)
	assert.Equal(t, kind, argErr.Kind)
	assert.Equal(t, param, argErr.Param)
}

func jsonUnmarshal(data string, v any) error {
	return json.Unmarshal([]byte(data), v)
}
