//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/focuslog-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/focuslog-backend/internal/app"
	"github.com/heartmarshall/focuslog-backend/internal/auth"
	"github.com/heartmarshall/focuslog-backend/internal/config"
	"github.com/heartmarshall/focuslog-backend/pkg/clock"
)

const (
	jwtSecret = "test-secret-at-least-32-chars-long!!"
	jwtIssuer = "test-issuer"
)

var t0 = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

// ---------------------------------------------------------------------------
// Test server setup.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Clock  *clock.Fake
	jwt    *auth.JWTManager
}

type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer builds the full HTTP stack over a migrated test database
// with a fake clock starting at t0.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	clk := clock.NewFake(t0)

	cfg := &config.Config{
		Server: config.ServerConfig{MaxBodyBytes: 1 << 20},
		Auth: config.AuthConfig{
			JWTSecret: jwtSecret,
			JWTIssuer: jwtIssuer,
			Leeway:    30 * time.Second,
			TokenTTL:  time.Hour,
		},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PATCH,DELETE,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
			MaxAge:         86400,
		},
		Timer: config.TimerConfig{
			MaxSessionHours:  24,
			FutureSkew:       time.Minute,
			ListDefaultLimit: 50,
			ListMaxLimit:     200,
		},
	}

	handler, cleanup := app.NewHandler(cfg, logger, pool, clk)
	srv := httptest.NewServer(handler)
	t.Cleanup(func() {
		srv.Close()
		cleanup()
	})

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Clock:  clk,
		jwt:    auth.NewJWTManager(jwtSecret, jwtIssuer, time.Hour, 30*time.Second),
	}
}

// newUserToken mints a bearer token for a fresh owner id.
func (ts *testServer) newUserToken(t *testing.T) string {
	t.Helper()
	token, err := ts.jwt.IssueToken(uuid.New())
	require.NoError(t, err)
	return token
}

// ---------------------------------------------------------------------------
// Request helpers.
// ---------------------------------------------------------------------------

// do sends a JSON request and decodes a JSON response into a generic map.
// A nil body sends no payload. Empty responses decode to nil.
func (ts *testServer) do(t *testing.T, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) == 0 {
		return resp.StatusCode, nil
	}

	var result map[string]any
	require.NoError(t, json.Unmarshal(raw, &result), "body: %s", raw)
	return resp.StatusCode, result
}

// bootstrap seeds the account and returns the id of the first default category.
func (ts *testServer) bootstrap(t *testing.T, token string) string {
	t.Helper()
	status, body := ts.do(t, http.MethodPost, "/api/bootstrap", token, nil)
	require.Contains(t, []int{http.StatusCreated, http.StatusOK}, status)

	categories, ok := body["categories"].([]any)
	require.True(t, ok, "expected categories array")
	require.NotEmpty(t, categories)
	return str(t, categories[0], "id")
}

func str(t *testing.T, v any, key string) string {
	t.Helper()
	m, ok := v.(map[string]any)
	require.True(t, ok, "expected object, got %T", v)
	s, ok := m[key].(string)
	require.True(t, ok, "expected string %q in %v", key, m)
	return s
}

func num(t *testing.T, v any, key string) float64 {
	t.Helper()
	m, ok := v.(map[string]any)
	require.True(t, ok, "expected object, got %T", v)
	n, ok := m[key].(float64)
	require.True(t, ok, "expected number %q in %v", key, m)
	return n
}
