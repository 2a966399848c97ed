package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberchat/backend/internal/config"
	"github.com/emberchat/backend/internal/logging"
)

type decisionBody struct {
	Path string `json:"path"`
	Code int    `json:"error_code"`
}

func newTestServer(t *testing.T) (*Server, string) {
	t.Helper()

	cfg := config.Default()
	cfg.Gate.UserDataDir = t.TempDir()
	cfg.Gate.InstallDir = t.TempDir()

	srv, err := New(cfg, logging.NewNop())
	require.NoError(t, err)
	return srv, cfg.Gate.UserDataDir
}

func postResolve(t *testing.T, srv *Server, scheme, url string) (*httptest.ResponseRecorder, decisionBody) {
	t.Helper()

	payload, err := json.Marshal(map[string]string{"scheme": scheme, "url": url})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/protocol/resolve", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	var body decisionBody
	if w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	}
	return w, body
}

func TestResolveAllowed(t *testing.T) {
	srv, userData := newTestServer(t)

	target := filepath.Join(userData, "attachments.noindex", "a.png")
	require.NoError(t, os.MkdirAll(filepath.Dir(target), 0o700))
	require.NoError(t, os.WriteFile(target, []byte("img"), 0o600))

	w, body := postResolve(t, srv, "file", "file://"+filepath.ToSlash(target))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Zero(t, body.Code)

	want, err := filepath.EvalSymlinks(target)
	require.NoError(t, err)
	assert.Equal(t, want, body.Path)
}

func TestResolveDeniedOutsideRoots(t *testing.T) {
	srv, _ := newTestServer(t)

	w, body := postResolve(t, srv, "file", "file:///etc/passwd")

	// Transport stays 200; the denial travels as the net error code.
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, -10, body.Code)
	assert.Empty(t, body.Path)
}

func TestResolveMissingURL(t *testing.T) {
	srv, _ := newTestServer(t)

	w, body := postResolve(t, srv, "file", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, -300, body.Code)
}

func TestResolveDisabledScheme(t *testing.T) {
	srv, _ := newTestServer(t)

	for _, scheme := range []string{"javascript", "data", "http"} {
		_, body := postResolve(t, srv, scheme, scheme+"://payload")
		assert.Equal(t, -10, body.Code, "scheme %q", scheme)
	}
}

func TestResolveUnknownScheme(t *testing.T) {
	srv, _ := newTestServer(t)

	_, body := postResolve(t, srv, "magnet", "magnet:?xt=x")
	assert.Equal(t, -10, body.Code)
}

func TestResolveInvalidBody(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/protocol/resolve", bytes.NewReader([]byte("{not json")))
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestMetricsEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	postResolve(t, srv, "file", "file:///etc/passwd")

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "gate_decisions_total")
}

func TestNewRejectsMissingRoots(t *testing.T) {
	cfg := config.Default()
	cfg.Gate.InstallDir = t.TempDir()

	_, err := New(cfg, logging.NewNop())
	require.Error(t, err)
}
