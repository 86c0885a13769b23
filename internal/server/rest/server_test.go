package rest

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	s, _, _ := newTestServer(t, nil)

	rec := do(s, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","service":"hotelbook-api"}`, rec.Body.String())
}

func TestCORS_AllowsFrontendWithCredentials(t *testing.T) {
	cfg := testConfig()
	cfg.FrontendURL = "https://hotels.example/"
	s, _, _ := newTestServer(t, cfg)

	req, _ := http.NewRequest(http.MethodOptions, "/api/auth/login", nil)
	req.Header.Set("Origin", "https://hotels.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := serve(s, req)

	assert.Equal(t, "https://hotels.example", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestSplitOrigins(t *testing.T) {
	assert.Equal(t, []string{"http://a", "http://b"}, splitOrigins(" http://a/ ,http://b,,"))
	assert.Equal(t, []string{"http://localhost:5173"}, splitOrigins(""))
}

func TestNoRoute_StaticAndFallback(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>app</html>"), 0o600))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "assets"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "assets", "app.js"), []byte("console.log(1)"), 0o600))

	cfg := testConfig()
	cfg.StaticDir = dir
	s, _, _ := newTestServer(t, cfg)

	rec := do(s, http.MethodGet, "/assets/app.js", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "console.log(1)", rec.Body.String())

	rec = do(s, http.MethodGet, "/my-hotels/new", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "app")

	rec = do(s, http.MethodGet, "/../../etc/passwd", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "app")

	rec = do(s, http.MethodGet, "/api/unknown", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Not Found"}`, rec.Body.String())
}

func TestNoRoute_DotDotAndDirectoriesFallBackToIndex(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>app</html>"), 0o600))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "assets"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "assets", "app.js"), []byte("console.log(1)"), 0o600))

	cfg := testConfig()
	cfg.StaticDir = dir
	s, _, _ := newTestServer(t, cfg)

	for _, target := range []string{"/assets", "/assets/../index.html", "/assets/../../secret", "/a/../assets/app.js"} {
		rec := do(s, http.MethodGet, target, "")
		require.Equal(t, http.StatusOK, rec.Code, target)
		if target == "/a/../assets/app.js" {
			assert.Equal(t, "console.log(1)", rec.Body.String())
			continue
		}
		assert.Contains(t, rec.Body.String(), "app", target)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/html", target)
	}
}

func TestNoRoute_WithoutStaticDir(t *testing.T) {
	s, _, _ := newTestServer(t, nil)

	rec := do(s, http.MethodGet, "/anything", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUserIDFromContext(t *testing.T) {
	_, ok := UserIDFromContext(context.Background())
	assert.False(t, ok)

	id, ok := UserIDFromContext(WithUserID(context.Background(), "u-7"))
	assert.True(t, ok)
	assert.Equal(t, "u-7", id)

	_, ok = UserIDFromContext(WithUserID(context.Background(), ""))
	assert.False(t, ok)
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	s, _, _ := newTestServer(t, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- s.Run(ctx)
	}()

	select {
	case err := <-done:
		t.Fatalf("server exited too early: %v", err)
	case <-time.After(150 * time.Millisecond):
	}

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error on graceful stop: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop within timeout after context cancel")
	}
}

func TestRun_ReturnsErrorOnBadAddress(t *testing.T) {
	cfg := testConfig()
	cfg.EndpointAddrHTTP = "127.0.0.1:99999"
	s, _, _ := newTestServer(t, cfg)

	if err := s.Run(context.Background()); err == nil {
		t.Fatal("expected error from Run on bad address, got nil")
	}
}
