package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderwise/backend/internal/middleware"
)

const adminUI = "http://localhost:5173"

// trivialHandler is a minimal http.Handler that always returns 200.
var trivialHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func preflight(method, headers string) *httptest.ResponseRecorder {
	h := middleware.NewCORSHandler([]string{adminUI})(trivialHandler)
	req := httptest.NewRequest(http.MethodOptions, "/users/u1", nil)
	req.Header.Set("Origin", adminUI)
	req.Header.Set("Access-Control-Request-Method", method)
	// Browsers send Access-Control-Request-Headers in lowercase.
	req.Header.Set("Access-Control-Request-Headers", headers)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestCORSHandler_GET_AllowedOrigin(t *testing.T) {
	h := middleware.NewCORSHandler([]string{adminUI})(trivialHandler)

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set("Origin", adminUI)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, adminUI, rec.Header().Get("Access-Control-Allow-Origin"))
}

// TestCORSHandler_Preflight covers every non-simple method the admin UI
// sends, each with a bearer token and a JSON body.
func TestCORSHandler_Preflight(t *testing.T) {
	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete} {
		t.Run(method, func(t *testing.T) {
			rec := preflight(method, "authorization,content-type")

			assert.True(t, rec.Code == http.StatusNoContent || rec.Code == http.StatusOK,
				"expected 2xx for OPTIONS preflight, got %d", rec.Code)
			assert.Equal(t, adminUI, rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), method)
		})
	}
}

func TestCORSHandler_Preflight_UnknownHeaderRefused(t *testing.T) {
	rec := preflight(http.MethodPost, "x-internal-debug")

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

// TestCORSHandler_GET_DisallowedOrigin verifies that a request from a
// disallowed origin does not receive the Access-Control-Allow-Origin header.
// The response itself can still be 200; the browser blocks it.
func TestCORSHandler_GET_DisallowedOrigin(t *testing.T) {
	h := middleware.NewCORSHandler([]string{adminUI})(trivialHandler)

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set("Origin", "http://evil.example.com")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
