package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newCORSServer(origins ...string) *echo.Echo {
	e := echo.New()
	e.Pre(CORS(origins))
	e.GET("/api/v1/airports/popular", func(c echo.Context) error {
		return c.String(http.StatusOK, "[]")
	})
	return e
}

func TestCORS_Preflight(t *testing.T) {
	tests := []struct {
		name           string
		requestHeaders string
		wantOrigin     string
	}{
		{name: "no request headers", requestHeaders: "", wantOrigin: "http://localhost:8081"},
		{name: "authorization", requestHeaders: "authorization", wantOrigin: "http://localhost:8081"},
		{name: "authorization and content type", requestHeaders: "authorization,content-type", wantOrigin: "http://localhost:8081"},
		{name: "request id", requestHeaders: "x-request-id", wantOrigin: "http://localhost:8081"},
		{name: "header not allowed", requestHeaders: "x-api-key", wantOrigin: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newCORSServer("http://localhost:8081")

			req := httptest.NewRequest(http.MethodOptions, "/api/v1/airports/popular", nil)
			req.Header.Set("Origin", "http://localhost:8081")
			req.Header.Set("Access-Control-Request-Method", http.MethodGet)
			if tt.requestHeaders != "" {
				req.Header.Set("Access-Control-Request-Headers", tt.requestHeaders)
			}
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusNoContent, rec.Code)
			assert.Equal(t, tt.wantOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
			if tt.wantOrigin != "" {
				assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodGet)
			}
		})
	}
}

func TestCORS_SimpleRequest(t *testing.T) {
	e := newCORSServer("http://localhost:8081")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/airports/popular", nil)
	req.Header.Set("Origin", "http://localhost:8081")
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:8081", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.True(t, strings.EqualFold(RequestIDHeader, rec.Header().Get("Access-Control-Expose-Headers")))
}

func TestCORS_DisallowedOrigin(t *testing.T) {
	e := newCORSServer("http://localhost:8081")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/airports/popular", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_Wildcard(t *testing.T) {
	e := newCORSServer("*")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/airports/popular", nil)
	req.Header.Set("Origin", "https://anything.example.com")
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
