package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePath(t *testing.T) {
	cases := map[string]string{
		"/health":                          "/health",
		"/assets/index-BfK3x.js":           "/assets/*",
		"/api/inventory/port-company-pc61": "/api/inventory/:slug",
		"/api/inventory/format":            "/api/inventory/format",
		"/api/inventory-by-style/PC61":     "/api/inventory-by-style/:style",
		"/api/quote/screenprint":           "/api/quote/:kind",
		"/api/search":                      "/api/search",
	}

	for path, want := range cases {
		assert.Equal(t, want, normalizePath(path), path)
	}
}

func TestRequestID_GeneratesWhenMissing(t *testing.T) {
	var got string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = GetRequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.NotEmpty(t, got)
	assert.Equal(t, got, rec.Header().Get(RequestIDHeader))
}

func TestRequestID_KeepsUpstreamValue(t *testing.T) {
	var got string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = GetRequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "lb-assigned-id")
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "lb-assigned-id", got)
}
