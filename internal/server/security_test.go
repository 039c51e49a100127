package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	const apiKey = "test-key-12345"
	mw := AuthMiddleware(apiKey, nil, NewSuspiciousActivityDetector())(okHandler())

	tests := []struct {
		name           string
		path           string
		key            string
		expectedStatus int
	}{
		{"valid key", "/api/v1/drop", apiKey, http.StatusOK},
		{"missing key", "/api/v1/drop", "", http.StatusUnauthorized},
		{"wrong key", "/api/v1/drop", "wrong", http.StatusUnauthorized},
		{"healthz is public", "/healthz", "", http.StatusOK},
		{"readyz is public", "/readyz", "", http.StatusOK},
		{"metrics is public", "/metrics", "", http.StatusOK},
		{"version is public", "/version", "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.key != "" {
				req.Header.Set(HeaderAPIKey, tt.key)
			}
			w := httptest.NewRecorder()

			mw.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	mw := SecurityHeadersMiddleware()(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/drop", nil)
	w := httptest.NewRecorder()

	mw.ServeHTTP(w, req)

	assert.Equal(t, HeaderValueNoSniff, w.Header().Get(HeaderContentType))
	assert.Equal(t, HeaderValueSameOrigin, w.Header().Get(HeaderFrameOptions))
	assert.Equal(t, HeaderValueXSSBlock, w.Header().Get(HeaderXSSProtection))
	assert.Equal(t, HeaderValueReferrerStrictOrigin, w.Header().Get(HeaderReferrerPolicy))
}

func TestRateLimitMiddleware_BlocksExcessiveRequests(t *testing.T) {
	detector := NewSuspiciousActivityDetector()
	mw := RateLimitMiddleware(nil, detector)(okHandler())

	var lastCode int
	for i := 0; i < 1001; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/drop", nil)
		req.RemoteAddr = "10.0.0.1:50000"
		w := httptest.NewRecorder()
		mw.ServeHTTP(w, req)
		lastCode = w.Code
	}
	assert.Equal(t, http.StatusTooManyRequests, lastCode)

	// A different client is unaffected.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/drop", nil)
	req.RemoteAddr = "10.0.0.2:50000"
	w := httptest.NewRecorder()
	mw.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestExtractIP(t *testing.T) {
	tests := []struct {
		name           string
		remoteAddr     string
		forwardedFor   string
		trustedProxies []string
		want           string
	}{
		{"direct connection", "203.0.113.7:1234", "", nil, "203.0.113.7"},
		{"forwarded header ignored from untrusted peer", "203.0.113.7:1234", "198.51.100.9", nil, "203.0.113.7"},
		{"forwarded header honored from trusted proxy", "10.0.0.5:1234", "198.51.100.9", []string{"10.0.0.5"}, "198.51.100.9"},
		{"rightmost hop wins behind proxy chain", "10.0.0.5:1234", "198.51.100.9, 192.0.2.44", []string{"10.0.0.5"}, "192.0.2.44"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwardedFor != "" {
				req.Header.Set(HeaderForwardedFor, tt.forwardedFor)
			}
			assert.Equal(t, tt.want, extractIP(req, tt.trustedProxies))
		})
	}
}
