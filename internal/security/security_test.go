package security

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecurityConfig(t *testing.T) {
	config := DefaultSecurityConfig()

	assert.Equal(t, 120, config.MaxRequestsPerMin)
	assert.True(t, config.EnableCORS)
	assert.Contains(t, config.AllowedOrigins, "http://localhost:3000")
	assert.Contains(t, config.AllowedOrigins, "http://localhost:5173")
	assert.Equal(t, 30*time.Second, config.RequestTimeout)
}

func newTestEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	for _, h := range handlers {
		r.Use(h)
	}
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.POST("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func TestSecurityHeaders(t *testing.T) {
	sm := NewSecurityMiddleware(DefaultSecurityConfig(), nil)
	r := newTestEngine(sm.SecurityHeaders)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "1; mode=block", w.Header().Get("X-XSS-Protection"))
	assert.Equal(t, "strict-origin-when-cross-origin", w.Header().Get("Referrer-Policy"))
	assert.Empty(t, w.Header().Get("Strict-Transport-Security"), "HSTS only over TLS")
}

func TestValidateContentType(t *testing.T) {
	sm := NewSecurityMiddleware(DefaultSecurityConfig(), nil)
	r := newTestEngine(sm.ValidateContentType)

	tests := []struct {
		name        string
		contentType string
		expected    int
	}{
		{"json allowed", "application/json", http.StatusOK},
		{"json with charset allowed", "application/json; charset=utf-8", http.StatusOK},
		{"form allowed", "application/x-www-form-urlencoded", http.StatusOK},
		{"empty allowed", "", http.StatusOK},
		{"xml rejected", "application/xml", http.StatusUnsupportedMediaType},
		{"octet-stream rejected", "application/octet-stream", http.StatusUnsupportedMediaType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/ping", nil)
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.expected, w.Code)
		})
	}
}

func TestCORSAllowsConfiguredOrigin(t *testing.T) {
	sm := NewSecurityMiddleware(DefaultSecurityConfig(), nil)
	r := newTestEngine(sm.CORS())

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSRejectsUnknownOrigin(t *testing.T) {
	sm := NewSecurityMiddleware(DefaultSecurityConfig(), nil)
	r := newTestEngine(sm.CORS())

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSDisabledIsPassThrough(t *testing.T) {
	config := DefaultSecurityConfig()
	config.EnableCORS = false
	sm := NewSecurityMiddleware(config, nil)
	r := newTestEngine(sm.CORS())

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimitByIPBlocksAfterBurst(t *testing.T) {
	blocked := 0
	config := DefaultSecurityConfig()
	config.MaxRequestsPerMin = 6 // burst floor of 5 applies
	sm := NewSecurityMiddleware(config, func() { blocked++ })
	r := newTestEngine(sm.RateLimitByIP)

	statuses := make([]int, 0, 8)
	for i := 0; i < 8; i++ {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "203.0.113.9:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		statuses = append(statuses, w.Code)
	}

	assert.Equal(t, http.StatusOK, statuses[0])
	assert.Contains(t, statuses, http.StatusTooManyRequests)
	assert.Greater(t, blocked, 0, "block hook fires")
	assert.Equal(t, 1, sm.LimiterCount())
}

func TestRateLimitByIPIsPerIP(t *testing.T) {
	sm := NewSecurityMiddleware(DefaultSecurityConfig(), nil)
	r := newTestEngine(sm.RateLimitByIP)

	for _, addr := range []string{"198.51.100.1:1", "198.51.100.2:1", "198.51.100.3:1"} {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = addr
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}
	assert.Equal(t, 3, sm.LimiterCount())
}

func TestRequestTimeoutSetsDeadline(t *testing.T) {
	config := DefaultSecurityConfig()
	config.RequestTimeout = 7 * time.Second
	sm := NewSecurityMiddleware(config, nil)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(sm.RequestTimeout)
	r.GET("/ping", func(c *gin.Context) {
		_, ok := c.Request.Context().Deadline()
		assert.True(t, ok, "request context carries a deadline")
		c.String(http.StatusOK, "pong")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "7", w.Header().Get("X-Timeout"))
}

func TestCSPMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CSPMiddleware())

	var nonce string
	r.GET("/ping", func(c *gin.Context) {
		nonce = GetNonce(c)
		c.String(http.StatusOK, "pong")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	require.NotEmpty(t, nonce)
	csp := w.Header().Get("Content-Security-Policy")
	assert.Contains(t, csp, "nonce-"+nonce)
	assert.Contains(t, csp, "default-src 'self'")
	assert.Contains(t, csp, "frame-ancestors 'none'")
}

func TestGenerateNonceUnique(t *testing.T) {
	a, err := GenerateNonce()
	require.NoError(t, err)
	b, err := GenerateNonce()
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
