package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestCORS_AllowedOrigin(t *testing.T) {
	handler := CORS(DefaultCORSConfig([]string{"http://localhost:3000", "https://example.com"}))(okHandler())

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if origin := rr.Header().Get("Access-Control-Allow-Origin"); origin != "http://localhost:3000" {
		t.Errorf("Expected Access-Control-Allow-Origin: http://localhost:3000, got %s", origin)
	}
	if exposed := rr.Header().Get("Access-Control-Expose-Headers"); !strings.Contains(exposed, "ETag") {
		t.Errorf("Expected ETag to be exposed, got %s", exposed)
	}
	if vary := rr.Header().Values("Vary"); len(vary) == 0 || vary[0] != "Origin" {
		t.Errorf("Expected Vary: Origin, got %v", vary)
	}
}

func TestCORS_DisallowedOrigin(t *testing.T) {
	handler := CORS(&CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}})(okHandler())

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Origin", "http://evil.com")
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if origin := rr.Header().Get("Access-Control-Allow-Origin"); origin != "" {
		t.Errorf("Expected no Access-Control-Allow-Origin header, got %s", origin)
	}
	if rr.Code != http.StatusOK {
		t.Errorf("request should still be served, got %d", rr.Code)
	}
}

func TestCORS_PreflightRequest(t *testing.T) {
	called := false
	handler := CORS(DefaultCORSConfig([]string{"http://localhost:5173"}))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodOptions, "/api/py/meteodaten", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "GET")
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Errorf("Expected status 204, got %d", rr.Code)
	}
	if called {
		t.Error("preflight should not reach the handler")
	}
	if methods := rr.Header().Get("Access-Control-Allow-Methods"); methods != "GET, HEAD, OPTIONS" {
		t.Errorf("unexpected Access-Control-Allow-Methods: %s", methods)
	}
	if maxAge := rr.Header().Get("Access-Control-Max-Age"); maxAge != "300" {
		t.Errorf("Expected Access-Control-Max-Age: 300, got %s", maxAge)
	}
}

func TestCORS_PreflightFromUnknownOrigin(t *testing.T) {
	handler := CORS(DefaultCORSConfig([]string{"http://localhost:5173"}))(okHandler())

	req := httptest.NewRequest(http.MethodOptions, "/api/py/meteodaten", nil)
	req.Header.Set("Origin", "http://evil.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if methods := rr.Header().Get("Access-Control-Allow-Methods"); methods != "" {
		t.Errorf("unknown origin should not get allow headers, got %s", methods)
	}
}

func TestCORS_WildcardPatterns(t *testing.T) {
	tests := []struct {
		pattern string
		origin  string
		allowed bool
	}{
		{"*", "https://anything.test", true},
		{"*.example.com", "https://app.example.com", true},
		{"*.example.com", "https://example.org", false},
		{"https://example.com", "https://example.com", true},
		{"https://example.com", "https://example.com.evil.test", false},
	}

	for _, tt := range tests {
		if got := isOriginAllowed(tt.origin, []string{tt.pattern}); got != tt.allowed {
			t.Errorf("isOriginAllowed(%q, %q) = %v, want %v", tt.origin, tt.pattern, got, tt.allowed)
		}
	}
}

func TestCORS_DefaultConfig(t *testing.T) {
	cfg := DefaultCORSConfig(nil)
	if len(cfg.AllowedOrigins) != 2 {
		t.Errorf("expected default dev origins, got %v", cfg.AllowedOrigins)
	}
	if cfg.AllowCredentials {
		t.Error("read-only API should not allow credentials by default")
	}
}
