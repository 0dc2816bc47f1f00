package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func jsonHandler(body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(body))
	})
}

func TestETag(t *testing.T) {
	handler := ETag(jsonHandler(`[{"date":"2023-01-01","T":3.4}]`))

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/test", nil))

	if first.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", first.Code)
	}
	etag := first.Header().Get("ETag")
	if etag == "" || !strings.HasPrefix(etag, `"`) || !strings.HasSuffix(etag, `"`) {
		t.Fatalf("expected quoted ETag, got %q", etag)
	}
	if cc := first.Header().Get("Cache-Control"); cc != "no-cache" {
		t.Errorf("expected Cache-Control no-cache, got %q", cc)
	}
	if first.Body.String() != `[{"date":"2023-01-01","T":3.4}]` {
		t.Errorf("body changed: %s", first.Body.String())
	}

	tests := []struct {
		name        string
		ifNoneMatch string
		wantStatus  int
	}{
		{"matching tag", etag, http.StatusNotModified},
		{"weak matching tag", "W/" + etag, http.StatusNotModified},
		{"tag in list", `"other", ` + etag, http.StatusNotModified},
		{"wildcard", "*", http.StatusNotModified},
		{"different tag", `"different-etag"`, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			req.Header.Set("If-None-Match", tt.ifNoneMatch)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			if rr.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, rr.Code)
			}
			if tt.wantStatus == http.StatusNotModified && rr.Body.Len() != 0 {
				t.Errorf("304 must not carry a body, got %q", rr.Body.String())
			}
			if rr.Header().Get("ETag") != etag {
				t.Errorf("ETag should be stable, got %q want %q", rr.Header().Get("ETag"), etag)
			}
		})
	}
}

func TestETag_DifferentBodiesDifferentTags(t *testing.T) {
	a := httptest.NewRecorder()
	ETag(jsonHandler(`[1]`)).ServeHTTP(a, httptest.NewRequest(http.MethodGet, "/test", nil))
	b := httptest.NewRecorder()
	ETag(jsonHandler(`[2]`)).ServeHTTP(b, httptest.NewRequest(http.MethodGet, "/test", nil))

	if a.Header().Get("ETag") == b.Header().Get("ETag") {
		t.Error("different bodies should produce different ETags")
	}
}

func TestETag_ErrorResponsesPassThrough(t *testing.T) {
	handler := ETag(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"missing"}`))
	}))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("If-None-Match", "*")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rr.Code)
	}
	if rr.Header().Get("ETag") != "" {
		t.Error("error responses should not get an ETag")
	}
	if rr.Body.String() != `{"error":"missing"}` {
		t.Errorf("unexpected body %q", rr.Body.String())
	}
}

func TestETag_SkipsOtherMethods(t *testing.T) {
	rr := httptest.NewRecorder()
	ETag(jsonHandler(`{}`)).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/test", nil))

	if rr.Header().Get("ETag") != "" {
		t.Error("POST responses should not get an ETag")
	}
}

func TestETag_NoStoreResponsesPassThrough(t *testing.T) {
	handler := ETag(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "private, no-store")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"error":"JSON file not found. Please check the path and filename."}`))
	}))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("If-None-Match", "*")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rr.Code)
	}
	if rr.Header().Get("ETag") != "" {
		t.Error("no-store responses should not get an ETag")
	}
	if cc := rr.Header().Get("Cache-Control"); cc != "private, no-store" {
		t.Errorf("Cache-Control overwritten: %q", cc)
	}
	if rr.Body.Len() == 0 {
		t.Error("body should pass through")
	}
}
