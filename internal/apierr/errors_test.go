package apierr

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrSystemInternal, "boom", http.StatusInternalServerError)
	if err.Code != ErrSystemInternal {
		t.Errorf("expected code %s, got %s", ErrSystemInternal, err.Code)
	}
	if err.Message != "boom" {
		t.Errorf("expected message 'boom', got '%s'", err.Message)
	}
	if err.Status() != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, err.Status())
	}
}

func TestErrorInterface(t *testing.T) {
	err := DataNotFound()
	expected := "DATA_NOT_FOUND: " + MsgDataNotFound
	if err.Error() != expected {
		t.Errorf("expected error string %s, got %s", expected, err.Error())
	}
}

func TestWithStatusCopies(t *testing.T) {
	orig := DataInvalidJSON()
	legacy := orig.WithStatus(http.StatusOK)

	if legacy.Status() != http.StatusOK {
		t.Errorf("expected 200, got %d", legacy.Status())
	}
	if orig.Status() != http.StatusInternalServerError {
		t.Errorf("original status modified: %d", orig.Status())
	}
	if legacy.Message != orig.Message || legacy.Code != orig.Code {
		t.Error("WithStatus should keep code and message")
	}
}

func TestWriteError(t *testing.T) {
	w := httptest.NewRecorder()

	WriteError(w, DataNotFound())

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type application/json, got %s", ct)
	}

	var body map[string]any
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(body) != 1 {
		t.Errorf("expected only the error field, got %v", body)
	}
	if body["error"] != MsgDataNotFound {
		t.Errorf("expected message %q, got %v", MsgDataNotFound, body["error"])
	}
}

func TestWriteErrorIsNeverCacheable(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
	}{
		{"strict status", DataNotFound()},
		{"legacy status", DataNotFound().WithStatus(http.StatusOK)},
		{"rate limited", RateLimitIP()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteError(w, tt.err)

			if cc := w.Header().Get("Cache-Control"); cc != "no-store" {
				t.Errorf("expected Cache-Control no-store, got %q", cc)
			}
		})
	}
}

func TestWriteErrorWithContext(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/py/meteodaten", nil)

	WriteErrorWithContext(w, r, RateLimitIP())

	if w.Code != http.StatusTooManyRequests {
		t.Errorf("expected 429, got %d", w.Code)
	}
}

func TestHelperStatuses(t *testing.T) {
	tests := []struct {
		name   string
		err    *Error
		status int
		code   ErrorCode
	}{
		{"DataNotFound", DataNotFound(), http.StatusNotFound, ErrDataNotFound},
		{"DataInvalidJSON", DataInvalidJSON(), http.StatusInternalServerError, ErrDataInvalidJSON},
		{"DataUnreadable", DataUnreadable(), http.StatusInternalServerError, ErrDataUnreadable},
		{"RouteNotFound", RouteNotFound(), http.StatusNotFound, ErrRouteNotFound},
		{"MethodNotAllowed", MethodNotAllowed(), http.StatusMethodNotAllowed, ErrMethodNotAllowed},
		{"SystemInternal", SystemInternal(""), http.StatusInternalServerError, ErrSystemInternal},
		{"RateLimitGlobal", RateLimitGlobal(), http.StatusTooManyRequests, ErrRateLimitGlobal},
		{"RateLimitIP", RateLimitIP(), http.StatusTooManyRequests, ErrRateLimitIP},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Status() != tt.status {
				t.Errorf("status = %d, want %d", tt.err.Status(), tt.status)
			}
			if tt.err.Code != tt.code {
				t.Errorf("code = %s, want %s", tt.err.Code, tt.code)
			}
			if tt.err.Message == "" {
				t.Error("message should not be empty")
			}
		})
	}
}

func TestDataMessages(t *testing.T) {
	if DataNotFound().Message != "JSON file not found. Please check the path and filename." {
		t.Errorf("unexpected not-found message: %q", DataNotFound().Message)
	}
	if DataInvalidJSON().Message != "Invalid JSON format. Please check the file content." {
		t.Errorf("unexpected invalid-json message: %q", DataInvalidJSON().Message)
	}
}
