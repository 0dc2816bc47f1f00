package secrets

import "testing"

func TestMask(t *testing.T) {
	tests := []struct {
		name     string
		secret   string
		expected string
	}{
		{name: "empty string", secret: "", expected: ""},
		{name: "short secret", secret: "abc", expected: "***"},
		{name: "exact 8 chars", secret: "12345678", expected: "***"},
		{name: "long secret", secret: "verylongsecretkey123", expected: "very..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := Mask(tt.secret); result != tt.expected {
				t.Errorf("Mask(%q) = %q, want %q", tt.secret, result, tt.expected)
			}
		})
	}
}

func TestMaskURL(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected string
	}{
		{
			name:     "empty",
			url:      "",
			expected: "",
		},
		{
			name:     "sentry dsn",
			url:      "https://0123456789abcdef@o42.ingest.sentry.io/4506",
			expected: "https://***@o42.ingest.sentry.io/4506",
		},
		{
			name:     "user and password",
			url:      "https://user:p@ss@collector.local:4318/v1/traces",
			expected: "https://***@collector.local:4318/v1/traces",
		},
		{
			name:     "no credentials",
			url:      "http://localhost:4318",
			expected: "http://localhost:4318",
		},
		{
			name:     "at sign only in path",
			url:      "https://example.com/users/@me",
			expected: "https://example.com/users/@me",
		},
		{
			name:     "no scheme",
			url:      "localhost:4318",
			expected: "localhost:4318",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := MaskURL(tt.url); result != tt.expected {
				t.Errorf("MaskURL(%q) = %q, want %q", tt.url, result, tt.expected)
			}
		})
	}
}
