package httpx

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
)

func serveWithSecurityHeaders(t *testing.T) http.Header {
	t.Helper()

	handler := SecurityHeadersMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/books", nil))
	return w.Header()
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"X-Content-Type-Options", "nosniff"},
		{"X-Frame-Options", "DENY"},
		{"Content-Security-Policy", "default-src 'self'"},
		{"Referrer-Policy", "no-referrer"},
	}

	headers := serveWithSecurityHeaders(t)
	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			if got := headers.Get(tt.header); got != tt.want {
				t.Errorf("%s = %q, want %q", tt.header, got, tt.want)
			}
		})
	}
}

func TestSecurityHeadersMiddleware_HSTS(t *testing.T) {
	t.Run("enabled", func(t *testing.T) {
		os.Setenv("ENABLE_HSTS", "true")
		t.Cleanup(func() { _ = os.Unsetenv("ENABLE_HSTS") })

		got := serveWithSecurityHeaders(t).Get("Strict-Transport-Security")
		if got != "max-age=31536000; includeSubDomains" {
			t.Errorf("Strict-Transport-Security = %q", got)
		}
	})

	t.Run("disabled by default", func(t *testing.T) {
		_ = os.Unsetenv("ENABLE_HSTS")

		if got := serveWithSecurityHeaders(t).Get("Strict-Transport-Security"); got != "" {
			t.Errorf("expected no HSTS header, got %q", got)
		}
	})
}
