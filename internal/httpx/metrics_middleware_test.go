package httpx

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestMetricsMiddleware_RecordsRequests(t *testing.T) {
	m := NewMetricsMiddleware()
	handler := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/books/42", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	scrape := httptest.NewRecorder()
	m.Handler().ServeHTTP(scrape, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body := scrape.Body.String()
	if !strings.Contains(body, "library_http_requests_total") {
		t.Error("Expected request counter in scrape output")
	}
	if !strings.Contains(body, `path="/books"`) {
		t.Errorf("Expected id segment collapsed out of path label, got:\n%s", body)
	}
	if !strings.Contains(body, "library_http_request_duration_seconds") {
		t.Error("Expected duration histogram in scrape output")
	}
}

func TestRouteLabel(t *testing.T) {
	testCases := []struct {
		path     string
		expected string
	}{
		{"/books", "/books"},
		{"/books/42", "/books"},
		{"/books/42/borrow", "/books"},
		{"/healthz", "/healthz"},
		{"/", "/"},
	}

	for _, tc := range testCases {
		if got := routeLabel(tc.path); got != tc.expected {
			t.Errorf("routeLabel(%q) = %q, expected %q", tc.path, got, tc.expected)
		}
	}
}
