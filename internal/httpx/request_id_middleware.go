package httpx

import (
	"net/http"

	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-Id"

// ensureRequestID keeps a caller-supplied id only when it is a valid
// UUID, so arbitrary header values never reach the logs.
func ensureRequestID(candidate string) string {
	if _, err := uuid.Parse(candidate); err == nil {
		return candidate
	}
	return uuid.New().String()
}

// RequestIDMiddleware tags every request with a UUID, stored on the
// context and echoed back in the X-Request-Id response header.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := ensureRequestID(r.Header.Get(requestIDHeader))

		w.Header().Set(requestIDHeader, requestID)
		ctx := ContextWithRequestID(r.Context(), requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
