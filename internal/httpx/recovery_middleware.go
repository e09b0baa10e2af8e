package httpx

import (
	"log"
	"net/http"
	"runtime/debug"
)

// RecoveryMiddleware turns handler panics into 500 responses. It wraps
// the writer itself so it can tell whether the handler had already
// started a response; if so, nothing more is written.
func RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		defer func() {
			if err := recover(); err != nil {
				log.Printf("panic recovered: request_id=%s method=%s path=%s error=%v stack=%s",
					RequestIDFrom(r), r.Method, r.URL.Path, err, debug.Stack())

				if !rw.wroteHeader() {
					JSONError(rw, http.StatusInternalServerError, "internal server error")
				}
			}
		}()

		next.ServeHTTP(rw, r)
	})
}
