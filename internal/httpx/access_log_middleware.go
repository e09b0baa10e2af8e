package httpx

import (
	"log"
	"net/http"
	"time"
)

// AccessLogMiddleware writes one line per request with the request id
// first, so a grep on an id pulls the whole request story.
func AccessLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(rw, r)

		log.Printf("access request_id=%s method=%s path=%s status=%d bytes=%d duration_ms=%d remote=%s",
			RequestIDFrom(r),
			r.Method,
			r.URL.Path,
			rw.statusCode,
			rw.bytesWritten,
			time.Since(start).Milliseconds(),
			r.RemoteAddr,
		)
	})
}
