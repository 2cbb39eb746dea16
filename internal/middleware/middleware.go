package middleware

import (
	"context"
	"io"
	"net/http"
	"runtime/debug"

	"github.com/go-http-utils/logger"
	"github.com/hashicorp/go-hclog"
	"github.com/segmentio/ksuid"
	"github.com/unrolled/secure"
)

type contextKey int

const requestIDKey contextKey = iota + 1

// RequestIDHeader echoes the request id back to the client
const RequestIDHeader = "X-Request-ID"

// contentSecurityPolicy allows the page's own assets plus the animation library CDN
const contentSecurityPolicy = "default-src 'self'; " +
	"script-src 'self' https://cdn.jsdelivr.net; " +
	"style-src 'self'; img-src 'self' data:; " +
	"object-src 'none'; base-uri 'self'; frame-ancestors 'none'"

// RequestID tags every request with a ksuid
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := ksuid.New().String()
		w.Header().Set(RequestIDHeader, id)
		ctx := context.WithValue(r.Context(), requestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestID returns the id set by RequestID, or "" outside of it
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// Recovery converts panics into a 500 response
func Recovery(log hclog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}
					log.Error("panic serving request",
						"path", r.URL.Path,
						"request_id", GetRequestID(r.Context()),
						"panic", rec,
						"stack", string(debug.Stack()))
					http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// Logger writes an access log line per request to out
func Logger(out io.Writer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return logger.Handler(next, out, logger.DevLoggerType)
	}
}

// Secure sets the security headers. Development mode skips the host and TLS checks.
func Secure(dev bool) func(http.Handler) http.Handler {
	return secure.New(secure.Options{
		FrameDeny:             true,
		ContentTypeNosniff:    true,
		BrowserXssFilter:      true,
		ContentSecurityPolicy: contentSecurityPolicy,
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		IsDevelopment:         dev,
	}).Handler
}
