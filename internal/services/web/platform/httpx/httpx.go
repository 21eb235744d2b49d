// Package httpx provides HTTP middleware helpers used by the web service.
package httpx

import (
	"context"
	"log"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/google/uuid"
	"github.com/louisbranch/invmgmt/internal/platform/requestctx"
)

// RequestIDHeader carries the correlation id for one request.
const RequestIDHeader = "X-Request-ID"

// Middleware wraps an HTTP handler.
type Middleware func(http.Handler) http.Handler

// Chain applies middleware in declaration order.
func Chain(handler http.Handler, middleware ...Middleware) http.Handler {
	if handler == nil {
		handler = http.NotFoundHandler()
	}
	wrapped := handler
	for idx := len(middleware) - 1; idx >= 0; idx-- {
		if middleware[idx] == nil {
			continue
		}
		wrapped = middleware[idx](wrapped)
	}
	return wrapped
}

// RequireMethods rejects requests outside the allowed methods.
func RequireMethods(methods ...string) Middleware {
	allow := strings.Join(methods, ", ")
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, method := range methods {
				if r.Method == method {
					next.ServeHTTP(w, r)
					return
				}
			}
			w.Header().Set("Allow", allow)
			w.WriteHeader(http.StatusMethodNotAllowed)
		})
	}
}

// RequestID injects and echoes a request id for correlation.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := strings.TrimSpace(r.Header.Get(RequestIDHeader))
			if requestID == "" {
				requestID = uuid.NewString()
				r.Header.Set(RequestIDHeader, requestID)
			}
			w.Header().Set(RequestIDHeader, requestID)
			next.ServeHTTP(w, r.WithContext(requestctx.WithRequestID(r.Context(), requestID)))
		})
	}
}

// RecoverPanic converts panics into HTTP 500 responses and logs the stack.
func RecoverPanic(logger *log.Logger) Middleware {
	if logger == nil {
		logger = log.Default()
	}
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}
				if recovered == http.ErrAbortHandler {
					panic(recovered)
				}
				path, method, requestID := "-", "-", "-"
				if r != nil {
					path = strings.TrimSpace(r.URL.Path)
					method = strings.TrimSpace(r.Method)
					if rid := strings.TrimSpace(r.Header.Get(RequestIDHeader)); rid != "" {
						requestID = rid
					}
				}
				logger.Printf(
					"panic recovered method=%s path=%s request_id=%s panic=%v stack=%s",
					method,
					path,
					requestID,
					recovered,
					strings.TrimSpace(string(debug.Stack())),
				)
				w.WriteHeader(http.StatusInternalServerError)
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// RequestContext returns r.Context() with a nil-safe fallback to context.Background().
func RequestContext(r *http.Request) context.Context {
	if r == nil {
		return context.Background()
	}
	return r.Context()
}
