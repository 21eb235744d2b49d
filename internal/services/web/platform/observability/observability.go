// Package observability provides request logging and tracing middleware.
package observability

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/louisbranch/invmgmt/internal/platform/requestctx"
	"github.com/louisbranch/invmgmt/internal/services/web/platform/httpx"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/louisbranch/invmgmt/internal/services/web"

type responseRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
	wrote  bool
}

func (r *responseRecorder) WriteHeader(status int) {
	if !r.wrote {
		r.status = status
		r.wrote = true
	}
	r.ResponseWriter.WriteHeader(status)
}

func (r *responseRecorder) Write(body []byte) (int, error) {
	if !r.wrote {
		r.status = http.StatusOK
		r.wrote = true
	}
	n, err := r.ResponseWriter.Write(body)
	r.bytes += n
	return n, err
}

func (r *responseRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

// RequestLogger logs one line per request with method, path, status, size,
// latency and request id.
func RequestLogger(logger *log.Logger) httpx.Middleware {
	if logger == nil {
		logger = log.Default()
	}
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &responseRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			requestID := requestctx.RequestIDFromContext(r.Context())
			if requestID == "" {
				requestID = strings.TrimSpace(r.Header.Get(httpx.RequestIDHeader))
			}
			if requestID == "" {
				requestID = "-"
			}
			logger.Printf(
				"http request method=%s path=%s status=%d bytes=%d latency=%s request_id=%s",
				r.Method,
				r.URL.Path,
				rec.status,
				rec.bytes,
				time.Since(start).Round(time.Microsecond),
				requestID,
			)
		})
	}
}

// Tracing starts one server span per request using the global provider.
func Tracing() httpx.Middleware {
	return TracingWithProvider(otel.GetTracerProvider(), otel.GetTextMapPropagator())
}

// TracingWithProvider starts one server span per request, continuing any
// incoming W3C trace context. A handler panic is recorded on the span as a
// 500 error and then re-raised.
func TracingWithProvider(provider trace.TracerProvider, propagator propagation.TextMapPropagator) httpx.Middleware {
	tracer := provider.Tracer(instrumentationName)
	if propagator == nil {
		propagator = propagation.TraceContext{}
	}
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := propagator.Extract(r.Context(), propagation.HeaderCarrier(r.Header))
			ctx, span := tracer.Start(ctx, "HTTP "+r.Method,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					attribute.String("http.request.method", r.Method),
					attribute.String("url.path", r.URL.Path),
				),
			)
			defer span.End()

			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}
				span.RecordError(fmt.Errorf("panic: %v", recovered))
				span.SetAttributes(attribute.Int("http.response.status_code", http.StatusInternalServerError))
				span.SetStatus(codes.Error, "panic")
				panic(recovered)
			}()

			rec := &responseRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r.WithContext(ctx))

			span.SetAttributes(attribute.Int("http.response.status_code", rec.status))
			if rec.status >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(rec.status))
			}
		})
	}
}
