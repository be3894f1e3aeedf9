// Package observability provides request logging and tracing middleware.
package observability

import (
	"log"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/aichenitrkl/chapterweb/internal/services/web/platform/httpx"
)

const tracerName = "github.com/aichenitrkl/chapterweb/internal/services/web"

// statusRecorder captures the status code and bytes written.
type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *statusRecorder) WriteHeader(status int) {
	if r.status == 0 {
		r.status = status
	}
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(p []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(p)
	r.bytes += n
	return n, err
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

func (r *statusRecorder) statusCode() int {
	if r.status == 0 {
		return http.StatusOK
	}
	return r.status
}

// RequestLogger logs one line per request. The trace id is included when the
// request carries a sampled span.
func RequestLogger(logger *log.Logger) httpx.Middleware {
	if logger == nil {
		logger = log.Default()
	}
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			started := time.Now()
			rec := &statusRecorder{ResponseWriter: w}
			next.ServeHTTP(rec, r)

			traceID := "-"
			if sc := trace.SpanFromContext(r.Context()).SpanContext(); sc.IsValid() {
				traceID = sc.TraceID().String()
			}
			logger.Printf(
				"http request method=%s path=%s status=%d bytes=%d latency=%s request_id=%s trace_id=%s",
				r.Method,
				r.URL.Path,
				rec.statusCode(),
				rec.bytes,
				time.Since(started).Round(time.Microsecond),
				httpx.RequestIDFrom(r),
				traceID,
			)
		})
	}
}

// Tracing starts a server span per request using the global tracer
// provider. Without a configured provider the spans are no-ops.
func Tracing() httpx.Middleware {
	return tracingWith(nil)
}

func tracingWith(provider trace.TracerProvider) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
			tp := provider
			if tp == nil {
				tp = otel.GetTracerProvider()
			}
			ctx, span := tp.Tracer(tracerName).Start(ctx, spanName(r),
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					semconv.HTTPRequestMethodKey.String(r.Method),
					semconv.URLPath(r.URL.Path),
					semconv.HTTPRoute(routeLabel(r.URL.Path)),
				),
			)
			defer span.End()

			rec := &statusRecorder{ResponseWriter: w}
			next.ServeHTTP(rec, r.WithContext(ctx))

			status := rec.statusCode()
			span.SetAttributes(semconv.HTTPResponseStatusCode(status))
			if status >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(status))
			}
		})
	}
}

func spanName(r *http.Request) string {
	return r.Method + " " + routeLabel(r.URL.Path)
}

// routeLabel keeps span names low-cardinality: article slugs collapse to
// their route pattern.
func routeLabel(path string) string {
	switch {
	case strings.HasPrefix(path, "/blogs/"):
		return "/blogs/{slug}"
	case strings.HasPrefix(path, "/static/"):
		return "/static/"
	case path == "":
		return "/"
	default:
		return path
	}
}
