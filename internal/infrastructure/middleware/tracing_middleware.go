package middleware

import (
	"time"

	"skateplan/pkg/tracing"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// HTTPMetrics records served capability API requests.
type HTTPMetrics interface {
	RecordHTTPRequest(method, route string, status int, duration time.Duration)
}

// TracingMiddleware opens a server span per request and, when metrics is
// non-nil, records the request count and latency by route.
func TracingMiddleware(metrics HTTPMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		route := routeOf(c)
		ctx, span := tracing.TraceHTTPRequest(c.Request.Context(), c.Request.Method, route)
		defer span.End()

		span.SetAttributes(
			attribute.String("http.host", c.Request.Host),
			attribute.String("http.user_agent", c.Request.UserAgent()),
			attribute.String("http.remote_addr", c.ClientIP()),
		)

		c.Request = c.Request.WithContext(ctx)

		start := time.Now()
		c.Next()
		duration := time.Since(start)
		status := c.Writer.Status()

		span.SetAttributes(
			tracing.StatusCodeKey.Int(status),
			attribute.Int64("http.response_size", int64(c.Writer.Size())),
			tracing.DurationKey.Int64(duration.Milliseconds()),
		)
		if status >= 400 {
			span.SetStatus(codes.Error, c.Errors.String())
		} else {
			span.SetStatus(codes.Ok, "")
		}

		if metrics != nil {
			metrics.RecordHTTPRequest(c.Request.Method, route, status, duration)
		}
	}
}

// routeOf returns the matched route template; unmatched paths share one
// label to keep metric cardinality bounded.
func routeOf(c *gin.Context) string {
	if route := c.FullPath(); route != "" {
		return route
	}
	return "unmatched"
}
