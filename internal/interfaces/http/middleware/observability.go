package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/turtacn/opspulse/internal/domain/service"
	"github.com/turtacn/opspulse/internal/infrastructure/monitoring"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Observability returns a Gin middleware that wraps every request with an
// OpenTelemetry span and, on completion, feeds the Prometheus vectors and
// the request aggregator. Recording happens in a deferred block so it fires
// exactly once per request, including panic-recovered and unmatched-route
// paths.
func Observability(
	tracer trace.Tracer,
	metrics *monitoring.Metrics,
	aggregator service.RequestAggregator,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		ctx, span := tracer.Start(c.Request.Context(), c.Request.Method+" "+c.FullPath())
		defer span.End()
		c.Request = c.Request.WithContext(ctx)

		defer func() {
			duration := time.Since(start)
			status := c.Writer.Status()

			// Route template keeps Prometheus label cardinality bounded;
			// the aggregator keeps the concrete path for the activity list.
			template := c.FullPath()
			if template == "" {
				template = "not_found"
			}
			metrics.RecordHTTPRequest(c.Request.Method, template, strconv.Itoa(status), duration)

			aggregator.RecordRequest(service.RequestSample{
				Method:     c.Request.Method,
				Path:       c.Request.URL.Path,
				StatusCode: status,
				Duration:   duration,
				Timestamp:  time.Now().UTC(),
				ClientID:   c.ClientIP(),
				UserAgent:  c.Request.UserAgent(),
			})

			span.SetAttributes(
				attribute.String("http.method", c.Request.Method),
				attribute.String("http.path", template),
				attribute.Int("http.status_code", status),
				attribute.String("http.client_ip", c.ClientIP()),
			)
		}()

		c.Next()
	}
}
