package httpclient

import (
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Instrument returns a middleware recording a request counter and a latency
// histogram for every outbound call, labeled by method, path, and status.
// Metric registration errors fall back to no-op instruments.
func Instrument(name string) Middleware {
	meter := otel.Meter(name)

	requests, err := meter.Int64Counter("http.client.requests",
		metric.WithDescription("Outbound HTTP requests"),
	)
	if err != nil {
		requests = nil
	}
	latency, err := meter.Float64Histogram("http.client.duration",
		metric.WithDescription("Outbound HTTP request duration"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		latency = nil
	}

	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			start := time.Now()
			resp, err := next.RoundTrip(req)

			status := 0
			if resp != nil {
				status = resp.StatusCode
			}
			attrs := metric.WithAttributes(
				attribute.String("http.method", req.Method),
				attribute.String("http.path", req.URL.Path),
				attribute.Int("http.status_code", status),
			)
			if requests != nil {
				requests.Add(req.Context(), 1, attrs)
			}
			if latency != nil {
				latency.Record(req.Context(), float64(time.Since(start).Milliseconds()), attrs)
			}
			return resp, err
		})
	}
}
