// Package middleware provides logging and metrics decorators for
// text-generation clients.
package middleware

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"blogsmith/pkg/gen/generr"
	"blogsmith/pkg/gen/llm"
	"blogsmith/pkg/utils"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

// Recorder records metrics for completed generation requests.
type Recorder interface {
	ObserveRequest(provider, model string, promptTokens, completionTokens int, success bool, errorType string, duration time.Duration)
}

// PrometheusRecorder implements Recorder using Prometheus metrics.
// Collectors are registered on an explicitly supplied registerer, never a
// process-wide default.
type PrometheusRecorder struct {
	requestsTotal   *prometheus.CounterVec
	tokensTotal     *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewPrometheusRecorder creates a Prometheus-based metrics recorder registered
// on the given registerer.
func NewPrometheusRecorder(reg prometheus.Registerer) *PrometheusRecorder {
	factory := promauto.With(reg)
	return &PrometheusRecorder{
		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "generation_requests_total",
				Help: "Total number of generation requests by provider, model, and status",
			},
			[]string{"provider", "model", "status", "error_type"},
		),
		tokensTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "generation_tokens_total",
				Help: "Total number of tokens in generation requests and responses",
			},
			[]string{"provider", "model", "type"},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "generation_request_duration_seconds",
				Help:    "Duration of generation requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"provider", "model"},
		),
	}
}

// ObserveRequest records metrics for a completed generation request.
func (p *PrometheusRecorder) ObserveRequest(provider, model string, promptTokens, completionTokens int, success bool, errorType string, duration time.Duration) {
	status := statusSuccess
	if !success {
		status = statusError
	}

	p.requestsTotal.WithLabelValues(provider, model, status, errorType).Inc()
	p.requestDuration.WithLabelValues(provider, model).Observe(duration.Seconds())

	if promptTokens > 0 {
		p.tokensTotal.WithLabelValues(provider, model, "prompt").Add(float64(promptTokens))
	}
	if completionTokens > 0 {
		p.tokensTotal.WithLabelValues(provider, model, "completion").Add(float64(completionTokens))
	}
}

// UsageExtractor extracts token usage from a request and response.
type UsageExtractor func(req llm.Request, resp llm.Response) (promptTokens, completionTokens int)

// DefaultUsageExtractor counts tokens with the tiktoken GPT-4 encoding.
func DefaultUsageExtractor(req llm.Request, resp llm.Response) (promptTokens, completionTokens int) {
	var promptText string
	for i := range req.Messages {
		promptText += req.Messages[i].Content + "\n"
	}
	return utils.CountTokensSimple(promptText), utils.CountTokensSimple(resp.Content)
}

// Metrics returns a middleware that records request latency, token usage,
// success/failure rates, and error types for a provider's client.
func Metrics(provider string, recorder Recorder, usageExtractor UsageExtractor) llm.Middleware {
	if usageExtractor == nil {
		usageExtractor = DefaultUsageExtractor
	}

	return func(next llm.Client) llm.Client {
		return llm.WrapClient(
			func(ctx context.Context, req llm.Request) (llm.Response, error) {
				start := time.Now()
				resp, err := next.Complete(ctx, req)
				duration := time.Since(start)

				var promptTokens, completionTokens int
				if err == nil {
					promptTokens, completionTokens = usageExtractor(req, resp)
				}

				errorType := ""
				if err != nil {
					errorType = generr.TypeOf(err).String()
				}

				recorder.ObserveRequest(provider, next.ModelName(), promptTokens, completionTokens, err == nil, errorType, duration)
				return resp, err
			},
			next.ModelName,
		)
	}
}
