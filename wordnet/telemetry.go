package wordnet

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Package-level tracer and meter; no-ops unless the application installs
// OpenTelemetry providers.
var (
	tracer = otel.Tracer("wordnet")
	meter  = otel.Meter("wordnet")
)

var (
	queryTotal   metric.Int64Counter
	queryLatency metric.Float64Histogram

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics creates the instruments once. Safe to call repeatedly.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		queryTotal, err = meter.Int64Counter(
			"wordnet_queries_total",
			metric.WithDescription("Total number of noun queries by operation and outcome"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		queryLatency, err = meter.Float64Histogram(
			"wordnet_query_duration_seconds",
			metric.WithDescription("Duration of noun queries"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})

	return metricsErr
}

// recordQuery records one Distance or SAP call.
func recordQuery(op string, start time.Time, err error) {
	if initMetrics() != nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	attrs := metric.WithAttributes(
		attribute.String("op", op),
		attribute.String("outcome", outcome),
	)
	ctx := context.Background()
	queryTotal.Add(ctx, 1, attrs)
	queryLatency.Record(ctx, time.Since(start).Seconds(), attrs)
}
