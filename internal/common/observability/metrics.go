package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/sdk/metric"
)

type Logger interface {
	Warn(msg string, fields map[string]interface{})
}

// Observability owns the otel meter provider. Its instruments land on the default
// prometheus registry through the otel exporter, next to the promauto collectors.
type Observability struct {
	meterProvider    *metric.MeterProvider
	meter            otelmetric.Meter
	responseCounter  otelmetric.Int64Counter
	responseDuration otelmetric.Float64Histogram
}

func New(serviceName string, log Logger) *Observability {
	exporter, err := prometheus.New()
	if err != nil {
		log.Warn("failed to create prometheus exporter", map[string]interface{}{"error": err.Error()})
		return &Observability{}
	}

	provider := metric.NewMeterProvider(metric.WithReader(exporter))
	otel.SetMeterProvider(provider)

	return newWithProvider(provider, serviceName)
}

// NewWithReader builds an Observability on a caller-supplied reader, e.g. a ManualReader in tests.
func NewWithReader(serviceName string, reader metric.Reader) *Observability {
	return newWithProvider(metric.NewMeterProvider(metric.WithReader(reader)), serviceName)
}

func newWithProvider(provider *metric.MeterProvider, serviceName string) *Observability {
	meter := provider.Meter(serviceName)

	responseCounter, _ := meter.Int64Counter(
		"responses.processed",
		otelmetric.WithDescription("Number of utterances answered"),
	)

	responseDuration, _ := meter.Float64Histogram(
		"responses.duration",
		otelmetric.WithDescription("Time from utterance to response"),
		otelmetric.WithUnit("ms"),
	)

	return &Observability{
		meterProvider:    provider,
		meter:            meter,
		responseCounter:  responseCounter,
		responseDuration: responseDuration,
	}
}

// RecordResponse is safe on a zero Observability.
func (o *Observability) RecordResponse(ctx context.Context, intent string, duration time.Duration) {
	if o == nil {
		return
	}
	attrs := otelmetric.WithAttributes(attribute.String("intent", intent))
	if o.responseCounter != nil {
		o.responseCounter.Add(ctx, 1, attrs)
	}
	if o.responseDuration != nil {
		o.responseDuration.Record(ctx, float64(duration.Microseconds())/1000, attrs)
	}
}

func (o *Observability) Shutdown() {
	if o != nil && o.meterProvider != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = o.meterProvider.Shutdown(ctx)
	}
}
