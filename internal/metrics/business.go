package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Operation domains used as the "domain" attribute.
const (
	DomainEncryption = "encryption"
	DomainValidation = "validation"
)

// Operation statuses used as the "status" attribute.
const (
	StatusSuccess = "success"
	StatusError   = "error"
	StatusInvalid = "invalid"
)

// BusinessMetrics records outcomes of payment request operations.
// Attributes never carry field values or key material, only operation names,
// product ids, field ids and error types.
type BusinessMetrics interface {
	// RecordOperation increments the operation counter.
	RecordOperation(ctx context.Context, domain, operation, status string)

	// RecordDuration records how long an operation took.
	RecordDuration(ctx context.Context, domain, operation string, duration time.Duration, status string)

	// RecordFieldError counts one failed field check of a payment product.
	RecordFieldError(ctx context.Context, productID, fieldID, errorType string)
}

// businessMetrics implements BusinessMetrics using OpenTelemetry instruments.
type businessMetrics struct {
	operationCounter  metric.Int64Counter
	durationHisto     metric.Float64Histogram
	fieldErrorCounter metric.Int64Counter
}

// NewBusinessMetrics creates business metric instruments on meterProvider.
// Metric names are prefixed with namespace.
func NewBusinessMetrics(meterProvider metric.MeterProvider, namespace string) (BusinessMetrics, error) {
	meter := meterProvider.Meter(namespace)

	operationCounter, err := meter.Int64Counter(
		fmt.Sprintf("%s_operations_total", namespace),
		metric.WithDescription("Total number of payment request operations"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create operation counter: %w", err)
	}

	durationHisto, err := meter.Float64Histogram(
		fmt.Sprintf("%s_operation_duration_seconds", namespace),
		metric.WithDescription("Duration of payment request operations in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create duration histogram: %w", err)
	}

	fieldErrorCounter, err := meter.Int64Counter(
		fmt.Sprintf("%s_field_errors_total", namespace),
		metric.WithDescription("Total number of failed field checks"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create field error counter: %w", err)
	}

	return &businessMetrics{
		operationCounter:  operationCounter,
		durationHisto:     durationHisto,
		fieldErrorCounter: fieldErrorCounter,
	}, nil
}

// RecordOperation implements BusinessMetrics.
func (b *businessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	b.operationCounter.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("domain", domain),
			attribute.String("operation", operation),
			attribute.String("status", status),
		),
	)
}

// RecordDuration implements BusinessMetrics.
func (b *businessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	b.durationHisto.Record(ctx, duration.Seconds(),
		metric.WithAttributes(
			attribute.String("domain", domain),
			attribute.String("operation", operation),
			attribute.String("status", status),
		),
	)
}

// RecordFieldError implements BusinessMetrics.
func (b *businessMetrics) RecordFieldError(ctx context.Context, productID, fieldID, errorType string) {
	b.fieldErrorCounter.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("product_id", productID),
			attribute.String("field_id", fieldID),
			attribute.String("error_type", errorType),
		),
	)
}

// NoOpBusinessMetrics discards every measurement. Used when metrics are disabled.
type NoOpBusinessMetrics struct{}

// NewNoOpBusinessMetrics creates a BusinessMetrics that records nothing.
func NewNoOpBusinessMetrics() BusinessMetrics {
	return &NoOpBusinessMetrics{}
}

// RecordOperation implements BusinessMetrics.
func (n *NoOpBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {}

// RecordDuration implements BusinessMetrics.
func (n *NoOpBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
}

// RecordFieldError implements BusinessMetrics.
func (n *NoOpBusinessMetrics) RecordFieldError(ctx context.Context, productID, fieldID, errorType string) {}
