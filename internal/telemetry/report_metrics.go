package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	// Report generation metrics
	reportCounter  metric.Int64Counter
	reportDuration metric.Float64Histogram
	reportRowCount metric.Int64Histogram

	reportErrorCounter metric.Int64Counter
)

// InitReportMetrics initializes report-generation metrics
func InitReportMetrics() error {
	meter := otel.Meter("connectpng.report")

	var err error

	reportCounter, err = meter.Int64Counter(
		"report.generate.count",
		metric.WithDescription("Number of report generation operations"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return err
	}

	reportDuration, err = meter.Float64Histogram(
		"report.generate.duration",
		metric.WithDescription("Duration of report generation operations"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return err
	}

	reportRowCount, err = meter.Int64Histogram(
		"report.generate.rows",
		metric.WithDescription("Rows folded into a generated report"),
		metric.WithUnit("{row}"),
	)
	if err != nil {
		return err
	}

	reportErrorCounter, err = meter.Int64Counter(
		"report.generate.errors",
		metric.WithDescription("Number of report generation errors"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return err
	}

	return nil
}

// RecordReportSuccess records a completed report generation.
func RecordReportSuccess(ctx context.Context, reportType string, durationMs float64, rows int64) {
	if reportCounter != nil {
		reportCounter.Add(ctx, 1,
			metric.WithAttributes(
				attribute.String("report_type", reportType),
				attribute.String("status", "success"),
			),
		)
	}

	if reportDuration != nil {
		reportDuration.Record(ctx, durationMs,
			metric.WithAttributes(
				attribute.String("report_type", reportType),
				attribute.String("status", "success"),
			),
		)
	}

	if reportRowCount != nil {
		reportRowCount.Record(ctx, rows,
			metric.WithAttributes(attribute.String("report_type", reportType)),
		)
	}
}

// RecordReportError records a failed report generation.
func RecordReportError(ctx context.Context, reportType string, durationMs float64) {
	if reportErrorCounter != nil {
		reportErrorCounter.Add(ctx, 1,
			metric.WithAttributes(attribute.String("report_type", reportType)),
		)
	}

	if reportDuration != nil {
		reportDuration.Record(ctx, durationMs,
			metric.WithAttributes(
				attribute.String("report_type", reportType),
				attribute.String("status", "error"),
			),
		)
	}
}
