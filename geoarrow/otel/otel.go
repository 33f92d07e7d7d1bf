// © Copyright 2025-2026, Query.Farm LLC - https://query.farm
// SPDX-License-Identifier: Apache-2.0

// Package geootel provides OpenTelemetry instrumentation for geometry
// encoding. It implements the [geoarrow.EncodeHook] interface to add
// tracing and metrics to encode passes.
//
// Usage:
//
//	enc := geoarrow.NewEncoder(nil)
//	geootel.InstrumentEncoder(enc, geootel.DefaultConfig())
package geootel

import (
	"context"
	"fmt"
	"time"

	"github.com/Query-farm/geoarrow/geoarrow"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "geoarrow"

// OtelConfig configures OpenTelemetry instrumentation for geometry
// encoding.
type OtelConfig struct {
	// TracerProvider supplies the tracer. Defaults to otel.GetTracerProvider().
	TracerProvider trace.TracerProvider
	// MeterProvider supplies the meter. Defaults to otel.GetMeterProvider().
	MeterProvider metric.MeterProvider
	// EnableTracing enables span creation. Default true.
	EnableTracing bool
	// EnableMetrics enables counter and histogram recording. Default true.
	EnableMetrics bool
	// RecordExceptions calls RecordError on the span for failed passes.
	// Default true.
	RecordExceptions bool
	// CustomAttributes are added to every span.
	CustomAttributes []attribute.KeyValue
}

// DefaultConfig returns an OtelConfig with sensible defaults.
// TracerProvider and MeterProvider are resolved from the global OTel SDK
// at instrumentation time.
func DefaultConfig() OtelConfig {
	return OtelConfig{
		EnableTracing:    true,
		EnableMetrics:    true,
		RecordExceptions: true,
	}
}

// InstrumentEncoder attaches OpenTelemetry instrumentation to an encoder.
// The hook is installed via [geoarrow.Encoder.SetHook].
func InstrumentEncoder(enc *geoarrow.Encoder, cfg OtelConfig) {
	enc.SetHook(NewHook(cfg))
}

// NewHook builds an EncodeHook recording OpenTelemetry spans and metrics,
// for use with [geoarrow.Encoder.SetHook] or [geoarrow.EncodeWith].
func NewHook(cfg OtelConfig) geoarrow.EncodeHook {
	if cfg.TracerProvider == nil {
		cfg.TracerProvider = otel.GetTracerProvider()
	}
	if cfg.MeterProvider == nil {
		cfg.MeterProvider = otel.GetMeterProvider()
	}

	hook := &otelHook{
		cfg:    cfg,
		tracer: cfg.TracerProvider.Tracer(instrumentationName),
	}

	if cfg.EnableMetrics {
		meter := cfg.MeterProvider.Meter(instrumentationName)
		hook.elementCounter, _ = meter.Int64Counter("geoarrow.encoder.elements",
			metric.WithUnit("{element}"),
			metric.WithDescription("Number of geometries encoded"),
		)
		hook.durationHistogram, _ = meter.Float64Histogram("geoarrow.encoder.duration",
			metric.WithUnit("s"),
			metric.WithDescription("Duration of encode passes"),
		)
	}

	return hook
}

// otelHook implements geoarrow.EncodeHook with OpenTelemetry tracing and
// metrics.
type otelHook struct {
	cfg               OtelConfig
	tracer            trace.Tracer
	elementCounter    metric.Int64Counter
	durationHistogram metric.Float64Histogram
}

// spanToken is the HookToken returned by OnEncodeStart.
type spanToken struct {
	ctx       context.Context
	span      trace.Span
	startTime time.Time
}

// OnEncodeStart starts an internal span for the encode pass.
func (h *otelHook) OnEncodeStart() geoarrow.HookToken {
	ctx := context.Background()

	if !h.cfg.EnableTracing {
		return &spanToken{ctx: ctx, startTime: time.Now()}
	}

	attrs := append([]attribute.KeyValue{
		attribute.String("geoarrow.layout", geoarrow.LayoutDenseUnion),
	}, h.cfg.CustomAttributes...)

	ctx, span := h.tracer.Start(ctx, "geoarrow/encode",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attrs...),
	)

	return &spanToken{ctx: ctx, span: span, startTime: time.Now()}
}

// OnEncodeEnd records span attributes, metrics, and ends the span.
func (h *otelHook) OnEncodeEnd(token geoarrow.HookToken, stats *geoarrow.EncodeStatistics, err error) {
	st, ok := token.(*spanToken)
	if !ok {
		return
	}

	duration := time.Since(st.startTime)

	status := "ok"
	if err != nil {
		status = "error"
	}

	// Record metrics
	if h.cfg.EnableMetrics {
		metricAttrs := metric.WithAttributes(
			attribute.String("status", status),
		)
		if h.elementCounter != nil && stats != nil {
			h.elementCounter.Add(st.ctx, stats.Elements, metricAttrs)
		}
		if h.durationHistogram != nil {
			h.durationHistogram.Record(st.ctx, duration.Seconds(), metricAttrs)
		}
	}

	// Record span attributes and status
	if st.span != nil && st.span.IsRecording() {
		if stats != nil {
			st.span.SetAttributes(
				attribute.Int64("geoarrow.elements", stats.Elements),
				attribute.Int64("geoarrow.points", stats.Points),
				attribute.Int64("geoarrow.mpoints", stats.MultiPoints),
				attribute.Int64("geoarrow.lines", stats.LineStrings),
				attribute.Int64("geoarrow.polygons", stats.Polygons),
				attribute.Int64("geoarrow.coordinates", stats.Coordinates),
				attribute.Int64("geoarrow.buffer_bytes", stats.BufferBytes),
			)
		}

		if err != nil {
			st.span.SetStatus(codes.Error, err.Error())
			if h.cfg.RecordExceptions {
				st.span.RecordError(err)
			}
			// Set error type attribute
			errType := fmt.Sprintf("%T", err)
			if gerr, ok := err.(*geoarrow.GeometryError); ok {
				errType = gerr.Kind
			}
			st.span.SetAttributes(attribute.String("geoarrow.error_type", errType))
		} else {
			st.span.SetStatus(codes.Ok, "")
		}

		st.span.End()
	}
}
