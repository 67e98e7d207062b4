// Package otel installs the tracer provider used by the HTTP, SQL and assist clients.
package otel

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

const (
	DefaultServiceName = "resumeapi"

	ProtocolGRPC = "grpc"
	ProtocolHTTP = "http/protobuf"
)

// Settings mirrors the standard OTEL_* variables this service honours.
type Settings struct {
	Disabled    bool
	ServiceName string
	Protocol    string
	Endpoint    string
	Sampler     string
	SamplerArg  string
}

// SettingsFromEnv reads Settings, applying the SDK defaults for anything unset.
func SettingsFromEnv() Settings {
	s := Settings{
		Disabled:    os.Getenv("OTEL_SDK_DISABLED") == "true",
		ServiceName: envOr("OTEL_SERVICE_NAME", DefaultServiceName),
		Protocol:    envOr("OTEL_EXPORTER_OTLP_PROTOCOL", ProtocolGRPC),
		Endpoint:    os.Getenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT"),
		Sampler:     envOr("OTEL_TRACES_SAMPLER", "parentbased_traceidratio"),
		SamplerArg:  envOr("OTEL_TRACES_SAMPLER_ARG", "1.0"),
	}
	if s.Endpoint == "" {
		s.Endpoint = os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	}
	return s
}

// Init installs the global propagator and, unless disabled, an OTLP tracer provider.
// An exporter that cannot be built is logged and tracing degrades to propagation only.
func Init(ctx context.Context, log *slog.Logger, s Settings) (func(context.Context) error, error) {
	installPropagator()
	noop := func(context.Context) error { return nil }

	if s.Disabled {
		log.Info("tracing_configured", "tracing_enabled", false)
		return noop, nil
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(s.ServiceName)),
		resource.WithFromEnv(),
		resource.WithProcess(),
		resource.WithTelemetrySDK(),
		resource.WithHost(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	exporter, err := newExporter(ctx, s.Protocol)
	if err != nil {
		log.Error("tracing_init_failed", "error", err.Error())
		return noop, nil
	}

	tp := trace.NewTracerProvider(
		trace.WithBatcher(exporter),
		trace.WithResource(res),
		trace.WithSampler(samplerFor(s.Sampler, s.SamplerArg)),
	)
	otel.SetTracerProvider(tp)

	log.Info("tracing_configured",
		"tracing_enabled", true,
		"service", s.ServiceName,
		"otlp_protocol", s.Protocol,
		"otlp_endpoint", s.Endpoint,
		"sampler", s.Sampler,
		"sampler_arg", s.SamplerArg,
	)
	return tp.Shutdown, nil
}

func installPropagator() {
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))
}

func newExporter(ctx context.Context, protocol string) (*otlptrace.Exporter, error) {
	switch protocol {
	case ProtocolGRPC, "":
		return otlptracegrpc.New(ctx)
	case ProtocolHTTP:
		return otlptracehttp.New(ctx)
	default:
		return nil, fmt.Errorf("unsupported OTLP protocol: %s", protocol)
	}
}

func samplerFor(name, arg string) trace.Sampler {
	ratio := func() float64 {
		r, err := strconv.ParseFloat(arg, 64)
		if err != nil || r < 0 || r > 1 {
			return 1.0
		}
		return r
	}

	switch name {
	case "always_on":
		return trace.AlwaysSample()
	case "always_off":
		return trace.NeverSample()
	case "traceidratio":
		return trace.TraceIDRatioBased(ratio())
	case "parentbased_always_on":
		return trace.ParentBased(trace.AlwaysSample())
	case "parentbased_always_off":
		return trace.ParentBased(trace.NeverSample())
	case "parentbased_traceidratio":
		return trace.ParentBased(trace.TraceIDRatioBased(ratio()))
	default:
		return trace.ParentBased(trace.AlwaysSample())
	}
}

func envOr(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
