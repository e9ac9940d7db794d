// Package obs configures optional OpenTelemetry tracing for schemakit
// operations. Tracing is off unless explicitly enabled; the core packages
// never emit telemetry themselves.
package obs

import (
	"context"
	"errors"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/schemakit/schemakit/obs"

// Options configure tracing setup.
type Options struct {
	// Enabled turns span export on. When false Init installs nothing and
	// returns a no-op shutdown.
	Enabled bool
	// ServiceName identifies this process in exported spans.
	ServiceName string
	// Pretty formats exported spans for human reading.
	Pretty bool
}

var (
	initOnce sync.Once
	initErr  error
	shutdown func(context.Context) error
)

// Init installs a stdout span exporter. Safe to call once; later calls return
// an error.
func Init(ctx context.Context, opts Options) (func(context.Context) error, error) {
	done := false
	initOnce.Do(func() {
		done = true
		if !opts.Enabled {
			shutdown = func(context.Context) error { return nil }
			return
		}
		if opts.ServiceName == "" {
			opts.ServiceName = "schemakit"
		}

		var exporterOpts []stdouttrace.Option
		if opts.Pretty {
			exporterOpts = append(exporterOpts, stdouttrace.WithPrettyPrint())
		}
		exporter, err := stdouttrace.New(exporterOpts...)
		if err != nil {
			initErr = err
			return
		}

		res, err := resource.New(ctx,
			resource.WithAttributes(semconv.ServiceName(opts.ServiceName)),
		)
		if err != nil {
			initErr = err
			return
		}

		provider := sdktrace.NewTracerProvider(
			sdktrace.WithBatcher(exporter),
			sdktrace.WithResource(res),
		)
		otel.SetTracerProvider(provider)
		shutdown = provider.Shutdown
	})

	if !done {
		return nil, errors.New("observability already initialized")
	}
	if initErr != nil {
		return nil, initErr
	}
	return shutdown, nil
}

// Tracer returns the schemakit tracer.
func Tracer() trace.Tracer {
	return otel.Tracer(tracerName)
}
