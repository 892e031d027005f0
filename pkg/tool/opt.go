package tool

import (
	// Packages
	weatherstock "github.com/mutablelogic/go-weatherstock"
	trace "go.opentelemetry.io/otel/trace"
	noop "go.opentelemetry.io/otel/trace/noop"
)

/////////////////////////////////////////////////////////////////////////////////
// TYPES

type Opt func(*Toolkit) error

/////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func (tk *Toolkit) apply(opts ...Opt) error {
	tk.tracer = noop.NewTracerProvider().Tracer("")
	for _, opt := range opts {
		if err := opt(tk); err != nil {
			return err
		}
	}
	return nil
}

/////////////////////////////////////////////////////////////////////////////////
// OPTIONS

// WithTools registers tools with the toolkit
func WithTools(tools ...Tool) Opt {
	return func(tk *Toolkit) error {
		return tk.Register(tools...)
	}
}

// WithTracer sets the tracer used to record a span for each invocation
func WithTracer(tracer trace.Tracer) Opt {
	return func(tk *Toolkit) error {
		if tracer == nil {
			return weatherstock.ErrBadParameter.With("tracer is nil")
		}
		tk.tracer = tracer
		return nil
	}
}
