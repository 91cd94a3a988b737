package app

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

func NewTracedRequest[Req any, Res any](traceProvider trace.TracerProvider, req Request[Req, Res]) Request[Req, Res] {
	return &tracingDecorator[Req, Res]{
		tracer: traceProvider.Tracer(instrumentationName),
		kind:   kindRequest,
		base:   req,
	}
}

func NewTracedQuery[Q any, Res any](traceProvider trace.TracerProvider, query Query[Q, Res]) Query[Q, Res] {
	return &tracingDecorator[Q, Res]{
		tracer: traceProvider.Tracer(instrumentationName),
		kind:   kindQuery,
		base:   query,
	}
}

type tracingDecorator[In any, Out any] struct {
	tracer trace.Tracer
	kind   kind
	base   Request[In, Out]
}

func (d *tracingDecorator[In, Out]) H(ctx context.Context, in In) (Out, error) { //nolint:ireturn // valid use of generics
	newCtx, span := d.tracer.Start(ctx, "usecase",
		trace.WithAttributes(
			attribute.String("usecase", useCaseName(in)),
			attribute.String("kind", string(d.kind)),
		),
	)
	defer span.End()

	out, err := d.base.H(newCtx, in)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
	}

	return out, err //nolint:wrapcheck // decorate but not change anything
}
