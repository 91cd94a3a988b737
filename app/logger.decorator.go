package app

import (
	"context"
	"log/slog"

	"github.com/go-arrower/recordstore/alog"
)

func NewLoggedRequest[Req any, Res any](logger alog.Logger, handler Request[Req, Res]) Request[Req, Res] {
	return &loggingDecorator[Req, Res]{
		logger: logger,
		kind:   kindRequest,
		base:   handler,
	}
}

func NewLoggedQuery[Q any, Res any](logger alog.Logger, handler Query[Q, Res]) Query[Q, Res] {
	return &loggingDecorator[Q, Res]{
		logger: logger,
		kind:   kindQuery,
		base:   handler,
	}
}

type loggingDecorator[In any, Out any] struct {
	logger alog.Logger
	kind   kind
	base   Request[In, Out]
}

func (d *loggingDecorator[In, Out]) H(ctx context.Context, in In) (Out, error) { //nolint:ireturn // valid use of generics
	name := useCaseName(in)

	d.logger.DebugContext(ctx, "executing "+string(d.kind),
		slog.String("usecase", name),
	)

	out, err := d.base.H(ctx, in)

	if err != nil {
		d.logger.DebugContext(ctx, "failed to execute "+string(d.kind),
			slog.String("usecase", name),
			alog.Error(err),
		)
	} else {
		d.logger.DebugContext(ctx, string(d.kind)+" executed successfully",
			slog.String("usecase", name))
	}

	return out, err //nolint:wrapcheck // decorate but not change anything
}
