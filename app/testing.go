package app

import (
	"context"
	"errors"
)

//
// This file contains convenience helpers you can use to easier test
// your calling code relying on this use case pattern.
//

var ErrUseCaseFailed = errors.New("usecase failed")

// TestRequestHandler turns f into a Request.
func TestRequestHandler[Req any, Res any](f func(ctx context.Context, req Req) (Res, error)) Request[Req, Res] {
	return funcHandler[Req, Res](f)
}

// TestQueryHandler turns f into a Query.
func TestQueryHandler[Q any, Res any](f func(ctx context.Context, query Q) (Res, error)) Query[Q, Res] {
	return funcHandler[Q, Res](f)
}

func TestSuccessRequestHandler[Req any, Res any]() Request[Req, Res] {
	return TestRequestHandler(func(context.Context, Req) (Res, error) { return *new(Res), nil })
}

func TestFailureRequestHandler[Req any, Res any]() Request[Req, Res] {
	return TestRequestHandler(func(context.Context, Req) (Res, error) { return *new(Res), ErrUseCaseFailed })
}

func TestSuccessQueryHandler[Q any, Res any]() Query[Q, Res] {
	return TestQueryHandler(func(context.Context, Q) (Res, error) { return *new(Res), nil })
}

func TestFailureQueryHandler[Q any, Res any]() Query[Q, Res] {
	return TestQueryHandler(func(context.Context, Q) (Res, error) { return *new(Res), ErrUseCaseFailed })
}

type funcHandler[In any, Out any] func(ctx context.Context, in In) (Out, error)

func (f funcHandler[In, Out]) H(ctx context.Context, in In) (Out, error) { //nolint:ireturn // valid use of generics
	return f(ctx, in)
}
