// Package app provides common decorators for use cases in the application layer.
//
// A use case is any type with a method H(ctx, in) (out, error).
// Requests change records, queries only read them.
// Both are instrumented the same way, the kind is only visible in logs.
package app

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/go-arrower/recordstore/alog"
)

// ErrInvalidRequest is returned by use cases, if the input is well-formed but can not be executed,
// e.g. an update without any field to change.
var ErrInvalidRequest = errors.New("invalid request")

const instrumentationName = "recordstore.application"

// Request can produce side effects and return data.
type Request[Req any, Res any] interface {
	H(ctx context.Context, req Req) (Res, error)
}

// Query does not produce side effects and returns data.
type Query[Q any, Res any] interface {
	H(ctx context.Context, query Q) (Res, error)
}

type kind string

const (
	kindRequest kind = "request"
	kindQuery   kind = "query"
)

// NewInstrumentedRequest is a convenience helper for easy dependency setup.
// The order of dependencies represents the order of calling.
func NewInstrumentedRequest[Req any, Res any](
	traceProvider trace.TracerProvider,
	meterProvider metric.MeterProvider,
	logger alog.Logger,
	req Request[Req, Res],
) Request[Req, Res] {
	return NewTracedRequest(traceProvider, NewMeteredRequest(meterProvider, NewLoggedRequest(logger, req)))
}

// NewInstrumentedQuery is a convenience helper for easy dependency setup.
// The order of dependencies represents the order of calling.
func NewInstrumentedQuery[Q any, Res any](
	traceProvider trace.TracerProvider,
	meterProvider metric.MeterProvider,
	logger alog.Logger,
	query Query[Q, Res],
) Query[Q, Res] {
	return NewTracedQuery(traceProvider, NewMeteredQuery(meterProvider, NewLoggedQuery(logger, query)))
}

// useCaseName extracts a printable name from the input of a use case in the format of: context.package.structName.
//
// The use case itself can not be used, as it is often a closure returned by the use case constructor.
// Accessing the function name with runtime.Caller will always lead to ".func1".
func useCaseName(in any) string {
	t := reflect.TypeOf(in)
	if t == nil {
		return "<nil>"
	}

	// example: github.com/go-arrower/recordstore/contexts/shop/internal/application
	// take string after /contexts/ and then take string before /internal/
	pkg0 := strings.Split(t.PkgPath(), "/contexts/")

	hasContext := len(pkg0) == 2 //nolint:mnd
	if hasContext {
		pkg1 := strings.Split(pkg0[1], "/internal/")
		if len(pkg1) == 2 { //nolint:mnd
			return fmt.Sprintf("%s.%T", pkg1[0], in)
		}
	}

	// fallback: the input is not defined in a context => packageName.structName
	return fmt.Sprintf("%T", in)
}
