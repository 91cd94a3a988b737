package app

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/go-arrower/recordstore/optional"
)

type ctxKey string

const ctxValidated ctxKey = "recordstore.validated"

// PassedValidation is a helper giving you feedback, if a request passed validation of this decorator.
// Use it in case you want to ensure that this decorator was called before continuing with your business logic.
func PassedValidation(ctx context.Context) bool {
	if v, ok := ctx.Value(ctxValidated).(bool); ok {
		return v
	}

	return false
}

// NewValidator returns a validator that applies the tags of optional fields to the wrapped value.
func NewValidator() *validator.Validate {
	return optional.RegisterValidation(validator.New(validator.WithRequiredStructEnabled()),
		optional.Value[string]{},
		optional.Value[bool]{},
		optional.Value[int]{},
		optional.Value[uint]{},
		optional.Value[float64]{},
	)
}

// NewValidatedRequest validates req with the `validate` struct tags before calling the use case.
// If validate is nil, NewValidator is used.
func NewValidatedRequest[Req any, Res any](validate *validator.Validate, req Request[Req, Res]) Request[Req, Res] {
	return newValidatingDecorator(validate, req)
}

func NewValidatedQuery[Q any, Res any](validate *validator.Validate, query Query[Q, Res]) Query[Q, Res] {
	return newValidatingDecorator[Q, Res](validate, query)
}

func newValidatingDecorator[In any, Out any](validate *validator.Validate, base Request[In, Out]) *validatingDecorator[In, Out] {
	if validate == nil {
		validate = NewValidator()
	}

	return &validatingDecorator[In, Out]{
		validate: validate,
		base:     base,
	}
}

type validatingDecorator[In any, Out any] struct {
	validate *validator.Validate
	base     Request[In, Out]
}

func (d *validatingDecorator[In, Out]) H(ctx context.Context, in In) (Out, error) { //nolint:ireturn // valid use of generics
	if err := d.validate.Struct(in); err != nil {
		return *new(Out), err //nolint:wrapcheck // validation error is returned on purpose
	}

	return d.base.H(context.WithValue(ctx, ctxValidated, true), in) //nolint:wrapcheck // decorate but not change anything
}
