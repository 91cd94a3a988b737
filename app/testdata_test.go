package app_test

import (
	"context"
	"errors"
)

var (
	ctx             = context.Background()
	errUseCaseFails = errors.New("some-error")
)

type (
	request  struct{}
	response struct{}

	requestSuccessHandler struct{}
	requestFailureHandler struct{}
)

func (h *requestSuccessHandler) H(_ context.Context, _ request) (response, error) {
	return response{}, nil
}

func (h *requestFailureHandler) H(_ context.Context, _ request) (response, error) {
	return response{}, errUseCaseFails
}

type structWithValidationTags struct {
	Val0 string `validate:"required"`
	Val1 string `validate:"min=2"`
}

var passingValidationValue = structWithValidationTags{
	Val0: "testValue",
	Val1: "testValue",
}
