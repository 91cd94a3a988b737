// Package mw contains the echo middlewares shared by all contexts of the API.
package mw

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/go-arrower/recordstore/alog"
	"github.com/go-arrower/recordstore/app"
	"github.com/go-arrower/recordstore/repository"
	"github.com/go-arrower/recordstore/repository/q"
)

// ErrorResponse is the body of every failed API call.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// ErrorHandler maps errors returned by controllers to a status code and an ErrorResponse:
//
//	repository.ErrNotFound                              => 404
//	repository.ErrAlreadyExists                         => 409
//	app.ErrInvalidRequest, validation & binding errors  => 400
//	*echo.HTTPError                                     => its code
//	everything else                                     => 500
//
// The details of internal errors are logged but never send to the client.
func ErrorHandler(logger alog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, detail := statusFor(err)

		ctx := c.Request().Context()
		if code >= http.StatusInternalServerError {
			logger.LogAttrs(ctx, slog.LevelError, "request failed",
				slog.String("path", c.Path()),
				alog.Error(err),
			)
		} else {
			logger.DebugContext(ctx, "request rejected",
				slog.String("path", c.Path()),
				slog.Int("code", code),
				alog.Error(err),
			)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, ErrorResponse{Detail: detail})
		}

		if err != nil {
			logger.DebugContext(ctx, "could not send error response", alog.Error(err))
		}
	}
}

func statusFor(err error) (int, string) {
	var (
		httpErr          *echo.HTTPError
		bindErr          *echo.BindingError
		validationErrors validator.ValidationErrors
	)

	switch {
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, repository.ErrAlreadyExists):
		return http.StatusConflict, err.Error()
	case errors.Is(err, app.ErrInvalidRequest),
		errors.Is(err, q.ErrInvalidExpression),
		errors.As(err, &validationErrors):
		return http.StatusBadRequest, err.Error()
	case errors.As(err, &bindErr):
		return bindErr.Code, detailOf(bindErr.HTTPError) + ": " + bindErr.Field
	case errors.As(err, &httpErr):
		return httpErr.Code, detailOf(httpErr)
	default:
		return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
	}
}

func detailOf(err *echo.HTTPError) string {
	if msg, ok := err.Message.(string); ok {
		return msg
	}

	return http.StatusText(err.Code)
}
