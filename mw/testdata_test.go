package mw_test

import (
	"net/http/httptest"

	"github.com/labstack/echo/v4"

	"github.com/go-arrower/recordstore/alog"
	"github.com/go-arrower/recordstore/mw"
)

func newRouter(logger alog.Logger) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = mw.ErrorHandler(logger)

	return e
}

func serve(e *echo.Echo, method string, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	return rec
}

func handlerReturning(err error) echo.HandlerFunc {
	return func(echo.Context) error {
		return err
	}
}

