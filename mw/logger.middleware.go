package mw

import (
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/mileusna/useragent"

	"github.com/go-arrower/recordstore/alog"
)

// RequestLogger logs every handled API call with its outcome.
// Successful calls are logged at alog.LevelInfo, failed ones at slog.LevelInfo,
// so they are visible with the default configuration.
func RequestLogger(logger alog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				// let the error handler write the response, so the final status is known.
				c.Error(err)
			}

			level := alog.LevelInfo
			if c.Response().Status >= 400 { //nolint:mnd // all client and server errors
				level = slog.LevelInfo
			}

			attrs := []slog.Attr{
				slog.String("method", c.Request().Method),
				slog.String("path", c.Path()),
				slog.String("uri", c.Request().RequestURI),
				slog.Int("status", c.Response().Status),
				slog.Duration("latency", time.Since(start)),
			}

			if ua := c.Request().UserAgent(); ua != "" {
				attrs = append(attrs, clientAttr(useragent.Parse(ua)))
			}

			logger.LogAttrs(c.Request().Context(), level, "handled request", attrs...)

			return nil
		}
	}
}

// clientAttr groups the parts of the user agent that help to reproduce a failed call.
func clientAttr(ua useragent.UserAgent) slog.Attr {
	return slog.Group("client",
		slog.String("name", ua.Name),
		slog.String("version", ua.Version),
		slog.String("os", ua.OS),
		slog.Bool("bot", ua.Bot),
	)
}
