// Package alog is the structured logger of recordstore, built on log/slog.
//
// Every record is enriched with the trace and span ids of the active OpenTelemetry span,
// with the attributes stored in the context via AddAttr, and is added to the span as an event.
package alog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// Logger interface is a subset of slog.Logger, with the aim to:
//  1. encourage the use of the methods offering context.Context, so that tracing information can be correlated
//  2. encourage the use of the levels `DEBUG` and `INFO` over others, but without preventing them.
type Logger interface {
	Log(ctx context.Context, level slog.Level, msg string, args ...any)
	LogAttrs(ctx context.Context, level slog.Level, msg string, attrs ...slog.Attr)
	DebugContext(ctx context.Context, msg string, args ...any)
	InfoContext(ctx context.Context, msg string, args ...any)
}

var _ Logger = (*slog.Logger)(nil)

const (
	// LevelInfo is used to see what is going on inside the framework parts of recordstore.
	LevelInfo = slog.Level(-8)

	// LevelDebug is used by recordstore developers, if you really want to know what is going on.
	LevelDebug = slog.Level(-12)
)

// MapLogLevelsToName replaces the default name of a custom log level with a speaking name.
func MapLogLevelsToName(_ []string, attr slog.Attr) slog.Attr {
	if attr.Key == slog.LevelKey {
		level, _ := attr.Value.Any().(slog.Level)

		levelLabel, exists := getLevelNames()[level]
		if !exists {
			levelLabel = level.String()
		}

		attr.Value = slog.StringValue(levelLabel)
	}

	return attr
}

func getLevelNames() map[slog.Leveler]string {
	return map[slog.Leveler]string{
		LevelInfo:  "RECORDSTORE:INFO",
		LevelDebug: "RECORDSTORE:DEBUG",
	}
}

// ParseLevel maps a configuration value to a level.
// Next to the slog names it understands "recordstore:info" and "recordstore:debug".
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "recordstore:info":
		return LevelInfo, nil
	case "recordstore:debug":
		return LevelDebug, nil
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", s, err)
	}

	return level, nil
}

// Error returns an Attr for an error, so all errors are logged under the same key.
func Error(err error) slog.Attr {
	return slog.String("err", err.Error())
}

type ctxKey int

const ctxAttrs ctxKey = iota

// AddAttr adds a single attribute to ctx. All attributes in the context will be logged with every record.
func AddAttr(ctx context.Context, attr slog.Attr) context.Context {
	return AddAttrs(ctx, attr)
}

// AddAttrs is like AddAttr for many attributes at once.
func AddAttrs(ctx context.Context, newAttrs ...slog.Attr) context.Context {
	existing := FromContext(ctx)

	attrs := make([]slog.Attr, 0, len(existing)+len(newAttrs))
	attrs = append(attrs, existing...)
	attrs = append(attrs, newAttrs...)

	return context.WithValue(ctx, ctxAttrs, attrs)
}

// ClearAttrs removes all attributes added by AddAttr from ctx.
func ClearAttrs(ctx context.Context) context.Context {
	return context.WithValue(ctx, ctxAttrs, []slog.Attr{})
}

// FromContext returns the attributes added by AddAttr. It is never nil.
func FromContext(ctx context.Context) []slog.Attr {
	if attrs, ok := ctx.Value(ctxAttrs).([]slog.Attr); ok {
		return attrs
	}

	return []slog.Attr{}
}
