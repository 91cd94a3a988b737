package alog

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// LoggerOpt allows to initialise a logger with custom options.
type LoggerOpt func(logger *tracedHandler)

// WithHandler adds a slog.Handler to be logged to.
// You can set as many as you want.
func WithHandler(h slog.Handler) LoggerOpt {
	return func(l *tracedHandler) {
		l.handlers = append(l.handlers, h)
	}
}

// WithLevel initialises the logger with a starting level.
// To change the level at runtime use: Unwrap(logger).SetLevel(LevelInfo).
func WithLevel(level slog.Level) LoggerOpt {
	return func(l *tracedHandler) {
		l.level.Set(level)
	}
}

// New returns a production ready logger.
//
// If no options are given it creates a default handler, logging JSON to Stderr.
// Otherwise, use WithHandler to set your own handlers.
func New(opts ...LoggerOpt) *slog.Logger {
	return slog.New(newHandler(opts...))
}

// NewDevelopment returns a logger ready for local development:
// human-readable text on Stderr at debug level.
func NewDevelopment() *slog.Logger {
	return New(
		WithLevel(slog.LevelDebug),
		WithHandler(slog.NewTextHandler(os.Stderr, getDebugHandlerOptions())),
	)
}

// newHandler does not output anything directly and relies on other slog.Handlers to do so.
// If no Handlers are provided via WithHandler, a default JSON handler logs to os.Stderr.
func newHandler(opts ...LoggerOpt) *rootHandler {
	level := &slog.LevelVar{}
	level.Set(slog.LevelInfo)

	logger := &rootHandler{&tracedHandler{
		handlers: []slog.Handler{},
		level:    level,
	}}

	for _, opt := range opts {
		opt(logger.tracedHandler)
	}

	if len(logger.handlers) == 0 {
		logger.handlers = []slog.Handler{slog.NewJSONHandler(os.Stderr, getDefaultHandlerOptions())}
	}

	return logger
}

// rootHandler starts a span for the whole logging call, so that Enabled and Handle
// of the tracedHandler are recorded in the same span.
type rootHandler struct {
	*tracedHandler
}

var (
	_ slog.Handler = (*rootHandler)(nil)
	_ LevelSetter  = (*rootHandler)(nil)
)

func (l *rootHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= l.level.Level()
}

func (l *rootHandler) Handle(ctx context.Context, record slog.Record) error {
	span := trace.SpanFromContext(ctx)

	newCtx, innerSpan := span.TracerProvider().Tracer("recordstore.log").Start(ctx, "log")
	defer innerSpan.End()

	if !l.tracedHandler.Enabled(newCtx, record.Level) {
		return nil
	}

	return l.tracedHandler.Handle(newCtx, record)
}

func (l *rootHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return l.tracedHandler.WithAttrs(attrs)
}

func (l *rootHandler) WithGroup(name string) slog.Handler {
	return l.tracedHandler.WithGroup(name)
}

// tracedHandler fans a record out to all handlers.
type tracedHandler struct {
	// level is the minimum level for all handlers.
	// The level of individual handlers set via WithHandler is ignored.
	// It is shared by all handlers derived via WithAttrs and WithGroup.
	level *slog.LevelVar

	handlers []slog.Handler
}

func (l *tracedHandler) Enabled(ctx context.Context, level slog.Level) bool {
	enabled := level >= l.level.Level()

	trace.SpanFromContext(ctx).SetAttributes(
		attribute.Bool("enabled", enabled),
		attribute.Int("level.record", int(level)),
		attribute.Int("level.logger", int(l.level.Level())),
	)

	return enabled
}

func (l *tracedHandler) Handle(ctx context.Context, record slog.Record) error {
	span := trace.SpanFromContext(ctx)

	record = addTraceAndSpanIDsToLogs(span, record)
	record.AddAttrs(FromContext(ctx)...)

	attrs := getAttrsFromRecord(record)

	span.SetAttributes(attrs...)
	addLogsToActiveSpanAsEvent(span, attrs, record)

	var retErr error

	for _, h := range l.handlers {
		err := h.Handle(ctx, record)
		retErr = errors.Join(retErr, err)
	}

	return retErr
}

func (l *tracedHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, len(l.handlers))

	for i, h := range l.handlers {
		handlers[i] = h.WithAttrs(attrs)
	}

	return &rootHandler{&tracedHandler{handlers: handlers, level: l.level}}
}

func (l *tracedHandler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, len(l.handlers))

	for i, h := range l.handlers {
		handlers[i] = h.WithGroup(name)
	}

	return &rootHandler{&tracedHandler{handlers: handlers, level: l.level}}
}

// SetLevel changes the level for all handlers set with WithHandler().
// Even the ones "copied" via any WithX method.
func (l *tracedHandler) SetLevel(level slog.Level) {
	l.level.Set(level)
}

func (l *tracedHandler) Level() slog.Level {
	return l.level.Level()
}

func (l *tracedHandler) NumHandlers() int {
	return len(l.handlers)
}

// LevelSetter offers control over the level of a logger at run time.
// Unwrap a logger to get access to it.
type LevelSetter interface {
	SetLevel(level slog.Level)
	Level() slog.Level
}

// Unwrap returns the LevelSetter of logger.
// In case logger was not created by this package, it returns nil.
func Unwrap(logger Logger) LevelSetter { //nolint:ireturn // interface required to return a TestLogger and rootHandler
	if l, ok := logger.(*TestLogger); ok {
		return l
	}

	if sl, ok := logger.(*slog.Logger); ok {
		if l, ok := sl.Handler().(*rootHandler); ok {
			return l
		}
	}

	return nil
}

func addTraceAndSpanIDsToLogs(span trace.Span, record slog.Record) slog.Record {
	sCtx := span.SpanContext()
	attrs := make([]slog.Attr, 0)

	if sCtx.HasTraceID() {
		attrs = append(attrs, slog.String("traceID", sCtx.TraceID().String()))
	}

	if sCtx.HasSpanID() {
		attrs = append(attrs, slog.String("spanID", sCtx.SpanID().String()))
	}

	if len(attrs) > 0 {
		record.AddAttrs(attrs...)
	}

	return record
}

func addLogsToActiveSpanAsEvent(span trace.Span, attrs []attribute.KeyValue, record slog.Record) {
	span.AddEvent("log", trace.WithAttributes(attrs...))

	if record.Level >= slog.LevelError {
		span.SetStatus(codes.Error, record.Message)
	}
}

func getAttrsFromRecord(record slog.Record) []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, 0, record.NumAttrs()+2) //nolint:mnd // severity and message

	attrs = append(attrs,
		attribute.String("log.severity", record.Level.String()),
		attribute.String("log.message", record.Message),
	)

	record.Attrs(func(a slog.Attr) bool {
		attrs = append(attrs, attribute.String(a.Key, a.Value.String()))

		return true
	})

	return attrs
}

func getDefaultHandlerOptions() *slog.HandlerOptions {
	return &slog.HandlerOptions{
		AddSource:   true,
		Level:       nil, // this level is ignored, the level of the tracedHandler is used for all handlers.
		ReplaceAttr: MapLogLevelsToName,
	}
}

// getDebugHandlerOptions is to keep the log output more readable, by removing not essential keys.
func getDebugHandlerOptions() *slog.HandlerOptions {
	opt := getDefaultHandlerOptions()
	opt.AddSource = false

	return opt
}
