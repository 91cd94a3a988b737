package alog

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
)

// Test returns a logger recording every line down to LevelDebug in slog's text format.
// Inject it wherever a Logger or *slog.Logger is expected and assert on the recorded lines.
//
// The assertions follow stretchr/testify: they report to t and return whether they passed,
// so a test can skip checks that depend on an earlier one.
func Test(t *testing.T) *TestLogger {
	if t == nil {
		panic("alog: Test requires a *testing.T")
	}

	rec := &recorder{}

	return &TestLogger{
		Logger: slog.New(newHandler(
			WithLevel(LevelDebug),
			WithHandler(slog.NewTextHandler(rec, getDebugHandlerOptions())),
		)),
		t:   t,
		rec: rec,
	}
}

// TestLogger is a *slog.Logger with assertions on its output.
type TestLogger struct {
	*slog.Logger

	t   *testing.T
	rec *recorder
}

var (
	_ Logger      = (*TestLogger)(nil)
	_ LevelSetter = (*TestLogger)(nil)
)

func (l *TestLogger) SetLevel(level slog.Level) {
	Unwrap(l.Logger).SetLevel(level)
}

func (l *TestLogger) Level() slog.Level {
	return Unwrap(l.Logger).Level()
}

// String returns all recorded lines as one text.
func (l *TestLogger) String() string {
	return strings.Join(l.rec.lines(), "")
}

// Lines returns the recorded lines, each with its trailing newline.
func (l *TestLogger) Lines() []string {
	return l.rec.lines()
}

// Reset drops all recorded lines, e.g. the ones logged while setting up a test.
func (l *TestLogger) Reset() {
	l.rec.reset()
}

// Empty asserts that nothing is logged.
func (l *TestLogger) Empty(msgAndArgs ...any) bool {
	l.t.Helper()

	if n := len(l.rec.lines()); n > 0 {
		return assert.Fail(l.t, fmt.Sprintf("logger is not empty, it has %s", plural(n, "line")), msgAndArgs...)
	}

	return true
}

// NotEmpty asserts that at least one line is logged.
func (l *TestLogger) NotEmpty(msgAndArgs ...any) bool {
	l.t.Helper()

	if len(l.rec.lines()) == 0 {
		return assert.Fail(l.t, "logger is empty, should not be", msgAndArgs...)
	}

	return true
}

// Total asserts the exact number of logged lines.
func (l *TestLogger) Total(total int, msgAndArgs ...any) bool {
	l.t.Helper()

	if n := len(l.rec.lines()); n != total {
		return assert.Fail(l.t, fmt.Sprintf("logger should have %s, it has %d", plural(total, "line"), n), msgAndArgs...)
	}

	return true
}

// Contains asserts that a line contains the substring s.
func (l *TestLogger) Contains(s string, msgAndArgs ...any) bool {
	l.t.Helper()

	if l.anyLine(func(line string) bool { return strings.Contains(line, s) }) {
		return true
	}

	return assert.Fail(l.t, "no logged line contains: "+s, msgAndArgs...)
}

// NotContains asserts that no line contains the substring s.
func (l *TestLogger) NotContains(s string, msgAndArgs ...any) bool {
	l.t.Helper()

	if l.anyLine(func(line string) bool { return strings.Contains(line, s) }) {
		return assert.Fail(l.t, "a logged line contains: "+s+", should not", msgAndArgs...)
	}

	return true
}

// Attr asserts that a line has the attribute key with the given value.
// Attributes in groups are addressed with dots, e.g. Attr("client.name", "Chrome")
// for the client group the request logger adds.
func (l *TestLogger) Attr(key string, value string, msgAndArgs ...any) bool {
	l.t.Helper()

	pair := key + "=" + textValue(value)
	if l.anyLine(func(line string) bool { return hasPair(line, pair) }) {
		return true
	}

	return assert.Fail(l.t, "no logged line has the attribute: "+pair, msgAndArgs...)
}

// AttrOnEveryLine asserts that every line has the attribute key, whatever its value.
// Use it for attributes added to the context with AddAttr, like the request_id.
func (l *TestLogger) AttrOnEveryLine(key string, msgAndArgs ...any) bool {
	l.t.Helper()

	lines := l.rec.lines()
	if len(lines) == 0 {
		return assert.Fail(l.t, "logger is empty, no line has the attribute: "+key, msgAndArgs...)
	}

	for i, line := range lines {
		if !strings.Contains(" "+line, " "+key+"=") {
			return assert.Fail(l.t, fmt.Sprintf("logged line %d has no attribute %s: %s", i, key, line), msgAndArgs...)
		}
	}

	return true
}

// Logged asserts that msg is logged at the given level.
// The custom levels are matched by their names, e.g. RECORDSTORE:INFO for LevelInfo.
func (l *TestLogger) Logged(level slog.Level, msg string, msgAndArgs ...any) bool {
	l.t.Helper()

	want := "level=" + levelName(level) + " msg=" + textValue(msg)
	if l.anyLine(func(line string) bool { return hasPair(line, want) }) {
		return true
	}

	return assert.Fail(l.t, "not logged: "+want, msgAndArgs...)
}

func (l *TestLogger) anyLine(match func(line string) bool) bool {
	for _, line := range l.rec.lines() {
		if match(line) {
			return true
		}
	}

	return false
}

func levelName(level slog.Level) string {
	if name, ok := getLevelNames()[level]; ok {
		return name
	}

	return level.String()
}

// hasPair reports if line has the whole key=value pair, not a pair ending or starting with it.
func hasPair(line string, pair string) bool {
	return strings.Contains(" "+strings.TrimSuffix(line, "\n")+" ", " "+pair+" ")
}

// textValue formats s the way slog.TextHandler writes string values.
func textValue(s string) string {
	if s == "" || strings.IndexFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '=' || r == '"' || r == '\\' || !unicode.IsPrint(r)
	}) >= 0 {
		return strconv.Quote(s)
	}

	return s
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}

	return strconv.Itoa(n) + " " + word + "s"
}

// recorder keeps every write of the text handler as one line.
type recorder struct {
	mu  sync.Mutex
	buf []string
}

func (r *recorder) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.buf = append(r.buf, string(p))

	return len(p), nil
}

func (r *recorder) lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string{}, r.buf...)
}

func (r *recorder) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.buf = nil
}
