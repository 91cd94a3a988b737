package cmd

import (
	"bytes"
	"os"
	"sync"
	"syscall"
	"testing"

	"github.com/spf13/cobra"
)

// TestCLI runs the recordstore cli in tests.
// Instead of the os signals, serve listens on a channel the test controls.
type TestCLI struct {
	t        *testing.T
	osSignal chan os.Signal
}

func NewTestCLI(t *testing.T) *TestCLI {
	t.Helper()

	return &TestCLI{
		t:        t,
		osSignal: make(chan os.Signal, 1),
	}
}

// Execute runs a new recordstore cli with args and returns its output.
// serve blocks until Interrupt is called.
func (c *TestCLI) Execute(args ...string) (string, error) {
	c.t.Helper()

	return TestExecute(c.t, NewRecordStoreCLI(c.osSignal), args...)
}

// Interrupt stops a running or the next serve, as SIGTERM would.
func (c *TestCLI) Interrupt() {
	select {
	case c.osSignal <- syscall.SIGTERM:
	default: // already pending
	}
}

// executeMu serialises TestExecute, so parallel tests can share a command.
var executeMu sync.Mutex

// TestExecute executes command with args and returns everything it wrote to
// its out and err writers, together with the error of the execution.
func TestExecute(t *testing.T, command *cobra.Command, args ...string) (string, error) {
	t.Helper()

	executeMu.Lock()
	defer executeMu.Unlock()

	out := &syncBuffer{}
	command.SetOut(out)
	command.SetErr(out)
	command.SetArgs(args)

	_, err := command.ExecuteC()

	return out.String(), err //nolint:wrapcheck // return the error of the command as is
}

// syncBuffer is written to by the command and the servers it starts.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Write(p) //nolint:wrapcheck // bytes.Buffer does not fail
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.String()
}
