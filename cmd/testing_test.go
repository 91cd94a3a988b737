package cmd_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"

	"github.com/go-arrower/recordstore/cmd"
)

var errCmdFailed = errors.New("cmd failed")

func TestTestExecute(t *testing.T) {
	t.Parallel()

	t.Run("out and err writers", func(t *testing.T) {
		t.Parallel()

		command := &cobra.Command{Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "to out")
			fmt.Fprintln(cmd.ErrOrStderr(), "to err")
		}}

		output, err := cmd.TestExecute(t, command)
		assert.NoError(t, err)
		assert.Contains(t, output, "to out")
		assert.Contains(t, output, "to err")
	})

	t.Run("args and error of the command", func(t *testing.T) {
		t.Parallel()

		command := &cobra.Command{RunE: func(_ *cobra.Command, args []string) error {
			return fmt.Errorf("%w: %v", errCmdFailed, args)
		}}

		output, err := cmd.TestExecute(t, command, "some", "args")
		assert.ErrorIs(t, err, errCmdFailed)
		assert.Contains(t, output, "cmd failed: [some args]")
	})

	t.Run("shared command in parallel", func(t *testing.T) {
		t.Parallel()

		command := &cobra.Command{Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), args)
		}}

		var wg sync.WaitGroup

		for i := range 10 {
			wg.Add(1)

			go func() {
				defer wg.Done()

				output, err := cmd.TestExecute(t, command, fmt.Sprint(i))
				assert.NoError(t, err)
				assert.Equal(t, fmt.Sprint([]string{fmt.Sprint(i)}), output, "output of other runs is not mixed in")
			}()
		}

		wg.Wait()
	})
}

func TestTestCLI(t *testing.T) {
	t.Parallel()

	t.Run("commands without serve", func(t *testing.T) {
		t.Parallel()

		output, err := cmd.NewTestCLI(t).Execute("version")
		assert.NoError(t, err)
		assert.Contains(t, output, "recordstore version: ")
	})

	t.Run("interrupt before serve", func(t *testing.T) {
		t.Parallel()

		cli := cmd.NewTestCLI(t)
		cli.Interrupt()
		cli.Interrupt()

		output, err := cli.Execute("serve", "-c", "testdata/serve.yaml")
		assert.NoError(t, err)
		assert.Contains(t, output, "serving on :0")
	})
}
