// Testing strategy:
//
// The cmd/ package tests drive the cobra root in-process with captured
// output. Each test gets its own HOME and working directory, so config
// writes never touch the developer's machine. The audit log stays closed
// unless a test opens it against the temporary HOME.

package cmd

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/jpl-au/ms/internal/config"
	"github.com/jpl-au/ms/internal/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testEnv holds test environment state.
type testEnv struct {
	t    *testing.T
	home string
	dir  string
}

// newTestEnv isolates HOME, the working directory and MS_LONG.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	home := t.TempDir()
	dir := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(config.EnvLong, "")
	t.Chdir(dir)

	t.Cleanup(func() {
		SetOut(os.Stdout)
		SetIn(os.Stdin)
	})

	return &testEnv{t: t, home: home, dir: dir}
}

// openLog opens the audit log under the test's HOME.
func (e *testEnv) openLog() {
	e.t.Helper()
	log.Close()
	require.NoError(e.t, log.Open())
	e.t.Cleanup(log.Close)
}

// run executes ms with the given args and returns the output.
func (e *testEnv) run(args ...string) string {
	e.t.Helper()
	out, err := e.runErr(args...)
	if err != nil {
		e.t.Fatalf("ms %v failed: %v\noutput: %s", args, err, out)
	}
	return out
}

// runErr executes ms and returns the combined output and any error.
func (e *testEnv) runErr(args ...string) (string, error) {
	e.t.Helper()
	return e.runStdinErr("", args...)
}

// runStdin executes ms with stdin input.
func (e *testEnv) runStdin(input string, args ...string) string {
	e.t.Helper()
	out, err := e.runStdinErr(input, args...)
	if err != nil {
		e.t.Fatalf("ms %v failed: %v\noutput: %s", args, err, out)
	}
	return out
}

// runStdinErr executes ms with stdin input and returns any error.
func (e *testEnv) runStdinErr(input string, args ...string) (string, error) {
	e.t.Helper()

	var buf bytes.Buffer
	resetFlags(rootCmd)
	SetOut(&buf)
	SetIn(strings.NewReader(input))
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	if args == nil {
		// nil makes cobra fall back to os.Args
		args = []string{}
	}
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

// contains checks if output contains expected string.
func (e *testEnv) contains(output, expected string) {
	e.t.Helper()
	assert.Contains(e.t, output, expected)
}

// equals checks if output equals expected string (trimmed).
func (e *testEnv) equals(output, expected string) {
	e.t.Helper()
	assert.Equal(e.t, strings.TrimSpace(expected), strings.TrimSpace(output))
}

// resetFlags restores every flag to its default. Cobra keeps parsed values
// on the command between Execute calls.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.PersistentFlags().VisitAll(reset)
	c.Flags().VisitAll(reset)
	c.SilenceErrors = false
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}
