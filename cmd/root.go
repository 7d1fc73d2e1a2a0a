/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// root.go defines the root command and CLI execution entry point.
//
// The bare form "ms <value>" behaves like duration.Convert on a string:
// duration strings become milliseconds. --format forces the value to be read
// as a millisecond count and prints the formatted string instead.
//
// Design: config is loaded once in Execute and again lazily by commands
// that need it, so tests driving the root in-process see their own
// isolated HOME. The audit log is only opened from Execute; in-process
// callers get a no-op logger unless they open it themselves.

package cmd

import (
	"errors"
	"fmt"
	"math"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/jpl-au/ms/duration"
	"github.com/jpl-au/ms/internal/config"
	"github.com/jpl-au/ms/internal/log"
	"github.com/spf13/cobra"
)

// Flag names shared by several commands.
const (
	flagFormat  = "format"
	flagLong    = "long"
	flagLenient = "lenient"
	flagLocal   = "local"
	flagLimit   = "limit"
	flagPrune   = "prune"
)

var errNotNumber = errors.New("not a finite number")

var rootCmd = &cobra.Command{
	Use:   "ms [value]",
	Short: "Convert between duration strings and milliseconds",
	Long: `Convert between human-readable durations and milliseconds.

  ms 2h              # 7200000
  ms "1.5 days"      # 129600000
  ms 1500 --format   # 2s
  ms 1500 -f --long  # 2 seconds
  ms -- -3d          # -259200000 (use -- before negative values)

Run 'ms guide' for the full guide.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runRoot,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if output != "" && !slices.Contains(validOutputFormats, output) {
			return fmt.Errorf("invalid output format: %s (valid: %v)", output, validOutputFormats)
		}
		return nil
	},
}

func runRoot(c *cobra.Command, args []string) error {
	if len(args) == 0 {
		return c.Help()
	}
	value := args[0]
	forceFormat, _ := c.Flags().GetBool(flagFormat)
	long := longFlag(c)

	var input any = value
	if forceFormat {
		ms, err := parseMillis(value)
		if err != nil {
			return PrintJSONError(err)
		}
		input = ms
	}

	res, err := duration.Convert(input, duration.Options{Long: long})

	l := log.Event("cli:root", "convert").Input(value).Detail("long", long)
	if err == nil {
		l.Output(res.String())
	}
	l.Write(err)

	if err != nil {
		return PrintJSONError(err)
	}

	if JSON() {
		if err := PrintJSON(map[string]any{"input": value, "result": res}); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(out, res)
	}

	if res.Kind == duration.KindMillis && math.IsNaN(res.Millis) {
		return quiet(c, fmt.Errorf("%q: %w", value, duration.ErrNoMatch))
	}
	return nil
}

// longFlag resolves verbose output: an explicit --long wins, then MS_LONG,
// then format.long from config.
func longFlag(c *cobra.Command) bool {
	if c.Flags().Changed(flagLong) {
		long, _ := c.Flags().GetBool(flagLong)
		return long
	}
	return loadConfig().Long()
}

// loadConfig returns the active config, or an empty one when none can be
// read. Defaults still apply to the empty config.
func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		return &config.Config{}
	}
	return cfg
}

// parseMillis reads a millisecond count given on the command line.
func parseMillis(s string) (float64, error) {
	ms, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(ms) || math.IsInf(ms, 0) {
		return 0, fmt.Errorf("%q: %w", s, errNotNumber)
	}
	return ms, nil
}

// quiet returns err for the exit code. Under -o json the result has already
// been printed, so cobra's own error line is suppressed.
func quiet(c *cobra.Command, err error) error {
	if JSON() {
		c.SilenceErrors = true
	}
	return err
}

// Execute runs the root command and handles process lifecycle.
// Opens audit logging unless log.enabled is false, executes the command, and
// closes the log before exit. Exit code 1 indicates error.
func Execute() {
	if loadConfig().LogEnabled() {
		// Best-effort: a missing audit log never blocks a conversion
		if err := log.Open(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: audit log unavailable: %v\n", err)
		}
	}

	err := rootCmd.Execute()
	log.Close()

	if err != nil {
		os.Exit(1)
	}
}

// RootCmd returns the root command for testing.
func RootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.Flags().BoolP(flagFormat, "f", false, "Treat the value as milliseconds and format it")
	rootCmd.Flags().BoolP(flagLong, "l", false, "Verbose output with --format (\"2 seconds\")")

	rootCmd.AddCommand(
		newParseCmd(),
		newFormatCmd(),
		newUnitsCmd(),
		newConfigCmd(),
		newLogCmd(),
		newGuideCmd(),
		newServeCmd(),
		newVersionCmd(),
	)
}
