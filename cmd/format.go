/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// format.go implements "ms format", rendering millisecond counts as
// human-readable durations.

package cmd

import (
	"fmt"

	"github.com/jpl-au/ms/duration"
	"github.com/jpl-au/ms/internal/log"
	"github.com/spf13/cobra"
)

// formatted is one entry of "ms format -o json" output.
type formatted struct {
	Ms   float64 `json:"ms"`
	Text string  `json:"text"`
}

func newFormatCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "format <ms>...",
		Short: "Format milliseconds as durations",
		Long: `Format millisecond counts as durations, one result per line.

  ms format 60000            # 1m
  ms format --long 5400000   # 2 hours
  ms format -- -86400000     # -1d
  cat list | ms format -     # one value per line from stdin

Values are rounded to the largest unit they reach. The default for --long
comes from MS_LONG or the format.long config key.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runFormat,
	}
	c.Flags().BoolP(flagLong, "l", false, "Verbose output (\"2 hours\" instead of \"2h\")")
	return c
}

func runFormat(c *cobra.Command, args []string) error {
	long := longFlag(c)
	opts := duration.Options{Long: long}

	vals, err := values(args)
	if err != nil {
		return PrintJSONError(err)
	}

	// Validate everything before printing anything
	results := make([]formatted, 0, len(vals))
	for _, v := range vals {
		ms, err := parseMillis(v)
		if err != nil {
			log.Event("cli:format", "format").Input(v).Detail("long", long).Write(err)
			return PrintJSONError(fmt.Errorf("format: %w", err))
		}

		text := duration.Format(ms, opts)
		log.Event("cli:format", "format").Input(v).Output(text).Detail("long", long).Write(nil)
		results = append(results, formatted{Ms: ms, Text: text})
	}

	if JSON() {
		return PrintJSON(results)
	}
	for _, r := range results {
		fmt.Fprintln(out, r.Text)
	}
	return nil
}
