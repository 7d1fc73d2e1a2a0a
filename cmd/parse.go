/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// parse.go implements "ms parse", converting duration strings to
// milliseconds one value at a time.

package cmd

import (
	"fmt"
	"math"

	"github.com/jpl-au/ms/duration"
	"github.com/jpl-au/ms/internal/log"
	"github.com/spf13/cobra"
)

// parsed is one line of "ms parse -o json" output.
type parsed struct {
	Input   string          `json:"input"`
	Ms      duration.Result `json:"ms"`
	Matched bool            `json:"matched"`
}

func newParseCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "parse <value>...",
		Short: "Convert duration strings to milliseconds",
		Long: `Convert duration strings to milliseconds, one result per line.

  ms parse 2h 1d 10m     # 7200000, 86400000, 600000
  ms parse "1.5 hours"   # 5400000
  ms parse -- -3d        # -259200000
  cat list | ms parse -  # one value per line from stdin

A value that is not a duration prints NaN and the command exits 1.
Use --lenient to print NaN without failing.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runParse,
	}
	c.Flags().Bool(flagLenient, false, "Exit 0 even when a value is not a duration")
	return c
}

func runParse(c *cobra.Command, args []string) error {
	lenient, _ := c.Flags().GetBool(flagLenient)

	vals, err := values(args)
	if err != nil {
		return PrintJSONError(err)
	}

	results := make([]parsed, 0, len(vals))
	unmatched := 0
	for _, v := range vals {
		ms, err := duration.Parse(v)
		res := duration.Result{Kind: duration.KindMillis, Millis: ms}

		l := log.Event("cli:parse", "parse").Input(v)
		if err == nil {
			l.Output(res.String())
		}
		l.Write(err)

		if err != nil {
			return PrintJSONError(fmt.Errorf("parse: %w", err))
		}

		matched := !math.IsNaN(ms)
		if !matched {
			unmatched++
		}
		results = append(results, parsed{Input: v, Ms: res, Matched: matched})
	}

	if JSON() {
		if err := PrintJSON(results); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			fmt.Fprintln(out, r.Ms)
		}
	}

	if unmatched > 0 && !lenient {
		return quiet(c, fmt.Errorf("%d of %d values: %w", unmatched, len(results), duration.ErrNoMatch))
	}
	return nil
}
