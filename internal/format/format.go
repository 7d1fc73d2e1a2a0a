// Package format provides output formatting utilities for CLI display.
//
// Centralises presentation so command implementations focus on conversion
// while this package handles column alignment and number grouping.
package format

import (
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"github.com/jpl-au/ms/duration"
	"github.com/jpl-au/ms/internal/log"
)

// UnitInfo describes one unit for table and JSON output.
type UnitInfo struct {
	Name      string   `json:"name"`
	Factor    float64  `json:"factor_ms"`
	Suffix    string   `json:"suffix"`
	Spellings []string `json:"spellings"`
}

// UnitTable returns every unit, smallest first.
func UnitTable() []UnitInfo {
	units := duration.Units()
	infos := make([]UnitInfo, 0, len(units))
	for _, u := range units {
		infos = append(infos, UnitInfo{
			Name:      u.String(),
			Factor:    u.Factor(),
			Suffix:    u.Short(),
			Spellings: duration.Spellings(u),
		})
	}
	return infos
}

// Units prints the unit table with grouped millisecond factors.
func Units(w io.Writer, infos []UnitInfo) error {
	factors := make([]string, len(infos))
	maxName, maxFactor := len("UNIT"), len("MILLISECONDS")
	for i, u := range infos {
		factors[i] = humanize.Commaf(u.Factor)
		maxName = max(maxName, len(u.Name))
		maxFactor = max(maxFactor, len(factors[i]))
	}

	fmt.Fprintf(w, "%-*s  %*s  %s\n", maxName, "UNIT", maxFactor, "MILLISECONDS", "SPELLINGS")
	for i, u := range infos {
		fmt.Fprintf(w, "%-*s  %*s  %s\n", maxName, u.Name, maxFactor, factors[i], strings.Join(u.Spellings, ", "))
	}
	return nil
}

// Log prints audit entries, newest first, with times relative to now.
//
// Column order is WHEN, SOURCE, INPUT, RESULT. RESULT holds the output for
// successful entries and the error for failed ones.
func Log(w io.Writer, entries []log.Entry, now time.Time) error {
	if len(entries) == 0 {
		return nil
	}

	whens := make([]string, len(entries))
	maxWhen, maxSource, maxInput := len("WHEN"), len("SOURCE"), len("INPUT")
	for i, e := range entries {
		whens[i] = humanize.RelTime(time.Unix(e.End, 0), now, "ago", "from now")
		maxWhen = max(maxWhen, len(whens[i]))
		maxSource = max(maxSource, len(e.Source))
		maxInput = max(maxInput, len(truncate(e.Input, 40)))
	}

	fmt.Fprintf(w, "%-*s  %-*s  %-*s  %s\n", maxWhen, "WHEN", maxSource, "SOURCE", maxInput, "INPUT", "RESULT")
	for i, e := range entries {
		result := e.Output
		if !e.Success {
			result = "error: " + e.Error
		}
		if result == "" {
			result = "-"
		}
		fmt.Fprintf(w, "%-*s  %-*s  %-*s  %s\n",
			maxWhen, whens[i],
			maxSource, e.Source,
			maxInput, truncate(e.Input, 40),
			truncate(result, 60))
	}
	return nil
}

// truncate shortens s to at most n bytes, marking the cut with "...".
// The cut never splits a multi-byte rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := n - 3
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
