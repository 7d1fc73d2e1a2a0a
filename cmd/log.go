/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// log.go implements "ms log", showing and pruning the audit log.
//
// Design: the log is opened by Execute, so this command fails with a clear
// error when log.enabled is false or the database could not be opened.
// Pruning uses log.retention from config, which the config layer has
// already checked fits in a time.Duration.

package cmd

import (
	"fmt"
	"time"

	"github.com/jpl-au/ms/internal/format"
	"github.com/jpl-au/ms/internal/log"
	"github.com/spf13/cobra"
)

func newLogCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "log",
		Short: "Show or prune the audit log",
		Long: `Show recent conversions from the audit log at ~/.ms/log/ms-log.db.

  ms log             # last 20 entries
  ms log --limit 50  # last 50 entries
  ms log --prune     # delete entries older than log.retention (default 30d)

Disable logging entirely with: ms config log.enabled false`,
		Args: cobra.NoArgs,
		RunE: runLog,
	}
	c.Flags().Int(flagLimit, 20, "Number of entries to show")
	c.Flags().Bool(flagPrune, false, "Delete entries older than log.retention")
	return c
}

func runLog(c *cobra.Command, _ []string) error {
	prune, _ := c.Flags().GetBool(flagPrune)
	if prune {
		return runLogPrune()
	}

	limit, _ := c.Flags().GetInt(flagLimit)
	entries, err := log.Recent(limit)
	if err != nil {
		return PrintJSONError(fmt.Errorf("audit log: %w", err))
	}

	if JSON() {
		return PrintJSON(entries)
	}
	return format.Log(out, entries, time.Now())
}

func runLogPrune() error {
	cfg := loadConfig()
	retention := cfg.RetentionString()

	n, err := log.Prune(time.Now().Add(-cfg.Retention()))
	if err != nil {
		return PrintJSONError(fmt.Errorf("audit log: %w", err))
	}

	if JSON() {
		return PrintJSON(map[string]any{"pruned": n, "retention": retention})
	}
	fmt.Fprintf(out, "pruned %d entries older than %s\n", n, retention)
	return nil
}
