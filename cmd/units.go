/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// units.go implements "ms units".

package cmd

import (
	"github.com/jpl-au/ms/internal/format"
	"github.com/jpl-au/ms/internal/log"
	"github.com/spf13/cobra"
)

func newUnitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "units",
		Short: "List units and accepted spellings",
		Long: `List every unit with its size in milliseconds and the spellings
accepted when parsing. Spellings are case-insensitive.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			log.Event("cli:units", "list").Write(nil)

			infos := format.UnitTable()
			if JSON() {
				return PrintJSON(infos)
			}
			return format.Units(out, infos)
		},
	}
}
