// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package cli implements the bookscore command line tool.

Commands:

  - score: runs the scoring engine over a YAML fixture, without a database.
  - token: mints an RS256 access token for local API testing.
*/
package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var version = "dev"

// SetVersion records the build version shown by --version.
func SetVersion(v string) {
	version = v
}

// Execute is the entry point called from main.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var noColor bool

	root := &cobra.Command{
		Use:   "bookscore",
		Short: "Score rare-book candidates and mint Folio dev tokens",
		Long: `bookscore runs the Folio acquisition scoring engine offline.

A fixture file describes one candidate, the owned collection it is compared
against, and optional overrides of the default scoring tables.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor {
				color.NoColor = true
			}
		},
	}

	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	root.AddCommand(newScoreCmd())
	root.AddCommand(newTokenCmd())

	return root
}
