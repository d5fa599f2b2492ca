// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/taibuivan/folio/internal/core/scoring"
	"github.com/taibuivan/folio/pkg/slice"
)

func newScoreCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "score FILE.yaml",
		Short: "Score a candidate described in a YAML fixture",
		Long: `Score a candidate against the collection listed in a YAML fixture.

Use "-" to read the fixture from stdin.

Examples:
  bookscore score tess.yaml          Human-readable breakdown
  bookscore score tess.yaml --json   Breakdown as JSON
  cat tess.yaml | bookscore score -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := loadFixture(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}

			breakdown, err := scoring.Calculate(f.Config, f.Candidate, f.Collection)
			if err != nil {
				return err
			}

			if jsonOut {
				return printBreakdownJSON(cmd.OutOrStdout(), breakdown)
			}
			printBreakdownText(cmd.OutOrStdout(), f.Candidate.Title, breakdown)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")

	return cmd
}

func printBreakdownJSON(out io.Writer, breakdown *scoring.Breakdown) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(breakdown)
}

func printBreakdownText(out io.Writer, title string, breakdown *scoring.Breakdown) {
	bold := color.New(color.Bold)
	details := breakdown.Details

	_, _ = bold.Fprintln(out, title)

	fmt.Fprintf(out, "  %-20s %5d  %s\n", "Investment grade", breakdown.InvestmentGrade, investmentNote(details.Investment))
	fmt.Fprintf(out, "  %-20s %5d\n", "Strategic fit", breakdown.StrategicFit)
	printFactors(out, details.Strategic.Factors)
	fmt.Fprintf(out, "  %-20s %5d\n", "Collection impact", breakdown.CollectionImpact)
	printFactors(out, details.Collection.Factors)

	fmt.Fprintf(out, "  %-20s %5d  ", "Overall", breakdown.OverallScore)
	_, _ = dispositionColor(breakdown.Disposition).Fprintln(out, breakdown.Disposition)

	if warnings := breakdown.Warnings(); len(warnings) > 0 {
		names := slice.Map(warnings, func(w scoring.Warning) string { return string(w) })
		_, _ = color.New(color.FgYellow).Fprintf(out, "  warnings: %s\n", strings.Join(names, ", "))
	}
}

func printFactors(out io.Writer, factors []scoring.Factor) {
	for _, factor := range factors {
		fmt.Fprintf(out, "    %-18s %5d  %s\n", factor.Name, factor.Points, factor.Label)
	}
}

func investmentNote(detail scoring.InvestmentDetail) string {
	if detail.DiscountPercent == nil || detail.Tier == nil {
		return "(no valuation)"
	}
	return fmt.Sprintf("(discount %.1f%%, band %s)", *detail.DiscountPercent, *detail.Tier)
}

// dispositionColor highlights the default labels; custom labels print plain.
func dispositionColor(label string) *color.Color {
	switch label {
	case "STRONG":
		return color.New(color.FgGreen, color.Bold)
	case "CONDITIONAL":
		return color.New(color.FgYellow)
	case "PASS":
		return color.New(color.FgRed)
	}
	return color.New(color.Reset)
}
