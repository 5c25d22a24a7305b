package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/2beens/liftstats/internal/fitness/export"
	"github.com/2beens/liftstats/internal/fitness/workouts"

	"github.com/spf13/cobra"
)

type reportOptions struct {
	input    string
	now      string
	xlsxPath string
	asJson   bool
}

func newRootCmd() *cobra.Command {
	opts := &reportOptions{}
	cmd := &cobra.Command{
		Use:   "strength-report",
		Short: "strength-report prints muscle imbalance findings from a data export",
		Long: "strength-report reads a JSON export (profile, workout logs, personal records and optionally " +
			"the exercise library) and prints the four imbalance findings plus current personal records.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReport(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "-", "path to the JSON export, - for stdin")
	cmd.Flags().StringVar(&opts.now, "now", "", "analysis date YYYY-MM-DD (default today, UTC)")
	cmd.Flags().StringVar(&opts.xlsxPath, "xlsx", "", "also write the report to this xlsx file")
	cmd.Flags().BoolVar(&opts.asJson, "json", false, "print the report as JSON")
	return cmd
}

func runReport(cmd *cobra.Command, opts *reportOptions) error {
	now := workouts.Day(time.Now())
	if opts.now != "" {
		parsed, err := workouts.ParseDay(opts.now)
		if err != nil {
			return fmt.Errorf("invalid --now date (expected YYYY-MM-DD)")
		}
		now = parsed
	}

	var in io.Reader = cmd.InOrStdin()
	if opts.input != "-" {
		f, err := os.Open(opts.input)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		in = f
	}

	exp, err := export.Load(in)
	if err != nil {
		return err
	}
	summary := export.Analyze(exp, now)

	if opts.xlsxPath != "" {
		if err := writeXlsx(opts.xlsxPath, summary); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if opts.asJson {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	}
	return export.WriteText(out, summary)
}

func writeXlsx(path string, summary export.Summary) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create xlsx file: %w", err)
	}
	if err := export.WriteWorkbook(f, summary); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
