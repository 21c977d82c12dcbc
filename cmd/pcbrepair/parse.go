package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pcblab/pcbrepair/internal/config"
	"github.com/pcblab/pcbrepair/internal/model"
	"github.com/pcblab/pcbrepair/internal/report"
)

// NewParseCmd creates the parse command.
func NewParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Decode a repair file and report its contents",
		Long: `Parse decodes a repair file, parses the board data inside, and
prints a report. The default output is a short human-readable summary;
use --json or --markdown for structured output.

Examples:
  # Print a summary of a repair file
  pcbrepair parse board.fz

  # Full JSON report
  pcbrepair parse --json board.fz

  # Markdown report written to a file
  pcbrepair parse --markdown -o report.md board.fz`,
		Args: cobra.ExactArgs(1),
		RunE: runParseCmd,
	}

	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	return cmd
}

// runParseCmd executes the parse command.
func runParseCmd(cmd *cobra.Command, args []string) error {
	logger := setupLogger(cmd)

	cfg := config.NewConfig()
	cfg.Inputs = args

	var err error
	if cfg.JSONReport, err = cmd.Flags().GetBool("json"); err != nil {
		return err
	}
	if cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown"); err != nil {
		return err
	}
	if cfg.ReportFile, err = cmd.Flags().GetString("output"); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	boardReport, err := processFile(cmd.Context(), args[0], logger)
	if err != nil {
		return err
	}

	if err := outputReport(cfg, boardReport); err != nil {
		return err
	}
	if boardReport.Error != "" {
		return errors.New(boardReport.Error)
	}
	return nil
}

// outputReport outputs the board report in the requested format.
func outputReport(cfg *config.Config, boardReport *model.BoardReport) error {
	var output *os.File
	if cfg.ReportFile != "" {
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600) //nolint:gosec // User-provided output path is intentional
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		output = f
	} else {
		output = os.Stdout
	}

	if cfg.JSONReport {
		_, err := report.NewJSONWriter(output, report.WithPrettyPrint()).Write(boardReport)
		return err
	}

	if cfg.MarkdownReport {
		_, err := report.NewMarkdownWriter(output).Write(boardReport)
		return err
	}

	return writeSummary(output, boardReport)
}

// writeSummary prints the short human-readable report.
func writeSummary(output *os.File, r *model.BoardReport) error {
	fmt.Fprintf(output, "%s\n", r.File)
	if r.KeyVariant != "" {
		fmt.Fprintf(output, "  key variant: %s\n", r.KeyVariant)
	}
	if d := r.Description; d != nil {
		fmt.Fprintf(output, "  board:       %s rev %s\n", d.BoardModel, d.Revision)
		if d.ExtendedBoardModel != "" {
			fmt.Fprintf(output, "  extended:    %s rev %s\n", d.ExtendedBoardModel, d.ExtendedRevision)
		}
		fmt.Fprintf(output, "  part number: %s\n", d.PartNumber)
		fmt.Fprintf(output, "  components:  %d\n", len(d.Components))
	}
	if c := r.Content; c != nil {
		fmt.Fprintf(output, "  units:       %s\n", c.Units)
		fmt.Fprintf(output, "  symbols:     %d\n", len(c.Symbols))
		fmt.Fprintf(output, "  pins:        %d\n", len(c.Pins))
		fmt.Fprintf(output, "  test vias:   %d\n", len(c.TestVias))
	}
	if len(r.Footprints) > 0 {
		fmt.Fprintf(output, "  footprints:  %d\n", len(r.Footprints))
	}
	if r.Error != "" {
		fmt.Fprintf(output, "  error:       %s\n", r.Error)
	}
	return nil
}
