package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pcblab/pcbrepair/internal/report"
)

// NewExtractCmd creates the extract command.
func NewExtractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract <file>",
		Short: "Export the footprints of a repair file as a KiCad library",
		Long: `Extract decodes a repair file, interprets its pin table, and writes
one .kicad_mod file per component into a KiCad footprint library
directory (<board>.pretty).

Examples:
  # Write board.pretty into the current directory
  pcbrepair extract board.fz

  # Write the library into a specific directory
  pcbrepair extract -o libs board.fz`,
		Args: cobra.ExactArgs(1),
		RunE: runExtractCmd,
	}

	cmd.Flags().StringP("output", "o", ".",
		"Directory the .pretty library is created in")

	return cmd
}

// runExtractCmd executes the extract command.
func runExtractCmd(cmd *cobra.Command, args []string) error {
	logger := setupLogger(cmd)

	outputDir, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	path := args[0]
	boardReport, err := processFile(cmd.Context(), path, logger)
	if err != nil {
		return err
	}
	if boardReport.Error != "" {
		return errors.New(boardReport.Error)
	}
	if len(boardReport.Footprints) == 0 {
		return fmt.Errorf("%s contains no footprints to export", path)
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	libDir := filepath.Join(outputDir, base+".pretty")

	written, err := report.NewKiCadExporter(libDir).Export(boardReport)
	if err != nil {
		return fmt.Errorf("failed to export footprints: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d footprints to %s\n", len(written), libDir)
	return nil
}
