package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/pcblab/pcbrepair/internal/log"
	"github.com/pcblab/pcbrepair/internal/model"
	"github.com/pcblab/pcbrepair/internal/pipeline"
)

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// setupLogger creates the structured logger for a command run.
func setupLogger(cmd *cobra.Command) *slog.Logger {
	logger := log.New(os.Stderr, getVerboseFlag(cmd))
	slog.SetDefault(logger)
	return logger
}

// processFile reads one repair file and runs it through the full
// decode pipeline. Pipeline failures are recorded on the report, not
// returned; only unreadable files produce an error.
func processFile(ctx context.Context, path string, logger *slog.Logger) (*model.BoardReport, error) {
	raw, err := os.ReadFile(path) //nolint:gosec // User-provided input path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	report := model.NewBoardReport(path)
	report.Raw = raw

	if err := pipeline.NewDefaultPipeline(logger).Execute(ctx, report); err != nil {
		report.Error = err.Error()
	}
	return report, nil
}
