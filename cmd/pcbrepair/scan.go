package main

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/pcblab/pcbrepair/internal/config"
	"github.com/pcblab/pcbrepair/internal/database"
	"github.com/pcblab/pcbrepair/internal/model"
	"github.com/pcblab/pcbrepair/internal/pipeline"
)

// repairFileExtensions are the container extensions picked up when a
// directory is scanned. Explicitly named files bypass this filter.
var repairFileExtensions = map[string]bool{
	".fz":  true,
	".cae": true,
	".bin": true,
}

// NewScanCmd creates the scan command.
func NewScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [file|dir]...",
		Short: "Decode repair files in bulk and index them",
		Long: `Scan decodes one or more repair files concurrently and records each
board in the local board index. Directory arguments are walked
recursively; files with .fz, .cae, or .bin extensions are picked up.

Examples:
  # Scan every repair file under a directory
  pcbrepair scan boards/

  # Scan specific files with Markdown reports written per board
  pcbrepair scan --markdown -o reports board1.fz board2.fz

  # Scan without saving to the board index
  pcbrepair scan --no-db boards/`,
		Args: cobra.ArbitraryArgs,
		RunE: runScanCmd,
	}

	cmd.Flags().IntP("batch", "b", config.DefaultBatchSize,
		"Number of concurrent decodes")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .pcbrepair in current or home directory)")
	cmd.Flags().BoolP("json", "j", false,
		"Write a JSON report per board (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Write a Markdown report per board (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Directory for per-board report files (default: print summaries to stdout)")
	cmd.Flags().String("db-dir", "",
		"Board index directory (default: XDG data directory)")
	cmd.Flags().Bool("no-db", false,
		"Do not save results to the board index")

	return cmd
}

// runScanCmd executes the scan command.
func runScanCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildScanConfig(cmd, args)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd)

	// Cancel in-flight decodes on interrupt.
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			logger.Info("received shutdown signal, cancelling...")
			cancel()
		case <-ctx.Done():
		}
	}()

	return runScan(ctx, cfg, logger)
}

// buildScanConfig creates a Config from cobra command flags and the
// optional config file.
func buildScanConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error
	if cfg.BatchSize, err = cmd.Flags().GetInt("batch"); err != nil {
		return nil, err
	}
	if cfg.ConfigFilePath, err = cmd.Flags().GetString("config"); err != nil {
		return nil, err
	}
	if cfg.JSONReport, err = cmd.Flags().GetBool("json"); err != nil {
		return nil, err
	}
	if cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown"); err != nil {
		return nil, err
	}
	if cfg.OutputDir, err = cmd.Flags().GetString("output"); err != nil {
		return nil, err
	}
	if cfg.DBDir, err = cmd.Flags().GetString("db-dir"); err != nil {
		return nil, err
	}
	noDB, err := cmd.Flags().GetBool("no-db")
	if err != nil {
		return nil, err
	}

	// An explicitly given config path must exist; an implicit search is
	// allowed to find nothing.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	if configPath != "" {
		cf, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cf.Apply(cfg)
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	if noDB {
		cfg.SaveToDB = false
		cfg.DBDir = ""
	} else {
		cfg.SaveToDB = true
		if cfg.DBDir == "" {
			cfg.DBDir = config.XDGDataDir()
		}
	}

	cfg.Inputs = args
	return cfg, nil
}

// collectInputs expands directory arguments into repair file paths.
func collectInputs(inputs []string) ([]string, error) {
	var files []string
	for _, input := range inputs {
		info, err := os.Stat(input)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", input, err)
		}

		if !info.IsDir() {
			files = append(files, input)
			continue
		}

		err = filepath.WalkDir(input, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if repairFileExtensions[filepath.Ext(path)] {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk %s: %w", input, err)
		}
	}

	sort.Strings(files)
	return files, nil
}

// runScan executes the batch scan.
func runScan(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	files, err := collectInputs(cfg.Inputs)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no repair files found in %v", cfg.Inputs)
	}

	logger.Info("starting scan",
		"files", len(files),
		"batchSize", cfg.BatchSize,
		"saveToDB", cfg.SaveToDB,
	)

	var db *database.BoardDB
	if cfg.SaveToDB {
		db, err = database.Open(cfg.DBDir, database.DefaultOptions())
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()
		logger.Info("board index opened", "dir", cfg.DBDir)
	}

	fmt.Printf("Scanning %d repair files (concurrency: %d)...\n\n", len(files), cfg.BatchSize)
	startTime := time.Now()

	bp := pipeline.NewBatchProcessor(
		func() *pipeline.Pipeline {
			return pipeline.NewDefaultPipeline(logger)
		},
		pipeline.WithConcurrency(cfg.BatchSize),
		pipeline.WithBatchLogger(logger),
	)

	reports, err := bp.ProcessBatch(ctx, files)
	if err != nil {
		return err
	}

	var failed int
	for i, boardReport := range reports {
		if boardReport.Error != "" {
			failed++
			fmt.Fprintf(os.Stderr, "[%d/%d] %s: %s\n", i+1, len(reports), boardReport.File, boardReport.Error)
		} else {
			fmt.Printf("[%d/%d] %s: %s rev %s (%d pins)\n",
				i+1, len(reports), boardReport.File,
				boardReport.BoardModel(), revision(boardReport), boardReport.PinCount())
		}

		if err := outputScanReport(cfg, boardReport); err != nil {
			logger.Error("report failed", "file", boardReport.File, "error", err)
		}
		if err := saveBoardReport(ctx, db, boardReport, logger); err != nil {
			logger.Error("failed to save board", "file", boardReport.File, "error", err)
		}
	}

	elapsed := time.Since(startTime)
	fmt.Printf("\nScan completed in %s (%d ok, %d failed)\n",
		elapsed.Round(time.Millisecond), len(reports)-failed, failed)

	return nil
}

// revision returns the parsed board revision, or "" before parsing.
func revision(r *model.BoardReport) string {
	if r.Description == nil {
		return ""
	}
	return r.Description.Revision
}

// outputScanReport writes the per-board report file when a structured
// format was requested.
func outputScanReport(cfg *config.Config, boardReport *model.BoardReport) error {
	if !cfg.JSONReport && !cfg.MarkdownReport {
		return nil
	}

	ext := ".json"
	if cfg.MarkdownReport {
		ext = ".md"
	}

	dir := cfg.OutputDir
	if dir == "" {
		dir = "."
	}

	base := filepath.Base(boardReport.File)
	perBoard := *cfg
	perBoard.ReportFile = filepath.Join(dir, base+ext)
	return outputReport(&perBoard, boardReport)
}

// saveBoardReport saves the report to the board index if enabled.
// If db is nil, this function is a no-op.
func saveBoardReport(ctx context.Context, db *database.BoardDB, boardReport *model.BoardReport, logger *slog.Logger) error {
	if db == nil {
		return nil
	}
	if boardReport.Digest == "" {
		// Files that failed before digesting cannot be indexed.
		return nil
	}

	if err := db.SaveBoard(ctx, boardReport); err != nil {
		return fmt.Errorf("failed to save board: %w", err)
	}

	logger.Info("board saved to index", "file", boardReport.File, "digest", boardReport.Digest)
	return nil
}
