package pipeline

import (
	"context"
	"log/slog"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pcblab/pcbrepair/internal/model"
)

// BatchProcessor decodes multiple files concurrently. Each file gets a
// fresh pipeline from the factory so no state leaks between inputs.
type BatchProcessor struct {
	pipelineFactory func() *Pipeline
	concurrency     int
	logger          *slog.Logger
}

// BatchOption configures a BatchProcessor.
type BatchOption func(*BatchProcessor)

// WithBatchLogger sets a custom logger for batch processing.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *BatchProcessor) {
		b.logger = logger
	}
}

// WithConcurrency sets the maximum number of files decoded at once.
// Default is 4.
func WithConcurrency(n int) BatchOption {
	return func(b *BatchProcessor) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// NewBatchProcessor creates a BatchProcessor.
func NewBatchProcessor(pipelineFactory func() *Pipeline, opts ...BatchOption) *BatchProcessor {
	bp := &BatchProcessor{
		pipelineFactory: pipelineFactory,
		concurrency:     4,
	}

	for _, opt := range opts {
		opt(bp)
	}

	if bp.logger == nil {
		bp.logger = slog.Default()
	}

	return bp
}

// ProcessBatch decodes the given files concurrently and returns one
// report per input, in input order.
//
// A file that fails carries the failure in its report's Error field
// rather than aborting the whole batch; the error return only reports
// context cancellation.
func (bp *BatchProcessor) ProcessBatch(ctx context.Context, files []string) ([]*model.BoardReport, error) {
	bp.logger.Info("starting batch decode",
		"total_files", len(files),
		"concurrency", bp.concurrency,
	)

	startTime := time.Now()
	results := make([]*model.BoardReport, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(bp.concurrency)

	for i, file := range files {
		g.Go(func() error {
			report := model.NewBoardReport(file)
			results[i] = report

			raw, err := os.ReadFile(file)
			if err != nil {
				report.Error = err.Error()
				bp.logger.Warn("failed to read file", "file", file, "error", err)
				return nil
			}
			report.Raw = raw

			if err := bp.pipelineFactory().Execute(ctx, report); err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				report.Error = err.Error()
				bp.logger.Warn("failed to decode file", "file", file, "error", err)
			}
			return nil
		})
	}

	err := g.Wait()

	bp.logger.Info("batch decode finished",
		"total_files", len(files),
		"duration", time.Since(startTime),
	)

	return results, err
}
