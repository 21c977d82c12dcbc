package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pcblab/pcbrepair/internal/model"
)

// Step is one stage of the decode pipeline. Steps run in sequence and
// accumulate their results on the shared report.
type Step interface {
	// Do executes the step, modifying the report in place. An error
	// aborts the pipeline: every stage feeds the next, so there is no
	// useful work after a failure.
	Do(ctx context.Context, report *model.BoardReport) error

	// Name returns the step's name for logging.
	Name() string
}

// Pipeline executes steps in order against one report.
type Pipeline struct {
	steps  []Step
	logger *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets a custom logger for the pipeline.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// New creates a Pipeline. Steps are added with AddSteps.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{steps: make([]Step, 0)}

	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = slog.Default()
	}

	return p
}

// AddSteps appends steps in execution order.
func (p *Pipeline) AddSteps(steps ...Step) {
	p.steps = append(p.steps, steps...)
}

// Execute runs all steps in sequence. Cancellation is checked between
// steps; the steps themselves are CPU-bound and never block.
func (p *Pipeline) Execute(ctx context.Context, report *model.BoardReport) error {
	for _, step := range p.steps {
		select {
		case <-ctx.Done():
			p.logger.Warn("pipeline cancelled",
				"step", step.Name(),
				"reason", ctx.Err(),
			)
			return ctx.Err()
		default:
		}

		start := time.Now()
		p.logger.Debug("executing step", "step", step.Name(), "file", report.File)

		if err := step.Do(ctx, report); err != nil {
			p.logger.Error("step failed",
				"step", step.Name(),
				"file", report.File,
				"error", err,
			)
			return fmt.Errorf("%s: %w", step.Name(), err)
		}

		p.logger.Debug("step completed",
			"step", step.Name(),
			"file", report.File,
			"duration", time.Since(start),
		)
	}

	return nil
}

// NewDefaultPipeline builds the standard decode → parse → interpret
// pipeline used by the CLI.
func NewDefaultPipeline(logger *slog.Logger) *Pipeline {
	p := New(WithLogger(logger))
	p.AddSteps(
		NewDecodeStep(),
		NewParseStep(),
		NewInterpretStep(),
	)
	return p
}
