// Package saga runs an ordered pipeline of steps with compensating actions.
// It coordinates writes across independent stores where no shared
// transaction exists: on a hard failure every completed step is undone in
// reverse order, so a run ends either fully applied or fully rolled back.
package saga

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/codejunkiedev/betterbooks-sub003/internal/middleware"
)

// State is the lifecycle state of a saga run.
type State string

const (
	Pending     State = "PENDING"
	Running     State = "RUNNING"
	Succeeded   State = "SUCCEEDED"
	RollingBack State = "ROLLING_BACK"
	RolledBack  State = "ROLLED_BACK"
)

// Outcome reports what a step's Run decided to do.
type Outcome int

const (
	// Completed means the step executed and its Compensate must run on rollback.
	Completed Outcome = iota
	// Skipped means the step chose not to execute (precondition not met, or a
	// recoverable conflict). The pipeline continues and nothing is registered
	// for compensation.
	Skipped
)

// Step is one unit of work in the pipeline.
type Step struct {
	Name string
	// Run performs the step. Any returned error is a hard failure and
	// triggers reverse-order compensation of everything completed so far.
	Run func(ctx context.Context) (Outcome, error)
	// Compensate undoes a completed Run. Nil when there is nothing to undo.
	Compensate func(ctx context.Context) error
}

// Result describes how a run ended.
type Result struct {
	State     State
	Completed []string // step names that completed, in execution order
	Skipped   []string // step names that were skipped

	// CompensationWarnings holds failures seen while rolling back. Cleanup is
	// best-effort: a failed compensation is recorded and the walk continues.
	// The caller still receives the original triggering error, never these.
	CompensationWarnings []error
}

// Execute runs the steps in order. On the first hard failure it compensates
// every previously completed step in strict reverse order and returns the
// triggering error. Compensation failures are logged and collected as
// warnings, never retried.
func Execute(ctx context.Context, steps []Step) (Result, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	result := Result{State: Pending}

	completed := make([]Step, 0, len(steps))
	result.State = Running
	for _, step := range steps {
		outcome, err := step.Run(ctx)
		if err != nil {
			logger.Error("saga step failed, rolling back",
				slog.String("step", step.Name),
				slog.Int("completed_steps", len(completed)),
				slog.String("error", err.Error()),
			)
			result.State = RollingBack
			result.CompensationWarnings = compensate(ctx, logger, completed)
			result.State = RolledBack
			return result, fmt.Errorf("step %s: %w", step.Name, err)
		}
		switch outcome {
		case Skipped:
			result.Skipped = append(result.Skipped, step.Name)
			logger.Info("saga step skipped", slog.String("step", step.Name))
		default:
			completed = append(completed, step)
			result.Completed = append(result.Completed, step.Name)
		}
	}

	result.State = Succeeded
	return result, nil
}

// compensate undoes completed steps in reverse order. Each compensating
// action is attempted independently; a failure is logged and the walk moves
// on, since a partially rolled-back state beats halting mid-cleanup.
func compensate(ctx context.Context, logger *slog.Logger, completed []Step) []error {
	var warnings []error
	for i := len(completed) - 1; i >= 0; i-- {
		step := completed[i]
		if step.Compensate == nil {
			continue
		}
		if err := step.Compensate(ctx); err != nil {
			logger.Error("saga compensation failed, continuing",
				slog.String("step", step.Name),
				slog.String("error", err.Error()),
			)
			warnings = append(warnings, fmt.Errorf("compensate %s: %w", step.Name, err))
		}
	}
	return warnings
}
