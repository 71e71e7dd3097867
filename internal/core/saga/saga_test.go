package saga_test

import (
	"context"
	"errors"
	"testing"

	"github.com/codejunkiedev/betterbooks-sub003/internal/core/saga"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func step(name string, trace *[]string, runErr error) saga.Step {
	return saga.Step{
		Name: name,
		Run: func(ctx context.Context) (saga.Outcome, error) {
			if runErr != nil {
				return saga.Completed, runErr
			}
			*trace = append(*trace, "run:"+name)
			return saga.Completed, nil
		},
		Compensate: func(ctx context.Context) error {
			*trace = append(*trace, "undo:"+name)
			return nil
		},
	}
}

func TestExecute_AllStepsSucceed(t *testing.T) {
	var trace []string
	result, err := saga.Execute(context.Background(), []saga.Step{
		step("a", &trace, nil),
		step("b", &trace, nil),
		step("c", &trace, nil),
	})

	require.NoError(t, err)
	assert.Equal(t, saga.Succeeded, result.State)
	assert.Equal(t, []string{"a", "b", "c"}, result.Completed)
	assert.Empty(t, result.Skipped)
	assert.Equal(t, []string{"run:a", "run:b", "run:c"}, trace)
}

func TestExecute_FailureCompensatesInReverseOrder(t *testing.T) {
	var trace []string
	boom := errors.New("store unavailable")
	result, err := saga.Execute(context.Background(), []saga.Step{
		step("a", &trace, nil),
		step("b", &trace, nil),
		step("c", &trace, boom),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "step c")
	assert.Equal(t, saga.RolledBack, result.State)
	assert.Equal(t, []string{"run:a", "run:b", "undo:b", "undo:a"}, trace)
	assert.Empty(t, result.CompensationWarnings)
}

func TestExecute_SkippedStepIsNotCompensated(t *testing.T) {
	var trace []string
	boom := errors.New("boom")
	skipped := saga.Step{
		Name: "optional",
		Run: func(ctx context.Context) (saga.Outcome, error) {
			return saga.Skipped, nil
		},
		Compensate: func(ctx context.Context) error {
			trace = append(trace, "undo:optional")
			return nil
		},
	}

	result, err := saga.Execute(context.Background(), []saga.Step{
		step("a", &trace, nil),
		skipped,
		step("c", &trace, boom),
	})

	require.Error(t, err)
	assert.Equal(t, saga.RolledBack, result.State)
	assert.Equal(t, []string{"optional"}, result.Skipped)
	assert.Equal(t, []string{"run:a", "undo:a"}, trace)
}

func TestExecute_CompensationFailureContinuesWalk(t *testing.T) {
	var trace []string
	boom := errors.New("boom")
	undoErr := errors.New("delete rejected")

	flaky := saga.Step{
		Name: "b",
		Run: func(ctx context.Context) (saga.Outcome, error) {
			trace = append(trace, "run:b")
			return saga.Completed, nil
		},
		Compensate: func(ctx context.Context) error {
			return undoErr
		},
	}

	result, err := saga.Execute(context.Background(), []saga.Step{
		step("a", &trace, nil),
		flaky,
		step("c", &trace, boom),
	})

	// Caller sees the triggering error, not the compensation error.
	require.ErrorIs(t, err, boom)
	assert.Equal(t, saga.RolledBack, result.State)
	// Compensation continued past the failed undo of b.
	assert.Equal(t, []string{"run:a", "run:b", "undo:a"}, trace)
	require.Len(t, result.CompensationWarnings, 1)
	assert.ErrorIs(t, result.CompensationWarnings[0], undoErr)
}

func TestExecute_StepWithoutCompensation(t *testing.T) {
	var trace []string
	boom := errors.New("boom")
	fireAndForget := saga.Step{
		Name: "audit",
		Run: func(ctx context.Context) (saga.Outcome, error) {
			trace = append(trace, "run:audit")
			return saga.Completed, nil
		},
	}

	_, err := saga.Execute(context.Background(), []saga.Step{
		fireAndForget,
		step("b", &trace, boom),
	})

	require.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"run:audit"}, trace)
}
