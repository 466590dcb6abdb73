// pkg/engine/engine_test.go
package engine

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pacgo/internal/print"
	"pacgo/pkg/backend"
	"pacgo/pkg/op"
	"pacgo/pkg/run"
)

// fakeRunner scripts one outcome per spawned step and records every argv.
type fakeRunner struct {
	calls   [][]string
	results []run.StepOutcome

	// onRun fires before each result is returned, for cancellation tests.
	onRun func()
}

func (f *fakeRunner) Run(ctx context.Context, step backend.CommandStep, opts run.Options) run.StepOutcome {
	f.calls = append(f.calls, step.Argv)
	if f.onRun != nil {
		f.onRun()
	}
	if len(f.results) == 0 {
		zero := 0
		return run.StepOutcome{Argv: step.Argv, ExitCode: &zero}
	}
	out := f.results[0]
	f.results = f.results[1:]
	out.Argv = step.Argv
	if ctx.Err() != nil && out.Err == nil && out.ExitCode == nil {
		out.Err = ctx.Err()
	}
	return out
}

func exited(code int) run.StepOutcome {
	return run.StepOutcome{ExitCode: &code}
}

func allFound(string) (string, error) { return "/usr/bin/x", nil }

func newTestEngine(runner run.Runner) *Engine {
	e := New(backend.NewRegistryWithLookPath("linux", allFound), runner, nil)
	e.isRoot = func() bool { return false }
	e.goos = "linux"
	return e
}

func installFoo() op.Operation {
	return op.Operation{Verb: op.VerbInstall, Packages: []string{"foo"}}
}

func TestDryRunSpawnsNothing(t *testing.T) {
	runner := &fakeRunner{}
	e := newTestEngine(runner)

	result, err := e.Execute(context.Background(), installFoo(),
		Options{Backend: "apt", DryRun: true, NeedsSudo: true})
	require.NoError(t, err)

	assert.Empty(t, runner.calls, "dry-run must not spawn")
	assert.Equal(t, OverallSuccess, result.Overall)
	assert.Equal(t, ExitSuccess, result.ExitCode())
	require.Len(t, result.Steps, 1)
	assert.True(t, result.Steps[0].Skipped)
	assert.Nil(t, result.Steps[0].ExitCode)
	assert.Equal(t, []string{"sudo", "apt-get", "install", "foo"}, result.Steps[0].Argv)
}

func TestElevationPerStep(t *testing.T) {
	runner := &fakeRunner{}
	e := newTestEngine(runner)

	// apt -Syu with no packages: update, upgrade, dist-upgrade, all root.
	operation := op.Operation{Verb: op.VerbUpgrade, Flags: []op.Flag{op.FlagRefresh}}
	result, err := e.Execute(context.Background(), operation,
		Options{Backend: "apt", DryRun: true, NeedsSudo: true})
	require.NoError(t, err)
	for _, s := range result.Steps {
		assert.Equal(t, "sudo", s.Argv[0])
	}

	// Query steps never get wrapped.
	result, err = e.Execute(context.Background(), op.Operation{Verb: op.VerbQuery},
		Options{Backend: "apt", DryRun: true, NeedsSudo: true})
	require.NoError(t, err)
	assert.NotEqual(t, "sudo", result.Steps[0].Argv[0])
}

func TestElevationSkippedWhenRoot(t *testing.T) {
	e := newTestEngine(&fakeRunner{})
	e.isRoot = func() bool { return true }

	result, err := e.Execute(context.Background(), installFoo(),
		Options{Backend: "apt", DryRun: true, NeedsSudo: true})
	require.NoError(t, err)
	assert.Equal(t, "apt-get", result.Steps[0].Argv[0])
}

func TestElevationSkippedWhenDisabled(t *testing.T) {
	e := newTestEngine(&fakeRunner{})

	result, err := e.Execute(context.Background(), installFoo(),
		Options{Backend: "apt", DryRun: true, NeedsSudo: false})
	require.NoError(t, err)
	assert.Equal(t, "apt-get", result.Steps[0].Argv[0])
}

func TestElevationSkippedOnWindows(t *testing.T) {
	e := New(backend.NewRegistryWithLookPath("windows", allFound), &fakeRunner{}, nil)
	e.isRoot = func() bool { return false }
	e.goos = "windows"

	result, err := e.Execute(context.Background(), installFoo(),
		Options{Backend: "choco", DryRun: true, NeedsSudo: true})
	require.NoError(t, err)
	assert.Equal(t, "choco", result.Steps[0].Argv[0])
}

func TestFirstStepFailureStopsRun(t *testing.T) {
	runner := &fakeRunner{results: []run.StepOutcome{exited(1)}}
	e := newTestEngine(runner)

	// Two-step template: upgrade then dist-upgrade.
	result, err := e.Execute(context.Background(), op.Operation{Verb: op.VerbUpgrade},
		Options{Backend: "apt"})
	require.NoError(t, err)

	assert.Equal(t, OverallFailure, result.Overall)
	assert.Equal(t, ExitFailure, result.ExitCode())
	assert.Len(t, runner.calls, 1, "later steps must not run")
}

func TestLaterStepFailureIsPartial(t *testing.T) {
	runner := &fakeRunner{results: []run.StepOutcome{exited(0), exited(1)}}
	e := newTestEngine(runner)

	result, err := e.Execute(context.Background(), op.Operation{Verb: op.VerbUpgrade},
		Options{Backend: "apt"})
	require.NoError(t, err)

	assert.Equal(t, OverallPartialFailure, result.Overall)
	assert.Equal(t, ExitPartialFailure, result.ExitCode())
	assert.Len(t, runner.calls, 2)
}

func TestFailedStepReported(t *testing.T) {
	var buf bytes.Buffer
	runner := &fakeRunner{results: []run.StepOutcome{exited(0), exited(1)}}
	e := New(backend.NewRegistryWithLookPath("linux", allFound), runner, &print.Printer{Err: &buf})
	e.isRoot = func() bool { return true }
	e.goos = "linux"

	_, err := e.Execute(context.Background(), op.Operation{Verb: op.VerbUpgrade},
		Options{Backend: "apt"})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "step 2")
	assert.Contains(t, buf.String(), "apt-get dist-upgrade")
	assert.Contains(t, buf.String(), "exited with code 1")
}

func TestIgnorableExitCodeCountsAsSuccess(t *testing.T) {
	runner := &fakeRunner{results: []run.StepOutcome{exited(100)}}
	e := newTestEngine(runner)

	// dnf check-update exits 100 when updates are available.
	operation := op.Operation{Verb: op.VerbQuery, Flags: []op.Flag{op.FlagUpgrades}}
	result, err := e.Execute(context.Background(), operation, Options{Backend: "dnf"})
	require.NoError(t, err)

	assert.Equal(t, OverallSuccess, result.Overall)
	require.Len(t, result.Steps, 1)
	assert.True(t, result.Steps[0].Ignored)
}

func TestUndeclaredExitCodeStaysFailure(t *testing.T) {
	runner := &fakeRunner{results: []run.StepOutcome{exited(101)}}
	e := newTestEngine(runner)

	operation := op.Operation{Verb: op.VerbQuery, Flags: []op.Flag{op.FlagUpgrades}}
	result, err := e.Execute(context.Background(), operation, Options{Backend: "dnf"})
	require.NoError(t, err)
	assert.Equal(t, OverallFailure, result.Overall)
}

func TestCancellationStopsFurtherSteps(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	runner := &fakeRunner{
		results: []run.StepOutcome{{Err: context.Canceled}},
		onRun:   cancel,
	}
	e := newTestEngine(runner)

	result, err := e.Execute(ctx, op.Operation{Verb: op.VerbUpgrade}, Options{Backend: "apt"})
	require.NoError(t, err)

	assert.Equal(t, OverallCancelled, result.Overall)
	assert.Equal(t, ExitCancelled, result.ExitCode())
	assert.Len(t, runner.calls, 1)
}

func TestSpawnFailureClassifiesAsFailure(t *testing.T) {
	runner := &fakeRunner{results: []run.StepOutcome{
		{Err: &run.SpawnError{Argv: []string{"apt-get"}, Err: errors.New("not found")}},
	}}
	e := newTestEngine(runner)

	result, err := e.Execute(context.Background(), installFoo(), Options{Backend: "apt"})
	require.NoError(t, err)
	assert.Equal(t, OverallFailure, result.Overall)
}

func TestInvalidOperationIsInternalError(t *testing.T) {
	e := newTestEngine(&fakeRunner{})

	_, err := e.Execute(context.Background(), op.Operation{Verb: op.VerbInstall}, Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, op.ErrInvalidOperation))
}

func TestNothingResolvableIsInternalError(t *testing.T) {
	notFound := func(string) (string, error) { return "", errors.New("not found") }
	e := New(backend.NewRegistryWithLookPath("linux", notFound), &fakeRunner{}, nil)

	_, err := e.Execute(context.Background(), installFoo(), Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, backend.ErrNoBackendAvailable))
}

func TestAllStepsSucceed(t *testing.T) {
	runner := &fakeRunner{results: []run.StepOutcome{exited(0), exited(0)}}
	e := newTestEngine(runner)

	result, err := e.Execute(context.Background(), op.Operation{Verb: op.VerbUpgrade},
		Options{Backend: "apt"})
	require.NoError(t, err)
	assert.Equal(t, OverallSuccess, result.Overall)
	assert.Equal(t, ExitSuccess, result.ExitCode())
	assert.Len(t, result.Steps, 2)
}

func TestUnknownBackendIsInternalError(t *testing.T) {
	e := newTestEngine(&fakeRunner{})

	_, err := e.Execute(context.Background(), installFoo(), Options{Backend: "slackpkg"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, backend.ErrNoBackendAvailable))
}

func TestUnsupportedOperationIsInternalError(t *testing.T) {
	e := newTestEngine(&fakeRunner{})

	operation := op.Operation{Verb: op.VerbSearch, Packages: []string{"x"}}
	_, err := e.Execute(context.Background(), operation, Options{Backend: "pip"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, backend.ErrUnsupportedOperation))
}

func TestNoConfirmInjectsAssumeYes(t *testing.T) {
	runner := &fakeRunner{}
	e := newTestEngine(runner)

	_, err := e.Execute(context.Background(), installFoo(),
		Options{Backend: "apt", NoConfirm: true})
	require.NoError(t, err)
	require.Len(t, runner.calls, 1)
	assert.Contains(t, runner.calls[0], "--yes")
}
