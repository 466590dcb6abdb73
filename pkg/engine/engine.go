// pkg/engine/engine.go
package engine

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/charmbracelet/log"

	"pacgo/internal/print"
	"pacgo/pkg/backend"
	"pacgo/pkg/op"
	"pacgo/pkg/run"
)

// Overall classifies the result of a multi-step execution.
type Overall int

const (
	// OverallSuccess means every executed step succeeded, counting steps
	// whose nonzero exit code the backend declares ignorable.
	OverallSuccess Overall = iota
	// OverallFailure means the first step failed; nothing took effect.
	OverallFailure
	// OverallPartialFailure means a later step failed after earlier steps
	// had already taken effect.
	OverallPartialFailure
	// OverallCancelled means the context was cancelled mid-run.
	OverallCancelled
)

// String returns the outcome name.
func (o Overall) String() string {
	switch o {
	case OverallFailure:
		return "failure"
	case OverallPartialFailure:
		return "partial failure"
	case OverallCancelled:
		return "cancelled"
	}
	return "success"
}

// Process exit codes for the pacgo binary.
const (
	ExitSuccess        = 0
	ExitFailure        = 1
	ExitPartialFailure = 2
	ExitInternal       = 3
	ExitCancelled      = 130
)

// Options carries the per-invocation knobs the engine needs.
type Options struct {
	// Backend pins a package manager by name. Empty auto-selects the
	// highest-priority available one.
	Backend string

	// DryRun resolves and prints every step without spawning anything.
	DryRun bool

	// NoConfirm answers confirmation prompts automatically, either with
	// native flags or by prompt interception.
	NoConfirm bool

	// Reinstall forces reinstallation of already installed packages.
	Reinstall bool

	// NoCache cleans the backend cache after the operation.
	NoCache bool

	// NeedsSudo permits wrapping root-requiring steps with sudo.
	NeedsSudo bool

	// ExtraFlags are passed through verbatim to the backend command.
	ExtraFlags []string

	// Sink receives live subprocess output. Nil streams to the printer's
	// writers untouched.
	Sink run.Sink
}

// StepResult pairs one step's outcome with the engine's classification.
type StepResult struct {
	run.StepOutcome

	// Skipped is true when dry-run replaced execution with a print.
	Skipped bool

	// Ignored is true when the exit code was nonzero but declared
	// ignorable by the backend, so the step counts as succeeded.
	Ignored bool
}

// ExecutionResult is the engine's report for one operation.
type ExecutionResult struct {
	Backend string
	Overall Overall
	Steps   []StepResult
}

// ExitCode maps the overall outcome to the process exit code.
func (r *ExecutionResult) ExitCode() int {
	switch r.Overall {
	case OverallFailure:
		return ExitFailure
	case OverallPartialFailure:
		return ExitPartialFailure
	case OverallCancelled:
		return ExitCancelled
	}
	return ExitSuccess
}

// Engine validates an operation, translates it through a backend and runs
// the resulting steps in order.
type Engine struct {
	registry *backend.Registry
	runner   run.Runner
	printer  *print.Printer

	// isRoot and goos are swapped out in tests.
	isRoot func() bool
	goos   string
}

// New creates an engine bound to the given registry and runner. A nil
// printer disables status output.
func New(registry *backend.Registry, runner run.Runner, printer *print.Printer) *Engine {
	if printer == nil {
		printer = &print.Printer{}
	}
	return &Engine{
		registry: registry,
		runner:   runner,
		printer:  printer,
		isRoot:   func() bool { return os.Geteuid() == 0 },
		goos:     runtime.GOOS,
	}
}

// Execute runs one operation end to end. A non-nil error means the
// operation never started (invalid operation, no backend, unsupported
// operation) and maps to ExitInternal; once steps run, failures are
// reported through the result instead.
func (e *Engine) Execute(ctx context.Context, operation op.Operation, opts Options) (*ExecutionResult, error) {
	if err := operation.Validate(); err != nil {
		return nil, err
	}

	b, err := e.registry.Select(opts.Backend)
	if err != nil {
		return nil, err
	}
	log.Debug("selected backend", "pm", b.Name(), "op", operation.String())

	tmpl, err := b.Translate(operation, backend.TranslateOptions{
		NoConfirm:  opts.NoConfirm,
		Reinstall:  opts.Reinstall,
		NoCache:    opts.NoCache,
		ExtraFlags: opts.ExtraFlags,
	})
	if err != nil {
		return nil, err
	}

	result := &ExecutionResult{Backend: b.Name()}
	for i, step := range tmpl.Steps {
		argv := e.elevate(step, opts)

		if opts.DryRun {
			e.printer.Cmd(print.PromptPending, argv)
			result.Steps = append(result.Steps, StepResult{
				StepOutcome: run.StepOutcome{Argv: argv},
				Skipped:     true,
			})
			continue
		}

		e.printer.Cmd(print.PromptRunning, argv)
		outcome := e.runner.Run(ctx, backend.CommandStep{
			Argv:               argv,
			MayPrompt:          step.MayPrompt,
			IgnorableExitCodes: step.IgnorableExitCodes,
			RequiresRoot:       step.RequiresRoot,
		}, run.Options{
			NoConfirm: opts.NoConfirm,
			Prompts:   b.PromptPatterns(),
			Sink:      opts.Sink,
		})

		sr := StepResult{StepOutcome: outcome}
		ok := false
		if outcome.Exited() {
			code := *outcome.ExitCode
			if code == 0 {
				ok = true
			} else if ignorable(step, code) {
				ok = true
				sr.Ignored = true
				log.Debug("ignoring exit code", "pm", b.Name(), "code", code)
			}
		}
		result.Steps = append(result.Steps, sr)

		if ok {
			continue
		}

		if ctx.Err() != nil {
			e.printer.Msg(print.PromptCanceled, "interrupted")
			result.Overall = OverallCancelled
			return result, nil
		}
		if outcome.Err != nil {
			e.printer.Error(outcome.Err)
		} else if outcome.Exited() {
			e.printer.Error(fmt.Errorf("step %d `%s` exited with code %d",
				i+1, strings.Join(argv, " "), *outcome.ExitCode))
		}
		if i == 0 {
			result.Overall = OverallFailure
		} else {
			result.Overall = OverallPartialFailure
		}
		return result, nil
	}

	result.Overall = OverallSuccess
	return result, nil
}

// elevate prepends sudo when the step needs root, the configuration
// permits it, the process is not already root, and the platform has sudo.
func (e *Engine) elevate(step backend.CommandStep, opts Options) []string {
	if !step.RequiresRoot || !opts.NeedsSudo || e.isRoot() || e.goos == "windows" {
		return step.Argv
	}
	return append([]string{"sudo"}, step.Argv...)
}

// ignorable reports whether the backend declared this exit code harmless
// for this step. Only explicitly listed codes qualify.
func ignorable(step backend.CommandStep, code int) bool {
	for _, c := range step.IgnorableExitCodes {
		if c == code {
			return true
		}
	}
	return false
}
