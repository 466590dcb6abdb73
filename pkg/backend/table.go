// pkg/backend/table.go
package backend

import (
	"pacgo/pkg/op"
)

// buildContext is what a translation entry sees: the operation's packages
// plus the runtime toggles from TranslateOptions.
type buildContext struct {
	Packages  []string
	Extra     []string
	NoConfirm bool
	Reinstall bool
	NoCache   bool
}

// buildFunc produces the steps for one dispatch key.
type buildFunc func(bc buildContext) []CommandStep

// table maps dispatch keys (see op.Operation.Key) to step builders. Keeping
// the whole verb/flag surface of a backend in one table makes coverage gaps
// a data question: a missing key is UnsupportedOperation, never a guess.
type table map[string]buildFunc

func (t table) translate(name string, operation op.Operation, opts TranslateOptions) (CommandTemplate, error) {
	if err := operation.Validate(); err != nil {
		return CommandTemplate{}, err
	}
	build, ok := t[operation.Key()]
	if !ok {
		return CommandTemplate{}, &UnsupportedOperationError{Backend: name, Op: operation}
	}
	bc := buildContext{
		Packages:  operation.Packages,
		Extra:     opts.ExtraFlags,
		NoConfirm: opts.NoConfirm,
		Reinstall: opts.Reinstall,
		NoCache:   opts.NoCache,
	}
	return CommandTemplate{Steps: build(bc)}, nil
}

// pm is the shared backend implementation: a name, a probe binary, a
// translation table and the prompt patterns for interception. Concrete
// backends embed it and only supply data.
type pm struct {
	name    string
	binary  string
	table   table
	prompts []PromptPattern
}

// Name returns the backend name.
func (p *pm) Name() string { return p.name }

// Binary returns the executable probed for availability.
func (p *pm) Binary() string { return p.binary }

// PromptPatterns returns the backend's known interactive prompts.
func (p *pm) PromptPatterns() []PromptPattern { return p.prompts }

// Translate looks the operation up in the backend's table.
func (p *pm) Translate(operation op.Operation, opts TranslateOptions) (CommandTemplate, error) {
	return p.table.translate(p.name, operation, opts)
}

// NeedsRoot reports whether any step of the operation's template requires
// elevation. Untranslatable operations never need root.
func (p *pm) NeedsRoot(operation op.Operation) bool {
	tmpl, err := p.Translate(operation, TranslateOptions{})
	if err != nil {
		return false
	}
	for _, s := range tmpl.Steps {
		if s.RequiresRoot {
			return true
		}
	}
	return false
}

// cmd builds a step from the base argv, appending the operation's packages
// and then any pass-through flags.
func cmd(bc buildContext, argv ...string) CommandStep {
	out := make([]string, 0, len(argv)+len(bc.Packages)+len(bc.Extra))
	out = append(out, argv...)
	out = append(out, bc.Packages...)
	out = append(out, bc.Extra...)
	return CommandStep{Argv: out}
}

// cmdOnly builds a step that takes no package arguments, e.g. an index
// refresh. Pass-through flags are still appended.
func cmdOnly(bc buildContext, argv ...string) CommandStep {
	out := make([]string, 0, len(argv)+len(bc.Extra))
	out = append(out, argv...)
	out = append(out, bc.Extra...)
	return CommandStep{Argv: out}
}

// fixed builds a literal step that takes neither packages nor pass-through
// flags, e.g. a trailing cache clean.
func fixed(argv ...string) CommandStep {
	return CommandStep{Argv: argv}
}

// sudo marks a step as requiring privilege elevation.
func sudo(s CommandStep) CommandStep {
	s.RequiresRoot = true
	return s
}

// interactive marks a step as able to stop for confirmation regardless of
// no-confirm mode; used by backends whose prompts are answered through
// interception rather than a flag.
func interactive(s CommandStep) CommandStep {
	s.MayPrompt = true
	return s
}

// confirm applies the native-flag prompt strategy: under no-confirm the
// backend's assume-yes flags are injected and the step cannot prompt;
// otherwise the step stays interactive.
func confirm(bc buildContext, s CommandStep, yes ...string) CommandStep {
	if bc.NoConfirm {
		s.Argv = append(s.Argv, yes...)
		return s
	}
	s.MayPrompt = true
	return s
}

// ignore declares exit codes that classify as success for this step.
func ignore(s CommandStep, codes ...int) CommandStep {
	s.IgnorableExitCodes = append(s.IgnorableExitCodes, codes...)
	return s
}

// steps collects a variadic list into a template step slice.
func steps(ss ...CommandStep) []CommandStep { return ss }
