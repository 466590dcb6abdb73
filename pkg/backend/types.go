// pkg/backend/types.go
package backend

import (
	"errors"
	"fmt"
	"regexp"

	"pacgo/pkg/op"
)

// Backend defines the interface every native package manager adapter must
// implement. Backends are immutable after construction; the registry owns
// one instance of each for the process lifetime.
type Backend interface {
	// Name returns the short identifier for this backend (e.g. "apt").
	Name() string

	// Binary returns the executable probed to decide availability.
	Binary() string

	// Translate turns an operation into the literal command pipeline that
	// realizes it on this backend. Pure: identical inputs yield identical
	// templates, so it is safe to call repeatedly for dry-run previews.
	Translate(operation op.Operation, opts TranslateOptions) (CommandTemplate, error)

	// NeedsRoot reports whether any step of the operation's template
	// requires privilege elevation on this backend.
	NeedsRoot(operation op.Operation) bool

	// PromptPatterns returns the interactive prompts this backend is known
	// to print, in matching order, with the line to answer each of them.
	// Used only when no-confirm mode is active and no native assume-yes
	// flag exists.
	PromptPatterns() []PromptPattern
}

// TranslateOptions carries the runtime toggles that influence argv
// construction. Translation stays deterministic in (operation, options).
type TranslateOptions struct {
	// NoConfirm answers yes to every question, either via the backend's
	// native flag or via prompt interception.
	NoConfirm bool

	// Reinstall forces reinstallation of packages that are already
	// installed, where the backend distinguishes the two.
	Reinstall bool

	// NoCache removes the download cache after install-like operations.
	NoCache bool

	// ExtraFlags are passed through to the backend verbatim, appended
	// after everything else.
	ExtraFlags []string
}

// CommandStep is one subprocess invocation within a template.
type CommandStep struct {
	// Argv is the literal argument vector, program name first.
	Argv []string

	// MayPrompt marks steps that can stop for interactive confirmation.
	MayPrompt bool

	// IgnorableExitCodes are nonzero exit codes this backend declares as
	// non-failing for this step (e.g. "nothing to do").
	IgnorableExitCodes []int

	// RequiresRoot marks steps that need privilege elevation when the
	// current process is unprivileged.
	RequiresRoot bool
}

// CommandTemplate is the ordered sequence of steps realizing one operation.
type CommandTemplate struct {
	Steps []CommandStep
}

// PromptPattern pairs a recognized interactive prompt with the response
// line written back to the subprocess when no-confirm mode is active.
type PromptPattern struct {
	Pattern  *regexp.Regexp
	Response string
}

var (
	// ErrNoBackendAvailable indicates no native package manager could be
	// resolved on this host.
	ErrNoBackendAvailable = errors.New("no package manager backend available")

	// ErrUnsupportedOperation indicates the chosen backend has no
	// translation for the requested verb/flag combination.
	ErrUnsupportedOperation = errors.New("unsupported operation")
)

// UnsupportedOperationError reports a missing translation table entry.
type UnsupportedOperationError struct {
	Backend string
	Op      op.Operation
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("backend %s does not support %s", e.Backend, e.Op)
}

func (e *UnsupportedOperationError) Unwrap() error { return ErrUnsupportedOperation }
