// pkg/run/outcome.go
package run

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// StreamSource identifies which stream an output line came from.
type StreamSource int

const (
	// SourceStdout marks lines read from the subprocess standard output.
	SourceStdout StreamSource = iota
	// SourceStderr marks lines read from the subprocess standard error.
	SourceStderr
)

// String returns the stream name.
func (s StreamSource) String() string {
	if s == SourceStderr {
		return "stderr"
	}
	return "stdout"
}

// OutputEvent is one line of subprocess output, forwarded live.
type OutputEvent struct {
	Source StreamSource
	Line   string
}

// Sink receives output events as they are produced. Implementations must
// tolerate calls from concurrent reader goroutines; the runner serializes
// them.
type Sink interface {
	Emit(ev OutputEvent)
}

// WriterSink forwards stdout lines and stderr lines to two writers,
// re-appending the newline the reader stripped.
type WriterSink struct {
	Stdout io.Writer
	Stderr io.Writer
}

// Emit writes the line to the writer matching its source.
func (s *WriterSink) Emit(ev OutputEvent) {
	w := s.Stdout
	if ev.Source == SourceStderr {
		w = s.Stderr
	}
	if w != nil {
		fmt.Fprintln(w, ev.Line)
	}
}

// DiscardSink drops all output. Useful as a default.
type DiscardSink struct{}

// Emit drops the event.
func (DiscardSink) Emit(OutputEvent) {}

// lockedSink serializes Emit calls from the two stream readers so the
// caller's sink never sees concurrent events.
type lockedSink struct {
	mu   sync.Mutex
	sink Sink
}

func (l *lockedSink) Emit(ev OutputEvent) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sink.Emit(ev)
}

// StepOutcome records everything observed about one executed (or skipped)
// step.
type StepOutcome struct {
	// Argv is the argument vector that ran, after any elevation wrapping.
	Argv []string

	// ExitCode is the subprocess exit status. Nil means the process never
	// exited under its own power: the step was skipped by dry-run, killed
	// by cancellation, or failed to spawn.
	ExitCode *int

	// Stdout and Stderr hold the captured output, also streamed live.
	Stdout []byte
	Stderr []byte

	// Duration measures spawn to reap.
	Duration time.Duration

	// Err is set for spawn failures and cancellation; nil for a normal
	// exit regardless of exit code.
	Err error
}

// Exited reports whether the subprocess ran to completion.
func (o StepOutcome) Exited() bool { return o.ExitCode != nil }

// SpawnError reports that a step's executable could not be launched.
type SpawnError struct {
	Argv []string
	Err  error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("spawning %q: %v", e.Argv[0], e.Err)
}

func (e *SpawnError) Unwrap() error { return e.Err }
