// pkg/run/runner.go
package run

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"sync"
	"time"

	"pacgo/pkg/backend"
)

// Runner executes one command step as a subprocess. The orchestrator only
// talks to this interface, so tests substitute a recording double.
type Runner interface {
	Run(ctx context.Context, step backend.CommandStep, opts Options) StepOutcome
}

// Options configures one step execution.
type Options struct {
	// NoConfirm enables prompt interception on steps that may prompt.
	NoConfirm bool

	// Prompts are the backend's known prompts, matched in order against
	// streamed stdout when interception is active.
	Prompts []backend.PromptPattern

	// Sink receives output lines live. Nil discards.
	Sink Sink
}

// readerGrace bounds how long a returning Run waits for stream readers
// kept alive by an orphaned descendant of a dead child.
const readerGrace = 2 * time.Second

// OSRunner runs steps as real subprocesses with concurrent stream
// consumption. The zero value is ready to use and connects interactive
// steps to the calling process's stdin.
type OSRunner struct {
	// Stdin is handed to interactive steps. Defaults to os.Stdin.
	Stdin io.Reader
}

// Run spawns the step and blocks until the child has been reaped. The
// child is reaped on every path, including cancellation: the context kills
// the process and Wait still collects its status before Run returns.
func (r *OSRunner) Run(ctx context.Context, step backend.CommandStep, opts Options) StepOutcome {
	outcome := StepOutcome{Argv: step.Argv}
	sink := Sink(DiscardSink{})
	if opts.Sink != nil {
		sink = &lockedSink{sink: opts.Sink}
	}

	start := time.Now()
	cmd := exec.CommandContext(ctx, step.Argv[0], step.Argv[1:]...)

	// Package managers fork helpers (dpkg under apt-get, the wrapped
	// command under sudo) that inherit the output pipes. The process group
	// kill takes the whole tree down on cancellation, and WaitDelay bounds
	// how long Wait may block on a straggler still holding a pipe open
	// after the child itself has exited.
	setProcessGroup(cmd)
	cmd.WaitDelay = readerGrace

	// Prompt interception needs a writable stdin; everything else talks to
	// the user's terminal directly.
	intercept := step.MayPrompt && opts.NoConfirm && len(opts.Prompts) > 0
	var stdin io.WriteCloser
	if intercept {
		pipe, err := cmd.StdinPipe()
		if err != nil {
			outcome.Err = &SpawnError{Argv: step.Argv, Err: err}
			return outcome
		}
		stdin = pipe
	} else {
		if r.Stdin != nil {
			cmd.Stdin = r.Stdin
		} else {
			cmd.Stdin = os.Stdin
		}
	}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		outcome.Err = &SpawnError{Argv: step.Argv, Err: err}
		return outcome
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		outcome.Err = &SpawnError{Argv: step.Argv, Err: err}
		return outcome
	}

	if err := cmd.Start(); err != nil {
		outcome.Err = &SpawnError{Argv: step.Argv, Err: err}
		return outcome
	}

	var outBuf, errBuf bytes.Buffer
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		consumeStdout(stdout, stdin, opts.Prompts, sink, &outBuf)
	}()
	go func() {
		defer wg.Done()
		consumeStderr(stderr, sink, &errBuf)
	}()

	// The readers normally finish at EOF once the process tree is gone.
	// After cancellation the group kill makes that prompt; the grace timer
	// keeps a descendant that survived the kill and still holds a pipe
	// write-end from wedging the caller.
	readersDone := make(chan struct{})
	go func() {
		wg.Wait()
		close(readersDone)
	}()
	select {
	case <-readersDone:
	case <-ctx.Done():
		select {
		case <-readersDone:
		case <-time.After(readerGrace):
		}
	}

	waitErr := cmd.Wait()
	if stdin != nil {
		stdin.Close()
	}

	// Wait has closed the pipes by now, which unblocks any reader that was
	// abandoned above. The buffers are only safe to hand out once both
	// readers have stopped writing to them.
	select {
	case <-readersDone:
		outcome.Stdout = outBuf.Bytes()
		outcome.Stderr = errBuf.Bytes()
	case <-time.After(readerGrace):
	}
	outcome.Duration = time.Since(start)

	switch {
	case waitErr == nil:
		code := 0
		outcome.ExitCode = &code
	case errors.Is(waitErr, exec.ErrWaitDelay):
		// The child exited normally; only a leftover pipe holder tripped
		// the delay.
		code := cmd.ProcessState.ExitCode()
		outcome.ExitCode = &code
	case ctx.Err() != nil:
		// Killed by cancellation; the process never exited on its own.
		outcome.Err = ctx.Err()
	default:
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) && exitErr.ExitCode() >= 0 {
			code := exitErr.ExitCode()
			outcome.ExitCode = &code
		} else {
			outcome.Err = waitErr
		}
	}
	return outcome
}

// consumeStdout reads stdout byte-wise so prompts that do not end in a
// newline are still seen. When the partial line matches a prompt pattern
// the response is written to the child's stdin exactly once, re-arming on
// the next line so repeated prompts are each answered. Stdin is written
// only from this goroutine, which keeps prompt detection and the response
// write ordered.
func consumeStdout(pr io.Reader, stdin io.Writer, prompts []backend.PromptPattern, sink Sink, buf *bytes.Buffer) {
	reader := bufio.NewReader(pr)
	var line bytes.Buffer
	answered := false

	flush := func(terminated bool) {
		sink.Emit(OutputEvent{Source: SourceStdout, Line: line.String()})
		buf.Write(line.Bytes())
		if terminated {
			buf.WriteByte('\n')
		}
		line.Reset()
		answered = false
	}

	for {
		b, err := reader.ReadByte()
		if err != nil {
			if line.Len() > 0 {
				flush(false)
			}
			return
		}
		if b == '\n' {
			flush(true)
			continue
		}
		if b == '\r' {
			continue
		}
		line.WriteByte(b)

		if stdin == nil || answered {
			continue
		}
		for _, p := range prompts {
			if p.Pattern.MatchString(line.String()) {
				io.WriteString(stdin, p.Response+"\n")
				answered = true
				break
			}
		}
	}
}

func consumeStderr(pr io.Reader, sink Sink, buf *bytes.Buffer) {
	scanner := bufio.NewScanner(pr)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		sink.Emit(OutputEvent{Source: SourceStderr, Line: scanner.Text()})
		buf.Write(scanner.Bytes())
		buf.WriteByte('\n')
	}
}
