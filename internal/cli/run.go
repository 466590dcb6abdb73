// internal/cli/run.go
package cli

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"pacgo/internal/print"
	"pacgo/pkg/backend"
	"pacgo/pkg/engine"
	"pacgo/pkg/op"
	"pacgo/pkg/run"
)

// splitDash separates positional keywords from pass-through flags given
// after "--", which go to the backend command verbatim.
func splitDash(cmd *cobra.Command, args []string) (pkgs, extra []string) {
	at := cmd.Flags().ArgsLenAtDash()
	if at < 0 {
		return args, nil
	}
	return args[:at], args[at:]
}

// runOperation executes one operation through the engine and stores the
// resulting exit code. Interrupts cancel the context, which kills the
// running step and reports the run as cancelled.
func runOperation(operation op.Operation, extra []string) error {
	printer := &print.Printer{Out: os.Stdout, Err: os.Stderr}
	eng := engine.New(backend.NewRegistry(), &run.OSRunner{}, printer)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	result, err := eng.Execute(ctx, operation, engine.Options{
		Backend:    cfg.DefaultBackend,
		DryRun:     cfg.DryRun,
		NoConfirm:  cfg.NoConfirm,
		Reinstall:  cfg.Reinstall,
		NoCache:    cfg.NoCache,
		NeedsSudo:  cfg.NeedsSudo,
		ExtraFlags: extra,
		Sink:       &run.WriterSink{Stdout: os.Stdout, Stderr: os.Stderr},
	})
	if err != nil {
		return err
	}
	exitCode = result.ExitCode()
	return nil
}
