// internal/cli/update.go
package cli

import (
	"github.com/spf13/cobra"

	"pacgo/pkg/op"
)

var updateCmd = &cobra.Command{
	Use:   "update <file...>",
	Short: "Install packages from local files (-U)",
	Long: `Install packages from local archive files or URLs, where the
package manager supports it.

Examples:
  pacgo update ./ripgrep_14.1.0_amd64.deb`,
	Args: cobra.MinimumNArgs(1),
	RunE: runUpdate,
}

func runUpdate(cmd *cobra.Command, args []string) error {
	pkgs, extra := splitDash(cmd, args)
	return runOperation(op.Operation{Verb: op.VerbUpdate, Packages: pkgs}, extra)
}
