// internal/cli/remove.go
package cli

import (
	"github.com/spf13/cobra"

	"pacgo/pkg/op"
)

var (
	removeNoSave    bool
	removeRecursive bool
)

var removeCmd = &cobra.Command{
	Use:     "remove <package...>",
	Aliases: []string{"uninstall"},
	Short:   "Remove installed packages (-R)",
	Long: `Remove installed packages.

Examples:
  pacgo remove old-package
  pacgo remove -n -s old-package   (same as pacgo -Rns)`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRemove,
}

func init() {
	removeCmd.Flags().BoolVarP(&removeNoSave, "nosave", "n", false, "also discard configuration files")
	removeCmd.Flags().BoolVarP(&removeRecursive, "recursive", "s", false, "also remove unneeded dependencies")
}

func runRemove(cmd *cobra.Command, args []string) error {
	pkgs, extra := splitDash(cmd, args)
	operation := op.Operation{Verb: op.VerbRemove, Packages: pkgs}
	if removeNoSave {
		operation.Flags = append(operation.Flags, op.FlagNoSave)
	}
	if removeRecursive {
		operation.Flags = append(operation.Flags, op.FlagRecursive)
	}
	return runOperation(operation, extra)
}
