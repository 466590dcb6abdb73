// internal/cli/sync.go
package cli

import (
	"github.com/spf13/cobra"

	"pacgo/pkg/op"
)

var (
	syncRefresh      bool
	syncUpgrade      bool
	syncSearch       bool
	syncInfo         bool
	syncClean        int
	syncList         bool
	syncGroups       bool
	syncDownloadOnly bool
)

var syncCmd = &cobra.Command{
	Use:     "sync [package...]",
	Aliases: []string{"install"},
	Short:   "Install packages and interact with the remote repositories (-S)",
	Long: `Install packages, refresh the package database, search the remote
repositories, upgrade the system or clean the download cache.

Examples:
  pacgo sync ripgrep fd
  pacgo sync -y -u            (same as pacgo -Syu)
  pacgo sync -s editor
  pacgo sync -c -c            (same as pacgo -Scc)`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().BoolVarP(&syncRefresh, "refresh", "y", false, "refresh the package database first")
	syncCmd.Flags().BoolVarP(&syncUpgrade, "sysupgrade", "u", false, "upgrade outdated packages")
	syncCmd.Flags().BoolVarP(&syncSearch, "search", "s", false, "search the remote repositories")
	syncCmd.Flags().BoolVarP(&syncInfo, "info", "i", false, "show detailed package information")
	syncCmd.Flags().CountVarP(&syncClean, "clean", "c", "clean the download cache (twice for everything)")
	syncCmd.Flags().BoolVarP(&syncList, "list", "l", false, "list packages in the repositories")
	syncCmd.Flags().BoolVarP(&syncGroups, "groups", "g", false, "show members of a package group")
	syncCmd.Flags().BoolVarP(&syncDownloadOnly, "downloadonly", "w", false, "download packages without installing")
}

func runSync(cmd *cobra.Command, args []string) error {
	pkgs, extra := splitDash(cmd, args)
	operation := op.Operation{Packages: pkgs}

	switch {
	case syncSearch:
		operation.Verb = op.VerbSearch
	case syncClean > 0:
		operation.Verb = op.VerbClean
		if syncClean > 1 {
			operation.Flags = append(operation.Flags, op.FlagAll)
		}
	case syncUpgrade:
		operation.Verb = op.VerbUpgrade
		if syncRefresh {
			operation.Flags = append(operation.Flags, op.FlagRefresh)
		}
	case syncRefresh:
		operation.Verb = op.VerbSync
	default:
		operation.Verb = op.VerbInstall
		if syncInfo {
			operation.Flags = append(operation.Flags, op.FlagInfo)
		}
		if syncList {
			operation.Flags = append(operation.Flags, op.FlagList)
		}
		if syncGroups {
			operation.Flags = append(operation.Flags, op.FlagGroups)
		}
		if syncDownloadOnly {
			operation.Flags = append(operation.Flags, op.FlagDownloadOnly)
		}
	}

	return runOperation(operation, extra)
}
