// internal/cli/query.go
package cli

import (
	"github.com/spf13/cobra"

	"pacgo/pkg/op"
)

var (
	queryChangelog bool
	queryExplicit  bool
	queryInfo      bool
	queryCheck     bool
	queryList      bool
	queryForeign   bool
	queryOwns      bool
	queryFile      bool
	querySearch    bool
	queryUpgrades  bool
)

var queryCmd = &cobra.Command{
	Use:   "query [package...]",
	Short: "Query the local package database (-Q)",
	Long: `Query installed packages.

Examples:
  pacgo query
  pacgo query -i ripgrep
  pacgo query -o /usr/bin/ls      (same as pacgo -Qo)
  pacgo query -u                  (list available upgrades)`,
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().BoolVarP(&queryChangelog, "changelog", "c", false, "view the changelog of a package")
	queryCmd.Flags().BoolVarP(&queryExplicit, "explicit", "e", false, "list explicitly installed packages")
	queryCmd.Flags().BoolVarP(&queryInfo, "info", "i", false, "show detailed package information")
	queryCmd.Flags().BoolVarP(&queryCheck, "check", "k", false, "verify files owned by the packages")
	queryCmd.Flags().BoolVarP(&queryList, "list", "l", false, "list files owned by a package")
	queryCmd.Flags().BoolVarP(&queryForeign, "foreign", "m", false, "list packages not found in the sync database")
	queryCmd.Flags().BoolVarP(&queryOwns, "owns", "o", false, "query the package owning the given files")
	queryCmd.Flags().BoolVarP(&queryFile, "file", "p", false, "query a package file instead of the database")
	queryCmd.Flags().BoolVarP(&querySearch, "search", "s", false, "search locally installed packages")
	queryCmd.Flags().BoolVarP(&queryUpgrades, "upgrades", "u", false, "list packages with an update available")
}

func runQuery(cmd *cobra.Command, args []string) error {
	pkgs, extra := splitDash(cmd, args)
	operation := op.Operation{Verb: op.VerbQuery, Packages: pkgs}

	for _, f := range []struct {
		set  bool
		flag op.Flag
	}{
		{queryChangelog, op.FlagChangelog},
		{queryExplicit, op.FlagExplicit},
		{queryInfo, op.FlagInfo},
		{queryCheck, op.FlagCheck},
		{queryList, op.FlagList},
		{queryForeign, op.FlagForeign},
		{queryOwns, op.FlagOwns},
		{queryFile, op.FlagFile},
		{querySearch, op.FlagSearch},
		{queryUpgrades, op.FlagUpgrades},
	} {
		if f.set {
			operation.Flags = append(operation.Flags, f.flag)
		}
	}

	return runOperation(operation, extra)
}
