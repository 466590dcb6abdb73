// internal/cli/rewrite.go
package cli

import "strings"

// opCommands maps a pacman operation letter to its subcommand.
var opCommands = map[byte]string{
	'S': "sync",
	'R': "remove",
	'Q': "query",
	'U': "update",
}

// rewriteArgs turns a leading pacman-style cluster into the matching
// subcommand with its single-letter flags expanded, so that
//
//	pacgo -Syu        -> pacgo sync -y -u
//	pacgo -Rns foo    -> pacgo remove -n -s foo
//	pacgo -Scc        -> pacgo sync -c -c
//
// Anything else passes through untouched, including long flags and
// invocations that already name a subcommand.
func rewriteArgs(args []string) []string {
	if len(args) == 0 {
		return args
	}
	head := args[0]
	if len(head) < 2 || head[0] != '-' || strings.HasPrefix(head, "--") {
		return args
	}
	sub, ok := opCommands[head[1]]
	if !ok {
		return args
	}

	out := []string{sub}
	for _, c := range head[2:] {
		out = append(out, "-"+strings.ToLower(string(c)))
	}
	return append(out, args[1:]...)
}
