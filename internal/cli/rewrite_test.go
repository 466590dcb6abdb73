// internal/cli/rewrite_test.go
package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRewriteArgs(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"install", []string{"-S", "foo"}, []string{"sync", "foo"}},
		{"system upgrade", []string{"-Syu"}, []string{"sync", "-y", "-u"}},
		{"deep clean", []string{"-Scc"}, []string{"sync", "-c", "-c"}},
		{"remove recursive", []string{"-Rns", "foo"}, []string{"remove", "-n", "-s", "foo"}},
		{"query owner", []string{"-Qo", "/usr/bin/ls"}, []string{"query", "-o", "/usr/bin/ls"}},
		{"local install", []string{"-U", "./pkg.deb"}, []string{"update", "./pkg.deb"}},
		{"globals survive", []string{"-Ss", "editor", "--using", "brew"}, []string{"sync", "-s", "editor", "--using", "brew"}},
		{"subcommand untouched", []string{"sync", "foo"}, []string{"sync", "foo"}},
		{"long flag untouched", []string{"--version"}, []string{"--version"}},
		{"unknown cluster untouched", []string{"-x", "foo"}, []string{"-x", "foo"}},
		{"lowercase untouched", []string{"-s"}, []string{"-s"}},
		{"empty", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rewriteArgs(tt.in))
		})
	}
}
