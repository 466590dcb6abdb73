// pkg/backend/pip.go
package backend

import "regexp"

// Pip adapts the Python package installer. Remote search has been removed
// from pip itself, so the search keys are deliberately absent from the
// table and surface as UnsupportedOperation.
type Pip struct{ pm }

// NewPip creates the pip backend.
func NewPip() *Pip {
	return &Pip{pm{
		name:   "pip",
		binary: "pip",
		table:  pipTable,
		prompts: []PromptPattern{
			{Pattern: regexp.MustCompile(`Proceed \(y/n\)\?`), Response: "y"},
		},
	}}
}

var pipTable = table{
	"q":  func(bc buildContext) []CommandStep { return steps(cmd(bc, "pip", "list")) },
	"qi": func(bc buildContext) []CommandStep { return steps(cmd(bc, "pip", "show")) },
	"qu": func(bc buildContext) []CommandStep {
		return steps(cmdOnly(bc, "pip", "list", "--outdated"))
	},
	"r": func(bc buildContext) []CommandStep {
		return steps(confirm(bc, cmd(bc, "pip", "uninstall"), "-y"))
	},
	"s":  pipS,
	"sc": func(bc buildContext) []CommandStep {
		return steps(cmdOnly(bc, "pip", "cache", "purge"))
	},
	"scc": func(bc buildContext) []CommandStep {
		return steps(cmdOnly(bc, "pip", "cache", "purge"))
	},
	"si": func(bc buildContext) []CommandStep {
		return steps(cmd(bc, "pip", "index", "versions"))
	},
	"su": func(bc buildContext) []CommandStep {
		return steps(cmd(bc, "pip", "install", "--upgrade"))
	},
	"u": pipS, // pip install accepts local archives and wheels
}

func pipS(bc buildContext) []CommandStep {
	argv := []string{"pip", "install"}
	if bc.Reinstall {
		argv = append(argv, "--force-reinstall")
	}
	out := steps(cmd(bc, argv...))
	if bc.NoCache {
		out = append(out, fixed("pip", "cache", "purge"))
	}
	return out
}
