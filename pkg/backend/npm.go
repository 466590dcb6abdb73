// pkg/backend/npm.go
package backend

// Npm adapts the npm registry client, operating on the global prefix.
type Npm struct{ pm }

// NewNpm creates the npm backend.
func NewNpm() *Npm {
	return &Npm{pm{name: "npm", binary: "npm", table: npmTable}}
}

var npmTable = table{
	"q": func(bc buildContext) []CommandStep {
		return steps(cmd(bc, "npm", "ls", "--global", "--depth=0"))
	},
	"qu": func(bc buildContext) []CommandStep {
		return steps(cmd(bc, "npm", "outdated", "--global"))
	},
	"r": func(bc buildContext) []CommandStep {
		return steps(cmd(bc, "npm", "uninstall", "--global"))
	},
	"s": npmS,
	"sc": func(bc buildContext) []CommandStep {
		return steps(cmdOnly(bc, "npm", "cache", "clean", "--force"))
	},
	"scc": func(bc buildContext) []CommandStep {
		return steps(cmdOnly(bc, "npm", "cache", "clean", "--force"))
	},
	"si": func(bc buildContext) []CommandStep { return steps(cmd(bc, "npm", "view")) },
	"ss": func(bc buildContext) []CommandStep { return steps(cmd(bc, "npm", "search")) },
	"su": func(bc buildContext) []CommandStep {
		return steps(cmd(bc, "npm", "update", "--global"))
	},
}

func npmS(bc buildContext) []CommandStep {
	out := steps(cmd(bc, "npm", "install", "--global"))
	if bc.NoCache {
		out = append(out, fixed("npm", "cache", "clean", "--force"))
	}
	return out
}
