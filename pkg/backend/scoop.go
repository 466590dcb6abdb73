// pkg/backend/scoop.go
package backend

// Scoop adapts the Scoop installer on Windows. Scoop installs into the
// user profile and never needs elevation or confirmation.
type Scoop struct{ pm }

// NewScoop creates the scoop backend.
func NewScoop() *Scoop {
	return &Scoop{pm{name: "scoop", binary: "scoop", table: scoopTable}}
}

var scoopTable = table{
	"q":  func(bc buildContext) []CommandStep { return steps(cmd(bc, "scoop", "list")) },
	"qi": func(bc buildContext) []CommandStep { return steps(cmd(bc, "scoop", "info")) },
	"qu": func(bc buildContext) []CommandStep { return steps(cmdOnly(bc, "scoop", "status")) },
	"r":  func(bc buildContext) []CommandStep { return steps(cmd(bc, "scoop", "uninstall")) },
	"s":  scoopS,
	"sc": func(bc buildContext) []CommandStep {
		return steps(cmdOnly(bc, "scoop", "cache", "rm", "*"))
	},
	"scc": func(bc buildContext) []CommandStep {
		return steps(cmdOnly(bc, "scoop", "cache", "rm", "*"))
	},
	"si": func(bc buildContext) []CommandStep { return steps(cmd(bc, "scoop", "info")) },
	"ss": func(bc buildContext) []CommandStep { return steps(cmd(bc, "scoop", "search")) },
	"su": func(bc buildContext) []CommandStep {
		if len(bc.Packages) == 0 {
			return steps(cmdOnly(bc, "scoop", "update", "*"))
		}
		return steps(cmd(bc, "scoop", "update"))
	},
	"suy": func(bc buildContext) []CommandStep {
		return steps(
			cmdOnly(bc, "scoop", "update"),
			cmdOnly(bc, "scoop", "update", "*"),
		)
	},
	"sy": func(bc buildContext) []CommandStep { return steps(cmdOnly(bc, "scoop", "update")) },
}

func scoopS(bc buildContext) []CommandStep {
	out := steps(cmd(bc, "scoop", "install"))
	if bc.NoCache {
		out = append(out, fixed("scoop", "cache", "rm", "*"))
	}
	return out
}
