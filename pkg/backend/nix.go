// pkg/backend/nix.go
package backend

// Nix adapts the Nix package manager through the classic nix-env tooling,
// operating on the calling user's profile. Never needs root.
type Nix struct{ pm }

// NewNix creates the nix backend.
func NewNix() *Nix {
	return &Nix{pm{name: "nix", binary: "nix-env", table: nixTable}}
}

var nixTable = table{
	"q":  func(bc buildContext) []CommandStep { return steps(cmd(bc, "nix-env", "-q")) },
	"qi": func(bc buildContext) []CommandStep {
		return steps(cmd(bc, "nix-env", "-q", "--description"))
	},
	"r": func(bc buildContext) []CommandStep { return steps(cmd(bc, "nix-env", "-e")) },
	"s": func(bc buildContext) []CommandStep { return steps(cmd(bc, "nix-env", "-i")) },
	"sc": func(bc buildContext) []CommandStep {
		return steps(cmdOnly(bc, "nix-collect-garbage"))
	},
	"scc": func(bc buildContext) []CommandStep {
		return steps(cmdOnly(bc, "nix-collect-garbage", "-d"))
	},
	"ss": func(bc buildContext) []CommandStep {
		return steps(cmd(bc, "nix-env", "-qaP"))
	},
	"su": func(bc buildContext) []CommandStep {
		return steps(cmd(bc, "nix-env", "-u"))
	},
	"suy": func(bc buildContext) []CommandStep {
		return steps(
			cmdOnly(bc, "nix-channel", "--update"),
			cmd(bc, "nix-env", "-u"),
		)
	},
	"sy": func(bc buildContext) []CommandStep {
		return steps(cmdOnly(bc, "nix-channel", "--update"))
	},
}
