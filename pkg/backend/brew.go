// pkg/backend/brew.go
package backend

import "regexp"

// Brew adapts Homebrew on macOS and Linux. Homebrew has no assume-yes
// flag, so no-confirm mode relies on prompt interception, and it must
// never run as root.
type Brew struct{ pm }

// NewBrew creates the brew backend.
func NewBrew() *Brew {
	return &Brew{pm{
		name:   "brew",
		binary: "brew",
		table:  brewTable,
		prompts: []PromptPattern{
			{Pattern: regexp.MustCompile(`(?i)\[y/n\]`), Response: "y"},
			{Pattern: regexp.MustCompile(`(?i)\(y/n\)`), Response: "y"},
		},
	}}
}

var brewTable = table{
	"q":  func(bc buildContext) []CommandStep { return steps(cmd(bc, "brew", "list")) },
	"qc": func(bc buildContext) []CommandStep { return steps(cmd(bc, "brew", "log")) },
	"qi": func(bc buildContext) []CommandStep { return steps(cmd(bc, "brew", "info")) },
	"ql": func(bc buildContext) []CommandStep { return steps(cmd(bc, "brew", "list")) },
	"qu": func(bc buildContext) []CommandStep { return steps(cmd(bc, "brew", "outdated")) },
	"r": func(bc buildContext) []CommandStep {
		return steps(interactive(cmd(bc, "brew", "uninstall")))
	},
	"rs": brewRs,
	"s":  brewS,
	"sc": func(bc buildContext) []CommandStep {
		return steps(interactive(cmd(bc, "brew", "cleanup")))
	},
	"scc": func(bc buildContext) []CommandStep {
		return steps(interactive(cmd(bc, "brew", "cleanup", "-s")))
	},
	"si": func(bc buildContext) []CommandStep { return steps(cmd(bc, "brew", "info")) },
	"ss": func(bc buildContext) []CommandStep { return steps(cmd(bc, "brew", "search")) },
	"su":  brewSu,
	"suy": brewSuy,
	"sw": func(bc buildContext) []CommandStep {
		return steps(interactive(cmd(bc, "brew", "fetch")))
	},
	"sy": brewSy,
}

func brewRs(bc buildContext) []CommandStep {
	return steps(
		interactive(cmd(bc, "brew", "uninstall")),
		interactive(cmdOnly(bc, "brew", "autoremove")),
	)
}

// brewS prefers reinstall over install when asked to: for packages that
// are not installed yet, brew reinstall behaves exactly like brew install,
// which matches pacman -S.
func brewS(bc buildContext) []CommandStep {
	verb := "install"
	if bc.Reinstall {
		verb = "reinstall"
	}
	out := steps(interactive(cmd(bc, "brew", verb)))
	if bc.NoCache {
		out = append(out, fixed("brew", "cleanup"))
	}
	return out
}

func brewSu(bc buildContext) []CommandStep {
	out := steps(interactive(cmd(bc, "brew", "upgrade")))
	if bc.NoCache {
		out = append(out, fixed("brew", "cleanup"))
	}
	return out
}

func brewSuy(bc buildContext) []CommandStep {
	return append(steps(cmdOnly(bc, "brew", "update")), brewSu(bc)...)
}

func brewSy(bc buildContext) []CommandStep {
	out := steps(cmdOnly(bc, "brew", "update"))
	if len(bc.Packages) > 0 {
		out = append(out, brewS(bc)...)
	}
	return out
}
