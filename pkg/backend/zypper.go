// pkg/backend/zypper.go
package backend

// Zypper adapts openSUSE and SLES systems. rpm answers the local database
// queries, zypper everything that touches repositories.
type Zypper struct{ pm }

// NewZypper creates the zypper backend.
func NewZypper() *Zypper {
	return &Zypper{pm{name: "zypper", binary: "zypper", table: zypperTable}}
}

var zypperTable = table{
	"q":  func(bc buildContext) []CommandStep { return steps(cmd(bc, "rpm", "-qa")) },
	"qc": func(bc buildContext) []CommandStep { return steps(cmd(bc, "rpm", "-q", "--changelog")) },
	"qi": func(bc buildContext) []CommandStep { return steps(cmd(bc, "rpm", "-qi")) },
	"ql": func(bc buildContext) []CommandStep { return steps(cmd(bc, "rpm", "-ql")) },
	"qo": func(bc buildContext) []CommandStep { return steps(cmd(bc, "rpm", "-qf")) },
	"qp": func(bc buildContext) []CommandStep { return steps(cmd(bc, "rpm", "-qip")) },
	"qu": func(bc buildContext) []CommandStep {
		return steps(cmd(bc, "zypper", "list-updates"))
	},
	"r": func(bc buildContext) []CommandStep {
		return steps(sudo(confirm(bc, cmd(bc, "zypper", "remove"), "-y")))
	},
	"rs": func(bc buildContext) []CommandStep {
		return steps(sudo(confirm(bc, cmd(bc, "zypper", "remove", "--clean-deps"), "-y")))
	},
	"s": zypperS,
	"sc": func(bc buildContext) []CommandStep {
		return steps(sudo(cmdOnly(bc, "zypper", "clean")))
	},
	"scc": func(bc buildContext) []CommandStep {
		return steps(sudo(cmdOnly(bc, "zypper", "clean", "--all")))
	},
	"si":  func(bc buildContext) []CommandStep { return steps(cmd(bc, "zypper", "info")) },
	"sl":  func(bc buildContext) []CommandStep { return steps(cmd(bc, "zypper", "packages")) },
	"ss":  func(bc buildContext) []CommandStep { return steps(cmd(bc, "zypper", "search")) },
	"su":  zypperSu,
	"suy": zypperSuy,
	"sw": func(bc buildContext) []CommandStep {
		return steps(sudo(confirm(bc, cmd(bc, "zypper", "install", "--download-only"), "-y")))
	},
	"sy": zypperSy,
	"u":  zypperS, // zypper install accepts local rpm files
}

func zypperS(bc buildContext) []CommandStep {
	argv := []string{"zypper", "install"}
	if bc.Reinstall {
		argv = append(argv, "--force")
	}
	out := steps(sudo(confirm(bc, cmd(bc, argv...), "-y")))
	if bc.NoCache {
		out = append(out, sudo(fixed("zypper", "clean", "--all")))
	}
	return out
}

func zypperSu(bc buildContext) []CommandStep {
	out := steps(sudo(confirm(bc, cmd(bc, "zypper", "update"), "-y")))
	if bc.NoCache {
		out = append(out, sudo(fixed("zypper", "clean", "--all")))
	}
	return out
}

func zypperSuy(bc buildContext) []CommandStep {
	return append(steps(sudo(cmdOnly(bc, "zypper", "refresh"))), zypperSu(bc)...)
}

func zypperSy(bc buildContext) []CommandStep {
	out := steps(sudo(cmdOnly(bc, "zypper", "refresh")))
	if len(bc.Packages) > 0 {
		out = append(out, zypperS(bc)...)
	}
	return out
}
