// pkg/backend/dnf.go
package backend

// Dnf adapts Fedora, RHEL and CentOS systems. Local database queries fall
// back to rpm, which dnf wraps anyway.
type Dnf struct{ pm }

// NewDnf creates the dnf backend.
func NewDnf() *Dnf {
	return &Dnf{pm{name: "dnf", binary: "dnf", table: dnfTable}}
}

var dnfTable = table{
	"q": func(bc buildContext) []CommandStep {
		return steps(cmd(bc, "dnf", "list", "--installed"))
	},
	"qc": func(bc buildContext) []CommandStep {
		return steps(cmd(bc, "rpm", "-q", "--changelog"))
	},
	"qi": func(bc buildContext) []CommandStep {
		return steps(cmd(bc, "dnf", "info", "--installed"))
	},
	"ql": func(bc buildContext) []CommandStep { return steps(cmd(bc, "rpm", "-ql")) },
	"qm": func(bc buildContext) []CommandStep {
		return steps(cmd(bc, "dnf", "list", "--extras"))
	},
	"qo": func(bc buildContext) []CommandStep { return steps(cmd(bc, "rpm", "-qf")) },
	"qp": func(bc buildContext) []CommandStep { return steps(cmd(bc, "rpm", "-qip")) },
	// check-update exits 100 when updates exist; that is the answer, not a
	// failure.
	"qu": func(bc buildContext) []CommandStep {
		return steps(ignore(cmd(bc, "dnf", "check-update"), 100))
	},
	"r":  dnfR,
	"rs": dnfR,
	"s":  dnfS,
	"sc": func(bc buildContext) []CommandStep {
		return steps(sudo(cmdOnly(bc, "dnf", "clean", "expire-cache")))
	},
	"scc": func(bc buildContext) []CommandStep {
		return steps(sudo(cmdOnly(bc, "dnf", "clean", "all")))
	},
	"sg": func(bc buildContext) []CommandStep {
		if len(bc.Packages) == 0 {
			return steps(cmdOnly(bc, "dnf", "group", "list"))
		}
		return steps(cmd(bc, "dnf", "group", "info"))
	},
	"si": func(bc buildContext) []CommandStep { return steps(cmd(bc, "dnf", "info")) },
	"sl": func(bc buildContext) []CommandStep {
		return steps(cmd(bc, "dnf", "list", "--available"))
	},
	"ss": func(bc buildContext) []CommandStep { return steps(cmd(bc, "dnf", "search")) },
	"su":  dnfSu,
	"suy": dnfSuy,
	"sw":  func(bc buildContext) []CommandStep { return steps(cmd(bc, "dnf", "download")) },
	"sy":  dnfSy,
	"u":   dnfS, // dnf install accepts local rpm files directly
}

func dnfR(bc buildContext) []CommandStep {
	return steps(sudo(confirm(bc, cmd(bc, "dnf", "remove"), "-y")))
}

func dnfS(bc buildContext) []CommandStep {
	verb := "install"
	if bc.Reinstall {
		verb = "reinstall"
	}
	out := steps(sudo(confirm(bc, cmd(bc, "dnf", verb), "-y")))
	if bc.NoCache {
		out = append(out, sudo(fixed("dnf", "clean", "all")))
	}
	return out
}

func dnfSu(bc buildContext) []CommandStep {
	out := steps(sudo(confirm(bc, cmd(bc, "dnf", "upgrade"), "-y")))
	if bc.NoCache {
		out = append(out, sudo(fixed("dnf", "clean", "all")))
	}
	return out
}

func dnfSuy(bc buildContext) []CommandStep {
	return append(steps(sudo(cmdOnly(bc, "dnf", "makecache"))), dnfSu(bc)...)
}

func dnfSy(bc buildContext) []CommandStep {
	out := steps(sudo(cmdOnly(bc, "dnf", "makecache")))
	if len(bc.Packages) > 0 {
		out = append(out, dnfS(bc)...)
	}
	return out
}
