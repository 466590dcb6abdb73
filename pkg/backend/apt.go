// pkg/backend/apt.go
package backend

// Apt adapts Debian and Ubuntu systems through apt-get and the dpkg
// toolchain. Queries go through dpkg-query where apt has no stable CLI.
type Apt struct{ pm }

// NewApt creates the apt backend.
func NewApt() *Apt {
	return &Apt{pm{name: "apt", binary: "apt-get", table: aptTable}}
}

var aptTable = table{
	"q": func(bc buildContext) []CommandStep {
		return steps(cmd(bc, "apt", "list", "--installed"))
	},
	"qe": func(bc buildContext) []CommandStep {
		return steps(cmd(bc, "apt-mark", "showmanual"))
	},
	"qi": func(bc buildContext) []CommandStep {
		return steps(cmd(bc, "dpkg-query", "-s"))
	},
	"ql": func(bc buildContext) []CommandStep {
		return steps(cmd(bc, "dpkg-query", "-L"))
	},
	"qo": func(bc buildContext) []CommandStep {
		return steps(cmd(bc, "dpkg-query", "-S"))
	},
	"qp": func(bc buildContext) []CommandStep {
		return steps(cmd(bc, "dpkg-deb", "-I"))
	},
	"qu": func(bc buildContext) []CommandStep {
		return steps(sudo(cmd(bc, "apt-get", "upgrade", "--trivial-only")))
	},
	"r": func(bc buildContext) []CommandStep {
		return steps(sudo(confirm(bc, cmd(bc, "apt-get", "remove"), "--yes")))
	},
	"rn": func(bc buildContext) []CommandStep {
		return steps(sudo(confirm(bc, cmd(bc, "apt-get", "purge"), "--yes")))
	},
	"rns": func(bc buildContext) []CommandStep {
		return steps(sudo(confirm(bc, cmd(bc, "apt-get", "autoremove", "--purge"), "--yes")))
	},
	"rs": func(bc buildContext) []CommandStep {
		return steps(sudo(confirm(bc, cmd(bc, "apt-get", "autoremove"), "--yes")))
	},
	"s": aptS,
	"sc": func(bc buildContext) []CommandStep {
		return steps(sudo(cmdOnly(bc, "apt-get", "clean")))
	},
	"scc": func(bc buildContext) []CommandStep {
		return steps(sudo(cmdOnly(bc, "apt-get", "autoclean")))
	},
	"si": func(bc buildContext) []CommandStep { return steps(cmd(bc, "apt", "show")) },
	"ss": func(bc buildContext) []CommandStep { return steps(cmd(bc, "apt", "search")) },
	"sw": func(bc buildContext) []CommandStep {
		return steps(sudo(confirm(bc, cmd(bc, "apt-get", "install", "--download-only"), "--yes")))
	},
	"su":  aptSu,
	"suy": aptSuy,
	"sy":  aptSy,
	"u": func(bc buildContext) []CommandStep {
		return steps(sudo(cmd(bc, "dpkg", "-i")))
	},
}

func aptS(bc buildContext) []CommandStep {
	argv := []string{"apt-get", "install"}
	if bc.Reinstall {
		argv = append(argv, "--reinstall")
	}
	out := steps(sudo(confirm(bc, cmd(bc, argv...), "--yes")))
	if bc.NoCache {
		out = append(out, sudo(fixed("apt-get", "clean")))
	}
	return out
}

// aptSu upgrades everything in two passes, upgrade then dist-upgrade, the
// way apt wants a full system upgrade done. With packages given it
// degenerates to an install of those packages.
func aptSu(bc buildContext) []CommandStep {
	if len(bc.Packages) > 0 {
		return aptS(bc)
	}
	out := steps(
		sudo(confirm(bc, cmdOnly(bc, "apt-get", "upgrade"), "--yes")),
		sudo(confirm(bc, cmdOnly(bc, "apt-get", "dist-upgrade"), "--yes")),
	)
	if bc.NoCache {
		out = append(out, sudo(fixed("apt-get", "clean")))
	}
	return out
}

func aptSuy(bc buildContext) []CommandStep {
	return append(steps(sudo(cmdOnly(bc, "apt-get", "update"))), aptSu(bc)...)
}

func aptSy(bc buildContext) []CommandStep {
	out := steps(sudo(cmdOnly(bc, "apt-get", "update")))
	if len(bc.Packages) > 0 {
		out = append(out, aptS(bc)...)
	}
	return out
}
