// pkg/backend/apk.go
package backend

// Apk adapts Alpine Linux. apk never prompts, so no confirm handling is
// needed anywhere in its table.
type Apk struct{ pm }

// NewApk creates the apk backend.
func NewApk() *Apk {
	return &Apk{pm{name: "apk", binary: "apk", table: apkTable}}
}

var apkTable = table{
	"q":  func(bc buildContext) []CommandStep { return steps(cmd(bc, "apk", "info")) },
	"qi": func(bc buildContext) []CommandStep { return steps(cmd(bc, "apk", "info", "-a")) },
	"ql": func(bc buildContext) []CommandStep { return steps(cmd(bc, "apk", "info", "-L")) },
	"qo": func(bc buildContext) []CommandStep {
		return steps(cmd(bc, "apk", "info", "--who-owns"))
	},
	"qu": func(bc buildContext) []CommandStep {
		return steps(cmd(bc, "apk", "list", "--upgradable"))
	},
	"r": func(bc buildContext) []CommandStep {
		return steps(sudo(cmd(bc, "apk", "del")))
	},
	"rn": func(bc buildContext) []CommandStep {
		return steps(sudo(cmd(bc, "apk", "del", "--purge")))
	},
	"rs": func(bc buildContext) []CommandStep {
		return steps(sudo(cmd(bc, "apk", "del", "-r")))
	},
	"s": apkS,
	"sc": func(bc buildContext) []CommandStep {
		return steps(sudo(cmdOnly(bc, "apk", "cache", "clean")))
	},
	"scc": func(bc buildContext) []CommandStep {
		return steps(sudo(cmdOnly(bc, "apk", "cache", "clean")))
	},
	"si": func(bc buildContext) []CommandStep {
		return steps(cmd(bc, "apk", "info", "-a"))
	},
	"sl": func(bc buildContext) []CommandStep { return steps(cmd(bc, "apk", "list")) },
	"ss": func(bc buildContext) []CommandStep { return steps(cmd(bc, "apk", "search")) },
	"su": func(bc buildContext) []CommandStep {
		return steps(sudo(cmd(bc, "apk", "upgrade")))
	},
	"suy": func(bc buildContext) []CommandStep {
		return steps(
			sudo(cmdOnly(bc, "apk", "update")),
			sudo(cmd(bc, "apk", "upgrade")),
		)
	},
	"sw": func(bc buildContext) []CommandStep {
		return steps(cmd(bc, "apk", "fetch"))
	},
	"sy": apkSy,
	"u": func(bc buildContext) []CommandStep {
		return steps(sudo(cmd(bc, "apk", "add", "--allow-untrusted")))
	},
}

func apkS(bc buildContext) []CommandStep {
	argv := []string{"apk", "add"}
	if bc.Reinstall {
		argv = append(argv, "--force-overwrite")
	}
	out := steps(sudo(cmd(bc, argv...)))
	if bc.NoCache {
		out = append(out, sudo(fixed("apk", "cache", "clean")))
	}
	return out
}

func apkSy(bc buildContext) []CommandStep {
	out := steps(sudo(cmdOnly(bc, "apk", "update")))
	if len(bc.Packages) > 0 {
		out = append(out, apkS(bc)...)
	}
	return out
}
