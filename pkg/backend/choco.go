// pkg/backend/choco.go
package backend

import "regexp"

// Choco adapts Chocolatey on Windows. Exit codes 1641 and 3010 mean a
// reboot is pending after a successful change; both are declared ignorable
// so they aggregate as success.
type Choco struct{ pm }

// NewChoco creates the chocolatey backend.
func NewChoco() *Choco {
	return &Choco{pm{
		name:   "choco",
		binary: "choco",
		table:  chocoTable,
		prompts: []PromptPattern{
			// Legacy script confirmation: ([Y]es/[A]ll - yes to all/[N]o/[P]rint)
			{Pattern: regexp.MustCompile(`\[A\]ll - yes to all`), Response: "A"},
			{Pattern: regexp.MustCompile(`(?i)\(Y/N\)`), Response: "Y"},
		},
	}}
}

var chocoTable = table{
	"q": func(bc buildContext) []CommandStep {
		return steps(cmd(bc, "choco", "list", "--local-only"))
	},
	"qi": func(bc buildContext) []CommandStep {
		return steps(cmd(bc, "choco", "info", "--local-only"))
	},
	"qu": func(bc buildContext) []CommandStep {
		return steps(cmd(bc, "choco", "outdated"))
	},
	"r": func(bc buildContext) []CommandStep {
		return steps(ignore(confirm(bc, cmd(bc, "choco", "uninstall"), "--yes"), 1641, 3010))
	},
	"rs": func(bc buildContext) []CommandStep {
		return steps(ignore(confirm(bc,
			cmd(bc, "choco", "uninstall", "--remove-dependencies"), "--yes"), 1641, 3010))
	},
	"s":   chocoS,
	"si":  func(bc buildContext) []CommandStep { return steps(cmd(bc, "choco", "info")) },
	"ss":  func(bc buildContext) []CommandStep { return steps(cmd(bc, "choco", "search")) },
	"su":  chocoSu,
	"suy": chocoSu, // chocolatey has no separate index refresh
	"u":   chocoS,
}

func chocoS(bc buildContext) []CommandStep {
	argv := []string{"choco", "install"}
	if bc.Reinstall {
		argv = append(argv, "--force")
	}
	return steps(ignore(confirm(bc, cmd(bc, argv...), "--yes"), 1641, 3010))
}

func chocoSu(bc buildContext) []CommandStep {
	if len(bc.Packages) == 0 {
		return steps(ignore(confirm(bc, cmdOnly(bc, "choco", "upgrade", "all"), "--yes"), 1641, 3010))
	}
	return steps(ignore(confirm(bc, cmd(bc, "choco", "upgrade"), "--yes"), 1641, 3010))
}
