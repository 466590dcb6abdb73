// pkg/backend/winget.go
package backend

// Winget adapts the Windows Package Manager. Under no-confirm the source
// and package agreement flags are injected; winget has no other prompts.
type Winget struct{ pm }

// NewWinget creates the winget backend.
func NewWinget() *Winget {
	return &Winget{pm{name: "winget", binary: "winget", table: wingetTable}}
}

var wingetAccept = []string{"--accept-source-agreements", "--accept-package-agreements"}

var wingetTable = table{
	"q":  func(bc buildContext) []CommandStep { return steps(cmd(bc, "winget", "list")) },
	"qu": func(bc buildContext) []CommandStep { return steps(cmd(bc, "winget", "upgrade")) },
	"r": func(bc buildContext) []CommandStep {
		return steps(confirm(bc, cmd(bc, "winget", "uninstall"), "--disable-interactivity"))
	},
	"s": func(bc buildContext) []CommandStep {
		return steps(confirm(bc, cmd(bc, "winget", "install"), wingetAccept...))
	},
	"si":  func(bc buildContext) []CommandStep { return steps(cmd(bc, "winget", "show")) },
	"ss":  func(bc buildContext) []CommandStep { return steps(cmd(bc, "winget", "search")) },
	"su":  wingetSu,
	"suy": wingetSuy,
	"sy": func(bc buildContext) []CommandStep {
		return steps(cmdOnly(bc, "winget", "source", "update"))
	},
}

func wingetSu(bc buildContext) []CommandStep {
	if len(bc.Packages) == 0 {
		return steps(confirm(bc, cmdOnly(bc, "winget", "upgrade", "--all"), wingetAccept...))
	}
	return steps(confirm(bc, cmd(bc, "winget", "upgrade"), wingetAccept...))
}

func wingetSuy(bc buildContext) []CommandStep {
	return append(steps(cmdOnly(bc, "winget", "source", "update")), wingetSu(bc)...)
}
