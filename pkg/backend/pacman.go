// pkg/backend/pacman.go
package backend

// Pacman is the identity backend for Arch-family systems: the vocabulary
// already is pacman's, so translation mostly reconstitutes the short flags.
type Pacman struct{ pm }

// NewPacman creates the pacman backend.
func NewPacman() *Pacman {
	return &Pacman{pm{name: "pacman", binary: "pacman", table: pacmanTable}}
}

var pacmanTable = table{
	"q":   pacmanQuery("-Q"),
	"qc":  pacmanQuery("-Qc"),
	"qe":  pacmanQuery("-Qe"),
	"qi":  pacmanQuery("-Qi"),
	"qk":  pacmanQuery("-Qk"),
	"ql":  pacmanQuery("-Ql"),
	"qm":  pacmanQuery("-Qm"),
	"qo":  pacmanQuery("-Qo"),
	"qp":  pacmanQuery("-Qp"),
	"qs":  pacmanQuery("-Qs"),
	"qu":  pacmanQuery("-Qu"),
	"r":   pacmanMutate("-R"),
	"rn":  pacmanMutate("-Rn"),
	"rns": pacmanMutate("-Rns"),
	"rs":  pacmanMutate("-Rs"),
	"s":   pacmanS,
	"sc":  pacmanMutate("-Sc"),
	"scc": pacmanMutate("-Scc"),
	"sg":  pacmanQuery("-Sg"),
	"si":  pacmanQuery("-Si"),
	"sl":  pacmanQuery("-Sl"),
	"ss":  pacmanQuery("-Ss"),
	"su":  pacmanS2("-Su"),
	"suy": pacmanS2("-Syu"),
	"sw":  pacmanMutate("-Sw"),
	"sy":  pacmanMutate("-Sy"),
	"u":   pacmanMutate("-U"),
}

func pacmanQuery(flag string) buildFunc {
	return func(bc buildContext) []CommandStep {
		return steps(cmd(bc, "pacman", flag))
	}
}

func pacmanMutate(flag string) buildFunc {
	return func(bc buildContext) []CommandStep {
		return steps(sudo(confirm(bc, cmd(bc, "pacman", flag), "--noconfirm")))
	}
}

func pacmanS(bc buildContext) []CommandStep {
	argv := []string{"pacman", "-S"}
	if !bc.Reinstall {
		argv = append(argv, "--needed")
	}
	out := steps(sudo(confirm(bc, cmd(bc, argv...), "--noconfirm")))
	if bc.NoCache {
		out = append(out, sudo(fixed("pacman", "-Sc", "--noconfirm")))
	}
	return out
}

func pacmanS2(flag string) buildFunc {
	return func(bc buildContext) []CommandStep {
		out := steps(sudo(confirm(bc, cmd(bc, "pacman", flag), "--noconfirm")))
		if bc.NoCache {
			out = append(out, sudo(fixed("pacman", "-Sc", "--noconfirm")))
		}
		return out
	}
}
