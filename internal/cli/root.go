// internal/cli/root.go
package cli

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"pacgo/internal/print"
	"pacgo/pkg/config"
	"pacgo/pkg/engine"
)

var (
	cfgFile string
	using   string
	usingPM string
	debug   bool

	dryRun     bool
	dryRunAlt  bool
	noConfirm  bool
	noConfirm2 bool
	yes        bool
	reinstall  bool
	noCache    bool
	noCacheAlt bool
	needsSudo  bool

	cfg *config.Config

	// exitCode carries the engine's verdict out of cobra's RunE plumbing.
	exitCode int
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "pacgo",
	Short: "Pacman-flavored universal package manager",
	Long: `pacgo - a pacman-flavored front-end for your system package manager

One command vocabulary across apt, dnf, pacman, zypper, apk, brew, nix,
choco, winget, scoop, pip and npm. Pacman-style invocations are accepted
directly:

  pacgo -S ripgrep
  pacgo -Syu
  pacgo -Rns old-package
  pacgo -Qo /usr/bin/ls`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	rootCmd.SetArgs(rewriteArgs(os.Args[1:]))
	if err := rootCmd.Execute(); err != nil {
		p := &print.Printer{Err: os.Stderr}
		p.Error(err)
		return engine.ExitInternal
	}
	return exitCode
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/pacgo/pacgo.yaml)")
	rootCmd.PersistentFlags().StringVar(&using, "using", "", "package manager to use (apt, brew, choco, ...)")
	rootCmd.PersistentFlags().StringVar(&usingPM, "pm", "", "alias for --using")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "print commands without running them")
	rootCmd.PersistentFlags().BoolVar(&dryRunAlt, "dryrun", false, "alias for --dry-run")
	rootCmd.PersistentFlags().BoolVar(&noConfirm, "no-confirm", false, "answer confirmation prompts automatically")
	rootCmd.PersistentFlags().BoolVar(&noConfirm2, "noconfirm", false, "alias for --no-confirm")
	rootCmd.PersistentFlags().BoolVar(&yes, "yes", false, "alias for --no-confirm")
	rootCmd.PersistentFlags().BoolVar(&reinstall, "reinstall", false, "reinstall packages that are already installed")
	rootCmd.PersistentFlags().BoolVar(&noCache, "no-cache", false, "clean the package manager cache afterwards")
	rootCmd.PersistentFlags().BoolVar(&noCacheAlt, "nocache", false, "alias for --no-cache")
	rootCmd.PersistentFlags().BoolVar(&needsSudo, "needs-sudo", true, "wrap root-requiring commands with sudo")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	for _, alias := range []string{"pm", "dryrun", "noconfirm", "nocache"} {
		rootCmd.PersistentFlags().MarkHidden(alias)
	}

	// Add commands
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(updateCmd)
}

func initConfig() {
	var err error
	cfg, err = config.LoadConfig(cfgFile)
	if err != nil {
		p := &print.Printer{Err: os.Stderr}
		p.Error(err)
		cfg = config.DefaultConfig()
	}

	// Override config with flags
	if using != "" {
		cfg.DefaultBackend = using
	} else if usingPM != "" {
		cfg.DefaultBackend = usingPM
	}
	if dryRun || dryRunAlt {
		cfg.DryRun = true
	}
	if noConfirm || noConfirm2 || yes {
		cfg.NoConfirm = true
	}
	if reinstall {
		cfg.Reinstall = true
	}
	if noCache || noCacheAlt {
		cfg.NoCache = true
	}
	if rootCmd.PersistentFlags().Changed("needs-sudo") {
		cfg.NeedsSudo = needsSudo
	}
	if debug {
		cfg.Debug = true
	}

	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}
}
