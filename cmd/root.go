package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"setup-launcher/internal/config"
	"setup-launcher/internal/fixup"
	"setup-launcher/internal/launcher"
	"setup-launcher/internal/logger"
	"setup-launcher/internal/profile"
	"setup-launcher/internal/runner"
	"setup-launcher/internal/state"
	"setup-launcher/internal/ui"
)

var (
	// debug enables cyan debug diagnostics on stderr.
	debug bool

	// configPath is the optional YAML configuration file.
	configPath string

	profileKey string
	dotfiles   bool
	noDotfiles bool
	assumeYes  bool
	dryRun     bool
)

// exitCode is what main passes to os.Exit once cobra returns.
var exitCode int

var rootCmd = &cobra.Command{
	Use:   "setup-launcher",
	Short: "Guided bootstrap for this machine",
	Long: `Pick a setup profile, review the execution plan and run the
provisioning targets in order. The first failing target stops the run.`,
	SilenceUsage:  true,
	SilenceErrors: true,

	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(debug, nil)
	},

	RunE: func(cmd *cobra.Command, args []string) error {
		opts := launchOptions(cmd)

		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}

		statePath := cfg.StateFile
		if statePath == "" {
			statePath, err = state.DefaultPath()
			if err != nil {
				logger.Warn("[WARN] %v; last-run record disabled\n", err)
				statePath = ""
			}
		}

		console := ui.NewConsole(os.Stdout)
		l := &launcher.Launcher{
			Catalog:    profile.Default(),
			Builder:    cfg.Builder(),
			Console:    console,
			Prompter:   ui.NewTerminalPrompter(),
			Executor:   runner.NewCommandExecutor(),
			Fixup:      fixup.NewGitPagers(cfg.Pager.Tool, func([]string) { console.PagerFixed() }),
			FixupValue: cfg.Pager.Value,
			FixupKeys:  cfg.Pager.Keys,
			StatePath:  statePath,
		}

		exitCode, err = l.Launch(opts)
		return err
	},
}

// launchOptions turns the flags into launcher options. Leaving both dotfiles
// flags unset means the operator is asked.
func launchOptions(cmd *cobra.Command) launcher.Options {
	opts := launcher.Options{
		Profile: profileKey,
		Yes:     assumeYes,
		DryRun:  dryRun,
	}

	switch {
	case cmd.Flags().Changed("dotfiles"):
		v := dotfiles
		opts.Dotfiles = &v
	case cmd.Flags().Changed("no-dotfiles"):
		v := !noDotfiles
		opts.Dotfiles = &v
	}
	return opts
}

// Execute runs the CLI and returns the process exit status.
func Execute() int {
	exitCode = 0
	if err := rootCmd.Execute(); err != nil {
		logger.Error("[ERROR] %v\n", err)
		if exitCode == 0 {
			exitCode = 1
		}
	}
	return exitCode
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "setup.yaml", "Path to configuration file")

	rootCmd.Flags().StringVarP(&profileKey, "profile", "p", "", "Run a specific profile without prompting")
	rootCmd.Flags().BoolVar(&dotfiles, "dotfiles", false, "Apply dotfiles after Ansible")
	rootCmd.Flags().BoolVar(&noDotfiles, "no-dotfiles", false, "Skip the dotfiles step")
	rootCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Run without confirmation prompts")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show planned commands without running them")
	rootCmd.MarkFlagsMutuallyExclusive("dotfiles", "no-dotfiles")

	_ = rootCmd.RegisterFlagCompletionFunc("profile", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return profile.Default().Keys(), cobra.ShellCompDirectiveNoFileComp
	})
}
