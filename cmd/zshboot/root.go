package zshboot

import (
	"fmt"

	"github.com/arthur-debert/zshboot/internal/version"
	"github.com/spf13/cobra"
)

// Binary is the program name used in hints and generated snippets
const Binary = "zshboot"

// NewRootCmd creates the root command with the real implementations
func NewRootCmd() *cobra.Command {
	return NewRootCmdWith(Deps{})
}

// NewRootCmdWith creates the root command over deps
func NewRootCmdWith(deps Deps) *cobra.Command {
	initTemplateFormatting()
	deps = deps.withDefaults()

	flags := &globalFlags{}
	var app *App

	rootCmd := &cobra.Command{
		Use:     Binary,
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if skipsSetup(cmd) {
				return nil
			}
			a, err := newApp(cmd, deps, flags)
			if err != nil {
				return err
			}
			app = a
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf(MsgNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&flags.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&flags.configFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, MsgFlagNoColor)

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "sync", Title: "SYNC:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	getApp := func() *App { return app }

	rootCmd.AddCommand(newBootstrapCmd(getApp))
	rootCmd.AddCommand(newDockerpsCmd(getApp))
	rootCmd.AddCommand(newStatusCmd(getApp))
	rootCmd.AddCommand(newInitCmd(getApp))
	rootCmd.AddCommand(newUpdateCmd(getApp))
	rootCmd.AddCommand(newDiffCmd(getApp))
	rootCmd.AddCommand(newSyncCheckCmd(getApp))
	rootCmd.AddCommand(newConfigCmd(getApp))
	rootCmd.AddCommand(newGuideCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())
	rootCmd.AddCommand(newVersionCmd())

	closeAfter(rootCmd, getApp)
	return rootCmd
}

// closeAfter releases the app once a command's RunE returns, error or not.
// PersistentPostRun is skipped on failure so it cannot do this.
func closeAfter(cmd *cobra.Command, app func() *App) {
	for _, child := range cmd.Commands() {
		closeAfter(child, app)
	}
	run := cmd.RunE
	if run == nil {
		return
	}
	cmd.RunE = func(c *cobra.Command, args []string) error {
		defer func() { _ = app().Close() }()
		return run(c, args)
	}
}

// setupFree commands run without loading configuration
var setupFree = map[string]bool{
	"completion": true,
	"man":        true,
	"version":    true,
	"guide":      true,
	"help":       true,
	Binary:       true,
}

func skipsSetup(cmd *cobra.Command) bool {
	return setupFree[cmd.Name()] || cmd.Name() == cobra.ShellCompRequestCmd || cmd.Name() == cobra.ShellCompNoDescRequestCmd
}
