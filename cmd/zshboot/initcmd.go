package zshboot

import (
	"io"

	"github.com/arthur-debert/zshboot/pkg/shell"
	"github.com/spf13/cobra"
)

func newInitCmd(app func() *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "init [zsh]",
		Short:     MsgInitShort,
		Long:      MsgInitLong,
		GroupID:   "core",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: shell.Supported,
		RunE: func(cmd *cobra.Command, args []string) error {
			sh := "zsh"
			if len(args) == 1 {
				sh = args[0]
			}
			a := app()
			in := shell.Init{Config: a.Config, Runtime: a.Runtime, Binary: Binary}
			return in.Write(cmd.OutOrStdout(), sh)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "hook",
		Short: MsgHookShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := io.WriteString(cmd.OutOrStdout(), shell.RCHook(Binary))
			return err
		},
	})
	return cmd
}
