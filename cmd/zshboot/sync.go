package zshboot

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newUpdateCmd(app func() *App) *cobra.Command {
	return &cobra.Command{
		Use:     "update-zshrc",
		Aliases: []string{"update_zshrc"},
		Short:   MsgUpdateShort,
		Long:    MsgUpdateLong,
		GroupID: "sync",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app().Syncer(cmd.ErrOrStderr()).Update(cmd.Context())
			if err != nil {
				return err
			}
			if res.Written {
				fmt.Fprintf(cmd.OutOrStdout(), MsgUpdateWritten, res.State.RemoteHash)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), MsgUpdateInSync, res.State.RemoteHash)
			}
			return nil
		},
	}
}

func newDiffCmd(app func() *App) *cobra.Command {
	return &cobra.Command{
		Use:     "zshrc-diff",
		Aliases: []string{"zshrc_diff"},
		Short:   MsgDiffShort,
		Long:    MsgDiffLong,
		GroupID: "sync",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := app().Syncer(cmd.ErrOrStderr()).Diff(cmd.Context(), cmd.OutOrStdout())
			return err
		},
	}
}

func newSyncCheckCmd(app func() *App) *cobra.Command {
	return &cobra.Command{
		Use:     "sync-check",
		Short:   MsgSyncCheckShort,
		Long:    MsgSyncCheckLong,
		GroupID: "sync",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := app().Syncer(cmd.ErrOrStderr()).SyncCheck(cmd.Context())
			return err
		},
	}
}
